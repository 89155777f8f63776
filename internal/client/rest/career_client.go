package rest

import (
	"context"
	"net/http"

	"github.com/Yussef-Makhlouf/admin-dashboard-macc/internal/domain"
)

type careerClient struct {
	c *Client
}

func NewCareerClient(c *Client) domain.CareerClient {
	return &careerClient{c: c}
}

func (cc *careerClient) List(ctx context.Context) ([]domain.Career, error) {
	data, err := cc.c.do(ctx, http.MethodGet, "/careers", nil, "")
	if err != nil {
		return nil, err
	}
	return decodeList[domain.Career](data, "careers")
}

func (cc *careerClient) Get(ctx context.Context, id string) (*domain.Career, error) {
	data, err := cc.c.do(ctx, http.MethodGet, "/careers/one/"+id, nil, "")
	if err != nil {
		return nil, err
	}
	return decodeObject[domain.Career](data, "career")
}

// careerPayload maps a draft onto the flat wire shape via the Career
// marshaller (no id or timestamps are ever sent).
func careerPayload(draft domain.CareerDraft) domain.Career {
	return domain.Career{
		Title:            draft.Title,
		Department:       draft.Department,
		Location:         draft.Location,
		EmploymentType:   draft.EmploymentType,
		ShortDescription: draft.ShortDescription,
		Description:      draft.Description,
		Responsibilities: draft.Responsibilities,
		Requirements:     draft.Requirements,
		IsActive:         draft.IsActive,
		Order:            draft.Order,
	}
}

func (cc *careerClient) Create(ctx context.Context, draft domain.CareerDraft) (*domain.Career, error) {
	data, err := cc.c.doJSON(ctx, http.MethodPost, "/careers/create", careerPayload(draft))
	if err != nil {
		return nil, err
	}
	return decodeObject[domain.Career](data, "career")
}

func (cc *careerClient) Update(ctx context.Context, id string, draft domain.CareerDraft) (*domain.Career, error) {
	data, err := cc.c.doJSON(ctx, http.MethodPut, "/careers/"+id, careerPayload(draft))
	if err != nil {
		return nil, err
	}
	return decodeObject[domain.Career](data, "career")
}

func (cc *careerClient) ToggleStatus(ctx context.Context, id string) error {
	_, err := cc.c.do(ctx, http.MethodPatch, "/careers/"+id+"/toggle", nil, "")
	return err
}

func (cc *careerClient) Delete(ctx context.Context, id string) error {
	_, err := cc.c.do(ctx, http.MethodDelete, "/careers/"+id, nil, "")
	return err
}

func (cc *careerClient) BulkDelete(ctx context.Context, ids []string) error {
	_, err := cc.c.doJSON(ctx, http.MethodPost, "/careers/bulk-delete", bulkDeleteRequest{IDs: ids})
	return err
}
