package rest

import (
	"context"
	"net/http"
	"strconv"

	"github.com/Yussef-Makhlouf/admin-dashboard-macc/internal/domain"
)

type serviceClient struct {
	c *Client
}

func NewServiceClient(c *Client) domain.ServiceClient {
	return &serviceClient{c: c}
}

func (s *serviceClient) List(ctx context.Context) ([]domain.ServiceSection, error) {
	data, err := s.c.do(ctx, http.MethodGet, "/services", nil, "")
	if err != nil {
		return nil, err
	}
	return decodeList[domain.ServiceSection](data, "services")
}

func (s *serviceClient) Get(ctx context.Context, id string) (*domain.ServiceSection, error) {
	data, err := s.c.do(ctx, http.MethodGet, "/services/"+id, nil, "")
	if err != nil {
		return nil, err
	}
	return decodeObject[domain.ServiceSection](data, "service")
}

// sectionFields flattens a section draft into the multipart keys the API
// expects: header fields are bracketed (header[title_en]), the image part
// is appended only when a new file was selected.
func sectionFields(draft domain.ServiceSectionDraft) map[string]string {
	return map[string]string{
		"header[title_en]":       draft.Title.En,
		"header[title_ar]":       draft.Title.Ar,
		"header[sub_title_en]":   draft.SubTitle.En,
		"header[sub_title_ar]":   draft.SubTitle.Ar,
		"header[description_en]": draft.Description.En,
		"header[description_ar]": draft.Description.Ar,
		"isActive":               strconv.FormatBool(draft.IsActive),
	}
}

func (s *serviceClient) Create(ctx context.Context, draft domain.ServiceSectionDraft) (*domain.ServiceSection, error) {
	data, err := s.c.doMultipart(ctx, http.MethodPost, "/services/add", sectionFields(draft), "image", draft.Image)
	if err != nil {
		return nil, err
	}
	return decodeObject[domain.ServiceSection](data, "service")
}

func (s *serviceClient) Update(ctx context.Context, id string, draft domain.ServiceSectionDraft) (*domain.ServiceSection, error) {
	data, err := s.c.doMultipart(ctx, http.MethodPut, "/services/"+id, sectionFields(draft), "image", draft.Image)
	if err != nil {
		return nil, err
	}
	return decodeObject[domain.ServiceSection](data, "service")
}

func (s *serviceClient) Delete(ctx context.Context, id string) error {
	_, err := s.c.do(ctx, http.MethodDelete, "/services/"+id, nil, "")
	return err
}

func (s *serviceClient) BulkDelete(ctx context.Context, ids []string) error {
	_, err := s.c.doJSON(ctx, http.MethodPost, "/services/multy", bulkDeleteRequest{IDs: ids})
	return err
}

func itemFields(draft domain.ServiceItemDraft) map[string]string {
	fields := map[string]string{
		"title_en":       draft.Title.En,
		"title_ar":       draft.Title.Ar,
		"category_en":    draft.Category.En,
		"category_ar":    draft.Category.Ar,
		"description_en": draft.Description.En,
		"description_ar": draft.Description.Ar,
		"order":          strconv.Itoa(draft.Order),
	}
	if draft.CustomID != "" {
		fields["customId"] = draft.CustomID
	}
	return fields
}

func (s *serviceClient) AddItem(ctx context.Context, sectionID string, draft domain.ServiceItemDraft) (*domain.ServiceSection, error) {
	data, err := s.c.doMultipart(ctx, http.MethodPost, "/services/"+sectionID+"/items", itemFields(draft), "image", draft.Image)
	if err != nil {
		return nil, err
	}
	return decodeObject[domain.ServiceSection](data, "data")
}

func (s *serviceClient) UpdateItem(ctx context.Context, sectionID, itemID string, draft domain.ServiceItemDraft) (*domain.ServiceSection, error) {
	data, err := s.c.doMultipart(ctx, http.MethodPut, "/services/"+sectionID+"/items/"+itemID, itemFields(draft), "image", draft.Image)
	if err != nil {
		return nil, err
	}
	return decodeObject[domain.ServiceSection](data, "data")
}

func (s *serviceClient) DeleteItem(ctx context.Context, sectionID, itemID string) (*domain.ServiceSection, error) {
	data, err := s.c.do(ctx, http.MethodDelete, "/services/"+sectionID+"/items/"+itemID, nil, "")
	if err != nil {
		return nil, err
	}
	return decodeObject[domain.ServiceSection](data, "data")
}
