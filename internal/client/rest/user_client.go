package rest

import (
	"context"
	"net/http"
	"strconv"

	"github.com/Yussef-Makhlouf/admin-dashboard-macc/internal/domain"
)

type userClient struct {
	c *Client
}

func NewUserClient(c *Client) domain.UserClient {
	return &userClient{c: c}
}

func (uc *userClient) List(ctx context.Context) ([]domain.User, error) {
	data, err := uc.c.do(ctx, http.MethodGet, "/users", nil, "")
	if err != nil {
		return nil, err
	}
	return decodeList[domain.User](data, "users")
}

func (uc *userClient) Get(ctx context.Context, id string) (*domain.User, error) {
	data, err := uc.c.do(ctx, http.MethodGet, "/users/"+id, nil, "")
	if err != nil {
		return nil, err
	}
	return decodeObject[domain.User](data, "user")
}

// userFields builds the multipart form. Password is write-only: included
// only when set, so a blank password on update leaves it unchanged.
func userFields(draft domain.UserDraft) map[string]string {
	fields := map[string]string{
		"userName": draft.UserName,
		"email":    draft.Email,
		"role":     string(draft.Role),
		"isActive": strconv.FormatBool(draft.IsActive),
	}
	if draft.Password != "" {
		fields["password"] = draft.Password
	}
	return fields
}

func (uc *userClient) Create(ctx context.Context, draft domain.UserDraft) (*domain.User, error) {
	data, err := uc.c.doMultipart(ctx, http.MethodPost, "/users/add", userFields(draft), "image", draft.Avatar)
	if err != nil {
		return nil, err
	}
	return decodeObject[domain.User](data, "user")
}

func (uc *userClient) Update(ctx context.Context, id string, draft domain.UserDraft) (*domain.User, error) {
	data, err := uc.c.doMultipart(ctx, http.MethodPut, "/users/"+id, userFields(draft), "image", draft.Avatar)
	if err != nil {
		return nil, err
	}
	return decodeObject[domain.User](data, "user")
}

func (uc *userClient) Delete(ctx context.Context, id string) error {
	_, err := uc.c.do(ctx, http.MethodDelete, "/users/"+id, nil, "")
	return err
}

func (uc *userClient) BulkDelete(ctx context.Context, ids []string) error {
	_, err := uc.c.doJSON(ctx, http.MethodPost, "/users/multy", bulkDeleteRequest{IDs: ids})
	return err
}
