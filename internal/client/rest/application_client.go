package rest

import (
	"context"
	"net/http"

	"github.com/Yussef-Makhlouf/admin-dashboard-macc/internal/domain"
)

type applicationClient struct {
	c *Client
}

func NewApplicationClient(c *Client) domain.ApplicationClient {
	return &applicationClient{c: c}
}

func (ac *applicationClient) List(ctx context.Context) ([]domain.Application, error) {
	data, err := ac.c.do(ctx, http.MethodGet, "/applications", nil, "")
	if err != nil {
		return nil, err
	}
	return decodeList[domain.Application](data, "applications")
}

func (ac *applicationClient) Get(ctx context.Context, id string) (*domain.Application, error) {
	data, err := ac.c.do(ctx, http.MethodGet, "/applications/"+id, nil, "")
	if err != nil {
		return nil, err
	}
	return decodeObject[domain.Application](data, "application")
}

func (ac *applicationClient) ListByCareer(ctx context.Context, careerID string) ([]domain.Application, error) {
	data, err := ac.c.do(ctx, http.MethodGet, "/applications/byjob/"+careerID, nil, "")
	if err != nil {
		return nil, err
	}
	return decodeList[domain.Application](data, "applications")
}

func (ac *applicationClient) UpdateStatus(ctx context.Context, id string, status domain.ApplicationStatus) error {
	payload := struct {
		Status domain.ApplicationStatus `json:"status"`
	}{Status: status}
	_, err := ac.c.doJSON(ctx, http.MethodPatch, "/applications/"+id+"/status", payload)
	return err
}

func (ac *applicationClient) Delete(ctx context.Context, id string) error {
	_, err := ac.c.do(ctx, http.MethodDelete, "/applications/"+id, nil, "")
	return err
}
