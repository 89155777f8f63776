package rest

import (
	"context"
	"net/http"

	"github.com/Yussef-Makhlouf/admin-dashboard-macc/internal/domain"
)

type statsClient struct {
	c *Client
}

func NewStatsClient(c *Client) domain.StatsClient {
	return &statsClient{c: c}
}

func (s *statsClient) Fetch(ctx context.Context) (*domain.Stats, error) {
	data, err := s.c.do(ctx, http.MethodGet, "/statistics", nil, "")
	if err != nil {
		return nil, err
	}
	return decodeObject[domain.Stats](data, "stats")
}
