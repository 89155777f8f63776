package domain

import "context"

// Stats are the aggregate counts behind the dashboard cards.
type Stats struct {
	Applications int `json:"applications"`
	Services     int `json:"services"`
	Careers      int `json:"careers"`
}

type StatsClient interface {
	Fetch(ctx context.Context) (*Stats, error)
}

type StatsUsecase interface {
	Dashboard(ctx context.Context) (*Stats, error)
}
