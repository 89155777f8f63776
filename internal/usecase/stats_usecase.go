package usecase

import (
	"context"

	"github.com/Yussef-Makhlouf/admin-dashboard-macc/internal/domain"
)

type statsUsecase struct {
	stats domain.StatsClient
}

func NewStatsUsecase(stats domain.StatsClient) domain.StatsUsecase {
	return &statsUsecase{stats: stats}
}

func (u *statsUsecase) Dashboard(ctx context.Context) (*domain.Stats, error) {
	return u.stats.Fetch(ctx)
}
