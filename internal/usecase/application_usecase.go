package usecase

import (
	"context"

	"github.com/Yussef-Makhlouf/admin-dashboard-macc/internal/domain"
	"github.com/Yussef-Makhlouf/admin-dashboard-macc/pkg/apperror"
)

type applicationUsecase struct {
	applications domain.ApplicationClient
}

func NewApplicationUsecase(applications domain.ApplicationClient) domain.ApplicationUsecase {
	return &applicationUsecase{applications: applications}
}

func (u *applicationUsecase) List(ctx context.Context) ([]domain.Application, error) {
	return u.applications.List(ctx)
}

func (u *applicationUsecase) Get(ctx context.Context, id string) (*domain.Application, error) {
	return u.applications.Get(ctx, id)
}

func (u *applicationUsecase) ListByCareer(ctx context.Context, careerID string) ([]domain.Application, error) {
	return u.applications.ListByCareer(ctx, careerID)
}

// UpdateStatus accepts any of the four statuses from any current status; no
// transition rules exist. Exactly one PATCH goes out, followed by exactly
// one list refetch.
func (u *applicationUsecase) UpdateStatus(ctx context.Context, id string, status domain.ApplicationStatus) ([]domain.Application, error) {
	if !status.Valid() {
		return nil, apperror.BadRequest("Invalid application status")
	}
	if err := u.applications.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	return u.applications.List(ctx)
}

func (u *applicationUsecase) Delete(ctx context.Context, id string) ([]domain.Application, error) {
	if err := u.applications.Delete(ctx, id); err != nil {
		return nil, err
	}
	return u.applications.List(ctx)
}
