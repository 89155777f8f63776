package usecase

import (
	"context"

	"github.com/Yussef-Makhlouf/admin-dashboard-macc/internal/domain"
	"github.com/Yussef-Makhlouf/admin-dashboard-macc/pkg/apperror"
)

type careerUsecase struct {
	careers domain.CareerClient
}

func NewCareerUsecase(careers domain.CareerClient) domain.CareerUsecase {
	return &careerUsecase{careers: careers}
}

func (u *careerUsecase) List(ctx context.Context) ([]domain.Career, error) {
	return u.careers.List(ctx)
}

func (u *careerUsecase) Get(ctx context.Context, id string) (*domain.Career, error) {
	return u.careers.Get(ctx, id)
}

func validateCareerDraft(draft domain.CareerDraft) error {
	if draft.Title.En == "" || draft.Title.Ar == "" {
		return apperror.BadRequest("Title is required in both languages")
	}
	if draft.Department.En == "" || draft.Department.Ar == "" {
		return apperror.BadRequest("Department is required in both languages")
	}
	if draft.Location.En == "" || draft.Location.Ar == "" {
		return apperror.BadRequest("Location is required in both languages")
	}
	if draft.EmploymentType.En == "" || draft.EmploymentType.Ar == "" {
		return apperror.BadRequest("Employment type is required in both languages")
	}
	// Order is caller-assigned; duplicates and gaps are allowed.
	return nil
}

func (u *careerUsecase) Create(ctx context.Context, draft domain.CareerDraft) ([]domain.Career, error) {
	if err := validateCareerDraft(draft); err != nil {
		return nil, err
	}
	if _, err := u.careers.Create(ctx, draft); err != nil {
		return nil, err
	}
	return u.careers.List(ctx)
}

func (u *careerUsecase) Update(ctx context.Context, id string, draft domain.CareerDraft) ([]domain.Career, error) {
	if err := validateCareerDraft(draft); err != nil {
		return nil, err
	}
	if _, err := u.careers.Update(ctx, id, draft); err != nil {
		return nil, err
	}
	return u.careers.List(ctx)
}

func (u *careerUsecase) ToggleStatus(ctx context.Context, id string) ([]domain.Career, error) {
	if err := u.careers.ToggleStatus(ctx, id); err != nil {
		return nil, err
	}
	return u.careers.List(ctx)
}

func (u *careerUsecase) Delete(ctx context.Context, id string) ([]domain.Career, error) {
	if err := u.careers.Delete(ctx, id); err != nil {
		return nil, err
	}
	return u.careers.List(ctx)
}

func (u *careerUsecase) BulkDelete(ctx context.Context, ids []string) ([]domain.Career, error) {
	if len(ids) == 0 {
		return nil, apperror.BadRequest("No jobs selected")
	}
	if err := u.careers.BulkDelete(ctx, ids); err != nil {
		return nil, err
	}
	return u.careers.List(ctx)
}
