package usecase

import (
	"context"

	"github.com/go-playground/validator/v10"

	"github.com/Yussef-Makhlouf/admin-dashboard-macc/internal/domain"
	"github.com/Yussef-Makhlouf/admin-dashboard-macc/pkg/apperror"
)

type userUsecase struct {
	users    domain.UserClient
	validate *validator.Validate
}

func NewUserUsecase(users domain.UserClient, validate *validator.Validate) domain.UserUsecase {
	return &userUsecase{users: users, validate: validate}
}

func (u *userUsecase) List(ctx context.Context) ([]domain.User, error) {
	return u.users.List(ctx)
}

func (u *userUsecase) Get(ctx context.Context, id string) (*domain.User, error) {
	return u.users.Get(ctx, id)
}

func (u *userUsecase) validateDraft(draft domain.UserDraft, passwordRequired bool) error {
	if draft.UserName == "" {
		return apperror.BadRequest("Username is required")
	}
	if err := u.validate.Var(draft.Email, "required,email"); err != nil {
		return apperror.BadRequest("A valid email address is required")
	}
	if !draft.Role.Valid() {
		return apperror.BadRequest("Invalid role")
	}
	if passwordRequired && draft.Password == "" {
		return apperror.BadRequest("Password is required for new accounts")
	}
	if draft.Password != "" {
		if err := u.validate.Var(draft.Password, "min=8"); err != nil {
			return apperror.BadRequest("Password must be at least 8 characters")
		}
	}
	return nil
}

func (u *userUsecase) Create(ctx context.Context, draft domain.UserDraft) ([]domain.User, error) {
	if err := u.validateDraft(draft, true); err != nil {
		return nil, err
	}
	if _, err := u.users.Create(ctx, draft); err != nil {
		return nil, err
	}
	return u.users.List(ctx)
}

// Update treats a blank password as "leave unchanged"; the client omits the
// field entirely in that case.
func (u *userUsecase) Update(ctx context.Context, id string, draft domain.UserDraft) ([]domain.User, error) {
	if err := u.validateDraft(draft, false); err != nil {
		return nil, err
	}
	if _, err := u.users.Update(ctx, id, draft); err != nil {
		return nil, err
	}
	return u.users.List(ctx)
}

func (u *userUsecase) Delete(ctx context.Context, id string) ([]domain.User, error) {
	if err := u.users.Delete(ctx, id); err != nil {
		return nil, err
	}
	return u.users.List(ctx)
}

func (u *userUsecase) BulkDelete(ctx context.Context, ids []string) ([]domain.User, error) {
	if len(ids) == 0 {
		return nil, apperror.BadRequest("No accounts selected")
	}
	if err := u.users.BulkDelete(ctx, ids); err != nil {
		return nil, err
	}
	return u.users.List(ctx)
}
