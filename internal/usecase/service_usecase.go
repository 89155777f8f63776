package usecase

import (
	"context"

	"github.com/Yussef-Makhlouf/admin-dashboard-macc/internal/domain"
	"github.com/Yussef-Makhlouf/admin-dashboard-macc/pkg/apperror"
)

type serviceUsecase struct {
	services domain.ServiceClient
}

func NewServiceUsecase(services domain.ServiceClient) domain.ServiceUsecase {
	return &serviceUsecase{services: services}
}

func (u *serviceUsecase) List(ctx context.Context) ([]domain.ServiceSection, error) {
	return u.services.List(ctx)
}

func (u *serviceUsecase) Get(ctx context.Context, id string) (*domain.ServiceSection, error) {
	return u.services.Get(ctx, id)
}

func validateSectionDraft(draft domain.ServiceSectionDraft) error {
	if draft.Title.En == "" || draft.Title.Ar == "" {
		return apperror.BadRequest("Title is required in both languages")
	}
	if draft.Description.En == "" || draft.Description.Ar == "" {
		return apperror.BadRequest("Description is required in both languages")
	}
	return nil
}

// Create validates the draft, submits it, then refetches: the returned
// collection is always server truth, never a local patch.
func (u *serviceUsecase) Create(ctx context.Context, draft domain.ServiceSectionDraft) ([]domain.ServiceSection, error) {
	if err := validateSectionDraft(draft); err != nil {
		return nil, err
	}
	// Section image is optional on create and update.
	if _, err := u.services.Create(ctx, draft); err != nil {
		return nil, err
	}
	return u.services.List(ctx)
}

func (u *serviceUsecase) Update(ctx context.Context, id string, draft domain.ServiceSectionDraft) ([]domain.ServiceSection, error) {
	if err := validateSectionDraft(draft); err != nil {
		return nil, err
	}
	if _, err := u.services.Update(ctx, id, draft); err != nil {
		return nil, err
	}
	return u.services.List(ctx)
}

func (u *serviceUsecase) Delete(ctx context.Context, id string) ([]domain.ServiceSection, error) {
	if err := u.services.Delete(ctx, id); err != nil {
		return nil, err
	}
	return u.services.List(ctx)
}

func (u *serviceUsecase) BulkDelete(ctx context.Context, ids []string) ([]domain.ServiceSection, error) {
	if len(ids) == 0 {
		return nil, apperror.BadRequest("No sections selected")
	}
	if err := u.services.BulkDelete(ctx, ids); err != nil {
		return nil, err
	}
	return u.services.List(ctx)
}

func validateItemDraft(draft domain.ServiceItemDraft) error {
	if draft.Title.En == "" || draft.Title.Ar == "" {
		return apperror.BadRequest("Title is required in both languages")
	}
	if draft.Category.En == "" || draft.Category.Ar == "" {
		return apperror.BadRequest("Category is required in both languages")
	}
	return nil
}

// AddItem requires an image: a new item with no upload fails here, before
// any network call is made.
func (u *serviceUsecase) AddItem(ctx context.Context, sectionID string, draft domain.ServiceItemDraft) ([]domain.ServiceSection, error) {
	if err := validateItemDraft(draft); err != nil {
		return nil, err
	}
	if draft.Image == nil {
		return nil, apperror.BadRequest("Image is required for new items")
	}
	if _, err := u.services.AddItem(ctx, sectionID, draft); err != nil {
		return nil, err
	}
	return u.services.List(ctx)
}

// UpdateItem keeps the existing image when no new upload is provided.
func (u *serviceUsecase) UpdateItem(ctx context.Context, sectionID, itemID string, draft domain.ServiceItemDraft) ([]domain.ServiceSection, error) {
	if err := validateItemDraft(draft); err != nil {
		return nil, err
	}
	if _, err := u.services.UpdateItem(ctx, sectionID, itemID, draft); err != nil {
		return nil, err
	}
	return u.services.List(ctx)
}

func (u *serviceUsecase) DeleteItem(ctx context.Context, sectionID, itemID string) ([]domain.ServiceSection, error) {
	if _, err := u.services.DeleteItem(ctx, sectionID, itemID); err != nil {
		return nil, err
	}
	return u.services.List(ctx)
}
