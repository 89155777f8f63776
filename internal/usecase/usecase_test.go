package usecase_test

import (
	"context"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Yussef-Makhlouf/admin-dashboard-macc/internal/domain"
	"github.com/Yussef-Makhlouf/admin-dashboard-macc/internal/usecase"
	"github.com/Yussef-Makhlouf/admin-dashboard-macc/pkg/apperror"
)

// Mock Clients

type MockServiceClient struct {
	mock.Mock
}

func (m *MockServiceClient) List(ctx context.Context) ([]domain.ServiceSection, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ServiceSection), args.Error(1)
}

func (m *MockServiceClient) Get(ctx context.Context, id string) (*domain.ServiceSection, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ServiceSection), args.Error(1)
}

func (m *MockServiceClient) Create(ctx context.Context, draft domain.ServiceSectionDraft) (*domain.ServiceSection, error) {
	args := m.Called(ctx, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ServiceSection), args.Error(1)
}

func (m *MockServiceClient) Update(ctx context.Context, id string, draft domain.ServiceSectionDraft) (*domain.ServiceSection, error) {
	args := m.Called(ctx, id, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ServiceSection), args.Error(1)
}

func (m *MockServiceClient) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockServiceClient) BulkDelete(ctx context.Context, ids []string) error {
	return m.Called(ctx, ids).Error(0)
}

func (m *MockServiceClient) AddItem(ctx context.Context, sectionID string, draft domain.ServiceItemDraft) (*domain.ServiceSection, error) {
	args := m.Called(ctx, sectionID, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ServiceSection), args.Error(1)
}

func (m *MockServiceClient) UpdateItem(ctx context.Context, sectionID, itemID string, draft domain.ServiceItemDraft) (*domain.ServiceSection, error) {
	args := m.Called(ctx, sectionID, itemID, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ServiceSection), args.Error(1)
}

func (m *MockServiceClient) DeleteItem(ctx context.Context, sectionID, itemID string) (*domain.ServiceSection, error) {
	args := m.Called(ctx, sectionID, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ServiceSection), args.Error(1)
}

type MockApplicationClient struct {
	mock.Mock
}

func (m *MockApplicationClient) List(ctx context.Context) ([]domain.Application, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Application), args.Error(1)
}

func (m *MockApplicationClient) Get(ctx context.Context, id string) (*domain.Application, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}

func (m *MockApplicationClient) ListByCareer(ctx context.Context, careerID string) ([]domain.Application, error) {
	args := m.Called(ctx, careerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Application), args.Error(1)
}

func (m *MockApplicationClient) UpdateStatus(ctx context.Context, id string, status domain.ApplicationStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *MockApplicationClient) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockCareerClient struct {
	mock.Mock
}

func (m *MockCareerClient) List(ctx context.Context) ([]domain.Career, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Career), args.Error(1)
}

func (m *MockCareerClient) Get(ctx context.Context, id string) (*domain.Career, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Career), args.Error(1)
}

func (m *MockCareerClient) Create(ctx context.Context, draft domain.CareerDraft) (*domain.Career, error) {
	args := m.Called(ctx, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Career), args.Error(1)
}

func (m *MockCareerClient) Update(ctx context.Context, id string, draft domain.CareerDraft) (*domain.Career, error) {
	args := m.Called(ctx, id, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Career), args.Error(1)
}

func (m *MockCareerClient) ToggleStatus(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockCareerClient) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockCareerClient) BulkDelete(ctx context.Context, ids []string) error {
	return m.Called(ctx, ids).Error(0)
}

type MockUserClient struct {
	mock.Mock
}

func (m *MockUserClient) List(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserClient) Get(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserClient) Create(ctx context.Context, draft domain.UserDraft) (*domain.User, error) {
	args := m.Called(ctx, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserClient) Update(ctx context.Context, id string, draft domain.UserDraft) (*domain.User, error) {
	args := m.Called(ctx, id, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserClient) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockUserClient) BulkDelete(ctx context.Context, ids []string) error {
	return m.Called(ctx, ids).Error(0)
}

// Fixtures

func validCareerDraft() domain.CareerDraft {
	return domain.CareerDraft{
		Title:          domain.Localized{En: "Site Engineer", Ar: "مهندس موقع"},
		Department:     domain.Localized{En: "Engineering", Ar: "الهندسة"},
		Location:       domain.Localized{En: "Riyadh", Ar: "الرياض"},
		EmploymentType: domain.Localized{En: "Full-time", Ar: "دوام كامل"},
	}
}

func validItemDraft() domain.ServiceItemDraft {
	return domain.ServiceItemDraft{
		Title:    domain.Localized{En: "Concrete works", Ar: "أعمال الخرسانة"},
		Category: domain.Localized{En: "Construction", Ar: "البناء"},
		Image:    &domain.Upload{Filename: "item.png", ContentType: "image/png", Content: []byte{1}},
	}
}

// Tests

func TestCareerMutationsRefetch(t *testing.T) {
	ctx := context.Background()
	refreshed := []domain.Career{{ID: "c1"}, {ID: "c2"}}

	t.Run("Create submits then refetches the full collection", func(t *testing.T) {
		client := new(MockCareerClient)
		uc := usecase.NewCareerUsecase(client)

		client.On("Create", ctx, mock.Anything).Return(&domain.Career{ID: "c2"}, nil).Once()
		client.On("List", ctx).Return(refreshed, nil).Once()

		got, err := uc.Create(ctx, validCareerDraft())
		assert.NoError(t, err)
		assert.Equal(t, refreshed, got)
		client.AssertExpectations(t)
	})

	t.Run("Failed toggle returns error and no collection", func(t *testing.T) {
		client := new(MockCareerClient)
		uc := usecase.NewCareerUsecase(client)

		client.On("ToggleStatus", ctx, "c1").Return(apperror.FromStatus(500, "boom")).Once()

		got, err := uc.ToggleStatus(ctx, "c1")
		assert.Error(t, err)
		assert.Nil(t, got)
		client.AssertNotCalled(t, "List", ctx)
	})

	t.Run("Missing bilingual field fails before any network call", func(t *testing.T) {
		client := new(MockCareerClient)
		uc := usecase.NewCareerUsecase(client)

		draft := validCareerDraft()
		draft.Department.Ar = ""
		_, err := uc.Create(ctx, draft)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Department")
		client.AssertNotCalled(t, "Create", ctx, mock.Anything)
	})

	t.Run("Bulk delete sends one batched call", func(t *testing.T) {
		client := new(MockCareerClient)
		uc := usecase.NewCareerUsecase(client)

		ids := []string{"c1", "c2"}
		client.On("BulkDelete", ctx, ids).Return(nil).Once()
		client.On("List", ctx).Return([]domain.Career{}, nil).Once()

		_, err := uc.BulkDelete(ctx, ids)
		assert.NoError(t, err)
		client.AssertExpectations(t)
	})

	t.Run("Empty bulk delete is rejected", func(t *testing.T) {
		client := new(MockCareerClient)
		uc := usecase.NewCareerUsecase(client)

		_, err := uc.BulkDelete(ctx, nil)
		assert.Error(t, err)
		client.AssertNotCalled(t, "BulkDelete", ctx, mock.Anything)
	})
}

func TestApplicationStatusUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("Exactly one status call then one refetch", func(t *testing.T) {
		client := new(MockApplicationClient)
		uc := usecase.NewApplicationUsecase(client)

		client.On("UpdateStatus", ctx, "a1", domain.StatusAccepted).Return(nil).Once()
		client.On("List", ctx).Return([]domain.Application{{ID: "a1", Status: domain.StatusAccepted}}, nil).Once()

		got, err := uc.UpdateStatus(ctx, "a1", domain.StatusAccepted)
		assert.NoError(t, err)
		assert.Len(t, got, 1)
		client.AssertExpectations(t)
	})

	t.Run("Unknown status fails before any network call", func(t *testing.T) {
		client := new(MockApplicationClient)
		uc := usecase.NewApplicationUsecase(client)

		_, err := uc.UpdateStatus(ctx, "a1", "Archived")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid application status")
		client.AssertNotCalled(t, "UpdateStatus", ctx, "a1", mock.Anything)
	})

	t.Run("Any status is reachable from any other", func(t *testing.T) {
		client := new(MockApplicationClient)
		uc := usecase.NewApplicationUsecase(client)

		client.On("UpdateStatus", ctx, "a1", domain.StatusPending).Return(nil).Once()
		client.On("List", ctx).Return([]domain.Application{}, nil).Once()

		// Rejected back to Pending; no transition rules apply.
		_, err := uc.UpdateStatus(ctx, "a1", domain.StatusPending)
		assert.NoError(t, err)
		client.AssertExpectations(t)
	})
}

func TestServiceItemImage(t *testing.T) {
	ctx := context.Background()

	t.Run("Adding an item without an image fails before any network call", func(t *testing.T) {
		client := new(MockServiceClient)
		uc := usecase.NewServiceUsecase(client)

		draft := validItemDraft()
		draft.Image = nil
		_, err := uc.AddItem(ctx, "s1", draft)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Image is required")
		client.AssertNotCalled(t, "AddItem", ctx, "s1", mock.Anything)
	})

	t.Run("Updating an item without a new image keeps the existing one", func(t *testing.T) {
		client := new(MockServiceClient)
		uc := usecase.NewServiceUsecase(client)

		draft := validItemDraft()
		draft.Image = nil
		client.On("UpdateItem", ctx, "s1", "i1", draft).Return(&domain.ServiceSection{ID: "s1"}, nil).Once()
		client.On("List", ctx).Return([]domain.ServiceSection{{ID: "s1"}}, nil).Once()

		_, err := uc.UpdateItem(ctx, "s1", "i1", draft)
		assert.NoError(t, err)
		client.AssertExpectations(t)
	})

	t.Run("Section image stays optional on create", func(t *testing.T) {
		client := new(MockServiceClient)
		uc := usecase.NewServiceUsecase(client)

		draft := domain.ServiceSectionDraft{
			Title:       domain.Localized{En: "Our Services", Ar: "خدماتنا"},
			Description: domain.Localized{En: "What we do", Ar: "ما نقوم به"},
		}
		client.On("Create", ctx, draft).Return(&domain.ServiceSection{ID: "s1"}, nil).Once()
		client.On("List", ctx).Return([]domain.ServiceSection{{ID: "s1"}}, nil).Once()

		_, err := uc.Create(ctx, draft)
		assert.NoError(t, err)
		client.AssertExpectations(t)
	})
}

func TestUserDraftValidation(t *testing.T) {
	ctx := context.Background()
	validate := validator.New()

	base := domain.UserDraft{
		UserName: "Huda",
		Email:    "huda@example.com",
		Password: "supersecret",
		Role:     domain.RoleAdmin,
		IsActive: true,
	}

	t.Run("Create requires a password", func(t *testing.T) {
		client := new(MockUserClient)
		uc := usecase.NewUserUsecase(client, validate)

		draft := base
		draft.Password = ""
		_, err := uc.Create(ctx, draft)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Password is required")
		client.AssertNotCalled(t, "Create", ctx, mock.Anything)
	})

	t.Run("Update treats blank password as unchanged", func(t *testing.T) {
		client := new(MockUserClient)
		uc := usecase.NewUserUsecase(client, validate)

		draft := base
		draft.Password = ""
		client.On("Update", ctx, "u1", draft).Return(&domain.User{ID: "u1"}, nil).Once()
		client.On("List", ctx).Return([]domain.User{{ID: "u1"}}, nil).Once()

		_, err := uc.Update(ctx, "u1", draft)
		assert.NoError(t, err)
		client.AssertExpectations(t)
	})

	t.Run("Invalid email is rejected", func(t *testing.T) {
		client := new(MockUserClient)
		uc := usecase.NewUserUsecase(client, validate)

		draft := base
		draft.Email = "not-an-email"
		_, err := uc.Create(ctx, draft)
		assert.Error(t, err)
	})

	t.Run("Short password is rejected", func(t *testing.T) {
		client := new(MockUserClient)
		uc := usecase.NewUserUsecase(client, validate)

		draft := base
		draft.Password = "short"
		_, err := uc.Create(ctx, draft)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "at least 8")
	})
}
