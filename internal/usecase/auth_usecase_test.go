package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Yussef-Makhlouf/admin-dashboard-macc/internal/domain"
	"github.com/Yussef-Makhlouf/admin-dashboard-macc/internal/usecase"
	"github.com/Yussef-Makhlouf/admin-dashboard-macc/pkg/apperror"
	"github.com/Yussef-Makhlouf/admin-dashboard-macc/pkg/logger"
)

func init() {
	logger.Init()
}

type MockAuthClient struct {
	mock.Mock
}

func (m *MockAuthClient) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *MockAuthClient) Logout(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}

func (m *MockAuthClient) ForgotPassword(ctx context.Context, email string) (string, error) {
	args := m.Called(ctx, email)
	return args.String(0), args.Error(1)
}

func (m *MockAuthClient) ResetPassword(ctx context.Context, token, newPassword string) error {
	return m.Called(ctx, token, newPassword).Error(0)
}

func (m *MockAuthClient) ChangePassword(ctx context.Context, email, newPassword string) error {
	return m.Called(ctx, email, newPassword).Error(0)
}

type MockSessionStore struct {
	mock.Mock
}

func (m *MockSessionStore) Save(ctx context.Context, s *domain.Session) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockSessionStore) Load(ctx context.Context, token string) (*domain.Session, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *MockSessionStore) Clear(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}

func (m *MockSessionStore) Close() error {
	return m.Called().Error(0)
}

func TestAuthLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("Successful login persists the session", func(t *testing.T) {
		client := new(MockAuthClient)
		store := new(MockSessionStore)
		uc := usecase.NewAuthUsecase(client, store)

		sess := &domain.Session{Token: "tok", User: domain.User{ID: "u1", UserName: "Huda"}}
		client.On("Login", ctx, "huda@example.com", "supersecret").Return(sess, nil).Once()
		store.On("Save", ctx, sess).Return(nil).Once()

		got, err := uc.Login(ctx, "huda@example.com", "supersecret")
		assert.NoError(t, err)
		assert.Equal(t, "tok", got.Token)
		store.AssertExpectations(t)
	})

	t.Run("Rejected credentials save nothing", func(t *testing.T) {
		client := new(MockAuthClient)
		store := new(MockSessionStore)
		uc := usecase.NewAuthUsecase(client, store)

		client.On("Login", ctx, "huda@example.com", "wrong").
			Return(nil, apperror.FromStatus(401, "Invalid credentials")).Once()

		_, err := uc.Login(ctx, "huda@example.com", "wrong")
		assert.Error(t, err)
		store.AssertNotCalled(t, "Save", ctx, mock.Anything)
	})

	t.Run("Blank credentials fail before any network call", func(t *testing.T) {
		client := new(MockAuthClient)
		store := new(MockSessionStore)
		uc := usecase.NewAuthUsecase(client, store)

		_, err := uc.Login(ctx, "", "")
		assert.Error(t, err)
		client.AssertNotCalled(t, "Login", ctx, mock.Anything, mock.Anything)
	})
}

func TestAuthLogout(t *testing.T) {
	t.Run("Local session clears even when upstream logout fails", func(t *testing.T) {
		client := new(MockAuthClient)
		store := new(MockSessionStore)
		uc := usecase.NewAuthUsecase(client, store)

		ctx := domain.WithToken(context.Background(), "tok")
		client.On("Logout", ctx, "tok").Return(errors.New("upstream down")).Once()
		store.On("Clear", ctx, "tok").Return(nil).Once()

		assert.NoError(t, uc.Logout(ctx))
		store.AssertExpectations(t)
	})

	t.Run("No token means nothing to do", func(t *testing.T) {
		client := new(MockAuthClient)
		store := new(MockSessionStore)
		uc := usecase.NewAuthUsecase(client, store)

		assert.NoError(t, uc.Logout(context.Background()))
		client.AssertNotCalled(t, "Logout", mock.Anything, mock.Anything)
	})
}

func TestPasswordRules(t *testing.T) {
	ctx := context.Background()

	t.Run("Reset rejects short passwords", func(t *testing.T) {
		client := new(MockAuthClient)
		store := new(MockSessionStore)
		uc := usecase.NewAuthUsecase(client, store)

		err := uc.ResetPassword(ctx, "reset-tok", "short")
		assert.Error(t, err)
		client.AssertNotCalled(t, "ResetPassword", ctx, mock.Anything, mock.Anything)
	})

	t.Run("Change forwards a valid password", func(t *testing.T) {
		client := new(MockAuthClient)
		store := new(MockSessionStore)
		uc := usecase.NewAuthUsecase(client, store)

		client.On("ChangePassword", ctx, "huda@example.com", "longenough").Return(nil).Once()
		assert.NoError(t, uc.ChangePassword(ctx, "huda@example.com", "longenough"))
		client.AssertExpectations(t)
	})
}
