package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/Yussef-Makhlouf/admin-dashboard-macc/internal/domain"
	"github.com/Yussef-Makhlouf/admin-dashboard-macc/pkg/apperror"
)

type authClient struct {
	c *Client
}

func NewAuthClient(c *Client) domain.AuthClient {
	return &authClient{c: c}
}

// Login exchanges credentials for a bearer token. The endpoint answers
// {message, userUpdated: {token, ...profile}}; the token rides inside the
// profile object and is peeled off here so it never lands in the stored
// user record.
func (a *authClient) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	payload := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Email: email, Password: password}

	data, err := a.c.doJSON(ctx, http.MethodPost, "/users/login", payload)
	if err != nil {
		return nil, err
	}

	var body struct {
		Message     string          `json:"message"`
		UserUpdated json.RawMessage `json:"userUpdated"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return nil, apperror.Internal(err)
	}
	if len(body.UserUpdated) == 0 {
		return nil, apperror.Unauthorized("Login response did not include a session")
	}

	var tokenHolder struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(body.UserUpdated, &tokenHolder); err != nil {
		return nil, apperror.Internal(err)
	}
	if tokenHolder.Token == "" {
		return nil, apperror.Unauthorized("Login response did not include a token")
	}

	var user domain.User
	if err := json.Unmarshal(body.UserUpdated, &user); err != nil {
		return nil, apperror.Internal(err)
	}

	return &domain.Session{
		Token:   tokenHolder.Token,
		User:    user,
		SavedAt: time.Now(),
	}, nil
}

func (a *authClient) Logout(ctx context.Context, token string) error {
	payload := struct {
		Token string `json:"token"`
	}{Token: token}
	_, err := a.c.doJSON(ctx, http.MethodPost, "/users/logout", payload)
	return err
}

func (a *authClient) ForgotPassword(ctx context.Context, email string) (string, error) {
	payload := struct {
		Email string `json:"email"`
	}{Email: email}
	data, err := a.c.doJSON(ctx, http.MethodPost, "/users/forget-password", payload)
	if err != nil {
		return "", err
	}
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return "", apperror.Internal(err)
	}
	return body.Message, nil
}

func (a *authClient) ResetPassword(ctx context.Context, token, newPassword string) error {
	payload := struct {
		NewPassword string `json:"newPassword"`
	}{NewPassword: newPassword}
	_, err := a.c.doJSON(ctx, http.MethodPost, "/users/reset/"+token, payload)
	return err
}

func (a *authClient) ChangePassword(ctx context.Context, email, newPassword string) error {
	payload := struct {
		Email       string `json:"email"`
		NewPassword string `json:"newPassword"`
	}{Email: email, NewPassword: newPassword}
	_, err := a.c.doJSON(ctx, http.MethodPost, "/users/change_password", payload)
	return err
}
