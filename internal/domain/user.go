package domain

import (
	"context"
	"time"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
	RoleHR    Role = "hr"
)

func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleAdmin, RoleHR:
		return true
	}
	return false
}

// User is a dashboard account. The password never appears here: it is
// write-only and lives only in UserDraft on its way upstream.
type User struct {
	ID        string    `json:"_id"`
	UserName  string    `json:"userName"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	IsActive  bool      `json:"isActive"`
	Image     *Image    `json:"image,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitzero"`
	UpdatedAt time.Time `json:"updatedAt,omitzero"`
}

// UserDraft is the transient form state for an account. Password is
// required on create; on update a blank password means unchanged and the
// field is omitted from the request.
type UserDraft struct {
	UserName string
	Email    string
	Password string
	Role     Role
	IsActive bool
	Avatar   *Upload
}

// UserClient is the boundary to the upstream users resource. Create and
// update use multipart encoding because an avatar image may accompany the
// request.
type UserClient interface {
	List(ctx context.Context) ([]User, error)
	Get(ctx context.Context, id string) (*User, error)
	Create(ctx context.Context, draft UserDraft) (*User, error)
	Update(ctx context.Context, id string, draft UserDraft) (*User, error)
	Delete(ctx context.Context, id string) error
	BulkDelete(ctx context.Context, ids []string) error
}

type UserUsecase interface {
	List(ctx context.Context) ([]User, error)
	Get(ctx context.Context, id string) (*User, error)
	Create(ctx context.Context, draft UserDraft) ([]User, error)
	Update(ctx context.Context, id string, draft UserDraft) ([]User, error)
	Delete(ctx context.Context, id string) ([]User, error)
	BulkDelete(ctx context.Context, ids []string) ([]User, error)
}
