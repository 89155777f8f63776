package domain

import (
	"context"
	"encoding/json"
	"time"
)

type ApplicationStatus string

const (
	StatusPending  ApplicationStatus = "Pending"
	StatusReviewed ApplicationStatus = "Reviewed"
	StatusAccepted ApplicationStatus = "Accepted"
	StatusRejected ApplicationStatus = "Rejected"
)

// ApplicationStatuses lists every status in display order. Any status is
// reachable from any other; no transition rules exist.
var ApplicationStatuses = []ApplicationStatus{StatusPending, StatusReviewed, StatusAccepted, StatusRejected}

func (s ApplicationStatus) Valid() bool {
	switch s {
	case StatusPending, StatusReviewed, StatusAccepted, StatusRejected:
		return true
	}
	return false
}

// CareerRef is the career reference on an application. The upstream API
// sometimes populates the full career document and sometimes sends the bare
// id; callers must go through Resolved instead of assuming either shape.
type CareerRef struct {
	id     string
	career *Career
}

func ResolvedCareer(c *Career) CareerRef {
	if c == nil {
		return CareerRef{}
	}
	return CareerRef{id: c.ID, career: c}
}

func UnresolvedCareer(id string) CareerRef {
	return CareerRef{id: id}
}

// ID is available in both shapes.
func (r CareerRef) ID() string {
	return r.id
}

// Resolved returns the populated career, or false when only the id arrived.
func (r CareerRef) Resolved() (*Career, bool) {
	return r.career, r.career != nil
}

// Title returns the English title when resolved, else the bare id so lists
// still show something identifying.
func (r CareerRef) Title() string {
	if r.career != nil {
		return r.career.Title.En
	}
	return r.id
}

func (r CareerRef) MarshalJSON() ([]byte, error) {
	if r.career != nil {
		return json.Marshal(r.career)
	}
	return json.Marshal(r.id)
}

func (r *CareerRef) UnmarshalJSON(data []byte) error {
	var id string
	if err := json.Unmarshal(data, &id); err == nil {
		*r = CareerRef{id: id}
		return nil
	}
	var career Career
	if err := json.Unmarshal(data, &career); err != nil {
		return err
	}
	*r = CareerRef{id: career.ID, career: &career}
	return nil
}

type Application struct {
	ID        string            `json:"_id"`
	Career    CareerRef         `json:"career"`
	FullName  string            `json:"fullName"`
	Email     string            `json:"email"`
	Phone     string            `json:"phone"`
	CV        CVFile            `json:"cv"`
	Status    ApplicationStatus `json:"status"`
	CreatedAt time.Time         `json:"createdAt"`
}

// ApplicationClient is the boundary to the upstream applications resource.
// Status is the only mutable field besides deletion.
type ApplicationClient interface {
	List(ctx context.Context) ([]Application, error)
	Get(ctx context.Context, id string) (*Application, error)
	ListByCareer(ctx context.Context, careerID string) ([]Application, error)
	UpdateStatus(ctx context.Context, id string, status ApplicationStatus) error
	Delete(ctx context.Context, id string) error
}

type ApplicationUsecase interface {
	List(ctx context.Context) ([]Application, error)
	Get(ctx context.Context, id string) (*Application, error)
	ListByCareer(ctx context.Context, careerID string) ([]Application, error)
	UpdateStatus(ctx context.Context, id string, status ApplicationStatus) ([]Application, error)
	Delete(ctx context.Context, id string) ([]Application, error)
}
