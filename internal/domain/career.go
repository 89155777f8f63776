package domain

import (
	"context"
	"encoding/json"
	"errors"
	"time"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")

type Career struct {
	ID               string
	Title            Localized
	Department       Localized
	Location         Localized
	EmploymentType   Localized
	ShortDescription Localized
	Description      Localized
	Responsibilities LocalizedLines
	Requirements     LocalizedLines
	IsActive         bool
	Order            int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// CareerDraft is the transient form state for a job posting. The line-array
// fields arrive already split (the textarea conversion happens at the form
// boundary, never inside a draft).
type CareerDraft struct {
	Title            Localized
	Department       Localized
	Location         Localized
	EmploymentType   Localized
	ShortDescription Localized
	Description      Localized
	Responsibilities LocalizedLines
	Requirements     LocalizedLines
	IsActive         bool
	Order            int
}

type careerJSON struct {
	ID                 string    `json:"_id,omitempty"`
	TitleEn            string    `json:"title_en"`
	TitleAr            string    `json:"title_ar"`
	DepartmentEn       string    `json:"department_en"`
	DepartmentAr       string    `json:"department_ar"`
	LocationEn         string    `json:"location_en"`
	LocationAr         string    `json:"location_ar"`
	EmploymentTypeEn   string    `json:"employmentType_en"`
	EmploymentTypeAr   string    `json:"employmentType_ar"`
	ShortDescriptionEn string    `json:"shortDescription_en,omitempty"`
	ShortDescriptionAr string    `json:"shortDescription_ar,omitempty"`
	DescriptionEn      string    `json:"description_en,omitempty"`
	DescriptionAr      string    `json:"description_ar,omitempty"`
	ResponsibilitiesEn []string  `json:"responsibilities_en,omitempty"`
	ResponsibilitiesAr []string  `json:"responsibilities_ar,omitempty"`
	RequirementsEn     []string  `json:"requirements_en,omitempty"`
	RequirementsAr     []string  `json:"requirements_ar,omitempty"`
	IsActive           bool      `json:"isActive"`
	Order              int       `json:"order,omitempty"`
	CreatedAt          time.Time `json:"createdAt,omitzero"`
	UpdatedAt          time.Time `json:"updatedAt,omitzero"`
}

func (c Career) MarshalJSON() ([]byte, error) {
	return json.Marshal(careerJSON{
		ID:                 c.ID,
		TitleEn:            c.Title.En,
		TitleAr:            c.Title.Ar,
		DepartmentEn:       c.Department.En,
		DepartmentAr:       c.Department.Ar,
		LocationEn:         c.Location.En,
		LocationAr:         c.Location.Ar,
		EmploymentTypeEn:   c.EmploymentType.En,
		EmploymentTypeAr:   c.EmploymentType.Ar,
		ShortDescriptionEn: c.ShortDescription.En,
		ShortDescriptionAr: c.ShortDescription.Ar,
		DescriptionEn:      c.Description.En,
		DescriptionAr:      c.Description.Ar,
		ResponsibilitiesEn: c.Responsibilities.En,
		ResponsibilitiesAr: c.Responsibilities.Ar,
		RequirementsEn:     c.Requirements.En,
		RequirementsAr:     c.Requirements.Ar,
		IsActive:           c.IsActive,
		Order:              c.Order,
		CreatedAt:          c.CreatedAt,
		UpdatedAt:          c.UpdatedAt,
	})
}

func (c *Career) UnmarshalJSON(data []byte) error {
	var wire careerJSON
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	*c = Career{
		ID:               wire.ID,
		Title:            Localized{En: wire.TitleEn, Ar: wire.TitleAr},
		Department:       Localized{En: wire.DepartmentEn, Ar: wire.DepartmentAr},
		Location:         Localized{En: wire.LocationEn, Ar: wire.LocationAr},
		EmploymentType:   Localized{En: wire.EmploymentTypeEn, Ar: wire.EmploymentTypeAr},
		ShortDescription: Localized{En: wire.ShortDescriptionEn, Ar: wire.ShortDescriptionAr},
		Description:      Localized{En: wire.DescriptionEn, Ar: wire.DescriptionAr},
		Responsibilities: LocalizedLines{En: wire.ResponsibilitiesEn, Ar: wire.ResponsibilitiesAr},
		Requirements:     LocalizedLines{En: wire.RequirementsEn, Ar: wire.RequirementsAr},
		IsActive:         wire.IsActive,
		Order:            wire.Order,
		CreatedAt:        wire.CreatedAt,
		UpdatedAt:        wire.UpdatedAt,
	}
	return nil
}

// CareerClient is the boundary to the upstream careers resource. Payloads
// are plain JSON (careers carry no file uploads).
type CareerClient interface {
	List(ctx context.Context) ([]Career, error)
	Get(ctx context.Context, id string) (*Career, error)
	Create(ctx context.Context, draft CareerDraft) (*Career, error)
	Update(ctx context.Context, id string, draft CareerDraft) (*Career, error)
	ToggleStatus(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	BulkDelete(ctx context.Context, ids []string) error
}

type CareerUsecase interface {
	List(ctx context.Context) ([]Career, error)
	Get(ctx context.Context, id string) (*Career, error)
	Create(ctx context.Context, draft CareerDraft) ([]Career, error)
	Update(ctx context.Context, id string, draft CareerDraft) ([]Career, error)
	ToggleStatus(ctx context.Context, id string) ([]Career, error)
	Delete(ctx context.Context, id string) ([]Career, error)
	BulkDelete(ctx context.Context, ids []string) ([]Career, error)
}
