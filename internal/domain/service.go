package domain

import (
	"context"
	"encoding/json"
	"time"
)

// ServiceHeader is the bilingual headline block of a service section.
type ServiceHeader struct {
	Title       Localized
	SubTitle    Localized
	Description Localized
	Image       *Image
}

// ServiceItem is one entry inside a section's services list. Order is
// caller-assigned; duplicates and gaps are permitted and never resequenced
// here.
type ServiceItem struct {
	ID          string
	Title       Localized
	Category    Localized
	Description Localized
	Image       *Image
	CustomID    string
	Order       int
}

type ServiceSection struct {
	ID        string
	Header    ServiceHeader
	Services  []ServiceItem
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ServiceSectionDraft is the transient form state for creating or editing a
// section. Image is optional on both create and update.
type ServiceSectionDraft struct {
	Title       Localized
	SubTitle    Localized
	Description Localized
	IsActive    bool
	Image       *Upload
}

// ServiceItemDraft is the transient form state for a section item. On
// create with no existing image the Image upload is required; this is
// enforced before any network call.
type ServiceItemDraft struct {
	Title       Localized
	Category    Localized
	Description Localized
	CustomID    string
	Order       int
	Image       *Upload
}

type serviceHeaderJSON struct {
	TitleEn       string `json:"title_en"`
	TitleAr       string `json:"title_ar"`
	SubTitleEn    string `json:"sub_title_en"`
	SubTitleAr    string `json:"sub_title_ar"`
	DescriptionEn string `json:"description_en"`
	DescriptionAr string `json:"description_ar"`
	Image         *Image `json:"image,omitempty"`
}

type serviceItemJSON struct {
	ID            string `json:"_id,omitempty"`
	TitleEn       string `json:"title_en"`
	TitleAr       string `json:"title_ar"`
	CategoryEn    string `json:"category_en"`
	CategoryAr    string `json:"category_ar"`
	DescriptionEn string `json:"description_en"`
	DescriptionAr string `json:"description_ar"`
	Image         *Image `json:"image,omitempty"`
	CustomID      string `json:"customId,omitempty"`
	Order         int    `json:"order"`
}

type serviceSectionJSON struct {
	ID        string            `json:"_id,omitempty"`
	Header    serviceHeaderJSON `json:"header"`
	Services  []serviceItemJSON `json:"services"`
	IsActive  bool              `json:"isActive"`
	CreatedAt time.Time         `json:"createdAt,omitzero"`
	UpdatedAt time.Time         `json:"updatedAt,omitzero"`
}

func (s ServiceSection) MarshalJSON() ([]byte, error) {
	wire := serviceSectionJSON{
		ID: s.ID,
		Header: serviceHeaderJSON{
			TitleEn:       s.Header.Title.En,
			TitleAr:       s.Header.Title.Ar,
			SubTitleEn:    s.Header.SubTitle.En,
			SubTitleAr:    s.Header.SubTitle.Ar,
			DescriptionEn: s.Header.Description.En,
			DescriptionAr: s.Header.Description.Ar,
			Image:         s.Header.Image,
		},
		IsActive:  s.IsActive,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
	for _, item := range s.Services {
		wire.Services = append(wire.Services, serviceItemJSON{
			ID:            item.ID,
			TitleEn:       item.Title.En,
			TitleAr:       item.Title.Ar,
			CategoryEn:    item.Category.En,
			CategoryAr:    item.Category.Ar,
			DescriptionEn: item.Description.En,
			DescriptionAr: item.Description.Ar,
			Image:         item.Image,
			CustomID:      item.CustomID,
			Order:         item.Order,
		})
	}
	return json.Marshal(wire)
}

func (s *ServiceSection) UnmarshalJSON(data []byte) error {
	var wire serviceSectionJSON
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	s.ID = wire.ID
	s.Header = ServiceHeader{
		Title:       Localized{En: wire.Header.TitleEn, Ar: wire.Header.TitleAr},
		SubTitle:    Localized{En: wire.Header.SubTitleEn, Ar: wire.Header.SubTitleAr},
		Description: Localized{En: wire.Header.DescriptionEn, Ar: wire.Header.DescriptionAr},
		Image:       wire.Header.Image,
	}
	s.Services = nil
	for _, item := range wire.Services {
		s.Services = append(s.Services, ServiceItem{
			ID:          item.ID,
			Title:       Localized{En: item.TitleEn, Ar: item.TitleAr},
			Category:    Localized{En: item.CategoryEn, Ar: item.CategoryAr},
			Description: Localized{En: item.DescriptionEn, Ar: item.DescriptionAr},
			Image:       item.Image,
			CustomID:    item.CustomID,
			Order:       item.Order,
		})
	}
	s.IsActive = wire.IsActive
	s.CreatedAt = wire.CreatedAt
	s.UpdatedAt = wire.UpdatedAt
	return nil
}

// ServiceClient is the sole boundary to the upstream services resource.
// Section create/update and item create/update use multipart encoding
// because an image file may accompany the request; item mutations return
// the updated parent section.
type ServiceClient interface {
	List(ctx context.Context) ([]ServiceSection, error)
	Get(ctx context.Context, id string) (*ServiceSection, error)
	Create(ctx context.Context, draft ServiceSectionDraft) (*ServiceSection, error)
	Update(ctx context.Context, id string, draft ServiceSectionDraft) (*ServiceSection, error)
	Delete(ctx context.Context, id string) error
	BulkDelete(ctx context.Context, ids []string) error
	AddItem(ctx context.Context, sectionID string, draft ServiceItemDraft) (*ServiceSection, error)
	UpdateItem(ctx context.Context, sectionID, itemID string, draft ServiceItemDraft) (*ServiceSection, error)
	DeleteItem(ctx context.Context, sectionID, itemID string) (*ServiceSection, error)
}

// ServiceUsecase owns the services list workflow. Every successful mutation
// refetches and returns the full collection so the caller always renders
// server truth; a failed mutation returns only the error.
type ServiceUsecase interface {
	List(ctx context.Context) ([]ServiceSection, error)
	Get(ctx context.Context, id string) (*ServiceSection, error)
	Create(ctx context.Context, draft ServiceSectionDraft) ([]ServiceSection, error)
	Update(ctx context.Context, id string, draft ServiceSectionDraft) ([]ServiceSection, error)
	Delete(ctx context.Context, id string) ([]ServiceSection, error)
	BulkDelete(ctx context.Context, ids []string) ([]ServiceSection, error)
	AddItem(ctx context.Context, sectionID string, draft ServiceItemDraft) ([]ServiceSection, error)
	UpdateItem(ctx context.Context, sectionID, itemID string, draft ServiceItemDraft) ([]ServiceSection, error)
	DeleteItem(ctx context.Context, sectionID, itemID string) ([]ServiceSection, error)
}
