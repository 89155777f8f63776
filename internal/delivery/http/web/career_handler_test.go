package web_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yussef-Makhlouf/admin-dashboard-macc/internal/delivery/http/web"
	"github.com/Yussef-Makhlouf/admin-dashboard-macc/internal/domain"
	"github.com/Yussef-Makhlouf/admin-dashboard-macc/pkg/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init()
}

// careerUCStub satisfies domain.CareerUsecase with function fields so each
// test overrides only what it exercises.
type careerUCStub struct {
	list       func(ctx context.Context) ([]domain.Career, error)
	bulkDelete func(ctx context.Context, ids []string) ([]domain.Career, error)
	create     func(ctx context.Context, draft domain.CareerDraft) ([]domain.Career, error)
}

func (s *careerUCStub) List(ctx context.Context) ([]domain.Career, error) {
	return s.list(ctx)
}

func (s *careerUCStub) Get(ctx context.Context, id string) (*domain.Career, error) {
	return nil, domain.ErrNotFound
}

func (s *careerUCStub) Create(ctx context.Context, draft domain.CareerDraft) ([]domain.Career, error) {
	return s.create(ctx, draft)
}

func (s *careerUCStub) Update(ctx context.Context, id string, draft domain.CareerDraft) ([]domain.Career, error) {
	return nil, nil
}

func (s *careerUCStub) ToggleStatus(ctx context.Context, id string) ([]domain.Career, error) {
	return nil, nil
}

func (s *careerUCStub) Delete(ctx context.Context, id string) ([]domain.Career, error) {
	return nil, nil
}

func (s *careerUCStub) BulkDelete(ctx context.Context, ids []string) ([]domain.Career, error) {
	return s.bulkDelete(ctx, ids)
}

func careerRouter(uc domain.CareerUsecase) *gin.Engine {
	r := gin.New()
	r.LoadHTMLGlob("../../../../web/templates/*.tmpl")
	web.NewCareerHandler(r.Group("/dashboard"), uc)
	return r
}

func testCareers() []domain.Career {
	return []domain.Career{
		{ID: "c1", Title: domain.Localized{En: "Site Engineer"}, Department: domain.Localized{En: "Engineering"}, Location: domain.Localized{En: "Riyadh"}, IsActive: true},
		{ID: "c2", Title: domain.Localized{En: "Recruiter"}, Department: domain.Localized{En: "HR"}, Location: domain.Localized{En: "Jeddah"}, IsActive: true},
		{ID: "c3", Title: domain.Localized{En: "Surveyor"}, Department: domain.Localized{En: "Engineering"}, Location: domain.Localized{En: "Jeddah"}, IsActive: false},
	}
}

func TestCareerListFiltering(t *testing.T) {
	uc := &careerUCStub{
		list: func(context.Context) ([]domain.Career, error) { return testCareers(), nil },
	}
	r := careerRouter(uc)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dashboard/careers?department=Engineering&status=active", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Site Engineer")
	assert.NotContains(t, body, "Recruiter") // wrong department
	assert.NotContains(t, body, "Surveyor")  // inactive
	// Counts always reflect the full collection, not the filtered view.
	assert.Contains(t, body, `<span class="card-value">3</span>`)
}

func TestCareerBulkDeleteResolvesAtConfirmTime(t *testing.T) {
	var gotIDs []string
	uc := &careerUCStub{
		list: func(context.Context) ([]domain.Career, error) { return testCareers(), nil },
		bulkDelete: func(_ context.Context, ids []string) ([]domain.Career, error) {
			gotIDs = ids
			return testCareers()[1:], nil
		},
	}
	r := careerRouter(uc)

	// c1 and c2 were ticked, but the Engineering filter excludes c2 from
	// the view at confirmation time, so only c1 goes upstream.
	form := url.Values{"ids": {"c1", "c2"}}
	req := httptest.NewRequest(http.MethodPost, "/dashboard/careers/bulk-delete?department=Engineering", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"c1"}, gotIDs)
	assert.Contains(t, rec.Body.String(), "1 jobs deleted")
}

func TestCareerCreateInvalidFormSkipsNetwork(t *testing.T) {
	called := false
	uc := &careerUCStub{
		create: func(context.Context, domain.CareerDraft) ([]domain.Career, error) {
			called = true
			return nil, nil
		},
	}
	r := careerRouter(uc)

	form := url.Values{"title_en": {"Only English"}}
	req := httptest.NewRequest(http.MethodPost, "/dashboard/careers", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, called, "invalid form must not reach the usecase")
	// Entered values survive the round trip.
	assert.Contains(t, rec.Body.String(), "Only English")
}
