package web

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Yussef-Makhlouf/admin-dashboard-macc/internal/delivery/http/render"
	"github.com/Yussef-Makhlouf/admin-dashboard-macc/internal/domain"
	"github.com/Yussef-Makhlouf/admin-dashboard-macc/pkg/apperror"
	"github.com/Yussef-Makhlouf/admin-dashboard-macc/pkg/imaging"
)

// noticeForBindError surfaces upload validation failures as a notice.
// Plain field validation errors are reported through the Errors list, so
// they get no notice here.
func noticeForBindError(err error) *render.Notice {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return render.FailNotice(err)
	}
	return nil
}

// readUpload pulls an optional image from a multipart form and validates it
// before it goes anywhere. Returns nil when the field was left empty.
func readUpload(c *gin.Context, field string, maxBytes int64) (*domain.Upload, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		// A form without any file part at all is also "no upload".
		return nil, nil
	}

	f, err := fileHeader.Open()
	if err != nil {
		return nil, apperror.Internal(err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxBytes+1))
	if err != nil {
		return nil, apperror.Internal(err)
	}

	contentType, err := imaging.Validate(fileHeader.Filename, data, maxBytes)
	if err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	return &domain.Upload{
		Filename:    fileHeader.Filename,
		ContentType: contentType,
		Content:     data,
	}, nil
}
