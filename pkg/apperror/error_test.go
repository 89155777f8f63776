package apperror_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Yussef-Makhlouf/admin-dashboard-macc/pkg/apperror"
)

func TestFromStatus(t *testing.T) {
	t.Run("Keeps the server message", func(t *testing.T) {
		err := apperror.FromStatus(http.StatusConflict, "Email already in use")
		assert.Equal(t, http.StatusConflict, err.Code)
		assert.Equal(t, "Email already in use", err.Error())
	})

	t.Run("Falls back to the status text", func(t *testing.T) {
		err := apperror.FromStatus(http.StatusNotFound, "")
		assert.Equal(t, "Request failed (Not Found)", err.Message)
	})
}

func TestInternalHidesDetail(t *testing.T) {
	err := apperror.Internal(assert.AnError)
	assert.Equal(t, "Internal Server Error", err.Message)
	assert.Equal(t, assert.AnError, err.Err)
}
