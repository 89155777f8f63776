package validation_test

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yussef-Makhlouf/admin-dashboard-macc/pkg/validation"
)

type loginInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8"`
}

func TestMessages(t *testing.T) {
	validate := validator.New()

	t.Run("Per-field labels and tags", func(t *testing.T) {
		err := validate.Struct(loginInput{Email: "nope", Password: "short"})
		require.Error(t, err)

		msgs := validation.Messages(err)
		assert.Equal(t, "Email must be a valid email address", msgs["Email"])
		assert.Equal(t, "Password must be at least 8 characters", msgs["Password"])
	})

	t.Run("Required fields", func(t *testing.T) {
		err := validate.Struct(loginInput{})
		require.Error(t, err)

		msgs := validation.Messages(err)
		assert.Equal(t, "Email is required", msgs["Email"])
	})

	t.Run("Non-validator errors collapse to a generic entry", func(t *testing.T) {
		msgs := validation.Messages(errors.New("boom"))
		assert.Equal(t, "Invalid input", msgs[""])
	})
}

func TestFirst(t *testing.T) {
	validate := validator.New()
	err := validate.Struct(loginInput{Email: "", Password: "goodenough"})
	require.Error(t, err)
	assert.Equal(t, "Email is required", validation.First(err))

	assert.Equal(t, "Invalid input", validation.First(errors.New("boom")))
}
