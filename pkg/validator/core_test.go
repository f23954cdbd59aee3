package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/donorkit/pkg/validator"
)

func TestValidationErrors_Error(t *testing.T) {
	t.Run("returns default message when no errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
	})

	t.Run("returns formatted message with single error", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{
			Field:   "email",
			Message: "is required",
		})
		assert.Equal(t, "validation failed: email: is required", errs.Error())
	})

	t.Run("returns formatted message with multiple errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "email", Message: "is required"})
		errs.Add(validator.ValidationError{Field: "phone", Message: "too short"})

		errorMsg := errs.Error()
		assert.Contains(t, errorMsg, "validation failed:")
		assert.Contains(t, errorMsg, "email: is required")
		assert.Contains(t, errorMsg, "phone: too short")
	})
}

func TestValidationErrors_Accessors(t *testing.T) {
	var errs validator.ValidationErrors
	errs.Add(validator.ValidationError{Field: "phone", Message: "first"})
	errs.Add(validator.ValidationError{Field: "email", Message: "second"})
	errs.Add(validator.ValidationError{Field: "phone", Message: "third"})

	assert.True(t, errs.Has("phone"))
	assert.False(t, errs.Has("dob"))
	assert.Equal(t, []string{"first", "third"}, errs.Get("phone"))
	assert.Equal(t, []string{"phone", "email"}, errs.Fields())
	assert.False(t, errs.IsEmpty())
}

func TestApply(t *testing.T) {
	t.Run("collects every failure", func(t *testing.T) {
		err := validator.Apply(
			validator.Required("name", ""),
			validator.ValidEmail("email", "nope"),
			validator.ValidPhone("phone", "5551234567"),
		)
		require.Error(t, err)

		errs := validator.ExtractValidationErrors(err)
		require.Len(t, errs, 2)
		assert.Equal(t, "name", errs[0].Field)
		assert.Equal(t, "email", errs[1].Field)
	})

	t.Run("returns nil when all rules pass", func(t *testing.T) {
		err := validator.Apply(
			validator.Required("name", "Ada"),
			validator.ValidEmail("email", "ada@example.com"),
		)
		assert.NoError(t, err)
	})
}

func TestFirst(t *testing.T) {
	calls := 0
	counting := validator.Rule{
		Check: func() bool { calls++; return false },
		Error: validator.ValidationError{Field: "x", Message: "second"},
	}

	err := validator.First(validator.Required("x", " "), counting)
	require.Error(t, err)
	assert.Equal(t, 0, calls, "rules after the first failure must not run")
	assert.Equal(t, []string{"This field is required"}, validator.ExtractValidationErrors(err).Get("x"))
}

func TestExtractValidationErrors(t *testing.T) {
	assert.Nil(t, validator.ExtractValidationErrors(nil))
	assert.Nil(t, validator.ExtractValidationErrors(errors.New("plain")))

	wrapped := fmt.Errorf("submit: %w", validator.ValidationErrors{{Field: "dob", Message: "bad"}})
	errs := validator.ExtractValidationErrors(wrapped)
	require.NotNil(t, errs)
	assert.True(t, errs.Has("dob"))

	assert.True(t, validator.IsValidationError(wrapped))
	assert.False(t, validator.IsValidationError(errors.New("plain")))
	assert.False(t, validator.IsValidationError(nil))
}
