package validator_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/donorkit/pkg/validator"
)

func TestParseKind(t *testing.T) {
	t.Parallel()

	tests := map[string]validator.Kind{
		"":                 validator.KindText,
		"text":             validator.KindText,
		"EMAIL":            validator.KindEmail,
		" tel ":            validator.KindTel,
		"date-of-birth":    validator.KindDateOfBirth,
		"date-not-future":  validator.KindDateNotFuture,
		"required-generic": validator.KindRequired,
	}
	for in, want := range tests {
		got, err := validator.ParseKind(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := validator.ParseKind("password")
	assert.True(t, errors.Is(err, validator.ErrUnknownKind))
}

func TestKind_IsDate(t *testing.T) {
	t.Parallel()
	assert.True(t, validator.KindDateOfBirth.IsDate())
	assert.True(t, validator.KindDateNotFuture.IsDate())
	assert.False(t, validator.KindTel.IsDate())
}

func TestValidate(t *testing.T) {
	t.Parallel()
	now := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		spec    validator.FieldSpec
		valid   bool
		message string
	}{
		{
			name:    "required generic empty",
			spec:    validator.FieldSpec{Name: "name", Kind: validator.KindRequired, Value: "   "},
			message: "This field is required",
		},
		{
			name:  "required generic filled",
			spec:  validator.FieldSpec{Name: "name", Kind: validator.KindRequired, Value: "Ada"},
			valid: true,
		},
		{
			name:  "optional email empty",
			spec:  validator.FieldSpec{Name: "email", Kind: validator.KindEmail},
			valid: true,
		},
		{
			name:    "required email empty reports required first",
			spec:    validator.FieldSpec{Name: "email", Kind: validator.KindEmail, Required: true},
			message: "This field is required",
		},
		{
			name:    "bad email",
			spec:    validator.FieldSpec{Name: "email", Kind: validator.KindEmail, Value: "ada@example"},
			message: "Please enter a valid email address",
		},
		{
			name:  "masked phone",
			spec:  validator.FieldSpec{Name: "phone", Kind: validator.KindTel, Value: "(555) 123-4567"},
			valid: true,
		},
		{
			name:    "short phone",
			spec:    validator.FieldSpec{Name: "phone", Kind: validator.KindTel, Value: "555-1234"},
			message: "Please enter a valid 10-digit phone number",
		},
		{
			name:    "future dob",
			spec:    validator.FieldSpec{Name: "dob", Kind: validator.KindDateOfBirth, Value: "2024-06-02"},
			message: "Date of birth cannot be in the future",
		},
		{
			name:  "dob today",
			spec:  validator.FieldSpec{Name: "dob", Kind: validator.KindDateOfBirth, Value: "2024-06-01"},
			valid: true,
		},
		{
			name:    "future donation date",
			spec:    validator.FieldSpec{Name: "donation_date", Kind: validator.KindDateNotFuture, Value: "2025-01-01"},
			message: "Date cannot be in the future",
		},
		{
			name:    "unparsable date",
			spec:    validator.FieldSpec{Name: "dob", Kind: validator.KindDateOfBirth, Value: "June 1st"},
			message: "Please enter a valid date",
		},
		{
			name:  "free text",
			spec:  validator.FieldSpec{Name: "city", Kind: validator.KindText, Value: "anything, really"},
			valid: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			res := validator.Validate(tt.spec, now)
			assert.Equal(t, tt.valid, res.Valid)
			assert.Equal(t, tt.message, res.Message)
		})
	}
}

func TestValidate_DoesNotMutateInput(t *testing.T) {
	t.Parallel()
	spec := validator.FieldSpec{Name: "email", Kind: validator.KindEmail, Value: "  ada@example.com "}
	before := spec
	_ = validator.Validate(spec, time.Now())
	assert.Equal(t, before, spec)
}

func TestValidate_RequiredGenericAcceptsAnyNonEmptyValue(t *testing.T) {
	t.Parallel()
	for _, v := range []string{"a", " b ", "0", "@@@", "2999-01-01", "é"} {
		assert.True(t, validator.ValidateValue(validator.KindRequired, v).Valid, v)
	}
}

func TestValidateForm(t *testing.T) {
	t.Parallel()
	now := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

	t.Run("valid form", func(t *testing.T) {
		err := validator.ValidateForm([]validator.FieldSpec{
			{Name: "name", Kind: validator.KindRequired, Value: "Ada"},
			{Name: "phone", Kind: validator.KindTel, Required: true, Value: "5551234567"},
			{Name: "dob", Kind: validator.KindDateOfBirth, Required: true, Value: "1990-01-01"},
		}, now)
		assert.NoError(t, err)
	})

	t.Run("reports one error per invalid field", func(t *testing.T) {
		err := validator.ValidateForm([]validator.FieldSpec{
			{Name: "name", Kind: validator.KindRequired},
			{Name: "email", Kind: validator.KindEmail, Value: "bad"},
			{Name: "phone", Kind: validator.KindTel, Required: true, Value: "5551234567"},
		}, now)
		require.Error(t, err)

		verrs := validator.ExtractValidationErrors(err)
		assert.Equal(t, []string{"name", "email"}, verrs.Fields())
		assert.Len(t, verrs, 2)

		assert.Equal(t, "Please enter a valid email address", verrs.Result("email").Message)
		assert.False(t, verrs.Result("name").Valid)
		assert.True(t, verrs.Result("phone").Valid)
	})
}
