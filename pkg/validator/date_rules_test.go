package validator_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/donorkit/pkg/validator"
)

func TestParseDate(t *testing.T) {
	t.Parallel()

	t.Run("parses calendar dates", func(t *testing.T) {
		d, err := validator.ParseDate(" 2000-06-01 ", time.UTC)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2000, 6, 1, 0, 0, 0, 0, time.UTC), d)
	})

	t.Run("nil location defaults to UTC", func(t *testing.T) {
		d, err := validator.ParseDate("2000-06-01", nil)
		require.NoError(t, err)
		assert.Equal(t, time.UTC, d.Location())
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		for _, v := range []string{"", "2000-13-01", "2000-02-30", "01/06/2000", "yesterday"} {
			_, err := validator.ParseDate(v, time.UTC)
			assert.True(t, errors.Is(err, validator.ErrInvalidDate), v)
		}
	})
}

func TestNotFutureDate(t *testing.T) {
	t.Parallel()
	now := time.Date(2024, 6, 1, 15, 30, 0, 0, time.UTC)

	t.Run("today and past days pass", func(t *testing.T) {
		for _, d := range []time.Time{
			time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 6, 1, 23, 59, 0, 0, time.UTC),
			time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC),
			time.Date(1950, 1, 1, 0, 0, 0, 0, time.UTC),
		} {
			assert.NoError(t, validator.Apply(validator.NotFutureDate("date", d, now)), d.String())
		}
	})

	t.Run("tomorrow fails", func(t *testing.T) {
		err := validator.Apply(validator.NotFutureDate("date", now.AddDate(0, 0, 1), now))
		require.Error(t, err)
		verrs := validator.ExtractValidationErrors(err)
		assert.Equal(t, "Date cannot be in the future", verrs[0].Message)
		assert.Equal(t, "validation.date_not_future", verrs[0].TranslationKey)
		assert.Equal(t, "2024-06-01", verrs[0].TranslationValues["today"])
	})

	t.Run("birthdate wording", func(t *testing.T) {
		err := validator.Apply(validator.NotFutureBirthdate("dob", now.AddDate(1, 0, 0), now))
		require.Error(t, err)
		assert.Equal(t, "Date of birth cannot be in the future", validator.ExtractValidationErrors(err)[0].Message)
	})
}

func TestValidDate(t *testing.T) {
	t.Parallel()
	assert.NoError(t, validator.Apply(validator.ValidDate("d", "2024-02-29")))
	err := validator.Apply(validator.ValidDate("d", "2023-02-29"))
	require.Error(t, err)
	assert.Equal(t, "validation.date", validator.ExtractValidationErrors(err)[0].TranslationKey)
}
