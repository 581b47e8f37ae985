//go:build unit

package passenger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completeDetails() Details {
	return Details{
		FirstName:      "Anna",
		LastName:       "Petrova",
		BirthDate:      "1990-04-12",
		Gender:         "F",
		DocumentType:   "PASSPORT",
		DocumentNumber: "12 34 567890",
		Nationality:    "RU",
	}
}

func TestValidator_ValidateAll(t *testing.T) {
	validator, err := NewValidator()
	require.NoError(t, err)

	t.Run("all_complete", func(t *testing.T) {
		result := validator.ValidateAll([]Details{completeDetails(), completeDetails()})

		assert.True(t, result.Valid())
		_, ok := result.First()
		assert.False(t, ok)
	})

	t.Run("save_info_is_optional", func(t *testing.T) {
		entry := completeDetails()
		entry.SaveInfo = false

		assert.True(t, validator.ValidateAll([]Details{entry}).Valid())
	})

	t.Run("first_incomplete_passenger_reports_first", func(t *testing.T) {
		second := completeDetails()
		second.DocumentNumber = ""
		third := completeDetails()
		third.FirstName = ""

		result := validator.ValidateAll([]Details{completeDetails(), second, third})

		require.False(t, result.Valid())
		first, ok := result.First()
		require.True(t, ok)
		assert.Equal(t, 1, first.PassengerIndex)
		assert.Equal(t, "document_number", first.Field)
		assert.NotEmpty(t, first.Reason)

		// the full set is still reported, in index order
		require.Len(t, result.Violations, 2)
		assert.Equal(t, 2, result.Violations[1].PassengerIndex)
		assert.Equal(t, "first_name", result.Violations[1].Field)
	})

	t.Run("invalid_enum_values", func(t *testing.T) {
		entry := completeDetails()
		entry.Gender = "X"
		entry.DocumentType = "DRIVER_LICENSE"

		result := validator.ValidateAll([]Details{entry})

		require.Len(t, result.Violations, 2)
		fields := []string{result.Violations[0].Field, result.Violations[1].Field}
		assert.Contains(t, fields, "gender")
		assert.Contains(t, fields, "document_type")
	})

	t.Run("empty_entry_reports_every_required_field", func(t *testing.T) {
		result := validator.ValidateAll([]Details{{}})

		assert.Len(t, result.Violations, 7)
		for _, violation := range result.Violations {
			assert.Zero(t, violation.PassengerIndex)
			assert.NotEmpty(t, violation.Reason)
		}
	})
}
