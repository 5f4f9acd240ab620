package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type workingHourForm struct {
	OpenTime  string `validate:"omitempty,hhmm"`
	CloseTime string `validate:"omitempty,hhmm"`
}

func TestHHMMTag(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.Validate(&workingHourForm{OpenTime: "09:00", CloseTime: "17:30"}))
	assert.NoError(t, v.Validate(&workingHourForm{}))

	for _, bad := range []string{"9:00am", "25:00", "09:60", "0900", "nine"} {
		assert.Error(t, v.Validate(&workingHourForm{OpenTime: bad}), "input %q", bad)
	}
}

func TestFormatValidationErrors(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&workingHourForm{OpenTime: "late"})
	require.Error(t, err)

	fields := v.FormatValidationErrors(err)
	assert.Equal(t, "OpenTime must be a time in HH:MM format", fields["OpenTime"])
}
