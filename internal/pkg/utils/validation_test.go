package utils

import (
	"errors"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCreateAppointmentDate(t *testing.T) {
	tomorrow := time.Now().AddDate(0, 0, 1)
	yesterday := time.Now().AddDate(0, 0, -2)

	tests := []struct {
		name    string
		date    string
		wantTag string
	}{
		{name: "calendar date", date: tomorrow.Format(constvars.AppointmentDateLayout)},
		{name: "rfc3339 timestamp", date: tomorrow.Format(time.RFC3339)},
		{name: "far future calendar date", date: "2030-01-15"},
		{name: "day first", date: "15/01/2030", wantTag: "iso_date"},
		{name: "past calendar date", date: yesterday.Format(constvars.AppointmentDateLayout), wantTag: "not_past_date"},
		{name: "missing", date: "", wantTag: "required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := &requests.CreateAppointment{
				DoctorID: "64b0000000000000000000d1",
				Date:     tt.date,
				TimeSlot: constvars.TimeSlotMorning,
				Reason:   "Checkup",
			}

			err := ValidateStruct(request)
			if tt.wantTag == "" {
				assert.NoError(t, err)
				return
			}

			var validationErrors validator.ValidationErrors
			require.True(t, errors.As(err, &validationErrors))
			require.Len(t, validationErrors, 1)
			assert.Equal(t, "date", validationErrors[0].Field())
			assert.Equal(t, tt.wantTag, validationErrors[0].Tag())
		})
	}
}

func TestValidateCreateAppointmentDate_Message(t *testing.T) {
	err := ValidateStruct(&requests.CreateAppointment{
		DoctorID: "64b0000000000000000000d1",
		Date:     "2030/01/15",
		TimeSlot: constvars.TimeSlotMorning,
		Reason:   "Checkup",
	})

	assert.Equal(t, []string{"Date must be in YYYY-MM-DD format"}, exceptions.FormatAllValidationErrors(err))
}

func TestParseAppointmentDate(t *testing.T) {
	date, err := ParseAppointmentDate(" 2030-01-15 ")
	require.NoError(t, err)
	assert.True(t, date.Equal(time.Date(2030, time.January, 15, 0, 0, 0, 0, time.UTC)))

	date, err = ParseAppointmentDate("2030-01-15T09:30:00+05:30")
	require.NoError(t, err)
	assert.True(t, date.Equal(time.Date(2030, time.January, 15, 4, 0, 0, 0, time.UTC)))

	_, err = ParseAppointmentDate("tomorrow")
	assert.Error(t, err)
}
