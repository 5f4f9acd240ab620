package usecase

import (
	"testing"

	"github.com/dev-karunendu-mishra/hello-doctors-sub001/internal/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestProfileCompleteness(t *testing.T) {
	assert.Equal(t, 0, profileCompleteness(&entity.DoctorProfile{}))

	license := "MH-1234"
	full := &entity.DoctorProfile{
		LicenseNumber:   &license,
		Qualification:   "MBBS, MD",
		ExperienceYears: 12,
		ConsultationFee: decimal.NewFromInt(600),
		Bio:             "Cardiologist in Mumbai",
		ImagePath:       "doctors/asha.png",
		Cities:          []entity.DoctorCity{{CityID: 1}},
		WorkingHours:    []entity.DoctorWorkingHour{{DayOfWeek: entity.Monday}},
	}
	assert.Equal(t, 100, profileCompleteness(full))

	partial := &entity.DoctorProfile{
		Qualification: "MBBS",
		Cities:        []entity.DoctorCity{{CityID: 1}},
	}
	assert.Equal(t, 25, profileCompleteness(partial))

	// An empty license pointer does not count as filled.
	empty := ""
	assert.Equal(t, 0, profileCompleteness(&entity.DoctorProfile{LicenseNumber: &empty}))
}
