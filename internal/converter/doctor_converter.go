package converter

import (
	"github.com/dev-karunendu-mishra/hello-doctors-sub001/internal/delivery/dto"
	"github.com/dev-karunendu-mishra/hello-doctors-sub001/internal/domain/entity"
)

// DoctorProfileToResponse converts a DoctorProfile entity (with preloaded
// associations) to its response DTO.
func DoctorProfileToResponse(profile *entity.DoctorProfile) *dto.DoctorResponse {
	if profile == nil {
		return nil
	}

	resp := &dto.DoctorResponse{
		ID:                profile.UserID,
		Email:             profile.User.Email,
		FullName:          profile.User.FullName,
		Phone:             profile.User.Phone,
		Specialty:         profile.Specialty.Name,
		SpecialtyID:       profile.SpecialtyID,
		Qualification:     profile.Qualification,
		ExperienceYears:   profile.ExperienceYears,
		ConsultationFee:   profile.ConsultationFee.StringFixed(2),
		Bio:               profile.Bio,
		ImagePath:         profile.ImagePath,
		IsVerified:        profile.IsVerified,
		IsOnlineAvailable: profile.IsOnlineAvailable,
		IsActive:          profile.User.IsActive,
		CreatedAt:         profile.CreatedAt,
		UpdatedAt:         profile.UpdatedAt,
	}
	if profile.LicenseNumber != nil {
		resp.LicenseNumber = *profile.LicenseNumber
	}
	for _, dc := range profile.Cities {
		resp.Cities = append(resp.Cities, dto.DoctorCityResponse{
			CityID:    dc.CityID,
			CityName:  dc.City.Name,
			Address:   dc.Address,
			Landmarks: dc.Landmarks,
			Latitude:  dc.Latitude,
			Longitude: dc.Longitude,
		})
	}
	for _, wh := range profile.WorkingHours {
		resp.WorkingHours = append(resp.WorkingHours, WorkingHourToResponse(&wh))
	}
	return resp
}

// DoctorProfilesToResponses converts a slice of profiles to response DTOs.
func DoctorProfilesToResponses(profiles []entity.DoctorProfile) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, 0, len(profiles))
	for i := range profiles {
		responses = append(responses, *DoctorProfileToResponse(&profiles[i]))
	}
	return responses
}

func WorkingHourToResponse(wh *entity.DoctorWorkingHour) dto.WorkingHourResponse {
	return dto.WorkingHourResponse{
		ID:           wh.ID,
		CityID:       wh.CityID,
		DayOfWeek:    int(wh.DayOfWeek),
		OpenTime:     wh.OpenTime,
		CloseTime:    wh.CloseTime,
		IsAvailable:  wh.IsAvailable,
		LegacyTiming: wh.LegacyTiming,
	}
}
