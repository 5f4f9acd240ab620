package converter

import (
	"github.com/dev-karunendu-mishra/hello-doctors-sub001/internal/delivery/dto"
	"github.com/dev-karunendu-mishra/hello-doctors-sub001/internal/domain/entity"
)

func CityToResponse(city *entity.City) *dto.CityResponse {
	if city == nil {
		return nil
	}
	return &dto.CityResponse{ID: city.ID, Name: city.Name, State: city.State}
}

func CitiesToResponses(cities []entity.City) []dto.CityResponse {
	responses := make([]dto.CityResponse, 0, len(cities))
	for i := range cities {
		responses = append(responses, *CityToResponse(&cities[i]))
	}
	return responses
}

func SpecialtiesToResponses(specialties []entity.Specialty) []dto.SpecialtyResponse {
	responses := make([]dto.SpecialtyResponse, 0, len(specialties))
	for _, s := range specialties {
		responses = append(responses, dto.SpecialtyResponse{ID: s.ID, Name: s.Name, Slug: s.Slug})
	}
	return responses
}

func AuditLogsToResponses(logs []entity.AuditLog) []dto.AuditEntryResponse {
	responses := make([]dto.AuditEntryResponse, 0, len(logs))
	for _, l := range logs {
		responses = append(responses, dto.AuditEntryResponse{
			Action:    l.Action,
			Metadata:  l.Metadata,
			CreatedAt: l.CreatedAt,
		})
	}
	return responses
}
