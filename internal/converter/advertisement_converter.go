package converter

import (
	"github.com/dev-karunendu-mishra/hello-doctors-sub001/internal/delivery/dto"
	"github.com/dev-karunendu-mishra/hello-doctors-sub001/internal/domain/entity"
)

const dateLayout = "2006-01-02"

func AdvertisementToResponse(ad *entity.Advertisement) *dto.AdvertisementResponse {
	if ad == nil {
		return nil
	}
	resp := &dto.AdvertisementResponse{
		ID:         ad.ID,
		Title:      ad.Title,
		ImagePath:  ad.ImagePath,
		LinkURL:    ad.LinkURL,
		Position:   string(ad.Position),
		StartDate:  ad.StartDate.Format(dateLayout),
		IsActive:   ad.IsActive,
		ClickCount: ad.ClickCount,
		CreatedAt:  ad.CreatedAt,
		UpdatedAt:  ad.UpdatedAt,
	}
	if ad.EndDate != nil {
		end := ad.EndDate.Format(dateLayout)
		resp.EndDate = &end
	}
	return resp
}

func AdvertisementsToResponses(ads []entity.Advertisement) []dto.AdvertisementResponse {
	responses := make([]dto.AdvertisementResponse, 0, len(ads))
	for i := range ads {
		responses = append(responses, *AdvertisementToResponse(&ads[i]))
	}
	return responses
}
