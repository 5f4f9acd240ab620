package usecase

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/dev-karunendu-mishra/hello-doctors-sub001/internal/converter"
	"github.com/dev-karunendu-mishra/hello-doctors-sub001/internal/delivery/dto"
	"github.com/dev-karunendu-mishra/hello-doctors-sub001/internal/domain/entity"
	"github.com/dev-karunendu-mishra/hello-doctors-sub001/internal/domain/repository"
	"github.com/dev-karunendu-mishra/hello-doctors-sub001/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrAdNotFound        = errors.New("advertisement not found")
	ErrAdInvalidPosition = errors.New("invalid advertisement position")
	ErrAdInvalidDates    = errors.New("end date must not precede start date")
	ErrAdImageRequired   = errors.New("an image is required")
)

const adDateLayout = "2006-01-02"

type AdvertisementUsecase interface {
	Create(ctx context.Context, adminID uuid.UUID, req *dto.CreateAdvertisementRequest, imagePath string) (*dto.AdvertisementResponse, error)
	Update(ctx context.Context, adminID uuid.UUID, id uint, req *dto.UpdateAdvertisementRequest, imagePath string) (*dto.AdvertisementResponse, error)
	Delete(ctx context.Context, adminID uuid.UUID, id uint) error
	Get(ctx context.Context, id uint) (*dto.AdvertisementResponse, error)
	List(ctx context.Context, page, limit int) (*dto.AdvertisementListResponse, error)
	ListActive(ctx context.Context, position string, now time.Time) ([]dto.AdvertisementResponse, error)
	RecordClick(ctx context.Context, id uint) error
}

type advertisementUsecase struct {
	log          *logrus.Logger
	adRepo       repository.AdvertisementRepository
	clickSync    *service.ClickSyncService
	auditService service.AuditService
}

func NewAdvertisementUsecase(
	log *logrus.Logger,
	adRepo repository.AdvertisementRepository,
	clickSync *service.ClickSyncService,
	auditService service.AuditService,
) AdvertisementUsecase {
	return &advertisementUsecase{
		log:          log,
		adRepo:       adRepo,
		clickSync:    clickSync,
		auditService: auditService,
	}
}

func (u *advertisementUsecase) Create(ctx context.Context, adminID uuid.UUID, req *dto.CreateAdvertisementRequest, imagePath string) (*dto.AdvertisementResponse, error) {
	if imagePath == "" {
		return nil, ErrAdImageRequired
	}

	position, err := entity.ParseAdPosition(req.Position)
	if err != nil {
		return nil, ErrAdInvalidPosition
	}

	startDate, endDate, err := parseAdDates(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	ad := &entity.Advertisement{
		Title:     req.Title,
		ImagePath: imagePath,
		LinkURL:   req.LinkURL,
		Position:  position,
		StartDate: startDate,
		EndDate:   endDate,
		IsActive:  true,
	}

	if err := u.adRepo.Create(ctx, ad); err != nil {
		u.log.Warnf("Failed to create advertisement: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, &adminID, entity.AuditActionAdCreate, "advertisement", itoa(ad.ID), converter.AdvertisementToResponse(ad)); err != nil {
		u.log.Warnf("Failed to audit advertisement create: %+v", err)
	}

	return converter.AdvertisementToResponse(ad), nil
}

func (u *advertisementUsecase) Update(ctx context.Context, adminID uuid.UUID, id uint, req *dto.UpdateAdvertisementRequest, imagePath string) (*dto.AdvertisementResponse, error) {
	ad, err := u.adRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find advertisement: %+v", err)
		return nil, err
	}
	if ad == nil {
		return nil, ErrAdNotFound
	}

	old := converter.AdvertisementToResponse(ad)

	if req.Title != "" {
		ad.Title = req.Title
	}
	if req.LinkURL != "" {
		ad.LinkURL = req.LinkURL
	}
	if req.Position != "" {
		position, err := entity.ParseAdPosition(req.Position)
		if err != nil {
			return nil, ErrAdInvalidPosition
		}
		ad.Position = position
	}
	// The existing image is retained when the update carries none.
	if imagePath != "" {
		ad.ImagePath = imagePath
	}
	if req.IsActive != nil {
		ad.IsActive = *req.IsActive
	}

	startStr := ad.StartDate.Format(adDateLayout)
	if req.StartDate != "" {
		startStr = req.StartDate
	}
	endStr := ""
	if ad.EndDate != nil {
		endStr = ad.EndDate.Format(adDateLayout)
	}
	if req.EndDate != "" {
		endStr = req.EndDate
	}

	startDate, endDate, err := parseAdDates(startStr, endStr)
	if err != nil {
		return nil, err
	}
	ad.StartDate = startDate
	ad.EndDate = endDate

	if err := u.adRepo.Update(ctx, ad); err != nil {
		u.log.Warnf("Failed to update advertisement: %+v", err)
		return nil, err
	}

	updated := converter.AdvertisementToResponse(ad)
	if err := u.auditService.LogUpdate(ctx, &adminID, entity.AuditActionAdUpdate, "advertisement", itoa(ad.ID), old, updated); err != nil {
		u.log.Warnf("Failed to audit advertisement update: %+v", err)
	}

	return updated, nil
}

func (u *advertisementUsecase) Delete(ctx context.Context, adminID uuid.UUID, id uint) error {
	ad, err := u.adRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if ad == nil {
		return ErrAdNotFound
	}

	if err := u.adRepo.Delete(ctx, id); err != nil {
		u.log.Warnf("Failed to delete advertisement: %+v", err)
		return err
	}

	if err := u.auditService.LogDelete(ctx, &adminID, entity.AuditActionAdDelete, "advertisement", itoa(id), converter.AdvertisementToResponse(ad)); err != nil {
		u.log.Warnf("Failed to audit advertisement delete: %+v", err)
	}
	return nil
}

func (u *advertisementUsecase) Get(ctx context.Context, id uint) (*dto.AdvertisementResponse, error) {
	ad, err := u.adRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ad == nil {
		return nil, ErrAdNotFound
	}
	return converter.AdvertisementToResponse(ad), nil
}

func (u *advertisementUsecase) List(ctx context.Context, page, limit int) (*dto.AdvertisementListResponse, error) {
	offset, limit := normalizePage(page, limit)
	ads, total, err := u.adRepo.FindAll(ctx, offset, limit)
	if err != nil {
		u.log.Warnf("Failed to list advertisements: %+v", err)
		return nil, err
	}
	return &dto.AdvertisementListResponse{
		Advertisements: converter.AdvertisementsToResponses(ads),
		Total:          total,
	}, nil
}

func (u *advertisementUsecase) ListActive(ctx context.Context, position string, now time.Time) ([]dto.AdvertisementResponse, error) {
	var pos entity.AdPosition
	if position != "" {
		parsed, err := entity.ParseAdPosition(position)
		if err != nil {
			return nil, ErrAdInvalidPosition
		}
		pos = parsed
	}

	ads, err := u.adRepo.FindActive(ctx, pos, now)
	if err != nil {
		u.log.Warnf("Failed to list active advertisements: %+v", err)
		return nil, err
	}
	return converter.AdvertisementsToResponses(ads), nil
}

func (u *advertisementUsecase) RecordClick(ctx context.Context, id uint) error {
	ad, err := u.adRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if ad == nil {
		return ErrAdNotFound
	}
	return u.clickSync.Record(ctx, id)
}

// parseAdDates parses and validates the active date range. An empty end date
// means the ad is open-ended.
func parseAdDates(start, end string) (time.Time, *time.Time, error) {
	startDate, err := time.Parse(adDateLayout, start)
	if err != nil {
		return time.Time{}, nil, ErrAdInvalidDates
	}
	if end == "" {
		return startDate, nil, nil
	}
	endDate, err := time.Parse(adDateLayout, end)
	if err != nil {
		return time.Time{}, nil, ErrAdInvalidDates
	}
	if endDate.Before(startDate) {
		return time.Time{}, nil, ErrAdInvalidDates
	}
	return startDate, &endDate, nil
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
