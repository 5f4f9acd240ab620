package usecase

import (
	"context"
	"errors"

	"github.com/dev-karunendu-mishra/hello-doctors-sub001/internal/converter"
	"github.com/dev-karunendu-mishra/hello-doctors-sub001/internal/delivery/dto"
	"github.com/dev-karunendu-mishra/hello-doctors-sub001/internal/domain/entity"
	"github.com/dev-karunendu-mishra/hello-doctors-sub001/internal/domain/repository"
	"github.com/dev-karunendu-mishra/hello-doctors-sub001/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var (
	ErrDoctorNotFound     = errors.New("doctor not found")
	ErrInvalidWorkingHour = errors.New("close time must be after open time")
)

type DoctorUsecase interface {
	GetDoctor(ctx context.Context, userID uuid.UUID) (*dto.DoctorResponse, error)
	ListDoctors(ctx context.Context, page, limit int) (*dto.DoctorListResponse, error)
	SearchDoctors(ctx context.Context, req *dto.SearchDoctorsRequest) (*dto.DoctorListResponse, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateDoctorProfileRequest) (*dto.DoctorResponse, error)
	SetImage(ctx context.Context, userID uuid.UUID, imagePath string) error
	ReplaceCities(ctx context.Context, userID uuid.UUID, req *dto.ReplaceCitiesRequest) (*dto.DoctorResponse, error)
	SetWorkingHours(ctx context.Context, userID uuid.UUID, req *dto.SetWorkingHoursRequest) ([]dto.WorkingHourResponse, error)
	SetVerified(ctx context.Context, adminID, userID uuid.UUID, verified bool) error
	DeleteDoctor(ctx context.Context, adminID, userID uuid.UUID) error
}

type doctorUsecase struct {
	log           *logrus.Logger
	doctorRepo    repository.DoctorRepository
	specialtyRepo repository.SpecialtyRepository
	cityRepo      repository.CityRepository
	searchTagRepo repository.SearchTagRepository
	auditService  service.AuditService
}

func NewDoctorUsecase(
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	specialtyRepo repository.SpecialtyRepository,
	cityRepo repository.CityRepository,
	searchTagRepo repository.SearchTagRepository,
	auditService service.AuditService,
) DoctorUsecase {
	return &doctorUsecase{
		log:           log,
		doctorRepo:    doctorRepo,
		specialtyRepo: specialtyRepo,
		cityRepo:      cityRepo,
		searchTagRepo: searchTagRepo,
		auditService:  auditService,
	}
}

func (u *doctorUsecase) GetDoctor(ctx context.Context, userID uuid.UUID) (*dto.DoctorResponse, error) {
	profile, err := u.doctorRepo.FindByUserID(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to find doctor profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrDoctorNotFound
	}
	return converter.DoctorProfileToResponse(profile), nil
}

func (u *doctorUsecase) ListDoctors(ctx context.Context, page, limit int) (*dto.DoctorListResponse, error) {
	offset, limit := normalizePage(page, limit)
	profiles, total, err := u.doctorRepo.FindAll(ctx, offset, limit)
	if err != nil {
		u.log.Warnf("Failed to list doctors: %+v", err)
		return nil, err
	}
	return &dto.DoctorListResponse{
		Doctors: converter.DoctorProfilesToResponses(profiles),
		Total:   total,
	}, nil
}

func (u *doctorUsecase) SearchDoctors(ctx context.Context, req *dto.SearchDoctorsRequest) (*dto.DoctorListResponse, error) {
	offset, limit := normalizePage(req.Page, req.Limit)

	filter := entity.DoctorSearchFilter{
		Query:        req.Query,
		SpecialtyID:  req.SpecialtyID,
		CityID:       req.CityID,
		VerifiedOnly: req.VerifiedOnly,
		OnlineOnly:   req.OnlineOnly,
	}

	profiles, total, err := u.doctorRepo.Search(ctx, filter, offset, limit)
	if err != nil {
		u.log.Warnf("Failed to search doctors: %+v", err)
		return nil, err
	}
	return &dto.DoctorListResponse{
		Doctors: converter.DoctorProfilesToResponses(profiles),
		Total:   total,
	}, nil
}

func (u *doctorUsecase) UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateDoctorProfileRequest) (*dto.DoctorResponse, error) {
	profile, err := u.doctorRepo.FindByUserID(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to find doctor profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrDoctorNotFound
	}

	if req.SpecialtyID != 0 && req.SpecialtyID != profile.SpecialtyID {
		specialty, err := u.specialtyRepo.FindByID(ctx, req.SpecialtyID)
		if err != nil {
			return nil, err
		}
		if specialty == nil {
			return nil, ErrSpecialtyNotFound
		}
		profile.SpecialtyID = req.SpecialtyID
		profile.Specialty = *specialty
	}

	if req.LicenseNumber != nil {
		license := *req.LicenseNumber
		if license == "" {
			profile.LicenseNumber = nil
		} else {
			// Uniqueness check excludes this profile so an unchanged
			// license does not conflict with itself.
			inUse, err := u.doctorRepo.LicenseInUse(ctx, license, userID)
			if err != nil {
				return nil, err
			}
			if inUse {
				return nil, ErrLicenseAlreadyExists
			}
			profile.LicenseNumber = &license
		}
	}

	if req.Qualification != nil {
		profile.Qualification = *req.Qualification
	}
	if req.ExperienceYears != nil {
		profile.ExperienceYears = *req.ExperienceYears
	}
	if req.ConsultationFee != nil {
		profile.ConsultationFee = decimal.NewFromFloat(*req.ConsultationFee)
	}
	if req.Bio != nil {
		profile.Bio = *req.Bio
	}
	if req.IsOnline != nil {
		profile.IsOnlineAvailable = *req.IsOnline
	}
	if req.FullName != "" {
		profile.User.FullName = req.FullName
	}
	if req.Phone != "" {
		profile.User.Phone = req.Phone
	}

	if err := u.doctorRepo.Update(ctx, profile); err != nil {
		if isDuplicateKeyError(err, "license") {
			return nil, ErrLicenseAlreadyExists
		}
		u.log.Warnf("Failed to update doctor profile: %+v", err)
		return nil, err
	}

	u.refreshSearchTag(ctx, profile)

	if err := u.auditService.LogUpdate(ctx, &userID, entity.AuditActionProfileUpdate, "doctor_profile", userID.String(), nil, req); err != nil {
		u.log.Warnf("Failed to audit profile update: %+v", err)
	}

	return converter.DoctorProfileToResponse(profile), nil
}

func (u *doctorUsecase) SetImage(ctx context.Context, userID uuid.UUID, imagePath string) error {
	profile, err := u.doctorRepo.FindByUserID(ctx, userID)
	if err != nil {
		return err
	}
	if profile == nil {
		return ErrDoctorNotFound
	}
	profile.ImagePath = imagePath
	return u.doctorRepo.Update(ctx, profile)
}

func (u *doctorUsecase) ReplaceCities(ctx context.Context, userID uuid.UUID, req *dto.ReplaceCitiesRequest) (*dto.DoctorResponse, error) {
	profile, err := u.doctorRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrDoctorNotFound
	}

	if len(req.Cities) == 0 {
		return nil, ErrNoCities
	}

	cityIDs := make([]uint, 0, len(req.Cities))
	for _, c := range req.Cities {
		cityIDs = append(cityIDs, c.CityID)
	}
	cities, err := u.cityRepo.FindByIDs(ctx, cityIDs)
	if err != nil {
		return nil, err
	}
	if len(cities) != len(uniqueIDs(cityIDs)) {
		return nil, ErrCityNotFound
	}

	doctorCities := make([]entity.DoctorCity, 0, len(req.Cities))
	for _, c := range req.Cities {
		doctorCities = append(doctorCities, entity.DoctorCity{
			CityID:    c.CityID,
			Address:   c.Address,
			Landmarks: c.Landmarks,
			Latitude:  c.Latitude,
			Longitude: c.Longitude,
		})
	}

	if err := u.doctorRepo.ReplaceCities(ctx, userID, doctorCities); err != nil {
		if isDuplicateKeyError(err, "doctor_city") {
			return nil, ErrCityNotFound
		}
		u.log.Warnf("Failed to replace doctor cities: %+v", err)
		return nil, err
	}

	u.refreshSearchTag(ctx, profile)

	return u.GetDoctor(ctx, userID)
}

func (u *doctorUsecase) SetWorkingHours(ctx context.Context, userID uuid.UUID, req *dto.SetWorkingHoursRequest) ([]dto.WorkingHourResponse, error) {
	profile, err := u.doctorRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrDoctorNotFound
	}

	hours := make([]entity.DoctorWorkingHour, 0, len(req.Hours))
	for _, h := range req.Hours {
		if h.OpenTime != "" && h.CloseTime != "" && h.CloseTime <= h.OpenTime {
			return nil, ErrInvalidWorkingHour
		}
		available := true
		if h.IsAvailable != nil {
			available = *h.IsAvailable
		}
		hours = append(hours, entity.DoctorWorkingHour{
			CityID:       h.CityID,
			DayOfWeek:    entity.DayOfWeek(h.DayOfWeek),
			OpenTime:     h.OpenTime,
			CloseTime:    h.CloseTime,
			IsAvailable:  available,
			LegacyTiming: h.LegacyTiming,
		})
	}

	if err := u.doctorRepo.ReplaceWorkingHours(ctx, userID, hours); err != nil {
		u.log.Warnf("Failed to replace working hours: %+v", err)
		return nil, err
	}

	saved, err := u.doctorRepo.WorkingHours(ctx, userID)
	if err != nil {
		return nil, err
	}
	responses := make([]dto.WorkingHourResponse, 0, len(saved))
	for i := range saved {
		responses = append(responses, converter.WorkingHourToResponse(&saved[i]))
	}
	return responses, nil
}

func (u *doctorUsecase) SetVerified(ctx context.Context, adminID, userID uuid.UUID, verified bool) error {
	profile, err := u.doctorRepo.FindByUserID(ctx, userID)
	if err != nil {
		return err
	}
	if profile == nil {
		return ErrDoctorNotFound
	}

	profile.IsVerified = verified
	if err := u.doctorRepo.Update(ctx, profile); err != nil {
		u.log.Warnf("Failed to set verification flag: %+v", err)
		return err
	}

	if err := u.auditService.LogUpdate(ctx, &adminID, entity.AuditActionProfileUpdate, "doctor_profile", userID.String(), nil, map[string]interface{}{"is_verified": verified}); err != nil {
		u.log.Warnf("Failed to audit verification change: %+v", err)
	}
	return nil
}

func (u *doctorUsecase) DeleteDoctor(ctx context.Context, adminID, userID uuid.UUID) error {
	profile, err := u.doctorRepo.FindByUserID(ctx, userID)
	if err != nil {
		return err
	}
	if profile == nil {
		return ErrDoctorNotFound
	}

	if err := u.doctorRepo.Delete(ctx, userID); err != nil {
		u.log.Warnf("Failed to delete doctor: %+v", err)
		return err
	}

	if err := u.auditService.LogDelete(ctx, &adminID, entity.AuditActionDoctorDelete, "doctor_profile", userID.String(), map[string]interface{}{"email": profile.User.Email}); err != nil {
		u.log.Warnf("Failed to audit doctor deletion: %+v", err)
	}
	return nil
}

// refreshSearchTag rebuilds the doctor's search tag after a profile or city
// change. Best effort: search lags behind rather than failing the write.
func (u *doctorUsecase) refreshSearchTag(ctx context.Context, profile *entity.DoctorProfile) {
	fresh, err := u.doctorRepo.FindByUserID(ctx, profile.UserID)
	if err != nil || fresh == nil {
		u.log.Warnf("Failed to reload doctor %s for search tag refresh: %+v", profile.UserID, err)
		return
	}

	names := make([]string, 0, len(fresh.Cities))
	for _, dc := range fresh.Cities {
		names = append(names, dc.City.Name)
	}

	tag := &entity.SearchTag{
		TaggableKind: entity.TaggableDoctorProfile,
		TaggableID:   fresh.UserID,
		Content:      BuildDoctorSearchContent(fresh.User.FullName, fresh.Specialty.Name, fresh.Qualification, fresh.Bio, names),
	}
	if err := u.searchTagRepo.Upsert(ctx, tag); err != nil {
		u.log.Warnf("Failed to refresh search tag for doctor %s: %+v", fresh.UserID, err)
	}
}

func normalizePage(page, limit int) (offset, normalizedLimit int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return (page - 1) * limit, limit
}
