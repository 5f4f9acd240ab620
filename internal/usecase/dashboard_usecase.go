package usecase

import (
	"context"
	"time"

	"github.com/dev-karunendu-mishra/hello-doctors-sub001/internal/converter"
	"github.com/dev-karunendu-mishra/hello-doctors-sub001/internal/delivery/dto"
	"github.com/dev-karunendu-mishra/hello-doctors-sub001/internal/domain/entity"
	"github.com/dev-karunendu-mishra/hello-doctors-sub001/internal/domain/repository"
	"github.com/dev-karunendu-mishra/hello-doctors-sub001/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	recentAuditLimit     = 20
	featuredDoctorsLimit = 8
)

type DashboardUsecase interface {
	// Redirect resolves the landing path for a role. Each role has exactly
	// one dashboard.
	Redirect(ctx context.Context, role entity.Role) (*dto.DashboardRedirectResponse, error)
	AdminDashboard(ctx context.Context) (*dto.AdminDashboardResponse, error)
	DoctorDashboard(ctx context.Context, userID uuid.UUID) (*dto.DoctorDashboardResponse, error)
	PatientDashboard(ctx context.Context, userID uuid.UUID) (*dto.PatientDashboardResponse, error)
	SetLocation(ctx context.Context, userID uuid.UUID, cityID uint) (*dto.CityResponse, error)
	ClearLocation(ctx context.Context, userID uuid.UUID) error
}

type dashboardUsecase struct {
	log        *logrus.Logger
	userRepo   repository.UserRepository
	doctorRepo repository.DoctorRepository
	cityRepo   repository.CityRepository
	adRepo     repository.AdvertisementRepository
	statsRepo  repository.StatsRepository
	auditRepo  repository.AuditLogRepository
	location   *service.LocationService
}

func NewDashboardUsecase(
	log *logrus.Logger,
	userRepo repository.UserRepository,
	doctorRepo repository.DoctorRepository,
	cityRepo repository.CityRepository,
	adRepo repository.AdvertisementRepository,
	statsRepo repository.StatsRepository,
	auditRepo repository.AuditLogRepository,
	location *service.LocationService,
) DashboardUsecase {
	return &dashboardUsecase{
		log:        log,
		userRepo:   userRepo,
		doctorRepo: doctorRepo,
		cityRepo:   cityRepo,
		adRepo:     adRepo,
		statsRepo:  statsRepo,
		auditRepo:  auditRepo,
		location:   location,
	}
}

func (u *dashboardUsecase) Redirect(ctx context.Context, role entity.Role) (*dto.DashboardRedirectResponse, error) {
	if !role.Valid() {
		return nil, ErrInvalidRole
	}
	return &dto.DashboardRedirectResponse{
		Role:     role.String(),
		Redirect: role.DashboardPath(),
	}, nil
}

func (u *dashboardUsecase) AdminDashboard(ctx context.Context) (*dto.AdminDashboardResponse, error) {
	counts, err := u.statsRepo.Counts(ctx)
	if err != nil {
		u.log.Warnf("Failed to collect directory counts: %+v", err)
		return nil, err
	}

	_, totalUsers, err := u.userRepo.FindAll(ctx, 0, 1)
	if err != nil {
		u.log.Warnf("Failed to count users: %+v", err)
		return nil, err
	}

	// Recent audit is decorative on the dashboard; a failure degrades to an
	// empty list.
	logs, err := u.auditRepo.FindRecent(ctx, recentAuditLimit)
	if err != nil {
		u.log.Warnf("Failed to load recent audit entries: %+v", err)
		logs = nil
	}

	return &dto.AdminDashboardResponse{
		Counts: dto.DirectoryCountsResponse{
			Cities:         counts.Cities,
			Specialties:    counts.Specialties,
			DoctorProfiles: counts.DoctorProfiles,
			DoctorUsers:    counts.DoctorUsers,
			WorkingHours:   counts.WorkingHours,
			SearchTags:     counts.SearchTags,
		},
		TotalUsers:  totalUsers,
		RecentAudit: converter.AuditLogsToResponses(logs),
	}, nil
}

func (u *dashboardUsecase) DoctorDashboard(ctx context.Context, userID uuid.UUID) (*dto.DoctorDashboardResponse, error) {
	profile, err := u.doctorRepo.FindByUserID(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to load doctor profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrDoctorNotFound
	}

	return &dto.DoctorDashboardResponse{
		Profile:             converter.DoctorProfileToResponse(profile),
		ProfileCompleteness: profileCompleteness(profile),
		CityCount:           len(profile.Cities),
		WorkingHourCount:    len(profile.WorkingHours),
	}, nil
}

func (u *dashboardUsecase) PatientDashboard(ctx context.Context, userID uuid.UUID) (*dto.PatientDashboardResponse, error) {
	featured, err := u.doctorRepo.FindFeatured(ctx, featuredDoctorsLimit)
	if err != nil {
		u.log.Warnf("Failed to load featured doctors: %+v", err)
		return nil, err
	}

	ads, err := u.adRepo.FindActive(ctx, entity.AdPositionHomeTop, time.Now())
	if err != nil {
		u.log.Warnf("Failed to load home advertisements: %+v", err)
		ads = nil
	}

	resp := &dto.PatientDashboardResponse{
		FeaturedDoctors: converter.DoctorProfilesToResponses(featured),
		Advertisements:  converter.AdvertisementsToResponses(ads),
	}

	cityID, err := u.location.Load(ctx, userID)
	if err == nil && cityID != 0 {
		city, err := u.cityRepo.FindByID(ctx, cityID)
		if err == nil && city != nil {
			resp.CurrentCity = converter.CityToResponse(city)
		}
	}

	return resp, nil
}

func (u *dashboardUsecase) SetLocation(ctx context.Context, userID uuid.UUID, cityID uint) (*dto.CityResponse, error) {
	city, err := u.cityRepo.FindByID(ctx, cityID)
	if err != nil {
		return nil, err
	}
	if city == nil {
		return nil, ErrCityNotFound
	}

	if err := u.location.Save(ctx, userID, cityID); err != nil {
		return nil, err
	}
	return converter.CityToResponse(city), nil
}

func (u *dashboardUsecase) ClearLocation(ctx context.Context, userID uuid.UUID) error {
	return u.location.Clear(ctx, userID)
}

// profileCompleteness scores how much of the optional profile a doctor has
// filled in, as a percentage of eight weighted fields.
func profileCompleteness(p *entity.DoctorProfile) int {
	total := 8
	filled := 0
	if p.LicenseNumber != nil && *p.LicenseNumber != "" {
		filled++
	}
	if p.Qualification != "" {
		filled++
	}
	if p.ExperienceYears > 0 {
		filled++
	}
	if p.ConsultationFee.IsPositive() {
		filled++
	}
	if p.Bio != "" {
		filled++
	}
	if p.ImagePath != "" {
		filled++
	}
	if len(p.Cities) > 0 {
		filled++
	}
	if len(p.WorkingHours) > 0 {
		filled++
	}
	return filled * 100 / total
}
