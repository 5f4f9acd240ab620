package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dev-karunendu-mishra/hello-doctors-sub001/internal/converter"
	"github.com/dev-karunendu-mishra/hello-doctors-sub001/internal/delivery/dto"
	"github.com/dev-karunendu-mishra/hello-doctors-sub001/internal/domain/entity"
	"github.com/dev-karunendu-mishra/hello-doctors-sub001/internal/domain/repository"
	"github.com/dev-karunendu-mishra/hello-doctors-sub001/internal/service"
	"github.com/dev-karunendu-mishra/hello-doctors-sub001/pkg/jwt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailAlreadyExists   = errors.New("email already exists")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrAccountDisabled      = errors.New("account is disabled")
	ErrInvalidToken         = errors.New("invalid or expired token")
	ErrTokenRevoked         = errors.New("token has been revoked")
	ErrUserNotFound         = errors.New("user not found")
	ErrSpecialtyNotFound    = errors.New("specialty not found")
	ErrCityNotFound         = errors.New("one or more cities not found")
	ErrNoCities             = errors.New("at least one practice city is required")
	ErrLicenseAlreadyExists = errors.New("license number already in use")
)

type AuthUsecase interface {
	RegisterDoctor(ctx context.Context, req *dto.RegisterDoctorRequest) (*dto.UserResponse, error)
	RegisterPatient(ctx context.Context, req *dto.RegisterPatientRequest) (*dto.UserResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	Logout(ctx context.Context, accessTokenID, refreshTokenID string) error
	RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error)
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error)
}

type authUsecase struct {
	log           *logrus.Logger
	userRepo      repository.UserRepository
	doctorRepo    repository.DoctorRepository
	specialtyRepo repository.SpecialtyRepository
	cityRepo      repository.CityRepository
	auditService  service.AuditService
	jwtService    *jwt.JWTService
	redisClient   *redis.Client
}

func NewAuthUsecase(
	log *logrus.Logger,
	userRepo repository.UserRepository,
	doctorRepo repository.DoctorRepository,
	specialtyRepo repository.SpecialtyRepository,
	cityRepo repository.CityRepository,
	auditService service.AuditService,
	jwtService *jwt.JWTService,
	redisClient *redis.Client,
) AuthUsecase {
	return &authUsecase{
		log:           log,
		userRepo:      userRepo,
		doctorRepo:    doctorRepo,
		specialtyRepo: specialtyRepo,
		cityRepo:      cityRepo,
		auditService:  auditService,
		jwtService:    jwtService,
		redisClient:   redisClient,
	}
}

func (u *authUsecase) RegisterDoctor(ctx context.Context, req *dto.RegisterDoctorRequest) (*dto.UserResponse, error) {
	// All reference checks happen before any persistence.
	if len(req.Cities) == 0 {
		return nil, ErrNoCities
	}

	specialty, err := u.specialtyRepo.FindByID(ctx, req.SpecialtyID)
	if err != nil {
		u.log.Warnf("Failed to look up specialty: %+v", err)
		return nil, err
	}
	if specialty == nil {
		return nil, ErrSpecialtyNotFound
	}

	cityIDs := make([]uint, 0, len(req.Cities))
	for _, c := range req.Cities {
		cityIDs = append(cityIDs, c.CityID)
	}
	cities, err := u.cityRepo.FindByIDs(ctx, cityIDs)
	if err != nil {
		u.log.Warnf("Failed to look up cities: %+v", err)
		return nil, err
	}
	if len(cities) != len(uniqueIDs(cityIDs)) {
		return nil, ErrCityNotFound
	}

	if req.LicenseNumber != "" {
		inUse, err := u.doctorRepo.LicenseInUse(ctx, req.LicenseNumber, uuid.Nil)
		if err != nil {
			u.log.Warnf("Failed to check license number: %+v", err)
			return nil, err
		}
		if inUse {
			return nil, ErrLicenseAlreadyExists
		}
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	user := &entity.User{
		Email:    strings.ToLower(req.Email),
		Password: string(hashedPassword),
		FullName: req.FullName,
		Role:     entity.RoleDoctor,
		Phone:    req.Phone,
	}

	profile := &entity.DoctorProfile{
		SpecialtyID:     req.SpecialtyID,
		Qualification:   req.Qualification,
		ExperienceYears: req.ExperienceYears,
		ConsultationFee: decimal.NewFromFloat(req.ConsultationFee),
		Bio:             req.Bio,
	}
	if req.LicenseNumber != "" {
		license := req.LicenseNumber
		profile.LicenseNumber = &license
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

	tag := &entity.SearchTag{
		Content: BuildDoctorSearchContent(user.FullName, specialty.Name, req.Qualification, req.Bio, cityNames(cities)),
	}

	if err := u.doctorRepo.CreateWithUser(ctx, user, profile, doctorCities, tag); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		if isDuplicateKeyError(err, "license") {
			return nil, ErrLicenseAlreadyExists
		}
		if isDuplicateKeyError(err, "doctor_city") {
			return nil, ErrCityNotFound
		}
		u.log.Warnf("Failed to create doctor: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, &user.ID, entity.AuditActionUserRegister, "user", user.ID.String(), map[string]interface{}{"role": user.Role.String()}); err != nil {
		// Audit failures never fail the registration.
		u.log.Warnf("Failed to audit doctor registration: %+v", err)
	}

	return converter.UserToResponse(user), nil
}

func (u *authUsecase) RegisterPatient(ctx context.Context, req *dto.RegisterPatientRequest) (*dto.UserResponse, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	user := &entity.User{
		Email:    strings.ToLower(req.Email),
		Password: string(hashedPassword),
		FullName: req.FullName,
		Role:     entity.RolePatient,
		Phone:    req.Phone,
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}

	return converter.UserToResponse(user), nil
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := u.userRepo.FindByEmail(ctx, strings.ToLower(req.Email))
	if err != nil {
		u.log.Warnf("Failed to find user by email: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if !user.Active() {
		return nil, ErrAccountDisabled
	}

	return u.issueTokens(ctx, user.ID, user.Email, user.Role.String())
}

func (u *authUsecase) Logout(ctx context.Context, accessTokenID, refreshTokenID string) error {
	for _, pattern := range []string{
		fmt.Sprintf("access_token:*:%s", accessTokenID),
		fmt.Sprintf("refresh_token:*:%s", refreshTokenID),
	} {
		keys, err := u.redisClient.Keys(ctx, pattern).Result()
		if err != nil {
			u.log.Warnf("Failed to get token keys: %+v", err)
			return err
		}
		if len(keys) > 0 {
			if err := u.redisClient.Del(ctx, keys...).Err(); err != nil {
				u.log.Warnf("Failed to delete tokens: %+v", err)
				return err
			}
		}
	}
	return nil
}

func (u *authUsecase) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	claims, err := u.jwtService.ValidateToken(req.RefreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}

	if claims.TokenType != jwt.RefreshToken {
		return nil, ErrInvalidToken
	}

	refreshKey := fmt.Sprintf("refresh_token:%s:%s", claims.UserID.String(), claims.TokenID)
	exists, err := u.redisClient.Exists(ctx, refreshKey).Result()
	if err != nil {
		u.log.Warnf("Failed to check refresh token in Redis: %+v", err)
		return nil, err
	}
	if exists == 0 {
		return nil, ErrTokenRevoked
	}

	// Rotate: the old refresh token is single use.
	if err := u.redisClient.Del(ctx, refreshKey).Err(); err != nil {
		u.log.Warnf("Failed to delete old refresh token: %+v", err)
		return nil, err
	}

	return u.issueTokens(ctx, claims.UserID, claims.Email, claims.Role)
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
	user, err := u.userRepo.FindByID(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return converter.UserToResponse(user), nil
}

func (u *authUsecase) issueTokens(ctx context.Context, userID uuid.UUID, email, role string) (*dto.TokenResponse, error) {
	accessToken, accessTokenID, err := u.jwtService.GenerateAccessToken(userID, email, role)
	if err != nil {
		u.log.Warnf("Failed to generate access token: %+v", err)
		return nil, err
	}

	refreshToken, refreshTokenID, err := u.jwtService.GenerateRefreshToken(userID, email, role)
	if err != nil {
		u.log.Warnf("Failed to generate refresh token: %+v", err)
		return nil, err
	}

	accessKey := fmt.Sprintf("access_token:%s:%s", userID.String(), accessTokenID)
	refreshKey := fmt.Sprintf("refresh_token:%s:%s", userID.String(), refreshTokenID)

	if err := u.redisClient.Set(ctx, accessKey, "valid", u.jwtService.GetAccessExpiry()).Err(); err != nil {
		u.log.Warnf("Failed to store access token in Redis: %+v", err)
		return nil, err
	}
	if err := u.redisClient.Set(ctx, refreshKey, "valid", u.jwtService.GetRefreshExpiry()).Err(); err != nil {
		u.log.Warnf("Failed to store refresh token in Redis: %+v", err)
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(u.jwtService.GetAccessExpiry().Seconds()),
	}, nil
}

// BuildDoctorSearchContent assembles the free-text search tag content for a
// doctor profile from its indexable fields.
func BuildDoctorSearchContent(fullName, specialty, qualification, bio string, cities []string) string {
	parts := make([]string, 0, 4+len(cities))
	for _, p := range []string{fullName, specialty, qualification, bio} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	for _, c := range cities {
		if c = strings.TrimSpace(c); c != "" {
			parts = append(parts, c)
		}
	}
	return strings.Join(parts, " | ")
}

func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func cityNames(cities []entity.City) []string {
	names := make([]string, 0, len(cities))
	for _, c := range cities {
		names = append(names, c.Name)
	}
	return names
}
