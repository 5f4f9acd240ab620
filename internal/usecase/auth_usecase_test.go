package usecase

import (
	"context"
	"testing"

	"github.com/dev-karunendu-mishra/hello-doctors-sub001/internal/delivery/dto"
	"github.com/dev-karunendu-mishra/hello-doctors-sub001/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthUsecaseForRegistration(userRepo *mockUserRepo, doctorRepo *mockDoctorRepo, specialtyRepo *mockSpecialtyRepo, cityRepo *mockCityRepo, audit *mockAuditService) AuthUsecase {
	// JWT and Redis are not touched on the registration paths.
	return NewAuthUsecase(testLogger(), userRepo, doctorRepo, specialtyRepo, cityRepo, audit, nil, nil)
}

func doctorRegistration() *dto.RegisterDoctorRequest {
	return &dto.RegisterDoctorRequest{
		Email:           "Dr.Sharma@Example.com",
		Password:        "secret-pass",
		ConfirmPassword: "secret-pass",
		FullName:        "Dr. Asha Sharma",
		Phone:           "9876543210",
		SpecialtyID:     2,
		LicenseNumber:   "MH-1234",
		Qualification:   "MBBS, MD",
		ExperienceYears: 12,
		ConsultationFee: 600,
		Cities: []dto.DoctorCityRequest{
			{CityID: 1, Address: "Clinic Rd 5"},
			{CityID: 4},
		},
	}
}

func TestRegisterDoctor_RequiresAtLeastOneCity(t *testing.T) {
	req := doctorRegistration()
	req.Cities = nil

	doctorRepo := &mockDoctorRepo{
		CreateWithUserFn: func(ctx context.Context, user *entity.User, profile *entity.DoctorProfile, cities []entity.DoctorCity, tag *entity.SearchTag) error {
			t.Fatal("registration without cities must not persist anything")
			return nil
		},
	}
	uc := newAuthUsecaseForRegistration(&mockUserRepo{}, doctorRepo, &mockSpecialtyRepo{}, &mockCityRepo{}, &mockAuditService{})

	_, err := uc.RegisterDoctor(context.Background(), req)

	assert.ErrorIs(t, err, ErrNoCities)
}

func TestRegisterDoctor_UnknownCityRejected(t *testing.T) {
	specialtyRepo := &mockSpecialtyRepo{
		FindByIDFn: func(ctx context.Context, id uint) (*entity.Specialty, error) {
			return &entity.Specialty{ID: id, Name: "Cardiology"}, nil
		},
	}
	cityRepo := &mockCityRepo{
		FindByIDsFn: func(ctx context.Context, ids []uint) ([]entity.City, error) {
			// Only one of the two requested cities exists.
			return []entity.City{{ID: 1, Name: "Mumbai"}}, nil
		},
	}
	uc := newAuthUsecaseForRegistration(&mockUserRepo{}, &mockDoctorRepo{}, specialtyRepo, cityRepo, &mockAuditService{})

	_, err := uc.RegisterDoctor(context.Background(), doctorRegistration())

	assert.ErrorIs(t, err, ErrCityNotFound)
}

func TestRegisterDoctor_UnknownSpecialtyRejected(t *testing.T) {
	uc := newAuthUsecaseForRegistration(&mockUserRepo{}, &mockDoctorRepo{}, &mockSpecialtyRepo{}, &mockCityRepo{}, &mockAuditService{})

	_, err := uc.RegisterDoctor(context.Background(), doctorRegistration())

	assert.ErrorIs(t, err, ErrSpecialtyNotFound)
}

func TestRegisterDoctor_DuplicateLicenseRejected(t *testing.T) {
	specialtyRepo := &mockSpecialtyRepo{
		FindByIDFn: func(ctx context.Context, id uint) (*entity.Specialty, error) {
			return &entity.Specialty{ID: id, Name: "Cardiology"}, nil
		},
	}
	cityRepo := &mockCityRepo{
		FindByIDsFn: func(ctx context.Context, ids []uint) ([]entity.City, error) {
			return []entity.City{{ID: 1, Name: "Mumbai"}, {ID: 4, Name: "Pune"}}, nil
		},
	}
	doctorRepo := &mockDoctorRepo{
		LicenseInUseFn: func(ctx context.Context, license string, excludeUserID uuid.UUID) (bool, error) {
			return true, nil
		},
	}
	uc := newAuthUsecaseForRegistration(&mockUserRepo{}, doctorRepo, specialtyRepo, cityRepo, &mockAuditService{})

	_, err := uc.RegisterDoctor(context.Background(), doctorRegistration())

	assert.ErrorIs(t, err, ErrLicenseAlreadyExists)
}

func TestRegisterDoctor_PersistsUserProfileCitiesAndTag(t *testing.T) {
	specialtyRepo := &mockSpecialtyRepo{
		FindByIDFn: func(ctx context.Context, id uint) (*entity.Specialty, error) {
			return &entity.Specialty{ID: id, Name: "Cardiology"}, nil
		},
	}
	cityRepo := &mockCityRepo{
		FindByIDsFn: func(ctx context.Context, ids []uint) ([]entity.City, error) {
			return []entity.City{{ID: 1, Name: "Mumbai"}, {ID: 4, Name: "Pune"}}, nil
		},
	}

	var gotUser *entity.User
	var gotCities []entity.DoctorCity
	var gotTag *entity.SearchTag
	doctorRepo := &mockDoctorRepo{
		CreateWithUserFn: func(ctx context.Context, user *entity.User, profile *entity.DoctorProfile, cities []entity.DoctorCity, tag *entity.SearchTag) error {
			gotUser = user
			gotCities = cities
			gotTag = tag
			return nil
		},
	}
	audit := &mockAuditService{}
	uc := newAuthUsecaseForRegistration(&mockUserRepo{}, doctorRepo, specialtyRepo, cityRepo, audit)

	_, err := uc.RegisterDoctor(context.Background(), doctorRegistration())

	require.NoError(t, err)
	require.NotNil(t, gotUser)
	assert.Equal(t, "dr.sharma@example.com", gotUser.Email)
	assert.Equal(t, entity.RoleDoctor, gotUser.Role)
	assert.NotEqual(t, "secret-pass", gotUser.Password)

	// One doctor-city row per submitted city.
	assert.Len(t, gotCities, 2)

	require.NotNil(t, gotTag)
	assert.Contains(t, gotTag.Content, "Dr. Asha Sharma")
	assert.Contains(t, gotTag.Content, "Cardiology")
	assert.Contains(t, gotTag.Content, "Mumbai")

	assert.Contains(t, audit.Actions, entity.AuditActionUserRegister)
}

func TestBuildDoctorSearchContent_SkipsEmptyParts(t *testing.T) {
	content := BuildDoctorSearchContent("Dr. Asha Sharma", "Cardiology", "", "  ", []string{"Mumbai", ""})
	assert.Equal(t, "Dr. Asha Sharma | Cardiology | Mumbai", content)
}

func TestUniqueIDs(t *testing.T) {
	assert.Equal(t, []uint{1, 4, 2}, uniqueIDs([]uint{1, 4, 1, 2, 4}))
}
