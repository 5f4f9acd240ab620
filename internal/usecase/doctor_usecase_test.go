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

func newDoctorUsecase(doctorRepo *mockDoctorRepo, specialtyRepo *mockSpecialtyRepo, cityRepo *mockCityRepo, tagRepo *mockSearchTagRepo, audit *mockAuditService) DoctorUsecase {
	return NewDoctorUsecase(testLogger(), doctorRepo, specialtyRepo, cityRepo, tagRepo, audit)
}

func existingProfile(userID uuid.UUID) *entity.DoctorProfile {
	license := "MH-1234"
	return &entity.DoctorProfile{
		UserID:        userID,
		SpecialtyID:   2,
		LicenseNumber: &license,
		Qualification: "MBBS",
		User:          entity.User{ID: userID, FullName: "Dr. Asha Sharma", Email: "asha@example.com", Role: entity.RoleDoctor},
		Specialty:     entity.Specialty{ID: 2, Name: "Cardiology"},
	}
}

func TestUpdateProfile_LicenseCheckExcludesOwnProfile(t *testing.T) {
	userID := uuid.New()

	var gotLicense string
	var gotExclude uuid.UUID
	doctorRepo := &mockDoctorRepo{
		FindByUserIDFn: func(ctx context.Context, id uuid.UUID) (*entity.DoctorProfile, error) {
			return existingProfile(userID), nil
		},
		LicenseInUseFn: func(ctx context.Context, license string, excludeUserID uuid.UUID) (bool, error) {
			gotLicense = license
			gotExclude = excludeUserID
			return false, nil
		},
	}
	uc := newDoctorUsecase(doctorRepo, &mockSpecialtyRepo{}, &mockCityRepo{}, &mockSearchTagRepo{}, &mockAuditService{})

	license := "MH-1234"
	_, err := uc.UpdateProfile(context.Background(), userID, &dto.UpdateDoctorProfileRequest{LicenseNumber: &license})

	require.NoError(t, err)
	assert.Equal(t, "MH-1234", gotLicense)
	assert.Equal(t, userID, gotExclude)
}

func TestUpdateProfile_LicenseTakenByAnotherDoctor(t *testing.T) {
	userID := uuid.New()
	doctorRepo := &mockDoctorRepo{
		FindByUserIDFn: func(ctx context.Context, id uuid.UUID) (*entity.DoctorProfile, error) {
			return existingProfile(userID), nil
		},
		LicenseInUseFn: func(ctx context.Context, license string, excludeUserID uuid.UUID) (bool, error) {
			return true, nil
		},
		UpdateFn: func(ctx context.Context, profile *entity.DoctorProfile) error {
			t.Fatal("conflicting license must not be persisted")
			return nil
		},
	}
	uc := newDoctorUsecase(doctorRepo, &mockSpecialtyRepo{}, &mockCityRepo{}, &mockSearchTagRepo{}, &mockAuditService{})

	license := "DL-9999"
	_, err := uc.UpdateProfile(context.Background(), userID, &dto.UpdateDoctorProfileRequest{LicenseNumber: &license})

	assert.ErrorIs(t, err, ErrLicenseAlreadyExists)
}

func TestUpdateProfile_EmptyLicenseClearsField(t *testing.T) {
	userID := uuid.New()

	var saved *entity.DoctorProfile
	doctorRepo := &mockDoctorRepo{
		FindByUserIDFn: func(ctx context.Context, id uuid.UUID) (*entity.DoctorProfile, error) {
			return existingProfile(userID), nil
		},
		LicenseInUseFn: func(ctx context.Context, license string, excludeUserID uuid.UUID) (bool, error) {
			t.Fatal("clearing the license needs no uniqueness check")
			return false, nil
		},
		UpdateFn: func(ctx context.Context, profile *entity.DoctorProfile) error {
			saved = profile
			return nil
		},
	}
	uc := newDoctorUsecase(doctorRepo, &mockSpecialtyRepo{}, &mockCityRepo{}, &mockSearchTagRepo{}, &mockAuditService{})

	empty := ""
	_, err := uc.UpdateProfile(context.Background(), userID, &dto.UpdateDoctorProfileRequest{LicenseNumber: &empty})

	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Nil(t, saved.LicenseNumber)
}

func TestUpdateProfile_NotFound(t *testing.T) {
	uc := newDoctorUsecase(&mockDoctorRepo{}, &mockSpecialtyRepo{}, &mockCityRepo{}, &mockSearchTagRepo{}, &mockAuditService{})

	_, err := uc.UpdateProfile(context.Background(), uuid.New(), &dto.UpdateDoctorProfileRequest{})

	assert.ErrorIs(t, err, ErrDoctorNotFound)
}

func TestSetWorkingHours_CloseBeforeOpenRejected(t *testing.T) {
	userID := uuid.New()
	doctorRepo := &mockDoctorRepo{
		FindByUserIDFn: func(ctx context.Context, id uuid.UUID) (*entity.DoctorProfile, error) {
			return existingProfile(userID), nil
		},
		ReplaceWorkingHoursFn: func(ctx context.Context, doctorID uuid.UUID, hours []entity.DoctorWorkingHour) error {
			t.Fatal("invalid hours must not be persisted")
			return nil
		},
	}
	uc := newDoctorUsecase(doctorRepo, &mockSpecialtyRepo{}, &mockCityRepo{}, &mockSearchTagRepo{}, &mockAuditService{})

	_, err := uc.SetWorkingHours(context.Background(), userID, &dto.SetWorkingHoursRequest{
		Hours: []dto.WorkingHourRequest{
			{DayOfWeek: 1, OpenTime: "09:00", CloseTime: "17:00"},
			{DayOfWeek: 2, OpenTime: "17:00", CloseTime: "09:00"},
		},
	})

	assert.ErrorIs(t, err, ErrInvalidWorkingHour)
}

func TestSetWorkingHours_EqualTimesRejected(t *testing.T) {
	userID := uuid.New()
	doctorRepo := &mockDoctorRepo{
		FindByUserIDFn: func(ctx context.Context, id uuid.UUID) (*entity.DoctorProfile, error) {
			return existingProfile(userID), nil
		},
	}
	uc := newDoctorUsecase(doctorRepo, &mockSpecialtyRepo{}, &mockCityRepo{}, &mockSearchTagRepo{}, &mockAuditService{})

	_, err := uc.SetWorkingHours(context.Background(), userID, &dto.SetWorkingHoursRequest{
		Hours: []dto.WorkingHourRequest{{DayOfWeek: 3, OpenTime: "10:00", CloseTime: "10:00"}},
	})

	assert.ErrorIs(t, err, ErrInvalidWorkingHour)
}

func TestSetWorkingHours_ReplacesFullWeek(t *testing.T) {
	userID := uuid.New()

	var replaced []entity.DoctorWorkingHour
	doctorRepo := &mockDoctorRepo{
		FindByUserIDFn: func(ctx context.Context, id uuid.UUID) (*entity.DoctorProfile, error) {
			return existingProfile(userID), nil
		},
		ReplaceWorkingHoursFn: func(ctx context.Context, doctorID uuid.UUID, hours []entity.DoctorWorkingHour) error {
			replaced = hours
			return nil
		},
		WorkingHoursFn: func(ctx context.Context, doctorID uuid.UUID) ([]entity.DoctorWorkingHour, error) {
			return replaced, nil
		},
	}
	uc := newDoctorUsecase(doctorRepo, &mockSpecialtyRepo{}, &mockCityRepo{}, &mockSearchTagRepo{}, &mockAuditService{})

	unavailable := false
	resp, err := uc.SetWorkingHours(context.Background(), userID, &dto.SetWorkingHoursRequest{
		Hours: []dto.WorkingHourRequest{
			{DayOfWeek: 1, OpenTime: "09:00", CloseTime: "13:00"},
			{DayOfWeek: 0, IsAvailable: &unavailable},
		},
	})

	require.NoError(t, err)
	require.Len(t, replaced, 2)
	assert.True(t, replaced[0].IsAvailable)
	assert.False(t, replaced[1].IsAvailable)
	assert.Len(t, resp, 2)
}

func TestReplaceCities_EmptyListRejected(t *testing.T) {
	userID := uuid.New()
	doctorRepo := &mockDoctorRepo{
		FindByUserIDFn: func(ctx context.Context, id uuid.UUID) (*entity.DoctorProfile, error) {
			return existingProfile(userID), nil
		},
		ReplaceCitiesFn: func(ctx context.Context, doctorID uuid.UUID, cities []entity.DoctorCity) error {
			t.Fatal("a doctor must always keep at least one city")
			return nil
		},
	}
	uc := newDoctorUsecase(doctorRepo, &mockSpecialtyRepo{}, &mockCityRepo{}, &mockSearchTagRepo{}, &mockAuditService{})

	_, err := uc.ReplaceCities(context.Background(), userID, &dto.ReplaceCitiesRequest{})

	assert.ErrorIs(t, err, ErrNoCities)
}

func TestReplaceCities_UnknownCityRejected(t *testing.T) {
	userID := uuid.New()
	doctorRepo := &mockDoctorRepo{
		FindByUserIDFn: func(ctx context.Context, id uuid.UUID) (*entity.DoctorProfile, error) {
			return existingProfile(userID), nil
		},
	}
	cityRepo := &mockCityRepo{
		FindByIDsFn: func(ctx context.Context, ids []uint) ([]entity.City, error) {
			return nil, nil
		},
	}
	uc := newDoctorUsecase(doctorRepo, &mockSpecialtyRepo{}, cityRepo, &mockSearchTagRepo{}, &mockAuditService{})

	_, err := uc.ReplaceCities(context.Background(), userID, &dto.ReplaceCitiesRequest{
		Cities: []dto.DoctorCityRequest{{CityID: 99}},
	})

	assert.ErrorIs(t, err, ErrCityNotFound)
}

func TestReplaceCities_RefreshesSearchTag(t *testing.T) {
	userID := uuid.New()

	profile := existingProfile(userID)
	profile.Cities = []entity.DoctorCity{{CityID: 1, City: entity.City{ID: 1, Name: "Mumbai"}}}

	doctorRepo := &mockDoctorRepo{
		FindByUserIDFn: func(ctx context.Context, id uuid.UUID) (*entity.DoctorProfile, error) {
			return profile, nil
		},
	}
	cityRepo := &mockCityRepo{
		FindByIDsFn: func(ctx context.Context, ids []uint) ([]entity.City, error) {
			return []entity.City{{ID: 1, Name: "Mumbai"}}, nil
		},
	}

	var upserted *entity.SearchTag
	tagRepo := &mockSearchTagRepo{
		UpsertFn: func(ctx context.Context, tag *entity.SearchTag) error {
			upserted = tag
			return nil
		},
	}
	uc := newDoctorUsecase(doctorRepo, &mockSpecialtyRepo{}, cityRepo, tagRepo, &mockAuditService{})

	_, err := uc.ReplaceCities(context.Background(), userID, &dto.ReplaceCitiesRequest{
		Cities: []dto.DoctorCityRequest{{CityID: 1, Address: "Clinic Rd 5"}},
	})

	require.NoError(t, err)
	require.NotNil(t, upserted)
	assert.Equal(t, entity.TaggableDoctorProfile, upserted.TaggableKind)
	assert.Equal(t, userID, upserted.TaggableID)
	assert.Contains(t, upserted.Content, "Mumbai")
}

func TestSetVerified_RecordsAuditWithAdminActor(t *testing.T) {
	adminID := uuid.New()
	userID := uuid.New()

	var saved *entity.DoctorProfile
	doctorRepo := &mockDoctorRepo{
		FindByUserIDFn: func(ctx context.Context, id uuid.UUID) (*entity.DoctorProfile, error) {
			return existingProfile(userID), nil
		},
		UpdateFn: func(ctx context.Context, profile *entity.DoctorProfile) error {
			saved = profile
			return nil
		},
	}
	audit := &mockAuditService{}
	uc := newDoctorUsecase(doctorRepo, &mockSpecialtyRepo{}, &mockCityRepo{}, &mockSearchTagRepo{}, audit)

	err := uc.SetVerified(context.Background(), adminID, userID, true)

	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.True(t, saved.IsVerified)
	assert.Contains(t, audit.Actions, entity.AuditActionProfileUpdate)
}

func TestNormalizePage(t *testing.T) {
	offset, limit := normalizePage(0, 0)
	assert.Equal(t, 0, offset)
	assert.Equal(t, 20, limit)

	offset, limit = normalizePage(3, 10)
	assert.Equal(t, 20, offset)
	assert.Equal(t, 10, limit)

	_, limit = normalizePage(1, 500)
	assert.Equal(t, 20, limit)
}
