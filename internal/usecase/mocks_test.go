package usecase

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/dev-karunendu-mishra/hello-doctors-sub001/internal/domain/entity"
	"github.com/dev-karunendu-mishra/hello-doctors-sub001/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Hand-rolled mocks with overridable behavior per test. A nil func means
// "succeed with zero values".

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("bad test date %q: %v", s, err)
	}
	return d
}

type mockUserRepo struct {
	CreateFn      func(ctx context.Context, user *entity.User) error
	FindByEmailFn func(ctx context.Context, email string) (*entity.User, error)
	FindByIDFn    func(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindAllFn     func(ctx context.Context, offset, limit int) ([]entity.User, int64, error)
	UpdateFn      func(ctx context.Context, user *entity.User) error
	SetActiveFn   func(ctx context.Context, id uuid.UUID, active bool) error
	DeleteFn      func(ctx context.Context, id uuid.UUID) error
}

func (m *mockUserRepo) Create(ctx context.Context, user *entity.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, user)
	}
	return nil
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if m.FindByEmailFn != nil {
		return m.FindByEmailFn(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	if m.FindByIDFn != nil {
		return m.FindByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepo) FindAll(ctx context.Context, offset, limit int) ([]entity.User, int64, error) {
	if m.FindAllFn != nil {
		return m.FindAllFn(ctx, offset, limit)
	}
	return nil, 0, nil
}

func (m *mockUserRepo) Update(ctx context.Context, user *entity.User) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, user)
	}
	return nil
}

func (m *mockUserRepo) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	if m.SetActiveFn != nil {
		return m.SetActiveFn(ctx, id, active)
	}
	return nil
}

func (m *mockUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

type mockDoctorRepo struct {
	CreateWithUserFn      func(ctx context.Context, user *entity.User, profile *entity.DoctorProfile, cities []entity.DoctorCity, tag *entity.SearchTag) error
	FindByUserIDFn        func(ctx context.Context, userID uuid.UUID) (*entity.DoctorProfile, error)
	FindAllFn             func(ctx context.Context, offset, limit int) ([]entity.DoctorProfile, int64, error)
	FindFeaturedFn        func(ctx context.Context, limit int) ([]entity.DoctorProfile, error)
	SearchFn              func(ctx context.Context, filter entity.DoctorSearchFilter, offset, limit int) ([]entity.DoctorProfile, int64, error)
	LicenseInUseFn        func(ctx context.Context, license string, excludeUserID uuid.UUID) (bool, error)
	UpdateFn              func(ctx context.Context, profile *entity.DoctorProfile) error
	ReplaceCitiesFn       func(ctx context.Context, doctorID uuid.UUID, cities []entity.DoctorCity) error
	ReplaceWorkingHoursFn func(ctx context.Context, doctorID uuid.UUID, hours []entity.DoctorWorkingHour) error
	WorkingHoursFn        func(ctx context.Context, doctorID uuid.UUID) ([]entity.DoctorWorkingHour, error)
	DeleteFn              func(ctx context.Context, doctorID uuid.UUID) error
}

func (m *mockDoctorRepo) CreateWithUser(ctx context.Context, user *entity.User, profile *entity.DoctorProfile, cities []entity.DoctorCity, tag *entity.SearchTag) error {
	if m.CreateWithUserFn != nil {
		return m.CreateWithUserFn(ctx, user, profile, cities, tag)
	}
	return nil
}

func (m *mockDoctorRepo) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.DoctorProfile, error) {
	if m.FindByUserIDFn != nil {
		return m.FindByUserIDFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockDoctorRepo) FindAll(ctx context.Context, offset, limit int) ([]entity.DoctorProfile, int64, error) {
	if m.FindAllFn != nil {
		return m.FindAllFn(ctx, offset, limit)
	}
	return nil, 0, nil
}

func (m *mockDoctorRepo) FindFeatured(ctx context.Context, limit int) ([]entity.DoctorProfile, error) {
	if m.FindFeaturedFn != nil {
		return m.FindFeaturedFn(ctx, limit)
	}
	return nil, nil
}

func (m *mockDoctorRepo) Search(ctx context.Context, filter entity.DoctorSearchFilter, offset, limit int) ([]entity.DoctorProfile, int64, error) {
	if m.SearchFn != nil {
		return m.SearchFn(ctx, filter, offset, limit)
	}
	return nil, 0, nil
}

func (m *mockDoctorRepo) LicenseInUse(ctx context.Context, license string, excludeUserID uuid.UUID) (bool, error) {
	if m.LicenseInUseFn != nil {
		return m.LicenseInUseFn(ctx, license, excludeUserID)
	}
	return false, nil
}

func (m *mockDoctorRepo) Update(ctx context.Context, profile *entity.DoctorProfile) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, profile)
	}
	return nil
}

func (m *mockDoctorRepo) ReplaceCities(ctx context.Context, doctorID uuid.UUID, cities []entity.DoctorCity) error {
	if m.ReplaceCitiesFn != nil {
		return m.ReplaceCitiesFn(ctx, doctorID, cities)
	}
	return nil
}

func (m *mockDoctorRepo) ReplaceWorkingHours(ctx context.Context, doctorID uuid.UUID, hours []entity.DoctorWorkingHour) error {
	if m.ReplaceWorkingHoursFn != nil {
		return m.ReplaceWorkingHoursFn(ctx, doctorID, hours)
	}
	return nil
}

func (m *mockDoctorRepo) WorkingHours(ctx context.Context, doctorID uuid.UUID) ([]entity.DoctorWorkingHour, error) {
	if m.WorkingHoursFn != nil {
		return m.WorkingHoursFn(ctx, doctorID)
	}
	return nil, nil
}

func (m *mockDoctorRepo) Delete(ctx context.Context, doctorID uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, doctorID)
	}
	return nil
}

type mockSpecialtyRepo struct {
	FindAllFn  func(ctx context.Context) ([]entity.Specialty, error)
	FindByIDFn func(ctx context.Context, id uint) (*entity.Specialty, error)
}

func (m *mockSpecialtyRepo) FindAll(ctx context.Context) ([]entity.Specialty, error) {
	if m.FindAllFn != nil {
		return m.FindAllFn(ctx)
	}
	return nil, nil
}

func (m *mockSpecialtyRepo) FindByID(ctx context.Context, id uint) (*entity.Specialty, error) {
	if m.FindByIDFn != nil {
		return m.FindByIDFn(ctx, id)
	}
	return nil, nil
}

type mockCityRepo struct {
	FindAllFn   func(ctx context.Context) ([]entity.City, error)
	FindByIDFn  func(ctx context.Context, id uint) (*entity.City, error)
	FindByIDsFn func(ctx context.Context, ids []uint) ([]entity.City, error)
}

func (m *mockCityRepo) FindAll(ctx context.Context) ([]entity.City, error) {
	if m.FindAllFn != nil {
		return m.FindAllFn(ctx)
	}
	return nil, nil
}

func (m *mockCityRepo) FindByID(ctx context.Context, id uint) (*entity.City, error) {
	if m.FindByIDFn != nil {
		return m.FindByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockCityRepo) FindByIDs(ctx context.Context, ids []uint) ([]entity.City, error) {
	if m.FindByIDsFn != nil {
		return m.FindByIDsFn(ctx, ids)
	}
	return nil, nil
}

type mockAdRepo struct {
	CreateFn            func(ctx context.Context, ad *entity.Advertisement) error
	FindByIDFn          func(ctx context.Context, id uint) (*entity.Advertisement, error)
	FindAllFn           func(ctx context.Context, offset, limit int) ([]entity.Advertisement, int64, error)
	FindActiveFn        func(ctx context.Context, position entity.AdPosition, now time.Time) ([]entity.Advertisement, error)
	UpdateFn            func(ctx context.Context, ad *entity.Advertisement) error
	DeleteFn            func(ctx context.Context, id uint) error
	IncrementClicksFn   func(ctx context.Context, id uint, delta int64) error
	DeactivateExpiredFn func(ctx context.Context, now time.Time) (int64, error)
}

func (m *mockAdRepo) Create(ctx context.Context, ad *entity.Advertisement) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, ad)
	}
	return nil
}

func (m *mockAdRepo) FindByID(ctx context.Context, id uint) (*entity.Advertisement, error) {
	if m.FindByIDFn != nil {
		return m.FindByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockAdRepo) FindAll(ctx context.Context, offset, limit int) ([]entity.Advertisement, int64, error) {
	if m.FindAllFn != nil {
		return m.FindAllFn(ctx, offset, limit)
	}
	return nil, 0, nil
}

func (m *mockAdRepo) FindActive(ctx context.Context, position entity.AdPosition, now time.Time) ([]entity.Advertisement, error) {
	if m.FindActiveFn != nil {
		return m.FindActiveFn(ctx, position, now)
	}
	return nil, nil
}

func (m *mockAdRepo) Update(ctx context.Context, ad *entity.Advertisement) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, ad)
	}
	return nil
}

func (m *mockAdRepo) Delete(ctx context.Context, id uint) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

func (m *mockAdRepo) IncrementClicks(ctx context.Context, id uint, delta int64) error {
	if m.IncrementClicksFn != nil {
		return m.IncrementClicksFn(ctx, id, delta)
	}
	return nil
}

func (m *mockAdRepo) DeactivateExpired(ctx context.Context, now time.Time) (int64, error) {
	if m.DeactivateExpiredFn != nil {
		return m.DeactivateExpiredFn(ctx, now)
	}
	return 0, nil
}

type mockSubscriptionRepo struct {
	FindByEmailFn func(ctx context.Context, email string) (*entity.Subscription, error)
	CreateFn      func(ctx context.Context, sub *entity.Subscription) error
	UpdateFn      func(ctx context.Context, sub *entity.Subscription) error
}

func (m *mockSubscriptionRepo) FindByEmail(ctx context.Context, email string) (*entity.Subscription, error) {
	if m.FindByEmailFn != nil {
		return m.FindByEmailFn(ctx, email)
	}
	return nil, nil
}

func (m *mockSubscriptionRepo) Create(ctx context.Context, sub *entity.Subscription) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, sub)
	}
	return nil
}

func (m *mockSubscriptionRepo) Update(ctx context.Context, sub *entity.Subscription) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, sub)
	}
	return nil
}

type mockSearchTagRepo struct {
	UpsertFn    func(ctx context.Context, tag *entity.SearchTag) error
	DeleteForFn func(ctx context.Context, kind entity.TaggableKind, taggableID uuid.UUID) error
}

func (m *mockSearchTagRepo) Upsert(ctx context.Context, tag *entity.SearchTag) error {
	if m.UpsertFn != nil {
		return m.UpsertFn(ctx, tag)
	}
	return nil
}

func (m *mockSearchTagRepo) DeleteFor(ctx context.Context, kind entity.TaggableKind, taggableID uuid.UUID) error {
	if m.DeleteForFn != nil {
		return m.DeleteForFn(ctx, kind, taggableID)
	}
	return nil
}

// mockAuditService records actions so tests can assert on the audit trail.
type mockAuditService struct {
	Actions []string
}

func (m *mockAuditService) LogCreate(ctx context.Context, userID *uuid.UUID, action string, entityName string, entityID string, newValue interface{}) error {
	m.Actions = append(m.Actions, action)
	return nil
}

func (m *mockAuditService) LogUpdate(ctx context.Context, userID *uuid.UUID, action string, entityName string, entityID string, oldValue, newValue interface{}) error {
	m.Actions = append(m.Actions, action)
	return nil
}

func (m *mockAuditService) LogDelete(ctx context.Context, userID *uuid.UUID, action string, entityName string, entityID string, oldValue interface{}) error {
	m.Actions = append(m.Actions, action)
	return nil
}

var _ repository.UserRepository = (*mockUserRepo)(nil)
var _ repository.DoctorRepository = (*mockDoctorRepo)(nil)
var _ repository.SpecialtyRepository = (*mockSpecialtyRepo)(nil)
var _ repository.CityRepository = (*mockCityRepo)(nil)
var _ repository.AdvertisementRepository = (*mockAdRepo)(nil)
var _ repository.SubscriptionRepository = (*mockSubscriptionRepo)(nil)
var _ repository.SearchTagRepository = (*mockSearchTagRepo)(nil)
