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

func newAdUsecase(adRepo *mockAdRepo, audit *mockAuditService) AdvertisementUsecase {
	return NewAdvertisementUsecase(testLogger(), adRepo, nil, audit)
}

func TestCreateAdvertisement_EndBeforeStartRejected(t *testing.T) {
	adRepo := &mockAdRepo{
		CreateFn: func(ctx context.Context, ad *entity.Advertisement) error {
			t.Fatal("invalid date range must not be persisted")
			return nil
		},
	}
	uc := newAdUsecase(adRepo, &mockAuditService{})

	_, err := uc.Create(context.Background(), uuid.New(), &dto.CreateAdvertisementRequest{
		Title:     "Summer checkup",
		Position:  "home_top",
		StartDate: "2026-09-01",
		EndDate:   "2026-08-01",
	}, "advertisements/a.png")

	assert.ErrorIs(t, err, ErrAdInvalidDates)
}

func TestCreateAdvertisement_EqualDatesAccepted(t *testing.T) {
	var created *entity.Advertisement
	adRepo := &mockAdRepo{
		CreateFn: func(ctx context.Context, ad *entity.Advertisement) error {
			created = ad
			return nil
		},
	}
	audit := &mockAuditService{}
	uc := newAdUsecase(adRepo, audit)

	_, err := uc.Create(context.Background(), uuid.New(), &dto.CreateAdvertisementRequest{
		Title:     "One day only",
		Position:  "sidebar",
		StartDate: "2026-09-01",
		EndDate:   "2026-09-01",
	}, "advertisements/a.png")

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.True(t, created.IsActive)
	assert.Contains(t, audit.Actions, entity.AuditActionAdCreate)
}

func TestCreateAdvertisement_OpenEndedAccepted(t *testing.T) {
	var created *entity.Advertisement
	adRepo := &mockAdRepo{
		CreateFn: func(ctx context.Context, ad *entity.Advertisement) error {
			created = ad
			return nil
		},
	}
	uc := newAdUsecase(adRepo, &mockAuditService{})

	_, err := uc.Create(context.Background(), uuid.New(), &dto.CreateAdvertisementRequest{
		Title:     "Evergreen",
		Position:  "search_results",
		StartDate: "2026-09-01",
	}, "advertisements/a.png")

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Nil(t, created.EndDate)
}

func TestCreateAdvertisement_ImageRequired(t *testing.T) {
	uc := newAdUsecase(&mockAdRepo{}, &mockAuditService{})

	_, err := uc.Create(context.Background(), uuid.New(), &dto.CreateAdvertisementRequest{
		Title:     "No image",
		Position:  "home_top",
		StartDate: "2026-09-01",
	}, "")

	assert.ErrorIs(t, err, ErrAdImageRequired)
}

func TestCreateAdvertisement_UnknownPositionRejected(t *testing.T) {
	uc := newAdUsecase(&mockAdRepo{}, &mockAuditService{})

	_, err := uc.Create(context.Background(), uuid.New(), &dto.CreateAdvertisementRequest{
		Title:     "Bad slot",
		Position:  "footer",
		StartDate: "2026-09-01",
	}, "advertisements/a.png")

	assert.ErrorIs(t, err, ErrAdInvalidPosition)
}

func TestUpdateAdvertisement_OmittedImageRetained(t *testing.T) {
	existing := &entity.Advertisement{
		ID:        3,
		Title:     "Old title",
		ImagePath: "advertisements/original.png",
		Position:  entity.AdPositionHomeTop,
		StartDate: mustDate(t, "2026-09-01"),
		IsActive:  true,
	}

	var saved *entity.Advertisement
	adRepo := &mockAdRepo{
		FindByIDFn: func(ctx context.Context, id uint) (*entity.Advertisement, error) {
			return existing, nil
		},
		UpdateFn: func(ctx context.Context, ad *entity.Advertisement) error {
			saved = ad
			return nil
		},
	}
	uc := newAdUsecase(adRepo, &mockAuditService{})

	_, err := uc.Update(context.Background(), uuid.New(), 3, &dto.UpdateAdvertisementRequest{Title: "New title"}, "")

	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "advertisements/original.png", saved.ImagePath)
	assert.Equal(t, "New title", saved.Title)
}

func TestUpdateAdvertisement_EndBeforeExistingStartRejected(t *testing.T) {
	existing := &entity.Advertisement{
		ID:        3,
		Title:     "Running ad",
		ImagePath: "advertisements/original.png",
		Position:  entity.AdPositionSidebar,
		StartDate: mustDate(t, "2026-09-01"),
		IsActive:  true,
	}
	adRepo := &mockAdRepo{
		FindByIDFn: func(ctx context.Context, id uint) (*entity.Advertisement, error) {
			return existing, nil
		},
		UpdateFn: func(ctx context.Context, ad *entity.Advertisement) error {
			t.Fatal("invalid date range must not be persisted")
			return nil
		},
	}
	uc := newAdUsecase(adRepo, &mockAuditService{})

	_, err := uc.Update(context.Background(), uuid.New(), 3, &dto.UpdateAdvertisementRequest{EndDate: "2026-08-15"}, "")

	assert.ErrorIs(t, err, ErrAdInvalidDates)
}

func TestUpdateAdvertisement_NotFound(t *testing.T) {
	uc := newAdUsecase(&mockAdRepo{}, &mockAuditService{})

	_, err := uc.Update(context.Background(), uuid.New(), 99, &dto.UpdateAdvertisementRequest{Title: "x"}, "")

	assert.ErrorIs(t, err, ErrAdNotFound)
}
