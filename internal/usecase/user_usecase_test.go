package usecase

import (
	"context"
	"testing"

	"github.com/dev-karunendu-mishra/hello-doctors-sub001/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetActive_SelfMutationRejected(t *testing.T) {
	adminID := uuid.New()
	userRepo := &mockUserRepo{
		SetActiveFn: func(ctx context.Context, id uuid.UUID, active bool) error {
			t.Fatal("an admin must not change their own active flag")
			return nil
		},
	}
	uc := NewUserUsecase(testLogger(), userRepo, &mockAuditService{})

	_, err := uc.SetActive(context.Background(), adminID, adminID, false)

	assert.ErrorIs(t, err, ErrSelfMutation)
}

func TestSetActive_SuperAdminTargetRejected(t *testing.T) {
	targetID := uuid.New()
	userRepo := &mockUserRepo{
		FindByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.User, error) {
			return &entity.User{ID: id, Role: entity.RoleSuperAdmin}, nil
		},
		SetActiveFn: func(ctx context.Context, id uuid.UUID, active bool) error {
			t.Fatal("super admin accounts are immutable")
			return nil
		},
	}
	uc := NewUserUsecase(testLogger(), userRepo, &mockAuditService{})

	_, err := uc.SetActive(context.Background(), uuid.New(), targetID, false)

	assert.ErrorIs(t, err, ErrAdminImmutable)
}

func TestSetActive_DeactivationAudited(t *testing.T) {
	targetID := uuid.New()
	userRepo := &mockUserRepo{
		FindByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.User, error) {
			return &entity.User{ID: id, Role: entity.RolePatient, Email: "p@example.com"}, nil
		},
	}
	audit := &mockAuditService{}
	uc := NewUserUsecase(testLogger(), userRepo, audit)

	resp, err := uc.SetActive(context.Background(), uuid.New(), targetID, false)

	require.NoError(t, err)
	require.NotNil(t, resp.IsActive)
	assert.False(t, *resp.IsActive)
	assert.Contains(t, audit.Actions, entity.AuditActionUserDeactivate)
}

func TestSetActive_ReactivationNotAudited(t *testing.T) {
	targetID := uuid.New()
	userRepo := &mockUserRepo{
		FindByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.User, error) {
			return &entity.User{ID: id, Role: entity.RoleDoctor}, nil
		},
	}
	audit := &mockAuditService{}
	uc := NewUserUsecase(testLogger(), userRepo, audit)

	_, err := uc.SetActive(context.Background(), uuid.New(), targetID, true)

	require.NoError(t, err)
	assert.Empty(t, audit.Actions)
}

func TestDeleteUser_SelfMutationRejected(t *testing.T) {
	adminID := uuid.New()
	uc := NewUserUsecase(testLogger(), &mockUserRepo{}, &mockAuditService{})

	err := uc.DeleteUser(context.Background(), adminID, adminID)

	assert.ErrorIs(t, err, ErrSelfMutation)
}

func TestDeleteUser_AuditedWithAdminActor(t *testing.T) {
	targetID := uuid.New()

	var deleted uuid.UUID
	userRepo := &mockUserRepo{
		FindByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.User, error) {
			return &entity.User{ID: id, Role: entity.RolePatient}, nil
		},
		DeleteFn: func(ctx context.Context, id uuid.UUID) error {
			deleted = id
			return nil
		},
	}
	audit := &mockAuditService{}
	uc := NewUserUsecase(testLogger(), userRepo, audit)

	err := uc.DeleteUser(context.Background(), uuid.New(), targetID)

	require.NoError(t, err)
	assert.Equal(t, targetID, deleted)
	assert.Contains(t, audit.Actions, entity.AuditActionUserDelete)
}

func TestDeleteUser_UnknownUser(t *testing.T) {
	uc := NewUserUsecase(testLogger(), &mockUserRepo{}, &mockAuditService{})

	err := uc.DeleteUser(context.Background(), uuid.New(), uuid.New())

	assert.ErrorIs(t, err, ErrUserNotFound)
}
