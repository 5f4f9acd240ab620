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
	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidRole    = errors.New("invalid role")
	ErrSelfMutation   = errors.New("cannot modify your own account")
	ErrAdminImmutable = errors.New("super admin accounts cannot be modified")
)

type UserUsecase interface {
	ListUsers(ctx context.Context, page, limit int) (*dto.UserListResponse, error)
	GetUser(ctx context.Context, id uuid.UUID) (*dto.UserResponse, error)
	SetActive(ctx context.Context, adminID, id uuid.UUID, active bool) (*dto.UserResponse, error)
	DeleteUser(ctx context.Context, adminID, id uuid.UUID) error
}

type userUsecase struct {
	log          *logrus.Logger
	userRepo     repository.UserRepository
	auditService service.AuditService
}

func NewUserUsecase(log *logrus.Logger, userRepo repository.UserRepository, auditService service.AuditService) UserUsecase {
	return &userUsecase{
		log:          log,
		userRepo:     userRepo,
		auditService: auditService,
	}
}

func (u *userUsecase) ListUsers(ctx context.Context, page, limit int) (*dto.UserListResponse, error) {
	offset, limit := normalizePage(page, limit)
	users, total, err := u.userRepo.FindAll(ctx, offset, limit)
	if err != nil {
		u.log.Warnf("Failed to list users: %+v", err)
		return nil, err
	}
	return &dto.UserListResponse{
		Users: converter.UsersToResponses(users),
		Total: total,
	}, nil
}

func (u *userUsecase) GetUser(ctx context.Context, id uuid.UUID) (*dto.UserResponse, error) {
	user, err := u.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return converter.UserToResponse(user), nil
}

func (u *userUsecase) SetActive(ctx context.Context, adminID, id uuid.UUID, active bool) (*dto.UserResponse, error) {
	if adminID == id {
		return nil, ErrSelfMutation
	}

	user, err := u.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if user.Role == entity.RoleSuperAdmin {
		return nil, ErrAdminImmutable
	}

	if err := u.userRepo.SetActive(ctx, id, active); err != nil {
		u.log.Warnf("Failed to set user active flag: %+v", err)
		return nil, err
	}
	user.IsActive = &active

	if !active {
		if err := u.auditService.LogUpdate(ctx, &adminID, entity.AuditActionUserDeactivate, "user", id.String(), nil, converter.UserToResponse(user)); err != nil {
			u.log.Warnf("Failed to audit user deactivation: %+v", err)
		}
	}

	return converter.UserToResponse(user), nil
}

func (u *userUsecase) DeleteUser(ctx context.Context, adminID, id uuid.UUID) error {
	if adminID == id {
		return ErrSelfMutation
	}

	user, err := u.userRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	if user.Role == entity.RoleSuperAdmin {
		return ErrAdminImmutable
	}

	if err := u.userRepo.Delete(ctx, id); err != nil {
		u.log.Warnf("Failed to delete user: %+v", err)
		return err
	}

	if err := u.auditService.LogDelete(ctx, &adminID, entity.AuditActionUserDelete, "user", id.String(), converter.UserToResponse(user)); err != nil {
		u.log.Warnf("Failed to audit user delete: %+v", err)
	}
	return nil
}
