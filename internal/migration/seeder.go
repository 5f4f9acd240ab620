package migration

import (
	"context"
	"fmt"
	"os"

	"github.com/dev-karunendu-mishra/hello-doctors-sub001/config"
	"github.com/dev-karunendu-mishra/hello-doctors-sub001/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// LegacySeeder executes the legacy SQL dump verbatim and applies the
// post-import fixups: credentials for imported doctors and the super admin
// account. The dump's internal format is opaque; it is produced by the
// external exporter and consumed as-is.
type LegacySeeder struct {
	log *logrus.Logger
	db  *gorm.DB
	cfg config.SeedConfig
}

func NewLegacySeeder(log *logrus.Logger, db *gorm.DB, cfg config.SeedConfig) *LegacySeeder {
	return &LegacySeeder{
		log: log,
		db:  db,
		cfg: cfg,
	}
}

func (s *LegacySeeder) Seed(ctx context.Context) error {
	dump, err := os.ReadFile(s.cfg.DumpPath)
	if err != nil {
		return fmt.Errorf("failed to read dump file: %w", err)
	}

	if err := s.db.WithContext(ctx).Exec(string(dump)).Error; err != nil {
		return fmt.Errorf("failed to execute dump: %w", err)
	}
	s.log.Info("Legacy dump executed")

	if err := s.setDoctorDefaultPasswords(ctx); err != nil {
		return err
	}

	if err := s.ensureSuperAdmin(ctx); err != nil {
		return err
	}

	auditLog := &entity.AuditLog{
		Action: entity.AuditActionLegacyMigrate,
		Metadata: entity.JSON{
			"entity": "legacy_dump",
			"source": s.cfg.DumpPath,
		},
	}
	if err := s.db.WithContext(ctx).Create(auditLog).Error; err != nil {
		s.log.Warnf("Failed to record import audit entry: %+v", err)
	}

	return nil
}

// setDoctorDefaultPasswords gives every imported doctor account the shared
// default password. The dump carries no usable credential material.
func (s *LegacySeeder) setDoctorDefaultPasswords(ctx context.Context) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(s.cfg.DoctorDefaultPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash doctor password: %w", err)
	}

	result := s.db.WithContext(ctx).
		Model(&entity.User{}).
		Where("role = ? AND (password IS NULL OR password = '')", entity.RoleDoctor).
		Update("password", string(hash))
	if result.Error != nil {
		return fmt.Errorf("failed to set doctor passwords: %w", result.Error)
	}

	s.log.Infof("Default password applied to %d imported doctor accounts", result.RowsAffected)
	return nil
}

// ensureSuperAdmin creates the fixed admin login when the dump did not carry
// one. Re-running the seeder leaves an existing admin untouched.
func (s *LegacySeeder) ensureSuperAdmin(ctx context.Context) error {
	var count int64
	if err := s.db.WithContext(ctx).
		Model(&entity.User{}).
		Where("email = ?", s.cfg.AdminEmail).
		Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check admin account: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(s.cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	active := true
	admin := &entity.User{
		Email:    s.cfg.AdminEmail,
		Password: string(hash),
		FullName: "Super Admin",
		Role:     entity.RoleSuperAdmin,
		IsActive: &active,
	}
	if err := s.db.WithContext(ctx).Create(admin).Error; err != nil {
		return fmt.Errorf("failed to create admin account: %w", err)
	}

	s.log.Infof("Super admin account created: %s", s.cfg.AdminEmail)
	return nil
}
