package bootstrap

import (
	"context"
	"fmt"

	"clinic-records/config"
	"clinic-records/internal/delivery/dto"
	"clinic-records/internal/infrastructure/database"
	"clinic-records/internal/infrastructure/migration"
	"clinic-records/internal/repository"
	"clinic-records/internal/service"
	"clinic-records/internal/usecase"
	"clinic-records/pkg/validator"

	"github.com/sirupsen/logrus"
)

// Migrate applies ("up") or reverts one step of ("down") the embedded schema migrations.
func Migrate(cfg *config.Config, log *logrus.Logger, direction string) error {
	migrator, err := migration.NewMigrator(cfg.DB, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := migrator.Close(); err != nil {
			log.Warnf("Failed to close migrator: %+v", err)
		}
	}()

	switch direction {
	case "up":
		return migrator.Up()
	case "down":
		return migrator.Down()
	default:
		return fmt.Errorf("unknown migration direction %q, use up or down", direction)
	}
}

// CreateDoctor provisions a doctor account. There is no public sign-up endpoint.
func CreateDoctor(ctx context.Context, cfg *config.Config, log *logrus.Logger, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error) {
	v := validator.NewValidator()
	if err := v.Validate(req); err != nil {
		for _, msg := range v.FormatValidationErrors(err) {
			return nil, fmt.Errorf("invalid doctor: %s", msg)
		}
		return nil, err
	}

	db, err := database.NewPostgresConnection(cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}()

	auditService := service.NewAuditService(log, repository.NewAuditLogRepository())
	doctorUsecase := usecase.NewDoctorUsecase(db, log, repository.NewDoctorRepository(), auditService)

	return doctorUsecase.CreateDoctor(ctx, req)
}
