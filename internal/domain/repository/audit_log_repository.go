package repository

import (
	"context"

	"clinic-records/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AuditLogRepository interface {
	Create(ctx context.Context, db *gorm.DB, log *entity.AuditLog) error
	FindByDoctorID(ctx context.Context, db *gorm.DB, doctorID uuid.UUID, offset, limit int) ([]entity.AuditLog, int64, error)
}
