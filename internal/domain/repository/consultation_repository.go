package repository

import (
	"context"

	"clinic-records/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ConsultationRepository interface {
	Create(ctx context.Context, db *gorm.DB, consultation *entity.Consultation) error
	FindByIDForPatient(ctx context.Context, db *gorm.DB, id, patientID uuid.UUID) (*entity.Consultation, error)
	FindLatestByPatientID(ctx context.Context, db *gorm.DB, patientID uuid.UUID) (*entity.Consultation, error)
	FindLatestByPatientIDs(ctx context.Context, db *gorm.DB, patientIDs []uuid.UUID) (map[uuid.UUID]entity.Consultation, error)
	FindByPatientID(ctx context.Context, db *gorm.DB, patientID uuid.UUID, filter entity.ConsultationFilter) ([]entity.Consultation, int64, error)
	FindRecentByDoctorID(ctx context.Context, db *gorm.DB, doctorID uuid.UUID, limit int) ([]entity.RecentActivity, error)
	UpdateMedical(ctx context.Context, db *gorm.DB, consultation *entity.Consultation) error
	Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) (int64, error)
}
