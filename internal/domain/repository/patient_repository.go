package repository

import (
	"context"

	"clinic-records/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PatientRepository interface {
	Create(ctx context.Context, db *gorm.DB, patient *entity.Patient) error
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Patient, error)
	FindByIDWithConsultations(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Patient, error)
	UpdatePersonal(ctx context.Context, db *gorm.DB, patient *entity.Patient) error
	Search(ctx context.Context, db *gorm.DB, search entity.PatientSearch) ([]entity.Patient, error)
}
