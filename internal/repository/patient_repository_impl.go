package repository

import (
	"context"
	"errors"
	"strings"

	"clinic-records/internal/domain/entity"
	domainRepo "clinic-records/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type patientRepository struct{}

func NewPatientRepository() domainRepo.PatientRepository {
	return &patientRepository{}
}

func (r *patientRepository) Create(ctx context.Context, db *gorm.DB, patient *entity.Patient) error {
	return db.WithContext(ctx).Omit("Doctor", "Consultations").Create(patient).Error
}

func (r *patientRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Patient, error) {
	var patient entity.Patient
	err := db.WithContext(ctx).Where("id = ?", id).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

// FindByIDWithConsultations loads the patient with every consultation, newest first.
func (r *patientRepository) FindByIDWithConsultations(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Patient, error) {
	var patient entity.Patient
	err := db.WithContext(ctx).
		Preload("Consultations", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC, id DESC")
		}).
		Where("id = ?", id).
		First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

// UpdatePersonal writes the personal fields and UpdatedAt in a single statement.
func (r *patientRepository) UpdatePersonal(ctx context.Context, db *gorm.DB, patient *entity.Patient) error {
	return db.WithContext(ctx).
		Model(&entity.Patient{}).
		Where("id = ?", patient.ID).
		Updates(map[string]interface{}{
			"first_name": patient.FirstName,
			"last_name":  patient.LastName,
			"cedula":     patient.Cedula,
			"age":        patient.Age,
			"sex":        patient.Sex,
			"updated_at": patient.UpdatedAt,
		}).Error
}

// Search matches first and last name case-insensitively and cedula as typed.
func (r *patientRepository) Search(ctx context.Context, db *gorm.DB, search entity.PatientSearch) ([]entity.Patient, error) {
	insensitive := "%" + escapeLike(strings.ToLower(search.Query)) + "%"
	sensitive := "%" + escapeLike(search.Query) + "%"

	match := db.Where("LOWER(first_name) LIKE ? ESCAPE '\\'", insensitive).
		Or("LOWER(last_name) LIKE ? ESCAPE '\\'", insensitive).
		Or("cedula LIKE ? ESCAPE '\\'", sensitive)

	query := db.WithContext(ctx).Where(match)
	if search.DoctorID != nil {
		query = query.Where("doctor_id = ?", *search.DoctorID)
	}

	var patients []entity.Patient
	err := query.
		Order("updated_at DESC, id").
		Limit(search.Limit).
		Find(&patients).Error
	if err != nil {
		return nil, err
	}
	return patients, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
