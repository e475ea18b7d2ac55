package repository

import (
	"context"
	"errors"

	"clinic-records/internal/domain/entity"
	domainRepo "clinic-records/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// recentActivityQuery keeps one row per patient (its most recently updated consultation)
// and ranks those rows globally by the consultation's updated_at.
const recentActivityQuery = `
SELECT consultation_id, patient_id, diagnosis, consultation_created_at, consultation_updated_at,
       first_name, last_name, age, sex, cedula, patient_created_at, patient_updated_at
FROM (
    SELECT c.id         AS consultation_id,
           c.patient_id AS patient_id,
           c.diagnosis  AS diagnosis,
           c.created_at AS consultation_created_at,
           c.updated_at AS consultation_updated_at,
           p.first_name AS first_name,
           p.last_name  AS last_name,
           p.age        AS age,
           p.sex        AS sex,
           p.cedula     AS cedula,
           p.created_at AS patient_created_at,
           p.updated_at AS patient_updated_at,
           ROW_NUMBER() OVER (PARTITION BY c.patient_id ORDER BY c.updated_at DESC, c.created_at DESC) AS rn
    FROM consultations c
    INNER JOIN patients p ON p.id = c.patient_id
    WHERE p.doctor_id = ?
) ranked
WHERE rn = 1
ORDER BY consultation_updated_at DESC
LIMIT ?`

type consultationRepository struct{}

func NewConsultationRepository() domainRepo.ConsultationRepository {
	return &consultationRepository{}
}

func (r *consultationRepository) Create(ctx context.Context, db *gorm.DB, consultation *entity.Consultation) error {
	return db.WithContext(ctx).Omit("Patient", "Doctor").Create(consultation).Error
}

// FindByIDForPatient returns the consultation only when it belongs to the given patient.
func (r *consultationRepository) FindByIDForPatient(ctx context.Context, db *gorm.DB, id, patientID uuid.UUID) (*entity.Consultation, error) {
	var consultation entity.Consultation
	err := db.WithContext(ctx).
		Where("id = ? AND patient_id = ?", id, patientID).
		First(&consultation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &consultation, nil
}

func (r *consultationRepository) FindLatestByPatientID(ctx context.Context, db *gorm.DB, patientID uuid.UUID) (*entity.Consultation, error) {
	var consultation entity.Consultation
	err := db.WithContext(ctx).
		Where("patient_id = ?", patientID).
		Order("updated_at DESC, created_at DESC").
		First(&consultation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &consultation, nil
}

// FindLatestByPatientIDs returns the latest consultation of each patient that has one, keyed by patient.
func (r *consultationRepository) FindLatestByPatientIDs(ctx context.Context, db *gorm.DB, patientIDs []uuid.UUID) (map[uuid.UUID]entity.Consultation, error) {
	latest := make(map[uuid.UUID]entity.Consultation, len(patientIDs))
	if len(patientIDs) == 0 {
		return latest, nil
	}

	ranked := db.Model(&entity.Consultation{}).
		Select("consultations.*, ROW_NUMBER() OVER (PARTITION BY patient_id ORDER BY updated_at DESC, created_at DESC) AS rn").
		Where("patient_id IN ?", patientIDs)

	var consultations []entity.Consultation
	err := db.WithContext(ctx).
		Table("(?) AS ranked", ranked).
		Where("rn = 1").
		Find(&consultations).Error
	if err != nil {
		return nil, err
	}

	for _, c := range consultations {
		latest[c.PatientID] = c
	}
	return latest, nil
}

// FindByPatientID returns one page of a patient's consultations, newest first, with the
// authoring doctor's name, together with the number of rows matching the filter.
func (r *consultationRepository) FindByPatientID(ctx context.Context, db *gorm.DB, patientID uuid.UUID, filter entity.ConsultationFilter) ([]entity.Consultation, int64, error) {
	query := db.WithContext(ctx).Model(&entity.Consultation{}).Where("patient_id = ?", patientID)
	if filter.From != nil {
		query = query.Where("created_at >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("created_at <= ?", *filter.To)
	}

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var consultations []entity.Consultation
	err := query.
		Preload("Doctor", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name")
		}).
		Order("created_at DESC, id DESC").
		Offset(filter.Offset).
		Limit(filter.Limit).
		Find(&consultations).Error
	if err != nil {
		return nil, 0, err
	}
	return consultations, total, nil
}

func (r *consultationRepository) FindRecentByDoctorID(ctx context.Context, db *gorm.DB, doctorID uuid.UUID, limit int) ([]entity.RecentActivity, error) {
	var rows []entity.RecentActivity
	err := db.WithContext(ctx).Raw(recentActivityQuery, doctorID, limit).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// UpdateMedical rewrites the three text fields and UpdatedAt in place.
func (r *consultationRepository) UpdateMedical(ctx context.Context, db *gorm.DB, consultation *entity.Consultation) error {
	return db.WithContext(ctx).
		Model(&entity.Consultation{}).
		Where("id = ?", consultation.ID).
		Updates(map[string]interface{}{
			"findings":   consultation.Findings,
			"diagnosis":  consultation.Diagnosis,
			"treatment":  consultation.Treatment,
			"updated_at": consultation.UpdatedAt,
		}).Error
}

func (r *consultationRepository) Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Consultation{})
	return result.RowsAffected, result.Error
}
