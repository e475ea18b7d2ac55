package usecase

import (
	"context"

	"clinic-records/internal/converter"
	"clinic-records/internal/delivery/dto"
	"clinic-records/internal/domain/entity"
	"clinic-records/internal/domain/repository"
	"clinic-records/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type ConsultationUsecase interface {
	CreateConsultation(ctx context.Context, auth entity.AuthContext, req *dto.CreateConsultationRequest) (*dto.ConsultationResponse, error)
}

type consultationUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	patientRepo      repository.PatientRepository
	consultationRepo repository.ConsultationRepository
	auditService     service.AuditService
}

func NewConsultationUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	consultationRepo repository.ConsultationRepository,
	auditService service.AuditService,
) ConsultationUsecase {
	return &consultationUsecase{
		db:               db,
		log:              log,
		patientRepo:      patientRepo,
		consultationRepo: consultationRepo,
		auditService:     auditService,
	}
}

// CreateConsultation records a new encounter authored by the calling doctor.
func (u *consultationUsecase) CreateConsultation(ctx context.Context, auth entity.AuthContext, req *dto.CreateConsultationRequest) (*dto.ConsultationResponse, error) {
	medical := entity.MedicalData{
		Findings:  req.Findings,
		Diagnosis: req.Diagnosis,
		Treatment: req.Treatment,
	}
	if medical.IsEmpty() {
		return nil, ErrEmptyMedicalData
	}

	patientID, err := uuid.Parse(req.PatientID)
	if err != nil {
		return nil, ErrPatientNotFound
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.patientRepo.FindByID(ctx, tx, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient by ID: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	consultation := &entity.Consultation{
		PatientID: patient.ID,
		DoctorID:  auth.DoctorID,
		Findings:  medical.Findings,
		Diagnosis: medical.Diagnosis,
		Treatment: medical.Treatment,
	}

	if err := u.consultationRepo.Create(ctx, tx, consultation); err != nil {
		u.log.Warnf("Failed to create consultation: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, &auth.DoctorID, entity.AuditActionConsultationCreate, "consultation", consultation.ID.String(), medical); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.ConsultationToResponse(consultation), nil
}
