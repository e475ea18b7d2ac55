package usecase

import (
	"context"
	"time"

	"clinic-records/internal/converter"
	"clinic-records/internal/delivery/dto"
	"clinic-records/internal/domain/entity"
	"clinic-records/internal/domain/repository"
	"clinic-records/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// UpdateAction selects what happens to medical data when it changed.
type UpdateAction string

const (
	ActionAmendLatest UpdateAction = "amend-latest"
	ActionCreateNew   UpdateAction = "create-new"
)

type PatientUsecase interface {
	CreatePatient(ctx context.Context, auth entity.AuthContext, req *dto.CreatePatientRequest) (*dto.PatientResponse, error)
	GetPatient(ctx context.Context, id uuid.UUID) (*dto.PatientDetailResponse, error)
	UpdatePatient(ctx context.Context, auth entity.AuthContext, id uuid.UUID, req *dto.UpdatePatientRequest) (*dto.UpdatePatientResponse, error)
}

type patientUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	patientRepo      repository.PatientRepository
	consultationRepo repository.ConsultationRepository
	auditService     service.AuditService
}

func NewPatientUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	consultationRepo repository.ConsultationRepository,
	auditService service.AuditService,
) PatientUsecase {
	return &patientUsecase{
		db:               db,
		log:              log,
		patientRepo:      patientRepo,
		consultationRepo: consultationRepo,
		auditService:     auditService,
	}
}

func (u *patientUsecase) CreatePatient(ctx context.Context, auth entity.AuthContext, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient := &entity.Patient{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Cedula:    req.Cedula,
		Age:       req.Age,
		Sex:       req.Sex,
		DoctorID:  auth.DoctorID,
	}

	if err := u.patientRepo.Create(ctx, tx, patient); err != nil {
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, &auth.DoctorID, entity.AuditActionPatientCreate, "patient", patient.ID.String(), patient.Personal()); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) GetPatient(ctx context.Context, id uuid.UUID) (*dto.PatientDetailResponse, error) {
	patient, err := u.patientRepo.FindByIDWithConsultations(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find patient by ID: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	return converter.PatientToDetailResponse(patient), nil
}

// UpdatePatient diffs the submitted snapshot against stored data and writes only what changed.
// Changed medical data either amends the latest consultation or becomes a new one, depending on
// the requested action. All writes share one transaction.
func (u *patientUsecase) UpdatePatient(ctx context.Context, auth entity.AuthContext, id uuid.UUID, req *dto.UpdatePatientRequest) (*dto.UpdatePatientResponse, error) {
	action := UpdateAction(req.ActionType)
	if action == "" {
		action = ActionCreateNew
	}
	if action != ActionAmendLatest && action != ActionCreateNew {
		return nil, ErrInvalidActionType
	}

	doctorID := auth.DoctorID
	if req.DoctorID != "" {
		parsed, err := uuid.Parse(req.DoctorID)
		if err != nil {
			return nil, ErrInvalidDoctorID
		}
		doctorID = parsed
	}
	if doctorID == uuid.Nil {
		return nil, ErrDoctorIDRequired
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.patientRepo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to find patient by ID: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	latest, err := u.consultationRepo.FindLatestByPatientID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to find latest consultation: %+v", err)
		return nil, err
	}

	personal := entity.PersonalData{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Cedula:    req.Cedula,
		Age:       req.Age,
		Sex:       req.Sex,
	}
	medical := entity.MedicalData{
		Findings:  req.Findings,
		Diagnosis: req.Diagnosis,
		Treatment: req.Treatment,
	}

	personalChanged := !patient.Personal().Equal(personal)
	medicalChanged := latest.Medical() != medical

	if !personalChanged && !medicalChanged {
		return &dto.UpdatePatientResponse{
			Patient:   *converter.PatientToResponse(patient),
			NoChanges: true,
		}, nil
	}

	if action == ActionCreateNew && medicalChanged && medical.IsEmpty() {
		return nil, ErrEmptyMedicalData
	}

	result := &dto.UpdatePatientResponse{}

	if personalChanged {
		before := patient.Personal()
		patient.FirstName = personal.FirstName
		patient.LastName = personal.LastName
		patient.Cedula = personal.Cedula
		patient.Age = personal.Age
		patient.Sex = personal.Sex
		patient.UpdatedAt = time.Now()

		if err := u.patientRepo.UpdatePersonal(ctx, tx, patient); err != nil {
			u.log.Warnf("Failed to update patient personal data: %+v", err)
			return nil, err
		}

		if err := u.auditService.LogUpdate(ctx, tx, &auth.DoctorID, entity.AuditActionPatientUpdate, "patient", patient.ID.String(), before, personal); err != nil {
			return nil, err
		}

		result.Changes.PersonalDataUpdated = true
	}

	// only a consultation written by this call is reported back
	var consultation *entity.Consultation
	if medicalChanged && !medical.IsEmpty() {
		if action == ActionAmendLatest && latest != nil {
			before := latest.Medical()
			latest.Findings = medical.Findings
			latest.Diagnosis = medical.Diagnosis
			latest.Treatment = medical.Treatment
			latest.UpdatedAt = time.Now()

			if err := u.consultationRepo.UpdateMedical(ctx, tx, latest); err != nil {
				u.log.Warnf("Failed to amend consultation: %+v", err)
				return nil, err
			}

			if err := u.auditService.LogUpdate(ctx, tx, &auth.DoctorID, entity.AuditActionConsultationAmend, "consultation", latest.ID.String(), before, medical); err != nil {
				return nil, err
			}
			consultation = latest
		} else {
			consultation = &entity.Consultation{
				PatientID: patient.ID,
				DoctorID:  doctorID,
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

			result.Changes.NewConsultationCreated = true
		}

		result.Changes.MedicalDataUpdated = true
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	result.Patient = *converter.PatientToResponse(patient)
	result.Consultation = converter.ConsultationToResponse(consultation)
	result.NoChanges = !result.Changes.PersonalDataUpdated && !result.Changes.MedicalDataUpdated

	return result, nil
}
