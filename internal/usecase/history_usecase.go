package usecase

import (
	"context"
	"time"

	"clinic-records/internal/converter"
	"clinic-records/internal/delivery/dto"
	"clinic-records/internal/domain/entity"
	"clinic-records/internal/domain/repository"
	"clinic-records/internal/service"
	"clinic-records/pkg/pagination"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

type HistoryUsecase interface {
	GetHistory(ctx context.Context, patientID uuid.UUID, query dto.HistoryQuery) (*dto.HistoryResponse, error)
	DeleteConsultation(ctx context.Context, auth entity.AuthContext, patientID uuid.UUID, consultationID string) error
}

type historyUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	patientRepo      repository.PatientRepository
	consultationRepo repository.ConsultationRepository
	auditService     service.AuditService
}

func NewHistoryUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	consultationRepo repository.ConsultationRepository,
	auditService service.AuditService,
) HistoryUsecase {
	return &historyUsecase{
		db:               db,
		log:              log,
		patientRepo:      patientRepo,
		consultationRepo: consultationRepo,
		auditService:     auditService,
	}
}

// GetHistory returns one page of the patient's consultations, newest first.
// Both date bounds are inclusive whole days in UTC.
func (u *historyUsecase) GetHistory(ctx context.Context, patientID uuid.UUID, query dto.HistoryQuery) (*dto.HistoryResponse, error) {
	filter, err := buildConsultationFilter(query)
	if err != nil {
		return nil, err
	}

	patient, err := u.patientRepo.FindByID(ctx, u.db, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient by ID: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	consultations, total, err := u.consultationRepo.FindByPatientID(ctx, u.db, patientID, filter)
	if err != nil {
		u.log.Warnf("Failed to find consultations by patient ID: %+v", err)
		return nil, err
	}

	return &dto.HistoryResponse{
		Patient:       converter.PatientToSummary(patient),
		Consultations: converter.ConsultationsToResponses(consultations),
		Pagination:    pagination.NewMeta(query.Pagination, total),
	}, nil
}

// DeleteConsultation removes the consultation only if it belongs to the given patient.
func (u *historyUsecase) DeleteConsultation(ctx context.Context, auth entity.AuthContext, patientID uuid.UUID, consultationID string) error {
	if consultationID == "" {
		return ErrConsultationIDRequired
	}
	id, err := uuid.Parse(consultationID)
	if err != nil {
		return ErrInvalidConsultationID
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	consultation, err := u.consultationRepo.FindByIDForPatient(ctx, tx, id, patientID)
	if err != nil {
		u.log.Warnf("Failed to find consultation: %+v", err)
		return err
	}
	if consultation == nil {
		return ErrConsultationNotFound
	}

	rowsAffected, err := u.consultationRepo.Delete(ctx, tx, consultation.ID)
	if err != nil {
		u.log.Warnf("Failed to delete consultation: %+v", err)
		return err
	}
	if rowsAffected == 0 {
		return ErrConsultationNotFound
	}

	if err := u.auditService.LogDelete(ctx, tx, &auth.DoctorID, entity.AuditActionConsultationDelete, "consultation", consultation.ID.String(), consultation.Medical()); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

func buildConsultationFilter(query dto.HistoryQuery) (entity.ConsultationFilter, error) {
	filter := entity.ConsultationFilter{
		Offset: query.Pagination.Offset(),
		Limit:  query.Pagination.Limit,
	}

	if query.StartDate != "" {
		start, err := time.ParseInLocation(dateLayout, query.StartDate, time.UTC)
		if err != nil {
			return filter, ErrInvalidDateFormat
		}
		filter.From = &start
	}

	if query.EndDate != "" {
		end, err := time.ParseInLocation(dateLayout, query.EndDate, time.UTC)
		if err != nil {
			return filter, ErrInvalidDateFormat
		}
		end = end.Add(24*time.Hour - time.Nanosecond)
		filter.To = &end
	}

	if filter.From != nil && filter.To != nil && filter.From.After(*filter.To) {
		return filter, ErrInvalidDateRange
	}

	return filter, nil
}
