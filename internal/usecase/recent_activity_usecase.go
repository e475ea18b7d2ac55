package usecase

import (
	"context"

	"clinic-records/internal/converter"
	"clinic-records/internal/delivery/dto"
	"clinic-records/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// RecentActivityLimit is the number of patients shown on the dashboard.
const RecentActivityLimit = 3

type RecentActivityUsecase interface {
	GetRecentActivity(ctx context.Context, doctorID string) ([]dto.RecentActivityResponse, error)
}

type recentActivityUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	consultationRepo repository.ConsultationRepository
}

func NewRecentActivityUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	consultationRepo repository.ConsultationRepository,
) RecentActivityUsecase {
	return &recentActivityUsecase{
		db:               db,
		log:              log,
		consultationRepo: consultationRepo,
	}
}

// GetRecentActivity ranks the doctor's patients by their latest consultation's updatedAt
// and returns that consultation for the top few, one per patient.
func (u *recentActivityUsecase) GetRecentActivity(ctx context.Context, doctorID string) ([]dto.RecentActivityResponse, error) {
	if doctorID == "" {
		return nil, ErrDoctorIDRequired
	}
	id, err := uuid.Parse(doctorID)
	if err != nil {
		return nil, ErrInvalidDoctorID
	}

	activities, err := u.consultationRepo.FindRecentByDoctorID(ctx, u.db, id, RecentActivityLimit)
	if err != nil {
		u.log.Warnf("Failed to find recent activity: %+v", err)
		return nil, err
	}

	return converter.RecentActivitiesToResponses(activities), nil
}
