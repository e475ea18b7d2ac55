package usecase

import (
	"context"

	"clinic-records/internal/converter"
	"clinic-records/internal/delivery/dto"
	"clinic-records/internal/domain/entity"
	"clinic-records/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// SearchResultLimit caps the number of patients a search returns.
const SearchResultLimit = 10

type SearchUsecase interface {
	SearchPatients(ctx context.Context, auth entity.AuthContext, query string) ([]dto.PatientSearchResult, error)
}

type searchUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	patientRepo      repository.PatientRepository
	consultationRepo repository.ConsultationRepository
	ownPatientsOnly  bool
}

func NewSearchUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	consultationRepo repository.ConsultationRepository,
	ownPatientsOnly bool,
) SearchUsecase {
	return &searchUsecase{
		db:               db,
		log:              log,
		patientRepo:      patientRepo,
		consultationRepo: consultationRepo,
		ownPatientsOnly:  ownPatientsOnly,
	}
}

// SearchPatients matches names case-insensitively and cedula as typed.
// A blank query returns no results without touching the database.
func (u *searchUsecase) SearchPatients(ctx context.Context, auth entity.AuthContext, query string) ([]dto.PatientSearchResult, error) {
	// the query is matched as typed, surrounding spaces included
	if query == "" {
		return []dto.PatientSearchResult{}, nil
	}

	search := entity.PatientSearch{
		Query: query,
		Limit: SearchResultLimit,
	}
	if u.ownPatientsOnly {
		search.DoctorID = &auth.DoctorID
	}

	patients, err := u.patientRepo.Search(ctx, u.db, search)
	if err != nil {
		u.log.Warnf("Failed to search patients: %+v", err)
		return nil, err
	}

	ids := make([]uuid.UUID, len(patients))
	for i := range patients {
		ids[i] = patients[i].ID
	}

	latest, err := u.consultationRepo.FindLatestByPatientIDs(ctx, u.db, ids)
	if err != nil {
		u.log.Warnf("Failed to find latest consultations: %+v", err)
		return nil, err
	}

	return converter.PatientsToSearchResults(patients, latest), nil
}
