package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"clinic-records/internal/domain/entity"
	"clinic-records/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestSearchUsecase(t *testing.T, ownPatientsOnly bool) (SearchUsecase, *entity.Doctor, *gorm.DB) {
	db := newTestDB(t)
	doctor := seedDoctor(t, db, "Dr. Chase")
	uc := NewSearchUsecase(db, newTestLogger(), repository.NewPatientRepository(), repository.NewConsultationRepository(), ownPatientsOnly)
	return uc, doctor, db
}

func TestSearchPatients_CaseInsensitiveName(t *testing.T) {
	uc, doctor, db := newTestSearchUsecase(t, false)
	seedPatient(t, db, doctor.ID, "María", "Pérez", "V-100")
	seedPatient(t, db, doctor.ID, "Lucía", "Marquez", "V-200")
	seedPatient(t, db, doctor.ID, "Pedro", "Gil", "V-300")

	res, err := uc.SearchPatients(context.Background(), entity.AuthContext{DoctorID: doctor.ID}, "mar")
	require.NoError(t, err)

	names := make([]string, len(res))
	for i, r := range res {
		names[i] = r.FirstName
	}
	assert.ElementsMatch(t, []string{"María", "Lucía"}, names)

	res, err = uc.SearchPatients(context.Background(), entity.AuthContext{DoctorID: doctor.ID}, "MAR")
	require.NoError(t, err)
	assert.Len(t, res, 2)
}

func TestSearchPatients_CedulaIsCaseSensitive(t *testing.T) {
	uc, doctor, db := newTestSearchUsecase(t, false)
	seedPatient(t, db, doctor.ID, "Ana", "Diaz", "V-123")

	res, err := uc.SearchPatients(context.Background(), entity.AuthContext{}, "V-12")
	require.NoError(t, err)
	assert.Len(t, res, 1)

	res, err = uc.SearchPatients(context.Background(), entity.AuthContext{}, "v-12")
	require.NoError(t, err)
	assert.Empty(t, res)
}

func TestSearchPatients_Limit(t *testing.T) {
	uc, doctor, db := newTestSearchUsecase(t, false)
	for i := 0; i < 12; i++ {
		seedPatient(t, db, doctor.ID, "Mariana", fmt.Sprintf("N%d", i), fmt.Sprintf("C-%d", i))
	}

	res, err := uc.SearchPatients(context.Background(), entity.AuthContext{}, "mariana")
	require.NoError(t, err)
	assert.Len(t, res, SearchResultLimit)
}

func TestSearchPatients_LatestConsultation(t *testing.T) {
	uc, doctor, db := newTestSearchUsecase(t, false)
	withVisits := seedPatient(t, db, doctor.ID, "Marta", "Ruiz", "V-1")
	seedPatient(t, db, doctor.ID, "Marcos", "Ruiz", "V-2")
	now := time.Now()
	seedConsultation(t, db, withVisits.ID, doctor.ID, "old", now.Add(-48*time.Hour))
	latest := seedConsultation(t, db, withVisits.ID, doctor.ID, "new", now.Add(-time.Hour))

	res, err := uc.SearchPatients(context.Background(), entity.AuthContext{}, "ruiz")
	require.NoError(t, err)
	require.Len(t, res, 2)

	for _, r := range res {
		if r.ID == withVisits.ID {
			require.NotNil(t, r.LatestConsultation)
			assert.Equal(t, latest.ID, r.LatestConsultation.ID)
		} else {
			assert.Nil(t, r.LatestConsultation)
		}
	}
}

func TestSearchPatients_WildcardsAreLiteral(t *testing.T) {
	uc, doctor, db := newTestSearchUsecase(t, false)
	seedPatient(t, db, doctor.ID, "Ana", "Diaz", "V-1")

	res, err := uc.SearchPatients(context.Background(), entity.AuthContext{}, "%")
	require.NoError(t, err)
	assert.Empty(t, res)
}

func TestSearchPatients_EmptyQuery(t *testing.T) {
	// a nil database proves the store is never queried
	uc := NewSearchUsecase(nil, newTestLogger(), repository.NewPatientRepository(), repository.NewConsultationRepository(), false)

	res, err := uc.SearchPatients(context.Background(), entity.AuthContext{}, "")
	require.NoError(t, err)
	assert.NotNil(t, res)
	assert.Empty(t, res)
}

func TestSearchPatients_QueryMatchedAsTyped(t *testing.T) {
	uc, doctor, db := newTestSearchUsecase(t, false)
	seedPatient(t, db, doctor.ID, "Ana", "Diaz", "V-1")
	seedPatient(t, db, doctor.ID, "Ana Maria", "Lopez", "V-2")

	res, err := uc.SearchPatients(context.Background(), entity.AuthContext{}, "ana ")
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, "Ana Maria", res[0].FirstName)

	res, err = uc.SearchPatients(context.Background(), entity.AuthContext{}, " ")
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, "Ana Maria", res[0].FirstName)
}

func TestSearchPatients_OwnPatientsOnly(t *testing.T) {
	uc, doctor, db := newTestSearchUsecase(t, true)
	other := seedDoctor(t, db, "Dr. Taub")
	seedPatient(t, db, doctor.ID, "Mario", "Own", "V-1")
	seedPatient(t, db, other.ID, "Mario", "Foreign", "V-2")

	res, err := uc.SearchPatients(context.Background(), entity.AuthContext{DoctorID: doctor.ID}, "mario")
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, "Own", res[0].LastName)
}
