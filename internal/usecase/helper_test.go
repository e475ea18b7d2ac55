package usecase

import (
	"context"
	"io"
	"testing"
	"time"

	"clinic-records/internal/domain/entity"
	"clinic-records/internal/infrastructure/cache"
	"clinic-records/internal/repository"
	"clinic-records/internal/service"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a private in-memory database with the full schema.
// A single connection keeps every statement on the same in-memory database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	// match the case-sensitive LIKE of postgres
	require.NoError(t, db.Exec("PRAGMA case_sensitive_like = ON").Error)

	require.NoError(t, db.AutoMigrate(
		&entity.Doctor{},
		&entity.Patient{},
		&entity.Consultation{},
		&entity.AuditLog{},
	))

	return db
}

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// newTestTokenStore backs the token allow-list with an in-process redis server.
func newTestTokenStore(t *testing.T) cache.TokenStore {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return cache.NewRedisTokenStore(client)
}

func newTestAuditService(log *logrus.Logger) service.AuditService {
	return service.NewAuditService(log, repository.NewAuditLogRepository())
}

func seedDoctor(t *testing.T, db *gorm.DB, name string) *entity.Doctor {
	t.Helper()
	doctor := &entity.Doctor{
		Email:    uuid.NewString() + "@clinic.test",
		Password: "x",
		Name:     name,
	}
	require.NoError(t, repository.NewDoctorRepository().Create(context.Background(), db, doctor))
	return doctor
}

func seedPatient(t *testing.T, db *gorm.DB, doctorID uuid.UUID, firstName, lastName, cedula string) *entity.Patient {
	t.Helper()
	age := 40
	patient := &entity.Patient{
		FirstName: firstName,
		LastName:  lastName,
		Cedula:    cedula,
		Age:       &age,
		Sex:       entity.SexFemale,
		DoctorID:  doctorID,
	}
	require.NoError(t, repository.NewPatientRepository().Create(context.Background(), db, patient))
	return patient
}

func seedConsultation(t *testing.T, db *gorm.DB, patientID, doctorID uuid.UUID, diagnosis string, at time.Time) *entity.Consultation {
	t.Helper()
	consultation := &entity.Consultation{
		PatientID: patientID,
		DoctorID:  doctorID,
		Findings:  "findings " + diagnosis,
		Diagnosis: diagnosis,
		Treatment: "treatment " + diagnosis,
		CreatedAt: at,
		UpdatedAt: at,
	}
	require.NoError(t, repository.NewConsultationRepository().Create(context.Background(), db, consultation))
	return consultation
}

func setPatientUpdatedAt(t *testing.T, db *gorm.DB, id uuid.UUID, at time.Time) {
	t.Helper()
	require.NoError(t, db.Model(&entity.Patient{}).Where("id = ?", id).UpdateColumn("updated_at", at).Error)
}

func countRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}

func intPtr(v int) *int { return &v }
