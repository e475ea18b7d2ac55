package usecase

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Error categories. Handlers map these to HTTP status codes.
var (
	ErrValidation   = errors.New("validation error")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
)

var (
	ErrPatientNotFound        = categorize(ErrNotFound, "patient not found")
	ErrConsultationNotFound   = categorize(ErrNotFound, "consultation not found")
	ErrDoctorNotFound         = categorize(ErrNotFound, "doctor not found")
	ErrConsultationIDRequired = categorize(ErrValidation, "consultationId is required")
	ErrInvalidConsultationID  = categorize(ErrValidation, "consultationId must be a valid UUID")
	ErrDoctorIDRequired       = categorize(ErrValidation, "doctorId is required")
	ErrInvalidDoctorID        = categorize(ErrValidation, "doctorId must be a valid UUID")
	ErrInvalidActionType      = categorize(ErrValidation, "actionType must be amend-latest or create-new")
	ErrEmptyMedicalData       = categorize(ErrValidation, "at least one of findings, diagnosis or treatment is required")
	ErrInvalidDateFormat      = categorize(ErrValidation, "invalid date format, use YYYY-MM-DD")
	ErrInvalidDateRange       = categorize(ErrValidation, "startDate must not be after endDate")
	ErrInvalidCredentials     = categorize(ErrUnauthorized, "invalid email or password")
	ErrInvalidToken           = categorize(ErrUnauthorized, "invalid or expired token")
	ErrTokenRevoked           = categorize(ErrUnauthorized, "token has been revoked")
	ErrEmailAlreadyExists     = categorize(ErrConflict, "email already exists")
)

type categorizedError struct {
	category error
	message  string
}

func (e *categorizedError) Error() string { return e.message }

func (e *categorizedError) Unwrap() error { return e.category }

// categorize builds an error whose message is shown to clients as is and
// which matches its category under errors.Is.
func categorize(category error, message string) error {
	return &categorizedError{category: category, message: message}
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique constraint violation
// containing the specified constraint name
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
