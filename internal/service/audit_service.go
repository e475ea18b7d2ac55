package service

import (
	"context"

	"clinic-records/internal/domain/entity"
	"clinic-records/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AuditService appends audit rows. Callers pass their transaction so the audit entry
// commits or rolls back together with the change it describes.
type AuditService interface {
	LogCreate(ctx context.Context, tx *gorm.DB, doctorID *uuid.UUID, action string, entityName string, entityID string, newValue interface{}) error
	LogUpdate(ctx context.Context, tx *gorm.DB, doctorID *uuid.UUID, action string, entityName string, entityID string, oldValue, newValue interface{}) error
	LogDelete(ctx context.Context, tx *gorm.DB, doctorID *uuid.UUID, action string, entityName string, entityID string, oldValue interface{}) error
	LogEvent(ctx context.Context, tx *gorm.DB, doctorID *uuid.UUID, action string) error
}

type auditService struct {
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
}

func NewAuditService(log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditService {
	return &auditService{
		log:       log,
		auditRepo: auditRepo,
	}
}

func (s *auditService) LogCreate(ctx context.Context, tx *gorm.DB, doctorID *uuid.UUID, action string, entityName string, entityID string, newValue interface{}) error {
	return s.write(ctx, tx, doctorID, action, datatypes.JSONMap{
		"entity":   entityName,
		"entityId": entityID,
		"oldValue": nil,
		"newValue": newValue,
	})
}

func (s *auditService) LogUpdate(ctx context.Context, tx *gorm.DB, doctorID *uuid.UUID, action string, entityName string, entityID string, oldValue, newValue interface{}) error {
	return s.write(ctx, tx, doctorID, action, datatypes.JSONMap{
		"entity":   entityName,
		"entityId": entityID,
		"oldValue": oldValue,
		"newValue": newValue,
	})
}

func (s *auditService) LogDelete(ctx context.Context, tx *gorm.DB, doctorID *uuid.UUID, action string, entityName string, entityID string, oldValue interface{}) error {
	return s.write(ctx, tx, doctorID, action, datatypes.JSONMap{
		"entity":   entityName,
		"entityId": entityID,
		"oldValue": oldValue,
		"newValue": nil,
	})
}

// LogEvent records an action that has no entity payload, such as login or logout.
func (s *auditService) LogEvent(ctx context.Context, tx *gorm.DB, doctorID *uuid.UUID, action string) error {
	return s.write(ctx, tx, doctorID, action, nil)
}

func (s *auditService) write(ctx context.Context, tx *gorm.DB, doctorID *uuid.UUID, action string, metadata datatypes.JSONMap) error {
	auditLog := &entity.AuditLog{
		DoctorID: doctorID,
		Action:   action,
		Metadata: metadata,
	}

	if err := s.auditRepo.Create(ctx, tx, auditLog); err != nil {
		s.log.Warnf("Failed to create audit log %s: %+v", action, err)
		return err
	}

	return nil
}
