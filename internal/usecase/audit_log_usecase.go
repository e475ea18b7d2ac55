package usecase

import (
	"context"

	"clinic-records/internal/converter"
	"clinic-records/internal/delivery/dto"
	"clinic-records/internal/domain/entity"
	"clinic-records/internal/domain/repository"
	"clinic-records/pkg/pagination"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type AuditLogUsecase interface {
	GetMyAuditLogs(ctx context.Context, auth entity.AuthContext, params pagination.Params) ([]dto.AuditLogResponse, *pagination.Meta, error)
}

type auditLogUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	auditLogRepo repository.AuditLogRepository
}

func NewAuditLogUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	auditLogRepo repository.AuditLogRepository,
) AuditLogUsecase {
	return &auditLogUsecase{
		db:           db,
		log:          log,
		auditLogRepo: auditLogRepo,
	}
}

// GetMyAuditLogs lists the calling doctor's own audit trail, newest first.
func (u *auditLogUsecase) GetMyAuditLogs(ctx context.Context, auth entity.AuthContext, params pagination.Params) ([]dto.AuditLogResponse, *pagination.Meta, error) {
	logs, total, err := u.auditLogRepo.FindByDoctorID(ctx, u.db, auth.DoctorID, params.Offset(), params.Limit)
	if err != nil {
		u.log.Warnf("Failed to find audit logs: %+v", err)
		return nil, nil, err
	}

	meta := pagination.NewMeta(params, total)
	return converter.AuditLogsToResponses(logs), &meta, nil
}
