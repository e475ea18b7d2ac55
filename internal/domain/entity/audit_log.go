package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AuditLog represents a system audit trail entry
type AuditLog struct {
	ID        int64             `gorm:"primaryKey;autoIncrement" json:"id"`
	DoctorID  *uuid.UUID        `gorm:"type:uuid;index" json:"doctorId,omitempty"`
	Action    string            `gorm:"type:varchar(100);not null;index" json:"action"`
	Metadata  datatypes.JSONMap `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedAt time.Time         `gorm:"autoCreateTime;index" json:"createdAt"`

	// Relationships
	Doctor *Doctor `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}

// Common audit actions
const (
	AuditActionDoctorLogin        = "doctor.login"
	AuditActionDoctorLogout       = "doctor.logout"
	AuditActionDoctorCreate       = "doctor.create"
	AuditActionPatientCreate      = "patient.create"
	AuditActionPatientUpdate      = "patient.update"
	AuditActionConsultationCreate = "consultation.create"
	AuditActionConsultationAmend  = "consultation.amend"
	AuditActionConsultationDelete = "consultation.delete"
)
