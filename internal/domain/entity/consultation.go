package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Consultation is a single clinical encounter for a patient, authored by a doctor.
type Consultation struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	PatientID uuid.UUID `gorm:"type:uuid;not null;index" json:"patientId"`
	DoctorID  uuid.UUID `gorm:"type:uuid;not null;index" json:"doctorId"`
	Findings  string    `gorm:"type:text;not null;default:''" json:"findings"`
	Diagnosis string    `gorm:"type:text;not null;default:''" json:"diagnosis"`
	Treatment string    `gorm:"type:text;not null;default:''" json:"treatment"`
	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;index" json:"updatedAt"`

	// Relationships
	Patient *Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor  *Doctor  `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (Consultation) TableName() string {
	return "consultations"
}

func (c *Consultation) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// MedicalData is the free-text clinical snapshot of a consultation.
type MedicalData struct {
	Findings  string `json:"findings"`
	Diagnosis string `json:"diagnosis"`
	Treatment string `json:"treatment"`
}

// Medical returns the consultation's text fields. A nil consultation yields empty strings.
func (c *Consultation) Medical() MedicalData {
	if c == nil {
		return MedicalData{}
	}
	return MedicalData{
		Findings:  c.Findings,
		Diagnosis: c.Diagnosis,
		Treatment: c.Treatment,
	}
}

// IsEmpty reports whether all three text fields are empty.
func (m MedicalData) IsEmpty() bool {
	return m.Findings == "" && m.Diagnosis == "" && m.Treatment == ""
}
