package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Sex constants
const (
	SexMale   = "M"
	SexFemale = "F"
)

// Patient holds the demographic record of a person under a doctor's care.
// UpdatedAt moves only when personal fields are edited.
type Patient struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	FirstName string    `gorm:"type:varchar(100);not null" json:"firstName"`
	LastName  string    `gorm:"type:varchar(100);not null" json:"lastName"`
	Cedula    string    `gorm:"type:varchar(50);not null;index" json:"cedula"`
	Age       *int      `json:"age"`
	Sex       string    `gorm:"type:char(1);not null" json:"sex"`
	DoctorID  uuid.UUID `gorm:"type:uuid;not null;index" json:"doctorId"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`

	// Relationships
	Doctor        *Doctor        `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Consultations []Consultation `gorm:"foreignKey:PatientID" json:"consultations,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}

func (p *Patient) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// PersonalData is the editable demographic snapshot of a patient.
type PersonalData struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Cedula    string `json:"cedula"`
	Age       *int   `json:"age"`
	Sex       string `json:"sex"`
}

// Personal returns the patient's current personal fields.
func (p *Patient) Personal() PersonalData {
	return PersonalData{
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Cedula:    p.Cedula,
		Age:       p.Age,
		Sex:       p.Sex,
	}
}

// Equal reports whether both snapshots hold the same values.
func (d PersonalData) Equal(other PersonalData) bool {
	if d.FirstName != other.FirstName || d.LastName != other.LastName ||
		d.Cedula != other.Cedula || d.Sex != other.Sex {
		return false
	}
	if d.Age == nil || other.Age == nil {
		return d.Age == nil && other.Age == nil
	}
	return *d.Age == *other.Age
}
