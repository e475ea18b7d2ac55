package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type samplePatient struct {
	FirstName string `json:"firstName" validate:"required"`
	Sex       string `json:"sex" validate:"required,oneof=M F"`
	DoctorID  string `json:"doctorId" validate:"omitempty,uuid"`
	Age       *int   `json:"age" validate:"omitempty,gte=0"`
}

func TestValidate_UsesJSONFieldNames(t *testing.T) {
	v := NewValidator()
	age := -1

	err := v.Validate(samplePatient{Sex: "X", DoctorID: "nope", Age: &age})
	require.Error(t, err)

	errs := v.FormatValidationErrors(err)
	assert.Equal(t, "firstName is required", errs["firstName"])
	assert.Equal(t, "sex must be one of: M F", errs["sex"])
	assert.Equal(t, "doctorId must be a valid UUID", errs["doctorId"])
	assert.Equal(t, "age must be greater than or equal to 0", errs["age"])
}

func TestValidate_Valid(t *testing.T) {
	v := NewValidator()
	age := 40

	assert.NoError(t, v.Validate(samplePatient{FirstName: "Ana", Sex: "F", Age: &age}))
}

func TestFormatValidationErrors_NonValidationError(t *testing.T) {
	v := NewValidator()
	assert.Empty(t, v.FormatValidationErrors(assert.AnError))
}
