package models

import (
	"encoding/json"
	"time"
)

// Child represents a registered child whose date of birth anchors the
// immunization schedule
type Child struct {
	BaseModel
	FirstName           string          `json:"first_name" gorm:"size:80;not null" validate:"required,min=1,max=80"`
	LastName            string          `json:"last_name" gorm:"size:80;not null" validate:"required,min=1,max=80"`
	Sex                 Sex             `json:"sex" gorm:"type:varchar(10);not null" validate:"required"`
	DateOfBirth         time.Time       `json:"date_of_birth" gorm:"type:date;not null;index" validate:"required"`
	MedicalRecordNumber string          `json:"medical_record_number" gorm:"size:40;uniqueIndex;not null" validate:"required,max=40"`
	GuardianName        string          `json:"guardian_name" gorm:"size:120" validate:"max=120"`
	GuardianPhone       string          `json:"guardian_phone" gorm:"size:30" validate:"max=30"`
	BirthWeightGrams    int             `json:"birth_weight_grams" gorm:"default:0" validate:"min=0"`
	Metadata            json.RawMessage `json:"metadata" gorm:"type:jsonb"`
}

// TableName returns the table name for Child
func (Child) TableName() string {
	return "children"
}
