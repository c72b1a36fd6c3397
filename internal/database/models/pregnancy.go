package models

import (
	"encoding/json"
	"time"
)

// Pregnancy represents a followed pregnancy. The expected delivery date is
// the reference date for the prenatal checkup and pregnancy milestone
// schedules.
type Pregnancy struct {
	BaseModel
	MotherName           string          `json:"mother_name" gorm:"size:120;not null" validate:"required,min=1,max=120"`
	MotherPhone          string          `json:"mother_phone" gorm:"size:30" validate:"max=30"`
	ExpectedDeliveryDate time.Time       `json:"expected_delivery_date" gorm:"type:date;not null;index" validate:"required"`
	Status               PregnancyStatus `json:"status" gorm:"type:varchar(20);not null;default:'active'" validate:"required"`
	Gravida              int             `json:"gravida" gorm:"default:0" validate:"min=0"`
	Para                 int             `json:"para" gorm:"default:0" validate:"min=0"`
	HighRisk             bool            `json:"high_risk" gorm:"default:false"`
	Notes                string          `json:"notes" gorm:"type:text"`
	Metadata             json.RawMessage `json:"metadata" gorm:"type:jsonb"`
}

// TableName returns the table name for Pregnancy
func (Pregnancy) TableName() string {
	return "pregnancies"
}
