package models

import (
	"time"

	"gorm.io/datatypes"
)

// MatterModel is the persistence model for matters. The access scope's
// assigned sets are stored as JSON columns; an absent or empty set means the
// matter is unrestricted.
type MatterModel struct {
	ID                  uint   `gorm:"primarykey"`
	SID                 string `gorm:"column:sid;uniqueIndex;not null;size:32"`
	FirmID              uint   `gorm:"not null;index:idx_matters_firm"`
	Title               string `gorm:"not null;size:255"`
	ReferenceNumber     string `gorm:"size:128"`
	Status              string `gorm:"not null;size:16;default:open"`
	AssignedUserIDs     datatypes.JSON
	AssignedDepartments datatypes.JSON
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func (MatterModel) TableName() string {
	return "matters"
}
