package models

import "time"

// EndorsementModel is the persistence model for endorsements. The composite
// index backs the reminder pass's existence probe.
type EndorsementModel struct {
	ID        uint      `gorm:"primarykey"`
	SID       string    `gorm:"column:sid;uniqueIndex;not null;size:32"`
	FirmID    uint      `gorm:"not null;index:idx_endorsements_firm_matter_date,priority:1"`
	MatterID  uint      `gorm:"not null;index:idx_endorsements_firm_matter_date,priority:2"`
	Date      time.Time `gorm:"not null;index:idx_endorsements_firm_matter_date,priority:3"`
	AuthorID  uint      `gorm:"not null"`
	Note      string    `gorm:"type:text;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (EndorsementModel) TableName() string {
	return "endorsements"
}
