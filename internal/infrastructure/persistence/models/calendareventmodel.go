package models

import (
	"time"

	"gorm.io/datatypes"
)

// CalendarEventModel is the persistence model for calendar events. The matter
// reference is denormalized so the reminder scan never joins.
type CalendarEventModel struct {
	ID          uint      `gorm:"primarykey"`
	SID         string    `gorm:"column:sid;uniqueIndex;not null;size:32"`
	FirmID      uint      `gorm:"not null;index:idx_calendar_events_firm_start,priority:1"`
	Category    string    `gorm:"not null;size:32;index:idx_calendar_events_category_start,priority:1"`
	Title       string    `gorm:"not null;size:255"`
	StartAt     time.Time `gorm:"not null;index:idx_calendar_events_firm_start,priority:2;index:idx_calendar_events_category_start,priority:2"`
	EndAt       *time.Time
	MatterID    *uint
	MatterSID   *string `gorm:"column:matter_sid;size:32"`
	MatterTitle *string `gorm:"size:255"`
	AttendeeIDs datatypes.JSON
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (CalendarEventModel) TableName() string {
	return "calendar_events"
}
