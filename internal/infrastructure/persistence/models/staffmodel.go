package models

import "time"

type StaffModel struct {
	ID         uint   `gorm:"primarykey"`
	SID        string `gorm:"column:sid;uniqueIndex;not null;size:32"`
	FirmID     uint   `gorm:"not null;index:idx_staff_firm;uniqueIndex:uk_staff_firm_email,priority:1"`
	Email      string `gorm:"not null;size:255;uniqueIndex:uk_staff_firm_email,priority:2"`
	Name       string `gorm:"not null;size:255"`
	Department string `gorm:"size:128"`
	Role       string `gorm:"not null;size:32;default:staff"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (StaffModel) TableName() string {
	return "staff"
}

// DeviceTokenModel stores a staff member's registered push tokens. The
// unique index makes token registration idempotent.
type DeviceTokenModel struct {
	ID        uint   `gorm:"primarykey"`
	StaffID   uint   `gorm:"not null;index:idx_device_tokens_staff;uniqueIndex:uk_device_tokens_staff_token,priority:1"`
	Token     string `gorm:"not null;size:512;uniqueIndex:uk_device_tokens_staff_token,priority:2,length:191"`
	Platform  string `gorm:"size:16"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (DeviceTokenModel) TableName() string {
	return "staff_device_tokens"
}
