// Package staff models firm members and their registered notification devices.
package staff

import (
	"fmt"
	"time"

	"chambers/internal/shared/authorization"
	"chambers/internal/shared/id"
)

type Staff struct {
	id         uint
	sid        string
	firmID     uint
	name       string
	email      string
	department string
	role       authorization.UserRole
	createdAt  time.Time
	updatedAt  time.Time
}

func NewStaff(firmID uint, name, email, department string, role authorization.UserRole) (*Staff, error) {
	if firmID == 0 {
		return nil, fmt.Errorf("firm ID is required")
	}
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role %q", role)
	}

	now := time.Now().UTC()
	return &Staff{
		sid:        id.MustGenerateWithPrefix(id.PrefixStaff, id.DefaultLength),
		firmID:     firmID,
		name:       name,
		email:      email,
		department: department,
		role:       role,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructStaff(
	pk uint,
	sid string,
	firmID uint,
	name, email, department string,
	role authorization.UserRole,
	createdAt, updatedAt time.Time,
) (*Staff, error) {
	if pk == 0 {
		return nil, fmt.Errorf("staff ID cannot be zero")
	}
	if sid == "" {
		return nil, fmt.Errorf("staff SID is required")
	}
	if firmID == 0 {
		return nil, fmt.Errorf("firm ID is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role %q", role)
	}

	return &Staff{
		id:         pk,
		sid:        sid,
		firmID:     firmID,
		name:       name,
		email:      email,
		department: department,
		role:       role,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}, nil
}

func (s *Staff) ID() uint                     { return s.id }
func (s *Staff) SID() string                  { return s.sid }
func (s *Staff) FirmID() uint                 { return s.firmID }
func (s *Staff) Name() string                 { return s.name }
func (s *Staff) Email() string                { return s.email }
func (s *Staff) Department() string           { return s.department }
func (s *Staff) Role() authorization.UserRole { return s.role }
func (s *Staff) CreatedAt() time.Time         { return s.createdAt }
func (s *Staff) UpdatedAt() time.Time         { return s.updatedAt }

func (s *Staff) SetID(pk uint) error {
	if s.id != 0 {
		return fmt.Errorf("staff ID already set")
	}
	s.id = pk
	return nil
}
