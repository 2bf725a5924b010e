package matter

import (
	"fmt"
	"time"

	"chambers/internal/shared/id"
)

type Status string

const (
	StatusOpen     Status = "open"
	StatusClosed   Status = "closed"
	StatusArchived Status = "archived"
)

func (s Status) IsValid() bool {
	return s == StatusOpen || s == StatusClosed || s == StatusArchived
}

// Matter is a legal case record. It is the unit of access scoping: every read
// path returning matter-scoped data must consult CanBeAccessedBy first.
type Matter struct {
	id              uint
	sid             string
	firmID          uint
	title           string
	referenceNumber string
	status          Status
	accessScope     AccessScope
	createdAt       time.Time
	updatedAt       time.Time
}

func NewMatter(firmID uint, title, referenceNumber string, scope AccessScope) (*Matter, error) {
	if firmID == 0 {
		return nil, fmt.Errorf("firm ID is required")
	}
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > 255 {
		return nil, fmt.Errorf("title exceeds maximum length of 255 characters")
	}

	now := time.Now().UTC()
	return &Matter{
		sid:             id.MustGenerateWithPrefix(id.PrefixMatter, id.DefaultLength),
		firmID:          firmID,
		title:           title,
		referenceNumber: referenceNumber,
		status:          StatusOpen,
		accessScope:     scope,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

func ReconstructMatter(
	pk uint,
	sid string,
	firmID uint,
	title string,
	referenceNumber string,
	status Status,
	scope AccessScope,
	createdAt, updatedAt time.Time,
) (*Matter, error) {
	if pk == 0 {
		return nil, fmt.Errorf("matter ID cannot be zero")
	}
	if firmID == 0 {
		return nil, fmt.Errorf("firm ID is required")
	}
	if sid == "" {
		return nil, fmt.Errorf("matter SID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid matter status %q", status)
	}

	return &Matter{
		id:              pk,
		sid:             sid,
		firmID:          firmID,
		title:           title,
		referenceNumber: referenceNumber,
		status:          status,
		accessScope:     scope,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}, nil
}

func (m *Matter) ID() uint                 { return m.id }
func (m *Matter) SID() string              { return m.sid }
func (m *Matter) FirmID() uint             { return m.firmID }
func (m *Matter) Title() string            { return m.title }
func (m *Matter) ReferenceNumber() string  { return m.referenceNumber }
func (m *Matter) Status() Status           { return m.status }
func (m *Matter) AccessScope() AccessScope { return m.accessScope }
func (m *Matter) CreatedAt() time.Time     { return m.createdAt }
func (m *Matter) UpdatedAt() time.Time     { return m.updatedAt }

// SetID assigns the database identity after insert.
func (m *Matter) SetID(pk uint) error {
	if m.id != 0 {
		return fmt.Errorf("matter ID already set")
	}
	m.id = pk
	return nil
}

// CanBeAccessedBy applies the matter access scope to a staff identity.
func (m *Matter) CanBeAccessedBy(userID uint, department string) bool {
	return m.accessScope.Allows(userID, department)
}

func (m *Matter) UpdateTitle(title string) error {
	if title == "" {
		return fmt.Errorf("title is required")
	}
	if len(title) > 255 {
		return fmt.Errorf("title exceeds maximum length of 255 characters")
	}
	m.title = title
	m.updatedAt = time.Now().UTC()
	return nil
}

func (m *Matter) RestrictTo(scope AccessScope) {
	m.accessScope = scope
	m.updatedAt = time.Now().UTC()
}

func (m *Matter) Close() error {
	if m.status != StatusOpen {
		return fmt.Errorf("only open matters can be closed")
	}
	m.status = StatusClosed
	m.updatedAt = time.Now().UTC()
	return nil
}
