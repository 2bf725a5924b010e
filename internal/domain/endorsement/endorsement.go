// Package endorsement models recorded court-appearance outcomes. The reminder
// pass only cares about existence; the HTTP surface also exposes the note body.
package endorsement

import (
	"fmt"
	"time"

	"chambers/internal/shared/id"
)

type Endorsement struct {
	id        uint
	sid       string
	firmID    uint
	matterID  uint
	date      time.Time
	authorID  uint
	note      string
	createdAt time.Time
	updatedAt time.Time
}

func NewEndorsement(firmID, matterID uint, date time.Time, authorID uint, note string) (*Endorsement, error) {
	if firmID == 0 {
		return nil, fmt.Errorf("firm ID is required")
	}
	if matterID == 0 {
		return nil, fmt.Errorf("matter ID is required")
	}
	if date.IsZero() {
		return nil, fmt.Errorf("endorsement date is required")
	}
	if authorID == 0 {
		return nil, fmt.Errorf("author ID is required")
	}
	if note == "" {
		return nil, fmt.Errorf("note is required")
	}
	if len(note) > 20000 {
		return nil, fmt.Errorf("note exceeds maximum length of 20000 characters")
	}

	now := time.Now().UTC()
	return &Endorsement{
		sid:       id.MustGenerateWithPrefix(id.PrefixEndorsement, id.DefaultLength),
		firmID:    firmID,
		matterID:  matterID,
		date:      date.UTC(),
		authorID:  authorID,
		note:      note,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructEndorsement(
	pk uint,
	sid string,
	firmID, matterID uint,
	date time.Time,
	authorID uint,
	note string,
	createdAt, updatedAt time.Time,
) (*Endorsement, error) {
	if pk == 0 {
		return nil, fmt.Errorf("endorsement ID cannot be zero")
	}
	if sid == "" {
		return nil, fmt.Errorf("endorsement SID is required")
	}
	if firmID == 0 || matterID == 0 {
		return nil, fmt.Errorf("firm and matter IDs are required")
	}

	return &Endorsement{
		id:        pk,
		sid:       sid,
		firmID:    firmID,
		matterID:  matterID,
		date:      date.UTC(),
		authorID:  authorID,
		note:      note,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (e *Endorsement) ID() uint             { return e.id }
func (e *Endorsement) SID() string          { return e.sid }
func (e *Endorsement) FirmID() uint         { return e.firmID }
func (e *Endorsement) MatterID() uint       { return e.matterID }
func (e *Endorsement) Date() time.Time      { return e.date }
func (e *Endorsement) AuthorID() uint       { return e.authorID }
func (e *Endorsement) Note() string         { return e.note }
func (e *Endorsement) CreatedAt() time.Time { return e.createdAt }
func (e *Endorsement) UpdatedAt() time.Time { return e.updatedAt }

func (e *Endorsement) SetID(pk uint) error {
	if e.id != 0 {
		return fmt.Errorf("endorsement ID already set")
	}
	e.id = pk
	return nil
}
