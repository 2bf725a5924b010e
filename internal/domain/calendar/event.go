// Package calendar models firm calendar entries. Court-appearance events feed
// the missing-endorsement reminder pass.
package calendar

import (
	"fmt"
	"time"

	"chambers/internal/shared/id"
)

type Category string

const (
	CategoryCourtAppearance Category = "court_appearance"
	CategoryConsultation    Category = "consultation"
	CategoryInternal        Category = "internal"
)

func (c Category) IsValid() bool {
	return c == CategoryCourtAppearance || c == CategoryConsultation || c == CategoryInternal
}

// MatterRef is the denormalized matter reference carried on an event. SID is
// the public matter identifier used in deep links.
type MatterRef struct {
	ID    uint
	SID   string
	Title string
}

type Event struct {
	id          uint
	sid         string
	firmID      uint
	category    Category
	title       string
	startAt     time.Time
	endAt       time.Time
	matterRef   *MatterRef
	attendeeIDs []uint
	createdAt   time.Time
	updatedAt   time.Time
}

func NewEvent(
	firmID uint,
	category Category,
	title string,
	startAt, endAt time.Time,
	matterRef *MatterRef,
	attendeeIDs []uint,
) (*Event, error) {
	if firmID == 0 {
		return nil, fmt.Errorf("firm ID is required")
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid event category %q", category)
	}
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if startAt.IsZero() {
		return nil, fmt.Errorf("start time is required")
	}
	if !endAt.IsZero() && endAt.Before(startAt) {
		return nil, fmt.Errorf("end time precedes start time")
	}
	if category == CategoryCourtAppearance {
		if matterRef == nil || matterRef.ID == 0 {
			return nil, fmt.Errorf("court appearances require a matter reference")
		}
		if len(attendeeIDs) == 0 {
			return nil, fmt.Errorf("court appearances require at least one attendee")
		}
	}

	now := time.Now().UTC()
	return &Event{
		sid:         id.MustGenerateWithPrefix(id.PrefixEvent, id.DefaultLength),
		firmID:      firmID,
		category:    category,
		title:       title,
		startAt:     startAt.UTC(),
		endAt:       endAt.UTC(),
		matterRef:   matterRef,
		attendeeIDs: attendeeIDs,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructEvent rebuilds an event from storage. Unlike NewEvent it does not
// reject incomplete court appearances: historic rows may be missing attendees
// or a matter reference, and the reminder pass skips those via
// EligibleForReminder rather than failing the read.
func ReconstructEvent(
	pk uint,
	sid string,
	firmID uint,
	category Category,
	title string,
	startAt, endAt time.Time,
	matterRef *MatterRef,
	attendeeIDs []uint,
	createdAt, updatedAt time.Time,
) (*Event, error) {
	if pk == 0 {
		return nil, fmt.Errorf("event ID cannot be zero")
	}
	if sid == "" {
		return nil, fmt.Errorf("event SID is required")
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid event category %q", category)
	}

	return &Event{
		id:          pk,
		sid:         sid,
		firmID:      firmID,
		category:    category,
		title:       title,
		startAt:     startAt.UTC(),
		endAt:       endAt.UTC(),
		matterRef:   matterRef,
		attendeeIDs: attendeeIDs,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (e *Event) ID() uint           { return e.id }
func (e *Event) SID() string        { return e.sid }
func (e *Event) FirmID() uint       { return e.firmID }
func (e *Event) Category() Category { return e.category }
func (e *Event) Title() string      { return e.title }
func (e *Event) StartAt() time.Time { return e.startAt }
func (e *Event) EndAt() time.Time   { return e.endAt }
func (e *Event) MatterRef() *MatterRef {
	return e.matterRef
}
func (e *Event) AttendeeIDs() []uint  { return e.attendeeIDs }
func (e *Event) CreatedAt() time.Time { return e.createdAt }
func (e *Event) UpdatedAt() time.Time { return e.updatedAt }

func (e *Event) SetID(pk uint) error {
	if e.id != 0 {
		return fmt.Errorf("event ID already set")
	}
	e.id = pk
	return nil
}

// EligibleForReminder reports whether the event qualifies for the
// missing-endorsement check: a court appearance with a firm, a matter
// reference, and at least one attendee. Events failing this are skipped
// silently by the reminder pass.
func (e *Event) EligibleForReminder() bool {
	return e.category == CategoryCourtAppearance &&
		e.firmID != 0 &&
		e.matterRef != nil &&
		e.matterRef.ID != 0 &&
		len(e.attendeeIDs) > 0
}
