package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func courtAppearance(t *testing.T) *Event {
	t.Helper()
	e, err := NewEvent(
		1,
		CategoryCourtAppearance,
		"Hearing: Smith v Jones",
		time.Date(2025, 6, 12, 9, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 12, 11, 0, 0, 0, time.UTC),
		&MatterRef{ID: 10, Title: "Smith v Jones"},
		[]uint{4, 5},
	)
	require.NoError(t, err)
	return e
}

func TestNewEvent_CourtAppearanceRequiresMatterAndAttendees(t *testing.T) {
	start := time.Date(2025, 6, 12, 9, 0, 0, 0, time.UTC)

	_, err := NewEvent(1, CategoryCourtAppearance, "Hearing", start, start, nil, []uint{4})
	assert.Error(t, err, "missing matter reference")

	_, err = NewEvent(1, CategoryCourtAppearance, "Hearing", start, start, &MatterRef{ID: 10}, nil)
	assert.Error(t, err, "missing attendees")

	// Other categories carry no such requirement.
	_, err = NewEvent(1, CategoryInternal, "Team meeting", start, start, nil, nil)
	assert.NoError(t, err)
}

func TestNewEvent_RejectsInvertedRange(t *testing.T) {
	start := time.Date(2025, 6, 12, 9, 0, 0, 0, time.UTC)
	_, err := NewEvent(1, CategoryConsultation, "Consult", start, start.Add(-time.Hour), nil, nil)
	assert.Error(t, err)
}

func TestEvent_EligibleForReminder(t *testing.T) {
	assert.True(t, courtAppearance(t).EligibleForReminder())
}

func TestEvent_EligibleForReminder_SkipsIncompleteRecords(t *testing.T) {
	now := time.Now().UTC()
	start := time.Date(2025, 6, 12, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		category  Category
		firmID    uint
		matterRef *MatterRef
		attendees []uint
	}{
		{"wrong category", CategoryConsultation, 1, &MatterRef{ID: 10}, []uint{4}},
		{"no attendees", CategoryCourtAppearance, 1, &MatterRef{ID: 10}, nil},
		{"no matter reference", CategoryCourtAppearance, 1, nil, []uint{4}},
		{"zero matter id", CategoryCourtAppearance, 1, &MatterRef{ID: 0}, []uint{4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := ReconstructEvent(1, "evt_x", tt.firmID, tt.category, "Hearing",
				start, start, tt.matterRef, tt.attendees, now, now)
			require.NoError(t, err, "reconstruction must tolerate incomplete rows")
			assert.False(t, e.EligibleForReminder())
		})
	}
}

func TestReconstructEvent_ToleratesIncompleteCourtAppearance(t *testing.T) {
	now := time.Now().UTC()
	e, err := ReconstructEvent(1, "evt_x", 1, CategoryCourtAppearance, "Hearing",
		now, now, nil, nil, now, now)

	require.NoError(t, err)
	assert.False(t, e.EligibleForReminder())
}
