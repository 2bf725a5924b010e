package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chambers/internal/domain/calendar"
	"chambers/internal/shared/biztime"
)

// End-to-end pass with the real dispatcher: one court appearance for
// (T1, M1) inside the 2025-06-12 window, attendees U1 (two tokens) and
// U2 (no tokens).
func scenarioFixtures(t *testing.T, endorsed bool) (*ProcessEndorsementRemindersUseCase, *fakeSender) {
	t.Helper()

	event, err := calendar.ReconstructEvent(
		1, "evt_1", 1, calendar.CategoryCourtAppearance, "Hearing: Smith v Jones",
		passNow, passNow.Add(time.Hour),
		&calendar.MatterRef{ID: 100, SID: "mat_M1", Title: "Smith v Jones"},
		[]uint{4, 5}, passNow, passNow,
	)
	require.NoError(t, err)

	scanner := &fakeScanner{events: []*calendar.Event{event}}
	checker := &fakeChecker{fn: func(firmID, matterID uint) (bool, error) { return endorsed, nil }}
	resolver := &fakeTokenResolver{tokens: map[uint][]string{4: {"tok-a", "tok-b"}}}
	sender := &fakeSender{}
	dispatcher := NewDispatcher(resolver, sender, discardLogger())

	loc, err := time.LoadLocation("Africa/Johannesburg")
	require.NoError(t, err)

	uc := NewProcessEndorsementRemindersUseCase(scanner, checker, dispatcher, loc, 1, discardLogger()).
		WithNow(func() time.Time { return passNow })
	return uc, sender
}

func TestPass_MissingEndorsementScenario(t *testing.T) {
	uc, sender := scenarioFixtures(t, false)

	report, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, report.Scanned)
	assert.Equal(t, 1, report.Notified)
	assert.Equal(t, 0, report.Failed)

	require.Len(t, sender.calls, 1, "one multicast attempt for the tokened attendee")
	assert.Equal(t, []string{"tok-a", "tok-b"}, sender.calls[0].tokens)

	require.Len(t, report.Outcomes, 1)
	recipients := report.Outcomes[0].Recipients
	require.Len(t, recipients, 2)
	assert.Equal(t, 2, recipients[0].TokensTried)
	assert.True(t, recipients[1].Skipped)

	// The pass window matches the firm-local calendar date of the trigger.
	wantWindow := biztime.DayWindowIn(passNow, mustLocation(t))
	assert.Equal(t, wantWindow, report.Window)
}

func TestPass_EndorsedScenario(t *testing.T) {
	uc, sender := scenarioFixtures(t, true)

	report, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, report.Endorsed)
	assert.Equal(t, 0, report.Notified)
	assert.Empty(t, sender.calls, "zero notification attempts when endorsed")
}

func mustLocation(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Africa/Johannesburg")
	require.NoError(t, err)
	return loc
}
