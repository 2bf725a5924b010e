package usecases

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chambers/internal/domain/calendar"
	"chambers/internal/shared/biztime"
	"chambers/internal/shared/logger"
)

// =====================================================================
// Fakes
// =====================================================================

type fakeScanner struct {
	events []*calendar.Event
	err    error
}

func (f *fakeScanner) FindCourtAppearancesInWindow(ctx context.Context, window biztime.Window) ([]*calendar.Event, error) {
	return f.events, f.err
}

type fakeChecker struct {
	mu    sync.Mutex
	fn    func(firmID, matterID uint) (bool, error)
	calls int
}

func (f *fakeChecker) ExistsForMatterInWindow(ctx context.Context, firmID, matterID uint, window biztime.Window) (bool, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if f.fn != nil {
		return f.fn(firmID, matterID)
	}
	return false, nil
}

type dispatchCall struct {
	firmID    uint
	attendees []uint
	ref       calendar.MatterRef
}

type fakeDispatcher struct {
	mu    sync.Mutex
	calls []dispatchCall
}

func (f *fakeDispatcher) Notify(ctx context.Context, firmID uint, attendeeIDs []uint, ref calendar.MatterRef) []RecipientResult {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, dispatchCall{firmID: firmID, attendees: attendeeIDs, ref: ref})

	results := make([]RecipientResult, 0, len(attendeeIDs))
	for _, staffID := range attendeeIDs {
		results = append(results, RecipientResult{StaffID: staffID, TokensTried: 1})
	}
	return results
}

func (f *fakeDispatcher) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func discardLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// passNow pins the pass inside the local day 2025-06-12 (SAST).
var passNow = time.Date(2025, 6, 12, 10, 0, 0, 0, time.UTC)

func testEvent(t *testing.T, pk uint, firmID uint, matterID uint, attendees []uint) *calendar.Event {
	t.Helper()
	ref := &calendar.MatterRef{ID: matterID, SID: fmt.Sprintf("mat_%d", matterID), Title: "Smith v Jones"}
	if matterID == 0 {
		ref = nil
	}
	e, err := calendar.ReconstructEvent(
		pk, fmt.Sprintf("evt_%d", pk), firmID, calendar.CategoryCourtAppearance,
		"Hearing", passNow, passNow.Add(time.Hour), ref, attendees, passNow, passNow,
	)
	require.NoError(t, err)
	return e
}

func newUseCase(scanner *fakeScanner, checker *fakeChecker, dispatcher *fakeDispatcher) *ProcessEndorsementRemindersUseCase {
	loc, _ := time.LoadLocation("Africa/Johannesburg")
	uc := NewProcessEndorsementRemindersUseCase(scanner, checker, dispatcher, loc, 2, discardLogger())
	return uc.WithNow(func() time.Time { return passNow })
}

// =====================================================================
// Pass behavior
// =====================================================================

func TestExecute_MissingEndorsementNotifiesAllAttendees(t *testing.T) {
	scanner := &fakeScanner{events: []*calendar.Event{testEvent(t, 1, 10, 100, []uint{4, 5})}}
	checker := &fakeChecker{fn: func(firmID, matterID uint) (bool, error) { return false, nil }}
	dispatcher := &fakeDispatcher{}

	report, err := newUseCase(scanner, checker, dispatcher).Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, report.Scanned)
	assert.Equal(t, 1, report.Notified)
	assert.Equal(t, 0, report.Endorsed)
	require.Equal(t, 1, dispatcher.callCount())
	assert.Equal(t, []uint{4, 5}, dispatcher.calls[0].attendees)
	assert.Equal(t, uint(10), dispatcher.calls[0].firmID)
	assert.Equal(t, "Smith v Jones", dispatcher.calls[0].ref.Title)
}

func TestExecute_ExistingEndorsementSuppressesReminder(t *testing.T) {
	scanner := &fakeScanner{events: []*calendar.Event{testEvent(t, 1, 10, 100, []uint{4})}}
	checker := &fakeChecker{fn: func(firmID, matterID uint) (bool, error) { return true, nil }}
	dispatcher := &fakeDispatcher{}

	report, err := newUseCase(scanner, checker, dispatcher).Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, report.Endorsed)
	assert.Equal(t, 0, report.Notified)
	assert.Zero(t, dispatcher.callCount())
}

func TestExecute_IncompleteEventsExcludedRegardlessOfEndorsements(t *testing.T) {
	scanner := &fakeScanner{events: []*calendar.Event{
		testEvent(t, 1, 10, 0, []uint{4}), // no matter reference
		testEvent(t, 2, 10, 100, nil),     // no attendees
	}}
	checker := &fakeChecker{}
	dispatcher := &fakeDispatcher{}

	report, err := newUseCase(scanner, checker, dispatcher).Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, report.Ineligible)
	assert.Zero(t, checker.calls, "ineligible events must not reach the existence check")
	assert.Zero(t, dispatcher.callCount())
}

func TestExecute_ScanFailureIsFatal(t *testing.T) {
	scanner := &fakeScanner{err: fmt.Errorf("store unavailable")}
	dispatcher := &fakeDispatcher{}

	report, err := newUseCase(scanner, &fakeChecker{}, dispatcher).Execute(context.Background())

	assert.Error(t, err)
	assert.Nil(t, report)
	assert.Zero(t, dispatcher.callCount(), "no partial notifications on a failed scan")
}

func TestExecute_EmptyScanEndsCleanly(t *testing.T) {
	report, err := newUseCase(&fakeScanner{}, &fakeChecker{}, &fakeDispatcher{}).Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0, report.Scanned)
	assert.Empty(t, report.Outcomes)
}

// A failing existence check for one event must not prevent processing of the
// others in the same pass.
func TestExecute_CheckFailureIsIsolatedPerEvent(t *testing.T) {
	scanner := &fakeScanner{events: []*calendar.Event{
		testEvent(t, 1, 10, 100, []uint{4}),
		testEvent(t, 2, 20, 200, []uint{5}),
	}}
	checker := &fakeChecker{fn: func(firmID, matterID uint) (bool, error) {
		if matterID == 100 {
			return false, fmt.Errorf("query timeout")
		}
		return false, nil
	}}
	dispatcher := &fakeDispatcher{}

	report, err := newUseCase(scanner, checker, dispatcher).Execute(context.Background())

	require.NoError(t, err, "per-event failures must not fail the pass")
	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, 1, report.Notified)
	require.Equal(t, 1, dispatcher.callCount())
	assert.Equal(t, uint(20), dispatcher.calls[0].firmID)
}

func TestExecute_EventOutsideWindowIsExcluded(t *testing.T) {
	stale := testEventAt(t, 3, 10, 300, []uint{4}, passNow.Add(-48*time.Hour))
	scanner := &fakeScanner{events: []*calendar.Event{stale}}
	checker := &fakeChecker{}
	dispatcher := &fakeDispatcher{}

	report, err := newUseCase(scanner, checker, dispatcher).Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, report.Ineligible)
	assert.Zero(t, dispatcher.callCount())
}

func testEventAt(t *testing.T, pk uint, firmID uint, matterID uint, attendees []uint, start time.Time) *calendar.Event {
	t.Helper()
	e, err := calendar.ReconstructEvent(
		pk, fmt.Sprintf("evt_%d", pk), firmID, calendar.CategoryCourtAppearance,
		"Hearing", start, start.Add(time.Hour),
		&calendar.MatterRef{ID: matterID, Title: "Old matter"}, attendees, start, start,
	)
	require.NoError(t, err)
	return e
}

func TestExecute_MultipleFirmsInOnePass(t *testing.T) {
	scanner := &fakeScanner{events: []*calendar.Event{
		testEvent(t, 1, 10, 100, []uint{4}),
		testEvent(t, 2, 20, 200, []uint{5}),
		testEvent(t, 3, 30, 300, []uint{6}),
	}}
	endorsed := map[uint]bool{200: true}
	checker := &fakeChecker{fn: func(firmID, matterID uint) (bool, error) { return endorsed[matterID], nil }}
	dispatcher := &fakeDispatcher{}

	report, err := newUseCase(scanner, checker, dispatcher).Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 3, report.Scanned)
	assert.Equal(t, 1, report.Endorsed)
	assert.Equal(t, 2, report.Notified)
	assert.Equal(t, 2, dispatcher.callCount())
}

func TestProcessReminders_PropagatesOnlyFatalErrors(t *testing.T) {
	uc := newUseCase(&fakeScanner{}, &fakeChecker{}, &fakeDispatcher{})
	assert.NoError(t, uc.ProcessReminders(context.Background()))

	failing := newUseCase(&fakeScanner{err: fmt.Errorf("down")}, &fakeChecker{}, &fakeDispatcher{})
	assert.Error(t, failing.ProcessReminders(context.Background()))
}
