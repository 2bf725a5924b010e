package usecases

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"chambers/internal/domain/calendar"
	"chambers/internal/shared/biztime"
	"chambers/internal/shared/logger"
)

const defaultConcurrency = 4

// EventOutcome is the explicit per-event result of one reminder pass. The
// coordinator aggregates these instead of swallowing failures, so callers and
// tests can assert on exactly what happened to each scanned event.
type EventOutcome struct {
	EventSID   string
	FirmID     uint
	MatterID   uint
	Ineligible bool // incomplete record, silently excluded
	Endorsed   bool // endorsement already recorded inside the window
	Notified   bool // reminder dispatch attempted
	Recipients []RecipientResult
	Err        error // existence-check failure; event skipped, pass continues
}

// PassReport summarizes one reminder pass.
type PassReport struct {
	Window     biztime.Window
	Scanned    int
	Ineligible int
	Endorsed   int
	Notified   int
	Failed     int
	Outcomes   []EventOutcome
}

// ProcessEndorsementRemindersUseCase runs the missing-endorsement
// reconciliation pass: compute the day window, scan court appearances across
// all firms, and for each event without an endorsement in the window, fan a
// reminder out to its attendees. Events are independent; a failure in one
// never aborts the others. Only the initial scan is fatal to the pass.
//
// The pass holds no state between runs and records nothing about reminders it
// sent. If the scheduler fires twice for the same day the same attendees are
// reminded twice; triggers are assumed to be serialized externally.
type ProcessEndorsementRemindersUseCase struct {
	scanner      CourtEventScanner
	endorsements EndorsementChecker
	dispatcher   NotificationDispatcher
	location     *time.Location
	concurrency  int
	now          func() time.Time
	logger       logger.Interface
}

func NewProcessEndorsementRemindersUseCase(
	scanner CourtEventScanner,
	endorsements EndorsementChecker,
	dispatcher NotificationDispatcher,
	location *time.Location,
	concurrency int,
	logger logger.Interface,
) *ProcessEndorsementRemindersUseCase {
	if location == nil {
		location = biztime.Location()
	}
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}
	return &ProcessEndorsementRemindersUseCase{
		scanner:      scanner,
		endorsements: endorsements,
		dispatcher:   dispatcher,
		location:     location,
		concurrency:  concurrency,
		now:          time.Now,
		logger:       logger,
	}
}

// WithNow overrides the clock. Used by tests to pin the day window.
func (uc *ProcessEndorsementRemindersUseCase) WithNow(now func() time.Time) *ProcessEndorsementRemindersUseCase {
	uc.now = now
	return uc
}

// Execute runs one pass and returns the aggregate report. The returned error
// is non-nil only for fatal conditions: a failed cross-firm scan or a
// cancelled context before any work was attempted.
func (uc *ProcessEndorsementRemindersUseCase) Execute(ctx context.Context) (*PassReport, error) {
	window := biztime.DayWindowIn(uc.now(), uc.location)

	events, err := uc.scanner.FindCourtAppearancesInWindow(ctx, window)
	if err != nil {
		uc.logger.Errorw("court appearance scan failed, aborting pass",
			"window_start", window.Start,
			"window_end", window.End,
			"error", err,
		)
		return nil, fmt.Errorf("scan court appearances: %w", err)
	}

	report := &PassReport{
		Window:   window,
		Scanned:  len(events),
		Outcomes: make([]EventOutcome, len(events)),
	}

	if len(events) == 0 {
		uc.logger.Debugw("no court appearances in window",
			"window_start", window.Start,
			"window_end", window.End,
		)
		return report, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.concurrency)
	for i, event := range events {
		g.Go(func() error {
			report.Outcomes[i] = uc.processEvent(gctx, event, window)
			return nil
		})
	}
	// Goroutines only record outcomes; the group never returns an error.
	_ = g.Wait()

	for _, outcome := range report.Outcomes {
		switch {
		case outcome.Ineligible:
			report.Ineligible++
		case outcome.Err != nil:
			report.Failed++
		case outcome.Endorsed:
			report.Endorsed++
		case outcome.Notified:
			report.Notified++
		}
	}

	uc.logger.Infow("endorsement reminder pass completed",
		"scanned", report.Scanned,
		"ineligible", report.Ineligible,
		"endorsed", report.Endorsed,
		"notified", report.Notified,
		"failed", report.Failed,
	)

	return report, nil
}

func (uc *ProcessEndorsementRemindersUseCase) processEvent(ctx context.Context, event *calendar.Event, window biztime.Window) EventOutcome {
	outcome := EventOutcome{
		EventSID: event.SID(),
		FirmID:   event.FirmID(),
	}

	// Incomplete records are excluded silently, not errored.
	if !event.EligibleForReminder() || !window.Contains(event.StartAt()) {
		outcome.Ineligible = true
		return outcome
	}
	ref := *event.MatterRef()
	outcome.MatterID = ref.ID

	exists, err := uc.endorsements.ExistsForMatterInWindow(ctx, event.FirmID(), ref.ID, window)
	if err != nil {
		// Existence unknown: skip this event, keep the pass going.
		uc.logger.Errorw("endorsement existence check failed, skipping event",
			"event_sid", event.SID(),
			"firm_id", event.FirmID(),
			"matter_id", ref.ID,
			"error", err,
		)
		outcome.Err = fmt.Errorf("endorsement existence check: %w", err)
		return outcome
	}

	if exists {
		outcome.Endorsed = true
		return outcome
	}

	outcome.Recipients = uc.dispatcher.Notify(ctx, event.FirmID(), event.AttendeeIDs(), ref)
	outcome.Notified = true
	return outcome
}

// ProcessReminders adapts Execute to the scheduler's job contract.
func (uc *ProcessEndorsementRemindersUseCase) ProcessReminders(ctx context.Context) error {
	_, err := uc.Execute(ctx)
	return err
}
