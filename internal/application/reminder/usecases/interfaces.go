package usecases

import (
	"context"

	"chambers/internal/domain/calendar"
	"chambers/internal/shared/biztime"
)

// CourtEventScanner is the cross-firm calendar scan. One logical query spans
// every firm; a failure aborts the whole pass.
type CourtEventScanner interface {
	FindCourtAppearancesInWindow(ctx context.Context, window biztime.Window) ([]*calendar.Event, error)
}

// EndorsementChecker probes for at least one endorsement dated inside the
// window for a firm and matter.
type EndorsementChecker interface {
	ExistsForMatterInWindow(ctx context.Context, firmID, matterID uint, window biztime.Window) (bool, error)
}

// DeviceTokenResolver looks up a staff member's registered push tokens.
type DeviceTokenResolver interface {
	FindDeviceTokens(ctx context.Context, firmID, staffID uint) ([]string, error)
}

// PushMessage is the reminder payload delivered to every token of a recipient.
type PushMessage struct {
	Title string
	Body  string
	Data  map[string]string
}

// TokenResult is the delivery outcome for a single device token.
type TokenResult struct {
	Token string
	Err   error
}

// MulticastResult is the per-token breakdown of one multicast send.
type MulticastResult struct {
	SuccessCount int
	FailureCount int
	Results      []TokenResult
}

// PushSender submits one multicast send covering all of a recipient's tokens.
// Partial failure is reported through the result, never as an error.
type PushSender interface {
	SendMulticast(ctx context.Context, tokens []string, msg PushMessage) (*MulticastResult, error)
}

// NotificationDispatcher fans a reminder out to every attendee of an event.
type NotificationDispatcher interface {
	Notify(ctx context.Context, firmID uint, attendeeIDs []uint, ref calendar.MatterRef) []RecipientResult
}
