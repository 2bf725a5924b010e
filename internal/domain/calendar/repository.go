package calendar

import (
	"context"

	"chambers/internal/shared/biztime"
)

type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	FindBySID(ctx context.Context, firmID uint, sid string) (*Event, error)
	ListByFirmInRange(ctx context.Context, firmID uint, window biztime.Window, limit, offset int) ([]*Event, int64, error)

	// FindCourtAppearancesInWindow is the cross-firm scan used by the reminder
	// pass: one logical query over every firm's calendar, filtered by the
	// court-appearance category and a start-time range. A failure here is
	// fatal to the whole pass.
	FindCourtAppearancesInWindow(ctx context.Context, window biztime.Window) ([]*Event, error)
}
