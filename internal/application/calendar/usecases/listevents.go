package usecases

import (
	"context"
	"fmt"
	"time"

	"chambers/internal/domain/calendar"
	"chambers/internal/shared/biztime"
	"chambers/internal/shared/errors"
	"chambers/internal/shared/logger"
)

type ListEventsUseCase struct {
	events calendar.EventRepository
	logger logger.Interface
}

func NewListEventsUseCase(events calendar.EventRepository, logger logger.Interface) *ListEventsUseCase {
	return &ListEventsUseCase{
		events: events,
		logger: logger,
	}
}

// Execute lists a firm's events whose start time falls inside [from, to].
func (uc *ListEventsUseCase) Execute(ctx context.Context, firmID uint, from, to time.Time, limit, offset int) ([]*calendar.Event, int64, error) {
	if from.IsZero() || to.IsZero() {
		return nil, 0, errors.NewValidationError("both from and to are required")
	}
	if to.Before(from) {
		return nil, 0, errors.NewValidationError("to precedes from")
	}

	window := biztime.Window{Start: from.UTC(), End: to.UTC()}
	events, total, err := uc.events.ListByFirmInRange(ctx, firmID, window, limit, offset)
	if err != nil {
		uc.logger.Errorw("failed to list calendar events", "firm_id", firmID, "error", err)
		return nil, 0, fmt.Errorf("failed to list calendar events: %w", err)
	}

	return events, total, nil
}
