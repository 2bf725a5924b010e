package usecases

import (
	"context"
	"fmt"
	"time"

	"chambers/internal/domain/calendar"
	"chambers/internal/shared/errors"
	"chambers/internal/shared/logger"
)

type CreateEventRequest struct {
	FirmID      uint
	Category    calendar.Category
	Title       string
	StartAt     time.Time
	EndAt       time.Time
	MatterSID   string
	AttendeeIDs []uint
}

type CreateEventUseCase struct {
	events  calendar.EventRepository
	matters MatterResolver
	logger  logger.Interface
}

func NewCreateEventUseCase(
	events calendar.EventRepository,
	matters MatterResolver,
	logger logger.Interface,
) *CreateEventUseCase {
	return &CreateEventUseCase{
		events:  events,
		matters: matters,
		logger:  logger,
	}
}

// Execute creates a calendar event. When a matter SID is supplied it is
// resolved and denormalized onto the event, which is how court appearances
// acquire the reference the reminder pass depends on.
func (uc *CreateEventUseCase) Execute(ctx context.Context, req CreateEventRequest) (*calendar.Event, error) {
	var ref *calendar.MatterRef
	if req.MatterSID != "" {
		m, err := uc.matters.FindBySID(ctx, req.FirmID, req.MatterSID)
		if err != nil {
			return nil, fmt.Errorf("failed to find matter: %w", err)
		}
		if m == nil {
			return nil, errors.NewNotFoundError("matter not found")
		}
		ref = &calendar.MatterRef{ID: m.ID(), SID: m.SID(), Title: m.Title()}
	}

	event, err := calendar.NewEvent(req.FirmID, req.Category, req.Title, req.StartAt, req.EndAt, ref, req.AttendeeIDs)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.events.Create(ctx, event); err != nil {
		uc.logger.Errorw("failed to create calendar event",
			"firm_id", req.FirmID,
			"category", req.Category,
			"error", err,
		)
		return nil, fmt.Errorf("failed to create calendar event: %w", err)
	}

	uc.logger.Infow("calendar event created",
		"firm_id", req.FirmID,
		"event_sid", event.SID(),
		"category", req.Category,
	)
	return event, nil
}
