package usecases

import (
	"context"
	"fmt"
	"strconv"

	"chambers/internal/domain/calendar"
	"chambers/internal/shared/logger"
)

const reminderTitle = "Endorsement Reminder"

// RecipientResult records the delivery outcome for one attendee. Failures are
// values here, never raised: a failed token does not block the attendee's
// other tokens, and a failed attendee does not block the rest of the batch.
type RecipientResult struct {
	StaffID      uint
	Skipped      bool // no registered device tokens
	TokensTried  int
	TokensFailed int
	Err          error // token lookup or send submission failure
}

// Dispatcher resolves attendee device tokens and sends one multicast reminder
// per attendee.
type Dispatcher struct {
	tokens DeviceTokenResolver
	sender PushSender
	logger logger.Interface
}

func NewDispatcher(tokens DeviceTokenResolver, sender PushSender, logger logger.Interface) *Dispatcher {
	return &Dispatcher{
		tokens: tokens,
		sender: sender,
		logger: logger,
	}
}

func (d *Dispatcher) Notify(ctx context.Context, firmID uint, attendeeIDs []uint, ref calendar.MatterRef) []RecipientResult {
	msg := buildReminder(ref)

	results := make([]RecipientResult, 0, len(attendeeIDs))
	for _, staffID := range attendeeIDs {
		results = append(results, d.notifyOne(ctx, firmID, staffID, msg))
	}
	return results
}

func (d *Dispatcher) notifyOne(ctx context.Context, firmID, staffID uint, msg PushMessage) RecipientResult {
	tokens, err := d.tokens.FindDeviceTokens(ctx, firmID, staffID)
	if err != nil {
		d.logger.Errorw("failed to resolve device tokens",
			"firm_id", firmID,
			"staff_id", staffID,
			"error", err,
		)
		return RecipientResult{StaffID: staffID, Err: fmt.Errorf("resolve device tokens: %w", err)}
	}

	if len(tokens) == 0 {
		d.logger.Debugw("attendee has no registered devices, skipping",
			"firm_id", firmID,
			"staff_id", staffID,
		)
		return RecipientResult{StaffID: staffID, Skipped: true}
	}

	res, err := d.sender.SendMulticast(ctx, tokens, msg)
	if err != nil {
		d.logger.Errorw("multicast send failed",
			"firm_id", firmID,
			"staff_id", staffID,
			"tokens", len(tokens),
			"error", err,
		)
		return RecipientResult{StaffID: staffID, TokensTried: len(tokens), Err: fmt.Errorf("multicast send: %w", err)}
	}

	if res.FailureCount > 0 {
		d.logger.Warnw("multicast send had token failures",
			"firm_id", firmID,
			"staff_id", staffID,
			"succeeded", res.SuccessCount,
			"failed", res.FailureCount,
		)
	}

	return RecipientResult{
		StaffID:      staffID,
		TokensTried:  len(tokens),
		TokensFailed: res.FailureCount,
	}
}

func buildReminder(ref calendar.MatterRef) PushMessage {
	matterPath := ref.SID
	if matterPath == "" {
		matterPath = strconv.FormatUint(uint64(ref.ID), 10)
	}
	return PushMessage{
		Title: reminderTitle,
		Body:  fmt.Sprintf("No endorsement has been recorded for %s today. Tap to add one.", ref.Title),
		Data: map[string]string{
			"type": "endorsement_reminder",
			"link": fmt.Sprintf("/matters/%s/endorsements", matterPath),
		},
	}
}
