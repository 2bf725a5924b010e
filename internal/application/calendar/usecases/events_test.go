package usecases

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chambers/internal/domain/calendar"
	"chambers/internal/domain/matter"
	"chambers/internal/shared/biztime"
	"chambers/internal/shared/errors"
	"chambers/internal/shared/logger"
)

type fakeEventRepo struct {
	calendar.EventRepository
	createFn func(ctx context.Context, event *calendar.Event) error
	listFn   func(ctx context.Context, firmID uint, window biztime.Window, limit, offset int) ([]*calendar.Event, int64, error)
}

func (f *fakeEventRepo) Create(ctx context.Context, event *calendar.Event) error {
	return f.createFn(ctx, event)
}

func (f *fakeEventRepo) ListByFirmInRange(ctx context.Context, firmID uint, window biztime.Window, limit, offset int) ([]*calendar.Event, int64, error) {
	return f.listFn(ctx, firmID, window, limit, offset)
}

type fakeMatterResolver struct {
	findBySIDFn func(ctx context.Context, firmID uint, sid string) (*matter.Matter, error)
}

func (f *fakeMatterResolver) FindBySID(ctx context.Context, firmID uint, sid string) (*matter.Matter, error) {
	return f.findBySIDFn(ctx, firmID, sid)
}

func discardLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestCreateEvent_CourtAppearanceDenormalizesMatter(t *testing.T) {
	now := time.Now().UTC()
	m, err := matter.ReconstructMatter(7, "mat_abc", 1, "Smith v Jones", "LIT-1",
		matter.StatusOpen, matter.NewAccessScope(nil, nil), now, now)
	require.NoError(t, err)

	var created *calendar.Event
	repo := &fakeEventRepo{createFn: func(ctx context.Context, event *calendar.Event) error {
		created = event
		return nil
	}}
	matters := &fakeMatterResolver{findBySIDFn: func(ctx context.Context, firmID uint, sid string) (*matter.Matter, error) {
		assert.Equal(t, "mat_abc", sid)
		return m, nil
	}}
	uc := NewCreateEventUseCase(repo, matters, discardLogger())

	event, err := uc.Execute(context.Background(), CreateEventRequest{
		FirmID:      1,
		Category:    calendar.CategoryCourtAppearance,
		Title:       "Motion hearing",
		StartAt:     time.Date(2025, 6, 12, 9, 0, 0, 0, time.UTC),
		MatterSID:   "mat_abc",
		AttendeeIDs: []uint{4},
	})

	require.NoError(t, err)
	require.NotNil(t, created)
	require.NotNil(t, event.MatterRef())
	assert.Equal(t, uint(7), event.MatterRef().ID)
	assert.Equal(t, "mat_abc", event.MatterRef().SID)
	assert.Equal(t, "Smith v Jones", event.MatterRef().Title)
}

func TestCreateEvent_CourtAppearanceWithoutMatterRejected(t *testing.T) {
	uc := NewCreateEventUseCase(&fakeEventRepo{}, &fakeMatterResolver{}, discardLogger())

	_, err := uc.Execute(context.Background(), CreateEventRequest{
		FirmID:      1,
		Category:    calendar.CategoryCourtAppearance,
		Title:       "Motion hearing",
		StartAt:     time.Now(),
		AttendeeIDs: []uint{4},
	})

	assert.True(t, errors.IsValidationError(err))
}

func TestCreateEvent_UnknownMatter(t *testing.T) {
	matters := &fakeMatterResolver{findBySIDFn: func(ctx context.Context, firmID uint, sid string) (*matter.Matter, error) {
		return nil, nil
	}}
	uc := NewCreateEventUseCase(&fakeEventRepo{}, matters, discardLogger())

	_, err := uc.Execute(context.Background(), CreateEventRequest{
		FirmID:      1,
		Category:    calendar.CategoryCourtAppearance,
		Title:       "Motion hearing",
		StartAt:     time.Now(),
		MatterSID:   "mat_missing",
		AttendeeIDs: []uint{4},
	})

	assert.True(t, errors.IsNotFoundError(err))
}

func TestCreateEvent_InternalEventNeedsNoMatter(t *testing.T) {
	repo := &fakeEventRepo{createFn: func(ctx context.Context, event *calendar.Event) error {
		return nil
	}}
	uc := NewCreateEventUseCase(repo, &fakeMatterResolver{}, discardLogger())

	event, err := uc.Execute(context.Background(), CreateEventRequest{
		FirmID:   1,
		Category: calendar.CategoryInternal,
		Title:    "Partners meeting",
		StartAt:  time.Now(),
	})

	require.NoError(t, err)
	assert.Nil(t, event.MatterRef())
}

func TestListEvents_ValidatesRange(t *testing.T) {
	uc := NewListEventsUseCase(&fakeEventRepo{}, discardLogger())

	from := time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC)
	_, _, err := uc.Execute(context.Background(), 1, from, to, 20, 0)

	assert.True(t, errors.IsValidationError(err))
}

func TestListEvents_PassesWindowThrough(t *testing.T) {
	var got biztime.Window
	repo := &fakeEventRepo{listFn: func(ctx context.Context, firmID uint, window biztime.Window, limit, offset int) ([]*calendar.Event, int64, error) {
		got = window
		return nil, 0, nil
	}}
	uc := NewListEventsUseCase(repo, discardLogger())

	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 30, 23, 59, 59, 0, time.UTC)
	_, _, err := uc.Execute(context.Background(), 1, from, to, 20, 0)

	require.NoError(t, err)
	assert.Equal(t, from, got.Start)
	assert.Equal(t, to, got.End)
}
