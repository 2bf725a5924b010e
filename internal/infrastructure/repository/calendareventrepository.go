package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"chambers/internal/domain/calendar"
	"chambers/internal/infrastructure/persistence/mappers"
	"chambers/internal/infrastructure/persistence/models"
	"chambers/internal/shared/biztime"
	"chambers/internal/shared/logger"
)

// CalendarEventRepository implements calendar.EventRepository on gorm.
type CalendarEventRepository struct {
	db     *gorm.DB
	mapper mappers.CalendarEventMapper
	logger logger.Interface
}

func NewCalendarEventRepository(db *gorm.DB, logger logger.Interface) *CalendarEventRepository {
	return &CalendarEventRepository{
		db:     db,
		mapper: mappers.NewCalendarEventMapper(),
		logger: logger,
	}
}

func (r *CalendarEventRepository) Create(ctx context.Context, event *calendar.Event) error {
	model, err := r.mapper.ToModel(event)
	if err != nil {
		return fmt.Errorf("failed to map calendar event: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create calendar event: %w", err)
	}

	return event.SetID(model.ID)
}

func (r *CalendarEventRepository) FindBySID(ctx context.Context, firmID uint, sid string) (*calendar.Event, error) {
	var model models.CalendarEventModel
	err := r.db.WithContext(ctx).
		Where("firm_id = ? AND sid = ?", firmID, sid).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find calendar event: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *CalendarEventRepository) ListByFirmInRange(ctx context.Context, firmID uint, window biztime.Window, limit, offset int) ([]*calendar.Event, int64, error) {
	base := r.db.WithContext(ctx).
		Model(&models.CalendarEventModel{}).
		Where("firm_id = ? AND start_at BETWEEN ? AND ?", firmID, window.Start, window.End)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count calendar events: %w", err)
	}

	var eventModels []*models.CalendarEventModel
	err := r.db.WithContext(ctx).
		Where("firm_id = ? AND start_at BETWEEN ? AND ?", firmID, window.Start, window.End).
		Order("start_at ASC").
		Limit(limit).
		Offset(offset).
		Find(&eventModels).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list calendar events: %w", err)
	}

	entities, err := r.mapper.ToEntities(eventModels)
	if err != nil {
		return nil, 0, err
	}
	return entities, total, nil
}

// FindCourtAppearancesInWindow is the reminder pass's scan: one query across
// every firm's calendar, bounded by category and start-time range.
func (r *CalendarEventRepository) FindCourtAppearancesInWindow(ctx context.Context, window biztime.Window) ([]*calendar.Event, error) {
	var eventModels []*models.CalendarEventModel
	err := r.db.WithContext(ctx).
		Where("category = ? AND start_at BETWEEN ? AND ?",
			string(calendar.CategoryCourtAppearance), window.Start, window.End).
		Order("firm_id ASC, start_at ASC").
		Find(&eventModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to scan court appearances: %w", err)
	}

	return r.mapper.ToEntities(eventModels)
}
