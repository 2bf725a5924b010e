package mappers

import (
	"encoding/json"
	"fmt"
	"time"

	"chambers/internal/domain/calendar"
	"chambers/internal/infrastructure/persistence/models"
)

// CalendarEventMapper converts between calendar events and persistence models.
type CalendarEventMapper interface {
	ToEntity(model *models.CalendarEventModel) (*calendar.Event, error)
	ToModel(entity *calendar.Event) (*models.CalendarEventModel, error)
	ToEntities(models []*models.CalendarEventModel) ([]*calendar.Event, error)
}

type calendarEventMapperImpl struct{}

func NewCalendarEventMapper() CalendarEventMapper {
	return &calendarEventMapperImpl{}
}

func (m *calendarEventMapperImpl) ToEntity(model *models.CalendarEventModel) (*calendar.Event, error) {
	if model == nil {
		return nil, nil
	}

	var attendeeIDs []uint
	if len(model.AttendeeIDs) > 0 {
		if err := json.Unmarshal(model.AttendeeIDs, &attendeeIDs); err != nil {
			return nil, fmt.Errorf("failed to unmarshal attendee IDs: %w", err)
		}
	}

	var ref *calendar.MatterRef
	if model.MatterID != nil && *model.MatterID != 0 {
		ref = &calendar.MatterRef{ID: *model.MatterID}
		if model.MatterSID != nil {
			ref.SID = *model.MatterSID
		}
		if model.MatterTitle != nil {
			ref.Title = *model.MatterTitle
		}
	}

	var endAt time.Time
	if model.EndAt != nil {
		endAt = *model.EndAt
	}

	return calendar.ReconstructEvent(
		model.ID,
		model.SID,
		model.FirmID,
		calendar.Category(model.Category),
		model.Title,
		model.StartAt,
		endAt,
		ref,
		attendeeIDs,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *calendarEventMapperImpl) ToModel(entity *calendar.Event) (*models.CalendarEventModel, error) {
	if entity == nil {
		return nil, nil
	}

	attendeeIDs, err := marshalJSON(entity.AttendeeIDs())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal attendee IDs: %w", err)
	}

	model := &models.CalendarEventModel{
		ID:          entity.ID(),
		SID:         entity.SID(),
		FirmID:      entity.FirmID(),
		Category:    string(entity.Category()),
		Title:       entity.Title(),
		StartAt:     entity.StartAt(),
		AttendeeIDs: attendeeIDs,
		CreatedAt:   entity.CreatedAt(),
		UpdatedAt:   entity.UpdatedAt(),
	}

	if endAt := entity.EndAt(); !endAt.IsZero() {
		model.EndAt = &endAt
	}
	if ref := entity.MatterRef(); ref != nil {
		model.MatterID = &ref.ID
		model.MatterSID = &ref.SID
		model.MatterTitle = &ref.Title
	}

	return model, nil
}

func (m *calendarEventMapperImpl) ToEntities(eventModels []*models.CalendarEventModel) ([]*calendar.Event, error) {
	entities := make([]*calendar.Event, 0, len(eventModels))
	for _, model := range eventModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
