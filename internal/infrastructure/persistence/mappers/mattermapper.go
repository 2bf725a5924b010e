package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"chambers/internal/domain/matter"
	"chambers/internal/infrastructure/persistence/models"
)

// MatterMapper converts between matter domain entities and persistence models.
type MatterMapper interface {
	ToEntity(model *models.MatterModel) (*matter.Matter, error)
	ToModel(entity *matter.Matter) (*models.MatterModel, error)
	ToEntities(models []*models.MatterModel) ([]*matter.Matter, error)
}

type matterMapperImpl struct{}

func NewMatterMapper() MatterMapper {
	return &matterMapperImpl{}
}

func (m *matterMapperImpl) ToEntity(model *models.MatterModel) (*matter.Matter, error) {
	if model == nil {
		return nil, nil
	}

	userIDs, err := unmarshalUintSet(model.AssignedUserIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal assigned user IDs: %w", err)
	}
	departments, err := unmarshalStringSet(model.AssignedDepartments)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal assigned departments: %w", err)
	}

	return matter.ReconstructMatter(
		model.ID,
		model.SID,
		model.FirmID,
		model.Title,
		model.ReferenceNumber,
		matter.Status(model.Status),
		matter.NewAccessScope(userIDs, departments),
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *matterMapperImpl) ToModel(entity *matter.Matter) (*models.MatterModel, error) {
	if entity == nil {
		return nil, nil
	}

	scope := entity.AccessScope()
	userIDs, err := marshalJSON(scope.AssignedUserIDs())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal assigned user IDs: %w", err)
	}
	departments, err := marshalJSON(scope.AssignedDepartments())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal assigned departments: %w", err)
	}

	return &models.MatterModel{
		ID:                  entity.ID(),
		SID:                 entity.SID(),
		FirmID:              entity.FirmID(),
		Title:               entity.Title(),
		ReferenceNumber:     entity.ReferenceNumber(),
		Status:              string(entity.Status()),
		AssignedUserIDs:     userIDs,
		AssignedDepartments: departments,
		CreatedAt:           entity.CreatedAt(),
		UpdatedAt:           entity.UpdatedAt(),
	}, nil
}

func (m *matterMapperImpl) ToEntities(matterModels []*models.MatterModel) ([]*matter.Matter, error) {
	entities := make([]*matter.Matter, 0, len(matterModels))
	for _, model := range matterModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

func marshalJSON(v interface{}) (datatypes.JSON, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(data), nil
}

func unmarshalUintSet(data datatypes.JSON) ([]uint, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var out []uint
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func unmarshalStringSet(data datatypes.JSON) ([]string, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var out []string
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}
