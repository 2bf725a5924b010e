package mappers

import (
	"chambers/internal/domain/endorsement"
	"chambers/internal/infrastructure/persistence/models"
)

type EndorsementMapper interface {
	ToEntity(model *models.EndorsementModel) (*endorsement.Endorsement, error)
	ToModel(entity *endorsement.Endorsement) *models.EndorsementModel
	ToEntities(models []*models.EndorsementModel) ([]*endorsement.Endorsement, error)
}

type endorsementMapperImpl struct{}

func NewEndorsementMapper() EndorsementMapper {
	return &endorsementMapperImpl{}
}

func (m *endorsementMapperImpl) ToEntity(model *models.EndorsementModel) (*endorsement.Endorsement, error) {
	if model == nil {
		return nil, nil
	}

	return endorsement.ReconstructEndorsement(
		model.ID,
		model.SID,
		model.FirmID,
		model.MatterID,
		model.Date,
		model.AuthorID,
		model.Note,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *endorsementMapperImpl) ToModel(entity *endorsement.Endorsement) *models.EndorsementModel {
	if entity == nil {
		return nil
	}

	return &models.EndorsementModel{
		ID:        entity.ID(),
		SID:       entity.SID(),
		FirmID:    entity.FirmID(),
		MatterID:  entity.MatterID(),
		Date:      entity.Date(),
		AuthorID:  entity.AuthorID(),
		Note:      entity.Note(),
		CreatedAt: entity.CreatedAt(),
		UpdatedAt: entity.UpdatedAt(),
	}
}

func (m *endorsementMapperImpl) ToEntities(endorsementModels []*models.EndorsementModel) ([]*endorsement.Endorsement, error) {
	entities := make([]*endorsement.Endorsement, 0, len(endorsementModels))
	for _, model := range endorsementModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
