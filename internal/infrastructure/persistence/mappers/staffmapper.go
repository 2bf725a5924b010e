package mappers

import (
	"chambers/internal/domain/staff"
	"chambers/internal/infrastructure/persistence/models"
	"chambers/internal/shared/authorization"
)

type StaffMapper interface {
	ToEntity(model *models.StaffModel) (*staff.Staff, error)
	ToModel(entity *staff.Staff) *models.StaffModel
}

type staffMapperImpl struct{}

func NewStaffMapper() StaffMapper {
	return &staffMapperImpl{}
}

func (m *staffMapperImpl) ToEntity(model *models.StaffModel) (*staff.Staff, error) {
	if model == nil {
		return nil, nil
	}

	return staff.ReconstructStaff(
		model.ID,
		model.SID,
		model.FirmID,
		model.Name,
		model.Email,
		model.Department,
		authorization.ParseUserRole(model.Role),
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *staffMapperImpl) ToModel(entity *staff.Staff) *models.StaffModel {
	if entity == nil {
		return nil
	}

	return &models.StaffModel{
		ID:         entity.ID(),
		SID:        entity.SID(),
		FirmID:     entity.FirmID(),
		Email:      entity.Email(),
		Name:       entity.Name(),
		Department: entity.Department(),
		Role:       entity.Role().String(),
		CreatedAt:  entity.CreatedAt(),
		UpdatedAt:  entity.UpdatedAt(),
	}
}
