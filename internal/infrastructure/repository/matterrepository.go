package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"chambers/internal/domain/matter"
	"chambers/internal/infrastructure/persistence/mappers"
	"chambers/internal/infrastructure/persistence/models"
	"chambers/internal/shared/logger"
)

// MatterRepository implements matter.Repository on gorm.
type MatterRepository struct {
	db     *gorm.DB
	mapper mappers.MatterMapper
	logger logger.Interface
}

func NewMatterRepository(db *gorm.DB, logger logger.Interface) *MatterRepository {
	return &MatterRepository{
		db:     db,
		mapper: mappers.NewMatterMapper(),
		logger: logger,
	}
}

func (r *MatterRepository) Create(ctx context.Context, m *matter.Matter) error {
	model, err := r.mapper.ToModel(m)
	if err != nil {
		return fmt.Errorf("failed to map matter: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create matter: %w", err)
	}

	return m.SetID(model.ID)
}

func (r *MatterRepository) FindByID(ctx context.Context, id uint) (*matter.Matter, error) {
	var model models.MatterModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find matter: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *MatterRepository) FindBySID(ctx context.Context, firmID uint, sid string) (*matter.Matter, error) {
	var model models.MatterModel
	err := r.db.WithContext(ctx).
		Where("firm_id = ? AND sid = ?", firmID, sid).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find matter: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *MatterRepository) ListByFirm(ctx context.Context, firmID uint, limit, offset int) ([]*matter.Matter, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).
		Model(&models.MatterModel{}).
		Where("firm_id = ?", firmID).
		Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count matters: %w", err)
	}

	var matterModels []*models.MatterModel
	err := r.db.WithContext(ctx).
		Where("firm_id = ?", firmID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&matterModels).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list matters: %w", err)
	}

	entities, err := r.mapper.ToEntities(matterModels)
	if err != nil {
		return nil, 0, err
	}
	return entities, total, nil
}

func (r *MatterRepository) Update(ctx context.Context, m *matter.Matter) error {
	model, err := r.mapper.ToModel(m)
	if err != nil {
		return fmt.Errorf("failed to map matter: %w", err)
	}

	result := r.db.WithContext(ctx).
		Model(&models.MatterModel{}).
		Where("id = ?", m.ID()).
		Updates(map[string]interface{}{
			"title":                model.Title,
			"reference_number":     model.ReferenceNumber,
			"status":               model.Status,
			"assigned_user_ids":    model.AssignedUserIDs,
			"assigned_departments": model.AssignedDepartments,
			"updated_at":           model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update matter: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("matter %d not found", m.ID())
	}
	return nil
}
