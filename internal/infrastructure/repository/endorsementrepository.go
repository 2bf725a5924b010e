package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"chambers/internal/domain/endorsement"
	"chambers/internal/infrastructure/persistence/mappers"
	"chambers/internal/infrastructure/persistence/models"
	"chambers/internal/shared/biztime"
	"chambers/internal/shared/logger"
)

// EndorsementRepository implements endorsement.Repository on gorm.
type EndorsementRepository struct {
	db     *gorm.DB
	mapper mappers.EndorsementMapper
	logger logger.Interface
}

func NewEndorsementRepository(db *gorm.DB, logger logger.Interface) *EndorsementRepository {
	return &EndorsementRepository{
		db:     db,
		mapper: mappers.NewEndorsementMapper(),
		logger: logger,
	}
}

func (r *EndorsementRepository) Create(ctx context.Context, e *endorsement.Endorsement) error {
	model := r.mapper.ToModel(e)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create endorsement: %w", err)
	}
	return e.SetID(model.ID)
}

func (r *EndorsementRepository) ListByMatter(ctx context.Context, firmID, matterID uint, limit, offset int) ([]*endorsement.Endorsement, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).
		Model(&models.EndorsementModel{}).
		Where("firm_id = ? AND matter_id = ?", firmID, matterID).
		Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count endorsements: %w", err)
	}

	var endorsementModels []*models.EndorsementModel
	err := r.db.WithContext(ctx).
		Where("firm_id = ? AND matter_id = ?", firmID, matterID).
		Order("date DESC").
		Limit(limit).
		Offset(offset).
		Find(&endorsementModels).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list endorsements: %w", err)
	}

	entities, err := r.mapper.ToEntities(endorsementModels)
	if err != nil {
		return nil, 0, err
	}
	return entities, total, nil
}

// ExistsForMatterInWindow probes for one endorsement dated inside the window.
// The query is bounded to a single row regardless of how many exist.
func (r *EndorsementRepository) ExistsForMatterInWindow(ctx context.Context, firmID, matterID uint, window biztime.Window) (bool, error) {
	var probe []int
	err := r.db.WithContext(ctx).
		Model(&models.EndorsementModel{}).
		Select("1").
		Where("firm_id = ? AND matter_id = ? AND date BETWEEN ? AND ?",
			firmID, matterID, window.Start, window.End).
		Limit(1).
		Find(&probe).Error
	if err != nil {
		return false, fmt.Errorf("failed to check endorsement existence: %w", err)
	}
	return len(probe) > 0, nil
}
