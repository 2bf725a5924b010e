package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"chambers/internal/domain/staff"
	"chambers/internal/infrastructure/persistence/mappers"
	"chambers/internal/infrastructure/persistence/models"
	"chambers/internal/shared/logger"
)

// StaffRepository implements staff.Repository on gorm.
type StaffRepository struct {
	db     *gorm.DB
	mapper mappers.StaffMapper
	logger logger.Interface
}

func NewStaffRepository(db *gorm.DB, logger logger.Interface) *StaffRepository {
	return &StaffRepository{
		db:     db,
		mapper: mappers.NewStaffMapper(),
		logger: logger,
	}
}

func (r *StaffRepository) Create(ctx context.Context, s *staff.Staff) error {
	model := r.mapper.ToModel(s)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create staff: %w", err)
	}
	return s.SetID(model.ID)
}

func (r *StaffRepository) FindByID(ctx context.Context, id uint) (*staff.Staff, error) {
	var model models.StaffModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find staff: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *StaffRepository) FindByEmail(ctx context.Context, firmID uint, email string) (*staff.Staff, error) {
	var model models.StaffModel
	err := r.db.WithContext(ctx).
		Where("firm_id = ? AND email = ?", firmID, email).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find staff: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

// FindDeviceTokens returns the staff member's registered tokens, possibly
// empty. The firm scope guards against cross-tenant token lookups.
func (r *StaffRepository) FindDeviceTokens(ctx context.Context, firmID, staffID uint) ([]string, error) {
	var tokens []string
	err := r.db.WithContext(ctx).
		Model(&models.DeviceTokenModel{}).
		Joins("JOIN staff ON staff.id = staff_device_tokens.staff_id").
		Where("staff.firm_id = ? AND staff_device_tokens.staff_id = ?", firmID, staffID).
		Pluck("staff_device_tokens.token", &tokens).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find device tokens: %w", err)
	}
	return tokens, nil
}

func (r *StaffRepository) RegisterDeviceToken(ctx context.Context, firmID, staffID uint, token string) error {
	member, err := r.FindByID(ctx, staffID)
	if err != nil {
		return err
	}
	if member == nil || member.FirmID() != firmID {
		return fmt.Errorf("staff %d not found in firm %d", staffID, firmID)
	}

	model := &models.DeviceTokenModel{
		StaffID: staffID,
		Token:   token,
	}
	err = r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(model).Error
	if err != nil {
		return fmt.Errorf("failed to register device token: %w", err)
	}
	return nil
}

func (r *StaffRepository) RemoveDeviceToken(ctx context.Context, firmID, staffID uint, token string) error {
	member, err := r.FindByID(ctx, staffID)
	if err != nil {
		return err
	}
	if member == nil || member.FirmID() != firmID {
		return fmt.Errorf("staff %d not found in firm %d", staffID, firmID)
	}

	err = r.db.WithContext(ctx).
		Where("staff_id = ? AND token = ?", staffID, token).
		Delete(&models.DeviceTokenModel{}).Error
	if err != nil {
		return fmt.Errorf("failed to remove device token: %w", err)
	}
	return nil
}
