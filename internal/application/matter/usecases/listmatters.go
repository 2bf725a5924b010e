package usecases

import (
	"context"
	"fmt"

	"chambers/internal/domain/matter"
	"chambers/internal/shared/logger"
)

type ListMattersUseCase struct {
	repo   matter.Repository
	logger logger.Interface
}

func NewListMattersUseCase(repo matter.Repository, logger logger.Interface) *ListMattersUseCase {
	return &ListMattersUseCase{
		repo:   repo,
		logger: logger,
	}
}

// Execute lists the firm's matters with the access scope applied per row.
// Restricted matters the actor cannot see are dropped from the page; the
// returned total still counts every matter in the firm, so page arithmetic
// stays stable while contents are scoped.
func (uc *ListMattersUseCase) Execute(ctx context.Context, firmID uint, actor Actor, limit, offset int) ([]*matter.Matter, int64, error) {
	matters, total, err := uc.repo.ListByFirm(ctx, firmID, limit, offset)
	if err != nil {
		uc.logger.Errorw("failed to list matters", "firm_id", firmID, "error", err)
		return nil, 0, fmt.Errorf("failed to list matters: %w", err)
	}

	visible := make([]*matter.Matter, 0, len(matters))
	for _, m := range matters {
		if m.CanBeAccessedBy(actor.UserID, actor.Department) {
			visible = append(visible, m)
		}
	}

	return visible, total, nil
}
