package usecases

import (
	"context"
	"fmt"

	"chambers/internal/domain/matter"
	"chambers/internal/shared/errors"
	"chambers/internal/shared/logger"
)

type GetMatterUseCase struct {
	repo   matter.Repository
	logger logger.Interface
}

func NewGetMatterUseCase(repo matter.Repository, logger logger.Interface) *GetMatterUseCase {
	return &GetMatterUseCase{
		repo:   repo,
		logger: logger,
	}
}

// Execute fetches a matter and enforces its access scope for the actor.
// Denial is an explicit authorization failure, never a silent empty result.
func (uc *GetMatterUseCase) Execute(ctx context.Context, firmID uint, sid string, actor Actor) (*matter.Matter, error) {
	m, err := uc.repo.FindBySID(ctx, firmID, sid)
	if err != nil {
		return nil, fmt.Errorf("failed to find matter: %w", err)
	}
	if m == nil {
		return nil, errors.NewNotFoundError("matter not found")
	}

	if !m.CanBeAccessedBy(actor.UserID, actor.Department) {
		uc.logger.Warnw("matter access denied",
			"firm_id", firmID,
			"matter_sid", sid,
			"user_id", actor.UserID,
		)
		return nil, errors.NewForbiddenError("you don't have access to this matter")
	}

	return m, nil
}
