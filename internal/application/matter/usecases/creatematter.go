package usecases

import (
	"context"
	"fmt"

	"chambers/internal/domain/matter"
	"chambers/internal/shared/logger"
)

type CreateMatterRequest struct {
	FirmID              uint
	Title               string
	ReferenceNumber     string
	AssignedUserIDs     []uint
	AssignedDepartments []string
}

type CreateMatterUseCase struct {
	repo   matter.Repository
	logger logger.Interface
}

func NewCreateMatterUseCase(repo matter.Repository, logger logger.Interface) *CreateMatterUseCase {
	return &CreateMatterUseCase{
		repo:   repo,
		logger: logger,
	}
}

func (uc *CreateMatterUseCase) Execute(ctx context.Context, req CreateMatterRequest) (*matter.Matter, error) {
	scope := matter.NewAccessScope(req.AssignedUserIDs, req.AssignedDepartments)

	m, err := matter.NewMatter(req.FirmID, req.Title, req.ReferenceNumber, scope)
	if err != nil {
		return nil, fmt.Errorf("invalid matter: %w", err)
	}

	if err := uc.repo.Create(ctx, m); err != nil {
		uc.logger.Errorw("failed to create matter", "firm_id", req.FirmID, "error", err)
		return nil, fmt.Errorf("failed to create matter: %w", err)
	}

	uc.logger.Infow("matter created", "firm_id", req.FirmID, "matter_sid", m.SID())
	return m, nil
}
