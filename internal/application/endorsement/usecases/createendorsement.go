package usecases

import (
	"context"
	"fmt"
	"time"

	"chambers/internal/domain/endorsement"
	"chambers/internal/shared/errors"
	"chambers/internal/shared/logger"
)

type CreateEndorsementRequest struct {
	FirmID    uint
	MatterSID string
	Date      time.Time
	AuthorID  uint
	Note      string
}

type CreateEndorsementUseCase struct {
	endorsements endorsement.Repository
	matters      MatterResolver
	logger       logger.Interface
}

func NewCreateEndorsementUseCase(
	endorsements endorsement.Repository,
	matters MatterResolver,
	logger logger.Interface,
) *CreateEndorsementUseCase {
	return &CreateEndorsementUseCase{
		endorsements: endorsements,
		matters:      matters,
		logger:       logger,
	}
}

// Execute records an endorsement against a matter. The author must be able to
// see the matter under its access scope; writing is not a wider right than
// reading.
func (uc *CreateEndorsementUseCase) Execute(ctx context.Context, req CreateEndorsementRequest, actor Actor) (*endorsement.Endorsement, error) {
	m, err := uc.matters.FindBySID(ctx, req.FirmID, req.MatterSID)
	if err != nil {
		return nil, fmt.Errorf("failed to find matter: %w", err)
	}
	if m == nil {
		return nil, errors.NewNotFoundError("matter not found")
	}

	if !m.CanBeAccessedBy(actor.UserID, actor.Department) {
		uc.logger.Warnw("endorsement write denied",
			"firm_id", req.FirmID,
			"matter_sid", req.MatterSID,
			"user_id", actor.UserID,
		)
		return nil, errors.NewForbiddenError("you don't have access to this matter")
	}

	e, err := endorsement.NewEndorsement(req.FirmID, m.ID(), req.Date, req.AuthorID, req.Note)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.endorsements.Create(ctx, e); err != nil {
		uc.logger.Errorw("failed to create endorsement",
			"firm_id", req.FirmID,
			"matter_id", m.ID(),
			"error", err,
		)
		return nil, fmt.Errorf("failed to create endorsement: %w", err)
	}

	uc.logger.Infow("endorsement created",
		"firm_id", req.FirmID,
		"matter_id", m.ID(),
		"endorsement_sid", e.SID(),
	)
	return e, nil
}
