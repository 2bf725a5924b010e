package usecases

import (
	"context"
	"fmt"
	"time"

	"chambers/internal/domain/endorsement"
	"chambers/internal/shared/errors"
	"chambers/internal/shared/logger"
)

// EndorsementView is an endorsement prepared for the HTTP surface: the raw
// markdown note plus its sanitized HTML rendering.
type EndorsementView struct {
	SID       string
	Date      time.Time
	AuthorID  uint
	Note      string
	NoteHTML  string
	CreatedAt time.Time
}

type ListEndorsementsUseCase struct {
	endorsements endorsement.Repository
	matters      MatterResolver
	renderer     NoteRenderer
	logger       logger.Interface
}

func NewListEndorsementsUseCase(
	endorsements endorsement.Repository,
	matters MatterResolver,
	renderer NoteRenderer,
	logger logger.Interface,
) *ListEndorsementsUseCase {
	return &ListEndorsementsUseCase{
		endorsements: endorsements,
		matters:      matters,
		renderer:     renderer,
		logger:       logger,
	}
}

// Execute lists a matter's endorsements, newest first, gated by the matter's
// access scope. A note that fails to render is returned with empty HTML
// rather than sinking the whole page.
func (uc *ListEndorsementsUseCase) Execute(ctx context.Context, firmID uint, matterSID string, actor Actor, limit, offset int) ([]EndorsementView, int64, error) {
	m, err := uc.matters.FindBySID(ctx, firmID, matterSID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to find matter: %w", err)
	}
	if m == nil {
		return nil, 0, errors.NewNotFoundError("matter not found")
	}

	if !m.CanBeAccessedBy(actor.UserID, actor.Department) {
		return nil, 0, errors.NewForbiddenError("you don't have access to this matter")
	}

	items, total, err := uc.endorsements.ListByMatter(ctx, firmID, m.ID(), limit, offset)
	if err != nil {
		uc.logger.Errorw("failed to list endorsements",
			"firm_id", firmID,
			"matter_id", m.ID(),
			"error", err,
		)
		return nil, 0, fmt.Errorf("failed to list endorsements: %w", err)
	}

	views := make([]EndorsementView, 0, len(items))
	for _, e := range items {
		html, err := uc.renderer.ToHTMLSanitized(e.Note())
		if err != nil {
			uc.logger.Warnw("failed to render endorsement note",
				"endorsement_sid", e.SID(),
				"error", err,
			)
			html = ""
		}
		views = append(views, EndorsementView{
			SID:       e.SID(),
			Date:      e.Date(),
			AuthorID:  e.AuthorID(),
			Note:      e.Note(),
			NoteHTML:  html,
			CreatedAt: e.CreatedAt(),
		})
	}

	return views, total, nil
}
