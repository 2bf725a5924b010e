package endorsement

import (
	"context"

	"chambers/internal/shared/biztime"
)

type Repository interface {
	Create(ctx context.Context, e *Endorsement) error
	ListByMatter(ctx context.Context, firmID, matterID uint, limit, offset int) ([]*Endorsement, int64, error)

	// ExistsForMatterInWindow probes for at least one endorsement dated inside
	// the window for the given firm and matter. Implementations must bound the
	// query to a single result.
	ExistsForMatterInWindow(ctx context.Context, firmID, matterID uint, window biztime.Window) (bool, error)
}
