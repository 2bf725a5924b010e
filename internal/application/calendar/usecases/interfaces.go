package usecases

import (
	"context"

	"chambers/internal/domain/matter"
)

// MatterResolver is the slice of matter.Repository event creation needs to
// resolve a court appearance's matter reference.
type MatterResolver interface {
	FindBySID(ctx context.Context, firmID uint, sid string) (*matter.Matter, error)
}
