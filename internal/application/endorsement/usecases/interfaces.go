package usecases

import (
	"context"

	"chambers/internal/domain/matter"
)

// Actor is the authenticated staff identity a request acts as.
type Actor struct {
	UserID     uint
	Department string
}

// MatterResolver narrows matter.Repository to what the endorsement use cases
// need: resolving a public matter identifier inside a firm.
type MatterResolver interface {
	FindBySID(ctx context.Context, firmID uint, sid string) (*matter.Matter, error)
}

// NoteRenderer turns an endorsement's markdown note into sanitized HTML.
type NoteRenderer interface {
	ToHTMLSanitized(markdown string) (string, error)
}
