package staff

import "context"

type Repository interface {
	Create(ctx context.Context, s *Staff) error
	FindByID(ctx context.Context, id uint) (*Staff, error)
	FindByEmail(ctx context.Context, firmID uint, email string) (*Staff, error)

	// FindDeviceTokens returns the registered push tokens for a staff member,
	// possibly empty. A staff member with no tokens is simply unreachable, not
	// an error.
	FindDeviceTokens(ctx context.Context, firmID, staffID uint) ([]string, error)
	RegisterDeviceToken(ctx context.Context, firmID, staffID uint, token string) error
	RemoveDeviceToken(ctx context.Context, firmID, staffID uint, token string) error
}
