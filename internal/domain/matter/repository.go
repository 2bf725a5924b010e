package matter

import "context"

type Repository interface {
	Create(ctx context.Context, m *Matter) error
	FindByID(ctx context.Context, id uint) (*Matter, error)
	FindBySID(ctx context.Context, firmID uint, sid string) (*Matter, error)
	ListByFirm(ctx context.Context, firmID uint, limit, offset int) ([]*Matter, int64, error)
	Update(ctx context.Context, m *Matter) error
}
