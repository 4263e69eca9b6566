package ports

import (
	"context"

	"github.com/sm8ta/motodash/internal/core/domain"
)

// Repository persists one resource type. Insert is read-your-writes; Patch
// touches only the named columns and returns domain.ErrNotFound when no row
// matched; Delete of a missing id is not an error.
type Repository[T any] interface {
	List(ctx context.Context) ([]*T, error)
	Get(ctx context.Context, id string) (*T, error)
	Insert(ctx context.Context, fields domain.Fields) error
	Patch(ctx context.Context, id string, fields domain.Fields) error
	Delete(ctx context.Context, id string) error
}

type ResourceService[T any, I domain.Input] interface {
	Resource() string
	NewInput() I
	List(ctx context.Context) ([]*T, error)
	Get(ctx context.Context, id string) (*T, error)
	Create(ctx context.Context, in I) (*T, error)
	Update(ctx context.Context, id string, in I) (*T, error)
	Delete(ctx context.Context, id string) error
}
