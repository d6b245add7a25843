package ports

import (
	"context"

	"github.com/commercebook/commerce-api/internal/core/domain"
)

// UserRepository defines persistence operations on the users collection.
type UserRepository interface {
	// FindByEmail returns domain.ErrUserNotFound when no document matches.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// Insert stores the profile document as-is and returns the new id in hex.
	Insert(ctx context.Context, profile map[string]any) (string, error)
}
