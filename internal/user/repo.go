package user

import (
	"context"

	"github.com/Natali-Skv/forum_tree/internal/models"
)

type Repo interface {
	Create(ctx context.Context, user models.User) (*models.User, error)
	// GetByEmailOrNick returns the users that a Create of user conflicts with.
	GetByEmailOrNick(ctx context.Context, user models.User) ([]models.User, error)
	GetByNick(ctx context.Context, nick string) (*models.User, error)
	// GetByEmail returns the nickname registered with email.
	GetByEmail(ctx context.Context, email string) (string, error)
	Update(ctx context.Context, user models.User) (*models.User, error)
}
