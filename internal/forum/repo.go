package forum

import (
	"context"
	"time"

	"github.com/Natali-Skv/forum_tree/internal/models"
	"github.com/Natali-Skv/forum_tree/internal/pagination"
)

type Repo interface {
	Create(ctx context.Context, forum models.Forum) (*models.Forum, error)
	GetBySlug(ctx context.Context, slug string) (*models.Forum, error)
	// GetForumThreads pages by creation time; since is inclusive.
	GetForumThreads(ctx context.Context, slug string, cur pagination.Cursor[time.Time]) ([]models.Thread, error)
	// GetForumUsers pages by case-folded nickname; since is exclusive.
	GetForumUsers(ctx context.Context, slug string, cur pagination.Cursor[string]) ([]models.User, error)
}
