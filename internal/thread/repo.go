package thread

import (
	"context"

	"github.com/Natali-Skv/forum_tree/internal/models"
)

type Repo interface {
	Create(ctx context.Context, thread models.Thread) (*models.Thread, error)
	GetBySlugOrId(ctx context.Context, ref models.ThreadRef) (*models.Thread, error)
	Vote(ctx context.Context, ref models.ThreadRef, vote models.Vote) (*models.Thread, error)
	UpdateThread(ctx context.Context, ref models.ThreadRef, title, message string) (*models.Thread, error)
}
