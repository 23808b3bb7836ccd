package service

import (
	"context"

	"github.com/Natali-Skv/forum_tree/internal/models"
)

type Repo interface {
	Status(ctx context.Context) (*models.Status, error)
	TruncateDB(ctx context.Context) error
}
