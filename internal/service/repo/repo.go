package repo

import (
	"context"

	"github.com/Natali-Skv/forum_tree/internal/models"
	"github.com/Natali-Skv/forum_tree/internal/service"
	"github.com/Natali-Skv/forum_tree/internal/store"
)

type Repo struct {
	store store.Store
}

func NewRepo(s store.Store) *Repo {
	return &Repo{store: s}
}

var _ service.Repo = (*Repo)(nil)

func (r *Repo) Status(ctx context.Context) (*models.Status, error) {
	var status *models.Status
	err := r.store.InTx(ctx, func(tx store.Tx) error {
		var err error
		status, err = tx.Status(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return status, nil
}

func (r *Repo) TruncateDB(ctx context.Context) error {
	return r.store.InTx(ctx, func(tx store.Tx) error {
		return tx.Truncate(ctx)
	})
}
