package repo

import (
	"context"

	"github.com/Natali-Skv/forum_tree/internal/models"
	"github.com/Natali-Skv/forum_tree/internal/store"
	"github.com/Natali-Skv/forum_tree/internal/tools/errors"
	userRepo "github.com/Natali-Skv/forum_tree/internal/user"
)

type Repo struct {
	store store.Store
}

func NewRepo(s store.Store) *Repo {
	return &Repo{store: s}
}

var _ userRepo.Repo = (*Repo)(nil)

func (r *Repo) Create(ctx context.Context, user models.User) (*models.User, error) {
	err := r.store.InTx(ctx, func(tx store.Tx) error {
		return tx.CreateUser(ctx, user)
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *Repo) GetByEmailOrNick(ctx context.Context, user models.User) ([]models.User, error) {
	var users []models.User
	err := r.store.InTx(ctx, func(tx store.Tx) error {
		var err error
		users, err = tx.UsersByNickOrEmail(ctx, user.Nick, user.Email)
		return err
	})
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (r *Repo) GetByNick(ctx context.Context, nick string) (*models.User, error) {
	var user *models.User
	err := r.store.InTx(ctx, func(tx store.Tx) error {
		var err error
		user, err = tx.UserByNick(ctx, nick)
		return err
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *Repo) GetByEmail(ctx context.Context, email string) (string, error) {
	users, err := r.GetByEmailOrNick(ctx, models.User{Email: email})
	if err != nil {
		return "", err
	}
	if len(users) == 0 {
		return "", errors.ErrUserNotFound
	}
	return users[0].Nick, nil
}

// Update replaces the non-empty fields of the profile.
func (r *Repo) Update(ctx context.Context, user models.User) (*models.User, error) {
	var updated *models.User
	err := r.store.InTx(ctx, func(tx store.Tx) error {
		var err error
		updated, err = tx.UpdateUser(ctx, user)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
