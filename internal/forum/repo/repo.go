package repo

import (
	"context"
	"time"

	forumRepo "github.com/Natali-Skv/forum_tree/internal/forum"
	"github.com/Natali-Skv/forum_tree/internal/models"
	"github.com/Natali-Skv/forum_tree/internal/pagination"
	"github.com/Natali-Skv/forum_tree/internal/store"
)

type Repo struct {
	store store.Store
}

func NewRepo(s store.Store) *Repo {
	return &Repo{store: s}
}

var _ forumRepo.Repo = (*Repo)(nil)

// Create stores the forum under the owner's canonical nickname.
func (r *Repo) Create(ctx context.Context, forum models.Forum) (*models.Forum, error) {
	err := r.store.InTx(ctx, func(tx store.Tx) error {
		owner, err := tx.UserByNick(ctx, forum.UserNick)
		if err != nil {
			return err
		}
		forum.UserNick = owner.Nick
		forum.Posts, forum.Threads = 0, 0
		return tx.CreateForum(ctx, forum)
	})
	if err != nil {
		return nil, err
	}
	return &forum, nil
}

func (r *Repo) GetBySlug(ctx context.Context, slug string) (*models.Forum, error) {
	var forum *models.Forum
	err := r.store.InTx(ctx, func(tx store.Tx) error {
		var err error
		forum, err = tx.ForumBySlug(ctx, slug)
		return err
	})
	if err != nil {
		return nil, err
	}
	return forum, nil
}

func (r *Repo) GetForumThreads(ctx context.Context, slug string, cur pagination.Cursor[time.Time]) ([]models.Thread, error) {
	threads := []models.Thread{}
	err := r.store.InTx(ctx, func(tx store.Tx) error {
		forum, err := tx.ForumBySlug(ctx, slug)
		if err != nil {
			return err
		}
		found, err := tx.ForumThreads(ctx, store.ThreadScan{
			Forum: forum.Slug,
			Since: cur.Since,
			Desc:  cur.Desc,
			Limit: cur.Limit,
		})
		threads = append(threads, found...)
		return err
	})
	if err != nil {
		return nil, err
	}
	return threads, nil
}

func (r *Repo) GetForumUsers(ctx context.Context, slug string, cur pagination.Cursor[string]) ([]models.User, error) {
	users := []models.User{}
	err := r.store.InTx(ctx, func(tx store.Tx) error {
		forum, err := tx.ForumBySlug(ctx, slug)
		if err != nil {
			return err
		}
		found, err := tx.ForumUsers(ctx, store.UserScan{
			Forum: forum.Slug,
			Since: cur.Since,
			Desc:  cur.Desc,
			Limit: cur.Limit,
		})
		users = append(users, found...)
		return err
	})
	if err != nil {
		return nil, err
	}
	return users, nil
}
