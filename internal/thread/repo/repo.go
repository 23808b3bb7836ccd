package repo

import (
	"context"
	"time"

	"github.com/Natali-Skv/forum_tree/internal/aggregate"
	"github.com/Natali-Skv/forum_tree/internal/models"
	"github.com/Natali-Skv/forum_tree/internal/store"
	threadRepo "github.com/Natali-Skv/forum_tree/internal/thread"
	"github.com/Natali-Skv/forum_tree/internal/tools/errors"
	"github.com/Natali-Skv/forum_tree/internal/vote"
	"github.com/go-openapi/strfmt"
)

type Repo struct {
	store  store.Store
	ledger *vote.Ledger
	now    func() time.Time
}

func NewRepo(s store.Store) *Repo {
	return &Repo{store: s, ledger: vote.NewLedger(s), now: time.Now}
}

var _ threadRepo.Repo = (*Repo)(nil)

// Create stores the thread under the canonical forum slug and author
// nickname. A slug that would read back as a thread id is rejected.
func (r *Repo) Create(ctx context.Context, thread models.Thread) (*models.Thread, error) {
	if thread.Slug != "" && models.IsNumericSlug(thread.Slug) {
		return nil, errors.ErrNumericSlug
	}
	err := r.store.InTx(ctx, func(tx store.Tx) error {
		author, err := tx.UserByNick(ctx, thread.AuthorNick)
		if err != nil {
			return err
		}
		forum, err := tx.ForumBySlug(ctx, thread.ForumSlug)
		if err != nil {
			return err
		}
		thread.AuthorNick = author.Nick
		thread.ForumSlug = forum.Slug
		thread.Votes = 0
		if time.Time(thread.Created).IsZero() {
			thread.Created = strfmt.DateTime(r.now().UTC().Truncate(time.Millisecond))
		}

		if thread.Id, err = tx.CreateThread(ctx, thread); err != nil {
			return err
		}
		return aggregate.ThreadCreated(ctx, tx, forum.Slug, author.Nick)
	})
	if err != nil {
		return nil, err
	}
	return &thread, nil
}

func (r *Repo) GetBySlugOrId(ctx context.Context, ref models.ThreadRef) (*models.Thread, error) {
	var thread *models.Thread
	err := r.store.InTx(ctx, func(tx store.Tx) error {
		var err error
		thread, err = tx.Thread(ctx, ref, false)
		return err
	})
	if err != nil {
		return nil, err
	}
	return thread, nil
}

// UpdateThread replaces the non-empty fields.
func (r *Repo) UpdateThread(ctx context.Context, ref models.ThreadRef, title, message string) (*models.Thread, error) {
	var thread *models.Thread
	err := r.store.InTx(ctx, func(tx store.Tx) error {
		var err error
		thread, err = tx.Thread(ctx, ref, true)
		if err != nil {
			return err
		}
		if title == "" && message == "" {
			return nil
		}
		if title != "" {
			thread.Title = title
		}
		if message != "" {
			thread.Message = message
		}
		return tx.UpdateThread(ctx, *thread)
	})
	if err != nil {
		return nil, err
	}
	return thread, nil
}

func (r *Repo) Vote(ctx context.Context, ref models.ThreadRef, v models.Vote) (*models.Thread, error) {
	return r.ledger.Cast(ctx, ref, v)
}
