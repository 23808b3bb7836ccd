package tree

import (
	"context"
	goErrors "errors"

	"github.com/Natali-Skv/forum_tree/internal/models"
	"github.com/Natali-Skv/forum_tree/internal/pagination"
	"github.com/Natali-Skv/forum_tree/internal/store"
	"github.com/Natali-Skv/forum_tree/internal/tools/errors"
)

// Index reads a thread's posts in one of the three orders.
type Index struct {
	store store.Store
}

func NewIndex(s store.Store) *Index {
	return &Index{store: s}
}

// List returns one page of the thread's posts. An empty page is an empty,
// non-nil slice. In flat mode since is a plain id bound; in the tree modes
// a since id that names no post of the thread yields an empty page.
func (i *Index) List(ctx context.Context, ref models.ThreadRef, mode Mode, cur pagination.Cursor[int]) (models.Posts, error) {
	p, err := lookupPlan(mode, cur.Desc, cur.HasSince())
	if err != nil {
		return nil, err
	}

	posts := models.Posts{}
	err = i.store.InTx(ctx, func(tx store.Tx) error {
		thread, err := tx.Thread(ctx, ref, false)
		if err != nil {
			return err
		}

		var since *models.Post
		if p.boundary == pathBoundary || p.boundary == groupBoundary {
			since, err = tx.Post(ctx, cur.Since)
			if goErrors.Is(err, errors.ErrPostNotFound) {
				return nil
			}
			if err != nil {
				return err
			}
			if since.ThreadId != thread.Id {
				return nil
			}
		}

		found, err := run(ctx, tx, p, thread.Id, since, cur)
		if err != nil {
			return err
		}
		posts = append(posts, found...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func run(ctx context.Context, tx store.Tx, p plan, threadID int, since *models.Post, cur pagination.Cursor[int]) ([]models.Post, error) {
	if p.scan == scanPosts {
		ps := store.PostScan{
			ThreadID: threadID,
			Order:    p.order,
			Desc:     cur.Desc,
			Limit:    cur.Limit,
		}
		switch p.boundary {
		case idBoundary:
			ps.AfterID = cur.Since
		case pathBoundary:
			ps.AfterPath = since.Path
		}
		return tx.ScanPosts(ctx, ps)
	}

	groups := store.GroupScan{
		ThreadID: threadID,
		Desc:     cur.Desc,
		Limit:    cur.Limit,
	}
	if p.boundary == groupBoundary {
		groups.AfterGroup = since.TreeGroup
	}
	selected, err := tx.RootGroups(ctx, groups)
	if err != nil || len(selected) == 0 {
		return nil, err
	}
	return tx.PostsInGroups(ctx, threadID, selected, cur.Desc)
}
