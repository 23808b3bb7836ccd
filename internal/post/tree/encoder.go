// Package tree places posts in a thread's reply tree and reads them back
// in flat, tree and parent-tree order.
package tree

import (
	"context"
	goErrors "errors"

	"github.com/Natali-Skv/forum_tree/internal/models"
	"github.com/Natali-Skv/forum_tree/internal/store"
	"github.com/Natali-Skv/forum_tree/internal/tools/errors"
)

// Position is everything the tree needs to know about a new post.
type Position struct {
	ID        int
	Level     int
	TreeGroup int64
	Path      models.Path
}

// Encoder assigns positions. The id of the new post, drawn from the
// store's post sequence, is the last path component: ids are unique and
// grow with time, so a later sibling always sorts after an earlier one
// and after the earlier one's whole subtree.
type Encoder struct{}

func NewEncoder() *Encoder {
	return &Encoder{}
}

// Assign allocates an id for a post replying to parentID (0 for a new
// top-level post) in threadID and computes its position. It must run in
// the same transaction that inserts the post.
func (e *Encoder) Assign(ctx context.Context, tx store.Tx, parentID, threadID int) (Position, error) {
	var parent *models.Post
	if parentID != 0 {
		var err error
		parent, err = tx.Post(ctx, parentID)
		if goErrors.Is(err, errors.ErrPostNotFound) {
			return Position{}, errors.ErrParentNotFound
		}
		if err != nil {
			return Position{}, err
		}
		if parent.ThreadId != threadID {
			return Position{}, errors.ErrCrossThreadParent
		}
	}

	id, err := tx.NextPostID(ctx)
	if err != nil {
		return Position{}, err
	}
	path, level := models.Path{int64(id)}, 0
	if parent != nil {
		path, level = parent.Path.Child(int64(id)), parent.Level+1
	}
	return Position{
		ID:        id,
		Level:     level,
		TreeGroup: path.Root(),
		Path:      path,
	}, nil
}
