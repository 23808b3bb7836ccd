package repo

import (
	"context"
	goErrors "errors"
	"time"

	"github.com/Natali-Skv/forum_tree/internal/aggregate"
	"github.com/Natali-Skv/forum_tree/internal/models"
	"github.com/Natali-Skv/forum_tree/internal/pagination"
	postRepo "github.com/Natali-Skv/forum_tree/internal/post"
	"github.com/Natali-Skv/forum_tree/internal/post/tree"
	"github.com/Natali-Skv/forum_tree/internal/store"
	"github.com/Natali-Skv/forum_tree/internal/tools/errors"
	"github.com/go-openapi/strfmt"
)

type Repo struct {
	store   store.Store
	encoder *tree.Encoder
	index   *tree.Index
	now     func() time.Time
}

func NewRepo(s store.Store) *Repo {
	return &Repo{
		store:   s,
		encoder: tree.NewEncoder(),
		index:   tree.NewIndex(s),
		now:     time.Now,
	}
}

var _ postRepo.Repo = (*Repo)(nil)

func (r *Repo) Create(ctx context.Context, ref models.ThreadRef, posts []models.Post) ([]models.Post, error) {
	created := make([]models.Post, 0, len(posts))
	err := r.store.InTx(ctx, func(tx store.Tx) error {
		thread, err := tx.Thread(ctx, ref, false)
		if err != nil {
			return err
		}
		if len(posts) == 0 {
			return nil
		}

		// One timestamp for the whole batch.
		at := strfmt.DateTime(r.now().UTC().Truncate(time.Millisecond))
		for _, p := range posts {
			author, err := tx.UserByNick(ctx, p.AuthorNick)
			if goErrors.Is(err, errors.ErrUserNotFound) {
				return errors.UnknownUser(p.AuthorNick)
			}
			if err != nil {
				return err
			}
			pos, err := r.encoder.Assign(ctx, tx, p.ParentId, thread.Id)
			if err != nil {
				return err
			}
			post := models.Post{
				Id:         pos.ID,
				AuthorNick: author.Nick,
				ParentId:   p.ParentId,
				Message:    p.Message,
				ForumSlug:  thread.ForumSlug,
				ThreadId:   thread.Id,
				Created:    at,
				Level:      pos.Level,
				TreeGroup:  pos.TreeGroup,
				Path:       pos.Path,
			}
			if err := tx.InsertPost(ctx, post); err != nil {
				return err
			}
			created = append(created, post)
		}
		return aggregate.PostsCreated(ctx, tx, thread.ForumSlug, created)
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (r *Repo) GetThreadPosts(ctx context.Context, ref models.ThreadRef, mode tree.Mode, cur pagination.Cursor[int]) ([]models.Post, error) {
	return r.index.List(ctx, ref, mode, cur)
}

func (r *Repo) GetPostByIdRelated(ctx context.Context, id int, related []string) (*models.PostFull, error) {
	full := &models.PostFull{}
	err := r.store.InTx(ctx, func(tx store.Tx) error {
		post, err := tx.Post(ctx, id)
		if err != nil {
			return err
		}
		full.Post = post

		for _, item := range related {
			switch item {
			case postRepo.UserRelated:
				if full.User, err = tx.UserByNick(ctx, post.AuthorNick); err != nil {
					return err
				}
			case postRepo.ThreadRelated:
				if full.Thread, err = tx.Thread(ctx, models.ThreadRef{Id: post.ThreadId}, false); err != nil {
					return err
				}
			case postRepo.ForumRelated:
				if full.Forum, err = tx.ForumBySlug(ctx, post.ForumSlug); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return full, nil
}

// UpdatePost replaces the message. The post is marked edited only when the
// message actually changes.
func (r *Repo) UpdatePost(ctx context.Context, id int, message string) (*models.Post, error) {
	var post *models.Post
	err := r.store.InTx(ctx, func(tx store.Tx) error {
		var err error
		post, err = tx.Post(ctx, id)
		if err != nil {
			return err
		}
		if message == "" || message == post.Message {
			return nil
		}
		if err := tx.UpdatePostMessage(ctx, id, message); err != nil {
			return err
		}
		post.Message = message
		post.IsEdited = true
		return nil
	})
	if err != nil {
		return nil, err
	}
	return post, nil
}
