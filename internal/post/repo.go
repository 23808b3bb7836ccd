package post

import (
	"context"

	"github.com/Natali-Skv/forum_tree/internal/models"
	"github.com/Natali-Skv/forum_tree/internal/pagination"
	"github.com/Natali-Skv/forum_tree/internal/post/tree"
)

const (
	UserRelated   = "user"
	ThreadRelated = "thread"
	ForumRelated  = "forum"
)

type Repo interface {
	// Create inserts posts into the thread in order, all or nothing. A post
	// may reply to one created earlier in the same batch.
	Create(ctx context.Context, ref models.ThreadRef, posts []models.Post) ([]models.Post, error)
	GetThreadPosts(ctx context.Context, ref models.ThreadRef, mode tree.Mode, cur pagination.Cursor[int]) ([]models.Post, error)
	GetPostByIdRelated(ctx context.Context, id int, related []string) (*models.PostFull, error)
	UpdatePost(ctx context.Context, id int, message string) (*models.Post, error)
}
