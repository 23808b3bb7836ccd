// Package store defines the row store the forum core runs against. All
// durable state lives behind Store; every logical operation is one call
// to InTx.
package store

import (
	"context"
	"time"

	"github.com/Natali-Skv/forum_tree/internal/models"
)

type Store interface {
	// InTx runs fn as one atomic unit of work. A non-nil error from fn
	// (or from commit) discards every write fn made.
	InTx(ctx context.Context, fn func(tx Tx) error) error
}

// PostOrder selects the key a post scan is ordered by.
type PostOrder int

const (
	// OrderByID is creation order.
	OrderByID PostOrder = iota
	// OrderByPath is (tree_group, path): depth-first pre-order.
	OrderByPath
)

// PostScan is a range scan over one thread's posts. At most one of
// AfterID / AfterPath is set; both are exclusive boundaries in the scan
// direction.
type PostScan struct {
	ThreadID  int
	Order     PostOrder
	Desc      bool
	AfterID   int
	AfterPath models.Path
	Limit     int
}

// GroupScan selects root tree-groups of a thread, ordered by group id.
type GroupScan struct {
	ThreadID   int
	Desc       bool
	AfterGroup int64
	Limit      int
}

type ThreadScan struct {
	Forum string
	Since time.Time
	Desc  bool
	Limit int
}

type UserScan struct {
	Forum string
	Since string
	Desc  bool
	Limit int
}

// Tx exposes the row sets inside one transaction. Lookups of absent rows
// return the matching errors.Err*NotFound; uniqueness violations return
// errors.ErrDuplicate (or ErrEmailTaken); driver failures are wrapped
// with errors.ErrStoreFailure.
type Tx interface {
	CreateUser(ctx context.Context, user models.User) error
	UserByNick(ctx context.Context, nick string) (*models.User, error)
	UsersByNickOrEmail(ctx context.Context, nick, email string) ([]models.User, error)
	UpdateUser(ctx context.Context, user models.User) (*models.User, error)

	CreateForum(ctx context.Context, forum models.Forum) error
	ForumBySlug(ctx context.Context, slug string) (*models.Forum, error)
	AddForumCounters(ctx context.Context, slug string, posts, threads int) error
	AddForumUser(ctx context.Context, slug, nick string) error
	ForumUsers(ctx context.Context, scan UserScan) ([]models.User, error)
	ForumThreads(ctx context.Context, scan ThreadScan) ([]models.Thread, error)

	CreateThread(ctx context.Context, thread models.Thread) (int, error)
	// Thread resolves ref; forUpdate row-locks the thread until the
	// transaction ends.
	Thread(ctx context.Context, ref models.ThreadRef, forUpdate bool) (*models.Thread, error)
	UpdateThread(ctx context.Context, thread models.Thread) error
	AddThreadVotes(ctx context.Context, threadID, delta int) (int, error)

	// Vote returns the stored voice of nick in the thread, if any.
	Vote(ctx context.Context, threadID int, nick string) (voice int, found bool, err error)
	InsertVote(ctx context.Context, vote models.Vote) error
	UpdateVote(ctx context.Context, vote models.Vote) error

	NextPostID(ctx context.Context) (int, error)
	InsertPost(ctx context.Context, post models.Post) error
	Post(ctx context.Context, id int) (*models.Post, error)
	UpdatePostMessage(ctx context.Context, id int, message string) error
	ScanPosts(ctx context.Context, scan PostScan) ([]models.Post, error)
	RootGroups(ctx context.Context, scan GroupScan) ([]int64, error)
	// PostsInGroups returns every post of the given groups: groups in the
	// order requested by desc, ascending path inside a group.
	PostsInGroups(ctx context.Context, threadID int, groups []int64, desc bool) ([]models.Post, error)

	Status(ctx context.Context) (*models.Status, error)
	Truncate(ctx context.Context) error
}
