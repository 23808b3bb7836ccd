package repo

import (
	"context"
	"testing"
	"time"

	"github.com/Natali-Skv/forum_tree/internal/models"
	"github.com/Natali-Skv/forum_tree/internal/pagination"
	postRepo "github.com/Natali-Skv/forum_tree/internal/post"
	"github.com/Natali-Skv/forum_tree/internal/post/tree"
	"github.com/Natali-Skv/forum_tree/internal/store"
	"github.com/Natali-Skv/forum_tree/internal/store/memory"
	"github.com/Natali-Skv/forum_tree/internal/store/storetest"
	"github.com/Natali-Skv/forum_tree/internal/tools/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (*Repo, *memory.Store, storetest.Fixture) {
	s := memory.New()
	fx := storetest.Seed(t, s)
	return NewRepo(s), s, fx
}

func forum(t *testing.T, s store.Store, slug string) *models.Forum {
	var f *models.Forum
	require.NoError(t, s.InTx(context.Background(), func(tx store.Tx) error {
		var err error
		f, err = tx.ForumBySlug(context.Background(), slug)
		return err
	}))
	return f
}

func TestCreateBatch(t *testing.T) {
	r, _, fx := setup(t)
	ctx := context.Background()

	first, err := r.Create(ctx, models.ThreadRef{Slug: fx.Thread.Slug}, []models.Post{
		{AuthorNick: "ALICE", Message: "root"},
	})
	require.NoError(t, err)
	require.Len(t, first, 1)

	posts, err := r.Create(ctx, models.ThreadRef{Id: fx.Thread.Id}, []models.Post{
		{AuthorNick: fx.Author, Message: "a", ParentId: first[0].Id},
		{AuthorNick: fx.Author, Message: "b"},
	})
	require.NoError(t, err)
	require.Len(t, posts, 2)

	nested, err := r.Create(ctx, models.ThreadRef{Id: fx.Thread.Id}, []models.Post{
		{AuthorNick: fx.Author, Message: "c"},
	})
	require.NoError(t, err)

	batch, err := r.Create(ctx, models.ThreadRef{Id: fx.Thread.Id}, []models.Post{
		{AuthorNick: fx.Author, Message: "one", ParentId: nested[0].Id},
		{AuthorNick: fx.Author, Message: "two"},
	})
	require.NoError(t, err)
	assert.Equal(t, batch[0].Created, batch[1].Created)

	assert.Equal(t, "alice", first[0].AuthorNick)
	assert.Equal(t, fx.Forum, first[0].ForumSlug)
	assert.Equal(t, fx.Thread.Id, posts[0].ThreadId)
	assert.Equal(t, 1, posts[0].Level)
	require.Len(t, posts[0].Path, len(first[0].Path)+1)
	assert.Equal(t, first[0].Path, posts[0].Path[:len(first[0].Path)])
	assert.Equal(t, 0, posts[1].Level)
}

func TestCreateReplyToEarlierPostOfSameBatch(t *testing.T) {
	r, _, fx := setup(t)
	ctx := context.Background()

	// Ids come from the post sequence, so the first post of a fresh store
	// gets 1 and the second post can name it as parent.
	posts, err := r.Create(ctx, models.ThreadRef{Id: fx.Thread.Id}, []models.Post{
		{AuthorNick: fx.Author, Message: "first"},
		{AuthorNick: fx.Author, Message: "second", ParentId: 1},
	})
	require.NoError(t, err)
	require.Equal(t, 1, posts[0].Id)
	assert.Equal(t, 1, posts[1].Level)
	assert.Equal(t, posts[0].TreeGroup, posts[1].TreeGroup)
	assert.Equal(t, models.Path{1, int64(posts[1].Id)}, posts[1].Path)
}

func TestCreateIsAllOrNothing(t *testing.T) {
	r, s, fx := setup(t)
	ctx := context.Background()

	_, err := r.Create(ctx, models.ThreadRef{Id: fx.Thread.Id}, []models.Post{
		{AuthorNick: fx.Author, Message: "ok"},
		{AuthorNick: "nobody", Message: "bad"},
	})
	assert.ErrorIs(t, err, errors.ErrUserNotFound)
	var unknown *errors.UnknownUserError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "nobody", unknown.Nick)

	_, err = r.Create(ctx, models.ThreadRef{Id: fx.Thread.Id}, []models.Post{
		{AuthorNick: fx.Author, Message: "ok"},
		{AuthorNick: fx.Author, Message: "orphan", ParentId: 777},
	})
	assert.ErrorIs(t, err, errors.ErrParentNotFound)

	assert.Equal(t, 0, forum(t, s, fx.Forum).Posts)
	posts, err := r.GetThreadPosts(ctx, models.ThreadRef{Id: fx.Thread.Id}, tree.Flat, pagination.New(0, 0, false))
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestCreateEmptyBatch(t *testing.T) {
	r, _, fx := setup(t)
	ctx := context.Background()

	posts, err := r.Create(ctx, models.ThreadRef{Id: fx.Thread.Id}, nil)
	require.NoError(t, err)
	assert.NotNil(t, posts)
	assert.Empty(t, posts)

	_, err = r.Create(ctx, models.ThreadRef{Slug: "missing"}, nil)
	assert.ErrorIs(t, err, errors.ErrThreadNotFound)
}

func TestForumCountersAndMembership(t *testing.T) {
	r, s, fx := setup(t)
	ctx := context.Background()
	storetest.User(t, s, "bob")

	sizes := []int{3, 1, 4}
	total := 0
	for _, n := range sizes {
		batch := make([]models.Post, n)
		for i := range batch {
			batch[i] = models.Post{AuthorNick: "bob", Message: "m"}
		}
		_, err := r.Create(ctx, models.ThreadRef{Id: fx.Thread.Id}, batch)
		require.NoError(t, err)
		total += n
	}
	assert.Equal(t, total, forum(t, s, fx.Forum).Posts)

	require.NoError(t, s.InTx(ctx, func(tx store.Tx) error {
		users, err := tx.ForumUsers(ctx, store.UserScan{Forum: fx.Forum, Limit: 10})
		require.NoError(t, err)
		require.Len(t, users, 1)
		assert.Equal(t, "bob", users[0].Nick)
		return nil
	}))
}

func TestUpdatePost(t *testing.T) {
	r, _, fx := setup(t)
	ctx := context.Background()
	posts, err := r.Create(ctx, models.ThreadRef{Id: fx.Thread.Id}, []models.Post{{AuthorNick: fx.Author, Message: "hello"}})
	require.NoError(t, err)
	id := posts[0].Id

	same, err := r.UpdatePost(ctx, id, "hello")
	require.NoError(t, err)
	assert.False(t, same.IsEdited)

	empty, err := r.UpdatePost(ctx, id, "")
	require.NoError(t, err)
	assert.False(t, empty.IsEdited)
	assert.Equal(t, "hello", empty.Message)

	changed, err := r.UpdatePost(ctx, id, "bye")
	require.NoError(t, err)
	assert.True(t, changed.IsEdited)
	assert.Equal(t, "bye", changed.Message)

	full, err := r.GetPostByIdRelated(ctx, id, nil)
	require.NoError(t, err)
	assert.True(t, full.Post.IsEdited)
	assert.Equal(t, posts[0].Path, full.Post.Path)

	_, err = r.UpdatePost(ctx, 404, "x")
	assert.ErrorIs(t, err, errors.ErrPostNotFound)
}

func TestGetPostRelated(t *testing.T) {
	r, _, fx := setup(t)
	ctx := context.Background()
	r.now = func() time.Time { return time.Date(2022, 3, 4, 5, 6, 7, 0, time.UTC) }

	posts, err := r.Create(ctx, models.ThreadRef{Id: fx.Thread.Id}, []models.Post{{AuthorNick: fx.Author, Message: "m"}})
	require.NoError(t, err)

	full, err := r.GetPostByIdRelated(ctx, posts[0].Id, []string{postRepo.UserRelated, postRepo.ForumRelated, postRepo.ThreadRelated, "unknown"})
	require.NoError(t, err)
	assert.Equal(t, "2022-03-04T05:06:07.000Z", full.Post.Created.String())
	require.NotNil(t, full.User)
	assert.Equal(t, fx.Author, full.User.Nick)
	require.NotNil(t, full.Forum)
	assert.Equal(t, 1, full.Forum.Posts)
	require.NotNil(t, full.Thread)
	assert.Equal(t, fx.Thread.Id, full.Thread.Id)

	bare, err := r.GetPostByIdRelated(ctx, posts[0].Id, []string{""})
	require.NoError(t, err)
	assert.Nil(t, bare.User)
	assert.Nil(t, bare.Forum)
	assert.Nil(t, bare.Thread)

	_, err = r.GetPostByIdRelated(ctx, 999, nil)
	assert.ErrorIs(t, err, errors.ErrPostNotFound)
}
