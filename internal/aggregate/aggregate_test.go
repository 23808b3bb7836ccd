package aggregate

import (
	"context"
	goErrors "errors"
	"testing"

	"github.com/Natali-Skv/forum_tree/internal/models"
	"github.com/Natali-Skv/forum_tree/internal/store"
	"github.com/Natali-Skv/forum_tree/internal/store/memory"
	"github.com/Natali-Skv/forum_tree/internal/store/storetest"
	"github.com/Natali-Skv/forum_tree/internal/tools/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostsCreated(t *testing.T) {
	s := memory.New()
	fx := storetest.Seed(t, s)
	storetest.User(t, s, "Bob")
	ctx := context.Background()

	posts := []models.Post{{AuthorNick: "Bob"}, {AuthorNick: "bob"}, {AuthorNick: "alice"}}
	require.NoError(t, s.InTx(ctx, func(tx store.Tx) error {
		require.NoError(t, PostsCreated(ctx, tx, fx.Forum, posts))
		require.NoError(t, PostsCreated(ctx, tx, fx.Forum, posts[:1]))
		require.NoError(t, PostsCreated(ctx, tx, fx.Forum, nil))

		f, err := tx.ForumBySlug(ctx, fx.Forum)
		require.NoError(t, err)
		assert.Equal(t, 4, f.Posts)
		assert.Equal(t, 0, f.Threads)

		users, err := tx.ForumUsers(ctx, store.UserScan{Forum: fx.Forum, Limit: 10})
		require.NoError(t, err)
		require.Len(t, users, 2)
		assert.Equal(t, "alice", users[0].Nick)
		assert.Equal(t, "Bob", users[1].Nick)
		return nil
	}))
}

func TestThreadCreated(t *testing.T) {
	s := memory.New()
	fx := storetest.Seed(t, s)
	ctx := context.Background()

	require.NoError(t, s.InTx(ctx, func(tx store.Tx) error {
		require.NoError(t, ThreadCreated(ctx, tx, fx.Forum, fx.Author))
		f, err := tx.ForumBySlug(ctx, fx.Forum)
		require.NoError(t, err)
		assert.Equal(t, 1, f.Threads)
		return nil
	}))

	err := s.InTx(ctx, func(tx store.Tx) error {
		return ThreadCreated(ctx, tx, "nowhere", fx.Author)
	})
	assert.ErrorIs(t, err, errors.ErrForumNotFound)
}

func TestVotesChanged(t *testing.T) {
	s := memory.New()
	fx := storetest.Seed(t, s)
	ctx := context.Background()

	require.NoError(t, s.InTx(ctx, func(tx store.Tx) error {
		tally, err := VotesChanged(ctx, tx, fx.Thread.Id, 0, 2)
		require.NoError(t, err)
		assert.Equal(t, 2, tally)

		tally, err = VotesChanged(ctx, tx, fx.Thread.Id, tally, 0)
		require.NoError(t, err)
		assert.Equal(t, 2, tally)

		tally, err = VotesChanged(ctx, tx, fx.Thread.Id, tally, -3)
		require.NoError(t, err)
		assert.Equal(t, -1, tally)
		return nil
	}))
}

// A failure after the counters moved leaves them untouched.
func TestCountersRollBackWithTransaction(t *testing.T) {
	s := memory.New()
	fx := storetest.Seed(t, s)
	ctx := context.Background()
	boom := goErrors.New("insert failed")

	err := s.InTx(ctx, func(tx store.Tx) error {
		require.NoError(t, PostsCreated(ctx, tx, fx.Forum, []models.Post{{AuthorNick: fx.Author}}))
		require.NoError(t, ThreadCreated(ctx, tx, fx.Forum, fx.Author))
		return boom
	})
	require.ErrorIs(t, err, boom)

	require.NoError(t, s.InTx(ctx, func(tx store.Tx) error {
		f, err := tx.ForumBySlug(ctx, fx.Forum)
		require.NoError(t, err)
		assert.Equal(t, 0, f.Posts)
		assert.Equal(t, 0, f.Threads)
		return nil
	}))
}
