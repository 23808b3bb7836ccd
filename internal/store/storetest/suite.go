package storetest

import (
	"context"
	goErrors "errors"
	"testing"

	"github.com/Natali-Skv/forum_tree/internal/models"
	"github.com/Natali-Skv/forum_tree/internal/store"
	"github.com/Natali-Skv/forum_tree/internal/tools/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errAbort = goErrors.New("abort")

// Run exercises the behaviour every store.Store must share. newStore is
// called once per subtest and must return an empty store.
func Run(t *testing.T, newStore func(t *testing.T) store.Store) {
	t.Run("rollback discards writes", func(t *testing.T) {
		s := newStore(t)
		fx := Seed(t, s)
		ctx := context.Background()

		err := s.InTx(ctx, func(tx store.Tx) error {
			require.NoError(t, tx.CreateUser(ctx, models.User{Nick: "bob", Email: "bob@example.com"}))
			require.NoError(t, tx.AddForumCounters(ctx, fx.Forum, 3, 1))
			require.NoError(t, tx.AddForumUser(ctx, fx.Forum, "bob"))
			_, err := tx.AddThreadVotes(ctx, fx.Thread.Id, 5)
			require.NoError(t, err)
			return errAbort
		})
		require.ErrorIs(t, err, errAbort)

		require.NoError(t, s.InTx(ctx, func(tx store.Tx) error {
			_, err := tx.UserByNick(ctx, "bob")
			assert.ErrorIs(t, err, errors.ErrUserNotFound)

			f, err := tx.ForumBySlug(ctx, fx.Forum)
			require.NoError(t, err)
			assert.Equal(t, 0, f.Posts)
			assert.Equal(t, 0, f.Threads)

			users, err := tx.ForumUsers(ctx, store.UserScan{Forum: fx.Forum, Limit: 10})
			require.NoError(t, err)
			assert.Empty(t, users)

			th, err := tx.Thread(ctx, models.ThreadRef{Id: fx.Thread.Id}, false)
			require.NoError(t, err)
			assert.Equal(t, 0, th.Votes)
			return nil
		}))
	})

	t.Run("lookups are case insensitive", func(t *testing.T) {
		s := newStore(t)
		fx := Seed(t, s)
		ctx := context.Background()

		require.NoError(t, s.InTx(ctx, func(tx store.Tx) error {
			u, err := tx.UserByNick(ctx, "ALICE")
			require.NoError(t, err)
			assert.Equal(t, "alice", u.Nick)

			f, err := tx.ForumBySlug(ctx, "PIRATES")
			require.NoError(t, err)
			assert.Equal(t, fx.Forum, f.Slug)

			th, err := tx.Thread(ctx, models.ThreadRef{Slug: "Treasure"}, false)
			require.NoError(t, err)
			assert.Equal(t, fx.Thread.Id, th.Id)
			return nil
		}))
	})

	t.Run("duplicates conflict", func(t *testing.T) {
		s := newStore(t)
		fx := Seed(t, s)
		ctx := context.Background()

		err := s.InTx(ctx, func(tx store.Tx) error {
			return tx.CreateUser(ctx, models.User{Nick: "Alice", Email: "other@example.com"})
		})
		assert.ErrorIs(t, err, errors.ErrConflict)

		err = s.InTx(ctx, func(tx store.Tx) error {
			return tx.CreateForum(ctx, models.Forum{Slug: "Pirates", Title: "again", UserNick: fx.Author})
		})
		assert.ErrorIs(t, err, errors.ErrConflict)

		err = s.InTx(ctx, func(tx store.Tx) error {
			_, err := tx.CreateThread(ctx, models.Thread{Slug: "TREASURE", ForumSlug: fx.Forum, AuthorNick: fx.Author})
			return err
		})
		assert.ErrorIs(t, err, errors.ErrConflict)
	})

	t.Run("votes upsert", func(t *testing.T) {
		s := newStore(t)
		fx := Seed(t, s)
		ctx := context.Background()

		require.NoError(t, s.InTx(ctx, func(tx store.Tx) error {
			_, found, err := tx.Vote(ctx, fx.Thread.Id, fx.Author)
			require.NoError(t, err)
			assert.False(t, found)

			require.NoError(t, tx.InsertVote(ctx, models.Vote{Nick: fx.Author, Voice: 1, ThreadId: fx.Thread.Id}))
			require.NoError(t, tx.UpdateVote(ctx, models.Vote{Nick: fx.Author, Voice: -1, ThreadId: fx.Thread.Id}))

			voice, found, err := tx.Vote(ctx, fx.Thread.Id, "ALICE")
			require.NoError(t, err)
			assert.True(t, found)
			assert.Equal(t, -1, voice)
			return nil
		}))
	})

	t.Run("forum users ordered byte-wise", func(t *testing.T) {
		s := newStore(t)
		fx := Seed(t, s)
		ctx := context.Background()
		for _, nick := range []string{"bob", "Zed", "_under", "carl"} {
			User(t, s, nick)
		}

		require.NoError(t, s.InTx(ctx, func(tx store.Tx) error {
			for _, nick := range []string{"carl", "bob", "_under", "Zed", "bob"} {
				require.NoError(t, tx.AddForumUser(ctx, fx.Forum, nick))
			}
			return nil
		}))

		nicks := func(scan store.UserScan) []string {
			var out []string
			require.NoError(t, s.InTx(ctx, func(tx store.Tx) error {
				users, err := tx.ForumUsers(ctx, scan)
				for _, u := range users {
					out = append(out, u.Nick)
				}
				return err
			}))
			return out
		}

		assert.Equal(t, []string{"_under", "bob", "carl", "Zed"}, nicks(store.UserScan{Forum: fx.Forum, Limit: 10}))
		assert.Equal(t, []string{"carl", "Zed"}, nicks(store.UserScan{Forum: fx.Forum, Since: "bob", Limit: 10}))
		assert.Equal(t, []string{"bob", "_under"}, nicks(store.UserScan{Forum: fx.Forum, Since: "CARL", Desc: true, Limit: 10}))
		assert.Equal(t, []string{"Zed"}, nicks(store.UserScan{Forum: fx.Forum, Desc: true, Limit: 1}))
	})

	t.Run("post scans", func(t *testing.T) {
		s := newStore(t)
		fx := Seed(t, s)
		ctx := context.Background()

		// 1 ─ 2 ─ 4
		//  └─ 3
		// 5
		var ids []int
		require.NoError(t, s.InTx(ctx, func(tx store.Tx) error {
			paths := map[int]models.Path{}
			for _, parent := range []int{0, 1, 1, 2, 0} {
				id, err := tx.NextPostID(ctx)
				require.NoError(t, err)
				ids = append(ids, id)
				p := models.Post{
					Id:         id,
					AuthorNick: fx.Author,
					ForumSlug:  fx.Forum,
					ThreadId:   fx.Thread.Id,
					Message:    "m",
					Path:       models.Path{int64(id)},
					TreeGroup:  int64(id),
				}
				if parent != 0 {
					pp := paths[ids[parent-1]]
					p.ParentId = ids[parent-1]
					p.Path = pp.Child(int64(id))
					p.TreeGroup = pp.Root()
					p.Level = len(pp)
				}
				paths[id] = p.Path
				require.NoError(t, tx.InsertPost(ctx, p))
			}
			return nil
		}))
		n := func(i int) int { return ids[i-1] }

		scanIDs := func(scan store.PostScan) []int {
			var out []int
			require.NoError(t, s.InTx(ctx, func(tx store.Tx) error {
				posts, err := tx.ScanPosts(ctx, scan)
				for _, p := range posts {
					out = append(out, p.Id)
				}
				return err
			}))
			return out
		}

		th := fx.Thread.Id
		assert.Equal(t, []int{n(1), n(2), n(3), n(4), n(5)}, scanIDs(store.PostScan{ThreadID: th, Limit: 10}))
		assert.Equal(t, []int{n(4), n(5)}, scanIDs(store.PostScan{ThreadID: th, AfterID: n(3), Limit: 10}))
		assert.Equal(t, []int{n(1), n(2), n(4), n(3), n(5)}, scanIDs(store.PostScan{ThreadID: th, Order: store.OrderByPath, Limit: 10}))
		assert.Equal(t, []int{n(5), n(3), n(4), n(2), n(1)}, scanIDs(store.PostScan{ThreadID: th, Order: store.OrderByPath, Desc: true, Limit: 10}))
		assert.Equal(t, []int{n(3), n(5)}, scanIDs(store.PostScan{ThreadID: th, Order: store.OrderByPath, AfterPath: models.Path{int64(n(1)), int64(n(2)), int64(n(4))}, Limit: 10}))

		require.NoError(t, s.InTx(ctx, func(tx store.Tx) error {
			groups, err := tx.RootGroups(ctx, store.GroupScan{ThreadID: th, Desc: true, Limit: 10})
			require.NoError(t, err)
			assert.Equal(t, []int64{int64(n(5)), int64(n(1))}, groups)

			posts, err := tx.PostsInGroups(ctx, th, groups, true)
			require.NoError(t, err)
			var got []int
			for _, p := range posts {
				got = append(got, p.Id)
			}
			assert.Equal(t, []int{n(5), n(1), n(2), n(4), n(3)}, got)
			return nil
		}))
	})
}
