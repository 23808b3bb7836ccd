package postgres

import (
	"context"
	"os"
	"testing"

	"github.com/Natali-Skv/forum_tree/internal/store"
	"github.com/Natali-Skv/forum_tree/internal/store/storetest"
	"github.com/jackc/pgx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var _ store.Store = (*Store)(nil)

// TestStore runs against a scratch database named by FORUM_TEST_DSN, e.g.
// "host=localhost user=docker password=docker dbname=forum_test".
func TestStore(t *testing.T) {
	dsn := os.Getenv("FORUM_TEST_DSN")
	if dsn == "" {
		t.Skip("FORUM_TEST_DSN not set")
	}
	connConfig, err := pgx.ParseConnectionString(dsn)
	require.NoError(t, err)
	pool, err := pgx.NewConnPool(pgx.ConnPoolConfig{ConnConfig: connConfig, MaxConnections: 4})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, Migrate(pool))
	s, err := New(pool, zap.NewNop())
	require.NoError(t, err)

	storetest.Run(t, func(t *testing.T) store.Store {
		require.NoError(t, s.InTx(context.Background(), func(tx store.Tx) error {
			return tx.Truncate(context.Background())
		}))
		return s
	})
}

func TestStatementsCoverEveryVariant(t *testing.T) {
	for _, base := range []string{"get_forum_users", "get_forum_threads", "scan_posts_id", "scan_posts_path", "root_groups"} {
		since := "_since"
		if base == "scan_posts_id" || base == "scan_posts_path" || base == "root_groups" {
			since = "_after"
		}
		for _, name := range []string{base, base + "_desc", base + since, base + since + "_desc"} {
			assert.Contains(t, statements, name)
		}
	}
	for _, prefix := range []string{"get_thread", "lock_thread"} {
		assert.Contains(t, statements, prefix+"_by_id")
		assert.Contains(t, statements, prefix+"_by_slug")
	}
	assert.Contains(t, statements, "posts_in_groups")
	assert.Contains(t, statements, "posts_in_groups_desc")
}

func TestLimitArg(t *testing.T) {
	assert.Nil(t, limitArg(0))
	assert.Equal(t, 5, limitArg(5))
}
