package vote

import (
	"context"
	"testing"

	"github.com/Natali-Skv/forum_tree/internal/models"
	"github.com/Natali-Skv/forum_tree/internal/store"
	"github.com/Natali-Skv/forum_tree/internal/store/memory"
	"github.com/Natali-Skv/forum_tree/internal/store/storetest"
	"github.com/Natali-Skv/forum_tree/internal/tools/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func setup(t *testing.T) (*Ledger, *memory.Store, models.ThreadRef) {
	s := memory.New()
	fx := storetest.Seed(t, s)
	for _, nick := range []string{"bob", "carl", "dana"} {
		storetest.User(t, s, nick)
	}
	return NewLedger(s), s, models.ThreadRef{Id: fx.Thread.Id}
}

func cast(t *testing.T, l *Ledger, ref models.ThreadRef, nick string, voice int) int {
	t.Helper()
	thread, err := l.Cast(context.Background(), ref, models.Vote{Nick: nick, Voice: voice})
	require.NoError(t, err)
	return thread.Votes
}

func sumOfVotes(t *testing.T, s store.Store, threadID int) int {
	sum := 0
	require.NoError(t, s.InTx(context.Background(), func(tx store.Tx) error {
		for _, nick := range []string{"alice", "bob", "carl", "dana"} {
			voice, found, err := tx.Vote(context.Background(), threadID, nick)
			if err != nil {
				return err
			}
			if found {
				sum += voice
			}
		}
		return nil
	}))
	return sum
}

func TestCastIdempotent(t *testing.T) {
	l, _, ref := setup(t)
	assert.Equal(t, 1, cast(t, l, ref, "bob", 1))
	assert.Equal(t, 1, cast(t, l, ref, "bob", 1))
	assert.Equal(t, 1, cast(t, l, ref, "BOB", 1))
}

func TestCastNetZero(t *testing.T) {
	l, _, ref := setup(t)
	assert.Equal(t, 1, cast(t, l, ref, "carl", 1))
	assert.Equal(t, 2, cast(t, l, ref, "alice", 1))
	assert.Equal(t, 0, cast(t, l, ref, "alice", -1))
	assert.Equal(t, 2, cast(t, l, ref, "alice", 1))
}

func TestTallyIsSumOfVotes(t *testing.T) {
	l, s, ref := setup(t)
	seq := []struct {
		nick  string
		voice int
	}{
		{"alice", 1}, {"bob", -1}, {"carl", 1}, {"bob", 1}, {"dana", -1},
		{"alice", -1}, {"alice", -1}, {"carl", 1}, {"dana", 1}, {"bob", -1},
	}
	var tally int
	for _, v := range seq {
		tally = cast(t, l, ref, v.nick, v.voice)
		assert.Equal(t, sumOfVotes(t, s, ref.Id), tally)
	}
	assert.Equal(t, 0, tally)
}

func TestCastBySlug(t *testing.T) {
	l, _, ref := setup(t)
	thread, err := l.Cast(context.Background(), models.ThreadRef{Slug: "TREASURE"}, models.Vote{Nick: "dana", Voice: -1})
	require.NoError(t, err)
	assert.Equal(t, ref.Id, thread.Id)
	assert.Equal(t, -1, thread.Votes)
}

func TestCastNotFoundBeforeMutation(t *testing.T) {
	l, s, ref := setup(t)
	cast(t, l, ref, "bob", 1)

	_, err := l.Cast(context.Background(), models.ThreadRef{Slug: "missing"}, models.Vote{Nick: "bob", Voice: -1})
	assert.ErrorIs(t, err, errors.ErrThreadNotFound)

	_, err = l.Cast(context.Background(), ref, models.Vote{Nick: "ghost", Voice: -1})
	assert.ErrorIs(t, err, errors.ErrUserNotFound)

	assert.Equal(t, 1, sumOfVotes(t, s, ref.Id))
	assert.Equal(t, 1, cast(t, l, ref, "bob", 1))
}

func TestConcurrentCasts(t *testing.T) {
	l, s, ref := setup(t)
	var g errgroup.Group
	for i := 0; i < 40; i++ {
		nick := []string{"alice", "bob", "carl", "dana"}[i%4]
		voice := 1
		if i%3 == 0 {
			voice = -1
		}
		g.Go(func() error {
			_, err := l.Cast(context.Background(), ref, models.Vote{Nick: nick, Voice: voice})
			return err
		})
	}
	require.NoError(t, g.Wait())

	thread, err := l.Cast(context.Background(), ref, models.Vote{Nick: "alice", Voice: 1})
	require.NoError(t, err)
	assert.Equal(t, sumOfVotes(t, s, ref.Id), thread.Votes)
}
