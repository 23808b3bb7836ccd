// Package vote records one voice per (thread, user) and keeps the thread
// tally equal to the sum of recorded voices.
package vote

import (
	"context"

	"github.com/Natali-Skv/forum_tree/internal/aggregate"
	"github.com/Natali-Skv/forum_tree/internal/models"
	"github.com/Natali-Skv/forum_tree/internal/store"
)

type Ledger struct {
	store store.Store
}

func NewLedger(s store.Store) *Ledger {
	return &Ledger{store: s}
}

// Cast records vote.Voice for vote.Nick in the referenced thread and
// returns the thread with its updated tally. Re-casting the stored voice
// changes nothing; a different voice moves the tally by the difference.
func (l *Ledger) Cast(ctx context.Context, ref models.ThreadRef, vote models.Vote) (*models.Thread, error) {
	var thread *models.Thread
	err := l.store.InTx(ctx, func(tx store.Tx) error {
		var err error
		thread, err = tx.Thread(ctx, ref, true)
		if err != nil {
			return err
		}
		user, err := tx.UserByNick(ctx, vote.Nick)
		if err != nil {
			return err
		}
		vote.Nick = user.Nick
		vote.ThreadId = thread.Id

		old, found, err := tx.Vote(ctx, thread.Id, user.Nick)
		if err != nil {
			return err
		}

		delta := vote.Voice
		switch {
		case !found:
			err = tx.InsertVote(ctx, vote)
		case old != vote.Voice:
			delta = vote.Voice - old
			err = tx.UpdateVote(ctx, vote)
		default:
			delta = 0
		}
		if err != nil {
			return err
		}

		thread.Votes, err = aggregate.VotesChanged(ctx, tx, thread.Id, thread.Votes, delta)
		return err
	})
	if err != nil {
		return nil, err
	}
	return thread, nil
}
