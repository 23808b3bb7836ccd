// Package aggregate keeps forum counters, thread vote tallies and forum
// membership in step with row writes. Every function runs inside the
// caller's transaction, so a failed counter update rolls back the rows it
// accounts for.
package aggregate

import (
	"context"
	"strings"

	"github.com/Natali-Skv/forum_tree/internal/models"
	"github.com/Natali-Skv/forum_tree/internal/store"
)

// PostsCreated accounts for a batch of posts inserted into forum.
func PostsCreated(ctx context.Context, tx store.Tx, forum string, posts []models.Post) error {
	if len(posts) == 0 {
		return nil
	}
	if err := tx.AddForumCounters(ctx, forum, len(posts), 0); err != nil {
		return err
	}

	seen := make(map[string]struct{}, len(posts))
	for _, p := range posts {
		k := strings.ToLower(p.AuthorNick)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		if err := tx.AddForumUser(ctx, forum, p.AuthorNick); err != nil {
			return err
		}
	}
	return nil
}

func ThreadCreated(ctx context.Context, tx store.Tx, forum, author string) error {
	if err := tx.AddForumCounters(ctx, forum, 0, 1); err != nil {
		return err
	}
	return tx.AddForumUser(ctx, forum, author)
}

// VotesChanged moves the thread tally by delta and returns the new tally.
// A zero delta touches nothing and returns current.
func VotesChanged(ctx context.Context, tx store.Tx, threadID, current, delta int) (int, error) {
	if delta == 0 {
		return current, nil
	}
	return tx.AddThreadVotes(ctx, threadID, delta)
}
