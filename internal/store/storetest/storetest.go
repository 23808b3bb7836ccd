// Package storetest seeds stores for package tests and checks that a
// store.Store implementation behaves like the others.
package storetest

import (
	"context"
	"testing"
	"time"

	"github.com/Natali-Skv/forum_tree/internal/models"
	"github.com/Natali-Skv/forum_tree/internal/store"
	"github.com/go-openapi/strfmt"
	"github.com/stretchr/testify/require"
)

// Fixture is a forum with one thread, created by Author.
type Fixture struct {
	Author string
	Forum  string
	Thread models.Thread
}

func User(t testing.TB, s store.Store, nick string) models.User {
	t.Helper()
	u := models.User{Nick: nick, Name: nick + " name", Email: nick + "@example.com", About: "about " + nick}
	require.NoError(t, s.InTx(context.Background(), func(tx store.Tx) error {
		return tx.CreateUser(context.Background(), u)
	}))
	return u
}

func Forum(t testing.TB, s store.Store, slug, owner string) models.Forum {
	t.Helper()
	f := models.Forum{Slug: slug, Title: "forum " + slug, UserNick: owner}
	require.NoError(t, s.InTx(context.Background(), func(tx store.Tx) error {
		return tx.CreateForum(context.Background(), f)
	}))
	return f
}

func Thread(t testing.TB, s store.Store, forum, author, slug string) models.Thread {
	t.Helper()
	th := models.Thread{
		Slug:       slug,
		Title:      "thread " + slug,
		AuthorNick: author,
		ForumSlug:  forum,
		Message:    "hello",
		Created:    strfmt.DateTime(time.Date(2022, 6, 1, 12, 0, 0, 0, time.UTC)),
	}
	require.NoError(t, s.InTx(context.Background(), func(tx store.Tx) error {
		id, err := tx.CreateThread(context.Background(), th)
		th.Id = id
		return err
	}))
	return th
}

func Seed(t testing.TB, s store.Store) Fixture {
	t.Helper()
	User(t, s, "alice")
	Forum(t, s, "pirates", "alice")
	return Fixture{
		Author: "alice",
		Forum:  "pirates",
		Thread: Thread(t, s, "pirates", "alice", "treasure"),
	}
}
