// Package metrics counts completed forum operations. The counters are
// served on /metrics next to the per-route request metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	CreateUser      = "create user"
	UpdateUser      = "update user"
	GetUser         = "get user"
	CreateForum     = "create forum"
	GetForum        = "get forum"
	GetForumUsers   = "get forum users"
	GetForumThreads = "get forum threads"
	CreateThread    = "create thread"
	UpdateThread    = "update thread"
	GetThread       = "get thread"
	Vote            = "vote"
	CreatePosts     = "create posts"
	GetThreadPosts  = "get thread posts"
	GetPost         = "get post"
	UpdatePost      = "update post"
	Status          = "status"
	Clear           = "clean"
)

var (
	operations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "forum",
		Name:      "operations_total",
		Help:      "Completed forum operations by name and outcome.",
	}, []string{"operation", "outcome"})

	postsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "forum",
		Name:      "posts_created_total",
		Help:      "Posts inserted, counted per post rather than per batch.",
	})
)

// Done records one finished operation; a nil err counts as "ok".
func Done(operation string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	operations.WithLabelValues(operation, outcome).Inc()
}

func PostsCreated(n int) {
	postsCreated.Add(float64(n))
}
