// Package memory is an in-process store.Store. A single mutex is held for
// the whole of each transaction, so transactions are fully serialized;
// writes are journaled and undone when the transaction fails.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/Natali-Skv/forum_tree/internal/models"
	"github.com/Natali-Skv/forum_tree/internal/store"
	"github.com/Natali-Skv/forum_tree/internal/tools/errors"
	"github.com/go-openapi/strfmt"
)

type voteKey struct {
	threadID int
	nick     string
}

type state struct {
	users       map[string]models.User
	forums      map[string]*models.Forum
	forumUsers  map[string]map[string]string
	threads     map[int]*models.Thread
	threadSlugs map[string]int
	posts       map[int]*models.Post
	threadPosts map[int][]int
	votes       map[voteKey]int
}

func newState() *state {
	return &state{
		users:       make(map[string]models.User),
		forums:      make(map[string]*models.Forum),
		forumUsers:  make(map[string]map[string]string),
		threads:     make(map[int]*models.Thread),
		threadSlugs: make(map[string]int),
		posts:       make(map[int]*models.Post),
		threadPosts: make(map[int][]int),
		votes:       make(map[voteKey]int),
	}
}

type Store struct {
	mu           sync.Mutex
	st           *state
	lastPostID   int
	lastThreadID int
}

func New() *Store {
	return &Store{st: newState()}
}

func (s *Store) InTx(ctx context.Context, fn func(tx store.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return errors.StoreFailure(err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	t := &tx{s: s}
	if err := fn(t); err != nil {
		t.rollback()
		return err
	}
	return nil
}

type tx struct {
	s    *Store
	undo []func()
}

func (t *tx) onRollback(f func()) {
	t.undo = append(t.undo, f)
}

func (t *tx) rollback() {
	for i := len(t.undo) - 1; i >= 0; i-- {
		t.undo[i]()
	}
	t.undo = nil
}

func key(s string) string {
	return strings.ToLower(s)
}

func timeOf(d strfmt.DateTime) time.Time {
	return time.Time(d)
}

func (t *tx) CreateUser(_ context.Context, user models.User) error {
	st := t.s.st
	if _, ok := st.users[key(user.Nick)]; ok {
		return errors.ErrDuplicate
	}
	for _, u := range st.users {
		if key(u.Email) == key(user.Email) {
			return errors.ErrDuplicate
		}
	}
	k := key(user.Nick)
	st.users[k] = user
	t.onRollback(func() { delete(st.users, k) })
	return nil
}

func (t *tx) UserByNick(_ context.Context, nick string) (*models.User, error) {
	u, ok := t.s.st.users[key(nick)]
	if !ok {
		return nil, errors.ErrUserNotFound
	}
	return &u, nil
}

func (t *tx) UsersByNickOrEmail(_ context.Context, nick, email string) ([]models.User, error) {
	users := make([]models.User, 0, 2)
	for _, u := range t.s.st.users {
		if key(u.Nick) == key(nick) || key(u.Email) == key(email) {
			users = append(users, u)
		}
	}
	sort.Slice(users, func(i, j int) bool { return key(users[i].Nick) < key(users[j].Nick) })
	return users, nil
}

func (t *tx) UpdateUser(_ context.Context, user models.User) (*models.User, error) {
	st := t.s.st
	k := key(user.Nick)
	old, ok := st.users[k]
	if !ok {
		return nil, errors.ErrUserNotFound
	}
	if user.Email != "" {
		for other, u := range st.users {
			if other != k && key(u.Email) == key(user.Email) {
				return nil, errors.ErrEmailTaken
			}
		}
	}
	updated := old
	if user.Name != "" {
		updated.Name = user.Name
	}
	if user.Email != "" {
		updated.Email = user.Email
	}
	if user.About != "" {
		updated.About = user.About
	}
	st.users[k] = updated
	t.onRollback(func() { st.users[k] = old })
	return &updated, nil
}

func (t *tx) CreateForum(_ context.Context, forum models.Forum) error {
	st := t.s.st
	k := key(forum.Slug)
	if _, ok := st.forums[k]; ok {
		return errors.ErrDuplicate
	}
	forum.Posts, forum.Threads = 0, 0
	st.forums[k] = &forum
	t.onRollback(func() { delete(st.forums, k) })
	return nil
}

func (t *tx) ForumBySlug(_ context.Context, slug string) (*models.Forum, error) {
	f, ok := t.s.st.forums[key(slug)]
	if !ok {
		return nil, errors.ErrForumNotFound
	}
	forum := *f
	return &forum, nil
}

func (t *tx) AddForumCounters(_ context.Context, slug string, posts, threads int) error {
	f, ok := t.s.st.forums[key(slug)]
	if !ok {
		return errors.ErrForumNotFound
	}
	f.Posts += posts
	f.Threads += threads
	t.onRollback(func() {
		f.Posts -= posts
		f.Threads -= threads
	})
	return nil
}

func (t *tx) AddForumUser(_ context.Context, slug, nick string) error {
	st := t.s.st
	fk, uk := key(slug), key(nick)
	members, ok := st.forumUsers[fk]
	if !ok {
		members = make(map[string]string)
		st.forumUsers[fk] = members
	}
	if _, ok := members[uk]; ok {
		return nil
	}
	members[uk] = nick
	t.onRollback(func() { delete(members, uk) })
	return nil
}

func (t *tx) ForumUsers(_ context.Context, scan store.UserScan) ([]models.User, error) {
	st := t.s.st
	since := key(scan.Since)
	users := make([]models.User, 0)
	for uk := range st.forumUsers[key(scan.Forum)] {
		if scan.Since != "" {
			if scan.Desc && uk >= since || !scan.Desc && uk <= since {
				continue
			}
		}
		if u, ok := st.users[uk]; ok {
			users = append(users, u)
		}
	}
	sort.Slice(users, func(i, j int) bool {
		if scan.Desc {
			return key(users[i].Nick) > key(users[j].Nick)
		}
		return key(users[i].Nick) < key(users[j].Nick)
	})
	if scan.Limit > 0 && len(users) > scan.Limit {
		users = users[:scan.Limit]
	}
	return users, nil
}

func (t *tx) ForumThreads(_ context.Context, scan store.ThreadScan) ([]models.Thread, error) {
	threads := make([]models.Thread, 0)
	for _, th := range t.s.st.threads {
		if key(th.ForumSlug) != key(scan.Forum) {
			continue
		}
		if !scan.Since.IsZero() {
			created := timeOf(th.Created)
			if scan.Desc && created.After(scan.Since) || !scan.Desc && created.Before(scan.Since) {
				continue
			}
		}
		threads = append(threads, *th)
	}
	sort.Slice(threads, func(i, j int) bool {
		ci, cj := timeOf(threads[i].Created), timeOf(threads[j].Created)
		if !ci.Equal(cj) {
			return ci.Before(cj) != scan.Desc
		}
		return threads[i].Id < threads[j].Id != scan.Desc
	})
	if scan.Limit > 0 && len(threads) > scan.Limit {
		threads = threads[:scan.Limit]
	}
	return threads, nil
}

func (t *tx) CreateThread(_ context.Context, thread models.Thread) (int, error) {
	st := t.s.st
	sk := key(thread.Slug)
	if thread.Slug != "" {
		if _, ok := st.threadSlugs[sk]; ok {
			return 0, errors.ErrDuplicate
		}
	}
	t.s.lastThreadID++
	thread.Id = t.s.lastThreadID
	thread.Votes = 0
	st.threads[thread.Id] = &thread
	if thread.Slug != "" {
		st.threadSlugs[sk] = thread.Id
	}
	t.onRollback(func() {
		delete(st.threads, thread.Id)
		if thread.Slug != "" {
			delete(st.threadSlugs, sk)
		}
	})
	return thread.Id, nil
}

func (t *tx) lookupThread(ref models.ThreadRef) (*models.Thread, bool) {
	st := t.s.st
	id := ref.Id
	if ref.Slug != "" {
		var ok bool
		if id, ok = st.threadSlugs[key(ref.Slug)]; !ok {
			return nil, false
		}
	}
	th, ok := st.threads[id]
	return th, ok
}

func (t *tx) Thread(_ context.Context, ref models.ThreadRef, _ bool) (*models.Thread, error) {
	th, ok := t.lookupThread(ref)
	if !ok {
		return nil, errors.ErrThreadNotFound
	}
	thread := *th
	return &thread, nil
}

func (t *tx) UpdateThread(_ context.Context, thread models.Thread) error {
	th, ok := t.s.st.threads[thread.Id]
	if !ok {
		return errors.ErrThreadNotFound
	}
	old := *th
	th.Title, th.Message = thread.Title, thread.Message
	t.onRollback(func() { *th = old })
	return nil
}

func (t *tx) AddThreadVotes(_ context.Context, threadID, delta int) (int, error) {
	th, ok := t.s.st.threads[threadID]
	if !ok {
		return 0, errors.ErrThreadNotFound
	}
	th.Votes += delta
	t.onRollback(func() { th.Votes -= delta })
	return th.Votes, nil
}

func (t *tx) Vote(_ context.Context, threadID int, nick string) (int, bool, error) {
	voice, ok := t.s.st.votes[voteKey{threadID, key(nick)}]
	return voice, ok, nil
}

func (t *tx) InsertVote(_ context.Context, vote models.Vote) error {
	st := t.s.st
	k := voteKey{vote.ThreadId, key(vote.Nick)}
	if _, ok := st.votes[k]; ok {
		return errors.ErrDuplicate
	}
	st.votes[k] = vote.Voice
	t.onRollback(func() { delete(st.votes, k) })
	return nil
}

func (t *tx) UpdateVote(_ context.Context, vote models.Vote) error {
	st := t.s.st
	k := voteKey{vote.ThreadId, key(vote.Nick)}
	old, ok := st.votes[k]
	if !ok {
		return errors.ErrNotFound
	}
	st.votes[k] = vote.Voice
	t.onRollback(func() { st.votes[k] = old })
	return nil
}

func (t *tx) NextPostID(_ context.Context) (int, error) {
	t.s.lastPostID++
	return t.s.lastPostID, nil
}

func (t *tx) InsertPost(_ context.Context, post models.Post) error {
	st := t.s.st
	if _, ok := st.posts[post.Id]; ok {
		return errors.ErrDuplicate
	}
	st.posts[post.Id] = &post
	ids := st.threadPosts[post.ThreadId]
	st.threadPosts[post.ThreadId] = append(ids, post.Id)
	t.onRollback(func() {
		delete(st.posts, post.Id)
		st.threadPosts[post.ThreadId] = ids
	})
	return nil
}

func (t *tx) Post(_ context.Context, id int) (*models.Post, error) {
	p, ok := t.s.st.posts[id]
	if !ok {
		return nil, errors.ErrPostNotFound
	}
	post := *p
	return &post, nil
}

func (t *tx) UpdatePostMessage(_ context.Context, id int, message string) error {
	p, ok := t.s.st.posts[id]
	if !ok {
		return errors.ErrPostNotFound
	}
	old := *p
	p.Message, p.IsEdited = message, true
	t.onRollback(func() { *p = old })
	return nil
}

func (t *tx) threadPosts(threadID int, keep func(p *models.Post) bool) []models.Post {
	st := t.s.st
	posts := make([]models.Post, 0)
	for _, id := range st.threadPosts[threadID] {
		if p := st.posts[id]; keep(p) {
			posts = append(posts, *p)
		}
	}
	return posts
}

func (t *tx) ScanPosts(_ context.Context, scan store.PostScan) ([]models.Post, error) {
	var posts []models.Post
	switch scan.Order {
	case store.OrderByPath:
		posts = t.threadPosts(scan.ThreadID, func(p *models.Post) bool {
			if scan.AfterPath == nil {
				return true
			}
			c := p.Path.Compare(scan.AfterPath)
			return scan.Desc && c < 0 || !scan.Desc && c > 0
		})
		sort.Slice(posts, func(i, j int) bool {
			return posts[i].Path.Compare(posts[j].Path) < 0 != scan.Desc
		})
	default:
		posts = t.threadPosts(scan.ThreadID, func(p *models.Post) bool {
			if scan.AfterID == 0 {
				return true
			}
			return scan.Desc && p.Id < scan.AfterID || !scan.Desc && p.Id > scan.AfterID
		})
		sort.Slice(posts, func(i, j int) bool {
			return posts[i].Id < posts[j].Id != scan.Desc
		})
	}
	if scan.Limit > 0 && len(posts) > scan.Limit {
		posts = posts[:scan.Limit]
	}
	return posts, nil
}

func (t *tx) RootGroups(_ context.Context, scan store.GroupScan) ([]int64, error) {
	roots := t.threadPosts(scan.ThreadID, func(p *models.Post) bool {
		if p.ParentId != 0 {
			return false
		}
		if scan.AfterGroup == 0 {
			return true
		}
		return scan.Desc && p.TreeGroup < scan.AfterGroup || !scan.Desc && p.TreeGroup > scan.AfterGroup
	})
	groups := make([]int64, 0, len(roots))
	for _, r := range roots {
		groups = append(groups, r.TreeGroup)
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i] < groups[j] != scan.Desc })
	if scan.Limit > 0 && len(groups) > scan.Limit {
		groups = groups[:scan.Limit]
	}
	return groups, nil
}

func (t *tx) PostsInGroups(_ context.Context, threadID int, groups []int64, desc bool) ([]models.Post, error) {
	selected := make(map[int64]struct{}, len(groups))
	for _, g := range groups {
		selected[g] = struct{}{}
	}
	posts := t.threadPosts(threadID, func(p *models.Post) bool {
		_, ok := selected[p.TreeGroup]
		return ok
	})
	sort.Slice(posts, func(i, j int) bool {
		if posts[i].TreeGroup != posts[j].TreeGroup {
			return posts[i].TreeGroup < posts[j].TreeGroup != desc
		}
		return posts[i].Path.Compare(posts[j].Path) < 0
	})
	return posts, nil
}

func (t *tx) Status(_ context.Context) (*models.Status, error) {
	st := t.s.st
	return &models.Status{
		Users:   len(st.users),
		Forums:  len(st.forums),
		Threads: len(st.threads),
		Posts:   len(st.posts),
	}, nil
}

func (t *tx) Truncate(_ context.Context) error {
	old := t.s.st
	t.s.st = newState()
	t.onRollback(func() { t.s.st = old })
	return nil
}
