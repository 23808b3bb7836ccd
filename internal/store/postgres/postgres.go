// Package postgres is the store.Store used in production, backed by a pgx
// connection pool. Every query is a named statement prepared once on the
// pool.
package postgres

import (
	"context"
	_ "embed"
	goErrors "errors"
	"time"

	"github.com/Natali-Skv/forum_tree/internal/models"
	"github.com/Natali-Skv/forum_tree/internal/store"
	"github.com/Natali-Skv/forum_tree/internal/tools/errors"
	"github.com/go-openapi/strfmt"
	"github.com/jackc/pgx"
	"go.uber.org/zap"
)

//go:embed schema.sql
var schema string

const (
	codeUniqueViolation = "23505"
)

const (
	postColumns   = "id, parent, author, forum, thread, message, is_edited, created, level, tree_group, path"
	threadColumns = "id, COALESCE(slug, ''), title, message, author, forum, votes, created"
	userColumns   = "nickname, fullname, email, about"
)

var statements = map[string]string{
	"create_user":                  "INSERT INTO users(nickname, fullname, email, about) VALUES ($1, $2, $3, $4)",
	"get_user_by_nick":             "SELECT " + userColumns + " FROM users WHERE lower(nickname) = lower($1)",
	"get_users_by_nick_email":      "SELECT " + userColumns + " FROM users WHERE lower(nickname) = lower($1) OR lower(email) = lower($2) ORDER BY lower(nickname) COLLATE \"C\"",
	"update_user":                  "UPDATE users SET fullname = COALESCE(NULLIF($2, ''), fullname), email = COALESCE(NULLIF($3, ''), email), about = COALESCE(NULLIF($4, ''), about) WHERE lower(nickname) = lower($1) RETURNING " + userColumns,
	"create_forum":                 "INSERT INTO forums(slug, title, nickname) VALUES ($1, $2, $3)",
	"get_forum_by_slug":            "SELECT slug, title, nickname, posts, threads FROM forums WHERE lower(slug) = lower($1)",
	"add_forum_counters":           "UPDATE forums SET posts = posts + $2, threads = threads + $3 WHERE lower(slug) = lower($1)",
	"add_forum_user":               "INSERT INTO forum_users(forum, nickname) VALUES (lower($1), lower($2)) ON CONFLICT DO NOTHING",
	"get_forum_users":              "SELECT u.nickname, u.fullname, u.email, u.about FROM forum_users fu JOIN users u ON lower(u.nickname) = fu.nickname WHERE fu.forum = lower($1) ORDER BY fu.nickname COLLATE \"C\" LIMIT $2",
	"get_forum_users_since":        "SELECT u.nickname, u.fullname, u.email, u.about FROM forum_users fu JOIN users u ON lower(u.nickname) = fu.nickname WHERE fu.forum = lower($1) AND fu.nickname COLLATE \"C\" > lower($3) COLLATE \"C\" ORDER BY fu.nickname COLLATE \"C\" LIMIT $2",
	"get_forum_users_desc":         "SELECT u.nickname, u.fullname, u.email, u.about FROM forum_users fu JOIN users u ON lower(u.nickname) = fu.nickname WHERE fu.forum = lower($1) ORDER BY fu.nickname COLLATE \"C\" DESC LIMIT $2",
	"get_forum_users_since_desc":   "SELECT u.nickname, u.fullname, u.email, u.about FROM forum_users fu JOIN users u ON lower(u.nickname) = fu.nickname WHERE fu.forum = lower($1) AND fu.nickname COLLATE \"C\" < lower($3) COLLATE \"C\" ORDER BY fu.nickname COLLATE \"C\" DESC LIMIT $2",
	"get_forum_threads":            "SELECT " + threadColumns + " FROM threads WHERE lower(forum) = lower($1) ORDER BY created, id LIMIT $2",
	"get_forum_threads_since":      "SELECT " + threadColumns + " FROM threads WHERE lower(forum) = lower($1) AND created >= $3 ORDER BY created, id LIMIT $2",
	"get_forum_threads_desc":       "SELECT " + threadColumns + " FROM threads WHERE lower(forum) = lower($1) ORDER BY created DESC, id DESC LIMIT $2",
	"get_forum_threads_since_desc": "SELECT " + threadColumns + " FROM threads WHERE lower(forum) = lower($1) AND created <= $3 ORDER BY created DESC, id DESC LIMIT $2",

	"create_thread":       "INSERT INTO threads(slug, title, message, author, forum, created) VALUES (NULLIF($1, ''), $2, $3, $4, $5, $6) RETURNING id",
	"get_thread_by_id":    "SELECT " + threadColumns + " FROM threads WHERE id = $1",
	"get_thread_by_slug":  "SELECT " + threadColumns + " FROM threads WHERE lower(slug) = lower($1)",
	"lock_thread_by_id":   "SELECT " + threadColumns + " FROM threads WHERE id = $1 FOR UPDATE",
	"lock_thread_by_slug": "SELECT " + threadColumns + " FROM threads WHERE lower(slug) = lower($1) FOR UPDATE",
	"update_thread":       "UPDATE threads SET title = $2, message = $3 WHERE id = $1",
	"add_thread_votes":    "UPDATE threads SET votes = votes + $2 WHERE id = $1 RETURNING votes",
	"get_vote":            "SELECT voice FROM votes WHERE thread = $1 AND nickname = lower($2)",
	"insert_vote":         "INSERT INTO votes(thread, nickname, voice) VALUES ($1, lower($2), $3)",
	"update_vote":         "UPDATE votes SET voice = $3 WHERE thread = $1 AND nickname = lower($2)",

	"next_post_id":               "SELECT nextval('posts_id_seq')",
	"insert_post":                "INSERT INTO posts(" + postColumns + ") VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)",
	"get_post":                   "SELECT " + postColumns + " FROM posts WHERE id = $1",
	"update_post_message":        "UPDATE posts SET message = $2, is_edited = TRUE WHERE id = $1",
	"scan_posts_id":              "SELECT " + postColumns + " FROM posts WHERE thread = $1 ORDER BY id LIMIT $2",
	"scan_posts_id_desc":         "SELECT " + postColumns + " FROM posts WHERE thread = $1 ORDER BY id DESC LIMIT $2",
	"scan_posts_id_after":        "SELECT " + postColumns + " FROM posts WHERE thread = $1 AND id > $3 ORDER BY id LIMIT $2",
	"scan_posts_id_after_desc":   "SELECT " + postColumns + " FROM posts WHERE thread = $1 AND id < $3 ORDER BY id DESC LIMIT $2",
	"scan_posts_path":            "SELECT " + postColumns + " FROM posts WHERE thread = $1 ORDER BY path LIMIT $2",
	"scan_posts_path_desc":       "SELECT " + postColumns + " FROM posts WHERE thread = $1 ORDER BY path DESC LIMIT $2",
	"scan_posts_path_after":      "SELECT " + postColumns + " FROM posts WHERE thread = $1 AND path > $3::BIGINT[] ORDER BY path LIMIT $2",
	"scan_posts_path_after_desc": "SELECT " + postColumns + " FROM posts WHERE thread = $1 AND path < $3::BIGINT[] ORDER BY path DESC LIMIT $2",
	"root_groups":                "SELECT tree_group FROM posts WHERE thread = $1 AND parent = 0 ORDER BY tree_group LIMIT $2",
	"root_groups_desc":           "SELECT tree_group FROM posts WHERE thread = $1 AND parent = 0 ORDER BY tree_group DESC LIMIT $2",
	"root_groups_after":          "SELECT tree_group FROM posts WHERE thread = $1 AND parent = 0 AND tree_group > $3 ORDER BY tree_group LIMIT $2",
	"root_groups_after_desc":     "SELECT tree_group FROM posts WHERE thread = $1 AND parent = 0 AND tree_group < $3 ORDER BY tree_group DESC LIMIT $2",
	"posts_in_groups":            "SELECT " + postColumns + " FROM posts WHERE thread = $1 AND tree_group = ANY($2::BIGINT[]) ORDER BY tree_group, path",
	"posts_in_groups_desc":       "SELECT " + postColumns + " FROM posts WHERE thread = $1 AND tree_group = ANY($2::BIGINT[]) ORDER BY tree_group DESC, path",

	"status": "SELECT (SELECT COUNT(*) FROM users), (SELECT COUNT(*) FROM forums), (SELECT COUNT(*) FROM threads), (SELECT COUNT(*) FROM posts)",
}

const truncate = "TRUNCATE users, forums, forum_users, threads, posts, votes"

type Store struct {
	pool *pgx.ConnPool
	log  *zap.Logger
}

// Migrate applies the embedded schema. It is idempotent.
func Migrate(pool *pgx.ConnPool) error {
	if _, err := pool.Exec(schema); err != nil {
		return errors.StoreFailure(err)
	}
	return nil
}

// New prepares every statement on the pool. The schema must exist.
func New(pool *pgx.ConnPool, log *zap.Logger) (*Store, error) {
	for name, sql := range statements {
		if _, err := pool.Prepare(name, sql); err != nil {
			log.Error("prepare statement", zap.String("name", name), zap.Error(err))
			return nil, errors.StoreFailure(err)
		}
	}
	return &Store{pool: pool, log: log}, nil
}

func (s *Store) InTx(ctx context.Context, fn func(tx store.Tx) error) error {
	pgTx, err := s.pool.BeginEx(ctx, &pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return errors.StoreFailure(err)
	}
	if err := fn(&tx{tx: pgTx}); err != nil {
		if rbErr := pgTx.RollbackEx(ctx); rbErr != nil {
			s.log.Warn("rollback", zap.Error(rbErr))
		}
		return err
	}
	if err := pgTx.CommitEx(ctx); err != nil {
		return classify(err, nil)
	}
	return nil
}

type tx struct {
	tx *pgx.Tx
}

// classify maps a driver error to an error kind. A nil notFound means an
// empty result is itself a failure.
func classify(err error, notFound error) error {
	return classifyUnique(err, notFound, errors.ErrDuplicate)
}

func classifyUnique(err error, notFound, duplicate error) error {
	if err == nil {
		return nil
	}
	if notFound != nil && goErrors.Is(err, pgx.ErrNoRows) {
		return notFound
	}
	var pgErr pgx.PgError
	if goErrors.As(err, &pgErr) && pgErr.Code == codeUniqueViolation {
		return duplicate
	}
	return errors.StoreFailure(err)
}

func limitArg(limit int) interface{} {
	if limit <= 0 {
		return nil
	}
	return limit
}

func (t *tx) exec(ctx context.Context, name string, args ...interface{}) (pgx.CommandTag, error) {
	return t.tx.ExecEx(ctx, name, nil, args...)
}

func (t *tx) CreateUser(ctx context.Context, user models.User) error {
	_, err := t.exec(ctx, "create_user", user.Nick, user.Name, user.Email, user.About)
	return classify(err, nil)
}

func scanUser(row interface{ Scan(...interface{}) error }) (*models.User, error) {
	u := &models.User{}
	if err := row.Scan(&u.Nick, &u.Name, &u.Email, &u.About); err != nil {
		return nil, err
	}
	return u, nil
}

func (t *tx) UserByNick(ctx context.Context, nick string) (*models.User, error) {
	u, err := scanUser(t.tx.QueryRowEx(ctx, "get_user_by_nick", nil, nick))
	if err != nil {
		return nil, classify(err, errors.ErrUserNotFound)
	}
	return u, nil
}

func (t *tx) UsersByNickOrEmail(ctx context.Context, nick, email string) ([]models.User, error) {
	rows, err := t.tx.QueryEx(ctx, "get_users_by_nick_email", nil, nick, email)
	if err != nil {
		return nil, classify(err, nil)
	}
	return collectUsers(rows)
}

func collectUsers(rows *pgx.Rows) ([]models.User, error) {
	defer rows.Close()
	users := make([]models.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, classify(err, nil)
		}
		users = append(users, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(err, nil)
	}
	return users, nil
}

func (t *tx) UpdateUser(ctx context.Context, user models.User) (*models.User, error) {
	u, err := scanUser(t.tx.QueryRowEx(ctx, "update_user", nil, user.Nick, user.Name, user.Email, user.About))
	if err != nil {
		return nil, classifyUnique(err, errors.ErrUserNotFound, errors.ErrEmailTaken)
	}
	return u, nil
}

func (t *tx) CreateForum(ctx context.Context, forum models.Forum) error {
	_, err := t.exec(ctx, "create_forum", forum.Slug, forum.Title, forum.UserNick)
	return classify(err, nil)
}

func (t *tx) ForumBySlug(ctx context.Context, slug string) (*models.Forum, error) {
	f := &models.Forum{}
	err := t.tx.QueryRowEx(ctx, "get_forum_by_slug", nil, slug).Scan(&f.Slug, &f.Title, &f.UserNick, &f.Posts, &f.Threads)
	if err != nil {
		return nil, classify(err, errors.ErrForumNotFound)
	}
	return f, nil
}

func (t *tx) AddForumCounters(ctx context.Context, slug string, posts, threads int) error {
	tag, err := t.exec(ctx, "add_forum_counters", slug, posts, threads)
	if err != nil {
		return classify(err, nil)
	}
	if tag.RowsAffected() == 0 {
		return errors.ErrForumNotFound
	}
	return nil
}

func (t *tx) AddForumUser(ctx context.Context, slug, nick string) error {
	_, err := t.exec(ctx, "add_forum_user", slug, nick)
	return classify(err, nil)
}

func (t *tx) ForumUsers(ctx context.Context, scan store.UserScan) ([]models.User, error) {
	name, args := "get_forum_users", []interface{}{scan.Forum, limitArg(scan.Limit)}
	if scan.Since != "" {
		name += "_since"
		args = append(args, scan.Since)
	}
	if scan.Desc {
		name += "_desc"
	}
	rows, err := t.tx.QueryEx(ctx, name, nil, args...)
	if err != nil {
		return nil, classify(err, nil)
	}
	return collectUsers(rows)
}

func scanThread(row interface{ Scan(...interface{}) error }) (*models.Thread, error) {
	th := &models.Thread{}
	var created time.Time
	if err := row.Scan(&th.Id, &th.Slug, &th.Title, &th.Message, &th.AuthorNick, &th.ForumSlug, &th.Votes, &created); err != nil {
		return nil, err
	}
	th.Created = strfmt.DateTime(created.UTC())
	return th, nil
}

func (t *tx) ForumThreads(ctx context.Context, scan store.ThreadScan) ([]models.Thread, error) {
	name, args := "get_forum_threads", []interface{}{scan.Forum, limitArg(scan.Limit)}
	if !scan.Since.IsZero() {
		name += "_since"
		args = append(args, scan.Since)
	}
	if scan.Desc {
		name += "_desc"
	}
	rows, err := t.tx.QueryEx(ctx, name, nil, args...)
	if err != nil {
		return nil, classify(err, nil)
	}
	defer rows.Close()

	threads := make([]models.Thread, 0)
	for rows.Next() {
		th, err := scanThread(rows)
		if err != nil {
			return nil, classify(err, nil)
		}
		threads = append(threads, *th)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(err, nil)
	}
	return threads, nil
}

func (t *tx) CreateThread(ctx context.Context, thread models.Thread) (int, error) {
	var id int
	err := t.tx.QueryRowEx(ctx, "create_thread", nil,
		thread.Slug, thread.Title, thread.Message, thread.AuthorNick, thread.ForumSlug, time.Time(thread.Created),
	).Scan(&id)
	if err != nil {
		return 0, classify(err, nil)
	}
	return id, nil
}

func (t *tx) Thread(ctx context.Context, ref models.ThreadRef, forUpdate bool) (*models.Thread, error) {
	name := "get_thread"
	if forUpdate {
		name = "lock_thread"
	}
	var row *pgx.Row
	if ref.Slug != "" {
		row = t.tx.QueryRowEx(ctx, name+"_by_slug", nil, ref.Slug)
	} else {
		row = t.tx.QueryRowEx(ctx, name+"_by_id", nil, ref.Id)
	}
	th, err := scanThread(row)
	if err != nil {
		return nil, classify(err, errors.ErrThreadNotFound)
	}
	return th, nil
}

func (t *tx) UpdateThread(ctx context.Context, thread models.Thread) error {
	tag, err := t.exec(ctx, "update_thread", thread.Id, thread.Title, thread.Message)
	if err != nil {
		return classify(err, nil)
	}
	if tag.RowsAffected() == 0 {
		return errors.ErrThreadNotFound
	}
	return nil
}

func (t *tx) AddThreadVotes(ctx context.Context, threadID, delta int) (int, error) {
	var votes int
	if err := t.tx.QueryRowEx(ctx, "add_thread_votes", nil, threadID, delta).Scan(&votes); err != nil {
		return 0, classify(err, errors.ErrThreadNotFound)
	}
	return votes, nil
}

func (t *tx) Vote(ctx context.Context, threadID int, nick string) (int, bool, error) {
	var voice int
	err := t.tx.QueryRowEx(ctx, "get_vote", nil, threadID, nick).Scan(&voice)
	if goErrors.Is(err, pgx.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, classify(err, nil)
	}
	return voice, true, nil
}

func (t *tx) InsertVote(ctx context.Context, vote models.Vote) error {
	_, err := t.exec(ctx, "insert_vote", vote.ThreadId, vote.Nick, vote.Voice)
	return classify(err, nil)
}

func (t *tx) UpdateVote(ctx context.Context, vote models.Vote) error {
	_, err := t.exec(ctx, "update_vote", vote.ThreadId, vote.Nick, vote.Voice)
	return classify(err, nil)
}

func (t *tx) NextPostID(ctx context.Context) (int, error) {
	var id int
	if err := t.tx.QueryRowEx(ctx, "next_post_id", nil).Scan(&id); err != nil {
		return 0, classify(err, nil)
	}
	return id, nil
}

func (t *tx) InsertPost(ctx context.Context, p models.Post) error {
	_, err := t.exec(ctx, "insert_post",
		p.Id, p.ParentId, p.AuthorNick, p.ForumSlug, p.ThreadId, p.Message, p.IsEdited,
		time.Time(p.Created), p.Level, p.TreeGroup, []int64(p.Path),
	)
	return classify(err, nil)
}

func scanPost(row interface{ Scan(...interface{}) error }) (*models.Post, error) {
	p := &models.Post{}
	var created time.Time
	var path []int64
	err := row.Scan(&p.Id, &p.ParentId, &p.AuthorNick, &p.ForumSlug, &p.ThreadId, &p.Message, &p.IsEdited,
		&created, &p.Level, &p.TreeGroup, &path)
	if err != nil {
		return nil, err
	}
	p.Created = strfmt.DateTime(created.UTC())
	p.Path = models.Path(path)
	return p, nil
}

func collectPosts(rows *pgx.Rows) ([]models.Post, error) {
	defer rows.Close()
	posts := make([]models.Post, 0)
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, classify(err, nil)
		}
		posts = append(posts, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(err, nil)
	}
	return posts, nil
}

func (t *tx) Post(ctx context.Context, id int) (*models.Post, error) {
	p, err := scanPost(t.tx.QueryRowEx(ctx, "get_post", nil, id))
	if err != nil {
		return nil, classify(err, errors.ErrPostNotFound)
	}
	return p, nil
}

func (t *tx) UpdatePostMessage(ctx context.Context, id int, message string) error {
	tag, err := t.exec(ctx, "update_post_message", id, message)
	if err != nil {
		return classify(err, nil)
	}
	if tag.RowsAffected() == 0 {
		return errors.ErrPostNotFound
	}
	return nil
}

func (t *tx) ScanPosts(ctx context.Context, scan store.PostScan) ([]models.Post, error) {
	name, args := "scan_posts_id", []interface{}{scan.ThreadID, limitArg(scan.Limit)}
	if scan.Order == store.OrderByPath {
		name = "scan_posts_path"
		if scan.AfterPath != nil {
			name += "_after"
			args = append(args, []int64(scan.AfterPath))
		}
	} else if scan.AfterID != 0 {
		name += "_after"
		args = append(args, scan.AfterID)
	}
	if scan.Desc {
		name += "_desc"
	}
	rows, err := t.tx.QueryEx(ctx, name, nil, args...)
	if err != nil {
		return nil, classify(err, nil)
	}
	return collectPosts(rows)
}

func (t *tx) RootGroups(ctx context.Context, scan store.GroupScan) ([]int64, error) {
	name, args := "root_groups", []interface{}{scan.ThreadID, limitArg(scan.Limit)}
	if scan.AfterGroup != 0 {
		name += "_after"
		args = append(args, scan.AfterGroup)
	}
	if scan.Desc {
		name += "_desc"
	}
	rows, err := t.tx.QueryEx(ctx, name, nil, args...)
	if err != nil {
		return nil, classify(err, nil)
	}
	defer rows.Close()

	groups := make([]int64, 0)
	for rows.Next() {
		var g int64
		if err := rows.Scan(&g); err != nil {
			return nil, classify(err, nil)
		}
		groups = append(groups, g)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(err, nil)
	}
	return groups, nil
}

func (t *tx) PostsInGroups(ctx context.Context, threadID int, groups []int64, desc bool) ([]models.Post, error) {
	name := "posts_in_groups"
	if desc {
		name += "_desc"
	}
	rows, err := t.tx.QueryEx(ctx, name, nil, threadID, groups)
	if err != nil {
		return nil, classify(err, nil)
	}
	return collectPosts(rows)
}

func (t *tx) Status(ctx context.Context) (*models.Status, error) {
	st := &models.Status{}
	err := t.tx.QueryRowEx(ctx, "status", nil).Scan(&st.Users, &st.Forums, &st.Threads, &st.Posts)
	if err != nil {
		return nil, classify(err, nil)
	}
	return st, nil
}

func (t *tx) Truncate(ctx context.Context) error {
	_, err := t.exec(ctx, truncate)
	return classify(err, nil)
}
