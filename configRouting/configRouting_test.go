package configRouting

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/Natali-Skv/forum_tree/internal/models"
	"github.com/Natali-Skv/forum_tree/internal/store/memory"
	"github.com/labstack/echo/v4"
	"github.com/mailru/easyjson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type api struct {
	t *testing.T
	e *echo.Echo
}

func newAPI(t *testing.T) *api {
	e := echo.New()
	NewHandlers(memory.New(), zap.NewNop()).ConfigureRouting(e)
	return &api{t: t, e: e}
}

func (a *api) do(method, target, body string) *httptest.ResponseRecorder {
	a.t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, req)
	return rec
}

func (a *api) decode(rec *httptest.ResponseRecorder, v easyjson.Unmarshaler) {
	a.t.Helper()
	require.NoError(a.t, easyjson.Unmarshal(rec.Body.Bytes(), v), rec.Body.String())
}

func (a *api) seed() {
	rec := a.do(http.MethodPost, "/api/user/alice/create", `{"fullname":"Alice","email":"alice@example.com","about":"hi"}`)
	require.Equal(a.t, http.StatusCreated, rec.Code, rec.Body.String())
	rec = a.do(http.MethodPost, "/api/forum/create", `{"slug":"pirates","title":"Pirates","user":"ALICE"}`)
	require.Equal(a.t, http.StatusCreated, rec.Code, rec.Body.String())
	rec = a.do(http.MethodPost, "/api/forum/pirates/create", `{"slug":"treasure","title":"Treasure","author":"alice","message":"where?"}`)
	require.Equal(a.t, http.StatusCreated, rec.Code, rec.Body.String())
}

func (a *api) posts(target string) models.Posts {
	a.t.Helper()
	rec := a.do(http.MethodGet, target, "")
	require.Equal(a.t, http.StatusOK, rec.Code, rec.Body.String())
	var posts models.Posts
	a.decode(rec, &posts)
	return posts
}

func TestForumFlow(t *testing.T) {
	a := newAPI(t)
	a.seed()

	var forum models.Forum
	a.decode(a.do(http.MethodGet, "/api/forum/PIRATES/details", ""), &forum)
	assert.Equal(t, "alice", forum.UserNick)
	assert.Equal(t, 1, forum.Threads)

	rec := a.do(http.MethodPost, "/api/thread/treasure/create", `[{"author":"alice","message":"root"}]`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created models.Posts
	a.decode(rec, &created)
	require.Len(t, created, 1)
	assert.Equal(t, "pirates", created[0].ForumSlug)
	assert.NotContains(t, rec.Body.String(), "path")

	rec = a.do(http.MethodPost, "/api/thread/1/create",
		`[{"author":"alice","message":"reply","parent":`+itoa(created[0].Id)+`},{"author":"alice","message":"second root"}]`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	flat := a.posts("/api/thread/treasure/posts?limit=10")
	require.Len(t, flat, 3)
	assert.Equal(t, created[0].Id, flat[0].Id)

	parentTree := a.posts("/api/thread/treasure/posts?sort=parent_tree&limit=1&desc=true")
	require.Len(t, parentTree, 1)
	assert.Equal(t, "second root", parentTree[0].Message)

	tree := a.posts("/api/thread/treasure/posts?sort=tree&since=" + itoa(created[0].Id))
	require.Len(t, tree, 2)
	assert.Equal(t, "reply", tree[0].Message)

	a.decode(a.do(http.MethodGet, "/api/forum/pirates/details", ""), &forum)
	assert.Equal(t, 3, forum.Posts)

	rec = a.do(http.MethodGet, "/api/forum/pirates/users", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var users models.Users
	a.decode(rec, &users)
	require.Len(t, users, 1)
	assert.Equal(t, "alice", users[0].Nick)
}

func TestPostErrors(t *testing.T) {
	a := newAPI(t)
	a.seed()

	rec := a.do(http.MethodPost, "/api/thread/nowhere/create", `[]`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Can't find thread by slug or id: nowhere")

	rec = a.do(http.MethodPost, "/api/thread/treasure/create", `[]`)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = a.do(http.MethodPost, "/api/thread/treasure/create", `[{"author":"alice","message":"hi"},{"author":"ghost","message":"boo"}]`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Can't find post author by nickname: ghost")

	rec = a.do(http.MethodPost, "/api/thread/treasure/create", `[{"author":"alice","message":"x","parent":42}]`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = a.do(http.MethodGet, "/api/thread/treasure/posts?sort=sideways", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = a.do(http.MethodGet, "/api/thread/404/posts", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Can't find thread by slug or id: 404")

	rec = a.do(http.MethodPost, "/api/thread/treasure/create", `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	assert.Empty(t, a.posts("/api/thread/treasure/posts"))
}

func TestPostDetailsAndEdit(t *testing.T) {
	a := newAPI(t)
	a.seed()
	rec := a.do(http.MethodPost, "/api/thread/treasure/create", `[{"author":"alice","message":"hello"}]`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var created models.Posts
	a.decode(rec, &created)
	id := itoa(created[0].Id)

	rec = a.do(http.MethodPost, "/api/post/"+id+"/details", `{"message":"hello"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var post models.Post
	a.decode(rec, &post)
	assert.False(t, post.IsEdited)

	rec = a.do(http.MethodPost, "/api/post/"+id+"/details", `{"message":"bye"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	a.decode(rec, &post)
	assert.True(t, post.IsEdited)

	rec = a.do(http.MethodGet, "/api/post/"+id+"/details?related=user,thread,forum", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var full models.PostFull
	a.decode(rec, &full)
	require.NotNil(t, full.User)
	require.NotNil(t, full.Thread)
	require.NotNil(t, full.Forum)
	assert.Equal(t, "bye", full.Post.Message)
	assert.Equal(t, "treasure", full.Thread.Slug)

	rec = a.do(http.MethodGet, "/api/post/9999/details", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestVotes(t *testing.T) {
	a := newAPI(t)
	a.seed()
	a.do(http.MethodPost, "/api/user/bob/create", `{"fullname":"Bob","email":"bob@example.com"}`)

	vote := func(target, body string) int {
		rec := a.do(http.MethodPost, target, body)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var th models.Thread
		a.decode(rec, &th)
		return th.Votes
	}
	assert.Equal(t, 1, vote("/api/thread/treasure/vote", `{"nickname":"alice","voice":1}`))
	assert.Equal(t, 1, vote("/api/thread/1/vote", `{"nickname":"alice","voice":1}`))
	assert.Equal(t, 0, vote("/api/thread/1/vote", `{"nickname":"bob","voice":-1}`))
	assert.Equal(t, -2, vote("/api/thread/1/vote", `{"nickname":"alice","voice":-1}`))

	rec := a.do(http.MethodPost, "/api/thread/99/vote", `{"nickname":"alice","voice":1}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	rec = a.do(http.MethodPost, "/api/thread/1/vote", `{"nickname":"ghost","voice":1}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestConflicts(t *testing.T) {
	a := newAPI(t)
	a.seed()

	rec := a.do(http.MethodPost, "/api/user/ALICE/create", `{"fullname":"A","email":"x@example.com"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	var users models.Users
	a.decode(rec, &users)
	require.Len(t, users, 1)
	assert.Equal(t, "alice", users[0].Nick)

	rec = a.do(http.MethodPost, "/api/forum/create", `{"slug":"PIRATES","title":"again","user":"alice"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = a.do(http.MethodPost, "/api/forum/pirates/create", `{"slug":"Treasure","title":"again","author":"alice","message":"m"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	var th models.Thread
	a.decode(rec, &th)
	assert.Equal(t, "treasure", th.Slug)

	rec = a.do(http.MethodPost, "/api/forum/pirates/create", `{"slug":"123","title":"numeric","author":"alice","message":"m"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	a.do(http.MethodPost, "/api/user/bob/create", `{"fullname":"Bob","email":"bob@example.com"}`)
	rec = a.do(http.MethodPost, "/api/user/bob/profile", `{"email":"ALICE@example.com"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "alice")

	rec = a.do(http.MethodPost, "/api/user/nobody/profile", `{"about":"x"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServiceStatusAndClear(t *testing.T) {
	a := newAPI(t)
	a.seed()
	a.do(http.MethodPost, "/api/thread/treasure/create", `[{"author":"alice","message":"m"},{"author":"alice","message":"n"}]`)

	var status models.Status
	a.decode(a.do(http.MethodGet, "/api/service/status", ""), &status)
	assert.Equal(t, models.Status{Users: 1, Forums: 1, Threads: 1, Posts: 2}, status)

	rec := a.do(http.MethodPost, "/api/service/clear", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	a.decode(a.do(http.MethodGet, "/api/service/status", ""), &status)
	assert.Equal(t, models.Status{}, status)
}

func TestForumThreads(t *testing.T) {
	a := newAPI(t)
	a.seed()
	for i, created := range []string{"2022-01-01T00:00:00.000Z", "2022-01-02T00:00:00.000Z", "2022-01-03T00:00:00.000Z"} {
		rec := a.do(http.MethodPost, "/api/forum/pirates/create",
			`{"title":"t`+itoa(i)+`","author":"alice","message":"m","created":"`+created+`"}`)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	}

	threads := func(target string) []string {
		rec := a.do(http.MethodGet, target, "")
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var list models.Threads
		a.decode(rec, &list)
		titles := make([]string, 0, len(list))
		for _, th := range list {
			titles = append(titles, th.Title)
		}
		return titles
	}

	assert.Equal(t, []string{"t1", "t2"}, threads("/api/forum/pirates/threads?limit=2&since=2022-01-02T00:00:00.000Z"))
	assert.Equal(t, []string{"t1", "t0"}, threads("/api/forum/pirates/threads?desc=true&since=2022-01-02T00:00:00.000Z"))
	assert.Equal(t, []string{"t0"}, threads("/api/forum/pirates/threads?limit=1"))

	rec := a.do(http.MethodGet, "/api/forum/nowhere/threads", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	rec = a.do(http.MethodGet, "/api/forum/nowhere/users", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func itoa(i int) string {
	return strconv.Itoa(i)
}
