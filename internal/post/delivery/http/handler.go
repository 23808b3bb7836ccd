package handler

import (
	goErrors "errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/Natali-Skv/forum_tree/internal/models"
	"github.com/Natali-Skv/forum_tree/internal/pagination"
	postRepo "github.com/Natali-Skv/forum_tree/internal/post"
	"github.com/Natali-Skv/forum_tree/internal/post/tree"
	"github.com/Natali-Skv/forum_tree/internal/tools/errors"
	"github.com/Natali-Skv/forum_tree/internal/tools/metrics"
	"github.com/Natali-Skv/forum_tree/internal/tools/response"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const (
	SlugOrIdCtxKey     = "slug"
	IdCtxKey           = "id"
	DescSortQueryParam = "desc"
	SinceQueryParam    = "since"
	LimitQueryParam    = "limit"
	SortQueryParam     = "sort"
	RelatedQueryParam  = "related"
)

type Handler struct {
	Repo postRepo.Repo
	log  *zap.Logger
}

func NewHandler(repo postRepo.Repo, log *zap.Logger) *Handler {
	return &Handler{Repo: repo, log: log}
}

func (h *Handler) CreatePost(ctx echo.Context) (err error) {
	defer func() { metrics.Done(metrics.CreatePosts, err) }()

	posts := models.Posts{}
	if err := response.Bind(ctx, &posts); err != nil {
		return err
	}
	ref := models.ParseThreadRef(ctx.Param(SlugOrIdCtxKey))

	created, err := h.Repo.Create(ctx.Request().Context(), ref, posts)
	switch {
	case err == nil:
	case goErrors.Is(err, errors.ErrThreadNotFound):
		return echo.NewHTTPError(http.StatusNotFound, errors.NO_THREAD+ref.String())
	case goErrors.Is(err, errors.ErrUserNotFound):
		return echo.NewHTTPError(http.StatusNotFound, errors.NOT_FOUND_POST_AUTHOR_BY_NICK+unknownNick(err))
	case goErrors.Is(err, errors.ErrParentNotFound), goErrors.Is(err, errors.ErrCrossThreadParent):
		return echo.NewHTTPError(http.StatusConflict, errors.NO_PARENT_POST)
	default:
		return response.Error(h.log, err, errors.INTERNAL_SERVER_ERROR)
	}
	metrics.PostsCreated(len(created))
	return response.JSON(ctx, http.StatusCreated, models.Posts(created))
}

func unknownNick(err error) string {
	var unknown *errors.UnknownUserError
	if goErrors.As(err, &unknown) {
		return unknown.Nick
	}
	return ""
}

func (h *Handler) GetThreadPosts(ctx echo.Context) (err error) {
	defer func() { metrics.Done(metrics.GetThreadPosts, err) }()

	ref := models.ParseThreadRef(ctx.Param(SlugOrIdCtxKey))
	mode, err := tree.ParseMode(ctx.QueryParam(SortQueryParam))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.UNKNOWN_SORT_TYPE)
	}
	since, _ := strconv.Atoi(ctx.QueryParam(SinceQueryParam))
	cur := pagination.New(
		pagination.ParseLimit(ctx.QueryParam(LimitQueryParam)),
		since,
		pagination.ParseDesc(ctx.QueryParam(DescSortQueryParam)),
	)

	posts, err := h.Repo.GetThreadPosts(ctx.Request().Context(), ref, mode, cur)
	if err != nil {
		return response.Error(h.log, err, errors.NO_THREAD+ref.String())
	}
	return response.JSON(ctx, http.StatusOK, models.Posts(posts))
}

func (h *Handler) GetPost(ctx echo.Context) (err error) {
	defer func() { metrics.Done(metrics.GetPost, err) }()

	id, _ := strconv.Atoi(ctx.Param(IdCtxKey))
	var related []string
	if raw := ctx.QueryParam(RelatedQueryParam); raw != "" {
		related = strings.Split(raw, ",")
	}

	full, err := h.Repo.GetPostByIdRelated(ctx.Request().Context(), id, related)
	if err != nil {
		return response.Error(h.log, err, errors.NO_POST+strconv.Itoa(id))
	}
	return response.JSON(ctx, http.StatusOK, full)
}

func (h *Handler) UpdatePost(ctx echo.Context) (err error) {
	defer func() { metrics.Done(metrics.UpdatePost, err) }()

	id, _ := strconv.Atoi(ctx.Param(IdCtxKey))
	update := models.PostUpdate{}
	if err := response.Bind(ctx, &update); err != nil {
		return err
	}

	post, err := h.Repo.UpdatePost(ctx.Request().Context(), id, update.Message)
	if err != nil {
		return response.Error(h.log, err, errors.NO_POST+strconv.Itoa(id))
	}
	return response.JSON(ctx, http.StatusOK, post)
}
