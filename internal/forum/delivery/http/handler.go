package handler

import (
	goErrors "errors"
	"net/http"
	"time"

	forumRepo "github.com/Natali-Skv/forum_tree/internal/forum"
	"github.com/Natali-Skv/forum_tree/internal/models"
	"github.com/Natali-Skv/forum_tree/internal/pagination"
	"github.com/Natali-Skv/forum_tree/internal/tools/errors"
	"github.com/Natali-Skv/forum_tree/internal/tools/metrics"
	"github.com/Natali-Skv/forum_tree/internal/tools/response"
	"github.com/go-openapi/strfmt"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const (
	SlugCtxKey         = "slug"
	DescSortQueryParam = "desc"
	SinceQueryParam    = "since"
	LimitQueryParam    = "limit"
)

type Handler struct {
	Repo forumRepo.Repo
	log  *zap.Logger
}

func NewHandler(repo forumRepo.Repo, log *zap.Logger) *Handler {
	return &Handler{Repo: repo, log: log}
}

func (h *Handler) CreateForum(ctx echo.Context) (err error) {
	defer func() { metrics.Done(metrics.CreateForum, err) }()

	forum := models.Forum{}
	if err := response.Bind(ctx, &forum); err != nil {
		return err
	}

	newForum, err := h.Repo.Create(ctx.Request().Context(), forum)
	switch {
	case err == nil:
		return response.JSON(ctx, http.StatusCreated, newForum)
	case goErrors.Is(err, errors.ErrDuplicate):
		existing, err := h.Repo.GetBySlug(ctx.Request().Context(), forum.Slug)
		if err != nil {
			return response.Error(h.log, err, errors.INTERNAL_SERVER_ERROR)
		}
		return response.JSON(ctx, http.StatusConflict, existing)
	case goErrors.Is(err, errors.ErrUserNotFound):
		return echo.NewHTTPError(http.StatusNotFound, errors.NOT_FOUND_USER_BY_NICK+forum.UserNick)
	}
	return response.Error(h.log, err, errors.INTERNAL_SERVER_ERROR)
}

func (h *Handler) GetForum(ctx echo.Context) (err error) {
	defer func() { metrics.Done(metrics.GetForum, err) }()

	slug := ctx.Param(SlugCtxKey)
	forum, err := h.Repo.GetBySlug(ctx.Request().Context(), slug)
	if err != nil {
		return response.Error(h.log, err, errors.NOT_FOUND_FORUM_BY_SLUG+slug)
	}
	return response.JSON(ctx, http.StatusOK, forum)
}

func (h *Handler) GetForumThreads(ctx echo.Context) (err error) {
	defer func() { metrics.Done(metrics.GetForumThreads, err) }()

	slug := ctx.Param(SlugCtxKey)
	var since time.Time
	if raw := ctx.QueryParam(SinceQueryParam); raw != "" {
		parsed, err := strfmt.ParseDateTime(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, errors.BAD_BODY)
		}
		since = time.Time(parsed)
	}
	cur := pagination.New(
		pagination.ParseLimit(ctx.QueryParam(LimitQueryParam)),
		since,
		pagination.ParseDesc(ctx.QueryParam(DescSortQueryParam)),
	)

	threads, err := h.Repo.GetForumThreads(ctx.Request().Context(), slug, cur)
	if err != nil {
		return response.Error(h.log, err, errors.NOT_FOUND_FORUM_BY_SLUG+slug)
	}
	return response.JSON(ctx, http.StatusOK, models.Threads(threads))
}

func (h *Handler) GetForumUsers(ctx echo.Context) (err error) {
	defer func() { metrics.Done(metrics.GetForumUsers, err) }()

	slug := ctx.Param(SlugCtxKey)
	cur := pagination.New(
		pagination.ParseLimit(ctx.QueryParam(LimitQueryParam)),
		ctx.QueryParam(SinceQueryParam),
		pagination.ParseDesc(ctx.QueryParam(DescSortQueryParam)),
	)

	users, err := h.Repo.GetForumUsers(ctx.Request().Context(), slug, cur)
	if err != nil {
		return response.Error(h.log, err, errors.NOT_FOUND_FORUM_BY_SLUG+slug)
	}
	return response.JSON(ctx, http.StatusOK, models.Users(users))
}
