package handler

import (
	goErrors "errors"
	"net/http"

	"github.com/Natali-Skv/forum_tree/internal/models"
	threadRepo "github.com/Natali-Skv/forum_tree/internal/thread"
	"github.com/Natali-Skv/forum_tree/internal/tools/errors"
	"github.com/Natali-Skv/forum_tree/internal/tools/metrics"
	"github.com/Natali-Skv/forum_tree/internal/tools/response"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const (
	SlugCtxKey     = "slug"
	SlugOrIdCtxKey = "slug"
)

type Handler struct {
	Repo threadRepo.Repo
	log  *zap.Logger
}

func NewHandler(repo threadRepo.Repo, log *zap.Logger) *Handler {
	return &Handler{Repo: repo, log: log}
}

func (h *Handler) CreateThread(ctx echo.Context) (err error) {
	defer func() { metrics.Done(metrics.CreateThread, err) }()

	thread := models.Thread{}
	if err := response.Bind(ctx, &thread); err != nil {
		return err
	}
	thread.ForumSlug = ctx.Param(SlugCtxKey)

	newThread, err := h.Repo.Create(ctx.Request().Context(), thread)
	switch {
	case err == nil:
		return response.JSON(ctx, http.StatusCreated, newThread)
	case goErrors.Is(err, errors.ErrNumericSlug):
		return echo.NewHTTPError(http.StatusConflict, errors.NUMERIC_THREAD_SLUG+thread.Slug)
	case goErrors.Is(err, errors.ErrDuplicate):
		existing, err := h.Repo.GetBySlugOrId(ctx.Request().Context(), models.ThreadRef{Slug: thread.Slug})
		if err != nil {
			return response.Error(h.log, err, errors.INTERNAL_SERVER_ERROR)
		}
		return response.JSON(ctx, http.StatusConflict, existing)
	case goErrors.Is(err, errors.ErrUserNotFound):
		return echo.NewHTTPError(http.StatusNotFound, errors.NOT_FOUND_USER_BY_NICK+thread.AuthorNick)
	case goErrors.Is(err, errors.ErrForumNotFound):
		return echo.NewHTTPError(http.StatusNotFound, errors.NO_THREAD_FORUM+thread.ForumSlug)
	}
	return response.Error(h.log, err, errors.INTERNAL_SERVER_ERROR)
}

func (h *Handler) UpdateThread(ctx echo.Context) (err error) {
	defer func() { metrics.Done(metrics.UpdateThread, err) }()

	ref := models.ParseThreadRef(ctx.Param(SlugOrIdCtxKey))
	update := models.Thread{}
	if err := response.Bind(ctx, &update); err != nil {
		return err
	}

	thread, err := h.Repo.UpdateThread(ctx.Request().Context(), ref, update.Title, update.Message)
	if err != nil {
		return response.Error(h.log, err, errors.NO_THREAD+ref.String())
	}
	return response.JSON(ctx, http.StatusOK, thread)
}

func (h *Handler) GetThread(ctx echo.Context) (err error) {
	defer func() { metrics.Done(metrics.GetThread, err) }()

	ref := models.ParseThreadRef(ctx.Param(SlugOrIdCtxKey))
	thread, err := h.Repo.GetBySlugOrId(ctx.Request().Context(), ref)
	if err != nil {
		return response.Error(h.log, err, errors.NO_THREAD+ref.String())
	}
	return response.JSON(ctx, http.StatusOK, thread)
}

func (h *Handler) Vote(ctx echo.Context) (err error) {
	defer func() { metrics.Done(metrics.Vote, err) }()

	vote := models.Vote{}
	if err := response.Bind(ctx, &vote); err != nil {
		return err
	}
	ref := models.ParseThreadRef(ctx.Param(SlugOrIdCtxKey))

	thread, err := h.Repo.Vote(ctx.Request().Context(), ref, vote)
	switch {
	case err == nil:
		return response.JSON(ctx, http.StatusOK, thread)
	case goErrors.Is(err, errors.ErrThreadNotFound):
		return echo.NewHTTPError(http.StatusNotFound, errors.NO_THREAD+ref.String())
	case goErrors.Is(err, errors.ErrUserNotFound):
		return echo.NewHTTPError(http.StatusNotFound, errors.NOT_FOUND_USER_BY_NICK+vote.Nick)
	}
	return response.Error(h.log, err, errors.INTERNAL_SERVER_ERROR)
}
