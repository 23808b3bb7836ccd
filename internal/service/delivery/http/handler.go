package handler

import (
	"net/http"

	"github.com/Natali-Skv/forum_tree/internal/service"
	"github.com/Natali-Skv/forum_tree/internal/tools/errors"
	"github.com/Natali-Skv/forum_tree/internal/tools/metrics"
	"github.com/Natali-Skv/forum_tree/internal/tools/response"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type Handler struct {
	Repo service.Repo
	log  *zap.Logger
}

func NewHandler(repo service.Repo, log *zap.Logger) *Handler {
	return &Handler{Repo: repo, log: log}
}

func (h *Handler) Status(ctx echo.Context) (err error) {
	defer func() { metrics.Done(metrics.Status, err) }()

	status, err := h.Repo.Status(ctx.Request().Context())
	if err != nil {
		return response.Error(h.log, err, errors.INTERNAL_SERVER_ERROR)
	}
	return response.JSON(ctx, http.StatusOK, status)
}

func (h *Handler) ClearDB(ctx echo.Context) (err error) {
	defer func() { metrics.Done(metrics.Clear, err) }()

	if err := h.Repo.TruncateDB(ctx.Request().Context()); err != nil {
		return response.Error(h.log, err, errors.INTERNAL_SERVER_ERROR)
	}
	h.log.Info("store cleared")
	return ctx.NoContent(http.StatusOK)
}
