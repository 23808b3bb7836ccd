package handler

import (
	goErrors "errors"
	"net/http"

	"github.com/Natali-Skv/forum_tree/internal/models"
	"github.com/Natali-Skv/forum_tree/internal/tools/errors"
	"github.com/Natali-Skv/forum_tree/internal/tools/metrics"
	"github.com/Natali-Skv/forum_tree/internal/tools/response"
	"github.com/Natali-Skv/forum_tree/internal/user"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type Handler struct {
	Repo user.Repo
	log  *zap.Logger
}

const (
	NickCtxKey = "username"
)

func NewHandler(repo user.Repo, log *zap.Logger) *Handler {
	return &Handler{Repo: repo, log: log}
}

func (h *Handler) CreateUser(ctx echo.Context) (err error) {
	defer func() { metrics.Done(metrics.CreateUser, err) }()

	newUserReq := models.User{}
	if err := response.Bind(ctx, &newUserReq); err != nil {
		return err
	}
	newUserReq.Nick = ctx.Param(NickCtxKey)

	newUserResp, err := h.Repo.Create(ctx.Request().Context(), newUserReq)
	if goErrors.Is(err, errors.ErrDuplicate) {
		conflictUsers, err := h.Repo.GetByEmailOrNick(ctx.Request().Context(), newUserReq)
		if err != nil || len(conflictUsers) == 0 {
			return response.Error(h.log, errors.StoreFailure(err), errors.INTERNAL_SERVER_ERROR)
		}
		return response.JSON(ctx, http.StatusConflict, models.Users(conflictUsers))
	}
	if err != nil {
		return response.Error(h.log, err, errors.INTERNAL_SERVER_ERROR)
	}
	return response.JSON(ctx, http.StatusCreated, newUserResp)
}

func (h *Handler) GetUser(ctx echo.Context) (err error) {
	defer func() { metrics.Done(metrics.GetUser, err) }()

	nick := ctx.Param(NickCtxKey)
	userResp, err := h.Repo.GetByNick(ctx.Request().Context(), nick)
	if err != nil {
		return response.Error(h.log, err, errors.NOT_FOUND_USER_BY_NICK+nick)
	}
	return response.JSON(ctx, http.StatusOK, userResp)
}

func (h *Handler) UpdateUser(ctx echo.Context) (err error) {
	defer func() { metrics.Done(metrics.UpdateUser, err) }()

	updateUserReq := models.User{}
	if err := response.Bind(ctx, &updateUserReq); err != nil {
		return err
	}
	updateUserReq.Nick = ctx.Param(NickCtxKey)

	newUserResp, err := h.Repo.Update(ctx.Request().Context(), updateUserReq)
	switch {
	case err == nil:
		return response.JSON(ctx, http.StatusOK, newUserResp)
	case goErrors.Is(err, errors.ErrUserNotFound):
		return echo.NewHTTPError(http.StatusNotFound, errors.NOT_FOUND_USER_BY_NICK+updateUserReq.Nick)
	case goErrors.Is(err, errors.ErrEmailTaken):
		owner, err := h.Repo.GetByEmail(ctx.Request().Context(), updateUserReq.Email)
		if err != nil {
			return response.Error(h.log, errors.StoreFailure(err), errors.INTERNAL_SERVER_ERROR)
		}
		return echo.NewHTTPError(http.StatusConflict, errors.EMAIL_ALREADY_IN_USE+owner)
	}
	return response.Error(h.log, err, errors.INTERNAL_SERVER_ERROR)
}
