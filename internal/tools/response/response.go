// Package response reads request bodies and writes replies with easyjson,
// and turns store errors into HTTP errors.
package response

import (
	goErrors "errors"
	"net/http"

	"github.com/Natali-Skv/forum_tree/internal/tools/errors"
	"github.com/labstack/echo/v4"
	"github.com/mailru/easyjson"
	"go.uber.org/zap"
)

func Bind(ctx echo.Context, v easyjson.Unmarshaler) error {
	if err := easyjson.UnmarshalFromReader(ctx.Request().Body, v); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.BAD_BODY)
	}
	return nil
}

func JSON(ctx echo.Context, status int, v easyjson.Marshaler) error {
	resp := ctx.Response()
	resp.Header().Set(echo.HeaderContentType, echo.MIMEApplicationJSONCharsetUTF8)
	resp.WriteHeader(status)
	_, err := easyjson.MarshalToWriter(v, resp)
	return err
}

// Status maps an error kind to its HTTP status.
func Status(err error) int {
	switch {
	case goErrors.Is(err, errors.ErrNotFound):
		return http.StatusNotFound
	case goErrors.Is(err, errors.ErrConflict), goErrors.Is(err, errors.ErrInvalidReference):
		return http.StatusConflict
	case goErrors.Is(err, errors.ErrBadRequest):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// Error converts err to an echo HTTP error carrying msg. Unclassified
// errors become a logged 500 with a generic message.
func Error(log *zap.Logger, err error, msg string) *echo.HTTPError {
	status := Status(err)
	if status == http.StatusInternalServerError {
		log.Error("request failed", zap.Error(err))
		return echo.NewHTTPError(status, errors.INTERNAL_SERVER_ERROR)
	}
	return echo.NewHTTPError(status, msg)
}
