package response

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/Natali-Skv/forum_tree/internal/tools/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestStatus(t *testing.T) {
	cases := map[error]int{
		errors.ErrThreadNotFound:                          http.StatusNotFound,
		errors.ErrUserNotFound:                            http.StatusNotFound,
		errors.ErrParentNotFound:                          http.StatusConflict,
		errors.ErrCrossThreadParent:                       http.StatusConflict,
		errors.ErrDuplicate:                               http.StatusConflict,
		errors.ErrUnknownSort:                             http.StatusBadRequest,
		errors.StoreFailure(fmt.Errorf("conn reset")):     http.StatusInternalServerError,
		fmt.Errorf("wrapped: %w", errors.ErrPostNotFound): http.StatusNotFound,
	}
	for err, want := range cases {
		assert.Equal(t, want, Status(err), err.Error())
	}
}

func TestErrorHidesInternalMessage(t *testing.T) {
	herr := Error(zap.NewNop(), errors.StoreFailure(fmt.Errorf("password leaked")), "details")
	assert.Equal(t, http.StatusInternalServerError, herr.Code)
	assert.Equal(t, errors.INTERNAL_SERVER_ERROR, herr.Message)

	herr = Error(zap.NewNop(), errors.ErrForumNotFound, errors.NOT_FOUND_FORUM_BY_SLUG+"x")
	assert.Equal(t, http.StatusNotFound, herr.Code)
	assert.Equal(t, errors.NOT_FOUND_FORUM_BY_SLUG+"x", herr.Message)
}
