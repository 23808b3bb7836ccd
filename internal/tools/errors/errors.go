package errors

import (
	goErrors "errors"
	"fmt"
)

const (
	BAD_BODY                      = "invalid request body"
	INTERNAL_SERVER_ERROR         = "internal server error"
	NOT_FOUND_USER_BY_NICK        = "Can't find user by nickname: "
	NOT_FOUND_POST_AUTHOR_BY_NICK = "Can't find post author by nickname: "
	NOT_FOUND_FORUM_BY_SLUG       = "Can't find forum with slug: "
	EMAIL_ALREADY_IN_USE          = "This email is already registered by user: "
	NO_THREAD                     = "Can't find thread by slug or id: "
	NO_PARENT_POST                = "Parent post was created in another thread"
	NO_POST                       = "Can't find post with id: "
	NO_THREAD_FORUM               = "Can't find thread forum by slug: "
	NUMERIC_THREAD_SLUG           = "Thread slug must not be a number: "
	UNKNOWN_SORT_TYPE             = "unknown sort type"
)

// Error kinds. Callers classify with errors.Is against these.
var (
	ErrNotFound         = goErrors.New("not found")
	ErrConflict         = goErrors.New("conflict")
	ErrInvalidReference = goErrors.New("invalid reference")
	ErrStoreFailure     = goErrors.New("store failure")
	ErrBadRequest       = goErrors.New("bad request")
)

var (
	ErrUserNotFound   = fmt.Errorf("user %w", ErrNotFound)
	ErrForumNotFound  = fmt.Errorf("forum %w", ErrNotFound)
	ErrThreadNotFound = fmt.Errorf("thread %w", ErrNotFound)
	ErrPostNotFound   = fmt.Errorf("post %w", ErrNotFound)

	ErrParentNotFound    = fmt.Errorf("parent post: %w", ErrInvalidReference)
	ErrCrossThreadParent = fmt.Errorf("parent post belongs to another thread: %w", ErrConflict)
	ErrDuplicate         = fmt.Errorf("duplicate: %w", ErrConflict)
	ErrEmailTaken        = fmt.Errorf("email already in use: %w", ErrConflict)
	ErrNumericSlug       = fmt.Errorf("numeric thread slug: %w", ErrConflict)

	ErrUnknownSort = fmt.Errorf("%s: %w", UNKNOWN_SORT_TYPE, ErrBadRequest)
)

// UnknownUserError names the nickname a lookup failed on.
type UnknownUserError struct {
	Nick string
}

func (e *UnknownUserError) Error() string {
	return ErrUserNotFound.Error() + ": " + e.Nick
}

func (e *UnknownUserError) Unwrap() error {
	return ErrUserNotFound
}

func UnknownUser(nick string) error {
	return &UnknownUserError{Nick: nick}
}

// StoreFailure marks err as a failure of the underlying store. Errors
// that already carry a kind are returned unchanged.
func StoreFailure(err error) error {
	if err == nil || IsKind(err) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrStoreFailure, err)
}

// IsKind reports whether err is already classified.
func IsKind(err error) bool {
	return goErrors.Is(err, ErrNotFound) ||
		goErrors.Is(err, ErrConflict) ||
		goErrors.Is(err, ErrInvalidReference) ||
		goErrors.Is(err, ErrStoreFailure) ||
		goErrors.Is(err, ErrBadRequest)
}
