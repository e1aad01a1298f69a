package board

import (
	"errors"
	"fmt"
)

var (
	// ErrTransport indicates the remote store could not complete a read or write.
	ErrTransport = errors.New("remote store unavailable")
	// ErrPrecondition indicates the operation was rejected before reaching the store.
	ErrPrecondition = errors.New("precondition failed")
	// ErrConflict indicates the write collided with an existing row.
	ErrConflict = errors.New("conflict")
	// ErrNotFound indicates the board doesn't exist.
	ErrNotFound = errors.New("board not found")

	// ErrBlankTitle rejects titles that are empty after trimming.
	ErrBlankTitle = fmt.Errorf("title must not be blank: %w", ErrPrecondition)
	// ErrBlankUsername rejects usernames that are empty after trimming.
	ErrBlankUsername = fmt.Errorf("username must not be blank: %w", ErrPrecondition)
	// ErrUsernameTaken indicates another user already has the username.
	ErrUsernameTaken = fmt.Errorf("username already taken: %w", ErrConflict)
)
