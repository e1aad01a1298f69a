package mirror

import (
	"errors"
	"fmt"

	"github.com/rpggio/corkboard/internal/domain/board"
)

var (
	// ErrNotLoaded indicates the board has not been loaded, or was purged.
	ErrNotLoaded = fmt.Errorf("board not loaded: %w", board.ErrPrecondition)
	// ErrBoardTrashed indicates the board is in the trash and cannot be edited.
	ErrBoardTrashed = fmt.Errorf("board is in the trash: %w", board.ErrPrecondition)
	// ErrListNotFound indicates the list is not on the mirrored board.
	ErrListNotFound = fmt.Errorf("list not on board: %w", board.ErrPrecondition)
	// ErrCardNotFound indicates the card is not in the expected list.
	ErrCardNotFound = fmt.Errorf("card not on board: %w", board.ErrPrecondition)
	// ErrEmptyPatch indicates an update that would change nothing.
	ErrEmptyPatch = fmt.Errorf("nothing to update: %w", board.ErrPrecondition)
	// ErrOtherBoard indicates an operation aimed at a board, list or card this mirror doesn't hold.
	ErrOtherBoard = fmt.Errorf("board is not mirrored here: %w", board.ErrPrecondition)
	// ErrDesync indicates a write succeeded remotely but its target is missing locally.
	ErrDesync = errors.New("mirror out of sync with store")
)
