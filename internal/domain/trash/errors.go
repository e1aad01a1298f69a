package trash

import (
	"fmt"

	"github.com/rpggio/corkboard/internal/domain/board"
)

var (
	// ErrInvalidTransition indicates the entity is not in a state the operation accepts.
	ErrInvalidTransition = fmt.Errorf("invalid trash transition: %w", board.ErrPrecondition)
	// ErrUntracked indicates the entity has not been observed through a load or trash listing.
	ErrUntracked = fmt.Errorf("entity state unknown: %w", board.ErrPrecondition)
	// ErrUnknownKind indicates an entity kind outside board, list and card.
	ErrUnknownKind = fmt.Errorf("unknown entity kind: %w", board.ErrPrecondition)
)
