package trash

import (
	"context"

	"github.com/rpggio/corkboard/internal/domain/board"
)

// Gateway persists lifecycle transitions and lists trashed entities.
type Gateway interface {
	SoftDelete(ctx context.Context, kind board.Kind, id string) bool
	Restore(ctx context.Context, kind board.Kind, id string, position *int) bool
	HardDelete(ctx context.Context, kind board.Kind, id string) bool
	TrashedBoards(ctx context.Context) ([]board.Board, bool)
	TrashedLists(ctx context.Context, boardID string) ([]board.List, bool)
	TrashedCards(ctx context.Context, boardID string) ([]board.Card, bool)
}
