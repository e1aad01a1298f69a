package mirror

import (
	"context"

	"github.com/rpggio/corkboard/internal/domain/assignment"
	"github.com/rpggio/corkboard/internal/domain/board"
	"github.com/rpggio/corkboard/internal/domain/trash"
)

// Gateway is the store surface a mirror reads and writes through.
type Gateway interface {
	trash.Gateway
	assignment.Gateway

	GetBoard(ctx context.Context, id string) (*board.Board, bool)
	ListLists(ctx context.Context, boardID string) ([]board.List, bool)
	ListCards(ctx context.Context, listID string) ([]board.Card, bool)
	CreateList(ctx context.Context, boardID, title string, position int) (*board.List, bool)
	UpdateList(ctx context.Context, id string, patch board.ListPatch) bool
	CreateCard(ctx context.Context, listID, title, description string, position int) (*board.Card, bool)
	UpdateCard(ctx context.Context, id string, patch board.CardPatch) bool
}
