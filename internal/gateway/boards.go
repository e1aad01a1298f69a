package gateway

import (
	"context"

	"github.com/rpggio/corkboard/internal/domain/board"
	"github.com/rpggio/corkboard/internal/repository"
)

var boardOrder = []repository.Order{{Column: "created_at"}, {Column: "id"}}

// GetBoard fetches one board, trashed or not. A missing board is (nil, true).
func (g *Gateway) GetBoard(ctx context.Context, id string) (*board.Board, bool) {
	rows, ok := g.selectRows(ctx, tableBoards, repository.Query{Eq: map[string]any{"id": id}})
	if !ok {
		return nil, false
	}
	if len(rows) == 0 {
		return nil, true
	}
	b := g.toBoard(rows[0])
	return &b, true
}

// ListBoards returns active boards, oldest first.
func (g *Gateway) ListBoards(ctx context.Context) ([]board.Board, bool) {
	return g.boards(ctx, false)
}

// TrashedBoards returns every trashed board, oldest first.
func (g *Gateway) TrashedBoards(ctx context.Context) ([]board.Board, bool) {
	return g.boards(ctx, true)
}

func (g *Gateway) boards(ctx context.Context, deleted bool) ([]board.Board, bool) {
	rows, ok := g.selectRows(ctx, tableBoards, repository.Query{
		Eq:    map[string]any{"deleted": deleted},
		Order: boardOrder,
	})
	if !ok {
		return nil, false
	}
	out := make([]board.Board, 0, len(rows))
	for _, r := range rows {
		out = append(out, g.toBoard(r))
	}
	return out, true
}

// CreateBoard inserts an active board.
func (g *Gateway) CreateBoard(ctx context.Context, title string, isPublic bool) (*board.Board, bool) {
	row, err := g.insertRow(ctx, tableBoards, repository.Row{
		"id":        g.newID(),
		"title":     title,
		"is_public": isPublic,
		"deleted":   false,
	})
	if err != nil {
		g.logger.Warn("create board failed", "error", err)
		return nil, false
	}
	b := g.toBoard(row)
	return &b, true
}
