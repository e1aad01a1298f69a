package gateway

import (
	"context"

	"github.com/rpggio/corkboard/internal/domain/board"
	"github.com/rpggio/corkboard/internal/repository"
)

var siblingOrder = []repository.Order{{Column: "position"}, {Column: "created_at"}}

// ListLists returns the active lists of a board by position.
func (g *Gateway) ListLists(ctx context.Context, boardID string) ([]board.List, bool) {
	return g.lists(ctx, boardID, false)
}

// TrashedLists returns the trashed lists of a board by position.
func (g *Gateway) TrashedLists(ctx context.Context, boardID string) ([]board.List, bool) {
	return g.lists(ctx, boardID, true)
}

func (g *Gateway) lists(ctx context.Context, boardID string, deleted bool) ([]board.List, bool) {
	rows, ok := g.selectRows(ctx, tableLists, repository.Query{
		Eq:    map[string]any{"board_id": boardID, "deleted": deleted},
		Order: siblingOrder,
	})
	if !ok {
		return nil, false
	}
	out := make([]board.List, 0, len(rows))
	for _, r := range rows {
		out = append(out, g.toList(r))
	}
	return out, true
}

// CreateList inserts an active list at position.
func (g *Gateway) CreateList(ctx context.Context, boardID, title string, position int) (*board.List, bool) {
	row, err := g.insertRow(ctx, tableLists, repository.Row{
		"id":       g.newID(),
		"board_id": boardID,
		"title":    title,
		"position": position,
		"deleted":  false,
	})
	if err != nil {
		g.logger.Warn("create list failed", "board_id", boardID, "error", err)
		return nil, false
	}
	l := g.toList(row)
	return &l, true
}

// UpdateList applies a partial patch to a list.
func (g *Gateway) UpdateList(ctx context.Context, id string, patch board.ListPatch) bool {
	values := repository.Row{}
	if patch.Title != nil {
		values["title"] = *patch.Title
	}
	if patch.Position != nil {
		values["position"] = *patch.Position
	}
	if len(values) == 0 {
		g.logger.Warn("empty list patch", "id", id)
		return false
	}
	return g.updateByID(ctx, tableLists, id, values)
}
