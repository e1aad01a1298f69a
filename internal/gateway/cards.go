package gateway

import (
	"context"

	"github.com/rpggio/corkboard/internal/domain/board"
	"github.com/rpggio/corkboard/internal/repository"
)

// ListCards returns the active cards of a list by position.
func (g *Gateway) ListCards(ctx context.Context, listID string) ([]board.Card, bool) {
	rows, ok := g.selectRows(ctx, tableCards, repository.Query{
		Eq:    map[string]any{"list_id": listID, "deleted": false},
		Order: siblingOrder,
	})
	if !ok {
		return nil, false
	}
	return g.cards(rows), true
}

// TrashedCards returns the trashed cards whose list belongs to boardID.
// The list itself may be active or trashed.
func (g *Gateway) TrashedCards(ctx context.Context, boardID string) ([]board.Card, bool) {
	rows, ok := g.selectRows(ctx, tableCards, repository.Query{
		Eq: map[string]any{"deleted": true},
		Join: &repository.Join{
			Table:      tableLists,
			LocalKey:   "list_id",
			ForeignKey: "id",
			Columns:    []string{"board_id"},
			Eq:         map[string]any{"board_id": boardID},
		},
		Order: siblingOrder,
	})
	if !ok {
		return nil, false
	}
	return g.cards(rows), true
}

func (g *Gateway) cards(rows []repository.Row) []board.Card {
	out := make([]board.Card, 0, len(rows))
	for _, r := range rows {
		out = append(out, g.toCard(r))
	}
	return out
}

// CreateCard inserts an active card at position.
func (g *Gateway) CreateCard(ctx context.Context, listID, title, description string, position int) (*board.Card, bool) {
	row, err := g.insertRow(ctx, tableCards, repository.Row{
		"id":          g.newID(),
		"list_id":     listID,
		"title":       title,
		"description": description,
		"position":    position,
		"deleted":     false,
	})
	if err != nil {
		g.logger.Warn("create card failed", "list_id", listID, "error", err)
		return nil, false
	}
	c := g.toCard(row)
	return &c, true
}

// UpdateCard applies a partial patch to a card. Moving a card is a patch of
// its list and position.
func (g *Gateway) UpdateCard(ctx context.Context, id string, patch board.CardPatch) bool {
	values := repository.Row{}
	if patch.Title != nil {
		values["title"] = *patch.Title
	}
	if patch.Description != nil {
		values["description"] = *patch.Description
	}
	if patch.ListID != nil {
		values["list_id"] = *patch.ListID
	}
	if patch.Position != nil {
		values["position"] = *patch.Position
	}
	if len(values) == 0 {
		g.logger.Warn("empty card patch", "id", id)
		return false
	}
	return g.updateByID(ctx, tableCards, id, values)
}
