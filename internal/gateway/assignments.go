package gateway

import (
	"context"
	"errors"

	"github.com/rpggio/corkboard/internal/domain/board"
	"github.com/rpggio/corkboard/internal/repository"
)

// CreateAssignment links a user to a card.
func (g *Gateway) CreateAssignment(ctx context.Context, cardID, userID string) board.WriteResult {
	_, err := g.insertRow(ctx, tableAssignments, repository.Row{
		"card_id": cardID,
		"user_id": userID,
	})
	switch {
	case err == nil:
		return board.WriteApplied
	case errors.Is(err, repository.ErrConflict):
		return board.WriteDuplicate
	default:
		g.logger.Warn("create assignment failed", "card_id", cardID, "user_id", userID, "error", err)
		return board.WriteFailed
	}
}

// DeleteAssignment unlinks a user from a card. A missing link is not a failure.
func (g *Gateway) DeleteAssignment(ctx context.Context, cardID, userID string) bool {
	_, ok := g.deleteRows(ctx, tableAssignments, map[string]any{"card_id": cardID, "user_id": userID})
	return ok
}

// Assignees returns the users assigned to a card in assignment order.
func (g *Gateway) Assignees(ctx context.Context, cardID string) ([]board.User, bool) {
	rows, ok := g.selectRows(ctx, tableAssignments, repository.Query{
		Eq: map[string]any{"card_id": cardID},
		Join: &repository.Join{
			Table:      tableUsers,
			LocalKey:   "user_id",
			ForeignKey: "id",
			Columns:    []string{"id", "username", "created_at"},
		},
		Order: []repository.Order{{Column: "created_at"}, {Column: "user_id"}},
	})
	if !ok {
		return nil, false
	}
	out := make([]board.User, 0, len(rows))
	for _, r := range rows {
		u := r.Nested(tableUsers)
		if u.String("id") == "" {
			g.logger.Warn("assignment references missing user", "card_id", cardID, "user_id", r.String("user_id"))
			continue
		}
		out = append(out, g.toUser(u))
	}
	return out, true
}
