package gateway

import (
	"context"
	"errors"

	"github.com/rpggio/corkboard/internal/domain/board"
	"github.com/rpggio/corkboard/internal/repository"
)

// ListUsers returns every user by username.
func (g *Gateway) ListUsers(ctx context.Context) ([]board.User, bool) {
	rows, ok := g.selectRows(ctx, tableUsers, repository.Query{
		Order: []repository.Order{{Column: "username"}},
	})
	if !ok {
		return nil, false
	}
	out := make([]board.User, 0, len(rows))
	for _, r := range rows {
		out = append(out, g.toUser(r))
	}
	return out, true
}

// CreateUser inserts a user. A taken username is a duplicate, not a failure.
func (g *Gateway) CreateUser(ctx context.Context, username string) (*board.User, board.WriteResult) {
	row, err := g.insertRow(ctx, tableUsers, repository.Row{
		"id":       g.newID(),
		"username": username,
	})
	if err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, board.WriteDuplicate
		}
		g.logger.Warn("create user failed", "error", err)
		return nil, board.WriteFailed
	}
	u := g.toUser(row)
	return &u, board.WriteApplied
}
