package gateway

import (
	"context"

	"github.com/rpggio/corkboard/internal/domain/board"
	"github.com/rpggio/corkboard/internal/repository"
)

// SoftDelete flags an entity as trashed.
func (g *Gateway) SoftDelete(ctx context.Context, kind board.Kind, id string) bool {
	table, ok := tableFor(kind)
	if !ok {
		g.logger.Warn("soft delete of unknown kind", "kind", kind)
		return false
	}
	return g.updateByID(ctx, table, id, repository.Row{"deleted": true})
}

// Restore clears the trashed flag, moving lists and cards to position when given.
func (g *Gateway) Restore(ctx context.Context, kind board.Kind, id string, position *int) bool {
	table, ok := tableFor(kind)
	if !ok {
		g.logger.Warn("restore of unknown kind", "kind", kind)
		return false
	}
	values := repository.Row{"deleted": false}
	if position != nil && kind != board.KindBoard {
		values["position"] = *position
	}
	return g.updateByID(ctx, table, id, values)
}

// HardDelete removes an entity row. Rows under it are left alone.
func (g *Gateway) HardDelete(ctx context.Context, kind board.Kind, id string) bool {
	table, ok := tableFor(kind)
	if !ok {
		g.logger.Warn("hard delete of unknown kind", "kind", kind)
		return false
	}
	n, ok := g.deleteRows(ctx, table, map[string]any{"id": id})
	if ok && n == 0 {
		g.logger.Debug("hard delete matched no rows", "table", table, "id", id)
	}
	return ok
}
