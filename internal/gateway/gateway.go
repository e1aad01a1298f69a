// Package gateway translates board operations into row store calls.
//
// The gateway holds no state and never returns store errors: failures are
// logged and reported as a false ok flag so callers decide how to surface them.
package gateway

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/rpggio/corkboard/internal/domain/board"
	"github.com/rpggio/corkboard/internal/repository"
)

const (
	tableBoards      = "boards"
	tableLists       = "lists"
	tableCards       = "cards"
	tableUsers       = "users"
	tableAssignments = "card_assignments"
	tableActivity    = "activity_log"
)

// Options configures a Gateway.
type Options struct {
	// Timeout bounds each store round trip. Zero means no bound.
	Timeout time.Duration
	Logger  *slog.Logger
}

// Gateway performs board reads and writes against a row store.
type Gateway struct {
	store   repository.Store
	timeout time.Duration
	logger  *slog.Logger
	now     func() time.Time
	newID   func() string
}

// New creates a gateway over store.
func New(store repository.Store, opts Options) *Gateway {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Gateway{
		store:   store,
		timeout: opts.Timeout,
		logger:  logger,
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

func (g *Gateway) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if g.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, g.timeout)
}

func (g *Gateway) selectRows(ctx context.Context, table string, q repository.Query) ([]repository.Row, bool) {
	ctx, cancel := g.withTimeout(ctx)
	defer cancel()

	rows, err := g.store.Select(ctx, table, q)
	if err != nil {
		g.logger.Warn("store read failed", "table", table, "error", err)
		return nil, false
	}
	return rows, true
}

func (g *Gateway) insertRow(ctx context.Context, table string, row repository.Row) (repository.Row, error) {
	ctx, cancel := g.withTimeout(ctx)
	defer cancel()
	return g.store.Insert(ctx, table, row)
}

// updateByID reports whether exactly the row with id was updated.
func (g *Gateway) updateByID(ctx context.Context, table, id string, values repository.Row) bool {
	ctx, cancel := g.withTimeout(ctx)
	defer cancel()

	n, err := g.store.Update(ctx, table, values, map[string]any{"id": id})
	if err != nil {
		g.logger.Warn("store update failed", "table", table, "id", id, "error", err)
		return false
	}
	if n == 0 {
		g.logger.Warn("store update matched no rows", "table", table, "id", id)
		return false
	}
	return true
}

func (g *Gateway) deleteRows(ctx context.Context, table string, eq map[string]any) (int64, bool) {
	ctx, cancel := g.withTimeout(ctx)
	defer cancel()

	n, err := g.store.Delete(ctx, table, eq)
	if err != nil {
		g.logger.Warn("store delete failed", "table", table, "error", err)
		return 0, false
	}
	return n, true
}

// stamp parses a timestamp column, falling back to the current time.
func (g *Gateway) stamp(row repository.Row, col string) time.Time {
	t, err := ParseTimestamp(row.String(col))
	if err != nil {
		g.logger.Debug("unparseable timestamp, using now", "column", col, "error", err)
		return g.now()
	}
	return t
}

func tableFor(kind board.Kind) (string, bool) {
	switch kind {
	case board.KindBoard:
		return tableBoards, true
	case board.KindList:
		return tableLists, true
	case board.KindCard:
		return tableCards, true
	}
	return "", false
}

func (g *Gateway) toBoard(r repository.Row) board.Board {
	return board.Board{
		ID:        r.String("id"),
		Title:     r.String("title"),
		IsPublic:  r.Bool("is_public"),
		Deleted:   r.Bool("deleted"),
		CreatedAt: g.stamp(r, "created_at"),
	}
}

func (g *Gateway) toList(r repository.Row) board.List {
	return board.List{
		ID:        r.String("id"),
		BoardID:   r.String("board_id"),
		Title:     r.String("title"),
		Position:  r.Int("position"),
		Deleted:   r.Bool("deleted"),
		CreatedAt: g.stamp(r, "created_at"),
	}
}

func (g *Gateway) toCard(r repository.Row) board.Card {
	return board.Card{
		ID:          r.String("id"),
		ListID:      r.String("list_id"),
		Title:       r.String("title"),
		Description: r.String("description"),
		Position:    r.Int("position"),
		Deleted:     r.Bool("deleted"),
		CreatedAt:   g.stamp(r, "created_at"),
	}
}

func (g *Gateway) toUser(r repository.Row) board.User {
	return board.User{
		ID:        r.String("id"),
		Username:  r.String("username"),
		CreatedAt: g.stamp(r, "created_at"),
	}
}
