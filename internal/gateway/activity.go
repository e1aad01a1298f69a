package gateway

import (
	"context"
	"fmt"

	"github.com/rpggio/corkboard/internal/domain/activity"
	"github.com/rpggio/corkboard/internal/domain/board"
	"github.com/rpggio/corkboard/internal/repository"
)

// ActivityLog implements activity.Repository on the row store.
type ActivityLog struct {
	g *Gateway
}

// ActivityLog returns the activity repository sharing this gateway's store.
func (g *Gateway) ActivityLog() *ActivityLog {
	return &ActivityLog{g: g}
}

// Log inserts a new activity entry
func (a *ActivityLog) Log(ctx context.Context, entry *activity.ActivityEntry) error {
	row, err := a.g.insertRow(ctx, tableActivity, repository.Row{
		"board_id":      entry.BoardID,
		"entity_kind":   string(entry.EntityKind),
		"entity_id":     entry.EntityID,
		"activity_type": string(entry.ActivityType),
		"summary":       entry.Summary,
		"created_at":    entry.CreatedAt.UTC().Format(StampLayout),
	})
	if err != nil {
		return fmt.Errorf("failed to log activity: %w", err)
	}
	entry.ID = int64(row.Int("id"))
	return nil
}

// List returns activity entries matching the given filters, newest first
func (a *ActivityLog) List(ctx context.Context, opts activity.ListActivityOptions) ([]activity.ActivityEntry, error) {
	eq := map[string]any{"board_id": opts.BoardID}
	if opts.EntityID != nil {
		eq["entity_id"] = *opts.EntityID
	}
	if opts.ActivityType != nil {
		eq["activity_type"] = string(*opts.ActivityType)
	}

	ctx, cancel := a.g.withTimeout(ctx)
	defer cancel()
	rows, err := a.g.store.Select(ctx, tableActivity, repository.Query{
		Eq:    eq,
		Order: []repository.Order{{Column: "created_at", Desc: true}, {Column: "id", Desc: true}},
		Limit: opts.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list activity: %w", err)
	}

	entries := make([]activity.ActivityEntry, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, activity.ActivityEntry{
			ID:           int64(r.Int("id")),
			BoardID:      r.String("board_id"),
			EntityKind:   board.Kind(r.String("entity_kind")),
			EntityID:     r.String("entity_id"),
			ActivityType: activity.ActivityType(r.String("activity_type")),
			Summary:      r.String("summary"),
			CreatedAt:    a.g.stamp(r, "created_at"),
		})
	}
	return entries, nil
}
