package mirror

import (
	"context"
	"fmt"

	"github.com/rpggio/corkboard/internal/domain/activity"
	"github.com/rpggio/corkboard/internal/domain/board"
	"github.com/rpggio/corkboard/internal/domain/position"
	"github.com/rpggio/corkboard/internal/domain/trash"
)

// SendToTrash trashes a list, a card, or the mirrored board, then reloads.
// Trashing a parent leaves its children's flags untouched.
func (m *Mirror) SendToTrash(ctx context.Context, kind board.Kind, id string) (trash.Entry, Refresh, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.checkScope(ctx, kind, id); err != nil {
		return trash.Entry{}, RefreshNone, err
	}

	entry, err := m.lifecycle.SendToTrash(ctx, kind, id)
	if err != nil {
		return entry, RefreshNone, err
	}
	m.record(ctx, kind, id, activity.TypeTrashed, fmt.Sprintf("moved %s to the trash", kind))
	return entry, RefreshReloaded, m.reloadAfter(ctx, "trash")
}

// Restore brings a trashed entity back. Lists and cards get a fresh position
// after their live siblings.
func (m *Mirror) Restore(ctx context.Context, kind board.Kind, id string) (trash.Entry, Refresh, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.checkScope(ctx, kind, id); err != nil {
		return trash.Entry{}, RefreshNone, err
	}
	entry, err := m.lookupTrashed(ctx, kind, id)
	if err != nil {
		return trash.Entry{}, RefreshNone, err
	}

	req := trash.RestoreRequest{Kind: kind, ID: id}
	if entry.State == trash.StateTrashed && kind != board.KindBoard {
		pos, err := m.restorePosition(ctx, entry)
		if err != nil {
			return entry, RefreshNone, err
		}
		req.Position = &pos
	}

	entry, err = m.lifecycle.Restore(ctx, req)
	if err != nil {
		return entry, RefreshNone, err
	}
	m.record(ctx, kind, id, activity.TypeRestored, fmt.Sprintf("restored %s from the trash", kind))
	return entry, RefreshReloaded, m.reloadAfter(ctx, "restore")
}

// Purge permanently deletes a trashed entity. Purging the mirrored board
// empties the mirror.
func (m *Mirror) Purge(ctx context.Context, kind board.Kind, id string) (trash.Entry, Refresh, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.checkScope(ctx, kind, id); err != nil {
		return trash.Entry{}, RefreshNone, err
	}
	if _, err := m.lookupTrashed(ctx, kind, id); err != nil {
		return trash.Entry{}, RefreshNone, err
	}

	entry, err := m.lifecycle.Purge(ctx, kind, id)
	if err != nil {
		return entry, RefreshNone, err
	}
	m.record(ctx, kind, id, activity.TypePurged, fmt.Sprintf("purged %s", kind))

	if kind == board.KindBoard {
		m.tree = board.Board{}
		m.loaded = false
		m.logger.Info("board purged, mirror reset")
		return entry, RefreshReloaded, nil
	}
	return entry, RefreshReloaded, m.reloadAfter(ctx, "purge")
}

// TrashedLists lists this board's trashed lists.
func (m *Mirror) TrashedLists(ctx context.Context) ([]board.List, error) {
	return m.lifecycle.TrashedLists(ctx, m.boardID)
}

// TrashedCards lists the trashed cards of this board's lists.
func (m *Mirror) TrashedCards(ctx context.Context) ([]board.Card, error) {
	return m.lifecycle.TrashedCards(ctx, m.boardID)
}

func (m *Mirror) checkScope(ctx context.Context, kind board.Kind, id string) error {
	if !kind.Valid() {
		return trash.ErrUnknownKind
	}
	if !m.loaded {
		return ErrNotLoaded
	}
	switch kind {
	case board.KindBoard:
		if id != m.boardID {
			return fmt.Errorf("board %s: %w", id, ErrOtherBoard)
		}
	case board.KindList:
		if m.listIndex(id) >= 0 {
			return nil
		}
		entry, err := m.lookupTrashed(ctx, kind, id)
		if err != nil {
			return err
		}
		if entry.ParentID != m.boardID {
			return fmt.Errorf("list %s: %w", id, ErrOtherBoard)
		}
	case board.KindCard:
		if _, _, ok := m.findCard(id); ok {
			return nil
		}
		entry, err := m.lookupTrashed(ctx, kind, id)
		if err != nil {
			return err
		}
		if !m.ownsList(ctx, entry.ParentID) {
			return fmt.Errorf("card %s: %w", id, ErrOtherBoard)
		}
	}
	return nil
}

// ownsList reports whether listID is a live list of this board or one of
// its trashed lists.
func (m *Mirror) ownsList(ctx context.Context, listID string) bool {
	if m.listIndex(listID) >= 0 {
		return true
	}
	entry, ok := m.lifecycle.Lookup(board.KindList, listID)
	if !ok {
		if _, err := m.lifecycle.TrashedLists(ctx, m.boardID); err != nil {
			m.logger.Warn("listing trashed lists failed", "error", err)
			return false
		}
		if entry, ok = m.lifecycle.Lookup(board.KindList, listID); !ok {
			return false
		}
	}
	return entry.ParentID == m.boardID
}

// lookupTrashed finds the lifecycle entry for id, listing this board's
// trash when the entity has not been seen yet.
func (m *Mirror) lookupTrashed(ctx context.Context, kind board.Kind, id string) (trash.Entry, error) {
	if entry, ok := m.lifecycle.Lookup(kind, id); ok {
		return entry, nil
	}

	var err error
	switch kind {
	case board.KindList:
		_, err = m.lifecycle.TrashedLists(ctx, m.boardID)
	case board.KindCard:
		_, err = m.lifecycle.TrashedCards(ctx, m.boardID)
	case board.KindBoard:
		_, err = m.lifecycle.TrashedBoards(ctx)
	}
	if err != nil {
		return trash.Entry{}, err
	}

	entry, ok := m.lifecycle.Lookup(kind, id)
	if !ok {
		return trash.Entry{}, fmt.Errorf("%s %s: %w", kind, id, trash.ErrUntracked)
	}
	return entry, nil
}

// restorePosition picks the slot after the live siblings of a restored
// list or card. Siblings outside the mirror are read from the store.
func (m *Mirror) restorePosition(ctx context.Context, entry trash.Entry) (int, error) {
	if entry.Kind == board.KindList {
		return position.Next(m.tree.Lists, listPos), nil
	}

	if li := m.listIndex(entry.ParentID); li >= 0 {
		return position.Next(m.tree.Lists[li].Cards, cardPos), nil
	}
	siblings, ok := m.gw.ListCards(ctx, entry.ParentID)
	if !ok {
		return 0, fmt.Errorf("reading cards of list %s: %w", entry.ParentID, board.ErrTransport)
	}
	return position.Next(siblings, cardPos), nil
}

func (m *Mirror) reloadAfter(ctx context.Context, op string) error {
	if err := m.load(ctx); err != nil {
		m.logger.Warn("reload failed after remote write", "after", op, "error", err)
		return fmt.Errorf("reloading after %s: %w: %w", op, ErrDesync, err)
	}
	return nil
}
