package trash

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/rpggio/corkboard/internal/domain/board"
)

type entryKey struct {
	kind board.Kind
	id   string
}

// Lifecycle tracks the trash state of boards, lists and cards and drives
// their transitions through the gateway. A transition is checked against the
// tracked state before anything is sent to the store.
type Lifecycle struct {
	gw     Gateway
	logger *slog.Logger

	mu      sync.Mutex
	entries map[entryKey]Entry
}

// NewLifecycle creates a lifecycle with nothing tracked.
func NewLifecycle(gw Gateway, logger *slog.Logger) *Lifecycle {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Lifecycle{
		gw:      gw,
		logger:  logger,
		entries: make(map[entryKey]Entry),
	}
}

// Track records the observed state of an entity.
func (l *Lifecycle) Track(kind board.Kind, id, parentID string, state State) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries[entryKey{kind, id}] = Entry{Kind: kind, ID: id, ParentID: parentID, State: state}
}

// Lookup returns the tracked entry for an entity.
func (l *Lifecycle) Lookup(kind board.Kind, id string) (Entry, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	e, ok := l.entries[entryKey{kind, id}]
	return e, ok
}

// SendToTrash moves an active entity to the trash.
func (l *Lifecycle) SendToTrash(ctx context.Context, kind board.Kind, id string) (Entry, error) {
	return l.transition(ctx, kind, id, StateTrashed, func() bool {
		return l.gw.SoftDelete(ctx, kind, id)
	})
}

// Restore brings a trashed entity back.
func (l *Lifecycle) Restore(ctx context.Context, req RestoreRequest) (Entry, error) {
	return l.transition(ctx, req.Kind, req.ID, StateActive, func() bool {
		return l.gw.Restore(ctx, req.Kind, req.ID, req.Position)
	})
}

// Purge permanently deletes a trashed entity. Children are left in place.
func (l *Lifecycle) Purge(ctx context.Context, kind board.Kind, id string) (Entry, error) {
	return l.transition(ctx, kind, id, StatePurged, func() bool {
		return l.gw.HardDelete(ctx, kind, id)
	})
}

func (l *Lifecycle) transition(ctx context.Context, kind board.Kind, id string, to State, persist func() bool) (Entry, error) {
	if !kind.Valid() {
		return Entry{}, ErrUnknownKind
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	key := entryKey{kind, id}
	entry, ok := l.entries[key]
	if !ok {
		return Entry{}, fmt.Errorf("%s %s: %w", kind, id, ErrUntracked)
	}
	if err := ValidateTransition(entry.State, to); err != nil {
		return entry, fmt.Errorf("%s %s is %s: %w", kind, id, entry.State, err)
	}

	if !persist() {
		return entry, fmt.Errorf("moving %s %s to %s: %w", kind, id, to, board.ErrTransport)
	}

	l.logger.Info("trash transition", "kind", kind, "id", id, "from", entry.State, "to", to)
	entry.State = to
	l.entries[key] = entry
	return entry, nil
}

// TrashedBoards lists every trashed board in the workspace and tracks them.
func (l *Lifecycle) TrashedBoards(ctx context.Context) ([]board.Board, error) {
	boards, ok := l.gw.TrashedBoards(ctx)
	if !ok {
		return nil, board.ErrTransport
	}
	for _, b := range boards {
		l.Track(board.KindBoard, b.ID, "", StateTrashed)
	}
	return boards, nil
}

// TrashedLists lists the trashed lists of a board and tracks them.
func (l *Lifecycle) TrashedLists(ctx context.Context, boardID string) ([]board.List, error) {
	lists, ok := l.gw.TrashedLists(ctx, boardID)
	if !ok {
		return nil, board.ErrTransport
	}
	for _, list := range lists {
		l.Track(board.KindList, list.ID, list.BoardID, StateTrashed)
	}
	return lists, nil
}

// TrashedCards lists the trashed cards whose list belongs to a board and tracks them.
func (l *Lifecycle) TrashedCards(ctx context.Context, boardID string) ([]board.Card, error) {
	cards, ok := l.gw.TrashedCards(ctx, boardID)
	if !ok {
		return nil, board.ErrTransport
	}
	for _, c := range cards {
		l.Track(board.KindCard, c.ID, c.ListID, StateTrashed)
	}
	return cards, nil
}
