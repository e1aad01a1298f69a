package mirror

import (
	"context"
	"log/slog"
	"sync"

	"github.com/rpggio/corkboard/internal/domain/activity"
	"github.com/rpggio/corkboard/internal/domain/assignment"
	"github.com/rpggio/corkboard/internal/domain/board"
	"github.com/rpggio/corkboard/internal/domain/trash"
)

// Workspace hands out one mirror per board. All mirrors share a single
// trash lifecycle, so board trash spans the whole workspace.
type Workspace struct {
	deps Deps

	mu      sync.Mutex
	mirrors map[string]*Mirror
}

// NewWorkspace creates a workspace over gw. activitySvc may be nil.
func NewWorkspace(gw Gateway, activitySvc *activity.Service, logger *slog.Logger) *Workspace {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Workspace{
		deps: Deps{
			Gateway:     gw,
			Lifecycle:   trash.NewLifecycle(gw, logger),
			Assignments: assignment.NewIndex(gw, logger),
			Activity:    activitySvc,
			Logger:      logger,
		},
		mirrors: make(map[string]*Mirror),
	}
}

// Open returns the board's mirror, loading it on first use.
func (w *Workspace) Open(ctx context.Context, boardID string) (*Mirror, error) {
	w.mu.Lock()
	if m, ok := w.mirrors[boardID]; ok {
		w.mu.Unlock()
		return m, nil
	}
	w.mu.Unlock()

	m := New(boardID, w.deps)
	if err := m.Load(ctx); err != nil {
		return nil, err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if existing, ok := w.mirrors[boardID]; ok {
		return existing, nil
	}
	w.mirrors[boardID] = m
	return m, nil
}

// Close forgets a board's mirror.
func (w *Workspace) Close(boardID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.mirrors, boardID)
}

// TrashedBoards lists every trashed board.
func (w *Workspace) TrashedBoards(ctx context.Context) ([]board.Board, error) {
	return w.deps.Lifecycle.TrashedBoards(ctx)
}

// SendBoardToTrash trashes a board through its mirror.
func (w *Workspace) SendBoardToTrash(ctx context.Context, boardID string) (trash.Entry, Refresh, error) {
	m, err := w.Open(ctx, boardID)
	if err != nil {
		return trash.Entry{}, RefreshNone, err
	}
	return m.SendToTrash(ctx, board.KindBoard, boardID)
}

// RestoreBoard restores a trashed board through its mirror.
func (w *Workspace) RestoreBoard(ctx context.Context, boardID string) (trash.Entry, Refresh, error) {
	m, err := w.Open(ctx, boardID)
	if err != nil {
		return trash.Entry{}, RefreshNone, err
	}
	return m.Restore(ctx, board.KindBoard, boardID)
}

// PurgeBoard permanently deletes a trashed board and drops its mirror.
// Lists and cards under it stay in the store.
func (w *Workspace) PurgeBoard(ctx context.Context, boardID string) (trash.Entry, Refresh, error) {
	m, err := w.Open(ctx, boardID)
	if err != nil {
		return trash.Entry{}, RefreshNone, err
	}
	entry, refresh, err := m.Purge(ctx, board.KindBoard, boardID)
	if err == nil {
		w.Close(boardID)
	}
	return entry, refresh, err
}
