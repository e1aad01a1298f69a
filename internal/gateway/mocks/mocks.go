package mocks

import (
	"context"

	"github.com/rpggio/corkboard/internal/domain/board"
	"github.com/stretchr/testify/mock"
)

// Gateway is a mock for the gateway surface used by the board domain.
type Gateway struct {
	mock.Mock
}

func (m *Gateway) GetBoard(ctx context.Context, id string) (*board.Board, bool) {
	args := m.Called(ctx, id)
	if b, ok := args.Get(0).(*board.Board); ok {
		return b, args.Bool(1)
	}
	return nil, args.Bool(1)
}

func (m *Gateway) ListBoards(ctx context.Context) ([]board.Board, bool) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]board.Board); ok {
		return list, args.Bool(1)
	}
	return nil, args.Bool(1)
}

func (m *Gateway) TrashedBoards(ctx context.Context) ([]board.Board, bool) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]board.Board); ok {
		return list, args.Bool(1)
	}
	return nil, args.Bool(1)
}

func (m *Gateway) CreateBoard(ctx context.Context, title string, isPublic bool) (*board.Board, bool) {
	args := m.Called(ctx, title, isPublic)
	if b, ok := args.Get(0).(*board.Board); ok {
		return b, args.Bool(1)
	}
	return nil, args.Bool(1)
}

func (m *Gateway) ListLists(ctx context.Context, boardID string) ([]board.List, bool) {
	args := m.Called(ctx, boardID)
	if list, ok := args.Get(0).([]board.List); ok {
		return list, args.Bool(1)
	}
	return nil, args.Bool(1)
}

func (m *Gateway) TrashedLists(ctx context.Context, boardID string) ([]board.List, bool) {
	args := m.Called(ctx, boardID)
	if list, ok := args.Get(0).([]board.List); ok {
		return list, args.Bool(1)
	}
	return nil, args.Bool(1)
}

func (m *Gateway) CreateList(ctx context.Context, boardID, title string, position int) (*board.List, bool) {
	args := m.Called(ctx, boardID, title, position)
	if l, ok := args.Get(0).(*board.List); ok {
		return l, args.Bool(1)
	}
	return nil, args.Bool(1)
}

func (m *Gateway) UpdateList(ctx context.Context, id string, patch board.ListPatch) bool {
	args := m.Called(ctx, id, patch)
	return args.Bool(0)
}

func (m *Gateway) ListCards(ctx context.Context, listID string) ([]board.Card, bool) {
	args := m.Called(ctx, listID)
	if list, ok := args.Get(0).([]board.Card); ok {
		return list, args.Bool(1)
	}
	return nil, args.Bool(1)
}

func (m *Gateway) TrashedCards(ctx context.Context, boardID string) ([]board.Card, bool) {
	args := m.Called(ctx, boardID)
	if list, ok := args.Get(0).([]board.Card); ok {
		return list, args.Bool(1)
	}
	return nil, args.Bool(1)
}

func (m *Gateway) CreateCard(ctx context.Context, listID, title, description string, position int) (*board.Card, bool) {
	args := m.Called(ctx, listID, title, description, position)
	if c, ok := args.Get(0).(*board.Card); ok {
		return c, args.Bool(1)
	}
	return nil, args.Bool(1)
}

func (m *Gateway) UpdateCard(ctx context.Context, id string, patch board.CardPatch) bool {
	args := m.Called(ctx, id, patch)
	return args.Bool(0)
}

func (m *Gateway) ListUsers(ctx context.Context) ([]board.User, bool) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]board.User); ok {
		return list, args.Bool(1)
	}
	return nil, args.Bool(1)
}

func (m *Gateway) CreateUser(ctx context.Context, username string) (*board.User, board.WriteResult) {
	args := m.Called(ctx, username)
	if u, ok := args.Get(0).(*board.User); ok {
		return u, args.Get(1).(board.WriteResult)
	}
	return nil, args.Get(1).(board.WriteResult)
}

func (m *Gateway) CreateAssignment(ctx context.Context, cardID, userID string) board.WriteResult {
	args := m.Called(ctx, cardID, userID)
	return args.Get(0).(board.WriteResult)
}

func (m *Gateway) DeleteAssignment(ctx context.Context, cardID, userID string) bool {
	args := m.Called(ctx, cardID, userID)
	return args.Bool(0)
}

func (m *Gateway) Assignees(ctx context.Context, cardID string) ([]board.User, bool) {
	args := m.Called(ctx, cardID)
	if list, ok := args.Get(0).([]board.User); ok {
		return list, args.Bool(1)
	}
	return nil, args.Bool(1)
}

func (m *Gateway) SoftDelete(ctx context.Context, kind board.Kind, id string) bool {
	args := m.Called(ctx, kind, id)
	return args.Bool(0)
}

func (m *Gateway) Restore(ctx context.Context, kind board.Kind, id string, position *int) bool {
	args := m.Called(ctx, kind, id, position)
	return args.Bool(0)
}

func (m *Gateway) HardDelete(ctx context.Context, kind board.Kind, id string) bool {
	args := m.Called(ctx, kind, id)
	return args.Bool(0)
}
