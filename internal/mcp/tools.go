package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/rpggio/corkboard/internal/domain/activity"
	"github.com/rpggio/corkboard/internal/domain/board"
	"github.com/rpggio/corkboard/internal/domain/mirror"
	"github.com/rpggio/corkboard/internal/domain/trash"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

type toolSet struct {
	svc Services
}

// handle adapts a plain tool function to the SDK handler shape. Domain errors
// become tool errors carrying a stable code.
func handle[In any](fn func(context.Context, In) (any, error)) sdkmcp.ToolHandlerFor[In, any] {
	return func(ctx context.Context, _ *sdkmcp.CallToolRequest, in In) (*sdkmcp.CallToolResult, any, error) {
		out, err := fn(ctx, in)
		if err != nil {
			return nil, nil, toolError(err)
		}
		return nil, out, nil
	}
}

func registerTools(server *sdkmcp.Server, t *toolSet) {
	// Directory
	sdkmcp.AddTool(server, &sdkmcp.Tool{Name: "list_boards", Description: "List active boards, oldest first"}, handle(t.listBoards))
	sdkmcp.AddTool(server, &sdkmcp.Tool{Name: "create_board", Description: "Create an empty board"}, handle(t.createBoard))
	sdkmcp.AddTool(server, &sdkmcp.Tool{Name: "list_users", Description: "List users that can be assigned to cards"}, handle(t.listUsers))
	sdkmcp.AddTool(server, &sdkmcp.Tool{Name: "create_user", Description: "Register a user under a unique username"}, handle(t.createUser))

	// Board tree
	sdkmcp.AddTool(server, &sdkmcp.Tool{Name: "open_board", Description: "Load a board from the store, replacing the server's copy"}, handle(t.openBoard))
	sdkmcp.AddTool(server, &sdkmcp.Tool{Name: "get_board", Description: "Get the server's copy of a board with its lists, cards and assignees"}, handle(t.getBoard))
	sdkmcp.AddTool(server, &sdkmcp.Tool{Name: "create_list", Description: "Append a list to a board"}, handle(t.createList))
	sdkmcp.AddTool(server, &sdkmcp.Tool{Name: "rename_list", Description: "Change a list's title"}, handle(t.renameList))
	sdkmcp.AddTool(server, &sdkmcp.Tool{Name: "compact_list", Description: "Renumber a list's cards to 0..n-1 keeping their order"}, handle(t.compactList))
	sdkmcp.AddTool(server, &sdkmcp.Tool{Name: "create_card", Description: "Append a card to a list"}, handle(t.createCard))
	sdkmcp.AddTool(server, &sdkmcp.Tool{Name: "rename_card", Description: "Change a card's title"}, handle(t.renameCard))
	sdkmcp.AddTool(server, &sdkmcp.Tool{Name: "update_card", Description: "Edit a card's title and description"}, handle(t.updateCard))
	sdkmcp.AddTool(server, &sdkmcp.Tool{Name: "move_card", Description: "Move a card to the end of another list"}, handle(t.moveCard))

	// Assignments
	sdkmcp.AddTool(server, &sdkmcp.Tool{Name: "assign_user", Description: "Assign a user to a card; assigning twice is not an error"}, handle(t.assignUser))
	sdkmcp.AddTool(server, &sdkmcp.Tool{Name: "unassign_user", Description: "Remove a user from a card"}, handle(t.unassignUser))
	sdkmcp.AddTool(server, &sdkmcp.Tool{Name: "list_assignees", Description: "List the users assigned to a card"}, handle(t.listAssignees))

	// Trash
	sdkmcp.AddTool(server, &sdkmcp.Tool{Name: "send_to_trash", Description: "Move a board, list or card to the trash"}, handle(t.sendToTrash))
	sdkmcp.AddTool(server, &sdkmcp.Tool{Name: "restore", Description: "Bring a board, list or card back from the trash"}, handle(t.restore))
	sdkmcp.AddTool(server, &sdkmcp.Tool{Name: "purge", Description: "Permanently delete a trashed board, list or card"}, handle(t.purge))
	sdkmcp.AddTool(server, &sdkmcp.Tool{Name: "list_trash", Description: "List trashed boards, and a board's trashed lists and cards"}, handle(t.listTrash))

	// Activity
	sdkmcp.AddTool(server, &sdkmcp.Tool{Name: "get_recent_activity", Description: "Get recent activity on a board, newest first"}, handle(t.getRecentActivity))
}

func required(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s is required: %w", name, errInvalidInput)
	}
	return nil
}

func (t *toolSet) open(ctx context.Context, boardID string) (*mirror.Mirror, error) {
	if err := required("board_id", boardID); err != nil {
		return nil, err
	}
	return t.svc.Boards.Open(ctx, boardID)
}

func (t *toolSet) listBoards(ctx context.Context, _ NoParams) (any, error) {
	boards, err := t.svc.Directory.ListBoards(ctx)
	if err != nil {
		return nil, err
	}
	return ListBoardsResponse{Boards: boards}, nil
}

func (t *toolSet) createBoard(ctx context.Context, in CreateBoardParams) (any, error) {
	return t.svc.Directory.CreateBoard(ctx, board.CreateBoardRequest{Title: in.Title, IsPublic: in.IsPublic})
}

func (t *toolSet) listUsers(ctx context.Context, _ NoParams) (any, error) {
	users, err := t.svc.Directory.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	return ListUsersResponse{Users: users}, nil
}

func (t *toolSet) createUser(ctx context.Context, in CreateUserParams) (any, error) {
	return t.svc.Directory.CreateUser(ctx, in.Username)
}

func (t *toolSet) openBoard(ctx context.Context, in BoardParams) (any, error) {
	m, err := t.open(ctx, in.BoardID)
	if err != nil {
		return nil, err
	}
	if err := m.Load(ctx); err != nil {
		return nil, err
	}
	b, loaded := m.Snapshot()
	return BoardResponse{Board: b, Loaded: loaded, Refresh: mirror.RefreshReloaded}, nil
}

func (t *toolSet) getBoard(ctx context.Context, in BoardParams) (any, error) {
	m, err := t.open(ctx, in.BoardID)
	if err != nil {
		return nil, err
	}
	b, loaded := m.Snapshot()
	return BoardResponse{Board: b, Loaded: loaded}, nil
}

func (t *toolSet) createList(ctx context.Context, in CreateListParams) (any, error) {
	m, err := t.open(ctx, in.BoardID)
	if err != nil {
		return nil, err
	}
	l, refresh, err := m.CreateList(ctx, in.Title)
	if err != nil {
		return nil, err
	}
	return ListResponse{List: l, Refresh: refresh}, nil
}

func (t *toolSet) renameList(ctx context.Context, in RenameListParams) (any, error) {
	m, err := t.open(ctx, in.BoardID)
	if err != nil {
		return nil, err
	}
	l, refresh, err := m.RenameList(ctx, in.ListID, in.Title)
	if err != nil {
		return nil, err
	}
	return ListResponse{List: l, Refresh: refresh}, nil
}

func (t *toolSet) compactList(ctx context.Context, in ListParams) (any, error) {
	m, err := t.open(ctx, in.BoardID)
	if err != nil {
		return nil, err
	}
	l, refresh, err := m.CompactList(ctx, in.ListID)
	if err != nil {
		return nil, err
	}
	return ListResponse{List: l, Refresh: refresh}, nil
}

func (t *toolSet) createCard(ctx context.Context, in CreateCardParams) (any, error) {
	m, err := t.open(ctx, in.BoardID)
	if err != nil {
		return nil, err
	}
	c, refresh, err := m.CreateCard(ctx, in.ListID, in.Title, in.Description)
	if err != nil {
		return nil, err
	}
	return CardResponse{Card: c, Refresh: refresh}, nil
}

func (t *toolSet) renameCard(ctx context.Context, in RenameCardParams) (any, error) {
	m, err := t.open(ctx, in.BoardID)
	if err != nil {
		return nil, err
	}
	c, refresh, err := m.RenameCard(ctx, in.CardID, in.Title)
	if err != nil {
		return nil, err
	}
	return CardResponse{Card: c, Refresh: refresh}, nil
}

func (t *toolSet) updateCard(ctx context.Context, in UpdateCardParams) (any, error) {
	m, err := t.open(ctx, in.BoardID)
	if err != nil {
		return nil, err
	}
	c, refresh, err := m.UpdateCardContent(ctx, in.CardID, mirror.CardContent{Title: in.Title, Description: in.Description})
	if err != nil {
		return nil, err
	}
	return CardResponse{Card: c, Refresh: refresh}, nil
}

func (t *toolSet) moveCard(ctx context.Context, in MoveCardParams) (any, error) {
	m, err := t.open(ctx, in.BoardID)
	if err != nil {
		return nil, err
	}
	c, refresh, err := m.MoveCard(ctx, in.SourceListID, in.DestListID, in.CardID)
	if err != nil {
		return nil, err
	}
	return CardResponse{Card: c, Refresh: refresh}, nil
}

func (t *toolSet) assignUser(ctx context.Context, in AssignmentParams) (any, error) {
	m, err := t.open(ctx, in.BoardID)
	if err != nil {
		return nil, err
	}
	users, refresh, err := m.Assign(ctx, in.CardID, in.UserID)
	if err != nil {
		return nil, err
	}
	return AssigneesResponse{CardID: in.CardID, Assignees: users, Refresh: refresh}, nil
}

func (t *toolSet) unassignUser(ctx context.Context, in AssignmentParams) (any, error) {
	m, err := t.open(ctx, in.BoardID)
	if err != nil {
		return nil, err
	}
	users, refresh, err := m.Unassign(ctx, in.CardID, in.UserID)
	if err != nil {
		return nil, err
	}
	return AssigneesResponse{CardID: in.CardID, Assignees: users, Refresh: refresh}, nil
}

func (t *toolSet) listAssignees(ctx context.Context, in CardParams) (any, error) {
	m, err := t.open(ctx, in.BoardID)
	if err != nil {
		return nil, err
	}
	users, err := m.Assignees(in.CardID)
	if err != nil {
		return nil, err
	}
	return AssigneesResponse{CardID: in.CardID, Assignees: users}, nil
}

type trashOp struct {
	onBoard  func(context.Context, string) (trash.Entry, mirror.Refresh, error)
	onMirror func(*mirror.Mirror, context.Context, board.Kind, string) (trash.Entry, mirror.Refresh, error)
}

func (t *toolSet) runTrashOp(ctx context.Context, in TrashParams, op trashOp) (any, error) {
	kind := board.Kind(in.Kind)
	if !kind.Valid() {
		return nil, fmt.Errorf("kind %q: %w", in.Kind, trash.ErrUnknownKind)
	}
	if err := required("id", in.ID); err != nil {
		return nil, err
	}

	var (
		entry   trash.Entry
		refresh mirror.Refresh
		err     error
	)
	if kind == board.KindBoard {
		entry, refresh, err = op.onBoard(ctx, in.ID)
	} else {
		var m *mirror.Mirror
		if m, err = t.open(ctx, in.BoardID); err != nil {
			return nil, err
		}
		entry, refresh, err = op.onMirror(m, ctx, kind, in.ID)
	}
	if err != nil {
		return nil, err
	}
	return TrashResponse{Entry: entry, Refresh: refresh}, nil
}

func (t *toolSet) sendToTrash(ctx context.Context, in TrashParams) (any, error) {
	return t.runTrashOp(ctx, in, trashOp{onBoard: t.svc.Boards.SendBoardToTrash, onMirror: (*mirror.Mirror).SendToTrash})
}

func (t *toolSet) restore(ctx context.Context, in TrashParams) (any, error) {
	return t.runTrashOp(ctx, in, trashOp{onBoard: t.svc.Boards.RestoreBoard, onMirror: (*mirror.Mirror).Restore})
}

func (t *toolSet) purge(ctx context.Context, in TrashParams) (any, error) {
	return t.runTrashOp(ctx, in, trashOp{onBoard: t.svc.Boards.PurgeBoard, onMirror: (*mirror.Mirror).Purge})
}

func (t *toolSet) listTrash(ctx context.Context, in ListTrashParams) (any, error) {
	boards, err := t.svc.Boards.TrashedBoards(ctx)
	if err != nil {
		return nil, err
	}
	resp := ListTrashResponse{Boards: boards}
	if in.BoardID == "" {
		return resp, nil
	}

	m, err := t.open(ctx, in.BoardID)
	if err != nil {
		return nil, err
	}
	if resp.Lists, err = m.TrashedLists(ctx); err != nil {
		return nil, err
	}
	if resp.Cards, err = m.TrashedCards(ctx); err != nil {
		return nil, err
	}
	return resp, nil
}

func (t *toolSet) getRecentActivity(ctx context.Context, in GetRecentActivityParams) (any, error) {
	opts := activity.ListActivityOptions{
		BoardID:  in.BoardID,
		EntityID: in.EntityID,
		Limit:    in.Limit,
	}
	if in.ActivityType != nil {
		typ := activity.ActivityType(*in.ActivityType)
		opts.ActivityType = &typ
	}

	entries, err := t.svc.Activity.GetRecentActivity(ctx, opts)
	if err != nil {
		return nil, err
	}
	resp := GetRecentActivityResponse{Activity: make([]ActivityEntryResponse, 0, len(entries))}
	for _, e := range entries {
		resp.Activity = append(resp.Activity, ActivityEntryResponse{
			Timestamp:  e.CreatedAt,
			Type:       e.ActivityType,
			EntityKind: e.EntityKind,
			EntityID:   e.EntityID,
			Summary:    e.Summary,
		})
	}
	return resp, nil
}
