package mcp

import (
	"time"

	"github.com/rpggio/corkboard/internal/domain/activity"
	"github.com/rpggio/corkboard/internal/domain/board"
	"github.com/rpggio/corkboard/internal/domain/mirror"
	"github.com/rpggio/corkboard/internal/domain/trash"
)

type NoParams struct{}

type CreateBoardParams struct {
	Title    string `json:"title" jsonschema:"board title"`
	IsPublic bool   `json:"is_public,omitempty" jsonschema:"whether the board is public"`
}

type CreateUserParams struct {
	Username string `json:"username" jsonschema:"unique username"`
}

type BoardParams struct {
	BoardID string `json:"board_id" jsonschema:"board id"`
}

type CreateListParams struct {
	BoardID string `json:"board_id" jsonschema:"board id"`
	Title   string `json:"title" jsonschema:"list title"`
}

type RenameListParams struct {
	BoardID string `json:"board_id" jsonschema:"board id"`
	ListID  string `json:"list_id" jsonschema:"list id"`
	Title   string `json:"title" jsonschema:"new list title"`
}

type ListParams struct {
	BoardID string `json:"board_id" jsonschema:"board id"`
	ListID  string `json:"list_id" jsonschema:"list id"`
}

type CreateCardParams struct {
	BoardID     string `json:"board_id" jsonschema:"board id"`
	ListID      string `json:"list_id" jsonschema:"list to append the card to"`
	Title       string `json:"title" jsonschema:"card title"`
	Description string `json:"description,omitempty" jsonschema:"card description"`
}

type RenameCardParams struct {
	BoardID string `json:"board_id" jsonschema:"board id"`
	CardID  string `json:"card_id" jsonschema:"card id"`
	Title   string `json:"title" jsonschema:"new card title"`
}

type UpdateCardParams struct {
	BoardID     string  `json:"board_id" jsonschema:"board id"`
	CardID      string  `json:"card_id" jsonschema:"card id"`
	Title       *string `json:"title,omitempty" jsonschema:"new title; blank is ignored"`
	Description *string `json:"description,omitempty" jsonschema:"new description; empty clears it"`
}

type MoveCardParams struct {
	BoardID      string `json:"board_id" jsonschema:"board id"`
	SourceListID string `json:"source_list_id" jsonschema:"list currently holding the card"`
	DestListID   string `json:"dest_list_id" jsonschema:"list to append the card to"`
	CardID       string `json:"card_id" jsonschema:"card id"`
}

type AssignmentParams struct {
	BoardID string `json:"board_id" jsonschema:"board id"`
	CardID  string `json:"card_id" jsonschema:"card id"`
	UserID  string `json:"user_id" jsonschema:"user id"`
}

type CardParams struct {
	BoardID string `json:"board_id" jsonschema:"board id"`
	CardID  string `json:"card_id" jsonschema:"card id"`
}

type TrashParams struct {
	BoardID string `json:"board_id,omitempty" jsonschema:"board holding the list or card; ignored for kind board"`
	Kind    string `json:"kind" jsonschema:"entity kind: board, list or card"`
	ID      string `json:"id" jsonschema:"entity id"`
}

type ListTrashParams struct {
	BoardID string `json:"board_id,omitempty" jsonschema:"also list this board's trashed lists and cards"`
}

type GetRecentActivityParams struct {
	BoardID      string  `json:"board_id" jsonschema:"board id"`
	EntityID     *string `json:"entity_id,omitempty" jsonschema:"only entries about this list or card"`
	ActivityType *string `json:"activity_type,omitempty" jsonschema:"only entries of this type"`
	Limit        int     `json:"limit,omitempty" jsonschema:"maximum number of entries (default 50)"`
}

type ListBoardsResponse struct {
	Boards []board.Board `json:"boards"`
}

type ListUsersResponse struct {
	Users []board.User `json:"users"`
}

type BoardResponse struct {
	Board   board.Board    `json:"board"`
	Loaded  bool           `json:"loaded"`
	Refresh mirror.Refresh `json:"refresh,omitempty"`
}

type ListResponse struct {
	List    board.List     `json:"list"`
	Refresh mirror.Refresh `json:"refresh"`
}

type CardResponse struct {
	Card    board.Card     `json:"card"`
	Refresh mirror.Refresh `json:"refresh"`
}

type AssigneesResponse struct {
	CardID    string         `json:"card_id"`
	Assignees []board.User   `json:"assignees"`
	Refresh   mirror.Refresh `json:"refresh,omitempty"`
}

type TrashResponse struct {
	Entry   trash.Entry    `json:"entry"`
	Refresh mirror.Refresh `json:"refresh"`
}

type ListTrashResponse struct {
	Boards []board.Board `json:"boards"`
	Lists  []board.List  `json:"lists,omitempty"`
	Cards  []board.Card  `json:"cards,omitempty"`
}

type GetRecentActivityResponse struct {
	Activity []ActivityEntryResponse `json:"activity"`
}

type ActivityEntryResponse struct {
	Timestamp  time.Time             `json:"timestamp"`
	Type       activity.ActivityType `json:"type"`
	EntityKind board.Kind            `json:"entity_kind"`
	EntityID   string                `json:"entity_id"`
	Summary    string                `json:"summary"`
}
