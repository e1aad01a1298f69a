package activity

import (
	"time"

	"github.com/rpggio/corkboard/internal/domain/board"
)

// ActivityType represents the type of activity event
type ActivityType string

const (
	TypeListCreated    ActivityType = "list_created"
	TypeListRenamed    ActivityType = "list_renamed"
	TypeListCompacted  ActivityType = "list_compacted"
	TypeCardCreated    ActivityType = "card_created"
	TypeCardUpdated    ActivityType = "card_updated"
	TypeCardMoved      ActivityType = "card_moved"
	TypeCardAssigned   ActivityType = "card_assigned"
	TypeCardUnassigned ActivityType = "card_unassigned"
	TypeTrashed        ActivityType = "trashed"
	TypeRestored       ActivityType = "restored"
	TypePurged         ActivityType = "purged"
)

// ActivityEntry represents an event in a board's activity feed
type ActivityEntry struct {
	ID           int64        `json:"id"`
	BoardID      string       `json:"board_id"`
	EntityKind   board.Kind   `json:"entity_kind"`
	EntityID     string       `json:"entity_id"`
	ActivityType ActivityType `json:"type"`
	Summary      string       `json:"summary"`
	CreatedAt    time.Time    `json:"created_at"`
}
