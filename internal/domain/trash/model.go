package trash

import "github.com/rpggio/corkboard/internal/domain/board"

// State is where an entity sits in the two-stage deletion lifecycle.
type State string

const (
	StateActive  State = "active"
	StateTrashed State = "trashed"
	StatePurged  State = "purged"
)

// Entry is the lifecycle state of one tracked entity.
// ParentID is the board of a list or the list of a card.
type Entry struct {
	Kind     board.Kind `json:"kind"`
	ID       string     `json:"id"`
	ParentID string     `json:"parent_id,omitempty"`
	State    State      `json:"state"`
}

// RestoreRequest describes a restore. Position, when set, replaces the stored
// position so the entity lands after its live siblings.
type RestoreRequest struct {
	Kind     board.Kind
	ID       string
	Position *int
}
