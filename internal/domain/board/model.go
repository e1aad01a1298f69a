package board

import "time"

// Kind names the entity kinds that share the trash lifecycle.
type Kind string

const (
	KindBoard Kind = "board"
	KindList  Kind = "list"
	KindCard  Kind = "card"
)

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	switch k {
	case KindBoard, KindList, KindCard:
		return true
	}
	return false
}

// Board is the root of the mirrored tree. Lists are ordered by position.
type Board struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	IsPublic  bool      `json:"is_public"`
	Deleted   bool      `json:"deleted"`
	CreatedAt time.Time `json:"created_at"`
	Lists     []List    `json:"lists,omitempty"`
}

// List is an ordered column of cards on a board.
type List struct {
	ID        string    `json:"id"`
	BoardID   string    `json:"board_id"`
	Title     string    `json:"title"`
	Position  int       `json:"position"`
	Deleted   bool      `json:"deleted"`
	CreatedAt time.Time `json:"created_at"`
	Cards     []Card    `json:"cards,omitempty"`
}

// Card is a task within a list. Assignees is a cache of the assignment relation.
type Card struct {
	ID          string    `json:"id"`
	ListID      string    `json:"list_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Position    int       `json:"position"`
	Deleted     bool      `json:"deleted"`
	CreatedAt   time.Time `json:"created_at"`
	Assignees   []User    `json:"assignees,omitempty"`
}

// User can be assigned to cards.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

// ListPatch holds the list fields to change; nil fields are left alone.
type ListPatch struct {
	Title    *string
	Position *int
}

// Empty reports whether the patch changes nothing.
func (p ListPatch) Empty() bool {
	return p.Title == nil && p.Position == nil
}

// CardPatch holds the card fields to change; nil fields are left alone.
type CardPatch struct {
	Title       *string
	Description *string
	ListID      *string
	Position    *int
}

// Empty reports whether the patch changes nothing.
func (p CardPatch) Empty() bool {
	return p.Title == nil && p.Description == nil && p.ListID == nil && p.Position == nil
}

// WriteResult classifies the outcome of an insert that may collide with an existing row.
type WriteResult int

const (
	WriteFailed WriteResult = iota
	WriteApplied
	WriteDuplicate
)

// Clone returns a deep copy of the board and everything under it.
func (b Board) Clone() Board {
	out := b
	out.Lists = nil
	if b.Lists != nil {
		out.Lists = make([]List, len(b.Lists))
		for i, l := range b.Lists {
			out.Lists[i] = l.Clone()
		}
	}
	return out
}

// Clone returns a deep copy of the list and its cards.
func (l List) Clone() List {
	out := l
	out.Cards = nil
	if l.Cards != nil {
		out.Cards = make([]Card, len(l.Cards))
		for i, c := range l.Cards {
			out.Cards[i] = c.Clone()
		}
	}
	return out
}

// Clone returns a deep copy of the card.
func (c Card) Clone() Card {
	out := c
	out.Assignees = nil
	if c.Assignees != nil {
		out.Assignees = append([]User(nil), c.Assignees...)
	}
	return out
}
