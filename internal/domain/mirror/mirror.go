// Package mirror keeps an in-memory board tree in step with the store.
//
// Each write is persisted first and applied to the tree only once the store
// accepts it, so a failed operation leaves the tree as it was. Creates, moves
// and edits patch the tree in place; trash transitions reload it.
package mirror

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/rpggio/corkboard/internal/domain/activity"
	"github.com/rpggio/corkboard/internal/domain/assignment"
	"github.com/rpggio/corkboard/internal/domain/board"
	"github.com/rpggio/corkboard/internal/domain/position"
	"github.com/rpggio/corkboard/internal/domain/trash"
)

func listPos(l board.List) int { return l.Position }
func cardPos(c board.Card) int { return c.Position }

// Mirror holds one board with its active lists, cards and assignees.
// Operations are serialized: one runs at a time, remote round trip included.
type Mirror struct {
	boardID     string
	gw          Gateway
	lifecycle   *trash.Lifecycle
	assignments *assignment.Index
	activity    *activity.Service
	logger      *slog.Logger

	mu     sync.Mutex
	tree   board.Board
	loaded bool
}

// Deps are the collaborators a mirror works through. Activity may be nil.
type Deps struct {
	Gateway     Gateway
	Lifecycle   *trash.Lifecycle
	Assignments *assignment.Index
	Activity    *activity.Service
	Logger      *slog.Logger
}

// New creates an empty mirror for boardID. Call Load before anything else.
func New(boardID string, deps Deps) *Mirror {
	logger := deps.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	lifecycle := deps.Lifecycle
	if lifecycle == nil {
		lifecycle = trash.NewLifecycle(deps.Gateway, logger)
	}
	assignments := deps.Assignments
	if assignments == nil {
		assignments = assignment.NewIndex(deps.Gateway, logger)
	}
	return &Mirror{
		boardID:     boardID,
		gw:          deps.Gateway,
		lifecycle:   lifecycle,
		assignments: assignments,
		activity:    deps.Activity,
		logger:      logger.With("board_id", boardID),
	}
}

// BoardID returns the id of the mirrored board.
func (m *Mirror) BoardID() string {
	return m.boardID
}

// Snapshot returns a deep copy of the tree and whether it has been loaded.
func (m *Mirror) Snapshot() (board.Board, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tree.Clone(), m.loaded
}

// Load replaces the tree with a fresh read of the board. Every read must
// succeed before the old tree is dropped.
func (m *Mirror) Load(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.load(ctx)
}

func (m *Mirror) load(ctx context.Context) error {
	b, ok := m.gw.GetBoard(ctx, m.boardID)
	if !ok {
		return fmt.Errorf("loading board %s: %w", m.boardID, board.ErrTransport)
	}
	if b == nil {
		return fmt.Errorf("loading board %s: %w", m.boardID, board.ErrNotFound)
	}

	next := *b
	next.Lists = []board.List{}
	if next.Deleted {
		m.tree = next
		m.loaded = true
		m.lifecycle.Track(board.KindBoard, next.ID, "", trash.StateTrashed)
		m.logger.Debug("loaded trashed board")
		return nil
	}

	lists, ok := m.gw.ListLists(ctx, m.boardID)
	if !ok {
		return fmt.Errorf("loading lists of board %s: %w", m.boardID, board.ErrTransport)
	}
	for _, l := range lists {
		cards, ok := m.gw.ListCards(ctx, l.ID)
		if !ok {
			return fmt.Errorf("loading cards of list %s: %w", l.ID, board.ErrTransport)
		}
		l.Cards = make([]board.Card, 0, len(cards))
		for _, c := range cards {
			users, err := m.assignments.Assignees(ctx, c.ID)
			if err != nil {
				return fmt.Errorf("loading board %s: %w", m.boardID, err)
			}
			c.Assignees = users
			l.Cards = append(l.Cards, c)
		}
		position.Sort(l.Cards, cardPos)
		next.Lists = append(next.Lists, l)
	}
	position.Sort(next.Lists, listPos)

	m.tree = next
	m.loaded = true
	m.lifecycle.Track(board.KindBoard, next.ID, "", trash.StateActive)
	for _, l := range next.Lists {
		m.lifecycle.Track(board.KindList, l.ID, next.ID, trash.StateActive)
		for _, c := range l.Cards {
			m.lifecycle.Track(board.KindCard, c.ID, l.ID, trash.StateActive)
		}
	}
	m.logger.Debug("loaded board", "lists", len(next.Lists))
	return nil
}

// editable checks the tree can take structural edits.
func (m *Mirror) editable() error {
	if !m.loaded {
		return ErrNotLoaded
	}
	if m.tree.Deleted {
		return ErrBoardTrashed
	}
	return nil
}

func (m *Mirror) listIndex(id string) int {
	for i := range m.tree.Lists {
		if m.tree.Lists[i].ID == id {
			return i
		}
	}
	return -1
}

func (m *Mirror) findCard(id string) (int, int, bool) {
	for i := range m.tree.Lists {
		for j := range m.tree.Lists[i].Cards {
			if m.tree.Lists[i].Cards[j].ID == id {
				return i, j, true
			}
		}
	}
	return -1, -1, false
}

func (m *Mirror) record(ctx context.Context, kind board.Kind, id string, typ activity.ActivityType, summary string) {
	m.activity.Record(ctx, activity.ActivityEntry{
		BoardID:      m.boardID,
		EntityKind:   kind,
		EntityID:     id,
		ActivityType: typ,
		Summary:      summary,
	})
}

// CreateList appends a new list after the board's last list.
func (m *Mirror) CreateList(ctx context.Context, title string) (board.List, Refresh, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return board.List{}, RefreshNone, board.ErrBlankTitle
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.editable(); err != nil {
		return board.List{}, RefreshNone, err
	}

	pos := position.Next(m.tree.Lists, listPos)
	l, ok := m.gw.CreateList(ctx, m.boardID, title, pos)
	if !ok {
		return board.List{}, RefreshNone, fmt.Errorf("creating list: %w", board.ErrTransport)
	}

	l.Cards = []board.Card{}
	m.tree.Lists = append(m.tree.Lists, *l)
	m.lifecycle.Track(board.KindList, l.ID, m.boardID, trash.StateActive)
	m.record(ctx, board.KindList, l.ID, activity.TypeListCreated, fmt.Sprintf("created list %q", title))
	return l.Clone(), RefreshPatched, nil
}

// CreateCard appends a new card after the last card of a list.
func (m *Mirror) CreateCard(ctx context.Context, listID, title, description string) (board.Card, Refresh, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return board.Card{}, RefreshNone, board.ErrBlankTitle
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.editable(); err != nil {
		return board.Card{}, RefreshNone, err
	}
	li := m.listIndex(listID)
	if li < 0 {
		return board.Card{}, RefreshNone, fmt.Errorf("list %s: %w", listID, ErrListNotFound)
	}

	pos := position.Next(m.tree.Lists[li].Cards, cardPos)
	c, ok := m.gw.CreateCard(ctx, listID, title, description, pos)
	if !ok {
		return board.Card{}, RefreshNone, fmt.Errorf("creating card: %w", board.ErrTransport)
	}

	c.Assignees = []board.User{}
	m.tree.Lists[li].Cards = append(m.tree.Lists[li].Cards, *c)
	m.lifecycle.Track(board.KindCard, c.ID, listID, trash.StateActive)
	m.record(ctx, board.KindCard, c.ID, activity.TypeCardCreated,
		fmt.Sprintf("created card %q in %q", title, m.tree.Lists[li].Title))
	return c.Clone(), RefreshPatched, nil
}

// MoveCard moves a card to the end of another list. Moving within the same
// list changes nothing.
func (m *Mirror) MoveCard(ctx context.Context, sourceListID, destListID, cardID string) (board.Card, Refresh, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.editable(); err != nil {
		return board.Card{}, RefreshNone, err
	}

	src := m.listIndex(sourceListID)
	if src < 0 {
		return board.Card{}, RefreshNone, fmt.Errorf("source list %s: %w", sourceListID, ErrListNotFound)
	}
	dst := m.listIndex(destListID)
	if dst < 0 {
		return board.Card{}, RefreshNone, fmt.Errorf("destination list %s: %w", destListID, ErrListNotFound)
	}
	ci := -1
	for i, c := range m.tree.Lists[src].Cards {
		if c.ID == cardID {
			ci = i
			break
		}
	}
	if ci < 0 {
		return board.Card{}, RefreshNone, fmt.Errorf("card %s in list %s: %w", cardID, sourceListID, ErrCardNotFound)
	}
	if src == dst {
		return m.tree.Lists[src].Cards[ci].Clone(), RefreshNone, nil
	}

	pos := position.Next(m.tree.Lists[dst].Cards, cardPos)
	if !m.gw.UpdateCard(ctx, cardID, board.CardPatch{ListID: &destListID, Position: &pos}) {
		return board.Card{}, RefreshNone, fmt.Errorf("moving card %s: %w", cardID, board.ErrTransport)
	}

	card := m.tree.Lists[src].Cards[ci]
	m.tree.Lists[src].Cards = append(m.tree.Lists[src].Cards[:ci], m.tree.Lists[src].Cards[ci+1:]...)
	card.ListID = destListID
	card.Position = pos
	m.tree.Lists[dst].Cards = append(m.tree.Lists[dst].Cards, card)
	m.lifecycle.Track(board.KindCard, cardID, destListID, trash.StateActive)
	m.record(ctx, board.KindCard, cardID, activity.TypeCardMoved,
		fmt.Sprintf("moved card %q from %q to %q", card.Title, m.tree.Lists[src].Title, m.tree.Lists[dst].Title))
	return card.Clone(), RefreshPatched, nil
}

// RenameList changes a list's title.
func (m *Mirror) RenameList(ctx context.Context, listID, title string) (board.List, Refresh, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return board.List{}, RefreshNone, board.ErrBlankTitle
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.loaded {
		return board.List{}, RefreshNone, ErrNotLoaded
	}

	if !m.gw.UpdateList(ctx, listID, board.ListPatch{Title: &title}) {
		return board.List{}, RefreshNone, fmt.Errorf("renaming list %s: %w", listID, board.ErrTransport)
	}

	li := m.listIndex(listID)
	if li < 0 {
		m.logger.Warn("renamed list missing from mirror", "list_id", listID)
		return board.List{}, RefreshNone, fmt.Errorf("list %s: %w", listID, ErrDesync)
	}
	m.tree.Lists[li].Title = title
	m.record(ctx, board.KindList, listID, activity.TypeListRenamed, fmt.Sprintf("renamed list to %q", title))
	return m.tree.Lists[li].Clone(), RefreshPatched, nil
}

// RenameCard changes a card's title.
func (m *Mirror) RenameCard(ctx context.Context, cardID, title string) (board.Card, Refresh, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return board.Card{}, RefreshNone, board.ErrBlankTitle
	}
	return m.updateCard(ctx, cardID, board.CardPatch{Title: &title})
}

// UpdateCardContent edits a card's title and description together.
func (m *Mirror) UpdateCardContent(ctx context.Context, cardID string, content CardContent) (board.Card, Refresh, error) {
	var patch board.CardPatch
	if content.Title != nil {
		if title := strings.TrimSpace(*content.Title); title != "" {
			patch.Title = &title
		}
	}
	if content.Description != nil {
		description := *content.Description
		patch.Description = &description
	}
	if patch.Empty() {
		return board.Card{}, RefreshNone, ErrEmptyPatch
	}
	return m.updateCard(ctx, cardID, patch)
}

func (m *Mirror) updateCard(ctx context.Context, cardID string, patch board.CardPatch) (board.Card, Refresh, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.loaded {
		return board.Card{}, RefreshNone, ErrNotLoaded
	}

	if !m.gw.UpdateCard(ctx, cardID, patch) {
		return board.Card{}, RefreshNone, fmt.Errorf("updating card %s: %w", cardID, board.ErrTransport)
	}

	li, ci, ok := m.findCard(cardID)
	if !ok {
		m.logger.Warn("updated card missing from mirror", "card_id", cardID)
		return board.Card{}, RefreshNone, fmt.Errorf("card %s: %w", cardID, ErrDesync)
	}
	card := &m.tree.Lists[li].Cards[ci]
	if patch.Title != nil {
		card.Title = *patch.Title
	}
	if patch.Description != nil {
		card.Description = *patch.Description
	}
	m.record(ctx, board.KindCard, cardID, activity.TypeCardUpdated, fmt.Sprintf("updated card %q", card.Title))
	return card.Clone(), RefreshPatched, nil
}

// CompactList renumbers a list's cards to 0..n-1 in their current order.
// Each card is patched as soon as its own write succeeds.
func (m *Mirror) CompactList(ctx context.Context, listID string) (board.List, Refresh, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.editable(); err != nil {
		return board.List{}, RefreshNone, err
	}
	li := m.listIndex(listID)
	if li < 0 {
		return board.List{}, RefreshNone, fmt.Errorf("list %s: %w", listID, ErrListNotFound)
	}

	cards := m.tree.Lists[li].Cards
	changes := position.Renumber(cards, cardPos)
	if len(changes) == 0 {
		return m.tree.Lists[li].Clone(), RefreshNone, nil
	}
	for _, ch := range changes {
		to := ch.To
		if !m.gw.UpdateCard(ctx, cards[ch.Index].ID, board.CardPatch{Position: &to}) {
			position.Sort(cards, cardPos)
			return board.List{}, RefreshNone, fmt.Errorf("compacting list %s: %w", listID, board.ErrTransport)
		}
		cards[ch.Index].Position = to
	}
	position.Sort(cards, cardPos)
	m.record(ctx, board.KindList, listID, activity.TypeListCompacted,
		fmt.Sprintf("renumbered %d cards in %q", len(changes), m.tree.Lists[li].Title))
	return m.tree.Lists[li].Clone(), RefreshPatched, nil
}

// Assign adds a user to a card and caches the card's re-read assignee set.
func (m *Mirror) Assign(ctx context.Context, cardID, userID string) ([]board.User, Refresh, error) {
	return m.changeAssignees(ctx, cardID, userID, m.assignments.Assign, activity.TypeCardAssigned, "assigned")
}

// Unassign removes a user from a card and caches the card's re-read assignee set.
func (m *Mirror) Unassign(ctx context.Context, cardID, userID string) ([]board.User, Refresh, error) {
	return m.changeAssignees(ctx, cardID, userID, m.assignments.Unassign, activity.TypeCardUnassigned, "unassigned")
}

func (m *Mirror) changeAssignees(
	ctx context.Context,
	cardID, userID string,
	apply func(context.Context, string, string) ([]board.User, error),
	typ activity.ActivityType,
	verb string,
) ([]board.User, Refresh, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.editable(); err != nil {
		return nil, RefreshNone, err
	}
	li, ci, ok := m.findCard(cardID)
	if !ok {
		return nil, RefreshNone, fmt.Errorf("card %s: %w", cardID, ErrCardNotFound)
	}

	users, err := apply(ctx, cardID, userID)
	if err != nil {
		return nil, RefreshNone, err
	}
	card := &m.tree.Lists[li].Cards[ci]
	card.Assignees = users
	m.record(ctx, board.KindCard, cardID, typ, fmt.Sprintf("%s user %s on card %q", verb, userID, card.Title))
	return append([]board.User(nil), users...), RefreshReread, nil
}

// Assignees returns the cached assignees of a card.
func (m *Mirror) Assignees(cardID string) ([]board.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	li, ci, ok := m.findCard(cardID)
	if !ok {
		return nil, fmt.Errorf("card %s: %w", cardID, ErrCardNotFound)
	}
	return append([]board.User{}, m.tree.Lists[li].Cards[ci].Assignees...), nil
}
