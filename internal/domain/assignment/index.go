package assignment

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/rpggio/corkboard/internal/domain/board"
)

// ErrMissingID indicates a blank card or user id.
var ErrMissingID = fmt.Errorf("card and user ids are required: %w", board.ErrPrecondition)

// Index maintains which users are assigned to which cards. Every mutation
// answers with the card's full assignee set as re-read from the store.
type Index struct {
	gw     Gateway
	logger *slog.Logger
}

// NewIndex creates a new assignment index.
func NewIndex(gw Gateway, logger *slog.Logger) *Index {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Index{gw: gw, logger: logger}
}

// Assign links a user to a card. Assigning twice is not an error.
func (x *Index) Assign(ctx context.Context, cardID, userID string) ([]board.User, error) {
	if err := checkIDs(cardID, userID); err != nil {
		return nil, err
	}

	switch x.gw.CreateAssignment(ctx, cardID, userID) {
	case board.WriteApplied:
	case board.WriteDuplicate:
		x.logger.Debug("user already assigned", "card_id", cardID, "user_id", userID)
	default:
		return nil, fmt.Errorf("assigning user %s to card %s: %w", userID, cardID, board.ErrTransport)
	}
	return x.Assignees(ctx, cardID)
}

// Unassign removes a user from a card. Removing an absent assignment is not an error.
func (x *Index) Unassign(ctx context.Context, cardID, userID string) ([]board.User, error) {
	if err := checkIDs(cardID, userID); err != nil {
		return nil, err
	}

	if !x.gw.DeleteAssignment(ctx, cardID, userID) {
		return nil, fmt.Errorf("unassigning user %s from card %s: %w", userID, cardID, board.ErrTransport)
	}
	return x.Assignees(ctx, cardID)
}

// Assignees returns the users assigned to a card.
func (x *Index) Assignees(ctx context.Context, cardID string) ([]board.User, error) {
	users, ok := x.gw.Assignees(ctx, cardID)
	if !ok {
		return nil, fmt.Errorf("reading assignees of card %s: %w", cardID, board.ErrTransport)
	}
	if users == nil {
		users = []board.User{}
	}
	return users, nil
}

func checkIDs(cardID, userID string) error {
	if strings.TrimSpace(cardID) == "" || strings.TrimSpace(userID) == "" {
		return ErrMissingID
	}
	return nil
}
