package assignment

import (
	"context"

	"github.com/rpggio/corkboard/internal/domain/board"
)

// Gateway persists the card to user relation.
type Gateway interface {
	CreateAssignment(ctx context.Context, cardID, userID string) board.WriteResult
	DeleteAssignment(ctx context.Context, cardID, userID string) bool
	Assignees(ctx context.Context, cardID string) ([]board.User, bool)
}
