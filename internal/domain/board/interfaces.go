package board

import "context"

// Directory lists and creates the top-level entities of a workspace.
type Directory interface {
	ListBoards(ctx context.Context) ([]Board, bool)
	CreateBoard(ctx context.Context, title string, isPublic bool) (*Board, bool)
	ListUsers(ctx context.Context) ([]User, bool)
	CreateUser(ctx context.Context, username string) (*User, WriteResult)
}
