package board

import (
	"context"
	"log/slog"
	"strings"
)

// Service handles the board and user directory.
type Service struct {
	dir    Directory
	logger *slog.Logger
}

// NewService creates a new directory service.
func NewService(dir Directory, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{dir: dir, logger: logger}
}

// CreateBoardRequest describes a board creation request.
type CreateBoardRequest struct {
	Title    string
	IsPublic bool
}

// ListBoards returns active boards, oldest first.
func (s *Service) ListBoards(ctx context.Context) ([]Board, error) {
	boards, ok := s.dir.ListBoards(ctx)
	if !ok {
		return nil, ErrTransport
	}
	return boards, nil
}

// CreateBoard creates an empty board.
func (s *Service) CreateBoard(ctx context.Context, req CreateBoardRequest) (*Board, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, ErrBlankTitle
	}
	b, ok := s.dir.CreateBoard(ctx, title, req.IsPublic)
	if !ok {
		return nil, ErrTransport
	}
	s.logger.Info("board created", "board_id", b.ID)
	return b, nil
}

// ListUsers returns every user.
func (s *Service) ListUsers(ctx context.Context) ([]User, error) {
	users, ok := s.dir.ListUsers(ctx)
	if !ok {
		return nil, ErrTransport
	}
	return users, nil
}

// CreateUser registers a user under a unique username.
func (s *Service) CreateUser(ctx context.Context, username string) (*User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, ErrBlankUsername
	}
	u, result := s.dir.CreateUser(ctx, username)
	switch result {
	case WriteApplied:
		s.logger.Info("user created", "user_id", u.ID)
		return u, nil
	case WriteDuplicate:
		return nil, ErrUsernameTaken
	default:
		return nil, ErrTransport
	}
}
