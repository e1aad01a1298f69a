package mcp

import (
	"context"
	"log/slog"

	"github.com/rpggio/corkboard/internal/domain/activity"
	"github.com/rpggio/corkboard/internal/domain/board"
	"github.com/rpggio/corkboard/internal/domain/mirror"
	"github.com/rpggio/corkboard/internal/domain/trash"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// DirectoryService defines board and user directory operations needed by MCP.
type DirectoryService interface {
	ListBoards(ctx context.Context) ([]board.Board, error)
	CreateBoard(ctx context.Context, req board.CreateBoardRequest) (*board.Board, error)
	ListUsers(ctx context.Context) ([]board.User, error)
	CreateUser(ctx context.Context, username string) (*board.User, error)
}

// WorkspaceService hands out board mirrors and handles board-level trash.
type WorkspaceService interface {
	Open(ctx context.Context, boardID string) (*mirror.Mirror, error)
	TrashedBoards(ctx context.Context) ([]board.Board, error)
	SendBoardToTrash(ctx context.Context, boardID string) (trash.Entry, mirror.Refresh, error)
	RestoreBoard(ctx context.Context, boardID string) (trash.Entry, mirror.Refresh, error)
	PurgeBoard(ctx context.Context, boardID string) (trash.Entry, mirror.Refresh, error)
}

// ActivityService defines activity operations needed by MCP.
type ActivityService interface {
	GetRecentActivity(ctx context.Context, opts activity.ListActivityOptions) ([]activity.ActivityEntry, error)
}

// Services contains all domain services needed by MCP.
type Services struct {
	Directory DirectoryService
	Boards    WorkspaceService
	Activity  ActivityService
}

// Config contains server configuration.
type Config struct {
	Services Services
	Version  string
	Logger   *slog.Logger
}

// NewServer creates and configures an MCP server with all tools and middleware.
func NewServer(cfg Config) *sdkmcp.Server {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	version := cfg.Version
	if version == "" {
		version = "0.1.0"
	}

	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "corkboard",
		Version: version,
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       logger,
	})

	registerDocResources(server)

	server.AddReceivingMiddleware(trafficLoggingMiddleware(logger, "inbound"))
	server.AddSendingMiddleware(trafficLoggingMiddleware(logger, "outbound"))

	registerTools(server, &toolSet{svc: cfg.Services})

	return server
}
