package testserver

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rpggio/corkboard/internal/domain/activity"
	"github.com/rpggio/corkboard/internal/domain/board"
	"github.com/rpggio/corkboard/internal/domain/mirror"
	"github.com/rpggio/corkboard/internal/gateway"
	"github.com/rpggio/corkboard/internal/mcp"
	"github.com/rpggio/corkboard/internal/sqlite"
	"github.com/stretchr/testify/require"
)

// TestServer is a corkboard MCP server over an in-memory SQLite database,
// connected to a client through in-memory transports.
type TestServer struct {
	DB      *sqlite.DB
	Gateway *gateway.Gateway
	Server  *sdkmcp.Server
	Session *sdkmcp.ClientSession
}

func New(t *testing.T) *TestServer {
	t.Helper()
	ctx := context.Background()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := sqlite.New(dsn)
	require.NoError(t, err)
	require.NoError(t, db.Migrate())

	gw := gateway.New(db.Store(), gateway.Options{Timeout: 5 * time.Second})
	activitySvc := activity.NewService(gw.ActivityLog(), nil)

	server := mcp.NewServer(mcp.Config{
		Services: mcp.Services{
			Directory: board.NewService(gw, nil),
			Boards:    mirror.NewWorkspace(gw, activitySvc, nil),
			Activity:  activitySvc,
		},
	})

	serverTransport, clientTransport := sdkmcp.NewInMemoryTransports()
	serverSession, err := server.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)

	client := sdkmcp.NewClient(&sdkmcp.Implementation{Name: "test-client", Version: "0.0.1"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = session.Close()
		_ = serverSession.Wait()
		_ = db.Close()
	})

	return &TestServer{DB: db, Gateway: gw, Server: server, Session: session}
}

// Call invokes a tool and returns its result. When out is non-nil and the
// call succeeded, the tool's JSON output is decoded into it.
func (ts *TestServer) Call(t *testing.T, tool string, args map[string]any, out any) *sdkmcp.CallToolResult {
	t.Helper()
	if args == nil {
		args = map[string]any{}
	}
	res, err := ts.Session.CallTool(context.Background(), &sdkmcp.CallToolParams{Name: tool, Arguments: args})
	require.NoError(t, err)
	if out != nil && !res.IsError {
		require.NoError(t, json.Unmarshal([]byte(Text(t, res)), out))
	}
	return res
}

// MustCall is Call that fails the test on a tool error.
func (ts *TestServer) MustCall(t *testing.T, tool string, args map[string]any, out any) {
	t.Helper()
	res := ts.Call(t, tool, args, out)
	require.False(t, res.IsError, "%s: %s", tool, Text(t, res))
}

// Text returns the first text content of a tool result.
func Text(t *testing.T, res *sdkmcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, res.Content)
	text, ok := res.Content[0].(*sdkmcp.TextContent)
	require.True(t, ok, "content is %T", res.Content[0])
	return text.Text
}
