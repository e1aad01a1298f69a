package transport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/cors"
)

// Options configures the HTTP surface.
type Options struct {
	// AllowedOrigins lists the origins allowed by CORS. Empty allows any origin.
	AllowedOrigins []string
	SessionTimeout time.Duration
	Logger         *slog.Logger
}

// NewRouter serves the MCP server over streamable HTTP at /mcp, with a
// health check at /health.
func NewRouter(server *sdkmcp.Server, opts Options) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	timeout := opts.SessionTimeout
	if timeout == 0 {
		timeout = 30 * time.Minute
	}

	mcpHandler := sdkmcp.NewStreamableHTTPHandler(
		func(*http.Request) *sdkmcp.Server { return server },
		&sdkmcp.StreamableHTTPOptions{
			Stateless:      false,
			SessionTimeout: timeout,
		},
	)

	r := mux.NewRouter()
	r.Use(RequestContext, requestLogger(logger))
	r.Handle("/mcp", mcpHandler)
	r.PathPrefix("/mcp/").Handler(mcpHandler)
	r.HandleFunc("/health", handleHealth).Methods(http.MethodGet)

	c := cors.New(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Accept", sessionHeader, "Mcp-Protocol-Version", "Last-Event-ID", requestIDHeader},
		ExposedHeaders: []string{sessionHeader, requestIDHeader},
	})
	return c.Handler(r)
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func requestLogger(logger *slog.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			info, _ := RequestInfoFromContext(r.Context())
			logger.Debug("http request",
				"method", r.Method,
				"path", r.URL.Path,
				"request_id", info.RequestID,
				"session_id", info.SessionID,
				"duration", time.Since(start))
		})
	}
}
