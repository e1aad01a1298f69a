package transport

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

const (
	sessionHeader   = "Mcp-Session-Id"
	requestIDHeader = "X-Request-Id"
)

// RequestInfo identifies one HTTP exchange with the board server.
type RequestInfo struct {
	RequestID string
	SessionID string
}

type requestInfoKey struct{}

// RequestInfoFromContext returns the request info stored by RequestContext.
func RequestInfoFromContext(ctx context.Context) (RequestInfo, bool) {
	info, ok := ctx.Value(requestInfoKey{}).(RequestInfo)
	return info, ok
}

// RequestContext tags each request with a request id, reusing the caller's
// X-Request-Id when given, and the MCP session id once the client has one.
// The request id is echoed in the response headers.
func RequestContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		info := RequestInfo{
			RequestID: r.Header.Get(requestIDHeader),
			SessionID: r.Header.Get(sessionHeader),
		}
		if info.RequestID == "" {
			info.RequestID = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, info.RequestID)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestInfoKey{}, info)))
	})
}
