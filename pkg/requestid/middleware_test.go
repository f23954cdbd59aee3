package requestid_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/donorkit/pkg/logger"
	"github.com/dmitrymomot/donorkit/pkg/requestid"
)

func serve(t *testing.T, mw func(http.Handler) http.Handler, header string) (ctxID, respID string) {
	t.Helper()

	h := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxID = requestid.FromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(requestid.Header, header)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return ctxID, rec.Header().Get(requestid.Header)
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	gen := requestid.New(requestid.WithGenerator(func() string { return "generated" }))

	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"generates when missing", "", "generated"},
		{"reuses valid id", "abc-123_X", "abc-123_X"},
		{"replaces invalid characters", "abc 123", "generated"},
		{"replaces oversized id", strings.Repeat("a", 129), "generated"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctxID, respID := serve(t, gen, tt.header)
			assert.Equal(t, tt.want, ctxID)
			assert.Equal(t, tt.want, respID)
		})
	}
}

func TestMiddleware_DefaultGeneratesUUID(t *testing.T) {
	t.Parallel()

	ctxID, respID := serve(t, requestid.Middleware, "")
	assert.Len(t, ctxID, 36)
	assert.Equal(t, ctxID, respID)
}

func TestLogExtractor(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log := logger.New(logger.WithOutput(buf), logger.WithContextExtractors(requestid.LogExtractor()))

	log.InfoContext(requestid.WithContext(context.Background(), "r-1"), "msg")
	assert.Contains(t, buf.String(), `"request_id":"r-1"`)

	_, ok := requestid.LogExtractor()(context.Background())
	assert.False(t, ok)
}
