package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Greenhouse_Go/internal/domain"
)

func TestSecurityLoggingMiddleware_RateLimiting(t *testing.T) {
	const proxy = "10.0.0.1"
	detector := NewSuspiciousActivityDetector()
	handler := SecurityLoggingMiddleware([]string{proxy}, detector)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	send := func(remoteAddr, forwardedFor string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/garden", nil)
		req.RemoteAddr = remoteAddr
		if forwardedFor != "" {
			req.Header.Set(HeaderForwardedFor, forwardedFor)
		}
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec
	}

	// direct and proxied traffic from the same client share one budget
	for i := 0; i < maxRequestsPerWindow; i++ {
		var rec *httptest.ResponseRecorder
		if i%2 == 0 {
			rec = send("192.168.1.100:1234", "")
		} else {
			rec = send(proxy+":443", "203.0.113.9, 192.168.1.100")
		}
		require.Equal(t, http.StatusOK, rec.Code, "request %d", i)
	}

	tests := []struct {
		name         string
		remoteAddr   string
		forwardedFor string
		wantStatus   int
	}{
		{"over the ceiling", "192.168.1.100:1234", "", http.StatusTooManyRequests},
		{"over the ceiling via proxy", proxy + ":443", "192.168.1.100", http.StatusTooManyRequests},
		{"spoofed header from untrusted peer", "192.168.1.100:1234", "198.51.100.7", http.StatusTooManyRequests},
		{"other client unaffected", "192.168.1.101:1234", "", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := send(tt.remoteAddr, tt.forwardedFor)
			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				return
			}
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			var body errorBody
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, errorBody{Error: ErrMsgTooManyRequests, Kind: domain.KindRateLimited}, body)
		})
	}

	detector.mu.Lock()
	defer detector.mu.Unlock()
	assert.Equal(t, maxRequestsPerWindow+3, detector.requestCountByIP["192.168.1.100"])
	assert.Equal(t, 1, detector.requestCountByIP["192.168.1.101"])
}
