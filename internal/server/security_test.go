package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuthMiddleware(t *testing.T) {
	apiKey := "secret-key"

	tests := []struct {
		name           string
		configuredKey  string
		providedKey    string
		expectedStatus int
	}{
		{"valid API key", apiKey, apiKey, http.StatusOK},
		{"invalid API key", apiKey, "wrong-key", http.StatusUnauthorized},
		{"missing API key", apiKey, "", http.StatusUnauthorized},
		{"prefix of the key", apiKey, "secret", http.StatusUnauthorized},
		{"no key configured", "", "", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			detector := NewSuspiciousActivityDetector()
			h := AuthMiddleware(tt.configuredKey, nil, detector)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(http.MethodPost, "/api/admin/sync", nil)
			req.RemoteAddr = "203.0.113.7:5555"
			if tt.providedKey != "" {
				req.Header.Set(HeaderAPIKey, tt.providedKey)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)

			detector.mu.Lock()
			failed := detector.failedAuthByIP["203.0.113.7"]
			detector.mu.Unlock()
			if tt.expectedStatus == http.StatusUnauthorized {
				assert.Equal(t, 1, failed)
			} else {
				assert.Zero(t, failed)
			}
		})
	}
}

func TestExtractIP(t *testing.T) {
	trusted := []string{"10.0.0.1"}

	tests := []struct {
		name       string
		remoteAddr string
		forwarded  string
		want       string
	}{
		{"direct connection", "198.51.100.4:1234", "", "198.51.100.4"},
		{"untrusted forwarder is ignored", "198.51.100.4:1234", "1.2.3.4", "198.51.100.4"},
		{"trusted proxy uses rightmost hop", "10.0.0.1:80", "1.2.3.4, 5.6.7.8", "5.6.7.8"},
		{"trusted proxy without header", "10.0.0.1:80", "", "10.0.0.1"},
		{"unparseable remote addr", "garbage", "", "garbage"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.forwarded != "" {
				req.Header.Set(HeaderForwardedFor, tt.forwarded)
			}
			assert.Equal(t, tt.want, extractIP(req, trusted))
		})
	}
}
