package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/itemforge/internal/catalog"
	"github.com/osse101/itemforge/internal/item"
	"github.com/osse101/itemforge/internal/middleware"
)

const testAPIKey = "test-api-key"

func newTestServerRouter(t *testing.T) http.Handler {
	t.Helper()
	root := t.TempDir()
	dir := filepath.Join(root, "weapons")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "iron_sword.json"),
		[]byte(`{"id": "iron_sword", "name": "Iron Sword", "damage": 10}`), 0o644))

	src := catalog.NewDirSource(root)
	cache := catalog.NewCache(catalog.NewLoader(src, item.NewFactory()), 8, time.Minute)

	return NewRouter(Options{
		APIKey:      testAPIKey,
		ServiceName: "itemforge",
		Version:     "test",
	}, Deps{Assets: src, Catalog: cache})
}

func TestRouter(t *testing.T) {
	router := newTestServerRouter(t)

	tests := []struct {
		name           string
		method         string
		path           string
		body           string
		apiKey         string
		expectedStatus int
	}{
		{"healthz", http.MethodGet, "/healthz", "", "", http.StatusOK},
		{"readyz without database", http.MethodGet, "/readyz", "", "", http.StatusOK},
		{"version", http.MethodGet, "/version", "", "", http.StatusOK},
		{"metrics", http.MethodGet, "/metrics", "", "", http.StatusOK},
		{"item reads are public", http.MethodGet, "/api/items/weapons", "", "", http.StatusOK},
		{"single item", http.MethodGet, "/api/items/weapons/iron_sword.json", "", "", http.StatusOK},
		{"unknown route", http.MethodGet, "/api/nope", "", "", http.StatusNotFound},
		{"admin without key", http.MethodPost, "/api/admin/cache/invalidate", "", "", http.StatusUnauthorized},
		{"admin with wrong key", http.MethodPost, "/api/admin/cache/invalidate", "", "nope", http.StatusUnauthorized},
		{"admin with key", http.MethodPost, "/api/admin/cache/invalidate", "", testAPIKey, http.StatusOK},
		{"sync without database", http.MethodPost, "/api/admin/sync", "", testAPIKey, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			if tt.apiKey != "" {
				req.Header.Set(HeaderAPIKey, tt.apiKey)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code, rec.Body.String())
			assert.Equal(t, HeaderValueNoSniff, rec.Header().Get(HeaderContentType))
			assert.NotEmpty(t, rec.Header().Get(middleware.HeaderRequestID))
		})
	}
}

func TestRouter_EchoesRequestID(t *testing.T) {
	router := newTestServerRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(middleware.HeaderRequestID, "trace-123")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "trace-123", rec.Header().Get(middleware.HeaderRequestID))
}

func TestRouter_OversizedBody(t *testing.T) {
	router := newTestServerRouter(t)

	body := `{"categories": ["` + strings.Repeat("a", MaxRequestBodyBytes) + `"]}`
	req := httptest.NewRequest(http.MethodPost, "/api/admin/cache/invalidate", strings.NewReader(body))
	req.Header.Set(HeaderAPIKey, testAPIKey)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_ListItems(t *testing.T) {
	router := newTestServerRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/items/weapons", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var items []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "iron_sword.json", items[0]["filename"])
}
