package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/itemforge/internal/domain"
	"github.com/osse101/itemforge/internal/item"
)

// newAssetServer serves a DirSource over the scan and record routes.
func newAssetServer(t *testing.T) *httptest.Server {
	t.Helper()
	dir := NewDirSource(writeAssets(t, assetFixture))

	mux := http.NewServeMux()
	mux.HandleFunc(ScanItemsPath, func(w http.ResponseWriter, r *http.Request) {
		category := r.URL.Query().Get(CategoryParam)
		if category == "" {
			res, err := dir.Scan(r.Context())
			if err != nil {
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}
			_ = json.NewEncoder(w).Encode(res)
			return
		}
		files, err := dir.ListFiles(r.Context(), category)
		if errors.Is(err, domain.ErrInvalidCategory) {
			http.NotFound(w, r)
			return
		}
		_ = json.NewEncoder(w).Encode(files)
	})
	mux.HandleFunc(RecordsPathPrefix, func(w http.ResponseWriter, r *http.Request) {
		category, filename, _ := strings.Cut(strings.TrimPrefix(r.URL.Path, RecordsPathPrefix), "/")
		switch {
		case category == "oops":
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		case category == "lists":
			_, _ = w.Write([]byte(`[1, 2]`))
			return
		case category == "nulls":
			_, _ = w.Write([]byte(`null`))
			return
		}
		rec, err := dir.ReadRecord(r.Context(), category, filename)
		if err != nil {
			http.NotFound(w, r)
			return
		}
		_ = json.NewEncoder(w).Encode(rec)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestHTTPSource_ListFiles(t *testing.T) {
	srv := newAssetServer(t)
	src := NewHTTPSource(srv.URL+"/", srv.Client())
	ctx := context.Background()

	files, err := src.ListFiles(ctx, "weapons")
	require.NoError(t, err)
	assert.Equal(t, []string{"bad.json", "iron_sword.json"}, files)

	_, err = src.ListFiles(ctx, "quest")
	assert.ErrorIs(t, err, domain.ErrInvalidCategory)

	_, err = src.ListFiles(ctx, "../etc")
	assert.ErrorIs(t, err, ErrInvalidName)
}

func TestHTTPSource_ListFilesSorted(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`["zweihander.json", "axe.yaml", "mace.json"]`))
	}))
	t.Cleanup(srv.Close)

	files, err := NewHTTPSource(srv.URL, srv.Client()).ListFiles(context.Background(), "weapons")
	require.NoError(t, err)
	assert.Equal(t, []string{"axe.yaml", "mace.json", "zweihander.json"}, files)
}

func TestHTTPSource_Scan(t *testing.T) {
	srv := newAssetServer(t)
	src := NewHTTPSource(srv.URL, srv.Client())

	res, err := src.Scan(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ScanStatusSuccess, res.Status)
	require.Contains(t, res.Items, "weapons")
	assert.Len(t, res.Items["weapons"].Items, 2)
	assert.Equal(t, "iron_sword.json", res.Items["weapons"].Items[1].File)

	srv.Close()
	_, err = src.Scan(context.Background())
	assert.Error(t, err)
}

func TestHTTPSource_ReadRecord(t *testing.T) {
	srv := newAssetServer(t)
	src := NewHTTPSource(srv.URL, nil)
	ctx := context.Background()

	tests := []struct {
		name     string
		category string
		file     string
		wantErr  error
		wantName string
	}{
		{name: "json record", category: "weapons", file: "iron_sword.json", wantName: "Iron Sword"},
		{name: "yaml record", category: "armor", file: "leather_cap.yaml", wantName: "Leather Cap"},
		{name: "missing", category: "weapons", file: "axe.json", wantErr: domain.ErrRecordNotFound},
		{name: "not an object", category: "nulls", file: "x.json", wantErr: domain.ErrMalformedRecord},
		{name: "invalid name", category: "weapons", file: "..", wantErr: ErrInvalidName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := src.ReadRecord(ctx, tt.category, tt.file)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, rec["name"])
		})
	}

	t.Run("server error", func(t *testing.T) {
		_, err := src.ReadRecord(ctx, "oops", "x.json")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "returned 500")
	})

	t.Run("wrong json shape", func(t *testing.T) {
		_, err := src.ReadRecord(ctx, "lists", "x.json")
		assert.Error(t, err)
	})
}

func TestHTTPSource_WithLoader(t *testing.T) {
	srv := newAssetServer(t)
	loader := NewLoader(NewHTTPSource(srv.URL, srv.Client()), item.NewFactory())

	armor := loader.LoadCategoryItems(context.Background(), "armor")
	require.Len(t, armor, 1)
	assert.Equal(t, "armor", armor[0].Core().Category)
}
