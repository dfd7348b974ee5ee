package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/itemforge/internal/catalog"
)

// HandleScanItems lists the asset tree. With a category query parameter it
// returns only that category's file names.
// @Summary Scan item assets
// @Tags assets
// @Produce json
// @Param category query string false "Category to list"
// @Success 200 {object} catalog.ScanResult
// @Failure 404 {object} ErrorResponse
// @Router /api/scan-items [get]
func HandleScanItems(src AssetSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if category := r.URL.Query().Get(catalog.CategoryParam); category != "" {
			files, err := src.ListFiles(r.Context(), category)
			if err != nil {
				respondServiceError(w, r, ErrMsgScanFailed, err)
				return
			}
			respondJSON(w, http.StatusOK, files)
			return
		}

		res, err := src.Scan(r.Context())
		if err != nil {
			respondServiceError(w, r, ErrMsgScanFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, res)
	}
}

// HandleGetRecord returns one record exactly as stored.
// @Summary Get raw item record
// @Tags assets
// @Produce json
// @Param category path string true "Category"
// @Param file path string true "Record file name"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} ErrorResponse
// @Router /api/records/{category}/{file} [get]
func HandleGetRecord(src AssetSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, err := src.ReadRecord(r.Context(), chi.URLParam(r, ParamCategory), chi.URLParam(r, ParamFile))
		if err != nil {
			respondServiceError(w, r, ErrMsgGetRecordFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, rec)
	}
}
