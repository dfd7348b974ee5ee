package handler

import (
	"net/http"

	"github.com/osse101/itemforge/internal/domain"
	"github.com/osse101/itemforge/internal/logger"
)

type InvalidateCacheRequest struct {
	Categories []string `json:"categories" validate:"omitempty,dive,required,max=100"`
}

type InvalidateCacheResponse struct {
	Message string `json:"message"`
	Dropped int    `json:"dropped"`
}

// AdminHandlers serves the API-key protected maintenance routes.
// syncer is nil when no item store is configured.
type AdminHandlers struct {
	catalog ItemCatalog
	syncer  RecordSyncer
}

func NewAdminHandlers(c ItemCatalog, syncer RecordSyncer) *AdminHandlers {
	return &AdminHandlers{catalog: c, syncer: syncer}
}

// HandleInvalidateCache drops the listed categories, or the whole cache when
// the body is empty or lists none.
// @Summary Invalidate the item cache
// @Tags admin
// @Accept json
// @Produce json
// @Param request body InvalidateCacheRequest false "Categories to drop"
// @Success 200 {object} InvalidateCacheResponse
// @Router /api/admin/cache/invalidate [post]
// @Security ApiKeyAuth
func (h *AdminHandlers) HandleInvalidateCache() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req InvalidateCacheRequest
		if r.ContentLength != 0 {
			if err := DecodeAndValidateRequest(r, w, &req, "Invalidate cache"); err != nil {
				return
			}
		}

		dropped := h.catalog.Invalidate(r.Context(), req.Categories...)
		respondJSON(w, http.StatusOK, InvalidateCacheResponse{
			Message: MsgCacheInvalidated,
			Dropped: dropped,
		})
	}
}

// HandleSync copies every loadable item into the item store.
// @Summary Sync item records to the database
// @Tags admin
// @Produce json
// @Success 200 {object} DataResponse
// @Failure 503 {object} ErrorResponse "No item store configured"
// @Router /api/admin/sync [post]
// @Security ApiKeyAuth
func (h *AdminHandlers) HandleSync() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if h.syncer == nil {
			respondServiceError(w, r, ErrMsgSyncFailed, domain.ErrStoreUnavailable)
			return
		}

		result, err := h.syncer.Sync(r.Context())
		if err != nil {
			respondServiceError(w, r, ErrMsgSyncFailed, err)
			return
		}

		logger.FromContext(r.Context()).Info(MsgSyncCompleted, "inserted", result.Inserted, "updated", result.Updated)
		respondJSON(w, http.StatusOK, DataResponse{Message: MsgSyncCompleted, Data: result})
	}
}
