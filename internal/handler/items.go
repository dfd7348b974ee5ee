package handler

import (
	"fmt"
	"net/http"
	"slices"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/itemforge/internal/catalog"
	"github.com/osse101/itemforge/internal/domain"
	"github.com/osse101/itemforge/internal/item"
	"github.com/osse101/itemforge/internal/logger"
	"github.com/osse101/itemforge/internal/metrics"
)

// ItemRef names one item record.
type ItemRef struct {
	Category string `json:"category" validate:"required,category"`
	File     string `json:"file" validate:"required,max=255,excludesall=/\\\x00"`
}

type CompareRequest struct {
	Left   ItemRef `json:"left" validate:"required"`
	Right  ItemRef `json:"right" validate:"required"`
	SortBy string  `json:"sort_by" validate:"required,sortkey"`
}

type CompareResponse struct {
	Result int `json:"result"`
}

// UseRequest simulates using a potion or quest item on a character.
// Location and NPC only matter for quest items.
type UseRequest struct {
	Item      ItemRef          `json:"item" validate:"required"`
	Character domain.Character `json:"character"`
	Location  string           `json:"location" validate:"max=100"`
	NPC       string           `json:"npc" validate:"max=100"`
}

// UseResponse carries either a potion or a quest result and the character
// after the use.
type UseResponse struct {
	Potion    *domain.UseResult      `json:"potion,omitempty"`
	Quest     *domain.QuestUseResult `json:"quest,omitempty"`
	Character domain.Character       `json:"character"`
}

type ItemSummary struct {
	ID       string     `json:"id"`
	Filename string     `json:"filename"`
	Stats    item.Stats `json:"stats"`
}

type ItemDetail struct {
	Item      any        `json:"item"`
	Tooltip   string     `json:"tooltip"`
	Stats     item.Stats `json:"stats"`
	ImagePath string     `json:"image_path"`
}

// ItemHandlers serves the item views built from the cached catalog.
type ItemHandlers struct {
	catalog ItemCatalog
}

func NewItemHandlers(c ItemCatalog) *ItemHandlers {
	return &ItemHandlers{catalog: c}
}

// HandleGetCategories returns the known item categories in load order.
// @Summary List item categories
// @Tags items
// @Produce json
// @Success 200 {array} string
// @Router /api/items/categories [get]
func (h *ItemHandlers) HandleGetCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories := item.AllItemCategories()
		names := make([]string, len(categories))
		for i, c := range categories {
			names[i] = c.String()
		}
		respondJSON(w, http.StatusOK, names)
	}
}

// HandleListItems returns every loadable item of a category, optionally sorted.
// @Summary List items in a category
// @Tags items
// @Produce json
// @Param category path string true "Category"
// @Param sort_by query string false "name, level, rarity, value or weight"
// @Success 200 {array} ItemSummary
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/items/{category} [get]
func (h *ItemHandlers) HandleListItems() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sortBy := GetOptionalQueryParam(r, ParamSortBy, "")
		if sortBy != "" && !slices.Contains(item.SortKeys, sortBy) {
			respondError(w, http.StatusBadRequest,
				fmt.Sprintf(ErrMsgInvalidSortKey, sortBy, strings.Join(item.SortKeys, ", ")))
			return
		}

		listed, err := h.catalog.Listing(r.Context(), chi.URLParam(r, ParamCategory))
		if err != nil {
			respondServiceError(w, r, ErrMsgListItemsFailed, err)
			return
		}

		if sortBy != "" {
			slices.SortStableFunc(listed, func(a, b catalog.Listed) int {
				return item.CompareItems(a.Item, b.Item, sortBy)
			})
		}

		summaries := make([]ItemSummary, 0, len(listed))
		for _, l := range listed {
			summaries = append(summaries, ItemSummary{
				ID:       l.Item.Core().ID,
				Filename: l.Filename,
				Stats:    item.ItemStats(l.Item),
			})
		}
		respondJSON(w, http.StatusOK, summaries)
	}
}

// HandleGetItem returns the export, tooltip and stats of one item.
// @Summary Get an item
// @Tags items
// @Produce json
// @Param category path string true "Category"
// @Param file path string true "Record file name"
// @Success 200 {object} ItemDetail
// @Failure 404 {object} ErrorResponse
// @Router /api/items/{category}/{file} [get]
func (h *ItemHandlers) HandleGetItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		it, err := h.catalog.Item(r.Context(), chi.URLParam(r, ParamCategory), chi.URLParam(r, ParamFile))
		if err != nil {
			respondServiceError(w, r, ErrMsgGetItemFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, ItemDetail{
			Item:      it.ToJSON(),
			Tooltip:   it.TooltipText(),
			Stats:     item.ItemStats(it),
			ImagePath: it.ImagePath(),
		})
	}
}

// HandleCompare orders two items by a sort key.
// @Summary Compare two items
// @Tags items
// @Accept json
// @Produce json
// @Param request body CompareRequest true "Items and sort key"
// @Success 200 {object} CompareResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/items/compare [post]
func (h *ItemHandlers) HandleCompare() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CompareRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Compare items"); err != nil {
			return
		}

		left, err := h.load(r, req.Left)
		if err != nil {
			respondServiceError(w, r, ErrMsgCompareFailed, err)
			return
		}
		right, err := h.load(r, req.Right)
		if err != nil {
			respondServiceError(w, r, ErrMsgCompareFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, CompareResponse{Result: item.CompareItems(left, right, req.SortBy)})
	}
}

// HandleUse simulates using a potion or quest item on the supplied character.
// A refused use is still a 200 with success false.
// @Summary Simulate item use
// @Tags items
// @Accept json
// @Produce json
// @Param request body UseRequest true "Item and character"
// @Success 200 {object} UseResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/items/use [post]
func (h *ItemHandlers) HandleUse() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UseRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Use item"); err != nil {
			return
		}

		it, err := h.load(r, req.Item)
		if err != nil {
			respondServiceError(w, r, ErrMsgUseItemFailed, err)
			return
		}

		ctx := r.Context()
		player := req.Character
		resp := UseResponse{}
		var success bool

		switch v := it.(type) {
		case *item.Potion:
			res := v.Use(ctx, &player)
			resp.Potion, success = &res, res.Success
		case *item.Quest:
			res := v.Use(ctx, &player, domain.UseContext{Location: req.Location, NPC: req.NPC})
			resp.Quest, success = &res, res.Success
		default:
			respondError(w, http.StatusBadRequest, ErrMsgItemNotUsable)
			return
		}
		resp.Character = player

		outcome := metrics.OutcomeSuccess
		if !success {
			outcome = metrics.OutcomeRefused
		}
		metrics.ItemsUsed.WithLabelValues(it.Core().Category, outcome).Inc()
		logger.FromContext(ctx).Info(LogMsgItemUsed,
			"category", req.Item.Category,
			"file", req.Item.File,
			"success", success)

		respondJSON(w, http.StatusOK, resp)
	}
}

func (h *ItemHandlers) load(r *http.Request, ref ItemRef) (item.Item, error) {
	category, _ := domain.ParseCategory(ref.Category)
	return h.catalog.Item(r.Context(), category.String(), ref.File)
}
