package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/osse101/itemforge/internal/catalog"
	"github.com/osse101/itemforge/internal/domain"
	"github.com/osse101/itemforge/internal/logger"
	"github.com/osse101/itemforge/internal/validation"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string `json:"message,omitempty"`
	Data    any    `json:"data"`
}

// respondJSON encodes payload into a pooled buffer before writing it, so an
// encode failure never leaves a half-written body.
func respondJSON(w http.ResponseWriter, status int, payload any) {
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		logger.Error(LogMsgEncodeFailed, "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"` + ErrMsgGenericServerError + `"}` + "\n"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		logger.Error(LogMsgWriteFailed, "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs err and writes the user-facing mapping of it.
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	status, msg := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(fmt.Sprintf(LogMsgServiceError, opName), "error", err)
	} else {
		log.Warn(fmt.Sprintf(LogMsgServiceError, opName), "error", err)
	}
	respondError(w, status, msg)
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgItemNotFoundError   = "Item not found"
	ErrMsgInvalidCategoryErr  = "Unknown item category"
	ErrMsgMalformedRecordErr  = "Item record is malformed"
	ErrMsgSchemaViolationErr  = "Item record does not match the item schema"
	ErrMsgInvalidNameError    = "Invalid category or file name"
	ErrMsgUnsupportedUseError = "Item cannot be used"
	ErrMsgInvalidInputError   = "Invalid request. Please check your inputs."
	ErrMsgStoreUnavailableErr = "Item store is not configured"
)

// mapServiceErrorToUserMessage maps domain errors to HTTP status codes and
// messages. Unrecognised errors become a generic 500.
func mapServiceErrorToUserMessage(err error) (int, string) {
	switch {
	case err == nil:
		return http.StatusInternalServerError, ErrMsgUnknownError
	case errors.Is(err, domain.ErrItemNotFound), errors.Is(err, domain.ErrRecordNotFound):
		return http.StatusNotFound, ErrMsgItemNotFoundError
	case errors.Is(err, domain.ErrInvalidCategory):
		return http.StatusNotFound, ErrMsgInvalidCategoryErr
	case errors.Is(err, catalog.ErrInvalidName):
		return http.StatusBadRequest, ErrMsgInvalidNameError
	case errors.Is(err, validation.ErrSchemaViolation):
		return http.StatusUnprocessableEntity, ErrMsgSchemaViolationErr
	case errors.Is(err, domain.ErrMalformedRecord):
		return http.StatusUnprocessableEntity, ErrMsgMalformedRecordErr
	case errors.Is(err, domain.ErrUnsupportedUse):
		return http.StatusBadRequest, ErrMsgUnsupportedUseError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	case errors.Is(err, domain.ErrStoreUnavailable):
		return http.StatusServiceUnavailable, ErrMsgStoreUnavailableErr
	default:
		return http.StatusInternalServerError, ErrMsgGenericServerError
	}
}
