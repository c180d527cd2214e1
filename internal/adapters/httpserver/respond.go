package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/watchfi/backend/internal/domain"
)

type errorBody struct {
	Error string `json:"error"`
}

// listMeta is the pagination envelope attached to every list response.
type listMeta struct {
	TotalItems  int64 `json:"totalItems"`
	TotalPages  int64 `json:"totalPages"`
	CurrentPage int   `json:"currentPage"`
	PageSize    int   `json:"pageSize"`
}

func newListMeta(total int64, page, pageSize int) listMeta {
	if pageSize <= 0 {
		pageSize = 1
	}
	pages := total / int64(pageSize)
	if total%int64(pageSize) != 0 {
		pages++
	}
	return listMeta{
		TotalItems:  total,
		TotalPages:  pages,
		CurrentPage: page,
		PageSize:    pageSize,
	}
}

type listResponse struct {
	Data any      `json:"data"`
	Meta listMeta `json:"meta"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			log.Error().Err(err).Msg("encode response")
		}
	}
}

// writeError maps domain errors onto status codes. Anything unclassified is
// logged in full and reported as a generic 500 so internals never leak.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		writeJSON(w, http.StatusBadRequest, errorBody{Error: ve.Message})
	case errors.Is(err, domain.ErrDuplicateTransaction):
		writeJSON(w, http.StatusConflict, errorBody{Error: "Transaction hash already exists. Possible duplicate booking."})
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorBody{Error: "Resource not found."})
	default:
		log.Error().Err(err).Str("path", r.URL.Path).Str("method", r.Method).Msg("request failed")
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "Internal server error."})
	}
}

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return domain.Invalid("Invalid JSON body.")
	}
	return nil
}
