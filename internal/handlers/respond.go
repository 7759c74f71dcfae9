package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-transfer-ledger/internal/dates"
	"github.com/sbilibin2017/gw-transfer-ledger/internal/logger"
	"github.com/sbilibin2017/gw-transfer-ledger/internal/models"
	"github.com/sbilibin2017/gw-transfer-ledger/internal/services"
	"github.com/sbilibin2017/gw-transfer-ledger/internal/validators"
)

const internalErrorMessage = "Internal server error"

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Log.Errorw("failed to encode response", "status", status, "error", err)
	}
}

// writeError maps domain errors to a status code. Anything unrecognised is a 500.
func writeError(w http.ResponseWriter, err error) {
	var fieldErr *validators.FieldError
	switch {
	case errors.As(err, &fieldErr):
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: fieldErr.Error()})
	case errors.Is(err, dates.ErrInvalidDateFormat):
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid date format"})
	case errors.Is(err, services.ErrInvalidTransfer):
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid transfer"})
	default:
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: internalErrorMessage})
	}
}

// queryParams flattens the URL query into validator input. Only the first
// value of a repeated parameter is kept.
func queryParams(r *http.Request) map[string]any {
	data := make(map[string]any)
	for key, values := range r.URL.Query() {
		if len(values) > 0 {
			data[key] = values[0]
		}
	}
	return data
}

// mustInt64 reads a field that already passed validation.
func mustInt64(data map[string]any, field string) int64 {
	n, _ := validators.Int64(data[field])
	return n
}
