package handlers

//go:generate mockgen -source=transfer_create.go -destination=transfer_create_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/sbilibin2017/gw-transfer-ledger/internal/logger"
	"github.com/sbilibin2017/gw-transfer-ledger/internal/models"
	"github.com/sbilibin2017/gw-transfer-ledger/internal/validators"
)

// TransferRecorder defines the interface that the service must implement.
type TransferRecorder interface {
	RecordTransfer(ctx context.Context, sender, receiver, amount, timestamp int64) error
}

// NewCreateTransferHandler returns an HTTP handler recording a transfer between two users.
// @Summary Record transfer
// @Description Validates the transfer and stores it as a pair of ledger rows, one per party.
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body models.CreateTransferRequest true "Transfer"
// @Success 200 {object} models.CreateTransferResponse "Transfer recorded"
// @Failure 400 {object} models.ErrorResponse "Missing or invalid field"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /transactions [post]
func NewCreateTransferHandler(svc TransferRecorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var data map[string]any
		dec := json.NewDecoder(r.Body)
		dec.UseNumber()
		if err := dec.Decode(&data); err != nil {
			logger.Log.Warnw("failed to decode transfer request", "error", err)
			writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
			return
		}

		if err := validators.Validate(data, validators.CreateTransferRules); err != nil {
			logger.Log.Warnw("rejected transfer request", "error", err)
			writeError(w, err)
			return
		}

		sender := mustInt64(data, "sender")
		receiver := mustInt64(data, "receiver")
		sum := mustInt64(data, "sum")
		timestamp := mustInt64(data, "timestamp")

		if err := svc.RecordTransfer(ctx, sender, receiver, sum, timestamp); err != nil {
			logger.Log.Errorw("failed to record transfer",
				"sender", sender, "receiver", receiver, "sum", sum, "timestamp", timestamp, "error", err)
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, models.CreateTransferResponse{
			Message: fmt.Sprintf("%d sent %d$ to %d", sender, sum, receiver),
		})
	}
}
