package handlers

//go:generate mockgen -source=transfer_search.go -destination=transfer_search_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-transfer-ledger/internal/logger"
	"github.com/sbilibin2017/gw-transfer-ledger/internal/models"
	"github.com/sbilibin2017/gw-transfer-ledger/internal/validators"
)

// TransferSearcher defines the interface that the service must implement.
type TransferSearcher interface {
	SearchTransfers(ctx context.Context, user int64, day string, threshold int64) ([]models.Transaction, error)
}

// NewSearchTransfersHandler returns an HTTP handler listing the ledger rows of a
// user on one day whose amount magnitude exceeds a threshold.
// @Summary Search transfers
// @Description Returns the rows owned by the user on the given UTC day with |amount| strictly above threshold.
// @Tags transactions
// @Produce json
// @Param user query int true "User id"
// @Param day query string true "Day, DD-MM-YYYY"
// @Param threshold query int true "Amount threshold"
// @Success 200 {object} models.SearchTransfersResponse "Matching rows"
// @Failure 400 {object} models.ErrorResponse "Missing or invalid field"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /transactions [get]
func NewSearchTransfersHandler(svc TransferSearcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		data := queryParams(r)
		if err := validators.Validate(data, validators.SearchTransfersRules); err != nil {
			logger.Log.Warnw("rejected search request", "error", err)
			writeError(w, err)
			return
		}

		user := mustInt64(data, "user")
		day := data["day"].(string)
		threshold := mustInt64(data, "threshold")

		txs, err := svc.SearchTransfers(ctx, user, day, threshold)
		if err != nil {
			logger.Log.Errorw("failed to search transfers", "user", user, "day", day, "threshold", threshold, "error", err)
			writeError(w, err)
			return
		}
		if txs == nil {
			txs = []models.Transaction{}
		}

		writeJSON(w, http.StatusOK, models.SearchTransfersResponse{Transactions: txs})
	}
}
