package handlers

//go:generate mockgen -source=balance.go -destination=balance_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-transfer-ledger/internal/logger"
	"github.com/sbilibin2017/gw-transfer-ledger/internal/models"
	"github.com/sbilibin2017/gw-transfer-ledger/internal/validators"
)

// BalanceComputer defines the interface that the service must implement.
type BalanceComputer interface {
	ComputeBalance(ctx context.Context, user int64, since, until string) (int64, error)
}

// NewGetBalanceHandler returns an HTTP handler for the net balance change of a user.
// @Summary Get user balance
// @Description Money received minus money sent by the user in [since, until), both days at 00:00 UTC.
// @Tags balance
// @Produce json
// @Param user query int true "User id"
// @Param since query string true "First day, DD-MM-YYYY"
// @Param until query string true "Day after the last one, DD-MM-YYYY"
// @Success 200 {object} models.BalanceResponse "User balance"
// @Failure 400 {object} models.ErrorResponse "Missing or invalid field"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /balance [get]
func NewGetBalanceHandler(svc BalanceComputer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		data := queryParams(r)
		if err := validators.Validate(data, validators.BalanceRules); err != nil {
			logger.Log.Warnw("rejected balance request", "error", err)
			writeError(w, err)
			return
		}

		user := mustInt64(data, "user")
		since := data["since"].(string)
		until := data["until"].(string)

		balance, err := svc.ComputeBalance(ctx, user, since, until)
		if err != nil {
			logger.Log.Errorw("failed to get balance", "user", user, "since", since, "until", until, "error", err)
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, models.BalanceResponse{Balance: balance})
	}
}
