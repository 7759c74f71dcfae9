package facades

import (
	"context"
	"fmt"

	"github.com/sbilibin2017/gw-transfer-ledger/internal/grpcserver"
	"github.com/sbilibin2017/gw-transfer-ledger/internal/logger"
	"github.com/sbilibin2017/gw-transfer-ledger/internal/models"
)

// LedgerGRPCFacade exposes a remote ledger with the same method set as the local services.
type LedgerGRPCFacade struct {
	client grpcserver.LedgerClient
}

// NewLedgerGRPCFacade creates a new facade with a gRPC client.
func NewLedgerGRPCFacade(client grpcserver.LedgerClient) *LedgerGRPCFacade {
	return &LedgerGRPCFacade{client: client}
}

// RecordTransfer records one transfer on the remote ledger.
func (f *LedgerGRPCFacade) RecordTransfer(ctx context.Context, sender, receiver, amount, timestamp int64) error {
	_, err := f.client.RecordTransfer(ctx, &grpcserver.RecordTransferRequest{
		Sender:    &sender,
		Receiver:  &receiver,
		Sum:       &amount,
		Timestamp: &timestamp,
	})
	if err != nil {
		logger.Log.Errorw("failed to record transfer via gRPC",
			"sender", sender, "receiver", receiver, "amount", amount, "timestamp", timestamp, "error", err)
		return fmt.Errorf("record transfer: %w", err)
	}
	return nil
}

func (f *LedgerGRPCFacade) SearchTransfers(ctx context.Context, user int64, day string, threshold int64) ([]models.Transaction, error) {
	resp, err := f.client.SearchTransfers(ctx, &grpcserver.SearchTransfersRequest{
		User:      &user,
		Day:       &day,
		Threshold: &threshold,
	})
	if err != nil {
		logger.Log.Errorw("failed to search transfers via gRPC", "user", user, "day", day, "error", err)
		return nil, fmt.Errorf("search transfers: %w", err)
	}
	return resp.Transactions, nil
}

func (f *LedgerGRPCFacade) ComputeBalance(ctx context.Context, user int64, since, until string) (int64, error) {
	resp, err := f.client.ComputeBalance(ctx, &grpcserver.ComputeBalanceRequest{
		User:  &user,
		Since: &since,
		Until: &until,
	})
	if err != nil {
		logger.Log.Errorw("failed to compute balance via gRPC", "user", user, "since", since, "until", until, "error", err)
		return 0, fmt.Errorf("compute balance: %w", err)
	}
	return resp.Balance, nil
}
