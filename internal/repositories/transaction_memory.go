package repositories

import (
	"context"
	"sync"

	"github.com/sbilibin2017/gw-transfer-ledger/internal/filters"
	"github.com/sbilibin2017/gw-transfer-ledger/internal/models"
)

// TransactionMemoryRepository keeps ledger rows in process memory.
// A batch is appended under the write lock, so readers see all of it or none of it.
type TransactionMemoryRepository struct {
	mu      sync.RWMutex
	records []models.Transaction
}

func NewTransactionMemoryRepository() *TransactionMemoryRepository {
	return &TransactionMemoryRepository{}
}

func (r *TransactionMemoryRepository) InsertBatch(ctx context.Context, txs []models.Transaction) error {
	if err := ctx.Err(); err != nil {
		return storeError(err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.records = append(r.records, txs...)
	return nil
}

func (r *TransactionMemoryRepository) Query(ctx context.Context, p filters.Predicate) ([]models.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, storeError(err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	result := []models.Transaction{}
	for _, tx := range r.records {
		if p.Match(tx) {
			result = append(result, tx)
		}
	}
	return result, nil
}

func (r *TransactionMemoryRepository) SumAmount(ctx context.Context, p filters.Predicate) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, storeError(err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var sum int64
	for _, tx := range r.records {
		if p.Match(tx) {
			sum += tx.Amount
		}
	}
	return sum, nil
}

func (r *TransactionMemoryRepository) DeleteAll(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records = nil
	return nil
}
