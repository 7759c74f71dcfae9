package services

//go:generate mockgen -source=query.go -destination=query_mock.go -package=services

import (
	"context"
	"errors"

	"github.com/sbilibin2017/gw-transfer-ledger/internal/dates"
	"github.com/sbilibin2017/gw-transfer-ledger/internal/filters"
	"github.com/sbilibin2017/gw-transfer-ledger/internal/logger"
	"github.com/sbilibin2017/gw-transfer-ledger/internal/models"
	"github.com/sbilibin2017/gw-transfer-ledger/internal/repositories"
)

// TransactionReader evaluates filters against the ledger.
type TransactionReader interface {
	Query(ctx context.Context, p filters.Predicate) ([]models.Transaction, error) // Matching rows, unordered
	SumAmount(ctx context.Context, p filters.Predicate) (int64, error)            // Sum of amount, 0 when nothing matches
}

// BalanceCache caches computed balances.
type BalanceCache interface {
	Get(ctx context.Context, user, start, end int64) (balance int64, key string, err error)
	Set(ctx context.Context, key string, balance int64) error
}

// QueryService answers threshold searches and balance queries.
type QueryService struct {
	reader TransactionReader
	cache  BalanceCache
}

// NewQueryService creates a QueryService. cache may be nil.
func NewQueryService(reader TransactionReader, cache BalanceCache) *QueryService {
	return &QueryService{reader: reader, cache: cache}
}

// SearchTransfers returns the rows of user on day whose amount magnitude
// strictly exceeds threshold, incoming and outgoing alike.
func (s *QueryService) SearchTransfers(ctx context.Context, user int64, day string, threshold int64) ([]models.Transaction, error) {
	start, err := dates.DayStart(day)
	if err != nil {
		return nil, err
	}
	end := start + dates.SecondsPerDay

	txs, err := s.reader.Query(ctx, filters.DayTransfers(user, start, end, threshold))
	if err != nil {
		logger.Log.Errorw("failed to search transfers", "user", user, "day", day, "threshold", threshold, "error", err)
		return nil, err
	}
	if txs == nil {
		txs = []models.Transaction{}
	}
	return txs, nil
}

// ComputeBalance returns the net change of user's holdings over [since, until):
// money received counts positive, money sent negative. An empty or reversed
// interval yields 0.
func (s *QueryService) ComputeBalance(ctx context.Context, user int64, since, until string) (int64, error) {
	start, err := dates.DayStart(since)
	if err != nil {
		return 0, err
	}
	end, err := dates.DayStart(until)
	if err != nil {
		return 0, err
	}

	var cacheKey string
	if s.cache != nil {
		balance, key, err := s.cache.Get(ctx, user, start, end)
		if err == nil {
			return balance, nil
		}
		if !errors.Is(err, repositories.ErrCacheMiss) {
			logger.Log.Errorw("failed to read cached balance", "user", user, "error", err)
		}
		cacheKey = key
	}

	sum, err := s.reader.SumAmount(ctx, filters.Interval(user, start, end))
	if err != nil {
		logger.Log.Errorw("failed to compute balance", "user", user, "since", since, "until", until, "error", err)
		return 0, err
	}
	balance := -sum

	if cacheKey != "" {
		if err := s.cache.Set(ctx, cacheKey, balance); err != nil {
			logger.Log.Errorw("failed to cache balance", "user", user, "error", err)
		}
	}

	return balance, nil
}
