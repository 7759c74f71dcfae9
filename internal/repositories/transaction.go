package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-transfer-ledger/internal/filters"
	"github.com/sbilibin2017/gw-transfer-ledger/internal/logger"
	"github.com/sbilibin2017/gw-transfer-ledger/internal/models"
)

// logQuery logs a statement on a single line together with its outcome.
func logQuery(query string, args any, result any, err error) {
	logger.Log.Debugw("query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", result,
		"error", err,
	)
}

func storeError(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", models.ErrStoreUnavailable, err)
}

// TransactionWriterRepository appends ledger rows to a postgres table.
type TransactionWriterRepository struct {
	db       *sqlx.DB
	table    string
	txGetter func(ctx context.Context) *sqlx.Tx
}

// NewTransactionWriterRepository creates a writer for the given table. When txGetter
// returns a transaction, writes join it instead of running on their own.
func NewTransactionWriterRepository(db *sqlx.DB, table string, txGetter func(ctx context.Context) *sqlx.Tx) *TransactionWriterRepository {
	return &TransactionWriterRepository{db: db, table: table, txGetter: txGetter}
}

func (r *TransactionWriterRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// CreateSchema creates the ledger table and its (sender, timestamp) index if they do not exist.
func (r *TransactionWriterRepository) CreateSchema(ctx context.Context) error {
	statements := []string{
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id BIGSERIAL PRIMARY KEY,
				sender BIGINT NOT NULL CHECK (sender >= 0),
				receiver BIGINT NOT NULL CHECK (receiver >= 0),
				amount BIGINT NOT NULL,
				timestamp BIGINT NOT NULL CHECK (timestamp >= 0)
			)`, r.table),
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS %s_sender_timestamp_idx ON %s (sender, timestamp)`, r.table, r.table),
	}

	for _, stmt := range statements {
		_, err := r.db.ExecContext(ctx, stmt)
		logQuery(stmt, nil, nil, err)
		if err != nil {
			return storeError(err)
		}
	}
	return nil
}

// InsertBatch stores all rows with one multi-row INSERT, so either every row is
// persisted or none is.
func (r *TransactionWriterRepository) InsertBatch(ctx context.Context, txs []models.Transaction) error {
	if len(txs) == 0 {
		return nil
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (sender, receiver, amount, timestamp)
		VALUES (:sender, :receiver, :amount, :timestamp)
	`, r.table)

	res, err := sqlx.NamedExecContext(ctx, r.executor(ctx), query, txs)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(query, txs, rowsAffected, err)

	return storeError(err)
}

// DeleteAll removes every row of the table. Administrative reset only.
func (r *TransactionWriterRepository) DeleteAll(ctx context.Context) error {
	query := fmt.Sprintf(`DELETE FROM %s`, r.table)

	res, err := r.executor(ctx).ExecContext(ctx, query)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(query, nil, rowsAffected, err)

	return storeError(err)
}

// TransactionReaderRepository evaluates filters against a postgres table.
type TransactionReaderRepository struct {
	db    *sqlx.DB
	table string
}

func NewTransactionReaderRepository(db *sqlx.DB, table string) *TransactionReaderRepository {
	return &TransactionReaderRepository{db: db, table: table}
}

// Query returns the rows matching p in no particular order.
func (r *TransactionReaderRepository) Query(ctx context.Context, p filters.Predicate) ([]models.Transaction, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	where, args := p.SQL()
	query := r.db.Rebind(fmt.Sprintf(`
		SELECT sender, receiver, amount, timestamp
		FROM %s
		WHERE %s
	`, r.table, where))

	txs := []models.Transaction{}
	err := r.db.SelectContext(ctx, &txs, query, args...)

	logQuery(query, args, len(txs), err)

	if err != nil {
		return nil, storeError(err)
	}
	return txs, nil
}

// SumAmount returns the sum of amount over the rows matching p, 0 when none match.
func (r *TransactionReaderRepository) SumAmount(ctx context.Context, p filters.Predicate) (int64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}

	where, args := p.SQL()
	query := r.db.Rebind(fmt.Sprintf(`
		SELECT COALESCE(SUM(amount), 0)::BIGINT
		FROM %s
		WHERE %s
	`, r.table, where))

	var sum int64
	err := r.db.GetContext(ctx, &sum, query, args...)

	logQuery(query, args, sum, err)

	if err != nil {
		return 0, storeError(err)
	}
	return sum, nil
}
