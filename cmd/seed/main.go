// Command seed fills a ledger instance with round-robin transfers and prints
// the balance every user should end up with.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"sort"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/sbilibin2017/gw-transfer-ledger/internal/config"
	"github.com/sbilibin2017/gw-transfer-ledger/internal/dates"
	"github.com/sbilibin2017/gw-transfer-ledger/internal/facades"
	"github.com/sbilibin2017/gw-transfer-ledger/internal/grpcserver"
	"github.com/sbilibin2017/gw-transfer-ledger/internal/logger"
	"github.com/sbilibin2017/gw-transfer-ledger/internal/repositories"
	"github.com/sbilibin2017/gw-transfer-ledger/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/lib/pq"
)

type options struct {
	configPath string
	test       bool
	grpcAddr   string
	reset      bool
	from       string
	days       int
	step       int64
	users      int64
	maxSum     int64
}

func parseFlags(args []string) (options, error) {
	var o options
	fs := flag.NewFlagSet("seed", flag.ContinueOnError)
	fs.StringVar(&o.configPath, "c", "config.env", "Path to configuration file")
	fs.BoolVar(&o.test, "test", false, "Seed the test ledger instance")
	fs.StringVar(&o.grpcAddr, "grpc", "", "Record through a running server at host:port instead of writing to postgres")
	fs.BoolVar(&o.reset, "reset", false, "Delete every row of the instance first (store mode only)")
	fs.StringVar(&o.from, "from", "10-03-2010", "First day, DD-MM-YYYY")
	fs.IntVar(&o.days, "days", 3, "Number of days to fill")
	fs.Int64Var(&o.step, "step", 1200, "Seconds between transfers")
	fs.Int64Var(&o.users, "users", 100, "Number of users")
	fs.Int64Var(&o.maxSum, "max-sum", 200, "Largest transferred sum")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if o.step <= 0 || o.users <= 0 || o.maxSum <= 0 || o.days < 0 {
		return o, fmt.Errorf("step, users and max-sum must be positive and days non-negative")
	}
	if o.reset && o.grpcAddr != "" {
		return o, fmt.Errorf("-reset cannot be combined with -grpc")
	}
	return o, nil
}

// TransferRecorder records one transfer. Both the local recorder and the gRPC facade satisfy it.
type TransferRecorder interface {
	RecordTransfer(ctx context.Context, sender, receiver, amount, timestamp int64) error
}

// fill records a transfer every step seconds in [start, end). User k pays user
// k+1 (wrapping after users), and the sum cycles through 1..maxSum starting at
// 101 or at maxSum/2+1 when maxSum is below 101. It returns the expected
// balance change per user and the number of transfers recorded.
func fill(ctx context.Context, rec TransferRecorder, start, end, step, users, maxSum int64) (map[int64]int64, int, error) {
	balances := make(map[int64]int64)

	user := int64(1)
	sum := int64(101)
	if sum > maxSum {
		sum = maxSum/2 + 1
	}

	count := 0
	for ts := start; ts < end; ts += step {
		sender := user
		receiver := user%users + 1

		if err := rec.RecordTransfer(ctx, sender, receiver, sum, ts); err != nil {
			return balances, count, fmt.Errorf("transfer %d at %d: %w", count, ts, err)
		}
		count++

		balances[sender] -= sum
		balances[receiver] += sum

		user = user%users + 1
		sum = sum%maxSum + 1
	}
	return balances, count, nil
}

func printBalances(w io.Writer, balances map[int64]int64, since, until string) {
	users := make([]int64, 0, len(balances))
	for u := range balances {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i] < users[j] })

	fmt.Fprintf(w, "expected balances for [%s, %s):\n", since, until)
	for _, u := range users {
		fmt.Fprintf(w, "user %d: %d\n", u, balances[u])
	}
}

// localRecorder writes straight to the configured postgres instance.
func localRecorder(ctx context.Context, cfg *config.Config, reset bool) (TransferRecorder, func(), error) {
	db, err := sqlx.ConnectContext(ctx, cfg.PGDriver, cfg.DSN())
	if err != nil {
		return nil, nil, fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	closers := []func(){func() { db.Close() }}
	closeAll := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	writer := repositories.NewTransactionWriterRepository(db, cfg.TableName(), nil)
	if err := writer.CreateSchema(ctx); err != nil {
		closeAll()
		return nil, nil, err
	}
	if reset {
		if err := writer.DeleteAll(ctx); err != nil {
			closeAll()
			return nil, nil, err
		}
		logger.Log.Infow("Ledger instance reset", "table", cfg.TableName())
	}

	// A running server may hold cached balances for this instance.
	var invalidator services.BalanceInvalidator
	if addr := cfg.RedisAddr(); addr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: addr, Password: cfg.RedisPassword, DB: cfg.RedisDB})
		closers = append(closers, func() { rdb.Close() })
		invalidator = repositories.NewBalanceCacheRepository(rdb, cfg.CachePrefix(), cfg.RedisExp())
	}

	return services.NewRecorderService(writer, invalidator, nil, nil), closeAll, nil
}

func remoteRecorder(addr string) (TransferRecorder, func(), error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to gRPC service at %s: %w", addr, err)
	}
	return facades.NewLedgerGRPCFacade(grpcserver.NewLedgerClient(conn)), func() { conn.Close() }, nil
}

func run(ctx context.Context, o options, out io.Writer) error {
	until, err := dates.Advance(o.from, o.days)
	if err != nil {
		return err
	}
	start, err := dates.DayStart(o.from)
	if err != nil {
		return err
	}
	end, err := dates.DayStart(until)
	if err != nil {
		return err
	}

	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	if o.test {
		cfg.Instance = config.InstanceTest
	}
	if err := logger.Initialize(cfg.LogLevel, "gw-transfer-ledger-seed", cfg.Instance); err != nil {
		return err
	}
	defer logger.Sync()

	var (
		rec     TransferRecorder
		cleanup func()
	)
	if o.grpcAddr != "" {
		rec, cleanup, err = remoteRecorder(o.grpcAddr)
	} else {
		rec, cleanup, err = localRecorder(ctx, cfg, o.reset)
	}
	if err != nil {
		return err
	}
	defer cleanup()

	balances, count, err := fill(ctx, rec, start, end, o.step, o.users, o.maxSum)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "recorded %d transfers into instance %q\n", count, cfg.Instance)
	printBalances(out, balances, o.from, until)
	return nil
}

func main() {
	o, err := parseFlags(os.Args[1:])
	if err != nil {
		log.Fatalf("invalid flags: %v", err)
	}
	if err := run(context.Background(), o, os.Stdout); err != nil {
		log.Fatalf("seed failed: %v", err)
	}
}
