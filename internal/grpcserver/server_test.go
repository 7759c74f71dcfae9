package grpcserver

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/sbilibin2017/gw-transfer-ledger/internal/models"
	"github.com/sbilibin2017/gw-transfer-ledger/internal/repositories"
	"github.com/sbilibin2017/gw-transfer-ledger/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

func startServer(t *testing.T, srv LedgerServer) LedgerClient {
	t.Helper()

	lis := bufconn.Listen(1024 * 1024)
	s := New(srv, time.Second)
	go s.Serve(lis)
	t.Cleanup(s.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return NewLedgerClient(conn)
}

func ptr[T any](v T) *T { return &v }

func TestLedgerService_EndToEnd(t *testing.T) {
	ctx := context.Background()

	repo := repositories.NewTransactionMemoryRepository()
	query := services.NewQueryService(repo, nil)
	client := startServer(t, NewServer(services.NewRecorderService(repo, nil, nil, nil), query, query))

	resp, err := client.RecordTransfer(ctx, &RecordTransferRequest{
		Sender:    ptr(int64(1)),
		Receiver:  ptr(int64(2)),
		Sum:       ptr(int64(50)),
		Timestamp: ptr(int64(1268179200)),
	})
	require.NoError(t, err)
	assert.Equal(t, "1 sent 50$ to 2", resp.Message)

	found, err := client.SearchTransfers(ctx, &SearchTransfersRequest{
		User:      ptr(int64(1)),
		Day:       ptr("10-03-2010"),
		Threshold: ptr(int64(40)),
	})
	require.NoError(t, err)
	assert.Equal(t, []models.Transaction{{Sender: 1, Receiver: 2, Amount: 50, Timestamp: 1268179200}}, found.Transactions)

	empty, err := client.SearchTransfers(ctx, &SearchTransfersRequest{
		User:      ptr(int64(1)),
		Day:       ptr("10-03-2010"),
		Threshold: ptr(int64(50)),
	})
	require.NoError(t, err)
	assert.NotNil(t, empty.Transactions)
	assert.Empty(t, empty.Transactions)

	balance, err := client.ComputeBalance(ctx, &ComputeBalanceRequest{
		User:  ptr(int64(2)),
		Since: ptr("10-03-2010"),
		Until: ptr("11-03-2010"),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(50), balance.Balance)
}

func TestLedgerService_Validation(t *testing.T) {
	ctx := context.Background()

	repo := repositories.NewTransactionMemoryRepository()
	query := services.NewQueryService(repo, nil)
	client := startServer(t, NewServer(services.NewRecorderService(repo, nil, nil, nil), query, query))

	_, err := client.RecordTransfer(ctx, &RecordTransferRequest{
		Receiver:  ptr(int64(2)),
		Sum:       ptr(int64(50)),
		Timestamp: ptr(int64(1)),
	})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
	assert.Equal(t, "Missing field 'sender'", status.Convert(err).Message())

	_, err = client.ComputeBalance(ctx, &ComputeBalanceRequest{
		User:  ptr(int64(2)),
		Since: ptr("2010-03-10"),
		Until: ptr("11-03-2010"),
	})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
	assert.Equal(t, "Invalid data for field 'since'", status.Convert(err).Message())

	_, err = client.SearchTransfers(ctx, &SearchTransfersRequest{
		User:      ptr(int64(-1)),
		Day:       ptr("10-03-2010"),
		Threshold: ptr(int64(0)),
	})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

type failingStore struct{}

func (failingStore) RecordTransfer(context.Context, int64, int64, int64, int64) error {
	return models.ErrStoreUnavailable
}

func (failingStore) SearchTransfers(context.Context, int64, string, int64) ([]models.Transaction, error) {
	return nil, assert.AnError
}

func (failingStore) ComputeBalance(context.Context, int64, string, string) (int64, error) {
	return 0, services.ErrInvalidTransfer
}

func TestLedgerService_ErrorCodes(t *testing.T) {
	ctx := context.Background()
	client := startServer(t, NewServer(failingStore{}, failingStore{}, failingStore{}))

	_, err := client.RecordTransfer(ctx, &RecordTransferRequest{
		Sender:    ptr(int64(1)),
		Receiver:  ptr(int64(2)),
		Sum:       ptr(int64(3)),
		Timestamp: ptr(int64(4)),
	})
	assert.Equal(t, codes.Unavailable, status.Code(err))

	_, err = client.SearchTransfers(ctx, &SearchTransfersRequest{
		User:      ptr(int64(1)),
		Day:       ptr("10-03-2010"),
		Threshold: ptr(int64(0)),
	})
	assert.Equal(t, codes.Internal, status.Code(err))

	_, err = client.ComputeBalance(ctx, &ComputeBalanceRequest{
		User:  ptr(int64(1)),
		Since: ptr("10-03-2010"),
		Until: ptr("11-03-2010"),
	})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestTimeoutInterceptor(t *testing.T) {
	interceptor := TimeoutInterceptor(10 * time.Millisecond)

	_, err := interceptor(context.Background(), nil, &grpc.UnaryServerInfo{FullMethod: "/x"},
		func(ctx context.Context, req any) (any, error) {
			deadline, ok := ctx.Deadline()
			assert.True(t, ok)
			assert.WithinDuration(t, time.Now().Add(10*time.Millisecond), deadline, 10*time.Millisecond)
			return nil, nil
		})
	assert.NoError(t, err)
}
