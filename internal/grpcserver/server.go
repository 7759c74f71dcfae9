package grpcserver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sbilibin2017/gw-transfer-ledger/internal/dates"
	"github.com/sbilibin2017/gw-transfer-ledger/internal/logger"
	"github.com/sbilibin2017/gw-transfer-ledger/internal/models"
	"github.com/sbilibin2017/gw-transfer-ledger/internal/services"
	"github.com/sbilibin2017/gw-transfer-ledger/internal/validators"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type TransferRecorder interface {
	RecordTransfer(ctx context.Context, sender, receiver, amount, timestamp int64) error
}

type TransferSearcher interface {
	SearchTransfers(ctx context.Context, user int64, day string, threshold int64) ([]models.Transaction, error)
}

type BalanceComputer interface {
	ComputeBalance(ctx context.Context, user int64, since, until string) (int64, error)
}

// Server implements LedgerServer on top of the recorder and query services.
type Server struct {
	recorder TransferRecorder
	searcher TransferSearcher
	balances BalanceComputer
}

func NewServer(recorder TransferRecorder, searcher TransferSearcher, balances BalanceComputer) *Server {
	return &Server{recorder: recorder, searcher: searcher, balances: balances}
}

// New builds a grpc.Server with the ledger service registered. Every call runs
// under storeTimeout and is logged.
func New(srv LedgerServer, storeTimeout time.Duration) *grpc.Server {
	s := grpc.NewServer(grpc.ChainUnaryInterceptor(
		LoggingInterceptor,
		TimeoutInterceptor(storeTimeout),
	))
	RegisterLedgerServer(s, srv)
	return s
}

func (s *Server) RecordTransfer(ctx context.Context, req *RecordTransferRequest) (*RecordTransferResponse, error) {
	data := map[string]any{}
	putInt(data, "sender", req.Sender)
	putInt(data, "receiver", req.Receiver)
	putInt(data, "sum", req.Sum)
	putInt(data, "timestamp", req.Timestamp)

	if err := validators.Validate(data, validators.CreateTransferRules); err != nil {
		return nil, toStatus(err)
	}

	sender, receiver, sum, ts := *req.Sender, *req.Receiver, *req.Sum, *req.Timestamp
	if err := s.recorder.RecordTransfer(ctx, sender, receiver, sum, ts); err != nil {
		return nil, toStatus(err)
	}

	return &RecordTransferResponse{Message: fmt.Sprintf("%d sent %d$ to %d", sender, sum, receiver)}, nil
}

func (s *Server) SearchTransfers(ctx context.Context, req *SearchTransfersRequest) (*SearchTransfersResponse, error) {
	data := map[string]any{}
	putInt(data, "user", req.User)
	putString(data, "day", req.Day)
	putInt(data, "threshold", req.Threshold)

	if err := validators.Validate(data, validators.SearchTransfersRules); err != nil {
		return nil, toStatus(err)
	}

	txs, err := s.searcher.SearchTransfers(ctx, *req.User, *req.Day, *req.Threshold)
	if err != nil {
		return nil, toStatus(err)
	}
	if txs == nil {
		txs = []models.Transaction{}
	}
	return &SearchTransfersResponse{Transactions: txs}, nil
}

func (s *Server) ComputeBalance(ctx context.Context, req *ComputeBalanceRequest) (*ComputeBalanceResponse, error) {
	data := map[string]any{}
	putInt(data, "user", req.User)
	putString(data, "since", req.Since)
	putString(data, "until", req.Until)

	if err := validators.Validate(data, validators.BalanceRules); err != nil {
		return nil, toStatus(err)
	}

	balance, err := s.balances.ComputeBalance(ctx, *req.User, *req.Since, *req.Until)
	if err != nil {
		return nil, toStatus(err)
	}
	return &ComputeBalanceResponse{Balance: balance}, nil
}

func putInt(data map[string]any, field string, v *int64) {
	if v != nil {
		data[field] = *v
	}
}

func putString(data map[string]any, field string, v *string) {
	if v != nil {
		data[field] = *v
	}
}

func toStatus(err error) error {
	var fieldErr *validators.FieldError
	switch {
	case errors.As(err, &fieldErr):
		return status.Error(codes.InvalidArgument, fieldErr.Error())
	case errors.Is(err, dates.ErrInvalidDateFormat), errors.Is(err, services.ErrInvalidTransfer):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, models.ErrStoreUnavailable):
		return status.Error(codes.Unavailable, "store unavailable")
	}
	return status.Error(codes.Internal, "internal error")
}

// LoggingInterceptor logs every unary call with its status code and duration.
func LoggingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := handler(ctx, req)

	code := status.Code(err)
	log := logger.Log.Infow
	if code != codes.OK && code != codes.InvalidArgument {
		log = logger.Log.Errorw
	}
	log("grpc request",
		"method", info.FullMethod,
		"code", code.String(),
		"duration", time.Since(start),
	)
	return resp, err
}

// TimeoutInterceptor bounds every unary call by d.
func TimeoutInterceptor(d time.Duration) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		ctx, cancel := context.WithTimeout(ctx, d)
		defer cancel()
		return handler(ctx, req)
	}
}
