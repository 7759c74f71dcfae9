package grpcserver

import (
	"context"

	"github.com/sbilibin2017/gw-transfer-ledger/internal/models"
	"google.golang.org/grpc"
)

const serviceName = "ledger.LedgerService"

// Request fields are pointers so an absent field can be told apart from zero.

type RecordTransferRequest struct {
	Sender    *int64 `json:"sender,omitempty"`
	Receiver  *int64 `json:"receiver,omitempty"`
	Sum       *int64 `json:"sum,omitempty"`
	Timestamp *int64 `json:"timestamp,omitempty"`
}

type RecordTransferResponse struct {
	Message string `json:"message"`
}

type SearchTransfersRequest struct {
	User      *int64  `json:"user,omitempty"`
	Day       *string `json:"day,omitempty"`
	Threshold *int64  `json:"threshold,omitempty"`
}

type SearchTransfersResponse struct {
	Transactions []models.Transaction `json:"transactions"`
}

type ComputeBalanceRequest struct {
	User  *int64  `json:"user,omitempty"`
	Since *string `json:"since,omitempty"`
	Until *string `json:"until,omitempty"`
}

type ComputeBalanceResponse struct {
	Balance int64 `json:"balance"`
}

// LedgerServer is the server API for the ledger service.
type LedgerServer interface {
	RecordTransfer(ctx context.Context, req *RecordTransferRequest) (*RecordTransferResponse, error)
	SearchTransfers(ctx context.Context, req *SearchTransfersRequest) (*SearchTransfersResponse, error)
	ComputeBalance(ctx context.Context, req *ComputeBalanceRequest) (*ComputeBalanceResponse, error)
}

// LedgerServiceDesc describes the ledger service for grpc.Server.RegisterService.
var LedgerServiceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*LedgerServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "RecordTransfer", Handler: recordTransferHandler},
		{MethodName: "SearchTransfers", Handler: searchTransfersHandler},
		{MethodName: "ComputeBalance", Handler: computeBalanceHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "ledger",
}

// RegisterLedgerServer registers srv on s.
func RegisterLedgerServer(s grpc.ServiceRegistrar, srv LedgerServer) {
	s.RegisterService(&LedgerServiceDesc, srv)
}

func recordTransferHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(RecordTransferRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LedgerServer).RecordTransfer(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + serviceName + "/RecordTransfer"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(LedgerServer).RecordTransfer(ctx, req.(*RecordTransferRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func searchTransfersHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(SearchTransfersRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LedgerServer).SearchTransfers(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + serviceName + "/SearchTransfers"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(LedgerServer).SearchTransfers(ctx, req.(*SearchTransfersRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func computeBalanceHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ComputeBalanceRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LedgerServer).ComputeBalance(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + serviceName + "/ComputeBalance"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(LedgerServer).ComputeBalance(ctx, req.(*ComputeBalanceRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// LedgerClient is the client API for the ledger service.
type LedgerClient interface {
	RecordTransfer(ctx context.Context, in *RecordTransferRequest, opts ...grpc.CallOption) (*RecordTransferResponse, error)
	SearchTransfers(ctx context.Context, in *SearchTransfersRequest, opts ...grpc.CallOption) (*SearchTransfersResponse, error)
	ComputeBalance(ctx context.Context, in *ComputeBalanceRequest, opts ...grpc.CallOption) (*ComputeBalanceResponse, error)
}

type ledgerClient struct {
	cc grpc.ClientConnInterface
}

// NewLedgerClient returns a client that always speaks the JSON codec.
func NewLedgerClient(cc grpc.ClientConnInterface) LedgerClient {
	return &ledgerClient{cc: cc}
}

func (c *ledgerClient) invoke(ctx context.Context, method string, in, out any, opts []grpc.CallOption) error {
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(codecName)}, opts...)
	return c.cc.Invoke(ctx, "/"+serviceName+"/"+method, in, out, opts...)
}

func (c *ledgerClient) RecordTransfer(ctx context.Context, in *RecordTransferRequest, opts ...grpc.CallOption) (*RecordTransferResponse, error) {
	out := new(RecordTransferResponse)
	if err := c.invoke(ctx, "RecordTransfer", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ledgerClient) SearchTransfers(ctx context.Context, in *SearchTransfersRequest, opts ...grpc.CallOption) (*SearchTransfersResponse, error) {
	out := new(SearchTransfersResponse)
	if err := c.invoke(ctx, "SearchTransfers", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ledgerClient) ComputeBalance(ctx context.Context, in *ComputeBalanceRequest, opts ...grpc.CallOption) (*ComputeBalanceResponse, error) {
	out := new(ComputeBalanceResponse)
	if err := c.invoke(ctx, "ComputeBalance", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}
