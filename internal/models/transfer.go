package models

// CreateTransferRequest represents the JSON body for recording a transfer
// swagger:model CreateTransferRequest
type CreateTransferRequest struct {
	// Sender user id
	// required: true
	// example: 1
	Sender int64 `json:"sender"`

	// Receiver user id
	// required: true
	// example: 2
	Receiver int64 `json:"receiver"`

	// Transferred amount
	// required: true
	// example: 50
	Sum int64 `json:"sum"`

	// UNIX timestamp of the transfer
	// required: true
	// example: 1268179200
	Timestamp int64 `json:"timestamp"`
}

// CreateTransferResponse represents a successful transfer response
// swagger:model CreateTransferResponse
type CreateTransferResponse struct {
	// Confirmation message
	// example: 1 sent 50$ to 2
	Message string `json:"message"`
}

// SearchTransfersResponse represents the transfers of a user exceeding a threshold on a day
// swagger:model SearchTransfersResponse
type SearchTransfersResponse struct {
	Transactions []Transaction `json:"transactions"`
}

// BalanceResponse represents the net balance change of a user over an interval
// swagger:model BalanceResponse
type BalanceResponse struct {
	// Net balance change
	// example: -50
	Balance int64 `json:"balance"`
}

// ErrorResponse represents an error response
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// example: Missing field 'sender'
	Error string `json:"error"`
}
