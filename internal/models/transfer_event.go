package models

// TransferRecorded is published after both rows of a transfer are persisted.
type TransferRecorded struct {
	EventID    string `json:"event_id"`    // Unique identifier of the event
	Sender     int64  `json:"sender"`      // User who sent the money
	Receiver   int64  `json:"receiver"`    // User who received the money
	Amount     int64  `json:"amount"`      // Transferred magnitude
	Timestamp  int64  `json:"timestamp"`   // Transfer time, UNIX seconds
	RecordedAt int64  `json:"recorded_at"` // When the ledger accepted the transfer, UNIX seconds
}
