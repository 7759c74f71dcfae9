package models

// Transaction is one side of a recorded transfer, stored from the sender's perspective:
// a positive amount was paid out by Sender, a negative amount was received by Sender.
// swagger:model Transaction
type Transaction struct {
	Sender    int64 `json:"sender" db:"sender"`       // Owner of this ledger row
	Receiver  int64 `json:"receiver" db:"receiver"`   // Counterparty
	Amount    int64 `json:"amount" db:"amount"`       // Signed amount, in integer units
	Timestamp int64 `json:"timestamp" db:"timestamp"` // UNIX seconds
}

// TransferPair returns the two double-entry rows of a transfer of amount from sender to receiver.
func TransferPair(sender, receiver, amount, timestamp int64) []Transaction {
	return []Transaction{
		{Sender: sender, Receiver: receiver, Amount: amount, Timestamp: timestamp},
		{Sender: receiver, Receiver: sender, Amount: -amount, Timestamp: timestamp},
	}
}
