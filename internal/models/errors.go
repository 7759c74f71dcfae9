package models

import "errors"

// ErrStoreUnavailable is returned when the ledger store cannot complete a read or write.
var ErrStoreUnavailable = errors.New("store unavailable")
