package validators

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/sbilibin2017/gw-transfer-ledger/internal/dates"
)

var (
	// ErrMissingField is returned when a required field is absent.
	ErrMissingField = errors.New("missing field")
	// ErrInvalidFieldValue is returned when a field fails its check.
	ErrInvalidFieldValue = errors.New("invalid field value")
)

// FieldError names the field that failed validation.
type FieldError struct {
	Field string
	Err   error // ErrMissingField or ErrInvalidFieldValue
}

func (e *FieldError) Error() string {
	if errors.Is(e.Err, ErrMissingField) {
		return fmt.Sprintf("Missing field '%s'", e.Field)
	}
	return fmt.Sprintf("Invalid data for field '%s'", e.Field)
}

func (e *FieldError) Unwrap() error { return e.Err }

// Validator reports whether a raw field value is acceptable.
type Validator func(value any) bool

// Rule pairs a field name with its validator.
type Rule struct {
	Field    string
	Validate Validator
}

// Rules for each inbound operation, checked in order.
var (
	CreateTransferRules = []Rule{
		{"sender", NonNegativeInt},
		{"receiver", NonNegativeInt},
		{"sum", NonNegativeInt},
		{"timestamp", NonNegativeInt},
	}
	SearchTransfersRules = []Rule{
		{"user", NonNegativeInt},
		{"day", Date},
		{"threshold", NonNegativeInt},
	}
	BalanceRules = []Rule{
		{"user", NonNegativeInt},
		{"since", Date},
		{"until", Date},
	}
)

// Validate applies rules to data and returns the first failure as a *FieldError.
// A nil value counts as missing.
func Validate(data map[string]any, rules []Rule) error {
	for _, rule := range rules {
		value, ok := data[rule.Field]
		if !ok || value == nil {
			return &FieldError{Field: rule.Field, Err: ErrMissingField}
		}
		if !rule.Validate(value) {
			return &FieldError{Field: rule.Field, Err: ErrInvalidFieldValue}
		}
	}
	return nil
}

// Int64 converts a raw value to an integer. Decimal strings (surrounding
// whitespace ignored) and integral Go integers convert exactly; JSON numbers with a fractional part are truncated
// toward zero. Booleans and anything else are rejected.
func Int64(value any) (int64, bool) {
	switch v := value.(type) {
	case int:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case uint32:
		return int64(v), true
	case uint64:
		if v > math.MaxInt64 {
			return 0, false
		}
		return int64(v), true
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		return n, err == nil
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return n, true
		}
		f, err := v.Float64()
		if err != nil {
			return 0, false
		}
		return truncate(f)
	case float64:
		return truncate(v)
	}
	return 0, false
}

func truncate(f float64) (int64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f >= math.MaxInt64 || f <= math.MinInt64 {
		return 0, false
	}
	return int64(f), true
}

// NonNegativeInt accepts integers greater than or equal to zero.
func NonNegativeInt(value any) bool {
	n, ok := Int64(value)
	return ok && n >= 0
}

// Date accepts DD-MM-YYYY calendar date strings.
func Date(value any) bool {
	s, ok := value.(string)
	return ok && dates.IsDate(s)
}
