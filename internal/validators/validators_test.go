package validators

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNonNegativeInt(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		expected bool
	}{
		{"zero string", "0", true},
		{"positive string", "14", true},
		{"negative string", "-14", false},
		{"float string", "1.2", false},
		{"word", "drop tables", false},
		{"empty string", "", false},
		{"padded string", " 5\t", true},
		{"blank string", "   ", false},
		{"json integer", json.Number("25"), true},
		{"json fraction truncated", json.Number("1507.75"), true},
		{"json negative", json.Number("-1"), false},
		{"go int64", int64(3), true},
		{"go negative int", -3, false},
		{"float64", 12.0, true},
		{"bool", true, false},
		{"object", map[string]any{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NonNegativeInt(tt.value))
		})
	}
}

func TestInt64_TruncatesFraction(t *testing.T) {
	n, ok := Int64(json.Number("1507.75"))
	assert.True(t, ok)
	assert.Equal(t, int64(1507), n)
}

func TestInt64_TrimsWhitespace(t *testing.T) {
	n, ok := Int64(" 42 ")
	assert.True(t, ok)
	assert.Equal(t, int64(42), n)
}

func TestDate(t *testing.T) {
	assert.True(t, Date("10-03-2010"))
	assert.False(t, Date("3-06"))
	assert.False(t, Date("103-2017"))
	assert.False(t, Date(10032010))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		data        map[string]any
		rules       []Rule
		wantErr     error
		wantField   string
		wantMessage string
	}{
		{
			name:  "valid transfer",
			data:  map[string]any{"sender": json.Number("3"), "receiver": json.Number("4"), "sum": json.Number("25"), "timestamp": json.Number("1268179200")},
			rules: CreateTransferRules,
		},
		{
			name:        "missing receiver",
			data:        map[string]any{"sender": json.Number("3"), "sum": json.Number("25"), "timestamp": json.Number("1")},
			rules:       CreateTransferRules,
			wantErr:     ErrMissingField,
			wantField:   "receiver",
			wantMessage: "Missing field 'receiver'",
		},
		{
			name:        "null counts as missing",
			data:        map[string]any{"sender": nil},
			rules:       CreateTransferRules,
			wantErr:     ErrMissingField,
			wantField:   "sender",
			wantMessage: "Missing field 'sender'",
		},
		{
			name:        "invalid sum",
			data:        map[string]any{"sender": json.Number("3"), "receiver": json.Number("4"), "sum": "drop tables", "timestamp": json.Number("1")},
			rules:       CreateTransferRules,
			wantErr:     ErrInvalidFieldValue,
			wantField:   "sum",
			wantMessage: "Invalid data for field 'sum'",
		},
		{
			name:      "negative timestamp",
			data:      map[string]any{"sender": json.Number("3"), "receiver": json.Number("4"), "sum": json.Number("7"), "timestamp": json.Number("-1")},
			rules:     CreateTransferRules,
			wantErr:   ErrInvalidFieldValue,
			wantField: "timestamp",
		},
		{
			name:      "first failure wins",
			data:      map[string]any{"user": "abc"},
			rules:     SearchTransfersRules,
			wantErr:   ErrInvalidFieldValue,
			wantField: "user",
		},
		{
			name:      "wrong day",
			data:      map[string]any{"user": "1", "day": "3-06", "threshold": "14"},
			rules:     SearchTransfersRules,
			wantErr:   ErrInvalidFieldValue,
			wantField: "day",
		},
		{
			name:      "negative threshold",
			data:      map[string]any{"user": "1", "day": "10-03-2010", "threshold": "-14"},
			rules:     SearchTransfersRules,
			wantErr:   ErrInvalidFieldValue,
			wantField: "threshold",
		},
		{
			name:      "missing since and until",
			data:      map[string]any{"user": "12"},
			rules:     BalanceRules,
			wantErr:   ErrMissingField,
			wantField: "since",
		},
		{
			name:      "fractional user",
			data:      map[string]any{"user": "1.2", "since": "03-03-2017", "until": "10-04-2017"},
			rules:     BalanceRules,
			wantErr:   ErrInvalidFieldValue,
			wantField: "user",
		},
		{
			name:  "valid balance",
			data:  map[string]any{"user": "12", "since": "03-03-2017", "until": "10-04-2017"},
			rules: BalanceRules,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.data, tt.rules)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)

			var fieldErr *FieldError
			require.True(t, errors.As(err, &fieldErr))
			assert.Equal(t, tt.wantField, fieldErr.Field)
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, err.Error())
			}
		})
	}
}
