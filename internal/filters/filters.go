package filters

import (
	"fmt"
	"strings"

	"github.com/sbilibin2017/gw-transfer-ledger/internal/models"
)

// Field is a filterable transaction attribute.
type Field string

const (
	Sender    Field = "sender"
	Receiver  Field = "receiver"
	Amount    Field = "amount"
	Timestamp Field = "timestamp"
)

// Op is a comparison operator.
type Op string

const (
	Eq  Op = "="
	Lt  Op = "<"
	Lte Op = "<="
	Gt  Op = ">"
	Gte Op = ">="
)

// Kind tells a leaf comparison apart from a boolean combination.
type Kind int

const (
	KindCompare Kind = iota
	KindAnd
	KindOr
)

// Predicate is a backend neutral filter over transactions: either a single
// field comparison or an AND/OR of nested predicates.
type Predicate struct {
	Kind     Kind
	Field    Field
	Op       Op
	Value    int64
	Operands []Predicate
}

func compare(field Field, op Op, value int64) Predicate {
	return Predicate{Kind: KindCompare, Field: field, Op: op, Value: value}
}

func Equal(field Field, value int64) Predicate { return compare(field, Eq, value) }

func Less(field Field, value int64) Predicate { return compare(field, Lt, value) }

func LessOrEqual(field Field, value int64) Predicate { return compare(field, Lte, value) }

func Greater(field Field, value int64) Predicate { return compare(field, Gt, value) }

func GreaterOrEqual(field Field, value int64) Predicate { return compare(field, Gte, value) }

// And matches when every operand matches. An empty And matches everything.
func And(operands ...Predicate) Predicate {
	return Predicate{Kind: KindAnd, Operands: operands}
}

// Or matches when any operand matches. An empty Or matches nothing.
func Or(operands ...Predicate) Predicate {
	return Predicate{Kind: KindOr, Operands: operands}
}

// DayTransfers selects the rows owned by user inside [start, end) whose amount
// magnitude strictly exceeds threshold, in either direction.
func DayTransfers(user, start, end, threshold int64) Predicate {
	return And(
		Equal(Sender, user),
		GreaterOrEqual(Timestamp, start),
		Less(Timestamp, end),
		Or(
			Greater(Amount, threshold),
			Less(Amount, -threshold),
		),
	)
}

// Interval selects the rows owned by user inside [start, end).
func Interval(user, start, end int64) Predicate {
	return And(
		Equal(Sender, user),
		GreaterOrEqual(Timestamp, start),
		Less(Timestamp, end),
	)
}

func fieldValue(tx models.Transaction, field Field) (int64, bool) {
	switch field {
	case Sender:
		return tx.Sender, true
	case Receiver:
		return tx.Receiver, true
	case Amount:
		return tx.Amount, true
	case Timestamp:
		return tx.Timestamp, true
	}
	return 0, false
}

// Match evaluates the predicate against a single transaction.
// Unknown fields or operators never match.
func (p Predicate) Match(tx models.Transaction) bool {
	switch p.Kind {
	case KindAnd:
		for _, o := range p.Operands {
			if !o.Match(tx) {
				return false
			}
		}
		return true
	case KindOr:
		for _, o := range p.Operands {
			if o.Match(tx) {
				return true
			}
		}
		return false
	}

	v, ok := fieldValue(tx, p.Field)
	if !ok {
		return false
	}
	switch p.Op {
	case Eq:
		return v == p.Value
	case Lt:
		return v < p.Value
	case Lte:
		return v <= p.Value
	case Gt:
		return v > p.Value
	case Gte:
		return v >= p.Value
	}
	return false
}

// Validate checks that every comparison uses a known field and operator.
func (p Predicate) Validate() error {
	switch p.Kind {
	case KindAnd, KindOr:
		for _, o := range p.Operands {
			if err := o.Validate(); err != nil {
				return err
			}
		}
		return nil
	case KindCompare:
		if _, ok := fieldValue(models.Transaction{}, p.Field); !ok {
			return fmt.Errorf("unknown field %q", p.Field)
		}
		switch p.Op {
		case Eq, Lt, Lte, Gt, Gte:
			return nil
		}
		return fmt.Errorf("unknown operator %q", p.Op)
	}
	return fmt.Errorf("unknown predicate kind %d", p.Kind)
}

// SQL renders the predicate as a WHERE clause fragment with '?' placeholders.
// Call Validate first: field names are written into the query text.
func (p Predicate) SQL() (string, []any) {
	var sb strings.Builder
	var args []any
	p.writeSQL(&sb, &args)
	return sb.String(), args
}

func (p Predicate) writeSQL(sb *strings.Builder, args *[]any) {
	switch p.Kind {
	case KindAnd, KindOr:
		if len(p.Operands) == 0 {
			if p.Kind == KindAnd {
				sb.WriteString("TRUE")
			} else {
				sb.WriteString("FALSE")
			}
			return
		}
		sep := " AND "
		if p.Kind == KindOr {
			sep = " OR "
		}
		sb.WriteString("(")
		for i, o := range p.Operands {
			if i > 0 {
				sb.WriteString(sep)
			}
			o.writeSQL(sb, args)
		}
		sb.WriteString(")")
	default:
		fmt.Fprintf(sb, "%s %s ?", p.Field, p.Op)
		*args = append(*args, p.Value)
	}
}
