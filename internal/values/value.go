// Package values holds the decoded-cell model: one immutable variant per
// payload type, each carrying its storage kind and an independent null marker.
package values

import (
	"bytes"
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"
	"github.com/susu-dot-dev/mdbreader/pkg/types"
)

// Value is one decoded cell. The variant set is closed: only the types in this
// package implement it.
type Value interface {
	// Kind returns the storage kind the cell was decoded from.
	Kind() types.ColumnType

	// IsNull reports whether the cell holds no value, independent of Kind.
	IsNull() bool

	// String formats the payload for display; null cells format as "NULL".
	String() string

	payload() any
}

// cell provides the shared foundation for every Value variant.
// P is the Go payload type of the variant.
type cell[P any] struct {
	kind types.ColumnType
	null bool
	v    P
}

// Kind returns the storage kind the cell was decoded from.
func (c cell[P]) Kind() types.ColumnType {
	return c.kind
}

// IsNull reports whether the cell has no value, independent of its kind.
func (c cell[P]) IsNull() bool {
	return c.null
}

// String formats the payload, or "NULL" for a null cell.
func (c cell[P]) String() string {
	if c.null {
		return "NULL"
	}
	return fmt.Sprint(c.v)
}

func (c cell[P]) payload() any {
	return c.v
}

// Null returns the null variant for the given storage kind.
func Null(kind types.ColumnType) (Value, error) {
	switch kind {
	case types.BOOLEAN:
		return NullBoolean(), nil
	case types.BYTE:
		return NullByte(), nil
	case types.INT:
		return NullInt16(), nil
	case types.LONG_INT:
		return NullInt32(), nil
	case types.BIG_INT:
		return NullInt64(), nil
	case types.FLOAT:
		return NullSingle(), nil
	case types.DOUBLE:
		return NullDouble(), nil
	case types.MONEY:
		return NullCurrency(), nil
	case types.NUMERIC:
		return NullNumeric(), nil
	case types.DATE_TIME:
		return NullDateTime(), nil
	case types.TEXT:
		return NullText(), nil
	case types.MEMO:
		return NullMemo(), nil
	case types.BINARY:
		return NullBinary(), nil
	case types.OLE:
		return NullOLE(), nil
	case types.REP_ID:
		return NullGUID(), nil
	default:
		return nil, types.NewInvalidInputError(fmt.Sprintf("no value variant for column type %s", kind), nil)
	}
}

// Equal reports whether two cells have the same kind, null-ness and payload.
// Decimals compare numerically, times compare as instants and NaN equals NaN.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() || a.IsNull() != b.IsNull() {
		return false
	}
	if a.IsNull() {
		return true
	}
	switch pa := a.payload().(type) {
	case decimal.Decimal:
		pb, ok := b.payload().(decimal.Decimal)
		return ok && pa.Equal(pb)
	case time.Time:
		pb, ok := b.payload().(time.Time)
		return ok && pa.Equal(pb)
	case []byte:
		pb, ok := b.payload().([]byte)
		return ok && bytes.Equal(pa, pb)
	case float32:
		pb, ok := b.payload().(float32)
		return ok && (pa == pb || (math.IsNaN(float64(pa)) && math.IsNaN(float64(pb))))
	case float64:
		pb, ok := b.payload().(float64)
		return ok && (pa == pb || (math.IsNaN(pa) && math.IsNaN(pb)))
	default:
		return a.payload() == b.payload()
	}
}
