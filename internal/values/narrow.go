package values

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/susu-dot-dev/mdbreader/pkg/types"
)

// Primitive is the set of Go types a cell can be narrowed to.
type Primitive interface {
	bool | uint8 | int16 | int32 | int64 | float32 | float64 |
		decimal.Decimal | time.Time | string | []byte | uuid.UUID
}

// As narrows v to T. It succeeds when the variant's payload type is T, and
// when T is float64 and v is a SingleValue (widened exactly). Every other
// combination fails with InvalidCastError. A null v fails with NullValueError.
func As[T Primitive](v Value) (T, error) {
	var out T
	if v == nil {
		return out, types.NewInvalidInputError("cannot narrow a nil value", nil)
	}
	if v.IsNull() {
		return out, types.NewNullValueError(fmt.Sprintf("cannot read null %s value as %s", v.Kind(), TypeName[T]()), nil)
	}

	// Single widens to Double. The reverse is never allowed.
	if single, ok := v.(SingleValue); ok {
		if d, ok := any(&out).(*float64); ok {
			*d = float64(single.v)
			return out, nil
		}
	}

	p, ok := v.payload().(T)
	if !ok {
		return out, types.NewInvalidCastError(TypeName[T](), v.Kind().String())
	}
	return p, nil
}

// TypeName returns the accessor name for T, as used in error messages.
func TypeName[T Primitive]() string {
	var zero T
	switch any(zero).(type) {
	case bool:
		return "Boolean"
	case uint8:
		return "Byte"
	case int16:
		return "Int16"
	case int32:
		return "Int32"
	case int64:
		return "Int64"
	case float32:
		return "Single"
	case float64:
		return "Double"
	case decimal.Decimal:
		return "Decimal"
	case time.Time:
		return "DateTime"
	case string:
		return "String"
	case []byte:
		return "Bytes"
	case uuid.UUID:
		return "Guid"
	}
	return fmt.Sprintf("%T", zero)
}

// Interface returns the payload boxed as any, or nil for a null cell.
func Interface(v Value) any {
	if v == nil || v.IsNull() {
		return nil
	}
	return v.payload()
}
