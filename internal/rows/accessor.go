package rows

import (
	"fmt"

	"github.com/susu-dot-dev/mdbreader/internal/values"
	"github.com/susu-dot-dev/mdbreader/pkg/types"
)

// Get reads the field at position as T.
//
// Returns IndexOutOfRangeError for a bad position, NullValueError when the
// field is null, and InvalidCastError when the stored kind cannot be read as T.
// The only cross-kind read allowed is a Float (single) field read as float64.
func Get[T values.Primitive](r *Row, position int) (T, error) {
	v, err := r.GetFieldValue(position)
	if err != nil {
		var zero T
		return zero, err
	}
	return narrow[T](r, position, v)
}

// GetByName reads the named field as T. Errors as Get, with UnknownColumnError
// in place of IndexOutOfRangeError.
func GetByName[T values.Primitive](r *Row, name string) (T, error) {
	position, err := r.schema.Ordinal(name)
	if err != nil {
		var zero T
		return zero, err
	}
	return narrow[T](r, position, r.values[position])
}

// GetNullable reads the field at position as T, returning nil when it is null.
// A mismatched kind still fails with InvalidCastError.
func GetNullable[T values.Primitive](r *Row, position int) (*T, error) {
	v, err := r.GetFieldValue(position)
	if err != nil {
		return nil, err
	}
	return narrowNullable[T](r, position, v)
}

// GetNullableByName reads the named field as T, returning nil when it is null.
func GetNullableByName[T values.Primitive](r *Row, name string) (*T, error) {
	position, err := r.schema.Ordinal(name)
	if err != nil {
		return nil, err
	}
	return narrowNullable[T](r, position, r.values[position])
}

func narrow[T values.Primitive](r *Row, position int, v values.Value) (T, error) {
	if v.IsNull() {
		var zero T
		col := r.schema.columns[position]
		return zero, types.NewNullValueError(
			fmt.Sprintf("column %q is null; use the nullable accessor or check IsNull before reading it as %s", col.Name, values.TypeName[T]()),
			nil,
		)
	}
	return values.As[T](v)
}

func narrowNullable[T values.Primitive](r *Row, position int, v values.Value) (*T, error) {
	if v.IsNull() {
		return nil, nil
	}
	out, err := narrow[T](r, position, v)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
