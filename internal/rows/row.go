// Package rows exposes a decoded row through typed getters that enforce each
// column's declared storage kind.
package rows

import (
	"fmt"

	"github.com/susu-dot-dev/mdbreader/internal/values"
	"github.com/susu-dot-dev/mdbreader/pkg/types"
)

// Row is one decoded record: one Value per schema column, in schema order.
// A Row never changes after NewRow returns and may be read from any number
// of goroutines.
type Row struct {
	schema *Schema
	values []values.Value
}

// NewRow builds a Row over its own copy of vals.
//
// Returns InvalidInputError when:
//   - schema is nil
//   - len(vals) differs from the column count
//   - a value is nil or its Kind differs from the column type
//   - a null value is stored in a column that is not nullable
func NewRow(schema *Schema, vals []values.Value) (*Row, error) {
	if schema == nil {
		return nil, types.NewInvalidInputError("row schema cannot be nil", nil)
	}
	if len(vals) != schema.Len() {
		return nil, types.NewInvalidInputError(fmt.Sprintf("row has %d values, schema has %d columns", len(vals), schema.Len()), nil)
	}

	for i, v := range vals {
		col := schema.columns[i]
		if v == nil {
			return nil, types.NewInvalidInputError(fmt.Sprintf("value for column %q is nil", col.Name), nil)
		}
		if v.Kind() != col.Type {
			return nil, types.NewInvalidInputError(fmt.Sprintf("column %q is declared %s, got a %s value", col.Name, col.Type, v.Kind()), nil)
		}
		if v.IsNull() && !col.Nullable {
			return nil, types.NewInvalidInputError(fmt.Sprintf("column %q is not nullable", col.Name), nil)
		}
	}

	r := &Row{
		schema: schema,
		values: make([]values.Value, len(vals)),
	}
	copy(r.values, vals)
	return r, nil
}

// Len returns the number of fields.
func (r *Row) Len() int {
	return len(r.values)
}

// Schema returns the row's schema.
func (r *Row) Schema() *Schema {
	return r.schema
}

// GetFieldValue returns the Value at position, or IndexOutOfRangeError.
func (r *Row) GetFieldValue(position int) (values.Value, error) {
	if position < 0 || position >= len(r.values) {
		return nil, outOfRange(position, len(r.values))
	}
	return r.values[position], nil
}

// GetFieldValueByName returns the Value of the named column (case-sensitive),
// or UnknownColumnError.
func (r *Row) GetFieldValueByName(name string) (values.Value, error) {
	position, err := r.schema.Ordinal(name)
	if err != nil {
		return nil, err
	}
	return r.values[position], nil
}

// Name returns the column name at position.
func (r *Row) Name(position int) (string, error) {
	col, err := r.schema.Column(position)
	if err != nil {
		return "", err
	}
	return col.Name, nil
}

// Ordinal returns the position of the named column.
func (r *Row) Ordinal(name string) (int, error) {
	return r.schema.Ordinal(name)
}

// IsNull reports whether the field at position is null.
func (r *Row) IsNull(position int) (bool, error) {
	v, err := r.GetFieldValue(position)
	if err != nil {
		return false, err
	}
	return v.IsNull(), nil
}

// IsNullByName reports whether the named field is null.
func (r *Row) IsNullByName(name string) (bool, error) {
	v, err := r.GetFieldValueByName(name)
	if err != nil {
		return false, err
	}
	return v.IsNull(), nil
}

// GetValue returns the field payload boxed as any, or nil when it is null.
// No kind checks are made.
func (r *Row) GetValue(position int) (any, error) {
	v, err := r.GetFieldValue(position)
	if err != nil {
		return nil, err
	}
	return values.Interface(v), nil
}

// GetValues fills dst with the boxed payloads of the leading fields and
// returns how many were copied.
func (r *Row) GetValues(dst []any) int {
	n := min(len(dst), len(r.values))
	for i := 0; i < n; i++ {
		dst[i] = values.Interface(r.values[i])
	}
	return n
}
