package rows

import (
	"fmt"

	"github.com/susu-dot-dev/mdbreader/pkg/types"
)

// Column describes one declared column of a table.
type Column struct {
	Name     string           `json:"name"`
	Type     types.ColumnType `json:"type"`
	Nullable bool             `json:"nullable"`
}

// Schema is the ordered column list of a table plus its name→position map.
// Names are case-sensitive and unique. A Schema is immutable once built.
type Schema struct {
	columns   []Column
	positions map[string]int
}

// NewSchema validates the columns and builds the name→position map.
//
// Returns InvalidInputError when the list is empty, a name is empty or
// repeated, or a column type is unknown.
func NewSchema(columns []Column) (*Schema, error) {
	if len(columns) == 0 {
		return nil, types.NewInvalidInputError("schema must have at least one column", nil)
	}

	s := &Schema{
		columns:   make([]Column, len(columns)),
		positions: make(map[string]int, len(columns)),
	}
	copy(s.columns, columns)

	for i, col := range s.columns {
		if col.Name == "" {
			return nil, types.NewInvalidInputError(fmt.Sprintf("column %d has an empty name", i), nil)
		}
		if err := col.Type.Validate(); err != nil {
			return nil, types.NewInvalidInputError(fmt.Sprintf("column %q has an invalid type", col.Name), err)
		}
		if prev, dup := s.positions[col.Name]; dup {
			return nil, types.NewInvalidInputError(fmt.Sprintf("duplicate column name %q at positions %d and %d", col.Name, prev, i), nil)
		}
		s.positions[col.Name] = i
	}

	return s, nil
}

// Len returns the number of columns.
func (s *Schema) Len() int {
	return len(s.columns)
}

// Column returns the column at position, or IndexOutOfRangeError.
func (s *Schema) Column(position int) (Column, error) {
	if position < 0 || position >= len(s.columns) {
		return Column{}, outOfRange(position, len(s.columns))
	}
	return s.columns[position], nil
}

// Columns returns a copy of the column list.
func (s *Schema) Columns() []Column {
	out := make([]Column, len(s.columns))
	copy(out, s.columns)
	return out
}

// Ordinal returns the position of the named column, or UnknownColumnError.
func (s *Schema) Ordinal(name string) (int, error) {
	position, ok := s.positions[name]
	if !ok {
		return -1, types.NewUnknownColumnError(fmt.Sprintf("column %q does not exist", name), nil)
	}
	return position, nil
}

func outOfRange(position, length int) *types.IndexOutOfRangeError {
	return types.NewIndexOutOfRangeError(fmt.Sprintf("column position %d is outside [0, %d)", position, length), nil)
}
