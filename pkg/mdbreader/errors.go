package mdbreader

import "github.com/susu-dot-dev/mdbreader/pkg/types"

// MdbError is the base error type for all mdbreader operations.
type MdbError = types.MdbError

// IndexOutOfRangeError is returned for a column position outside [0, row length)
// or a row index outside the rows in a file.
type IndexOutOfRangeError = types.IndexOutOfRangeError

// UnknownColumnError is returned when a column name is not in the schema.
type UnknownColumnError = types.UnknownColumnError

// NullValueError is returned when a non-nullable getter reads a null cell.
type NullValueError = types.NullValueError

// InvalidCastError is returned when the requested type does not match the stored kind.
type InvalidCastError = types.InvalidCastError

// InvalidInputError is returned for input validation failures.
type InvalidInputError = types.InvalidInputError

// PathError is returned for filesystem path issues.
type PathError = types.PathError

// WriteError is returned for file write failures.
type WriteError = types.WriteError

// ReadError is returned for file read and watcher failures.
type ReadError = types.ReadError

// CorruptFileError is returned when a row dump file fails validation.
type CorruptFileError = types.CorruptFileError

// NewInvalidInputError creates a new InvalidInputError.
func NewInvalidInputError(message string, err error) *InvalidInputError {
	return types.NewInvalidInputError(message, err)
}
