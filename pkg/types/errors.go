package types

import "fmt"

// MdbError is the base error type for all mdbreader operations.
// Every error kind embeds this struct so callers can read Code uniformly.
type MdbError struct {
	Code    string // Error code for programmatic handling
	Message string // Human-readable error message
	Err     error  // Underlying error (optional)
}

// Error returns the formatted error message.
func (e *MdbError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for error chaining.
func (e *MdbError) Unwrap() error {
	return e.Err
}

// IndexOutOfRangeError is returned when a column position is outside [0, row length),
// or a row index is outside the rows stored in a file.
type IndexOutOfRangeError struct {
	MdbError
}

// UnknownColumnError is returned when a column name is not present in the schema.
// Names are matched case-sensitively.
type UnknownColumnError struct {
	MdbError
}

// NullValueError is returned when a non-nullable accessor reads a null cell.
// Use the Nullable accessor or check IsNull first.
type NullValueError struct {
	MdbError
}

// InvalidCastError is returned when the requested type does not match the stored kind.
type InvalidCastError struct {
	MdbError
	Requested string // Requested type name, e.g. "Double"
	Stored    string // Stored kind name, e.g. "Text"
}

// InvalidInputError is returned for input validation failures.
// Used for: bad schemas, row/schema mismatches, invalid config, CLI arguments.
type InvalidInputError struct {
	MdbError
}

// PathError is returned for filesystem path issues.
// Used for: parent directory missing, file already exists, file cannot be opened.
type PathError struct {
	MdbError
}

// WriteError is returned for file write failures.
type WriteError struct {
	MdbError
}

// ReadError is returned for file read failures and watcher failures.
type ReadError struct {
	MdbError
}

// CorruptFileError is returned when a row dump file fails structural validation.
// Used for: bad header, bad sentinels, parity mismatch, undecodable payload.
type CorruptFileError struct {
	MdbError
}

// NewIndexOutOfRangeError creates a new IndexOutOfRangeError.
func NewIndexOutOfRangeError(message string, err error) *IndexOutOfRangeError {
	return &IndexOutOfRangeError{
		MdbError: MdbError{
			Code:    "index_out_of_range",
			Message: message,
			Err:     err,
		},
	}
}

// NewUnknownColumnError creates a new UnknownColumnError.
func NewUnknownColumnError(message string, err error) *UnknownColumnError {
	return &UnknownColumnError{
		MdbError: MdbError{
			Code:    "unknown_column",
			Message: message,
			Err:     err,
		},
	}
}

// NewNullValueError creates a new NullValueError.
func NewNullValueError(message string, err error) *NullValueError {
	return &NullValueError{
		MdbError: MdbError{
			Code:    "null_value",
			Message: message,
			Err:     err,
		},
	}
}

// NewInvalidCastError creates a new InvalidCastError for a requested type and stored kind.
func NewInvalidCastError(requested, stored string) *InvalidCastError {
	return &InvalidCastError{
		MdbError: MdbError{
			Code:    "invalid_cast",
			Message: fmt.Sprintf("cannot read %s column as %s", stored, requested),
		},
		Requested: requested,
		Stored:    stored,
	}
}

// NewInvalidInputError creates a new InvalidInputError.
func NewInvalidInputError(message string, err error) *InvalidInputError {
	return &InvalidInputError{
		MdbError: MdbError{
			Code:    "invalid_input",
			Message: message,
			Err:     err,
		},
	}
}

// NewPathError creates a new PathError.
func NewPathError(message string, err error) *PathError {
	return &PathError{
		MdbError: MdbError{
			Code:    "path_error",
			Message: message,
			Err:     err,
		},
	}
}

// NewWriteError creates a new WriteError.
func NewWriteError(message string, err error) *WriteError {
	return &WriteError{
		MdbError: MdbError{
			Code:    "write_error",
			Message: message,
			Err:     err,
		},
	}
}

// NewReadError creates a new ReadError.
func NewReadError(message string, err error) *ReadError {
	return &ReadError{
		MdbError: MdbError{
			Code:    "read_error",
			Message: message,
			Err:     err,
		},
	}
}

// NewCorruptFileError creates a new CorruptFileError.
func NewCorruptFileError(message string, err error) *CorruptFileError {
	return &CorruptFileError{
		MdbError: MdbError{
			Code:    "corrupt_file",
			Message: message,
			Err:     err,
		},
	}
}
