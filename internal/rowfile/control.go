package rowfile

import (
	"fmt"

	"github.com/susu-dot-dev/mdbreader/pkg/types"
)

// Sentinel byte constants
const (
	ROW_START = 0x1F // Unit separator (U+001F)
	ROW_END   = 0x0A // Newline (U+000A)
	NULL_BYTE = 0x00 // Null character for padding
)

// StartControl represents single-byte control characters at row position [1]
type StartControl byte

const (
	// SCHEMA_ROW marks the single schema row that follows the header
	SCHEMA_ROW StartControl = 'S'

	// DATA_ROW marks a row of cells
	DATA_ROW StartControl = 'D'
)

// MarshalText converts StartControl to single byte
func (sc StartControl) MarshalText() ([]byte, error) {
	return []byte{byte(sc)}, nil
}

// Validate validates the StartControl value
func (sc StartControl) Validate() error {
	switch sc {
	case SCHEMA_ROW, DATA_ROW:
		return nil
	default:
		return types.NewInvalidInputError(fmt.Sprintf("invalid StartControl byte: 0x%02X", byte(sc)), nil)
	}
}

// UnmarshalText parses single byte and validates StartControl
func (sc *StartControl) UnmarshalText(text []byte) error {
	if len(text) != 1 {
		return types.NewInvalidInputError("StartControl must be exactly 1 byte", nil)
	}
	candidate := StartControl(text[0])
	if err := candidate.Validate(); err != nil {
		return err
	}
	*sc = candidate
	return nil
}

// EndControl represents two-byte control sequence at row positions [N-5:N-4]
type EndControl [2]byte

var (
	SCHEMA_END_CONTROL = EndControl{'S', 'C'} // Ends the schema row
	ROW_END_CONTROL    = EndControl{'R', 'E'} // Ends a data row
)

// MarshalText converts EndControl 2-byte array to slice
func (ec EndControl) MarshalText() ([]byte, error) {
	return ec[:], nil
}

// Validate validates the EndControl sequence
func (ec EndControl) Validate() error {
	switch ec {
	case SCHEMA_END_CONTROL, ROW_END_CONTROL:
		return nil
	}
	return types.NewInvalidInputError(fmt.Sprintf("invalid EndControl: '%c%c'", ec[0], ec[1]), nil)
}

// UnmarshalText parses 2-byte sequence into EndControl array with validation
func (ec *EndControl) UnmarshalText(text []byte) error {
	if len(text) != 2 {
		return types.NewInvalidInputError("EndControl must be exactly 2 bytes", nil)
	}
	candidate := EndControl{text[0], text[1]}
	if err := candidate.Validate(); err != nil {
		return err
	}
	*ec = candidate
	return nil
}

// String converts EndControl to string representation for display/debugging
func (ec EndControl) String() string {
	return string(ec[:])
}

// endControlFor returns the end control that pairs with a start control.
func endControlFor(sc StartControl) EndControl {
	if sc == SCHEMA_ROW {
		return SCHEMA_END_CONTROL
	}
	return ROW_END_CONTROL
}
