package rowfile

import (
	"bytes"
	"encoding"
	"fmt"

	"github.com/susu-dot-dev/mdbreader/pkg/types"
)

// FRAME_OVERHEAD is ROW_START(1) + start_control(1) + end_control(2) + parity(2) + ROW_END(1)
const FRAME_OVERHEAD = 7

// RowPayload defines the interface for row-specific payload data
type RowPayload interface {
	encoding.TextMarshaler
	encoding.TextUnmarshaler
}

// frame is the fixed-width envelope shared by schema and data rows:
//
//	[0] ROW_START  [1] start_control  [2..] payload  NUL padding
//	[N-5..N-4] end_control  [N-3..N-2] parity  [N-1] ROW_END
//
// P must be a non-nil pointer before UnmarshalText is called.
type frame[P RowPayload] struct {
	RowSize      int
	StartControl StartControl
	RowPayload   P
}

// upToParity builds bytes [0] through [N-4] inclusive.
func (f *frame[P]) upToParity() ([]byte, error) {
	payloadBytes, err := f.RowPayload.MarshalText()
	if err != nil {
		return nil, types.NewInvalidInputError("failed to marshal row payload", err)
	}
	if bytes.IndexByte(payloadBytes, NULL_BYTE) != -1 {
		return nil, types.NewInvalidInputError("row payload cannot contain NULL_BYTE", nil)
	}
	// At least one padding byte marks where the payload ends.
	if len(payloadBytes)+FRAME_OVERHEAD+1 > f.RowSize {
		return nil, types.NewInvalidInputError(
			fmt.Sprintf("payload size (%d bytes) exceeds row_size (%d bytes); maximum payload size is %d bytes",
				len(payloadBytes), f.RowSize, f.RowSize-FRAME_OVERHEAD-1),
			nil,
		)
	}

	rowBytes := make([]byte, f.RowSize-3)
	rowBytes[0] = ROW_START
	rowBytes[1] = byte(f.StartControl)
	copy(rowBytes[2:], payloadBytes)
	// make() zeroed the padding already
	end := endControlFor(f.StartControl)
	copy(rowBytes[f.RowSize-5:f.RowSize-3], end[:])
	return rowBytes, nil
}

// parity XORs bytes [0] through [N-4] and hex encodes the result.
func parity(rowBytes []byte) [2]byte {
	var xor byte
	for _, b := range rowBytes {
		xor ^= b
	}
	hexStr := fmt.Sprintf("%02X", xor)
	return [2]byte{hexStr[0], hexStr[1]}
}

// MarshalText serializes the frame to exactly RowSize bytes.
func (f *frame[P]) MarshalText() ([]byte, error) {
	if err := f.StartControl.Validate(); err != nil {
		return nil, err
	}
	if f.RowSize < MIN_ROW_SIZE || f.RowSize > MAX_ROW_SIZE {
		return nil, types.NewInvalidInputError(fmt.Sprintf("invalid row_size %d", f.RowSize), nil)
	}

	prefix, err := f.upToParity()
	if err != nil {
		return nil, err
	}

	rowBytes := make([]byte, f.RowSize)
	copy(rowBytes, prefix)
	p := parity(prefix)
	copy(rowBytes[f.RowSize-3:f.RowSize-1], p[:])
	rowBytes[f.RowSize-1] = ROW_END

	return rowBytes, nil
}

// UnmarshalText validates the envelope and decodes the payload into RowPayload.
// All failures are CorruptFileError.
func (f *frame[P]) UnmarshalText(text []byte) error {
	rowSize := len(text)
	if rowSize < MIN_ROW_SIZE {
		return types.NewCorruptFileError(fmt.Sprintf("row must be at least %d bytes, got %d", MIN_ROW_SIZE, rowSize), nil)
	}
	f.RowSize = rowSize

	if text[0] != ROW_START {
		return types.NewCorruptFileError(fmt.Sprintf("invalid ROW_START: expected 0x%02X, got 0x%02X", ROW_START, text[0]), nil)
	}
	if text[rowSize-1] != ROW_END {
		return types.NewCorruptFileError(fmt.Sprintf("invalid ROW_END: expected 0x%02X, got 0x%02X", ROW_END, text[rowSize-1]), nil)
	}

	if err := f.StartControl.UnmarshalText(text[1:2]); err != nil {
		return types.NewCorruptFileError("invalid start_control", err)
	}

	var end EndControl
	if err := end.UnmarshalText(text[rowSize-5 : rowSize-3]); err != nil {
		return types.NewCorruptFileError("invalid end_control", err)
	}
	if end != endControlFor(f.StartControl) {
		return types.NewCorruptFileError(fmt.Sprintf("end_control %s does not match start_control '%c'", end, f.StartControl), nil)
	}

	expected := parity(text[:rowSize-3])
	actual := [2]byte{text[rowSize-3], text[rowSize-2]}
	if actual != expected {
		return types.NewCorruptFileError(fmt.Sprintf("parity mismatch: expected [%c, %c], got [%c, %c]", expected[0], expected[1], actual[0], actual[1]), nil)
	}

	body := text[2 : rowSize-5]
	firstNull := bytes.IndexByte(body, NULL_BYTE)
	if firstNull == -1 {
		return types.NewCorruptFileError("no null byte found to mark padding start", nil)
	}
	for i := firstNull; i < len(body); i++ {
		if body[i] != NULL_BYTE {
			return types.NewCorruptFileError(fmt.Sprintf("invalid padding byte at position %d: got 0x%02X", i+2, body[i]), nil)
		}
	}

	if err := f.RowPayload.UnmarshalText(body[:firstNull]); err != nil {
		return types.NewCorruptFileError("failed to unmarshal payload", err)
	}
	return nil
}
