package rowfile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/susu-dot-dev/mdbreader/pkg/types"
)

const (
	HEADER_SIZE      = 64
	HEADER_SIGNATURE = "mRW"
	HEADER_VERSION   = 1
	MIN_ROW_SIZE     = 128
	MAX_ROW_SIZE     = 65536
	PADDING_CHAR     = '\x00'
	HEADER_NEWLINE   = '\n'
)

// HEADER_FORMAT is the JSON written before NUL padding.
const HEADER_FORMAT = `{"sig":"mRW","ver":1,"row_size":%d}`

type headerJSON struct {
	Sig     string `json:"sig"`
	Ver     int    `json:"ver"`
	RowSize int    `json:"row_size"`
}

// Header is the fixed 64-byte block at the start of a row dump file.
type Header struct {
	signature string
	version   int
	rowSize   int
}

// NewHeader returns a validated version 1 header.
func NewHeader(rowSize int) (*Header, error) {
	h := &Header{signature: HEADER_SIGNATURE, version: HEADER_VERSION, rowSize: rowSize}
	if err := h.Validate(); err != nil {
		return nil, types.NewInvalidInputError("invalid header", err)
	}
	return h, nil
}

// GetRowSize returns the fixed size of every row in bytes.
func (h *Header) GetRowSize() int {
	return h.rowSize
}

// GetVersion returns the file format version.
func (h *Header) GetVersion() int {
	return h.version
}

// UnmarshalText parses and validates a 64-byte header.
func (h *Header) UnmarshalText(headerBytes []byte) error {
	if len(headerBytes) != HEADER_SIZE {
		return types.NewCorruptFileError(
			fmt.Sprintf("header must be exactly %d bytes, got %d", HEADER_SIZE, len(headerBytes)),
			nil,
		)
	}

	if headerBytes[HEADER_SIZE-1] != HEADER_NEWLINE {
		return types.NewCorruptFileError(
			fmt.Sprintf("byte 63 must be newline, got 0x%02x", headerBytes[HEADER_SIZE-1]),
			nil,
		)
	}

	nullPos := bytes.IndexByte(headerBytes, PADDING_CHAR)
	if nullPos == -1 {
		return types.NewCorruptFileError("no null terminator found in header", nil)
	}

	for i := nullPos; i < HEADER_SIZE-1; i++ {
		if headerBytes[i] != PADDING_CHAR {
			return types.NewCorruptFileError(
				fmt.Sprintf("padding byte at position %d must be null, got 0x%02x", i, headerBytes[i]),
				nil,
			)
		}
	}

	var hdr headerJSON
	if err := json.Unmarshal(headerBytes[:nullPos], &hdr); err != nil {
		return types.NewCorruptFileError("failed to parse JSON header", err)
	}

	h.signature = hdr.Sig
	h.version = hdr.Ver
	h.rowSize = hdr.RowSize

	if err := h.Validate(); err != nil {
		return types.NewCorruptFileError("invalid header", err)
	}
	return nil
}

// Validate checks the signature, version and row size bounds.
func (h *Header) Validate() error {
	if h.signature != HEADER_SIGNATURE {
		return types.NewInvalidInputError(
			fmt.Sprintf("invalid signature: expected '%s', got '%s'", HEADER_SIGNATURE, h.signature),
			nil,
		)
	}

	if h.version != HEADER_VERSION {
		return types.NewInvalidInputError(
			fmt.Sprintf("unsupported version: expected %d, got %d", HEADER_VERSION, h.version),
			nil,
		)
	}

	if h.rowSize < MIN_ROW_SIZE || h.rowSize > MAX_ROW_SIZE {
		return types.NewInvalidInputError(
			fmt.Sprintf("row_size must be between %d and %d, got %d", MIN_ROW_SIZE, MAX_ROW_SIZE, h.rowSize),
			nil,
		)
	}

	return nil
}

// MarshalText renders the header as exactly HEADER_SIZE bytes.
func (h *Header) MarshalText() ([]byte, error) {
	if err := h.Validate(); err != nil {
		return nil, err
	}

	jsonContent := fmt.Sprintf(HEADER_FORMAT, h.rowSize)
	padding := strings.Repeat(string(PADDING_CHAR), HEADER_SIZE-1-len(jsonContent))

	return []byte(jsonContent + padding + string(HEADER_NEWLINE)), nil
}
