package rowfile

import (
	"errors"
	"strings"
	"testing"

	"github.com/susu-dot-dev/mdbreader/internal/values"
	"github.com/susu-dot-dev/mdbreader/pkg/types"
)

func testFrame(t *testing.T) []byte {
	t.Helper()
	f := frame[*dataPayload]{
		RowSize:      MIN_ROW_SIZE,
		StartControl: DATA_ROW,
		RowPayload:   &dataPayload{Cells: []values.Value{values.NewDouble(3.14), values.NullText()}},
	}
	rowBytes, err := f.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() unexpected error: %v", err)
	}
	return rowBytes
}

func TestFrame_MarshalLayout(t *testing.T) {
	rowBytes := testFrame(t)

	if len(rowBytes) != MIN_ROW_SIZE {
		t.Fatalf("len = %d, want %d", len(rowBytes), MIN_ROW_SIZE)
	}
	if rowBytes[0] != ROW_START || rowBytes[1] != 'D' {
		t.Errorf("prefix = %q", rowBytes[:2])
	}
	if string(rowBytes[MIN_ROW_SIZE-5:MIN_ROW_SIZE-3]) != "RE" {
		t.Errorf("end_control = %q", rowBytes[MIN_ROW_SIZE-5:MIN_ROW_SIZE-3])
	}
	if rowBytes[MIN_ROW_SIZE-1] != ROW_END {
		t.Errorf("last byte = 0x%02X", rowBytes[MIN_ROW_SIZE-1])
	}
	want := parity(rowBytes[:MIN_ROW_SIZE-3])
	if rowBytes[MIN_ROW_SIZE-3] != want[0] || rowBytes[MIN_ROW_SIZE-2] != want[1] {
		t.Errorf("parity = %q, want %q", rowBytes[MIN_ROW_SIZE-3:MIN_ROW_SIZE-1], want[:])
	}
}

func TestFrame_Roundtrip(t *testing.T) {
	rowBytes := testFrame(t)

	f := frame[*dataPayload]{RowPayload: &dataPayload{}}
	if err := f.UnmarshalText(rowBytes); err != nil {
		t.Fatalf("UnmarshalText() unexpected error: %v", err)
	}
	if f.StartControl != DATA_ROW {
		t.Errorf("StartControl = %c", f.StartControl)
	}
	cells := f.RowPayload.Cells
	if len(cells) != 2 {
		t.Fatalf("got %d cells, want 2", len(cells))
	}
	if !values.Equal(cells[0], values.NewDouble(3.14)) {
		t.Errorf("cell 0 = %v", cells[0])
	}
	if !values.Equal(cells[1], values.NullText()) {
		t.Errorf("cell 1 = %v", cells[1])
	}
}

func TestFrame_Corruption(t *testing.T) {
	tests := []struct {
		name   string
		mutate func([]byte)
	}{
		{"bad row start", func(b []byte) { b[0] = 'X' }},
		{"bad row end", func(b []byte) { b[len(b)-1] = 'X' }},
		{"bad start control", func(b []byte) { b[1] = 'Q' }},
		{"mismatched end control", func(b []byte) { b[len(b)-5], b[len(b)-4] = 'S', 'C' }},
		{"payload byte flipped", func(b []byte) { b[3] ^= 0x01 }},
		{"parity changed", func(b []byte) { b[len(b)-3] = 'Z' }},
		{"garbage in padding", func(b []byte) { b[len(b)-7] = 'x' }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rowBytes := testFrame(t)
			tt.mutate(rowBytes)

			f := frame[*dataPayload]{RowPayload: &dataPayload{}}
			err := f.UnmarshalText(rowBytes)
			var corrupt *types.CorruptFileError
			if !errors.As(err, &corrupt) {
				t.Errorf("UnmarshalText() error = %v, want CorruptFileError", err)
			}
		})
	}
}

func TestFrame_PayloadTooLarge(t *testing.T) {
	f := frame[*dataPayload]{
		RowSize:      MIN_ROW_SIZE,
		StartControl: DATA_ROW,
		RowPayload:   &dataPayload{Cells: []values.Value{values.NewMemo(strings.Repeat("a", MIN_ROW_SIZE))}},
	}
	_, err := f.MarshalText()
	var inputErr *types.InvalidInputError
	if !errors.As(err, &inputErr) {
		t.Fatalf("MarshalText() error = %v, want InvalidInputError", err)
	}
}

func TestControl_Validate(t *testing.T) {
	if err := StartControl('T').Validate(); err == nil {
		t.Error("StartControl('T') should be rejected")
	}
	if err := DATA_ROW.Validate(); err != nil {
		t.Errorf("DATA_ROW.Validate() unexpected error: %v", err)
	}
	var ec EndControl
	if err := ec.UnmarshalText([]byte("TC")); err == nil {
		t.Error("EndControl \"TC\" should be rejected")
	}
	if err := ec.UnmarshalText([]byte("SC")); err != nil || ec != SCHEMA_END_CONTROL {
		t.Errorf("EndControl \"SC\" = %v, %v", ec, err)
	}
}

func TestHeader_Roundtrip(t *testing.T) {
	hdr, err := NewHeader(512)
	if err != nil {
		t.Fatalf("NewHeader() unexpected error: %v", err)
	}
	headerBytes, err := hdr.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() unexpected error: %v", err)
	}
	if len(headerBytes) != HEADER_SIZE || headerBytes[HEADER_SIZE-1] != '\n' {
		t.Fatalf("header bytes = %q", headerBytes)
	}

	var parsed Header
	if err := parsed.UnmarshalText(headerBytes); err != nil {
		t.Fatalf("UnmarshalText() unexpected error: %v", err)
	}
	if parsed.GetRowSize() != 512 || parsed.GetVersion() != HEADER_VERSION {
		t.Errorf("parsed header = %+v", parsed)
	}

	headerBytes[2] = 'X'
	var corrupt *types.CorruptFileError
	if err := parsed.UnmarshalText(headerBytes); !errors.As(err, &corrupt) {
		t.Errorf("UnmarshalText(corrupted) error = %v, want CorruptFileError", err)
	}

	var inputErr *types.InvalidInputError
	if _, err := NewHeader(64); !errors.As(err, &inputErr) {
		t.Errorf("NewHeader(64) error = %v, want InvalidInputError", err)
	}
}
