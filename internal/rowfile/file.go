package rowfile

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/susu-dot-dev/mdbreader/internal/rows"
	"github.com/susu-dot-dev/mdbreader/internal/values"
	"github.com/susu-dot-dev/mdbreader/pkg/types"
)

// DBFile is the read side of a row dump file.
type DBFile interface {
	// Read returns exactly size bytes starting at start.
	Read(start int64, size int32) ([]byte, error)

	// Size returns the current file size. Other processes may be appending.
	Size() int64

	Close() error
}

// fileManager implements DBFile over an *os.File.
type fileManager struct {
	file *os.File
}

func openDBFile(path string, flag int) (*fileManager, error) {
	if path == "" {
		return nil, types.NewInvalidInputError("file path cannot be empty", nil)
	}
	file, err := os.OpenFile(path, flag, 0)
	if err != nil {
		return nil, types.NewPathError(fmt.Sprintf("failed to open %s", path), err)
	}
	return &fileManager{file: file}, nil
}

func (fm *fileManager) Read(start int64, size int32) ([]byte, error) {
	if start < 0 {
		return nil, types.NewInvalidInputError("start offset cannot be negative", nil)
	}
	if size <= 0 {
		return nil, types.NewInvalidInputError("size must be positive", nil)
	}

	data := make([]byte, size)
	n, err := fm.file.ReadAt(data, start)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, types.NewReadError(fmt.Sprintf("short read at offset %d: got %d of %d bytes", start, n, size), err)
		}
		return nil, types.NewReadError(fmt.Sprintf("failed to read at offset %d", start), err)
	}
	return data, nil
}

func (fm *fileManager) Size() int64 {
	info, err := fm.file.Stat()
	if err != nil {
		return 0
	}
	return info.Size()
}

func (fm *fileManager) Close() error {
	if err := fm.file.Close(); err != nil && !errors.Is(err, os.ErrClosed) {
		return types.NewReadError("failed to close file", err)
	}
	return nil
}

// layout describes where rows live once the header and schema are known.
type layout struct {
	header *Header
	schema *rows.Schema
}

// dataOffset returns the byte offset of data row index.
func (l *layout) dataOffset(index int64) int64 {
	rowSize := int64(l.header.GetRowSize())
	return int64(HEADER_SIZE) + rowSize*(index+1)
}

// dataRowCount returns the number of complete data rows in a file of size bytes.
func (l *layout) dataRowCount(size int64) int64 {
	rowSize := int64(l.header.GetRowSize())
	n := (size - int64(HEADER_SIZE) - rowSize) / rowSize
	if n < 0 {
		return 0
	}
	return n
}

// readLayout validates the header and schema row of dbFile.
func readLayout(dbFile DBFile) (*layout, error) {
	if dbFile.Size() < int64(HEADER_SIZE) {
		return nil, types.NewCorruptFileError(
			fmt.Sprintf("file too small for header: expected at least %d bytes, got %d", HEADER_SIZE, dbFile.Size()),
			nil,
		)
	}
	headerBytes, err := dbFile.Read(0, HEADER_SIZE)
	if err != nil {
		return nil, types.NewCorruptFileError("failed to read header", err)
	}
	hdr := &Header{}
	if err := hdr.UnmarshalText(headerBytes); err != nil {
		return nil, err
	}

	rowSize := hdr.GetRowSize()
	if dbFile.Size() < int64(HEADER_SIZE+rowSize) {
		return nil, types.NewCorruptFileError("file too small: schema row is missing", nil)
	}
	schemaBytes, err := dbFile.Read(int64(HEADER_SIZE), int32(rowSize))
	if err != nil {
		return nil, types.NewCorruptFileError("failed to read schema row", err)
	}
	f := frame[*schemaPayload]{RowPayload: &schemaPayload{}}
	if err := f.UnmarshalText(schemaBytes); err != nil {
		return nil, err
	}
	if f.StartControl != SCHEMA_ROW {
		return nil, types.NewCorruptFileError(fmt.Sprintf("row after header must be the schema row, got start_control '%c'", f.StartControl), nil)
	}
	schema, err := rows.NewSchema(f.RowPayload.Columns)
	if err != nil {
		return nil, types.NewCorruptFileError("invalid schema row", err)
	}

	return &layout{header: hdr, schema: schema}, nil
}

// decodeDataRow parses one framed data row against schema.
func decodeDataRow(schema *rows.Schema, rowBytes []byte) (*rows.Row, error) {
	f := frame[*dataPayload]{RowPayload: &dataPayload{}}
	if err := f.UnmarshalText(rowBytes); err != nil {
		return nil, err
	}
	if f.StartControl != DATA_ROW {
		return nil, types.NewCorruptFileError(fmt.Sprintf("expected a data row, got start_control '%c'", f.StartControl), nil)
	}
	row, err := rows.NewRow(schema, f.RowPayload.Cells)
	if err != nil {
		return nil, types.NewCorruptFileError("data row does not match schema", err)
	}
	return row, nil
}

// encodeDataRow frames row for a file with the given row size.
func encodeDataRow(rowSize int, row *rows.Row) ([]byte, error) {
	cells := make([]values.Value, row.Len())
	for i := range cells {
		v, err := row.GetFieldValue(i)
		if err != nil {
			return nil, err
		}
		cells[i] = v
	}
	f := frame[*dataPayload]{
		RowSize:      rowSize,
		StartControl: DATA_ROW,
		RowPayload:   &dataPayload{Cells: cells},
	}
	return f.MarshalText()
}
