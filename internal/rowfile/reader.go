package rowfile

import (
	"fmt"
	"os"

	"github.com/susu-dot-dev/mdbreader/internal/rows"
	"github.com/susu-dot-dev/mdbreader/pkg/types"
)

// Reader materializes rows from a row dump file. Safe for concurrent ReadRow
// calls; every returned Row is independent and immutable.
type Reader struct {
	dbFile DBFile
	layout *layout
}

// OpenReader opens path read-only and validates its header and schema row.
func OpenReader(path string) (*Reader, error) {
	dbFile, err := openDBFile(path, os.O_RDONLY)
	if err != nil {
		return nil, err
	}
	l, err := readLayout(dbFile)
	if err != nil {
		_ = dbFile.Close()
		return nil, err
	}
	return &Reader{dbFile: dbFile, layout: l}, nil
}

// Schema returns the file's schema.
func (r *Reader) Schema() *rows.Schema {
	return r.layout.schema
}

// RowSize returns the fixed row width from the header.
func (r *Reader) RowSize() int {
	return r.layout.header.GetRowSize()
}

// Count returns the number of complete data rows currently in the file.
// A trailing partial row is not counted.
func (r *Reader) Count() int64 {
	return r.layout.dataRowCount(r.dbFile.Size())
}

// ReadRow decodes data row index.
//
// Returns IndexOutOfRangeError when index is outside [0, Count()) and
// CorruptFileError when the row fails validation.
func (r *Reader) ReadRow(index int64) (*rows.Row, error) {
	count := r.Count()
	if index < 0 || index >= count {
		return nil, types.NewIndexOutOfRangeError(fmt.Sprintf("row index %d is outside [0, %d)", index, count), nil)
	}
	rowBytes, err := r.dbFile.Read(r.layout.dataOffset(index), int32(r.RowSize()))
	if err != nil {
		return nil, err
	}
	row, err := decodeDataRow(r.layout.schema, rowBytes)
	if err != nil {
		return nil, types.NewCorruptFileError(fmt.Sprintf("failed to parse row at index %d", index), err)
	}
	return row, nil
}

// ForEach calls fn for every complete data row in order, stopping at the
// first error from decoding or from fn.
func (r *Reader) ForEach(fn func(index int64, row *rows.Row) error) error {
	count := r.Count()
	for i := int64(0); i < count; i++ {
		row, err := r.ReadRow(i)
		if err != nil {
			return err
		}
		if err := fn(i, row); err != nil {
			return err
		}
	}
	return nil
}

// Close releases the file handle.
func (r *Reader) Close() error {
	return r.dbFile.Close()
}
