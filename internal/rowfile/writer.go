package rowfile

import (
	"fmt"
	"os"
	"sync"

	"github.com/susu-dot-dev/mdbreader/internal/rows"
	"github.com/susu-dot-dev/mdbreader/pkg/types"
)

// Writer appends data rows to an existing row dump file.
type Writer struct {
	mu     sync.Mutex
	file   *os.File
	layout *layout
	closed bool
}

// OpenWriter opens path for appending after validating its header and schema row.
func OpenWriter(path string) (*Writer, error) {
	dbFile, err := openDBFile(path, os.O_RDWR|os.O_APPEND)
	if err != nil {
		return nil, err
	}
	l, err := readLayout(dbFile)
	if err != nil {
		_ = dbFile.Close()
		return nil, err
	}
	if l.dataRowCount(dbFile.Size())*int64(l.header.GetRowSize()) != dbFile.Size()-l.dataOffset(0) {
		_ = dbFile.Close()
		return nil, types.NewCorruptFileError("file ends with a partial row", nil)
	}
	return &Writer{file: dbFile.file, layout: l}, nil
}

// Schema returns the file's schema.
func (w *Writer) Schema() *rows.Schema {
	return w.layout.schema
}

// Append writes row at the end of the file.
//
// Returns InvalidInputError when the row's columns differ from the file schema
// or its encoded cells do not fit in one row, and WriteError on I/O failure.
func (w *Writer) Append(row *rows.Row) error {
	if row == nil {
		return types.NewInvalidInputError("row cannot be nil", nil)
	}
	if err := sameColumns(w.layout.schema, row.Schema()); err != nil {
		return err
	}

	rowBytes, err := encodeDataRow(w.layout.header.GetRowSize(), row)
	if err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return types.NewWriteError("writer is closed", nil)
	}
	if _, err := w.file.Write(rowBytes); err != nil {
		return types.NewWriteError("failed to append row", err)
	}
	return nil
}

// Close syncs and closes the file. Safe to call more than once.
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return nil
	}
	w.closed = true
	if err := w.file.Sync(); err != nil {
		_ = w.file.Close()
		return types.NewWriteError("failed to sync file", err)
	}
	if err := w.file.Close(); err != nil {
		return types.NewWriteError("failed to close file", err)
	}
	return nil
}

func sameColumns(want, got *rows.Schema) error {
	if want == got {
		return nil
	}
	wantCols, gotCols := want.Columns(), got.Columns()
	if len(wantCols) != len(gotCols) {
		return types.NewInvalidInputError(fmt.Sprintf("row has %d columns, file has %d", len(gotCols), len(wantCols)), nil)
	}
	for i := range wantCols {
		if wantCols[i] != gotCols[i] {
			return types.NewInvalidInputError(fmt.Sprintf("column %d is %+v in the row but %+v in the file", i, gotCols[i], wantCols[i]), nil)
		}
	}
	return nil
}
