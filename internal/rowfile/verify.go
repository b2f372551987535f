package rowfile

import (
	"fmt"
	"os"

	"github.com/susu-dot-dev/mdbreader/pkg/types"
)

// Verify checks the integrity of a row dump file.
//
// It validates the header and schema row, then decodes every data row: frame
// sentinels, control bytes, parity, padding, and each cell against its column.
// A file that does not end on a row boundary fails, so a file still being
// appended to can report a trailing partial row.
//
// Returns nil for a valid file and CorruptFileError naming the first bad row
// otherwise. Open failures surface as PathError.
func Verify(path string) error {
	dbFile, err := openDBFile(path, os.O_RDONLY)
	if err != nil {
		return err
	}
	defer func() { _ = dbFile.Close() }()

	l, err := readLayout(dbFile)
	if err != nil {
		return err
	}

	size := dbFile.Size()
	rowSize := int64(l.header.GetRowSize())
	if tail := (size - int64(HEADER_SIZE)) % rowSize; tail != 0 {
		return types.NewCorruptFileError(
			fmt.Sprintf("file ends with a partial row: %d of %d bytes", tail, rowSize),
			nil,
		)
	}

	count := l.dataRowCount(size)
	for i := int64(0); i < count; i++ {
		rowBytes, err := dbFile.Read(l.dataOffset(i), int32(rowSize))
		if err != nil {
			return types.NewCorruptFileError(fmt.Sprintf("failed to read row at index %d", i), err)
		}
		if _, err := decodeDataRow(l.schema, rowBytes); err != nil {
			return types.NewCorruptFileError(fmt.Sprintf("invalid row at index %d", i), err)
		}
	}
	return nil
}
