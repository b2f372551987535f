package mdbreader

import "github.com/susu-dot-dev/mdbreader/internal/rowfile"

// Row dump files carry a schema and fixed-width rows of typed cells. They are
// the on-disk source used by the mdbrow CLI and by tests.

type (
	// CreateConfig holds the path, row size and columns of a new file.
	CreateConfig = rowfile.CreateConfig
	// Reader reads rows by index from an existing file.
	Reader = rowfile.Reader
	// Writer appends rows that match the file schema.
	Writer = rowfile.Writer
	// Watcher delivers rows as other processes append them.
	Watcher = rowfile.Watcher
	// RowCallback receives each watched row with its index.
	RowCallback = rowfile.RowCallback
	// WatchOptions tunes a Watcher.
	WatchOptions = rowfile.WatchOptions
)

const (
	FILE_EXTENSION   = rowfile.FILE_EXTENSION
	DEFAULT_ROW_SIZE = rowfile.DEFAULT_ROW_SIZE
)

// NewCreateConfig returns a CreateConfig; a zero row size selects DEFAULT_ROW_SIZE.
var NewCreateConfig = rowfile.NewCreateConfig

// CreateFile writes a new row dump file holding only the header and schema.
func CreateFile(cfg CreateConfig) error {
	return rowfile.Create(cfg)
}

// OpenFile opens a row dump file for reading.
func OpenFile(path string) (*Reader, error) {
	return rowfile.OpenReader(path)
}

// OpenWriter opens a row dump file for appending.
func OpenWriter(path string) (*Writer, error) {
	return rowfile.OpenWriter(path)
}

// Watch tails a row dump file, calling onRow for each data row from
// opts.StartIndex on, including rows appended later.
func Watch(path string, onRow RowCallback, onError func(error), opts WatchOptions) (*Watcher, error) {
	return rowfile.NewWatcher(path, onRow, onError, opts)
}

// ParseRowJSON builds a row for schema from a JSON array of plain values.
func ParseRowJSON(schema *Schema, text []byte) (*Row, error) {
	return rowfile.ParseRowJSON(schema, text)
}

// Verify checks every row of a row dump file and returns CorruptFileError
// for the first invalid one.
func Verify(path string) error {
	return rowfile.Verify(path)
}
