package rowfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/susu-dot-dev/mdbreader/internal/rows"
	"github.com/susu-dot-dev/mdbreader/pkg/types"
)

const (
	FILE_EXTENSION   = ".mdbrows"
	DEFAULT_ROW_SIZE = 1024
)

// CreateConfig holds configuration for creating a new row dump file.
type CreateConfig struct {
	Path    string        // Filesystem path of the new file
	RowSize int           // Fixed row size in bytes (128-65536)
	Columns []rows.Column // Schema written to the schema row
}

// NewCreateConfig creates a CreateConfig. A rowSize of 0 selects DEFAULT_ROW_SIZE.
func NewCreateConfig(path string, rowSize int, columns []rows.Column) CreateConfig {
	if rowSize == 0 {
		rowSize = DEFAULT_ROW_SIZE
	}
	return CreateConfig{Path: path, RowSize: rowSize, Columns: columns}
}

// Validate performs validation on the configuration.
// This method is idempotent and can be called multiple times with the same result.
func (cfg *CreateConfig) Validate() error {
	if cfg.Path == "" {
		return types.NewInvalidInputError("path cannot be empty", nil)
	}
	if filepath.Ext(cfg.Path) != FILE_EXTENSION {
		return types.NewInvalidInputError(fmt.Sprintf("path must have %s extension", FILE_EXTENSION), nil)
	}
	if cfg.RowSize < MIN_ROW_SIZE || cfg.RowSize > MAX_ROW_SIZE {
		return types.NewInvalidInputError(fmt.Sprintf("row_size must be between %d and %d, got %d", MIN_ROW_SIZE, MAX_ROW_SIZE, cfg.RowSize), nil)
	}
	if _, err := rows.NewSchema(cfg.Columns); err != nil {
		return err
	}
	return nil
}

// Create writes a new file holding the header and schema row.
//
// Returns InvalidInputError for an invalid config (including a schema that
// does not fit in one row) and PathError when the parent directory is missing
// or the file already exists.
func Create(cfg CreateConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	hdr, err := NewHeader(cfg.RowSize)
	if err != nil {
		return err
	}
	headerBytes, err := hdr.MarshalText()
	if err != nil {
		return err
	}
	schemaRow := frame[*schemaPayload]{
		RowSize:      cfg.RowSize,
		StartControl: SCHEMA_ROW,
		RowPayload:   &schemaPayload{Columns: cfg.Columns},
	}
	schemaBytes, err := schemaRow.MarshalText()
	if err != nil {
		return err
	}

	parent := filepath.Dir(cfg.Path)
	if info, err := os.Stat(parent); err != nil || !info.IsDir() {
		return types.NewPathError(fmt.Sprintf("parent directory %s does not exist", parent), err)
	}

	file, err := openNewFile(cfg.Path)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return types.NewPathError(fmt.Sprintf("file %s already exists", cfg.Path), err)
		}
		return types.NewPathError(fmt.Sprintf("failed to create %s", cfg.Path), err)
	}

	// A file that failed any step below is removed so a retry can create it.
	if err := writeNewFile(file, append(headerBytes, schemaBytes...)); err != nil {
		_ = os.Remove(cfg.Path)
		return err
	}
	return nil
}

// newFile is the part of *os.File that Create needs.
type newFile interface {
	Write(p []byte) (int, error)
	Sync() error
	Close() error
}

// openNewFile creates path exclusively. Tests replace it to inject I/O failures.
var openNewFile = func(path string) (newFile, error) {
	return os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
}

func writeNewFile(file newFile, data []byte) error {
	if _, err := file.Write(data); err != nil {
		_ = file.Close()
		return types.NewWriteError("failed to write header and schema row", err)
	}
	if err := file.Sync(); err != nil {
		_ = file.Close()
		return types.NewWriteError("failed to sync new file", err)
	}
	if err := file.Close(); err != nil {
		return types.NewWriteError("failed to close new file", err)
	}
	return nil
}
