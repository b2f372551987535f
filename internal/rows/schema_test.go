package rows

import (
	"errors"
	"testing"

	"github.com/susu-dot-dev/mdbreader/pkg/types"
)

func TestNewSchema(t *testing.T) {
	tests := []struct {
		name    string
		columns []Column
		wantErr bool
	}{
		{
			name:    "valid",
			columns: []Column{{Name: "ID", Type: types.LONG_INT}, {Name: "Name", Type: types.TEXT, Nullable: true}},
		},
		{
			name:    "names differ only by case",
			columns: []Column{{Name: "name", Type: types.TEXT}, {Name: "Name", Type: types.TEXT}},
		},
		{
			name:    "empty",
			columns: nil,
			wantErr: true,
		},
		{
			name:    "empty name",
			columns: []Column{{Name: "", Type: types.TEXT}},
			wantErr: true,
		},
		{
			name:    "duplicate name",
			columns: []Column{{Name: "A", Type: types.TEXT}, {Name: "A", Type: types.DOUBLE}},
			wantErr: true,
		},
		{
			name:    "invalid type",
			columns: []Column{{Name: "A", Type: types.ColumnType(0)}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewSchema(tt.columns)
			if tt.wantErr {
				var inputErr *types.InvalidInputError
				if !errors.As(err, &inputErr) {
					t.Fatalf("NewSchema() error = %v, want InvalidInputError", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewSchema() unexpected error: %v", err)
			}
			if s.Len() != len(tt.columns) {
				t.Errorf("Len() = %d, want %d", s.Len(), len(tt.columns))
			}
			for i, col := range tt.columns {
				got, err := s.Ordinal(col.Name)
				if err != nil || got != i {
					t.Errorf("Ordinal(%q) = %d, %v; want %d", col.Name, got, err, i)
				}
			}
		})
	}
}

func TestSchema_DoesNotAliasInput(t *testing.T) {
	cols := []Column{{Name: "A", Type: types.TEXT}}
	s, err := NewSchema(cols)
	if err != nil {
		t.Fatalf("NewSchema() unexpected error: %v", err)
	}
	cols[0].Name = "B"

	col, err := s.Column(0)
	if err != nil {
		t.Fatalf("Column(0) unexpected error: %v", err)
	}
	if col.Name != "A" {
		t.Errorf("schema changed through input slice: %q", col.Name)
	}

	out := s.Columns()
	out[0].Name = "C"
	if col, _ := s.Column(0); col.Name != "A" {
		t.Errorf("schema changed through Columns(): %q", col.Name)
	}
}

func TestSchema_Lookups(t *testing.T) {
	s, err := NewSchema([]Column{{Name: "A", Type: types.TEXT}})
	if err != nil {
		t.Fatalf("NewSchema() unexpected error: %v", err)
	}

	var unknown *types.UnknownColumnError
	if _, err := s.Ordinal("a"); !errors.As(err, &unknown) {
		t.Errorf("Ordinal(\"a\") error = %v, want UnknownColumnError", err)
	}

	var outOfRange *types.IndexOutOfRangeError
	if _, err := s.Column(1); !errors.As(err, &outOfRange) {
		t.Errorf("Column(1) error = %v, want IndexOutOfRangeError", err)
	}
	if _, err := s.Column(-1); !errors.As(err, &outOfRange) {
		t.Errorf("Column(-1) error = %v, want IndexOutOfRangeError", err)
	}
}
