package main

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/susu-dot-dev/mdbreader/pkg/mdbreader"
)

func TestParseGlobalFlags(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantPath   string
		wantSub    string
		wantArgs   []string
		wantErrMsg bool
	}{
		{
			name:     "path before subcommand",
			args:     []string{"mdbrow", "--path", "a.mdbrows", "get", "0", "ID", "int32"},
			wantPath: "a.mdbrows",
			wantSub:  "get",
			wantArgs: []string{"0", "ID", "int32"},
		},
		{
			name:     "path after subcommand",
			args:     []string{"mdbrow", "inspect", "--path", "a.mdbrows", "--limit", "5"},
			wantPath: "a.mdbrows",
			wantSub:  "inspect",
			wantArgs: []string{"--limit", "5"},
		},
		{
			name:     "path between arguments",
			args:     []string{"mdbrow", "get", "0", "--path", "a.mdbrows", "ID", "int32", "--nullable"},
			wantPath: "a.mdbrows",
			wantSub:  "get",
			wantArgs: []string{"0", "ID", "int32", "--nullable"},
		},
		{name: "duplicate path", args: []string{"mdbrow", "--path", "a", "--path", "b", "inspect"}, wantErrMsg: true},
		{name: "path without value", args: []string{"mdbrow", "inspect", "--path"}, wantErrMsg: true},
		{name: "missing subcommand", args: []string{"mdbrow", "--path", "a"}, wantErrMsg: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags, err := parseGlobalFlags(tt.args)
			if tt.wantErrMsg {
				var inputErr *mdbreader.InvalidInputError
				if !errors.As(err, &inputErr) {
					t.Fatalf("parseGlobalFlags() error = %v, want InvalidInputError", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseGlobalFlags() unexpected error: %v", err)
			}
			if flags.path != tt.wantPath || flags.subcommand != tt.wantSub {
				t.Errorf("got path %q subcommand %q, want %q %q", flags.path, flags.subcommand, tt.wantPath, tt.wantSub)
			}
			if len(flags.args) != len(tt.wantArgs) {
				t.Fatalf("args = %v, want %v", flags.args, tt.wantArgs)
			}
			for i := range flags.args {
				if flags.args[i] != tt.wantArgs[i] {
					t.Errorf("args[%d] = %q, want %q", i, flags.args[i], tt.wantArgs[i])
				}
			}
		})
	}
}

func TestParseGetArgs(t *testing.T) {
	req, err := parseGetArgs([]string{"3", "Price", "DECIMAL", "--nullable"})
	if err != nil {
		t.Fatalf("parseGetArgs() unexpected error: %v", err)
	}
	if req.index != 3 || !req.column.byName || req.column.name != "Price" || !req.nullable || req.format == nil {
		t.Errorf("parseGetArgs() = %+v", req)
	}

	req, err = parseGetArgs([]string{"0", "2", "int32"})
	if err != nil {
		t.Fatalf("parseGetArgs() unexpected error: %v", err)
	}
	if req.column.byName || req.column.position != 2 || req.nullable {
		t.Errorf("parseGetArgs() column = %+v nullable = %v, want position 2", req.column, req.nullable)
	}

	invalid := [][]string{
		{},
		{"0"},
		{"0", "ID"},
		{"0", "ID", "int32", "extra"},
		{"zero", "ID", "int32"},
		{"0", "ID", "varchar"},
		{"0", "ID", "int32", "--bogus"},
	}
	for _, args := range invalid {
		var inputErr *mdbreader.InvalidInputError
		if _, err := parseGetArgs(args); !errors.As(err, &inputErr) {
			t.Errorf("parseGetArgs(%v) error = %v, want InvalidInputError", args, err)
		}
	}
}

func TestParseCreateArgs(t *testing.T) {
	path, columns, rowSize, err := parseCreateArgs([]string{
		"a.mdbrows",
		`[{"name":"ID","type":"LongInt"},{"name":"Total","type":"money","nullable":true}]`,
		"--row-size", "256",
	})
	if err != nil {
		t.Fatalf("parseCreateArgs() unexpected error: %v", err)
	}
	if path != "a.mdbrows" || rowSize != 256 || len(columns) != 2 {
		t.Fatalf("parseCreateArgs() = %q %d %v", path, rowSize, columns)
	}
	if columns[1].Type != mdbreader.MONEY || !columns[1].Nullable || columns[0].Nullable {
		t.Errorf("columns = %+v", columns)
	}

	invalid := [][]string{
		{},
		{"a.mdbrows"},
		{"a.mdbrows", `[]`, "extra"},
		{"a.mdbrows", `not json`},
		{"a.mdbrows", `[{"name":"X","type":"Varchar"}]`},
		{"a.mdbrows", `[]`, "--row-size"},
		{"a.mdbrows", `[]`, "--row-size", "big"},
	}
	for _, args := range invalid {
		var inputErr *mdbreader.InvalidInputError
		if _, _, _, err := parseCreateArgs(args); !errors.As(err, &inputErr) {
			t.Errorf("parseCreateArgs(%v) error = %v, want InvalidInputError", args, err)
		}
	}
}

func TestParseInspectFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    inspectOptions
		wantErr bool
	}{
		{name: "defaults", args: nil, want: inspectOptions{limit: -1}},
		{name: "all flags", args: []string{"--offset", "2", "--limit", "3", "--print-header", "TRUE"}, want: inspectOptions{offset: 2, limit: 3, printHeader: true}},
		{name: "any order", args: []string{"--print-header", "0", "--offset", "5"}, want: inspectOptions{offset: 5, limit: -1}},
		{name: "negative limit prints all", args: []string{"--limit", "-1"}, want: inspectOptions{limit: -1}},
		{name: "unknown flag", args: []string{"--verbose"}, wantErr: true},
		{name: "missing value", args: []string{"--offset"}, wantErr: true},
		{name: "negative offset", args: []string{"--offset", "-1"}, wantErr: true},
		{name: "non-numeric limit", args: []string{"--limit", "ten"}, wantErr: true},
		{name: "bad bool", args: []string{"--print-header", "yes"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseInspectFlags(tt.args)
			if tt.wantErr {
				var inputErr *mdbreader.InvalidInputError
				if !errors.As(err, &inputErr) {
					t.Errorf("parseInspectFlags(%v) error = %v, want InvalidInputError", tt.args, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseInspectFlags(%v) unexpected error: %v", tt.args, err)
			}
			if got != tt.want {
				t.Errorf("parseInspectFlags(%v) = %+v, want %+v", tt.args, got, tt.want)
			}
		})
	}
}

func TestParseWatchFlags(t *testing.T) {
	from, err := parseWatchFlags([]string{"--from", "7"})
	if err != nil || from != 7 {
		t.Errorf("parseWatchFlags() = %d, %v; want 7", from, err)
	}
	for _, args := range [][]string{{"--from"}, {"--from", "-1"}, {"--from", "x"}, {"7"}} {
		if _, err := parseWatchFlags(args); err == nil {
			t.Errorf("parseWatchFlags(%v) expected error", args)
		}
	}
}

func formatterTestRow(t *testing.T) *mdbreader.Row {
	t.Helper()
	schema, err := mdbreader.NewSchema([]mdbreader.Column{
		{Name: "Active", Type: mdbreader.BOOLEAN},
		{Name: "Flags", Type: mdbreader.BYTE},
		{Name: "Small", Type: mdbreader.INT},
		{Name: "ID", Type: mdbreader.LONG_INT},
		{Name: "Big", Type: mdbreader.BIG_INT},
		{Name: "Weight", Type: mdbreader.FLOAT},
		{Name: "Ratio", Type: mdbreader.DOUBLE},
		{Name: "Price", Type: mdbreader.MONEY},
		{Name: "Created", Type: mdbreader.DATE_TIME},
		{Name: "Label", Type: mdbreader.TEXT},
		{Name: "Hash", Type: mdbreader.BINARY},
		{Name: "RowGuid", Type: mdbreader.REP_ID},
		{Name: "Missing", Type: mdbreader.DOUBLE, Nullable: true},
	})
	if err != nil {
		t.Fatalf("NewSchema() unexpected error: %v", err)
	}
	row, err := mdbreader.NewRow(schema, []mdbreader.Value{
		mdbreader.NewBoolean(true),
		mdbreader.NewByte(200),
		mdbreader.NewInt16(-5),
		mdbreader.NewInt32(42),
		mdbreader.NewInt64(1 << 40),
		mdbreader.NewSingle(0.1),
		mdbreader.NewDouble(2.5),
		mdbreader.NewCurrency(decimal.RequireFromString("19.99")),
		mdbreader.NewDateTime(time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)),
		mdbreader.NewText("hello"),
		mdbreader.NewBinary([]byte{0xDE, 0xAD}),
		mdbreader.NewGUID(uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")),
		mdbreader.NullDouble(),
	})
	if err != nil {
		t.Fatalf("NewRow() unexpected error: %v", err)
	}
	return row
}

func TestFormatters(t *testing.T) {
	row := formatterTestRow(t)

	tests := []struct {
		as     string
		column string
		want   string
	}{
		{"boolean", "Active", "true"},
		{"byte", "Flags", "200"},
		{"int16", "Small", "-5"},
		{"int32", "ID", "42"},
		{"int64", "Big", "1099511627776"},
		{"single", "Weight", "0.1"},
		{"double", "Weight", "0.10000000149011612"},
		{"double", "Ratio", "2.5"},
		{"decimal", "Price", "19.99"},
		{"datetime", "Created", "2024-03-01T12:00:00Z"},
		{"string", "Label", "hello"},
		{"bytes", "Hash", "dead"},
		{"guid", "RowGuid", "6ba7b810-9dad-11d1-80b4-00c04fd430c8"},
	}

	for _, tt := range tests {
		t.Run(tt.as+"/"+tt.column, func(t *testing.T) {
			got, err := formatters[tt.as](row, parseColumnRef(tt.column), false)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatters_NullAndMismatch(t *testing.T) {
	row := formatterTestRow(t)
	missing := parseColumnRef("Missing")

	var nullErr *mdbreader.NullValueError
	if _, err := formatters["double"](row, missing, false); !errors.As(err, &nullErr) {
		t.Errorf("double(Missing) error = %v, want NullValueError", err)
	}
	if got, err := formatters["double"](row, missing, true); err != nil || got != "NULL" {
		t.Errorf("double(Missing, nullable) = %q, %v; want NULL", got, err)
	}

	var castErr *mdbreader.InvalidCastError
	if _, err := formatters["int64"](row, parseColumnRef("3"), false); !errors.As(err, &castErr) {
		t.Errorf("int64(3) error = %v, want InvalidCastError", err)
	}
	if _, err := formatters["single"](row, parseColumnRef("Ratio"), true); !errors.As(err, &castErr) {
		t.Errorf("single(Ratio, nullable) error = %v, want InvalidCastError", err)
	}

	var rangeErr *mdbreader.IndexOutOfRangeError
	if _, err := formatters["int32"](row, parseColumnRef("-1"), false); !errors.As(err, &rangeErr) {
		t.Errorf("int32(-1) error = %v, want IndexOutOfRangeError", err)
	}
	var unknownErr *mdbreader.UnknownColumnError
	if _, err := formatters["int32"](row, parseColumnRef("id"), false); !errors.As(err, &unknownErr) {
		t.Errorf("int32(id) error = %v, want UnknownColumnError", err)
	}
}

func TestFormatRowLine(t *testing.T) {
	schema, err := mdbreader.NewSchema([]mdbreader.Column{
		{Name: "ID", Type: mdbreader.LONG_INT},
		{Name: "Label", Type: mdbreader.MEMO, Nullable: true},
		{Name: "Note", Type: mdbreader.TEXT, Nullable: true},
	})
	if err != nil {
		t.Fatalf("NewSchema() unexpected error: %v", err)
	}
	row, err := mdbreader.NewRow(schema, []mdbreader.Value{
		mdbreader.NewInt32(9),
		mdbreader.NewMemo("a\tb\nc"),
		mdbreader.NullText(),
	})
	if err != nil {
		t.Fatalf("NewRow() unexpected error: %v", err)
	}

	want := "4\t9\ta\\tb\\nc\tNULL"
	if got := formatRowLine(4, row); got != want {
		t.Errorf("formatRowLine() = %q, want %q", got, want)
	}
}

func TestFormatters_NumericColumnName(t *testing.T) {
	schema, err := mdbreader.NewSchema([]mdbreader.Column{
		{Name: "2024", Type: mdbreader.LONG_INT},
		{Name: "0", Type: mdbreader.TEXT},
		{Name: "Total", Type: mdbreader.LONG_INT},
	})
	if err != nil {
		t.Fatalf("NewSchema() unexpected error: %v", err)
	}
	row, err := mdbreader.NewRow(schema, []mdbreader.Value{
		mdbreader.NewInt32(11),
		mdbreader.NewText("zero"),
		mdbreader.NewInt32(33),
	})
	if err != nil {
		t.Fatalf("NewRow() unexpected error: %v", err)
	}

	tests := []struct {
		name   string
		column string
		as     string
		want   string
	}{
		{name: "all-digit name", column: "2024", as: "int32", want: "11"},
		{name: "name wins over position", column: "0", as: "string", want: "zero"},
		{name: "position without matching name", column: "2", as: "int32", want: "33"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := formatters[tt.as](row, parseColumnRef(tt.column), false)
			if err != nil {
				t.Fatalf("formatters[%q](%q) unexpected error: %v", tt.as, tt.column, err)
			}
			if got != tt.want {
				t.Errorf("formatters[%q](%q) = %q, want %q", tt.as, tt.column, got, tt.want)
			}
		})
	}
}

func TestFormatError(t *testing.T) {
	err := mdbreader.NewInvalidInputError("missing required flag: --path", nil)
	want := "Error: invalid_input: missing required flag: --path"
	if got := formatError(err); got != want {
		t.Errorf("formatError() = %q, want %q", got, want)
	}

	var buf bytes.Buffer
	writeError(&buf, err)
	if buf.String() != want+"\n" {
		t.Errorf("writeError() wrote %q, want %q", buf.String(), want+"\n")
	}
}
