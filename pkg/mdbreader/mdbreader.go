// Package mdbreader is the public API for reading decoded desktop-database
// rows through typed getters.
//
// A Row holds one Value per column. Getters enforce the column's storage kind:
// no numeric widening, no text/number conversion, with one exception: a Float
// (single precision) column may be read as float64. Null cells fail the plain
// getters with NullValueError and read as nil through the Nullable getters.
//
//	row, _ := reader.ReadRow(0)
//	ratio, err := row.GetDouble(0)
//	count, err := mdbreader.GetNullableByName[int32](row, "Count")
package mdbreader

import (
	"github.com/susu-dot-dev/mdbreader/internal/rows"
	"github.com/susu-dot-dev/mdbreader/internal/values"
	"github.com/susu-dot-dev/mdbreader/pkg/types"
)

type (
	// Row is one decoded record: a Value per column plus the column names.
	Row = rows.Row
	// Schema is the ordered column list shared by the rows of one source.
	Schema = rows.Schema
	// Column describes one field: its name, storage kind and nullability.
	Column = rows.Column
)

type (
	// Value is a decoded cell. The concrete types below are its only implementations.
	Value = values.Value
	// Primitive lists the Go types a Value can be read as.
	Primitive = values.Primitive

	BooleanValue  = values.BooleanValue
	ByteValue     = values.ByteValue
	Int16Value    = values.Int16Value
	Int32Value    = values.Int32Value
	Int64Value    = values.Int64Value
	SingleValue   = values.SingleValue
	DoubleValue   = values.DoubleValue
	DecimalValue  = values.DecimalValue // Money and Numeric
	DateTimeValue = values.DateTimeValue
	TextValue     = values.TextValue   // Text and Memo
	BinaryValue   = values.BinaryValue // Binary and OLE
	GUIDValue     = values.GUIDValue   // RepID
)

// ColumnType is the storage kind of a column.
type ColumnType = types.ColumnType

const (
	BOOLEAN   = types.BOOLEAN
	BYTE      = types.BYTE
	INT       = types.INT
	LONG_INT  = types.LONG_INT
	MONEY     = types.MONEY
	FLOAT     = types.FLOAT
	DOUBLE    = types.DOUBLE
	DATE_TIME = types.DATE_TIME
	BINARY    = types.BINARY
	TEXT      = types.TEXT
	OLE       = types.OLE
	MEMO      = types.MEMO
	REP_ID    = types.REP_ID
	NUMERIC   = types.NUMERIC
	BIG_INT   = types.BIG_INT
)

// ParseColumnType resolves a kind name such as "Double" case-insensitively.
var ParseColumnType = types.ParseColumnType

// NewSchema validates columns and builds the name index.
var NewSchema = rows.NewSchema

// NewRow checks vals against schema and returns an immutable row.
var NewRow = rows.NewRow

// Value constructors
var (
	NewBoolean         = values.NewBoolean
	NullBoolean        = values.NullBoolean
	NewByte            = values.NewByte
	NullByte           = values.NullByte
	NewInt16           = values.NewInt16
	NullInt16          = values.NullInt16
	NewInt32           = values.NewInt32
	NullInt32          = values.NullInt32
	NewInt64           = values.NewInt64
	NullInt64          = values.NullInt64
	NewSingle          = values.NewSingle
	NullSingle         = values.NullSingle
	NewDouble          = values.NewDouble
	NullDouble         = values.NullDouble
	NewCurrency        = values.NewCurrency
	CurrencyFromScaled = values.CurrencyFromScaled
	NullCurrency       = values.NullCurrency
	NewNumeric         = values.NewNumeric
	NullNumeric        = values.NullNumeric
	NewDateTime        = values.NewDateTime
	NullDateTime       = values.NullDateTime
	NewText            = values.NewText
	NullText           = values.NullText
	NewMemo            = values.NewMemo
	NullMemo           = values.NullMemo
	NewBinary          = values.NewBinary
	NullBinary         = values.NullBinary
	NewOLE             = values.NewOLE
	NullOLE            = values.NullOLE
	NewGUID            = values.NewGUID
	NullGUID           = values.NullGUID
	Null               = values.Null
	FromOADate         = values.FromOADate
	ToOADate           = values.ToOADate
)

// Get reads the field at position as T. See rows.Get.
func Get[T Primitive](r *Row, position int) (T, error) {
	return rows.Get[T](r, position)
}

// GetByName reads the named field (case-sensitive) as T.
func GetByName[T Primitive](r *Row, name string) (T, error) {
	return rows.GetByName[T](r, name)
}

// GetNullable reads the field at position as T, or nil when it is null.
func GetNullable[T Primitive](r *Row, position int) (*T, error) {
	return rows.GetNullable[T](r, position)
}

// GetNullableByName reads the named field as T, or nil when it is null.
func GetNullableByName[T Primitive](r *Row, name string) (*T, error) {
	return rows.GetNullableByName[T](r, name)
}

// As narrows a single Value to T.
func As[T Primitive](v Value) (T, error) {
	return values.As[T](v)
}
