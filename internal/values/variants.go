package values

import (
	"bytes"
	"encoding/hex"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/susu-dot-dev/mdbreader/pkg/types"
)

// BooleanValue holds a Boolean (Yes/No) cell.
type BooleanValue struct {
	cell[bool]
}

// NewBoolean returns a Boolean cell holding v.
func NewBoolean(v bool) BooleanValue {
	return BooleanValue{cell[bool]{kind: types.BOOLEAN, v: v}}
}

// NullBoolean returns a null Boolean cell.
func NullBoolean() BooleanValue {
	return BooleanValue{cell[bool]{kind: types.BOOLEAN, null: true}}
}

// Value returns the payload; false for null cells.
func (b BooleanValue) Value() bool {
	return b.v
}

// ByteValue holds an unsigned 8-bit Byte cell.
type ByteValue struct {
	cell[uint8]
}

// NewByte returns a Byte cell holding v.
func NewByte(v uint8) ByteValue {
	return ByteValue{cell[uint8]{kind: types.BYTE, v: v}}
}

// NullByte returns a null Byte cell.
func NullByte() ByteValue {
	return ByteValue{cell[uint8]{kind: types.BYTE, null: true}}
}

// Value returns the payload; 0 for null cells.
func (b ByteValue) Value() uint8 {
	return b.v
}

// Int16Value holds an Int cell.
type Int16Value struct {
	cell[int16]
}

// NewInt16 returns a Int cell holding v.
func NewInt16(v int16) Int16Value {
	return Int16Value{cell[int16]{kind: types.INT, v: v}}
}

// NullInt16 returns a null Int cell.
func NullInt16() Int16Value {
	return Int16Value{cell[int16]{kind: types.INT, null: true}}
}

// Value returns the payload; 0 for null cells.
func (i Int16Value) Value() int16 {
	return i.v
}

// Int32Value holds a LongInt cell.
type Int32Value struct {
	cell[int32]
}

// NewInt32 returns a LongInt cell holding v.
func NewInt32(v int32) Int32Value {
	return Int32Value{cell[int32]{kind: types.LONG_INT, v: v}}
}

// NullInt32 returns a null LongInt cell.
func NullInt32() Int32Value {
	return Int32Value{cell[int32]{kind: types.LONG_INT, null: true}}
}

// Value returns the payload; 0 for null cells.
func (i Int32Value) Value() int32 {
	return i.v
}

// Int64Value holds a BigInt cell.
type Int64Value struct {
	cell[int64]
}

// NewInt64 returns a BigInt cell holding v.
func NewInt64(v int64) Int64Value {
	return Int64Value{cell[int64]{kind: types.BIG_INT, v: v}}
}

// NullInt64 returns a null BigInt cell.
func NullInt64() Int64Value {
	return Int64Value{cell[int64]{kind: types.BIG_INT, null: true}}
}

// Value returns the payload; 0 for null cells.
func (i Int64Value) Value() int64 {
	return i.v
}

// SingleValue holds a single precision Float cell.
type SingleValue struct {
	cell[float32]
}

// NewSingle returns a Float cell holding v.
func NewSingle(v float32) SingleValue {
	return SingleValue{cell[float32]{kind: types.FLOAT, v: v}}
}

// NullSingle returns a null Float cell.
func NullSingle() SingleValue {
	return SingleValue{cell[float32]{kind: types.FLOAT, null: true}}
}

// Value returns the payload; 0 for null cells.
func (s SingleValue) Value() float32 {
	return s.v
}

// DoubleValue holds a double precision cell.
type DoubleValue struct {
	cell[float64]
}

// NewDouble returns a Double cell holding v.
func NewDouble(v float64) DoubleValue {
	return DoubleValue{cell[float64]{kind: types.DOUBLE, v: v}}
}

// NullDouble returns a null Double cell.
func NullDouble() DoubleValue {
	return DoubleValue{cell[float64]{kind: types.DOUBLE, null: true}}
}

// Value returns the payload; 0 for null cells.
func (d DoubleValue) Value() float64 {
	return d.v
}

// DecimalValue holds a Money or Numeric cell.
type DecimalValue struct {
	cell[decimal.Decimal]
}

// NewCurrency creates a Money cell.
func NewCurrency(v decimal.Decimal) DecimalValue {
	return DecimalValue{cell[decimal.Decimal]{kind: types.MONEY, v: v}}
}

// CurrencyFromScaled creates a Money cell from the on-disk integer, which
// stores the amount multiplied by 10^4.
func CurrencyFromScaled(raw int64) DecimalValue {
	return NewCurrency(decimal.New(raw, -4))
}

// NullCurrency returns a null Money cell.
func NullCurrency() DecimalValue {
	return DecimalValue{cell[decimal.Decimal]{kind: types.MONEY, null: true}}
}

// NewNumeric creates a Numeric cell.
func NewNumeric(v decimal.Decimal) DecimalValue {
	return DecimalValue{cell[decimal.Decimal]{kind: types.NUMERIC, v: v}}
}

// NullNumeric returns a null Numeric cell.
func NullNumeric() DecimalValue {
	return DecimalValue{cell[decimal.Decimal]{kind: types.NUMERIC, null: true}}
}

// Value returns the payload; zero for null cells.
func (d DecimalValue) Value() decimal.Decimal {
	return d.v
}

// String formats the decimal without exponent.
func (d DecimalValue) String() string {
	if d.null {
		return "NULL"
	}
	return d.v.String()
}

// DateTimeValue holds a DateTime cell.
type DateTimeValue struct {
	cell[time.Time]
}

// NewDateTime returns a DateTime cell holding v.
func NewDateTime(v time.Time) DateTimeValue {
	return DateTimeValue{cell[time.Time]{kind: types.DATE_TIME, v: v}}
}

// NullDateTime returns a null DateTime cell.
func NullDateTime() DateTimeValue {
	return DateTimeValue{cell[time.Time]{kind: types.DATE_TIME, null: true}}
}

// Value returns the payload; the zero time for null cells.
func (d DateTimeValue) Value() time.Time {
	return d.v
}

// String formats the time as RFC 3339 with nanoseconds.
func (d DateTimeValue) String() string {
	if d.null {
		return "NULL"
	}
	return d.v.Format(time.RFC3339Nano)
}

// TextValue holds a Text or Memo cell.
type TextValue struct {
	cell[string]
}

// NewText returns a Text cell holding v.
func NewText(v string) TextValue {
	return TextValue{cell[string]{kind: types.TEXT, v: v}}
}

// NullText returns a null Text cell.
func NullText() TextValue {
	return TextValue{cell[string]{kind: types.TEXT, null: true}}
}

// NewMemo returns a Memo cell holding v.
func NewMemo(v string) TextValue {
	return TextValue{cell[string]{kind: types.MEMO, v: v}}
}

// NullMemo returns a null Memo cell.
func NullMemo() TextValue {
	return TextValue{cell[string]{kind: types.MEMO, null: true}}
}

// Value returns the payload; "" for null cells.
func (t TextValue) Value() string {
	return t.v
}

// BinaryValue holds a Binary or OLE cell. The payload is copied on the way in
// and on the way out so the cell stays immutable.
type BinaryValue struct {
	cell[[]byte]
}

// NewBinary returns a Binary cell holding v.
func NewBinary(v []byte) BinaryValue {
	return BinaryValue{cell[[]byte]{kind: types.BINARY, v: bytes.Clone(v)}}
}

// NullBinary returns a null Binary cell.
func NullBinary() BinaryValue {
	return BinaryValue{cell[[]byte]{kind: types.BINARY, null: true}}
}

// NewOLE returns a OLE cell holding v.
func NewOLE(v []byte) BinaryValue {
	return BinaryValue{cell[[]byte]{kind: types.OLE, v: bytes.Clone(v)}}
}

// NullOLE returns a null OLE cell.
func NullOLE() BinaryValue {
	return BinaryValue{cell[[]byte]{kind: types.OLE, null: true}}
}

// Value returns the payload; nil for null cells.
func (b BinaryValue) Value() []byte {
	return bytes.Clone(b.v)
}

// String renders the bytes as 0x-prefixed lowercase hex.
func (b BinaryValue) String() string {
	if b.null {
		return "NULL"
	}
	return "0x" + hex.EncodeToString(b.v)
}

func (b BinaryValue) payload() any {
	return bytes.Clone(b.v)
}

// GUIDValue holds a RepID (replication id) cell.
type GUIDValue struct {
	cell[uuid.UUID]
}

// NewGUID returns a RepID cell holding v.
func NewGUID(v uuid.UUID) GUIDValue {
	return GUIDValue{cell[uuid.UUID]{kind: types.REP_ID, v: v}}
}

// NullGUID returns a null RepID cell.
func NullGUID() GUIDValue {
	return GUIDValue{cell[uuid.UUID]{kind: types.REP_ID, null: true}}
}

// Value returns the payload; uuid.Nil for null cells.
func (g GUIDValue) Value() uuid.UUID {
	return g.v
}
