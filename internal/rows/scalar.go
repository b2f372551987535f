package rows

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GetBoolean reads a Boolean field.
func (r *Row) GetBoolean(position int) (bool, error) {
	return Get[bool](r, position)
}

// GetBooleanByName is GetBoolean for the named field.
func (r *Row) GetBooleanByName(name string) (bool, error) {
	return GetByName[bool](r, name)
}

// GetNullableBoolean is GetBoolean, returning nil for a null field.
func (r *Row) GetNullableBoolean(position int) (*bool, error) {
	return GetNullable[bool](r, position)
}

// GetNullableBooleanByName is GetNullableBoolean for the named field.
func (r *Row) GetNullableBooleanByName(name string) (*bool, error) {
	return GetNullableByName[bool](r, name)
}

// GetDecimal reads a Money or Numeric field.
func (r *Row) GetDecimal(position int) (decimal.Decimal, error) {
	return Get[decimal.Decimal](r, position)
}

// GetDecimalByName is GetDecimal for the named field.
func (r *Row) GetDecimalByName(name string) (decimal.Decimal, error) {
	return GetByName[decimal.Decimal](r, name)
}

// GetNullableDecimal is GetDecimal, returning nil for a null field.
func (r *Row) GetNullableDecimal(position int) (*decimal.Decimal, error) {
	return GetNullable[decimal.Decimal](r, position)
}

// GetNullableDecimalByName is GetNullableDecimal for the named field.
func (r *Row) GetNullableDecimalByName(name string) (*decimal.Decimal, error) {
	return GetNullableByName[decimal.Decimal](r, name)
}

// GetDateTime reads a DateTime field.
func (r *Row) GetDateTime(position int) (time.Time, error) {
	return Get[time.Time](r, position)
}

// GetDateTimeByName is GetDateTime for the named field.
func (r *Row) GetDateTimeByName(name string) (time.Time, error) {
	return GetByName[time.Time](r, name)
}

// GetNullableDateTime is GetDateTime, returning nil for a null field.
func (r *Row) GetNullableDateTime(position int) (*time.Time, error) {
	return GetNullable[time.Time](r, position)
}

// GetNullableDateTimeByName is GetNullableDateTime for the named field.
func (r *Row) GetNullableDateTimeByName(name string) (*time.Time, error) {
	return GetNullableByName[time.Time](r, name)
}

// GetString reads a Text or Memo field.
func (r *Row) GetString(position int) (string, error) {
	return Get[string](r, position)
}

// GetStringByName is GetString for the named field.
func (r *Row) GetStringByName(name string) (string, error) {
	return GetByName[string](r, name)
}

// GetNullableString is GetString, returning nil for a null field.
func (r *Row) GetNullableString(position int) (*string, error) {
	return GetNullable[string](r, position)
}

// GetNullableStringByName is GetNullableString for the named field.
func (r *Row) GetNullableStringByName(name string) (*string, error) {
	return GetNullableByName[string](r, name)
}

// GetBytes reads a Binary or OLE field. The returned slice is a copy.
func (r *Row) GetBytes(position int) ([]byte, error) {
	return Get[[]byte](r, position)
}

// GetBytesByName is GetBytes for the named field.
func (r *Row) GetBytesByName(name string) ([]byte, error) {
	return GetByName[[]byte](r, name)
}

// GetNullableBytes is GetBytes, returning nil for a null field.
func (r *Row) GetNullableBytes(position int) (*[]byte, error) {
	return GetNullable[[]byte](r, position)
}

// GetNullableBytesByName is GetNullableBytes for the named field.
func (r *Row) GetNullableBytesByName(name string) (*[]byte, error) {
	return GetNullableByName[[]byte](r, name)
}

// GetGUID reads a RepID field.
func (r *Row) GetGUID(position int) (uuid.UUID, error) {
	return Get[uuid.UUID](r, position)
}

// GetGUIDByName is GetGUID for the named field.
func (r *Row) GetGUIDByName(name string) (uuid.UUID, error) {
	return GetByName[uuid.UUID](r, name)
}

// GetNullableGUID is GetGUID, returning nil for a null field.
func (r *Row) GetNullableGUID(position int) (*uuid.UUID, error) {
	return GetNullable[uuid.UUID](r, position)
}

// GetNullableGUIDByName is GetNullableGUID for the named field.
func (r *Row) GetNullableGUIDByName(name string) (*uuid.UUID, error) {
	return GetNullableByName[uuid.UUID](r, name)
}
