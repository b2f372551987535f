package rows

// Integer accessors. Each reads exactly one storage kind:
// Byte→uint8, Int→int16, LongInt→int32, BigInt→int64. Integers are never widened.

// GetByte reads the field at position as an uint8. The column must be Byte.
func (r *Row) GetByte(position int) (uint8, error) {
	return Get[uint8](r, position)
}

// GetByteByName is GetByte for the named field.
func (r *Row) GetByteByName(name string) (uint8, error) {
	return GetByName[uint8](r, name)
}

// GetNullableByte is GetByte, returning nil for a null field.
func (r *Row) GetNullableByte(position int) (*uint8, error) {
	return GetNullable[uint8](r, position)
}

// GetNullableByteByName is GetNullableByte for the named field.
func (r *Row) GetNullableByteByName(name string) (*uint8, error) {
	return GetNullableByName[uint8](r, name)
}

// GetInt16 reads the field at position as an int16. The column must be Int.
func (r *Row) GetInt16(position int) (int16, error) {
	return Get[int16](r, position)
}

// GetInt16ByName is GetInt16 for the named field.
func (r *Row) GetInt16ByName(name string) (int16, error) {
	return GetByName[int16](r, name)
}

// GetNullableInt16 is GetInt16, returning nil for a null field.
func (r *Row) GetNullableInt16(position int) (*int16, error) {
	return GetNullable[int16](r, position)
}

// GetNullableInt16ByName is GetNullableInt16 for the named field.
func (r *Row) GetNullableInt16ByName(name string) (*int16, error) {
	return GetNullableByName[int16](r, name)
}

// GetInt32 reads the field at position as an int32. The column must be LongInt.
func (r *Row) GetInt32(position int) (int32, error) {
	return Get[int32](r, position)
}

// GetInt32ByName is GetInt32 for the named field.
func (r *Row) GetInt32ByName(name string) (int32, error) {
	return GetByName[int32](r, name)
}

// GetNullableInt32 is GetInt32, returning nil for a null field.
func (r *Row) GetNullableInt32(position int) (*int32, error) {
	return GetNullable[int32](r, position)
}

// GetNullableInt32ByName is GetNullableInt32 for the named field.
func (r *Row) GetNullableInt32ByName(name string) (*int32, error) {
	return GetNullableByName[int32](r, name)
}

// GetInt64 reads the field at position as an int64. The column must be BigInt.
func (r *Row) GetInt64(position int) (int64, error) {
	return Get[int64](r, position)
}

// GetInt64ByName is GetInt64 for the named field.
func (r *Row) GetInt64ByName(name string) (int64, error) {
	return GetByName[int64](r, name)
}

// GetNullableInt64 is GetInt64, returning nil for a null field.
func (r *Row) GetNullableInt64(position int) (*int64, error) {
	return GetNullable[int64](r, position)
}

// GetNullableInt64ByName is GetNullableInt64 for the named field.
func (r *Row) GetNullableInt64ByName(name string) (*int64, error) {
	return GetNullableByName[int64](r, name)
}
