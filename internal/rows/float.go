package rows

// GetDouble reads the field at position as a float64.
//
// No conversions are performed except one: the column must be Double or
// Float (single precision, widened exactly). Any other kind fails with
// InvalidCastError. A null field fails with NullValueError; call IsNull or
// GetNullableDouble for nullable columns.
func (r *Row) GetDouble(position int) (float64, error) {
	return Get[float64](r, position)
}

// GetDoubleByName reads the named field (case-sensitive) as a float64.
// Same rules as GetDouble.
func (r *Row) GetDoubleByName(name string) (float64, error) {
	return GetByName[float64](r, name)
}

// GetNullableDouble reads the field at position as a float64, or nil when it
// is null. The column must be Double or Float.
func (r *Row) GetNullableDouble(position int) (*float64, error) {
	return GetNullable[float64](r, position)
}

// GetNullableDoubleByName reads the named field as a float64, or nil when it is null.
func (r *Row) GetNullableDoubleByName(name string) (*float64, error) {
	return GetNullableByName[float64](r, name)
}

// GetSingle reads the field at position as a float32. The column must be
// Float; Double columns are not narrowed.
func (r *Row) GetSingle(position int) (float32, error) {
	return Get[float32](r, position)
}

// GetSingleByName is GetSingle for the named field.
func (r *Row) GetSingleByName(name string) (float32, error) {
	return GetByName[float32](r, name)
}

// GetNullableSingle is GetSingle, returning nil for a null field.
func (r *Row) GetNullableSingle(position int) (*float32, error) {
	return GetNullable[float32](r, position)
}

// GetNullableSingleByName is GetNullableSingle for the named field.
func (r *Row) GetNullableSingleByName(name string) (*float32, error) {
	return GetNullableByName[float32](r, name)
}
