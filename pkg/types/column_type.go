package types

import (
	"fmt"
	"strings"
)

// ColumnType is the declared storage kind of a column, using the Jet column type codes.
type ColumnType byte

// ColumnType constants
const (
	BOOLEAN   ColumnType = 0x01 // Yes/No
	BYTE      ColumnType = 0x02 // unsigned 8-bit integer
	INT       ColumnType = 0x03 // signed 16-bit integer
	LONG_INT  ColumnType = 0x04 // signed 32-bit integer
	MONEY     ColumnType = 0x05 // fixed-point currency, 4 decimal places
	FLOAT     ColumnType = 0x06 // single precision
	DOUBLE    ColumnType = 0x07 // double precision
	DATE_TIME ColumnType = 0x08
	BINARY    ColumnType = 0x09 // short binary
	TEXT      ColumnType = 0x0A
	OLE       ColumnType = 0x0B // long binary
	MEMO      ColumnType = 0x0C // long text
	REP_ID    ColumnType = 0x0F // replication id (GUID)
	NUMERIC   ColumnType = 0x10 // scaled decimal
	BIG_INT   ColumnType = 0x13 // signed 64-bit integer
)

var columnTypeNames = map[ColumnType]string{
	BOOLEAN:   "Boolean",
	BYTE:      "Byte",
	INT:       "Int",
	LONG_INT:  "LongInt",
	MONEY:     "Money",
	FLOAT:     "Float",
	DOUBLE:    "Double",
	DATE_TIME: "DateTime",
	BINARY:    "Binary",
	TEXT:      "Text",
	OLE:       "OLE",
	MEMO:      "Memo",
	REP_ID:    "RepID",
	NUMERIC:   "Numeric",
	BIG_INT:   "BigInt",
}

// String returns the kind name, or a hex code for unknown kinds.
func (ct ColumnType) String() string {
	if name, ok := columnTypeNames[ct]; ok {
		return name
	}
	return fmt.Sprintf("ColumnType(0x%02X)", byte(ct))
}

// Validate validates the ColumnType value
// This method is idempotent and can be called multiple times with the same result
func (ct ColumnType) Validate() error {
	if _, ok := columnTypeNames[ct]; !ok {
		return NewInvalidInputError(fmt.Sprintf("invalid column type: 0x%02X", byte(ct)), nil)
	}
	return nil
}

// ParseColumnType resolves a kind name case-insensitively.
func ParseColumnType(name string) (ColumnType, error) {
	normalized := strings.TrimSpace(name)
	for ct, n := range columnTypeNames {
		if strings.EqualFold(n, normalized) {
			return ct, nil
		}
	}
	return 0, NewInvalidInputError(fmt.Sprintf("unknown column type: %q", name), nil)
}

// MarshalText converts ColumnType to its kind name
func (ct ColumnType) MarshalText() ([]byte, error) {
	if err := ct.Validate(); err != nil {
		return nil, err
	}
	return []byte(ct.String()), nil
}

// UnmarshalText parses a kind name and validates the ColumnType
func (ct *ColumnType) UnmarshalText(text []byte) error {
	parsed, err := ParseColumnType(string(text))
	if err != nil {
		return err
	}
	*ct = parsed
	return nil
}
