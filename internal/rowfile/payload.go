package rowfile

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/susu-dot-dev/mdbreader/internal/rows"
	"github.com/susu-dot-dev/mdbreader/internal/values"
	"github.com/susu-dot-dev/mdbreader/pkg/types"
)

// schemaPayload is the JSON column list stored in the schema row.
type schemaPayload struct {
	Columns []rows.Column
}

func (sp *schemaPayload) MarshalText() ([]byte, error) {
	return json.Marshal(sp.Columns)
}

func (sp *schemaPayload) UnmarshalText(text []byte) error {
	return json.Unmarshal(text, &sp.Columns)
}

// cellJSON is the on-disk form of one cell: {"t":"Double","v":3.14} or {"t":"Text","n":true}.
type cellJSON struct {
	Type  types.ColumnType `json:"t"`
	Null  bool             `json:"n,omitempty"`
	Value json.RawMessage  `json:"v,omitempty"`
}

// dataPayload is the JSON cell array stored in a data row.
type dataPayload struct {
	Cells []values.Value
}

func (dp *dataPayload) MarshalText() ([]byte, error) {
	cells := make([]cellJSON, len(dp.Cells))
	for i, v := range dp.Cells {
		c, err := encodeCell(v)
		if err != nil {
			return nil, types.NewInvalidInputError(fmt.Sprintf("failed to encode cell %d", i), err)
		}
		cells[i] = c
	}
	return json.Marshal(cells)
}

func (dp *dataPayload) UnmarshalText(text []byte) error {
	var cells []cellJSON
	if err := json.Unmarshal(text, &cells); err != nil {
		return err
	}
	dp.Cells = make([]values.Value, len(cells))
	for i, c := range cells {
		v, err := decodeCell(c)
		if err != nil {
			return fmt.Errorf("cell %d: %w", i, err)
		}
		dp.Cells[i] = v
	}
	return nil
}

func encodeCell(v values.Value) (cellJSON, error) {
	if v == nil {
		return cellJSON{}, types.NewInvalidInputError("cell cannot be nil", nil)
	}
	c := cellJSON{Type: v.Kind(), Null: v.IsNull()}
	if c.Null {
		return c, nil
	}
	// float32 keeps 32-bit formatting, decimals are quoted strings, times are
	// RFC 3339 with nanoseconds, bytes are base64 and GUIDs are canonical strings.
	payload := values.Interface(v)
	switch f := payload.(type) {
	case float32:
		if name, ok := nonFiniteName(float64(f)); ok {
			payload = name
		}
	case float64:
		if name, ok := nonFiniteName(f); ok {
			payload = name
		}
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return cellJSON{}, err
	}
	c.Value = raw
	return c, nil
}

func decodeCell(c cellJSON) (values.Value, error) {
	if c.Null {
		return values.Null(c.Type)
	}
	if len(c.Value) == 0 {
		return nil, types.NewInvalidInputError(fmt.Sprintf("non-null %s cell has no value", c.Type), nil)
	}

	switch c.Type {
	case types.BOOLEAN:
		return decodeAs(c.Value, values.NewBoolean)
	case types.BYTE:
		return decodeAs(c.Value, values.NewByte)
	case types.INT:
		return decodeAs(c.Value, values.NewInt16)
	case types.LONG_INT:
		return decodeAs(c.Value, values.NewInt32)
	case types.BIG_INT:
		return decodeAs(c.Value, values.NewInt64)
	case types.FLOAT:
		return decodeFloat(c.Value, values.NewSingle)
	case types.DOUBLE:
		return decodeFloat(c.Value, values.NewDouble)
	case types.MONEY:
		return decodeAs(c.Value, values.NewCurrency)
	case types.NUMERIC:
		return decodeAs(c.Value, values.NewNumeric)
	case types.DATE_TIME:
		return decodeAs(c.Value, values.NewDateTime)
	case types.TEXT:
		return decodeAs(c.Value, values.NewText)
	case types.MEMO:
		return decodeAs(c.Value, values.NewMemo)
	case types.BINARY:
		return decodeAs(c.Value, values.NewBinary)
	case types.OLE:
		return decodeAs(c.Value, values.NewOLE)
	case types.REP_ID:
		return decodeAs(c.Value, values.NewGUID)
	default:
		return nil, types.NewInvalidInputError(fmt.Sprintf("unsupported cell type %s", c.Type), nil)
	}
}

// decodeAs unmarshals raw into P and wraps it with the variant constructor.
func decodeAs[P values.Primitive, V values.Value](raw json.RawMessage, build func(P) V) (values.Value, error) {
	var p P
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, err
	}
	return build(p), nil
}

// nonFiniteName returns the string stored for NaN and the infinities, which
// have no JSON number form.
func nonFiniteName(f float64) (string, bool) {
	switch {
	case math.IsNaN(f):
		return "NaN", true
	case math.IsInf(f, 1):
		return "+Inf", true
	case math.IsInf(f, -1):
		return "-Inf", true
	}
	return "", false
}

// decodeFloat accepts a JSON number or one of the non-finite names.
func decodeFloat[P float32 | float64, V values.Value](raw json.RawMessage, build func(P) V) (values.Value, error) {
	if len(raw) == 0 || raw[0] != '"' {
		return decodeAs(raw, build)
	}
	var name string
	if err := json.Unmarshal(raw, &name); err != nil {
		return nil, err
	}
	switch name {
	case "NaN":
		return build(P(math.NaN())), nil
	case "+Inf":
		return build(P(math.Inf(1))), nil
	case "-Inf":
		return build(P(math.Inf(-1))), nil
	}
	return nil, types.NewInvalidInputError(fmt.Sprintf("invalid float value %q", name), nil)
}

// ParseRowJSON builds a row from a JSON array holding one plain value per
// column, in schema order. JSON null produces a null cell; every other value
// uses the same encoding as the data row "v" field.
func ParseRowJSON(schema *rows.Schema, text []byte) (*rows.Row, error) {
	if schema == nil {
		return nil, types.NewInvalidInputError("schema cannot be nil", nil)
	}
	var raws []json.RawMessage
	if err := json.Unmarshal(text, &raws); err != nil {
		return nil, types.NewInvalidInputError("row must be a JSON array", err)
	}
	if len(raws) != schema.Len() {
		return nil, types.NewInvalidInputError(fmt.Sprintf("row has %d values, schema has %d columns", len(raws), schema.Len()), nil)
	}

	cells := make([]values.Value, len(raws))
	for i, raw := range raws {
		col, _ := schema.Column(i)
		c := cellJSON{Type: col.Type, Value: raw}
		if string(raw) == "null" {
			c = cellJSON{Type: col.Type, Null: true}
		}
		v, err := decodeCell(c)
		if err != nil {
			return nil, types.NewInvalidInputError(fmt.Sprintf("invalid value for column %q", col.Name), err)
		}
		cells[i] = v
	}
	return rows.NewRow(schema, cells)
}
