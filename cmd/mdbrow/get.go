package main

import (
	"encoding/hex"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/susu-dot-dev/mdbreader/pkg/mdbreader"
)

// columnRef addresses a field by position or by exact column name.
// Arguments that parse as integers are positions unless the row has a
// column with exactly that name, so a column named "2024" stays reachable.
type columnRef struct {
	position int
	name     string
	byName   bool
}

func parseColumnRef(arg string) columnRef {
	if pos, err := strconv.Atoi(arg); err == nil {
		return columnRef{position: pos, name: arg}
	}
	return columnRef{name: arg, byName: true}
}

// usesName reports whether ref resolves by name against row.
func (ref columnRef) usesName(row *mdbreader.Row) bool {
	if ref.byName {
		return true
	}
	_, err := row.Ordinal(ref.name)
	return err == nil
}

// fieldFormatter reads one field through a typed getter and renders it.
// With nullable set, a null field renders as "NULL" instead of failing.
type fieldFormatter func(row *mdbreader.Row, ref columnRef, nullable bool) (string, error)

// formatters maps each <as> argument of 'get' to its getter.
var formatters = map[string]fieldFormatter{
	"boolean":  formatField(strconv.FormatBool),
	"byte":     formatField(func(v uint8) string { return strconv.FormatUint(uint64(v), 10) }),
	"int16":    formatField(func(v int16) string { return strconv.FormatInt(int64(v), 10) }),
	"int32":    formatField(func(v int32) string { return strconv.FormatInt(int64(v), 10) }),
	"int64":    formatField(func(v int64) string { return strconv.FormatInt(v, 10) }),
	"single":   formatField(func(v float32) string { return strconv.FormatFloat(float64(v), 'g', -1, 32) }),
	"double":   formatField(func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }),
	"decimal":  formatField(decimal.Decimal.String),
	"datetime": formatField(func(v time.Time) string { return v.Format(time.RFC3339Nano) }),
	"string":   formatField(func(v string) string { return v }),
	"bytes":    formatField(hex.EncodeToString),
	"guid":     formatField(uuid.UUID.String),
}

func formatField[T mdbreader.Primitive](format func(T) string) fieldFormatter {
	return func(row *mdbreader.Row, ref columnRef, nullable bool) (string, error) {
		byName := ref.usesName(row)
		if nullable {
			var p *T
			var err error
			if byName {
				p, err = mdbreader.GetNullableByName[T](row, ref.name)
			} else {
				p, err = mdbreader.GetNullable[T](row, ref.position)
			}
			if err != nil {
				return "", err
			}
			if p == nil {
				return "NULL", nil
			}
			return format(*p), nil
		}

		var v T
		var err error
		if byName {
			v, err = mdbreader.GetByName[T](row, ref.name)
		} else {
			v, err = mdbreader.Get[T](row, ref.position)
		}
		if err != nil {
			return "", err
		}
		return format(v), nil
	}
}

// getRequest is a parsed 'get' invocation
type getRequest struct {
	index    int64
	column   columnRef
	format   fieldFormatter
	nullable bool
}

// parseGetArgs parses "<row> <column> <as> [--nullable]".
// <as> is matched case-insensitively.
func parseGetArgs(args []string) (*getRequest, error) {
	req := &getRequest{}
	var positional []string
	for _, arg := range args {
		if arg == "--nullable" {
			req.nullable = true
			continue
		}
		if strings.HasPrefix(arg, "--") {
			return nil, mdbreader.NewInvalidInputError(fmt.Sprintf("unknown flag: %s", arg), nil)
		}
		positional = append(positional, arg)
	}

	switch {
	case len(positional) < 1:
		return nil, mdbreader.NewInvalidInputError("missing required argument: row", nil)
	case len(positional) < 2:
		return nil, mdbreader.NewInvalidInputError("missing required argument: column", nil)
	case len(positional) < 3:
		return nil, mdbreader.NewInvalidInputError("missing required argument: as", nil)
	case len(positional) > 3:
		return nil, mdbreader.NewInvalidInputError("too many arguments for get command", nil)
	}

	index, err := strconv.ParseInt(positional[0], 10, 64)
	if err != nil {
		return nil, mdbreader.NewInvalidInputError("row must be a number", err)
	}
	req.index = index
	req.column = parseColumnRef(positional[1])

	format, ok := formatters[strings.ToLower(positional[2])]
	if !ok {
		return nil, mdbreader.NewInvalidInputError(
			fmt.Sprintf("invalid type: %s (valid: %s)", positional[2], strings.Join(formatterNames(), ", ")),
			nil,
		)
	}
	req.format = format
	return req, nil
}

func formatterNames() []string {
	names := make([]string, 0, len(formatters))
	for name := range formatters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
