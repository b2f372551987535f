package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/susu-dot-dev/mdbreader/pkg/mdbreader"
)

// flagSetter stores the value that follows a flag.
type flagSetter func(value string) error

// parseFlags consumes "--flag value" pairs, dispatching each value to the
// setter registered for its flag. Unknown flags and missing values fail.
func parseFlags(args []string, setters map[string]flagSetter) error {
	for i := 0; i < len(args); i += 2 {
		set, ok := setters[args[i]]
		if !ok {
			return mdbreader.NewInvalidInputError(fmt.Sprintf("unknown flag: %s", args[i]), nil)
		}
		if i+1 >= len(args) {
			return mdbreader.NewInvalidInputError(fmt.Sprintf("%s requires a value", args[i]), nil)
		}
		if err := set(args[i+1]); err != nil {
			return err
		}
	}
	return nil
}

func int64Flag(name string, dst *int64, allowNegative bool) flagSetter {
	return func(value string) error {
		val, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return mdbreader.NewInvalidInputError(fmt.Sprintf("%s must be a number", name), err)
		}
		if val < 0 && !allowNegative {
			return mdbreader.NewInvalidInputError(fmt.Sprintf("%s cannot be negative", name), nil)
		}
		*dst = val
		return nil
	}
}

func boolFlag(name string, dst *bool) flagSetter {
	return func(value string) error {
		switch strings.ToLower(value) {
		case "true", "t", "1":
			*dst = true
		case "false", "f", "0":
			*dst = false
		default:
			return mdbreader.NewInvalidInputError(fmt.Sprintf("%s must be true or false", name), nil)
		}
		return nil
	}
}

// inspectOptions selects the rows and header printed by inspect.
// A negative limit prints every row from offset on.
type inspectOptions struct {
	offset      int64
	limit       int64
	printHeader bool
}

func parseInspectFlags(args []string) (inspectOptions, error) {
	opts := inspectOptions{limit: -1}
	err := parseFlags(args, map[string]flagSetter{
		"--offset":       int64Flag("--offset", &opts.offset, false),
		"--limit":        int64Flag("--limit", &opts.limit, true),
		"--print-header": boolFlag("--print-header", &opts.printHeader),
	})
	if err != nil {
		return inspectOptions{}, err
	}
	return opts, nil
}

// parseWatchFlags returns the first row index watch should print.
func parseWatchFlags(args []string) (int64, error) {
	var from int64
	if err := parseFlags(args, map[string]flagSetter{
		"--from": int64Flag("--from", &from, false),
	}); err != nil {
		return 0, err
	}
	return from, nil
}
