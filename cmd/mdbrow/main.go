package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/susu-dot-dev/mdbreader/pkg/mdbreader"
)

// globalFlags represents parsed global flags from os.Args
type globalFlags struct {
	path       string   // Row file path (required for all commands except create)
	subcommand string   // The CLI subcommand to execute
	args       []string // Remaining positional arguments for the subcommand
}

// parseGlobalFlags extracts --path and the subcommand from os.Args.
// --path can appear before or after the subcommand.
func parseGlobalFlags(osArgs []string) (*globalFlags, error) {
	flags := &globalFlags{}
	seenPath := false

	i := 1 // Skip program name (os.Args[0])
	for i < len(osArgs) {
		arg := osArgs[i]

		if arg == "--path" {
			if seenPath {
				return nil, mdbreader.NewInvalidInputError("duplicate flag: --path", nil)
			}
			if i+1 >= len(osArgs) {
				return nil, mdbreader.NewInvalidInputError("--path requires a value", nil)
			}
			flags.path = osArgs[i+1]
			seenPath = true
			i += 2
			continue
		}

		// If not a flag and subcommand is empty, this is the subcommand
		if !strings.HasPrefix(arg, "--") && flags.subcommand == "" {
			flags.subcommand = arg
			i++
			continue
		}

		// Otherwise, this is an argument for the subcommand
		flags.args = append(flags.args, arg)
		i++
	}

	if flags.subcommand == "" {
		return nil, mdbreader.NewInvalidInputError("missing subcommand", nil)
	}

	return flags, nil
}

// main is the CLI entry point. Routes to subcommand handlers.
// Follows Unix conventions: silent success, errors to stderr, exit codes 0/1.
func main() {
	if len(os.Args) >= 2 && (os.Args[1] == "version" || os.Args[1] == "--version") {
		handleVersion()
	}

	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: mdbrow <command> [arguments]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Commands:")
		fmt.Fprintln(os.Stderr, "  create <path> <schema-json> [--row-size N]              - Create a row file")
		fmt.Fprintln(os.Stderr, "  [--path <file>] add <values-json>                       - Append a row")
		fmt.Fprintln(os.Stderr, "  [--path <file>] get <row> <column> <as> [--nullable]    - Read one field as a type")
		fmt.Fprintln(os.Stderr, "  [--path <file>] inspect [--offset N] [--limit N] [--print-header BOOL] - Display rows")
		fmt.Fprintln(os.Stderr, "  [--path <file>] watch [--from N]                        - Print rows as they are appended")
		fmt.Fprintln(os.Stderr, "  [--path <file>] verify                                  - Verify file integrity")
		fmt.Fprintln(os.Stderr, "  version                                                 - Display version information")
		os.Exit(exitFailure)
	}

	// 'create' takes the path positionally
	if os.Args[1] == "create" {
		handleCreate(os.Args[2:])
		return
	}

	flags, err := parseGlobalFlags(os.Args)
	if err != nil {
		printError(err)
	}

	if flags.path == "" {
		printError(mdbreader.NewInvalidInputError("missing required flag: --path", nil))
	}

	switch flags.subcommand {
	case "add":
		handleAdd(flags.path, flags.args)
	case "get":
		handleGet(flags.path, flags.args)
	case "inspect":
		handleInspect(flags.path, flags.args)
	case "watch":
		handleWatch(flags.path, flags.args)
	case "verify":
		handleVerify(flags.path, flags.args)
	default:
		printError(mdbreader.NewInvalidInputError(fmt.Sprintf("unknown command: %s", flags.subcommand), nil))
	}
}

// handleVersion implements the 'version' command and '--version' flag.
func handleVersion() {
	fmt.Printf("mdbrow %s\n", Version)
	os.Exit(0)
}

// parseCreateArgs parses "<path> <schema-json> [--row-size N]".
func parseCreateArgs(args []string) (path string, columns []mdbreader.Column, rowSize int, err error) {
	var positional []string
	for i := 0; i < len(args); i++ {
		if args[i] == "--row-size" {
			if i+1 >= len(args) {
				return "", nil, 0, mdbreader.NewInvalidInputError("--row-size requires a value", nil)
			}
			rowSize, err = strconv.Atoi(args[i+1])
			if err != nil {
				return "", nil, 0, mdbreader.NewInvalidInputError("--row-size must be a number", err)
			}
			i++
			continue
		}
		positional = append(positional, args[i])
	}

	if len(positional) < 1 {
		return "", nil, 0, mdbreader.NewInvalidInputError("missing required argument: path", nil)
	}
	if len(positional) < 2 {
		return "", nil, 0, mdbreader.NewInvalidInputError("missing required argument: schema", nil)
	}
	if len(positional) > 2 {
		return "", nil, 0, mdbreader.NewInvalidInputError("too many arguments for create command", nil)
	}

	if err := json.Unmarshal([]byte(positional[1]), &columns); err != nil {
		return "", nil, 0, mdbreader.NewInvalidInputError("invalid schema JSON", err)
	}
	return positional[0], columns, rowSize, nil
}

// handleCreate implements the 'create' command.
func handleCreate(args []string) {
	path, columns, rowSize, err := parseCreateArgs(args)
	if err != nil {
		printError(err)
	}

	if err := mdbreader.CreateFile(mdbreader.NewCreateConfig(path, rowSize, columns)); err != nil {
		printError(err)
	}

	os.Exit(0)
}

// handleAdd implements the 'add' command.
// Appends one row given as a JSON array of values in column order.
func handleAdd(path string, args []string) {
	if len(args) < 1 {
		printError(mdbreader.NewInvalidInputError("missing required argument: values", nil))
	}
	if len(args) > 1 {
		printError(mdbreader.NewInvalidInputError("too many arguments for add command", nil))
	}

	w, err := mdbreader.OpenWriter(path)
	if err != nil {
		printError(err)
	}
	defer func() { _ = w.Close() }() // Error ignored - exit on errors

	row, err := mdbreader.ParseRowJSON(w.Schema(), []byte(args[0]))
	if err != nil {
		printError(err)
	}

	if err := w.Append(row); err != nil {
		printError(err)
	}
	if err := w.Close(); err != nil {
		printError(err)
	}

	os.Exit(0)
}

// handleGet implements the 'get' command.
// Prints one field read through the typed getter named by <as>.
func handleGet(path string, args []string) {
	req, err := parseGetArgs(args)
	if err != nil {
		printError(err)
	}

	r, err := mdbreader.OpenFile(path)
	if err != nil {
		printError(err)
	}
	defer func() { _ = r.Close() }() // Error ignored - exit on errors

	row, err := r.ReadRow(req.index)
	if err != nil {
		printError(err)
	}

	out, err := req.format(row, req.column, req.nullable)
	if err != nil {
		printError(err)
	}

	fmt.Println(out)
	os.Exit(0)
}

// handleInspect implements the 'inspect' command.
// Displays the file contents in tab-separated format, one line per row.
func handleInspect(path string, args []string) {
	opts, err := parseInspectFlags(args)
	if err != nil {
		printError(err)
	}

	r, err := mdbreader.OpenFile(path)
	if err != nil {
		printError(err)
	}
	defer func() { _ = r.Close() }()

	totalRows := r.Count()

	if opts.printHeader {
		printHeaderTable(r.Schema(), r.RowSize(), totalRows)
	}

	printRowTableHeader(r.Schema())

	var endIndex int64
	if opts.limit < 0 {
		endIndex = totalRows
	} else {
		endIndex = min(opts.offset+opts.limit, totalRows)
	}

	hasErrors := false
	for index := opts.offset; index < endIndex; index++ {
		row, err := r.ReadRow(index)
		if err != nil {
			// Keep going so every readable row is still shown
			hasErrors = true
			fmt.Printf("%d\terror\t%s\n", index, err.Error())
			continue
		}
		printInspectRow(index, row)
	}

	if hasErrors {
		os.Exit(exitFailure)
	}
	os.Exit(0)
}

// printHeaderTable prints the file header and the schema columns
func printHeaderTable(schema *mdbreader.Schema, rowSize int, rowCount int64) {
	fmt.Printf("Row Size\tRows\tColumns\n")
	fmt.Printf("%d\t%d\t%d\n", rowSize, rowCount, schema.Len())
	fmt.Println()
	fmt.Printf("position\tname\ttype\tnullable\n")
	for i, col := range schema.Columns() {
		fmt.Printf("%d\t%s\t%s\t%t\n", i, col.Name, col.Type, col.Nullable)
	}
	fmt.Println()
}

// printRowTableHeader prints "index" followed by the column names
func printRowTableHeader(schema *mdbreader.Schema) {
	names := []string{"index"}
	for _, col := range schema.Columns() {
		names = append(names, escapeCell(col.Name))
	}
	fmt.Println(strings.Join(names, "\t"))
}

func printInspectRow(index int64, row *mdbreader.Row) {
	fmt.Println(formatRowLine(index, row))
}

// formatRowLine renders a row as index followed by each cell's String form.
func formatRowLine(index int64, row *mdbreader.Row) string {
	fields := []string{strconv.FormatInt(index, 10)}
	for i := 0; i < row.Len(); i++ {
		v, err := row.GetFieldValue(i)
		if err != nil {
			fields = append(fields, "")
			continue
		}
		fields = append(fields, escapeCell(v.String()))
	}
	return strings.Join(fields, "\t")
}

var cellEscaper = strings.NewReplacer("\\", `\\`, "\t", `\t`, "\n", `\n`, "\r", `\r`)

// escapeCell keeps TSV output one line per row
func escapeCell(s string) string {
	return cellEscaper.Replace(s)
}

// handleVerify implements the 'verify' command.
// Silent success when every row is valid.
func handleVerify(path string, args []string) {
	if len(args) > 0 {
		printError(mdbreader.NewInvalidInputError("too many arguments for verify command", nil))
	}
	if err := mdbreader.Verify(path); err != nil {
		printError(err)
	}
	os.Exit(0)
}

// handleWatch implements the 'watch' command.
// Prints existing rows, then each appended row, until interrupted.
func handleWatch(path string, args []string) {
	from, err := parseWatchFlags(args)
	if err != nil {
		printError(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	watchErrs := make(chan error, 1)
	onRow := func(index int64, row *mdbreader.Row) error {
		printInspectRow(index, row)
		return nil
	}
	onError := func(err error) {
		select {
		case watchErrs <- err:
		default:
		}
	}

	w, err := mdbreader.Watch(path, onRow, onError, mdbreader.WatchOptions{StartIndex: from})
	if err != nil {
		printError(err)
	}

	select {
	case <-ctx.Done():
		if err := w.Close(); err != nil {
			printError(err)
		}
		os.Exit(0)
	case err := <-watchErrs:
		_ = w.Close()
		printError(err)
	}
}

