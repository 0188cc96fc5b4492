// Command overlay-cli applies the overlay splice function to columnar batches
// read from tab-separated input.
//
// Each line provides one row: input, replacement, offset, and an optional
// length, separated by tabs. Any of the replacement, offset, and length
// arguments can instead be forced constant for the whole batch with a flag,
// in which case the corresponding column is dropped from the line format.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	overlay "github.com/semihalev/go-overlay"
)

var (
	flagUTF8        bool
	flagWorkers     int
	flagReplace     string
	flagOffset      int64
	flagLength      int64
	flagShowVersion bool
)

var rootCmd = &cobra.Command{
	Use:   "overlay-cli [file]",
	Short: "Apply the overlay string-splice function to tab-separated batches",
	Long: `overlay-cli reads rows of the form "input<TAB>replace<TAB>offset[<TAB>length]"
from a file (or stdin when no file is given), executes the overlay splice
function over the whole batch in one columnar pass, and prints one result
per row.

The offset is 1-based and may be negative to count from the end. The length
gives the number of units removed from the input; when omitted or negative it
defaults to the replacement's length. With --utf8, offsets and lengths are
measured in UTF-8 code points instead of bytes.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagShowVersion {
			fmt.Println(overlay.VersionString())
			return nil
		}

		in := os.Stdin
		if len(args) == 1 {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open input: %w", err)
			}
			defer f.Close()
			in = f
		}

		batch, err := readBatch(in, cmd.Flags().Changed("replace"),
			cmd.Flags().Changed("offset"), cmd.Flags().Changed("length"))
		if err != nil {
			return err
		}
		return runBatch(batch)
	},
}

func init() {
	rootCmd.Flags().BoolVar(&flagUTF8, "utf8", false, "measure offset and length in UTF-8 code points")
	rootCmd.Flags().IntVar(&flagWorkers, "workers", 1, "number of workers (0 = all CPUs)")
	rootCmd.Flags().StringVar(&flagReplace, "replace", "", "constant replacement for every row")
	rootCmd.Flags().Int64Var(&flagOffset, "offset", 0, "constant 1-based offset for every row")
	rootCmd.Flags().Int64Var(&flagLength, "length", 0, "constant removal length for every row")
	rootCmd.Flags().BoolVar(&flagShowVersion, "version", false, "print the library version and exit")
}

// batch holds the parsed argument columns for one execution.
type batch struct {
	inputs  *overlay.StringColumn
	replace overlay.StringArg
	offset  overlay.IntArg
	length  overlay.IntArg
	rows    int
}

// readBatch parses tab-separated rows into columns. Arguments forced constant
// by a flag are not consumed from the line.
func readBatch(f *os.File, constReplace, constOffset, constLength bool) (*batch, error) {
	inputs := overlay.NewStringColumn(0, 0)
	replaces := overlay.NewStringColumn(0, 0)
	offsets := overlay.NewInt64Column(0)
	lengths := overlay.NewInt64Column(0)
	sawLength := false

	want := 1
	if !constReplace {
		want++
	}
	if !constOffset {
		want++
	}

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 1<<20), 1<<20)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fields := strings.Split(scanner.Text(), "\t")
		if len(fields) < want {
			return nil, fmt.Errorf("line %d: expected at least %d fields, got %d", lineNo, want, len(fields))
		}

		next := 0
		inputs.AppendString(fields[next])
		next++

		if !constReplace {
			replaces.AppendString(fields[next])
			next++
		}
		if !constOffset {
			off, err := strconv.ParseInt(fields[next], 10, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: bad offset %q: %w", lineNo, fields[next], err)
			}
			offsets.Append(off)
			next++
		}
		if !constLength {
			// A row without a trailing length field falls back to the
			// replacement's length, same as a negative value.
			if next < len(fields) && fields[next] != "" {
				l, err := strconv.ParseInt(fields[next], 10, 64)
				if err != nil {
					return nil, fmt.Errorf("line %d: bad length %q: %w", lineNo, fields[next], err)
				}
				lengths.Append(l)
				sawLength = true
			} else {
				lengths.Append(-1)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	b := &batch{inputs: inputs, rows: inputs.Len()}

	if constReplace {
		b.replace = overlay.ConstString(flagReplace)
	} else {
		b.replace = overlay.ColumnString(replaces)
	}
	if constOffset {
		b.offset = overlay.ConstInt(flagOffset)
	} else {
		b.offset = overlay.ColumnInt(offsets)
	}
	switch {
	case constLength:
		b.length = overlay.ConstInt(flagLength)
	case sawLength:
		b.length = overlay.ColumnInt(lengths)
	default:
		b.length = overlay.NoLength()
	}
	return b, nil
}

// runBatch executes the splice over all rows and prints the results.
func runBatch(b *batch) error {
	mode := overlay.Bytes
	if flagUTF8 {
		mode = overlay.CodePoints
	}

	var (
		col *overlay.StringColumn
		err error
	)
	if flagWorkers == 1 {
		col, err = overlay.Exec(overlay.ColumnString(b.inputs), b.replace, b.offset, b.length, b.rows, mode)
	} else {
		col, err = overlay.ExecParallel(overlay.ColumnString(b.inputs), b.replace, b.offset, b.length, b.rows, mode, flagWorkers)
	}
	if err != nil {
		return err
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()
	cache := overlay.NewStringCache()
	for i := 0; i < col.Len(); i++ {
		fmt.Fprintln(out, col.RowStringCached(i, cache))
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
