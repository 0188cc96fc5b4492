package overlay

import (
	"fmt"
	"testing"
)

// largeFixture builds a batch big enough to cross the parallel threshold,
// with varied row sizes, offsets, and lengths.
func largeFixture(rows int) (*StringColumn, *StringColumn, *Int64Column, *Int64Column) {
	inputs := NewStringColumn(rows, rows*16)
	replaces := NewStringColumn(rows, rows*8)
	offsets := NewInt64Column(rows)
	lengths := NewInt64Column(rows)

	words := []string{"", "a", "Hello, World!", "Spark SQL", "München", "αβγδε"}
	for i := 0; i < rows; i++ {
		inputs.AppendString(words[i%len(words)])
		replaces.AppendString(fmt.Sprintf("r%d", i%7))
		offsets.Append(int64(i%21 - 10))
		lengths.Append(int64(i%5 - 1))
	}
	return inputs, replaces, offsets, lengths
}

func TestExecParallelMatchesSequential(t *testing.T) {
	const rows = 10000
	inputs, replaces, offsets, lengths := largeFixture(rows)

	for _, mode := range []Mode{Bytes, CodePoints} {
		for _, workers := range []int{0, 2, 4, 7} {
			name := fmt.Sprintf("mode=%d/workers=%d", mode, workers)
			t.Run(name, func(t *testing.T) {
				seq, err := Exec(ColumnString(inputs), ColumnString(replaces),
					ColumnInt(offsets), ColumnInt(lengths), rows, mode)
				if err != nil {
					t.Fatalf("Exec failed: %v", err)
				}

				par, err := ExecParallel(ColumnString(inputs), ColumnString(replaces),
					ColumnInt(offsets), ColumnInt(lengths), rows, mode, workers)
				if err != nil {
					t.Fatalf("ExecParallel failed: %v", err)
				}

				if par.Len() != seq.Len() {
					t.Fatalf("got %d rows, want %d", par.Len(), seq.Len())
				}
				for i := 0; i < rows; i++ {
					if par.RowString(i) != seq.RowString(i) {
						t.Fatalf("row %d: parallel %q != sequential %q", i, par.RowString(i), seq.RowString(i))
					}
				}
			})
		}
	}
}

func TestExecParallelSmallBatchFallsBack(t *testing.T) {
	inputs := MakeStringColumn([]string{"Hello", "World"})

	col, err := ExecParallel(ColumnString(inputs), ConstString("X"), ConstInt(1), ConstInt(1), 2, Bytes, 8)
	if err != nil {
		t.Fatalf("ExecParallel failed: %v", err)
	}
	if got := col.RowString(0); got != "Xello" {
		t.Errorf("row 0 = %q, want %q", got, "Xello")
	}
	if got := col.RowString(1); got != "Xorld" {
		t.Errorf("row 1 = %q, want %q", got, "Xorld")
	}
}

func TestExecParallelConstantInput(t *testing.T) {
	const rows = 8192
	offsets := NewInt64Column(rows)
	for i := 0; i < rows; i++ {
		offsets.Append(int64(i%15 - 7))
	}

	seq, err := Exec(ConstString("Hello, World!"), ConstString("abc"),
		ColumnInt(offsets), NoLength(), rows, Bytes)
	if err != nil {
		t.Fatalf("Exec failed: %v", err)
	}
	par, err := ExecParallel(ConstString("Hello, World!"), ConstString("abc"),
		ColumnInt(offsets), NoLength(), rows, Bytes, 4)
	if err != nil {
		t.Fatalf("ExecParallel failed: %v", err)
	}

	for i := 0; i < rows; i++ {
		if par.RowString(i) != seq.RowString(i) {
			t.Fatalf("row %d: parallel %q != sequential %q", i, par.RowString(i), seq.RowString(i))
		}
	}
}

func TestExecParallelValidation(t *testing.T) {
	short := MakeStringColumn([]string{"one"})
	_, err := ExecParallel(ColumnString(short), ConstString("x"), ConstInt(1), NoLength(), 5000, Bytes, 4)
	if !IsError(err, ErrArgument) {
		t.Errorf("expected ErrArgument, got %v", err)
	}
}
