package overlay

// Mode selects the unit of measurement for offsets and lengths.
type Mode uint8

const (
	// Bytes measures offsets and lengths in bytes.
	Bytes Mode = iota
	// CodePoints measures offsets and lengths in UTF-8 code points. The input
	// is assumed to be valid UTF-8; malformed input yields an unspecified but
	// memory-safe result.
	CodePoints
)

// Exec splices every row of a batch: the region of input starting at the
// 1-based offset and spanning length units is replaced with the replacement
// string. input and replace may each be constant or per-row; offset and
// length may each be constant or per-row, and length may be absent entirely,
// in which case the removal length defaults to the replacement's length.
//
// The execution path is selected once per batch from the argument shapes so
// that values derived from constant arguments are computed once, not once per
// row. Behavior is identical regardless of which path runs.
func Exec(input, replace StringArg, offset, length IntArg, rows int, mode Mode) (*StringColumn, error) {
	if err := validateExecArgs(input, replace, offset, length, rows); err != nil {
		return nil, err
	}
	if rows == 0 {
		return NewStringColumn(0, 0), nil
	}

	buf := &resultBuffer{}
	buf.reserveRows(rows)
	buf.reserve(estimateOutputBytes(input, rows))

	execInto(buf, input, replace, offset, length, 0, rows, mode)
	return buf.toColumn(), nil
}

// validateExecArgs checks argument shapes against the row count. Value
// validation does not exist: offsets and lengths are clamped during
// execution, never rejected.
func validateExecArgs(input, replace StringArg, offset, length IntArg, rows int) error {
	if rows < 0 {
		return Errorf(ErrExec, "negative row count %d", rows)
	}
	if input.column != nil && input.column.Len() < rows {
		return Errorf(ErrArgument, "input column has %d rows, need %d", input.column.Len(), rows)
	}
	if replace.column != nil && replace.column.Len() < rows {
		return Errorf(ErrArgument, "replace column has %d rows, need %d", replace.column.Len(), rows)
	}
	if offset.kind == intAbsent {
		return NewError(ErrArgument, "offset argument is required")
	}
	if offset.kind == intColumn && offset.column.Len() < rows {
		return Errorf(ErrArgument, "offset column has %d rows, need %d", offset.column.Len(), rows)
	}
	if length.kind == intColumn && length.column.Len() < rows {
		return Errorf(ErrArgument, "length column has %d rows, need %d", length.column.Len(), rows)
	}
	return nil
}

// estimateOutputBytes produces a cheap pre-sizing estimate for the output
// buffer: input size times row count for a constant input, or the input
// column's total byte size otherwise. Exact per-row sizes are only known
// after offset and length resolution, so the buffer still grows as rows are
// appended.
func estimateOutputBytes(input StringArg, rows int) int {
	if input.column == nil {
		return (len(input.value) + 1) * rows
	}
	return input.column.TotalBytes()
}

// execInto runs rows [start, end) into buf. The four-way dispatch over the
// input and replacement shapes is mandatory; the offset and length constness
// is threaded into each variant so constant resolution hoists out of the row
// loop.
func execInto(buf *resultBuffer, input, replace StringArg, offset, length IntArg, start, end int, mode Mode) {
	// A constant negative length behaves as if the argument were absent for
	// every row; fold onto the absent-length path once for the whole batch.
	if length.kind == intConst && length.value < 0 {
		length = NoLength()
	}

	switch {
	case input.IsConst() && replace.IsConst():
		constantConstant(buf, input.value, replace.value, offset, length, start, end, mode)
	case input.IsConst():
		constantVector(buf, input.value, replace.column, offset, length, start, end, mode)
	case replace.IsConst():
		vectorConstant(buf, input.column, replace.value, offset, length, start, end, mode)
	default:
		vectorVector(buf, input.column, replace.column, offset, length, start, end, mode)
	}
}

// constantConstant handles a constant input and a constant replacement. Both
// unit sizes are computed once; with a constant offset and length the whole
// splice geometry is fixed before the loop.
func constantConstant(buf *resultBuffer, input, repl []byte, offset, length IntArg, start, end int, mode Mode) {
	inputUnits := sliceUnits(input, mode)
	replUnits := sliceUnits(repl, mode)

	validOffset := 0
	if offset.kind == intConst {
		validOffset = resolveOffset(offset.value, inputUnits)
	}

	removal := int64(replUnits)
	if length.kind == intConst {
		removal = length.value
	}

	for i := start; i < end; i++ {
		if offset.kind == intColumn {
			validOffset = resolveOffset(offset.column.values[i], inputUnits)
		}
		if length.kind == intColumn {
			if l := length.column.values[i]; l >= 0 {
				removal = l
			} else {
				removal = int64(replUnits)
			}
		}
		if mode == Bytes {
			spliceBytes(buf, input, repl, validOffset, removal)
		} else {
			spliceCodePoints(buf, input, repl, validOffset, removal, inputUnits)
		}
	}
}

// constantVector handles a constant input and a per-row replacement. The
// input unit size and a constant offset resolve once; the replacement's unit
// size is recomputed per row only when the removal length depends on it.
func constantVector(buf *resultBuffer, input []byte, replace *StringColumn, offset, length IntArg, start, end int, mode Mode) {
	inputUnits := sliceUnits(input, mode)

	validOffset := 0
	if offset.kind == intConst {
		validOffset = resolveOffset(offset.value, inputUnits)
	}

	var removal int64
	if length.kind == intConst {
		removal = length.value
	}

	for i := start; i < end; i++ {
		repl := replace.Row(i)
		if offset.kind == intColumn {
			validOffset = resolveOffset(offset.column.values[i], inputUnits)
		}
		switch length.kind {
		case intAbsent:
			removal = int64(sliceUnits(repl, mode))
		case intColumn:
			if l := length.column.values[i]; l >= 0 {
				removal = l
			} else {
				removal = int64(sliceUnits(repl, mode))
			}
		}
		if mode == Bytes {
			spliceBytes(buf, input, repl, validOffset, removal)
		} else {
			spliceCodePoints(buf, input, repl, validOffset, removal, inputUnits)
		}
	}
}

// vectorConstant handles a per-row input and a constant replacement. The
// replacement's unit size hoists out of the loop; the offset must resolve per
// row even when constant, since resolution depends on each row's input size.
func vectorConstant(buf *resultBuffer, input *StringColumn, repl []byte, offset, length IntArg, start, end int, mode Mode) {
	replUnits := sliceUnits(repl, mode)

	removal := int64(replUnits)
	if length.kind == intConst {
		removal = length.value
	}

	for i := start; i < end; i++ {
		in := input.Row(i)
		inputUnits := sliceUnits(in, mode)

		off := offset.value
		if offset.kind == intColumn {
			off = offset.column.values[i]
		}
		validOffset := resolveOffset(off, inputUnits)

		if length.kind == intColumn {
			if l := length.column.values[i]; l >= 0 {
				removal = l
			} else {
				removal = int64(replUnits)
			}
		}
		if mode == Bytes {
			spliceBytes(buf, in, repl, validOffset, removal)
		} else {
			spliceCodePoints(buf, in, repl, validOffset, removal, inputUnits)
		}
	}
}

// vectorVector handles per-row input and replacement; nothing hoists except a
// constant non-negative length.
func vectorVector(buf *resultBuffer, input, replace *StringColumn, offset, length IntArg, start, end int, mode Mode) {
	var removal int64
	if length.kind == intConst {
		removal = length.value
	}

	for i := start; i < end; i++ {
		in := input.Row(i)
		repl := replace.Row(i)
		inputUnits := sliceUnits(in, mode)

		off := offset.value
		if offset.kind == intColumn {
			off = offset.column.values[i]
		}
		validOffset := resolveOffset(off, inputUnits)

		switch length.kind {
		case intAbsent:
			removal = int64(sliceUnits(repl, mode))
		case intColumn:
			if l := length.column.values[i]; l >= 0 {
				removal = l
			} else {
				removal = int64(sliceUnits(repl, mode))
			}
		}
		if mode == Bytes {
			spliceBytes(buf, in, repl, validOffset, removal)
		} else {
			spliceCodePoints(buf, in, repl, validOffset, removal, inputUnits)
		}
	}
}

// spliceBytes writes prefix ++ replacement ++ suffix for one row in byte
// mode. A removal that would overrun the input's tail consumes the whole
// tail: the suffix is empty, never an error.
func spliceBytes(buf *resultBuffer, input, repl []byte, prefix int, removal int64) {
	suffix := 0
	if int64(prefix)+removal <= int64(len(input)) {
		suffix = len(input) - prefix - int(removal)
	}

	buf.appendBytes(input[:prefix])
	buf.appendBytes(repl)
	if suffix > 0 {
		buf.appendBytes(input[len(input)-suffix:])
	}
	buf.finishRow()
}

// spliceCodePoints writes prefix ++ replacement ++ suffix for one row in code
// point mode. prefix, removal, and inputUnits are code point counts; the
// prefix and suffix bounds are translated into byte positions by scanning,
// while the replacement is always copied whole by its byte length.
func spliceCodePoints(buf *resultBuffer, input, repl []byte, prefix int, removal int64, inputUnits int) {
	suffix := 0
	if int64(prefix)+removal <= int64(inputUnits) {
		suffix = inputUnits - prefix - int(removal)
	}

	prefixBytes := skipCodePointsForward(input, prefix)
	suffixStart := skipCodePointsBackward(input, suffix)

	buf.appendBytes(input[:prefixBytes])
	buf.appendBytes(repl)
	if suffixStart < len(input) {
		buf.appendBytes(input[suffixStart:])
	}
	buf.finishRow()
}
