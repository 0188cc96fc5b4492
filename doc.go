/*
Package overlay provides a high-performance batched string-splice primitive for
columnar data processing.

# Overview

The package implements two logically identical functions distinguished only by
their unit of measurement:

 1. overlay(input, replace, offset[, length]) - byte semantics
 2. overlayUTF8(input, replace, offset[, length]) - UTF-8 code point semantics

Both replace the region of input starting at the 1-based (possibly negative)
offset and spanning length units with the replace string. When length is
omitted or negative, it defaults to the length of the replace string. Offsets
and lengths are always clamped into a valid range, never rejected: an offset
past the end saturates to the end of the input, a negative offset counts from
the end, and a removal that would overrun the input's tail simply consumes the
whole tail.

The package is designed for columnar batch execution. Each of the four
arguments may independently be a single repeated value ("constant") or one
value per row ("vector"), and the executor selects a specialized code path per
batch so that work derived from constant arguments is done once instead of
once per row.

# Scalar API Example

For single values, use the scalar wrappers:

	package main

	import (
		"fmt"

		overlay "github.com/semihalev/go-overlay"
	)

	func main() {
		fmt.Println(overlay.Overlay("Hello, World!", "abc", 1, 5)) // abc, World!
		fmt.Println(overlay.Overlay("Hello", "XY", -3, 2))         // HeXYo
		fmt.Println(overlay.OverlayUTF8("München", "X", 2, 1))     // MXnchen
	}

# Batch API Example

For columnar workloads, build columns once and execute over all rows:

	inputs := overlay.MakeStringColumn([]string{"Spark SQL", "ABCDEF"})
	offsets := overlay.MakeInt64Column([]int64{6, 4})

	col, err := overlay.Exec(
		overlay.ColumnString(inputs),
		overlay.ConstString("_"),
		overlay.ColumnInt(offsets),
		overlay.NoLength(),
		inputs.Len(),
		overlay.Bytes,
	)
	if err != nil {
		log.Fatalf("exec failed: %v", err)
	}
	for i := 0; i < col.Len(); i++ {
		fmt.Println(col.RowString(i))
	}

# Performance Features

The package provides several features for maximum performance:

  - Batch-level dispatch over argument shapes: the constant/vector decision is
    made once per batch, not once per row
  - Contiguous output storage with a single growable buffer and cumulative row
    offsets, pre-sized from a cheap estimate
  - Pooled result buffers to reduce GC pressure on repeated executions
  - Optional parallel execution splitting row ranges across workers
  - String interning cache for materializing repeated row values

# Error Handling

The splice core itself never fails: all offsets and lengths are clamped, and
malformed UTF-8 in code point mode degrades to an unspecified but memory-safe
result. The only errors produced by this package are argument validation
errors from the function registry (wrong arity, wrong argument kind), reported
as typed *Error values.
*/
package overlay
