package overlay

// StringColumn stores a batch of strings in a single contiguous buffer with
// cumulative end offsets, one per row. Row i occupies the byte range
// [offsets[i-1], offsets[i]-1); the last byte of every row is a zero
// terminator. This layout keeps all row data cache-adjacent and makes the
// column cheap to append to and to scan.
type StringColumn struct {
	data    []byte
	offsets []uint64
}

// NewStringColumn creates an empty column with capacity hints for the given
// number of rows and total byte size.
func NewStringColumn(rows, bytes int) *StringColumn {
	return &StringColumn{
		data:    make([]byte, 0, bytes),
		offsets: make([]uint64, 0, rows),
	}
}

// MakeStringColumn builds a column from a slice of Go strings.
func MakeStringColumn(values []string) *StringColumn {
	total := 0
	for _, v := range values {
		total += len(v) + 1
	}
	col := NewStringColumn(len(values), total)
	for _, v := range values {
		col.AppendString(v)
	}
	return col
}

// AppendString appends one row holding the given string.
func (c *StringColumn) AppendString(s string) {
	c.data = append(c.data, s...)
	c.data = append(c.data, 0)
	c.offsets = append(c.offsets, uint64(len(c.data)))
}

// AppendBytes appends one row holding a copy of the given bytes.
func (c *StringColumn) AppendBytes(b []byte) {
	c.data = append(c.data, b...)
	c.data = append(c.data, 0)
	c.offsets = append(c.offsets, uint64(len(c.data)))
}

// Len returns the number of rows in the column.
func (c *StringColumn) Len() int {
	return len(c.offsets)
}

// TotalBytes returns the total byte size of the column's data buffer,
// including the per-row terminators.
func (c *StringColumn) TotalBytes() int {
	return len(c.data)
}

// Row returns an unowned view of row i's bytes, excluding the terminator.
// The view is only valid as long as the column is not appended to.
func (c *StringColumn) Row(i int) []byte {
	start := uint64(0)
	if i > 0 {
		start = c.offsets[i-1]
	}
	return c.data[start : c.offsets[i]-1]
}

// RowString materializes row i as a Go string.
func (c *StringColumn) RowString(i int) string {
	return string(c.Row(i))
}

// RowStringCached materializes row i as a Go string through an interning
// cache, deduplicating repeated values across calls.
func (c *StringColumn) RowStringCached(i int, cache *StringCache) string {
	return cache.GetFromBytes(c.Row(i))
}

// StringArg is a string argument to the batch executor: either a constant
// value that applies to every row, or a per-row column.
type StringArg struct {
	column *StringColumn
	value  []byte
}

// ConstString creates a constant string argument.
func ConstString(s string) StringArg {
	return StringArg{value: []byte(s)}
}

// ConstBytes creates a constant string argument from a byte slice. The bytes
// are not copied; the caller must keep them unchanged for the duration of any
// execution using the argument.
func ConstBytes(b []byte) StringArg {
	return StringArg{value: b}
}

// ColumnString creates a per-row string argument backed by a column.
func ColumnString(col *StringColumn) StringArg {
	return StringArg{column: col}
}

// IsConst reports whether the argument is a constant.
func (a StringArg) IsConst() bool {
	return a.column == nil
}

// Int64Column stores one signed 64-bit integer per row. Narrower fixed-width
// integer sources are widened losslessly on append.
type Int64Column struct {
	values []int64
}

// NewInt64Column creates an empty column with a capacity hint.
func NewInt64Column(rows int) *Int64Column {
	return &Int64Column{values: make([]int64, 0, rows)}
}

// MakeInt64Column builds a column from a slice of int64 values.
func MakeInt64Column(values []int64) *Int64Column {
	col := NewInt64Column(len(values))
	col.values = append(col.values, values...)
	return col
}

// Append appends an int64 value.
func (c *Int64Column) Append(v int64) { c.values = append(c.values, v) }

// AppendInt8 appends an int8 value, widened to int64.
func (c *Int64Column) AppendInt8(v int8) { c.values = append(c.values, int64(v)) }

// AppendInt16 appends an int16 value, widened to int64.
func (c *Int64Column) AppendInt16(v int16) { c.values = append(c.values, int64(v)) }

// AppendInt32 appends an int32 value, widened to int64.
func (c *Int64Column) AppendInt32(v int32) { c.values = append(c.values, int64(v)) }

// AppendUint8 appends a uint8 value, widened to int64.
func (c *Int64Column) AppendUint8(v uint8) { c.values = append(c.values, int64(v)) }

// AppendUint16 appends a uint16 value, widened to int64.
func (c *Int64Column) AppendUint16(v uint16) { c.values = append(c.values, int64(v)) }

// AppendUint32 appends a uint32 value, widened to int64.
func (c *Int64Column) AppendUint32(v uint32) { c.values = append(c.values, int64(v)) }

// AppendUint64 appends a uint64 value. Values above math.MaxInt64 wrap, the
// same reinterpretation the columnar integer accessors of the source systems
// apply.
func (c *Int64Column) AppendUint64(v uint64) { c.values = append(c.values, int64(v)) }

// Len returns the number of rows in the column.
func (c *Int64Column) Len() int { return len(c.values) }

// Value returns the value at row i.
func (c *Int64Column) Value(i int) int64 { return c.values[i] }

type intArgKind uint8

const (
	intAbsent intArgKind = iota
	intConst
	intColumn
)

// IntArg is an integer argument to the batch executor: absent (only valid for
// the length argument), a constant value, or a per-row column.
type IntArg struct {
	kind   intArgKind
	value  int64
	column *Int64Column
}

// NoLength creates an absent integer argument. An absent length makes the
// removal length default to the replacement's length for every row.
func NoLength() IntArg {
	return IntArg{kind: intAbsent}
}

// ConstInt creates a constant integer argument.
func ConstInt(v int64) IntArg {
	return IntArg{kind: intConst, value: v}
}

// ColumnInt creates a per-row integer argument backed by a column.
func ColumnInt(col *Int64Column) IntArg {
	return IntArg{kind: intColumn, column: col}
}

// IsAbsent reports whether the argument was not supplied.
func (a IntArg) IsAbsent() bool { return a.kind == intAbsent }

// IsConst reports whether the argument is a constant.
func (a IntArg) IsConst() bool { return a.kind == intConst }
