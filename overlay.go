package overlay

// Overlay replaces the region of s starting at the 1-based offset with the
// replace string, measuring in bytes. An optional length gives the number of
// bytes removed from s; when omitted or negative it defaults to the length of
// replace. Offsets and lengths are clamped, never rejected: a negative offset
// counts from the end of s, an offset past the end appends at the end, and a
// removal past the end consumes the remaining tail.
func Overlay(s, replace string, offset int64, length ...int64) string {
	return scalarOverlay(s, replace, offset, length, Bytes)
}

// OverlayUTF8 is Overlay measuring offset and length in UTF-8 code points
// instead of bytes. s is assumed to contain valid UTF-8; if it does not, the
// result is unspecified but memory-safe.
func OverlayUTF8(s, replace string, offset int64, length ...int64) string {
	return scalarOverlay(s, replace, offset, length, CodePoints)
}

func scalarOverlay(s, replace string, offset int64, length []int64, mode Mode) string {
	lengthArg := NoLength()
	if len(length) > 0 {
		lengthArg = ConstInt(length[0])
	}

	buf := &resultBuffer{}
	buf.reserveRows(1)
	buf.reserve(len(s) + len(replace) + 1)
	execInto(buf, ConstString(s), ConstString(replace), ConstInt(offset), lengthArg, 0, 1, mode)
	return buf.toColumn().RowString(0)
}
