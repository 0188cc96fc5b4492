package overlay

// resolveOffset converts a 1-based, possibly negative offset into a valid
// 0-based prefix length within [0, inputLen]. A positive offset past the end
// of the input saturates to inputLen (splice appends at the end); a negative
// offset counts from the end and saturates to 0. Out-of-range values are
// always clamped, never rejected.
func resolveOffset(offset int64, inputLen int) int {
	if offset > 0 {
		if offset > int64(inputLen)+1 {
			return inputLen
		}
		return int(offset) - 1
	}
	// Compare without negating offset so math.MinInt64 stays safe.
	if offset < -int64(inputLen) {
		return 0
	}
	return inputLen + int(offset)
}

// countCodePoints returns the number of UTF-8 code points in b, counting
// every byte that is not a continuation byte. Malformed sequences still
// produce a bounded count.
func countCodePoints(b []byte) int {
	n := 0
	for _, c := range b {
		if c&0xC0 != 0x80 {
			n++
		}
	}
	return n
}

// skipCodePointsForward returns the byte index reached by skipping n code
// points forward from the start of b, clamped to len(b).
func skipCodePointsForward(b []byte, n int) int {
	i := 0
	for ; n > 0 && i < len(b); n-- {
		i++
		for i < len(b) && b[i]&0xC0 == 0x80 {
			i++
		}
	}
	return i
}

// skipCodePointsBackward returns the byte index reached by skipping n code
// points backward from the end of b, clamped to 0.
func skipCodePointsBackward(b []byte, n int) int {
	i := len(b)
	for ; n > 0 && i > 0; n-- {
		i--
		for i > 0 && b[i]&0xC0 == 0x80 {
			i--
		}
	}
	return i
}

// sliceUnits returns the length of b measured in the units of the given mode:
// bytes, or UTF-8 code points.
func sliceUnits(b []byte, mode Mode) int {
	if mode == CodePoints {
		return countCodePoints(b)
	}
	return len(b)
}
