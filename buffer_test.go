package overlay

import (
	"testing"
)

func TestResultBuffer(t *testing.T) {
	buf := &resultBuffer{}
	buf.reserveRows(2)
	buf.reserve(32)

	buf.appendBytes([]byte("Hello"))
	buf.appendBytes([]byte(", World!"))
	buf.finishRow()
	buf.appendBytes(nil)
	buf.finishRow()

	if buf.rowCount() != 2 {
		t.Fatalf("rowCount = %d, want 2", buf.rowCount())
	}

	col := buf.toColumn()
	if got := col.RowString(0); got != "Hello, World!" {
		t.Errorf("row 0 = %q, want %q", got, "Hello, World!")
	}
	if got := col.RowString(1); got != "" {
		t.Errorf("row 1 = %q, want empty", got)
	}
	if buf.data != nil || buf.offsets != nil {
		t.Error("toColumn did not transfer slice ownership")
	}
}

func TestResultBufferReserve(t *testing.T) {
	buf := &resultBuffer{}
	buf.reserve(1024)
	if cap(buf.data) < 1024 {
		t.Errorf("cap = %d, want >= 1024", cap(buf.data))
	}

	// Reserving less than the remaining capacity must not reallocate.
	before := cap(buf.data)
	buf.reserve(512)
	if cap(buf.data) != before {
		t.Errorf("cap changed from %d to %d on a satisfied reserve", before, cap(buf.data))
	}

	// Appends past the estimate still work.
	big := make([]byte, 4096)
	buf.appendBytes(big)
	buf.finishRow()
	if buf.rowCount() != 1 {
		t.Errorf("rowCount = %d, want 1", buf.rowCount())
	}
}

func TestBufferPoolReuse(t *testing.T) {
	pool := newBufferPool()

	buf := pool.get(16, 256)
	buf.appendBytes([]byte("data"))
	buf.finishRow()
	pool.put(buf)

	buf2 := pool.get(16, 256)
	if buf2.rowCount() != 0 || len(buf2.data) != 0 {
		t.Error("pooled buffer was not reset")
	}

	gets, puts, _, _ := pool.stats()
	if gets != 2 {
		t.Errorf("gets = %d, want 2", gets)
	}
	if puts != 1 {
		t.Errorf("puts = %d, want 1", puts)
	}
}

func TestBufferPoolDiscardsOversized(t *testing.T) {
	pool := newBufferPool()

	buf := pool.get(1, maxRetainedBufferBytes+1)
	pool.put(buf)

	_, puts, _, discards := pool.stats()
	if discards != 1 {
		t.Errorf("discards = %d, want 1", discards)
	}
	if puts != 0 {
		t.Errorf("puts = %d, want 0", puts)
	}
}
