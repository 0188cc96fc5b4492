package overlay

import (
	"sync"
	"sync/atomic"
)

// resultBuffer accumulates spliced rows: a single growable byte buffer plus
// cumulative end offsets, one per finished row. It hides the reallocation
// strategy from the splice code, which only ever reserves, appends, and
// finishes rows.
type resultBuffer struct {
	data    []byte
	offsets []uint64
}

// reserve grows the data buffer's capacity so that at least n more bytes can
// be appended without reallocation. The estimate may be exceeded; appends
// still grow the buffer as needed.
func (b *resultBuffer) reserve(n int) {
	if n <= 0 {
		return
	}
	if cap(b.data)-len(b.data) >= n {
		return
	}
	grown := make([]byte, len(b.data), len(b.data)+n)
	copy(grown, b.data)
	b.data = grown
}

// reserveRows grows the offsets capacity for n more rows.
func (b *resultBuffer) reserveRows(n int) {
	if cap(b.offsets)-len(b.offsets) >= n {
		return
	}
	grown := make([]uint64, len(b.offsets), len(b.offsets)+n)
	copy(grown, b.offsets)
	b.offsets = grown
}

// appendBytes appends raw bytes to the current row.
func (b *resultBuffer) appendBytes(p []byte) {
	b.data = append(b.data, p...)
}

// finishRow terminates the current row with a zero byte and records its end
// offset.
func (b *resultBuffer) finishRow() {
	b.data = append(b.data, 0)
	b.offsets = append(b.offsets, uint64(len(b.data)))
}

// rowCount returns the number of finished rows.
func (b *resultBuffer) rowCount() int {
	return len(b.offsets)
}

// reset clears the buffer for reuse, retaining capacity.
func (b *resultBuffer) reset() {
	b.data = b.data[:0]
	b.offsets = b.offsets[:0]
}

// toColumn hands the accumulated data over to a StringColumn. The buffer must
// not be used afterwards; ownership of the slices transfers to the column.
func (b *resultBuffer) toColumn() *StringColumn {
	col := &StringColumn{data: b.data, offsets: b.offsets}
	b.data = nil
	b.offsets = nil
	return col
}

// maxRetainedBufferBytes is the largest data capacity a buffer may keep when
// returned to the pool. Oversized buffers are dropped to keep a single huge
// batch from pinning memory for the lifetime of the pool.
const maxRetainedBufferBytes = 8 << 20

// bufferPool is a pool of result buffers for efficient reuse across batch
// executions. Worker buffers in parallel execution are the main customer:
// their contents are copied into the final column, so their capacity can be
// recycled.
type bufferPool struct {
	buffers sync.Pool

	// Statistics for monitoring and tuning.
	gets     uint64
	puts     uint64
	misses   uint64
	discards uint64
}

func newBufferPool() *bufferPool {
	p := &bufferPool{}
	p.buffers = sync.Pool{
		New: func() interface{} {
			atomic.AddUint64(&p.misses, 1)
			return &resultBuffer{}
		},
	}
	return p
}

// get fetches a buffer from the pool and pre-sizes it for the given row and
// byte estimates.
func (p *bufferPool) get(rowsHint, bytesHint int) *resultBuffer {
	atomic.AddUint64(&p.gets, 1)
	buf := p.buffers.Get().(*resultBuffer)
	buf.reserveRows(rowsHint)
	buf.reserve(bytesHint)
	return buf
}

// put returns a buffer to the pool, discarding oversized ones.
func (p *bufferPool) put(buf *resultBuffer) {
	if buf == nil {
		return
	}
	if cap(buf.data) > maxRetainedBufferBytes {
		atomic.AddUint64(&p.discards, 1)
		return
	}
	buf.reset()
	atomic.AddUint64(&p.puts, 1)
	p.buffers.Put(buf)
}

// stats returns the pool counters: gets, puts, misses, discards.
func (p *bufferPool) stats() (gets, puts, misses, discards uint64) {
	return atomic.LoadUint64(&p.gets),
		atomic.LoadUint64(&p.puts),
		atomic.LoadUint64(&p.misses),
		atomic.LoadUint64(&p.discards)
}

// globalBufferPool is the shared pool used by batch and parallel execution.
var globalBufferPool = newBufferPool()
