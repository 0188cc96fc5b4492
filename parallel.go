package overlay

import (
	"runtime"
	"sync"
)

// minParallelRows is the batch size below which parallel execution falls back
// to the sequential path; the stitch overhead dominates for small batches.
const minParallelRows = 4096

// ExecParallel is Exec with the row range split across workers. Each worker
// splices its contiguous range into its own pooled buffer, so no worker ever
// writes into another's output; the per-range results are then stitched back
// together in row order. Results are identical to the sequential path.
//
// workers <= 0 selects runtime.NumCPU().
func ExecParallel(input, replace StringArg, offset, length IntArg, rows int, mode Mode, workers int) (*StringColumn, error) {
	if err := validateExecArgs(input, replace, offset, length, rows); err != nil {
		return nil, err
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers == 1 || rows < minParallelRows {
		return Exec(input, replace, offset, length, rows, mode)
	}
	if workers > rows {
		workers = rows
	}

	bufs := make([]*resultBuffer, workers)
	rowsPerWorker := rows / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		start := w * rowsPerWorker
		end := start + rowsPerWorker
		if w == workers-1 {
			end = rows
		}

		buf := globalBufferPool.get(end-start, estimateRangeBytes(input, start, end))
		bufs[w] = buf

		wg.Add(1)
		go func(buf *resultBuffer, start, end int) {
			defer wg.Done()
			execInto(buf, input, replace, offset, length, start, end, mode)
		}(buf, start, end)
	}
	wg.Wait()

	return stitchBuffers(bufs, rows), nil
}

// estimateRangeBytes sizes a worker's buffer for its row range.
func estimateRangeBytes(input StringArg, start, end int) int {
	if input.column == nil {
		return (len(input.value) + 1) * (end - start)
	}
	from := uint64(0)
	if start > 0 {
		from = input.column.offsets[start-1]
	}
	return int(input.column.offsets[end-1] - from)
}

// stitchBuffers concatenates per-worker buffers into one column in row order
// and returns the workers' buffers to the pool.
func stitchBuffers(bufs []*resultBuffer, rows int) *StringColumn {
	total := 0
	for _, buf := range bufs {
		total += len(buf.data)
	}

	out := NewStringColumn(rows, total)
	for _, buf := range bufs {
		base := uint64(len(out.data))
		out.data = append(out.data, buf.data...)
		for _, off := range buf.offsets {
			out.offsets = append(out.offsets, base+off)
		}
		globalBufferPool.put(buf)
	}
	return out
}
