package pool

import "sync"

// Word buffer sizing, in uint32 words.
const (
	GeometryBufferDefaultSize  = 256       // 1KiB
	GeometryBufferMaxThreshold = 1024 * 64 // 256KiB
)

// WordBuffer is an append-only buffer of 32-bit words.
type WordBuffer struct {
	// W is the underlying word slice.
	W []uint32
}

// newWordBuffer creates a new WordBuffer with the specified default capacity in words.
func newWordBuffer(defaultSize int) *WordBuffer {
	return &WordBuffer{
		W: make([]uint32, 0, defaultSize),
	}
}

// Words returns the underlying word slice.
func (wb *WordBuffer) Words() []uint32 {
	return wb.W
}

// Reset resets the buffer to be empty, but retains the allocated memory for reuse.
func (wb *WordBuffer) Reset() {
	wb.W = wb.W[:0]
}

// Len returns the number of words in the buffer.
func (wb *WordBuffer) Len() int {
	return len(wb.W)
}

// Append appends words to the buffer, growing it if necessary.
func (wb *WordBuffer) Append(words ...uint32) {
	wb.W = append(wb.W, words...)
}

// Set overwrites the word at index i.
// Panics if i is out of range.
func (wb *WordBuffer) Set(i int, word uint32) {
	wb.W[i] = word
}

// Grow grows the buffer to ensure it can hold requiredWords more words without reallocating.
// If the buffer has sufficient capacity, Grow does nothing.
//
// The growth strategy is as follows:
//   - For small buffers, grow by GeometryBufferDefaultSize to minimize reallocations.
//   - For larger buffers, grow by 25% of current capacity to balance memory usage and reallocation cost.
func (wb *WordBuffer) Grow(requiredWords int) {
	available := cap(wb.W) - len(wb.W)
	if available >= requiredWords {
		return
	}

	growBy := GeometryBufferDefaultSize
	if cap(wb.W) > 4*GeometryBufferDefaultSize {
		growBy = cap(wb.W) / 4
	}

	if growBy < requiredWords {
		growBy = requiredWords
	}

	newBuf := make([]uint32, len(wb.W), len(wb.W)+growBy)
	copy(newBuf, wb.W)
	wb.W = newBuf
}

// Clone returns an exact-length copy of the buffer contents that shares no memory with it.
func (wb *WordBuffer) Clone() []uint32 {
	out := make([]uint32, len(wb.W))
	copy(out, wb.W)

	return out
}

// WordBufferPool is a pool of WordBuffers to minimize allocations.
//
// It uses sync.Pool internally to manage the buffers.
// The pool can be configured with a maximum size threshold to avoid retaining
// overly large buffers that could lead to memory bloat.
type WordBufferPool struct {
	pool         sync.Pool
	maxThreshold int // Optional maximum capacity in words for retained buffers
}

// NewWordBufferPool creates a new WordBufferPool with buffers of the specified default size.
func NewWordBufferPool(defaultSize int, maxThreshold int) *WordBufferPool {
	return &WordBufferPool{
		pool: sync.Pool{
			New: func() any {
				return newWordBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves an empty WordBuffer from the pool.
func (p *WordBufferPool) Get() *WordBuffer {
	wb, _ := p.pool.Get().(*WordBuffer)
	return wb
}

// Put returns a WordBuffer to the pool for reuse.
func (p *WordBufferPool) Put(wb *WordBuffer) {
	if wb == nil {
		return
	}

	if p.maxThreshold > 0 && cap(wb.W) > p.maxThreshold {
		// Discard overly large buffers to prevent memory bloat
		return
	}

	wb.Reset()
	p.pool.Put(wb)
}

var geometryDefaultPool = NewWordBufferPool(GeometryBufferDefaultSize, GeometryBufferMaxThreshold)

// GetGeometryBuffer retrieves a WordBuffer from the default geometry pool.
func GetGeometryBuffer() *WordBuffer {
	return geometryDefaultPool.Get()
}

// PutGeometryBuffer returns a WordBuffer to the default geometry pool.
func PutGeometryBuffer(wb *WordBuffer) {
	geometryDefaultPool.Put(wb)
}
