package pool

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// WordBuffer Tests
// =============================================================================

func TestNewWordBuffer(t *testing.T) {
	wb := newWordBuffer(64)

	require.NotNil(t, wb)
	require.NotNil(t, wb.W)
	assert.Equal(t, 0, wb.Len(), "new buffer should have zero length")
	assert.Equal(t, 64, cap(wb.W), "new buffer should have specified capacity")
}

func TestWordBuffer_AppendAndSet(t *testing.T) {
	wb := newWordBuffer(4)

	wb.Append(9, 0, 0)
	wb.Append(10)
	wb.Append()
	require.Equal(t, []uint32{9, 0, 0, 10}, wb.Words())

	wb.Set(3, 26)
	require.Equal(t, []uint32{9, 0, 0, 26}, wb.Words())

	require.Panics(t, func() { wb.Set(4, 1) })
}

func TestWordBuffer_Reset(t *testing.T) {
	wb := newWordBuffer(GeometryBufferDefaultSize)
	wb.Append(1, 2, 3)
	originalCap := cap(wb.W)

	wb.Reset()

	assert.Equal(t, 0, wb.Len(), "Reset should clear the buffer length")
	assert.Equal(t, originalCap, cap(wb.W), "Reset should preserve capacity")
}

func TestWordBuffer_Clone(t *testing.T) {
	wb := newWordBuffer(16)
	wb.Append(1, 2, 3)

	out := wb.Clone()
	require.Equal(t, []uint32{1, 2, 3}, out)
	require.Equal(t, 3, cap(out), "clone should be exact length")

	wb.Set(0, 99)
	require.Equal(t, uint32(1), out[0], "clone must not share memory")
}

func TestWordBuffer_Grow(t *testing.T) {
	t.Run("sufficient capacity", func(t *testing.T) {
		wb := newWordBuffer(100)
		wb.Grow(50)
		assert.Equal(t, 100, cap(wb.W))
	})

	t.Run("small buffer grows by default size", func(t *testing.T) {
		wb := newWordBuffer(10)
		wb.Append(make([]uint32, 10)...)
		wb.Grow(5)
		assert.Equal(t, 10+GeometryBufferDefaultSize, cap(wb.W))
	})

	t.Run("large buffer grows by a quarter", func(t *testing.T) {
		size := 8 * GeometryBufferDefaultSize
		wb := newWordBuffer(size)
		wb.Append(make([]uint32, size)...)
		wb.Grow(1)
		assert.Equal(t, size+size/4, cap(wb.W))
	})

	t.Run("grows at least the required words", func(t *testing.T) {
		wb := newWordBuffer(0)
		wb.Grow(GeometryBufferDefaultSize * 3)
		assert.GreaterOrEqual(t, cap(wb.W), GeometryBufferDefaultSize*3)
	})

	t.Run("preserves data", func(t *testing.T) {
		wb := newWordBuffer(2)
		wb.Append(7, 8)
		wb.Grow(100)
		assert.Equal(t, []uint32{7, 8}, wb.Words())
	})
}

// =============================================================================
// WordBufferPool Tests
// =============================================================================

func TestGetGeometryBuffer(t *testing.T) {
	wb := GetGeometryBuffer()
	defer PutGeometryBuffer(wb)

	require.NotNil(t, wb)
	require.Equal(t, 0, wb.Len())
}

func TestPutGeometryBuffer_NilBuffer(t *testing.T) {
	require.NotPanics(t, func() { PutGeometryBuffer(nil) })
}

func TestWordBufferPool_PutResetsData(t *testing.T) {
	p := NewWordBufferPool(8, 0)

	wb := p.Get()
	wb.Append(1, 2, 3)
	p.Put(wb)

	require.Equal(t, 0, wb.Len(), "Put should reset the buffer")
	require.Equal(t, 0, p.Get().Len())
}

func TestWordBufferPool_MaxThreshold(t *testing.T) {
	p := NewWordBufferPool(8, 16)

	large := newWordBuffer(32)
	large.Append(1, 2)
	p.Put(large)

	// Discarded buffers are left untouched.
	require.Equal(t, 2, large.Len())

	small := newWordBuffer(8)
	small.Append(1, 2)
	p.Put(small)
	require.Equal(t, 0, small.Len())
}

func TestWordBufferPool_ConcurrentAccess(t *testing.T) {
	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				wb := GetGeometryBuffer()
				wb.Append(uint32(n), uint32(j))
				assert.Equal(t, 2, wb.Len())
				PutGeometryBuffer(wb)
			}
		}(i)
	}
	wg.Wait()
}
