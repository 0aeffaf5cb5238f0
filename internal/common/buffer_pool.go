package common

import (
	"bytes"
	"sync"
)

// BufferPool recycles byte buffers used to read response bodies.
// Buffers that grew beyond maxRetained are dropped instead of pooled so a
// single large body does not pin memory.
type BufferPool struct {
	pool        sync.Pool
	maxRetained int
}

// NewBufferPool creates a pool whose buffers start with initialCapacity bytes.
// A maxRetained of 0 keeps every buffer.
func NewBufferPool(initialCapacity, maxRetained int) *BufferPool {
	return &BufferPool{
		pool: sync.Pool{
			New: func() interface{} {
				return bytes.NewBuffer(make([]byte, 0, initialCapacity))
			},
		},
		maxRetained: maxRetained,
	}
}

// Get retrieves an empty buffer from the pool
func (bp *BufferPool) Get() *bytes.Buffer {
	return bp.pool.Get().(*bytes.Buffer)
}

// Put resets buf and returns it to the pool
func (bp *BufferPool) Put(buf *bytes.Buffer) {
	if buf == nil {
		return
	}
	if bp.maxRetained > 0 && buf.Cap() > bp.maxRetained {
		return
	}
	buf.Reset()
	bp.pool.Put(buf)
}
