package handler

import (
	"bytes"
	"sync"
)

const (
	initialBufferSize = 512
	// A full egg status view rarely exceeds a few KiB; larger buffers are
	// dropped so one oversized response does not pin memory in the pool.
	maxPooledBufferSize = 64 << 10
)

var encodeBuffers = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, initialBufferSize))
	},
}

func getBuffer() *bytes.Buffer {
	return encodeBuffers.Get().(*bytes.Buffer)
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > maxPooledBufferSize {
		return
	}
	buf.Reset()
	encodeBuffers.Put(buf)
}
