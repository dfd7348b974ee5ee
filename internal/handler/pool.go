package handler

import (
	"bytes"
	"sync"
)

// initialBufferSize fits a typical item export without growing.
const initialBufferSize = 2048

// bufferPool holds response encode buffers
var bufferPool = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, initialBufferSize))
	},
}

func getBuffer() *bytes.Buffer {
	return bufferPool.Get().(*bytes.Buffer)
}

func putBuffer(buf *bytes.Buffer) {
	buf.Reset()
	bufferPool.Put(buf)
}
