package handler

import (
	"bytes"
	"sync"
)

// Response payloads here are small (fruit lists, balances, raid results),
// so a pooled 512-byte buffer covers the common case without reallocating.
var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 512))
	},
}

func getBuffer() *bytes.Buffer {
	return bufferPool.Get().(*bytes.Buffer)
}

func putBuffer(buf *bytes.Buffer) {
	buf.Reset()
	bufferPool.Put(buf)
}
