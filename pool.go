// pool.go - buffer reuse for ReadFrame and WriteFrame (see frame.go), sized
// for one wire message rather than a generic byte slice.
package iso8583

import "sync"

var bufferPool = sync.Pool{
	New: func() interface{} {
		buf := make([]byte, DefaultBufferSize)
		return &buf
	},
}

// getBuffer borrows a pooled buffer; only frame.go's message-sized reads
// and writes use it, not Message values themselves.
func getBuffer() []byte {
	buf := bufferPool.Get().(*[]byte)
	return (*buf)[:0]
}

func putBuffer(buf []byte) {
	if cap(buf) <= 2*DefaultBufferSize { // Don't pool oversized frames
		b := buf[:0]
		bufferPool.Put(&b)
	}
}
