package iso8583

import (
	"bufio"
	"encoding/binary"
	"io"
)

// FrameReader reads one length-prefixed ISO 8583 message at a time off a
// stream connection, using a 2-byte big-endian MLI (message length
// indicator) ahead of each payload — the same convention
// pkul300381-integrated-pg-go's transport connector uses for its TCP
// read loop. It borrows payload buffers from bufferPool and the caller
// must call ReleaseFrame on the returned slice once done with it.
type FrameReader struct {
	r       *bufio.Reader
	maxSize int
}

// NewFrameReader wraps r, rejecting any frame whose declared length
// exceeds maxSize (0 disables the limit).
func NewFrameReader(r io.Reader, maxSize int) *FrameReader {
	return &FrameReader{r: bufio.NewReader(r), maxSize: maxSize}
}

// ReadFrame reads and returns one message payload (the bytes after the
// 2-byte MLI), or an error if the stream is truncated or the declared
// length is out of bounds.
func (fr *FrameReader) ReadFrame() ([]byte, error) {
	var mliBytes [2]byte
	if _, err := io.ReadFull(fr.r, mliBytes[:]); err != nil {
		return nil, err
	}
	mli := int(binary.BigEndian.Uint16(mliBytes[:]))
	if mli <= 0 {
		return nil, ErrInvalidLength
	}
	if fr.maxSize > 0 && mli > fr.maxSize {
		return nil, ErrInvalidLength
	}

	payload := getBuffer()
	if cap(payload) < mli {
		payload = make([]byte, mli)
	} else {
		payload = payload[:mli]
	}
	if _, err := io.ReadFull(fr.r, payload); err != nil {
		putBuffer(payload)
		return nil, err
	}
	return payload, nil
}

// ReleaseFrame returns a payload obtained from ReadFrame to the buffer
// pool once the caller is done with it.
func ReleaseFrame(payload []byte) {
	putBuffer(payload)
}

// WriteFrame prepends a 2-byte big-endian MLI to payload and writes both
// to w in a single call.
func WriteFrame(w io.Writer, payload []byte) error {
	if len(payload) > 0xFFFF {
		return ErrInvalidLength
	}
	frame := getBuffer()
	need := len(payload) + 2
	if cap(frame) < need {
		frame = make([]byte, need)
	} else {
		frame = frame[:need]
	}
	defer putBuffer(frame)

	binary.BigEndian.PutUint16(frame[:2], uint16(len(payload)))
	copy(frame[2:], payload)

	_, err := w.Write(frame)
	return err
}
