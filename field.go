package iso8583

import (
	"strconv"
	"unsafe"
)

// Field is an immutable byte-slice wrapper representing the raw payload of
// one data element. The core never mutates a Field's bytes in place;
// replacing a field's value always constructs a new one.
type Field struct {
	data []byte
}

// NewField wraps data as a Field without copying it. Callers that need an
// independent copy should clone data themselves before calling this.
func NewField(data []byte) Field {
	return Field{data: data}
}

// Bytes returns the field's raw payload.
func (f Field) Bytes() []byte {
	return f.data
}

// Len returns the payload length in bytes.
func (f Field) Len() int {
	return len(f.data)
}

// String performs a zero-copy conversion of the payload to a string. The
// result is only valid as long as the underlying bytes are not mutated
// through another reference to the same backing array.
func (f Field) String() string {
	if len(f.data) == 0 {
		return ""
	}
	return unsafe.String(&f.data[0], len(f.data))
}

// Int parses the payload as a base-10 integer.
func (f Field) Int() (int, error) {
	return strconv.Atoi(f.String())
}

// Int64 parses the payload as a base-10 int64.
func (f Field) Int64() (int64, error) {
	return strconv.ParseInt(f.String(), 10, 64)
}
