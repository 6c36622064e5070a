package iso8583

import (
	"bytes"
	"fmt"
	"sync"
)

// messagePool recycles Message values to avoid an allocation per parsed
// wire message, the same pooling discipline this package uses for frame
// buffers (pool.go).
var messagePool = sync.Pool{
	New: func() interface{} { return &Message{} },
}

// Message is the parsed/constructed aggregate of an MTI, a BitMap, and the
// set of Fields present, interpreted against a borrowed MessageSpec. It is
// a single-owner, non-concurrent-safe value: the core assigns no
// synchronization to it, matching the concurrency model of the component
// it implements (see the MessageSpec/Codec immutability contract instead).
type Message struct {
	mti    MTI
	bitmap BitMap
	spec   *MessageSpec
	fields [129]*Field
}

// NewMessage returns an empty Message (default MTI "0000", empty BitMap)
// backed by the given spec, ready for manual construction via SetField.
func NewMessage(spec *MessageSpec) *Message {
	m := messagePool.Get().(*Message)
	m.reset()
	m.mti = DefaultMTI()
	m.spec = spec
	return m
}

// Release returns m to the pool. m must not be used afterward.
func (m *Message) Release() {
	m.reset()
	messagePool.Put(m)
}

func (m *Message) reset() {
	m.mti = MTI{}
	m.bitmap.Reset()
	m.spec = nil
	for i := range m.fields {
		m.fields[i] = nil
	}
}

// FromBytes parses data as an MTI, BitMap, and schema-driven field table
// against spec and codec. Every bit set in the bitmap must have a
// corresponding FieldSpec in spec, or parsing fails — see DESIGN.md for
// why this module does not reproduce the original skip-unspecified-fields
// behavior.
func FromBytes(spec *MessageSpec, codec Codec, data []byte) (*Message, error) {
	cur := newCursor(data)

	mti, err := mtiFromCursor(cur)
	if err != nil {
		return nil, err
	}

	bm, n, err := FromCursor(cur.data[cur.pos:])
	if err != nil {
		return nil, err
	}
	cur.pos += n

	m := NewMessage(spec)
	m.mti = mti
	m.bitmap = bm

	for _, idx := range bm.IterSet() {
		if idx >= len(spec.Fields) {
			m.Release()
			return nil, &ParseError{Message: fmt.Sprintf("No FieldSpec defined for field %d", idx)}
		}
		fs := spec.Fields[idx]
		if fs == nil {
			m.Release()
			return nil, &ParseError{Message: fmt.Sprintf("No FieldSpec defined for field %d", idx)}
		}
		toRead, err := fs.ToRead(codec, cur)
		if err != nil {
			m.Release()
			return nil, err
		}
		if cur.remaining() < toRead {
			m.Release()
			return nil, &ParseError{Message: "Truncated field"}
		}
		f := NewField(cur.take(toRead))
		m.fields[idx] = &f
	}

	return m, nil
}

// MTI returns the message's Message Type Indicator.
func (m *Message) MTI() MTI {
	return m.mti
}

// SetMTI overwrites the message's MTI.
func (m *Message) SetMTI(mti MTI) {
	m.mti = mti
}

// Field returns the field at idx and whether it is present.
func (m *Message) Field(idx int) (Field, bool) {
	if idx < 0 || idx >= len(m.fields) || m.fields[idx] == nil {
		return Field{}, false
	}
	return *m.fields[idx], true
}

// HasField reports whether idx is present.
func (m *Message) HasField(idx int) bool {
	_, ok := m.Field(idx)
	return ok
}

// SetField stores value at idx and sets the corresponding bitmap bit. No
// length or type validation is performed at this layer — see Validator
// (validation.go) for schema-driven checks.
func (m *Message) SetField(idx int, value []byte) {
	f := NewField(value)
	m.fields[idx] = &f
	m.bitmap.Set(idx)
}

// ClearField removes the field at idx and clears its bitmap bit.
func (m *Message) ClearField(idx int) {
	m.fields[idx] = nil
	m.bitmap.Clear(idx)
}

// Bitmap returns the message's current BitMap.
func (m *Message) Bitmap() BitMap {
	return m.bitmap
}

// Spec returns the MessageSpec this message was built or parsed against.
func (m *Message) Spec() *MessageSpec {
	return m.spec
}

// Serialize emits MTI, BitMap, and every present field in ascending
// bit-index order. Serializing a message produced by FromBytes with no
// mutations reproduces the original input buffer byte-for-byte.
func (m *Message) Serialize(codec Codec) ([]byte, error) {
	buf := bytes.NewBuffer(make([]byte, 0, 32))
	buf.Write(m.mti[:])
	buf.Write(m.bitmap.Serialize())

	for _, idx := range m.bitmap.IterSet() {
		if idx >= len(m.spec.Fields) || m.spec.Fields[idx] == nil {
			return nil, &ParseError{Message: fmt.Sprintf("No FieldSpec defined for field %d", idx)}
		}
		field, ok := m.Field(idx)
		if !ok {
			continue
		}
		fs := m.spec.Fields[idx]
		if err := fs.SerializeField(codec, buf, field); err != nil {
			return nil, err
		}
	}

	return buf.Bytes(), nil
}
