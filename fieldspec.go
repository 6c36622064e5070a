package iso8583

import (
	"bytes"
	"fmt"
)

// FieldType classifies the character content of a field's payload.
type FieldType int

const (
	FieldTypeA   FieldType = iota // alpha
	FieldTypeN                    // numeric
	FieldTypeS                    // special characters
	FieldTypeNS                   // numeric + special
	FieldTypeAN                   // alpha + numeric
	FieldTypeANS                  // alpha + numeric + special
	FieldTypeB                    // binary
)

func (t FieldType) String() string {
	switch t {
	case FieldTypeA:
		return "A"
	case FieldTypeN:
		return "N"
	case FieldTypeS:
		return "S"
	case FieldTypeNS:
		return "NS"
	case FieldTypeAN:
		return "AN"
	case FieldTypeANS:
		return "ANS"
	case FieldTypeB:
		return "B"
	default:
		return "ANS"
	}
}

// LengthType selects the length discipline a field is read/written under.
type LengthType int

const (
	LengthFixed LengthType = iota
	LengthLVar
	LengthLLVar
	LengthLLLVar
	LengthLLLLVar
	LengthBitMap
)

// LengthSize returns the number of length-prefix digits this length type
// consumes on the wire (0 for Fixed and BitMap, which carry no prefix).
func (t LengthType) LengthSize() int {
	switch t {
	case LengthLVar:
		return 1
	case LengthLLVar:
		return 2
	case LengthLLLVar:
		return 3
	case LengthLLLLVar:
		return 4
	default:
		return 0
	}
}

// Sensitivity marks how a field's value should be treated by presentation
// layers (logging, masking). The core never masks bytes itself; it stores
// the raw payload and leaves masking to callers that know their own
// compliance requirements.
type Sensitivity int

const (
	SensitivityNormal Sensitivity = iota
	SensitivityMaskPAN
	SensitivityMaskAll
)

// FieldSpec is an immutable per-field schema: how many bytes to read, and
// how to emit a length prefix (if any) plus payload on serialize.
type FieldSpec struct {
	Name        string
	FieldType   FieldType
	LengthType  LengthType
	Sensitivity Sensitivity
	// Length is the exact byte count for Fixed, or the inclusive upper
	// bound on payload size for every variable length type.
	Length int
}

// MinValueSize is the smallest legal payload size for this field.
func (fs FieldSpec) MinValueSize() int {
	switch fs.LengthType {
	case LengthFixed:
		return fs.Length
	case LengthLVar, LengthLLVar, LengthLLLVar, LengthLLLLVar:
		return 1
	default:
		return 0
	}
}

// MaxValueSize is the largest legal payload size for this field, capping
// Length at what the length-prefix digit count can represent.
func (fs FieldSpec) MaxValueSize() int {
	switch fs.LengthType {
	case LengthFixed:
		return fs.Length
	case LengthLVar:
		return min(fs.Length, 9)
	case LengthLLVar:
		return min(fs.Length, 99)
	case LengthLLLVar:
		return min(fs.Length, 999)
	case LengthLLLLVar:
		return min(fs.Length, 9999)
	default:
		return 0
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// parseLengthPrefix reads n prefix bytes from cur under codec and returns
// the accumulated decimal value, rejecting anything over fs.Length. Under
// LLFormat Byte, n is 1 and the single byte's raw value is the length;
// under Symbolic, n is the symbolic digit count and the bytes are decoded
// as big-endian decimal digits.
func (fs FieldSpec) parseLengthPrefix(codec Codec, cur *cursor, n int) (int, error) {
	if n == 0 {
		return 0, nil
	}
	if cur.remaining() < n {
		return 0, &ParseError{Message: fmt.Sprintf(
			"Unable to read length prefix (%d chars needed, %d available)", n, cur.remaining())}
	}
	digits := cur.take(n)
	sz := 0
	pow := 1
	for i := n - 1; i >= 0; i-- {
		d, err := codec.byteToDigit(digits[i])
		if err != nil {
			return 0, err
		}
		sz += d * pow
		pow *= 10
	}
	if sz > fs.Length {
		return 0, &ParseError{Message: fmt.Sprintf(
			"Variable length field over max length (%d > %d)", sz, fs.Length)}
	}
	return sz, nil
}

// ToRead determines how many payload bytes must be consumed for this
// field, reading and validating a length prefix from cur if required.
func (fs FieldSpec) ToRead(codec Codec, cur *cursor) (int, error) {
	switch fs.LengthType {
	case LengthBitMap:
		return 0, nil
	case LengthFixed:
		return fs.Length, nil
	default:
		return fs.parseLengthPrefix(codec, cur, codec.lengthSizeBytes(fs.LengthType.LengthSize()))
	}
}

// serializePrefix emits dataLen as a length prefix of n wire bytes. Under
// LLFormat Byte, n is 1 and dataLen is written as a single raw byte,
// failing if it exceeds 255; under Symbolic, dataLen is written as n
// zero-padded decimal digits under the codec's length encoding.
func (fs FieldSpec) serializePrefix(codec Codec, buf *bytes.Buffer, n int, dataLen int) error {
	if codec.LLFormat == Byte {
		if n == 0 {
			return nil
		}
		if dataLen > 255 {
			return &ParseError{Message: fmt.Sprintf("Length out of range: %d", dataLen)}
		}
		buf.WriteByte(byte(dataLen))
		return nil
	}

	digits := make([]byte, n)
	v := dataLen
	for i := n - 1; i >= 0; i-- {
		digits[i] = codec.digitToByte(v % 10)
		v /= 10
	}
	buf.Write(digits)
	return nil
}

// SerializeField writes field's length prefix (if any) and payload to buf.
func (fs FieldSpec) SerializeField(codec Codec, buf *bytes.Buffer, field Field) error {
	switch fs.LengthType {
	case LengthBitMap:
		return nil
	case LengthFixed:
		if fs.Length != field.Len() {
			return &ParseError{Message: "Invalid field length"}
		}
		buf.Write(field.Bytes())
		return nil
	default:
		if err := fs.serializePrefix(codec, buf, codec.lengthSizeBytes(fs.LengthType.LengthSize()), field.Len()); err != nil {
			return err
		}
		buf.Write(field.Bytes())
		return nil
	}
}

// MessageSpec is an immutable, indexed table of FieldSpecs, one slot per
// bit position 0..128. Index 0 and the continuation control positions
// (64, 128) are unused by convention.
type MessageSpec struct {
	Fields [129]*FieldSpec
}

// NewMessageSpec builds a MessageSpec from a sparse field-number -> spec
// map, the shape callers most often have on hand (e.g. from config).
func NewMessageSpec(fields map[int]FieldSpec) *MessageSpec {
	spec := &MessageSpec{}
	for idx, fs := range fields {
		if idx < 0 || idx > 128 {
			continue
		}
		fsCopy := fs
		spec.Fields[idx] = &fsCopy
	}
	return spec
}
