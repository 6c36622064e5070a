package iso8583

import "fmt"

// CharEncoding selects the byte range used to represent decimal digits on
// the wire, for both length prefixes and numeric field payloads.
type CharEncoding int

const (
	// ASCII digits occupy 0x30 ('0') through 0x39 ('9').
	ASCII CharEncoding = iota
	// EBCDIC digits occupy 0xF0 through 0xF9.
	EBCDIC
)

func (e CharEncoding) String() string {
	if e == EBCDIC {
		return "EBCDIC"
	}
	return "ASCII"
}

// Framing describes the outer transport convention a message was (or will
// be) wrapped in. The core codec never reads or writes framing bytes; the
// value is carried for callers composing a transport layer on top (see
// WriteLengthIndicator/ReadLengthIndicator and frame.go).
type Framing int

const (
	FramingUnframed Framing = iota
	FramingMHeader          // 2-byte binary length header
	FramingVHeader          // 4-digit ASCII/hex length header
)

// LLFormat selects how length-prefix digits are represented: one
// ASCII/EBCDIC byte per decimal digit (Symbolic) or a single raw binary
// byte holding the numeric length 0-255 (Byte).
type LLFormat int

const (
	Symbolic LLFormat = iota
	Byte
)

// Codec is an immutable value describing the wire conventions a Message is
// parsed and serialized under. It carries no behavior beyond simple byte
// translation and is always passed by value — there is no reason to box it
// behind an interface, since every decision it makes is a flat enum switch.
type Codec struct {
	LengthEncoding CharEncoding
	DataEncoding   CharEncoding
	Framing        Framing
	LLFormat       LLFormat
}

// DefaultCodec returns the conventional {ASCII, ASCII, Unframed, Symbolic}
// codec used by the large majority of ISO 8583 wire dialects.
func DefaultCodec() Codec {
	return Codec{
		LengthEncoding: ASCII,
		DataEncoding:   ASCII,
		Framing:        FramingUnframed,
		LLFormat:       Symbolic,
	}
}

func digitRange(enc CharEncoding) (lo, hi byte) {
	if enc == EBCDIC {
		return 0xF0, 0xF9
	}
	return 0x30, 0x39
}

// byteToDigit translates one wire byte into its decimal value under the
// codec's length encoding. Under LLFormat Byte, b is itself the value
// (full 0-255 range, no range check); under Symbolic, it is the single
// ASCII/EBCDIC digit 0-9 occupying that byte.
func (c Codec) byteToDigit(b byte) (int, error) {
	if c.LLFormat == Byte {
		return int(b), nil
	}
	lo, hi := digitRange(c.LengthEncoding)
	if b < lo || b > hi {
		return 0, &ParseError{Message: fmt.Sprintf("Length byte out of range: 0x%02x", b)}
	}
	return int(b - lo), nil
}

// digitToByte is the inverse of byteToDigit: it encodes a single decimal
// digit (0-9) as a wire byte under the codec's length encoding. Only
// meaningful under Symbolic; Byte format encodes its length directly
// (see FieldSpec.serializePrefix) and never calls this.
func (c Codec) digitToByte(d int) byte {
	lo, _ := digitRange(c.LengthEncoding)
	return lo + byte(d)
}

// lengthSizeBytes returns the number of wire bytes a length prefix with
// symbolicDigits decimal digits actually occupies under this codec's
// LLFormat: the digit count itself under Symbolic, or a single raw byte
// under Byte.
func (c Codec) lengthSizeBytes(symbolicDigits int) int {
	if c.LLFormat == Byte {
		if symbolicDigits == 0 {
			return 0
		}
		return 1
	}
	return symbolicDigits
}

// isNumeric reports whether b is a valid digit under the codec's data
// encoding. The Validator's NumericRule does not consult it; that rule
// checks ASCII digits only.
func (c Codec) isNumeric(b byte) bool {
	lo, hi := digitRange(c.DataEncoding)
	return b >= lo && b <= hi
}
