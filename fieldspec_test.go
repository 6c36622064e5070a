package iso8583

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldSpecToReadFixed(t *testing.T) {
	fs := FieldSpec{Name: "TEST", FieldType: FieldTypeANS, LengthType: LengthFixed, Length: 8}
	cur := newCursor([]byte("TEST1234"))
	n, err := fs.ToRead(DefaultCodec(), cur)
	require.NoError(t, err)
	assert.Equal(t, 8, n)
}

func TestFieldSpecToReadLVar(t *testing.T) {
	fs := FieldSpec{Name: "TEST", FieldType: FieldTypeANS, LengthType: LengthLVar, Length: 8}
	codec := DefaultCodec()

	n, err := fs.ToRead(codec, newCursor([]byte("3ABC")))
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	n, err = fs.ToRead(codec, newCursor([]byte("0ABC")))
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	_, err = fs.ToRead(codec, newCursor([]byte("9ABC")))
	require.Error(t, err)
	assert.Equal(t, "Variable length field over max length (9 > 8)", err.Error())

	_, err = fs.ToRead(codec, newCursor([]byte("")))
	require.Error(t, err)
	assert.Equal(t, "Unable to read length prefix (1 chars needed, 0 available)", err.Error())

	_, err = fs.ToRead(codec, newCursor([]byte("!ABC")))
	require.Error(t, err)
	assert.Equal(t, "Length byte out of range: 0x21", err.Error())

	_, err = fs.ToRead(codec, newCursor([]byte("ABC")))
	require.Error(t, err)
	assert.Equal(t, "Length byte out of range: 0x41", err.Error())
}

func TestFieldSpecToReadLLVar(t *testing.T) {
	fs := FieldSpec{Name: "TEST", FieldType: FieldTypeANS, LengthType: LengthLLVar, Length: 12}
	codec := DefaultCodec()

	n, err := fs.ToRead(codec, newCursor([]byte("03ABC")))
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	n, err = fs.ToRead(codec, newCursor([]byte("11ABCABCABCAB")))
	require.NoError(t, err)
	assert.Equal(t, 11, n)

	n, err = fs.ToRead(codec, newCursor([]byte("00ABC")))
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	_, err = fs.ToRead(codec, newCursor([]byte("13ABC")))
	require.Error(t, err)
	assert.Equal(t, "Variable length field over max length (13 > 12)", err.Error())

	_, err = fs.ToRead(codec, newCursor([]byte("")))
	require.Error(t, err)
	assert.Equal(t, "Unable to read length prefix (2 chars needed, 0 available)", err.Error())

	_, err = fs.ToRead(codec, newCursor([]byte("1")))
	require.Error(t, err)
	assert.Equal(t, "Unable to read length prefix (2 chars needed, 1 available)", err.Error())

	_, err = fs.ToRead(codec, newCursor([]byte("!1ABC")))
	require.Error(t, err)
	assert.Equal(t, "Length byte out of range: 0x21", err.Error())

	_, err = fs.ToRead(codec, newCursor([]byte("1!ABC")))
	require.Error(t, err)
	assert.Equal(t, "Length byte out of range: 0x21", err.Error())
}

func TestFieldSpecToReadLLLVar(t *testing.T) {
	fs := FieldSpec{Name: "TEST", FieldType: FieldTypeANS, LengthType: LengthLLLVar, Length: 110}
	codec := DefaultCodec()

	n, err := fs.ToRead(codec, newCursor([]byte("003ABC")))
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	n, err = fs.ToRead(codec, newCursor([]byte("011ABCABCABCAB")))
	require.NoError(t, err)
	assert.Equal(t, 11, n)

	n, err = fs.ToRead(codec, newCursor([]byte("000ABC")))
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	_, err = fs.ToRead(codec, newCursor([]byte("111ABC")))
	require.Error(t, err)
	assert.Equal(t, "Variable length field over max length (111 > 110)", err.Error())

	_, err = fs.ToRead(codec, newCursor([]byte("")))
	require.Error(t, err)
	assert.Equal(t, "Unable to read length prefix (3 chars needed, 0 available)", err.Error())

	_, err = fs.ToRead(codec, newCursor([]byte("1")))
	require.Error(t, err)
	assert.Equal(t, "Unable to read length prefix (3 chars needed, 1 available)", err.Error())

	_, err = fs.ToRead(codec, newCursor([]byte("11")))
	require.Error(t, err)
	assert.Equal(t, "Unable to read length prefix (3 chars needed, 2 available)", err.Error())

	_, err = fs.ToRead(codec, newCursor([]byte("!10ABC")))
	require.Error(t, err)
	assert.Equal(t, "Length byte out of range: 0x21", err.Error())
}

func TestFieldSpecMinMaxValueSize(t *testing.T) {
	fixed := FieldSpec{LengthType: LengthFixed, Length: 8}
	assert.Equal(t, 8, fixed.MinValueSize())
	assert.Equal(t, 8, fixed.MaxValueSize())

	llvar := FieldSpec{LengthType: LengthLLVar, Length: 200}
	assert.Equal(t, 1, llvar.MinValueSize())
	assert.Equal(t, 99, llvar.MaxValueSize(), "LLVar caps at the 2-digit prefix width even if Length is larger")
}

func TestFieldSpecSerializeFieldFixedMismatch(t *testing.T) {
	fs := FieldSpec{LengthType: LengthFixed, Length: 4}
	buf := bytes.NewBuffer(nil)
	err := fs.SerializeField(DefaultCodec(), buf, NewField([]byte("12345")))
	require.Error(t, err)
	assert.Equal(t, "Invalid field length", err.Error())
}

func TestFieldSpecToReadLLVarByteFormat(t *testing.T) {
	fs := FieldSpec{Name: "TEST", FieldType: FieldTypeANS, LengthType: LengthLLVar, Length: 200}
	codec := Codec{LLFormat: Byte}

	// A single raw byte (0x03) carries the length, not two ASCII digits.
	n, err := fs.ToRead(codec, newCursor([]byte{0x03, 'A', 'B', 'C'}))
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestFieldSpecSerializeFieldByteFormatRoundTrip(t *testing.T) {
	fs := FieldSpec{Name: "TEST", FieldType: FieldTypeANS, LengthType: LengthLLVar, Length: 200}
	codec := Codec{LLFormat: Byte}

	buf := bytes.NewBuffer(nil)
	require.NoError(t, fs.SerializeField(codec, buf, NewField([]byte("ABC"))))
	assert.Equal(t, []byte{0x03, 'A', 'B', 'C'}, buf.Bytes())

	n, err := fs.ToRead(codec, newCursor(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestFieldSpecSerializeFieldByteFormatOverMax(t *testing.T) {
	fs := FieldSpec{Name: "TEST", FieldType: FieldTypeANS, LengthType: LengthLLVar, Length: 200}
	codec := Codec{LLFormat: Byte}

	buf := bytes.NewBuffer(nil)
	err := fs.SerializeField(codec, buf, NewField(bytes.Repeat([]byte("A"), 256)))
	require.Error(t, err)
	assert.Equal(t, "Length out of range: 256", err.Error())
}
