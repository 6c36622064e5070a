package iso8583

import (
	"testing"

	"github.com/euicc-go/bertlv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTLVSimpleElement(t *testing.T) {
	// Tag 0x9F02, length 0x02, value 0x1234 -- a primitive EMV-style element.
	buf := []byte{0x9F, 0x02, 0x02, 0x12, 0x34}
	elements, err := ParseTLV(buf)
	require.NoError(t, err)
	require.Len(t, elements, 1)
	assert.Equal(t, []byte{0x12, 0x34}, elements[0].Value)
}

func TestPackTLVRoundTrip(t *testing.T) {
	elements := []TLV{
		{Tag: bertlv.Tag(0x9F02), Value: []byte{0x00, 0x00, 0x00, 0x01, 0x00, 0x00}},
	}
	encoded, err := PackTLV(elements)
	require.NoError(t, err)

	decoded, err := ParseTLV(encoded)
	require.NoError(t, err)
	require.Len(t, decoded, 1)
	assert.Equal(t, elements[0].Value, decoded[0].Value)
}

func TestFindLocatesNestedTag(t *testing.T) {
	target := bertlv.Tag(0x5A)
	elements := []TLV{
		{Tag: bertlv.Tag(0x70), Children: []TLV{
			{Tag: target, Value: []byte{0x41, 0x11}},
		}},
	}
	found, ok := Find(elements, target)
	require.True(t, ok)
	assert.Equal(t, []byte{0x41, 0x11}, found.Value)
}
