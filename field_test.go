package iso8583

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldBytesAndString(t *testing.T) {
	f := NewField([]byte("12345"))
	assert.Equal(t, []byte("12345"), f.Bytes())
	assert.Equal(t, "12345", f.String())
	assert.Equal(t, 5, f.Len())
}

func TestFieldEmptyString(t *testing.T) {
	f := NewField(nil)
	assert.Equal(t, "", f.String())
	assert.Equal(t, 0, f.Len())
}

func TestFieldIntParsing(t *testing.T) {
	f := NewField([]byte("42"))
	n, err := f.Int()
	require.NoError(t, err)
	assert.Equal(t, 42, n)

	n64, err := f.Int64()
	require.NoError(t, err)
	assert.EqualValues(t, 42, n64)
}

func TestFieldIntParsingError(t *testing.T) {
	f := NewField([]byte("not-a-number"))
	_, err := f.Int()
	require.Error(t, err)
}
