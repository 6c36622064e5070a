package iso8583

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteReadHeaderBinary(t *testing.T) {
	buf := make([]byte, 2)
	n, err := WriteHeader(200, buf, HeaderBinary)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	got, err := ReadHeader(buf, HeaderBinary)
	require.NoError(t, err)
	assert.Equal(t, 200, got)
}

func TestWriteReadHeaderASCII(t *testing.T) {
	buf := make([]byte, 4)
	n, err := WriteHeader(200, buf, HeaderASCII)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, "0200", string(buf))

	got, err := ReadHeader(buf, HeaderASCII)
	require.NoError(t, err)
	assert.Equal(t, 200, got)
}

func TestWriteReadHeaderHex(t *testing.T) {
	buf := make([]byte, 4)
	n, err := WriteHeader(200, buf, HeaderHex)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, "00C8", string(buf))

	got, err := ReadHeader(buf, HeaderHex)
	require.NoError(t, err)
	assert.Equal(t, 200, got)
}

func TestWriteHeaderNoneIsNoop(t *testing.T) {
	n, err := WriteHeader(200, nil, HeaderNone)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestWriteHeaderBinaryBufferTooSmall(t *testing.T) {
	buf := make([]byte, 1)
	_, err := WriteHeader(200, buf, HeaderBinary)
	require.Error(t, err)
}

func TestReadHeaderHexInvalidDigit(t *testing.T) {
	_, err := ReadHeader([]byte("ZZZZ"), HeaderHex)
	require.Error(t, err)
}

func TestReadHeaderASCIIInsufficientData(t *testing.T) {
	_, err := ReadHeader([]byte("02"), HeaderASCII)
	require.Error(t, err)
}
