package iso8583

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPackager() *CompiledPackager {
	return NewCompiledPackager(&PackagerConfig{
		Fields: map[int]FieldConfig{
			1: {Type: FieldTypeANS, Length: LengthFixed, MaxLength: 4},
		},
		Codec: DefaultCodec(),
	})
}

func TestProcessorProcessSingle(t *testing.T) {
	p := NewProcessor(testPackager())
	raw := []byte("0120\x02\x00\x00\x00\x00\x00\x00\x00ABCD")

	msg, err := p.Process(raw)
	require.NoError(t, err)
	defer msg.Release()

	fld, ok := msg.Field(1)
	require.True(t, ok)
	assert.Equal(t, "ABCD", fld.String())
}

func TestProcessorProcessBatch(t *testing.T) {
	p := NewProcessor(testPackager(), WithConcurrency(2))
	good := []byte("0120\x02\x00\x00\x00\x00\x00\x00\x00ABCD")
	bad := []byte("01")

	results, err := p.ProcessBatch(context.Background(), [][]byte{good, bad})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.NotNil(t, results[0])
	assert.Nil(t, results[1])
	results[0].Release()
}

func TestProcessorErrorHandlerInvoked(t *testing.T) {
	var captured error
	p := NewProcessor(testPackager(), WithErrorHandler(func(err error) {
		captured = err
	}))

	_, err := p.ProcessBatch(context.Background(), [][]byte{[]byte("01")})
	require.NoError(t, err)
	assert.Error(t, captured)
}
