package iso8583

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderHappyPath(t *testing.T) {
	spec := DefaultMessageSpec()
	msg, err := NewBuilder(spec).
		MTI("0200").
		PAN("4111111111111111").
		ProcessingCode("000000").
		Amount("000000010000").
		STAN("123456").
		Build()
	require.NoError(t, err)
	defer msg.Release()

	assert.Equal(t, "0200", msg.MTI().String())
	fld, ok := msg.Field(2)
	require.True(t, ok)
	assert.Equal(t, "4111111111111111", fld.String())
}

func TestBuilderInvalidMTI(t *testing.T) {
	spec := DefaultMessageSpec()
	_, err := NewBuilder(spec).MTI("12").Build()
	require.Error(t, err)
	assert.Equal(t, "Truncated MTI", err.Error())
}

func TestBuilderMustBuildPanicsOnError(t *testing.T) {
	spec := DefaultMessageSpec()
	assert.Panics(t, func() {
		NewBuilder(spec).MTI("bad").MustBuild()
	})
}

func TestNewBuilderAppliesMessageOptions(t *testing.T) {
	spec := DefaultMessageSpec()
	msg, err := NewBuilder(spec, WithMTI("0800"), WithField(11, []byte("000001"))).Build()
	require.NoError(t, err)
	defer msg.Release()

	assert.Equal(t, "0800", msg.MTI().String())
	fld, ok := msg.Field(11)
	require.True(t, ok)
	assert.Equal(t, "000001", fld.String())
}
