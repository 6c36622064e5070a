package iso8583

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldConfigUnmarshalJSONAcceptsNumericType(t *testing.T) {
	var fc FieldConfig
	require.NoError(t, json.Unmarshal([]byte(`{"type": 1, "max_length": 19}`), &fc))
	assert.Equal(t, FieldTypeN, fc.Type)
}

func TestFieldConfigUnmarshalJSONAcceptsMnemonicType(t *testing.T) {
	cases := map[string]FieldType{
		"A":   FieldTypeA,
		"N":   FieldTypeN,
		"S":   FieldTypeS,
		"NS":  FieldTypeNS,
		"AN":  FieldTypeAN,
		"B":   FieldTypeB,
		"ANS": FieldTypeANS,
	}
	for mnemonic, want := range cases {
		var fc FieldConfig
		raw := []byte(`{"type": "` + mnemonic + `"}`)
		require.NoError(t, json.Unmarshal(raw, &fc))
		assert.Equal(t, want, fc.Type, "mnemonic %s", mnemonic)
	}
}

func TestFieldConfigUnmarshalJSONUnknownMnemonicDefaultsToANS(t *testing.T) {
	var fc FieldConfig
	require.NoError(t, json.Unmarshal([]byte(`{"type": "bogus"}`), &fc))
	assert.Equal(t, FieldTypeANS, fc.Type)
}

func TestFieldConfigToFieldSpec(t *testing.T) {
	fc := FieldConfig{Type: FieldTypeN, Length: LengthLLVar, MaxLength: 19}
	fs := fc.ToFieldSpec("DE2")
	assert.Equal(t, "DE2", fs.Name)
	assert.Equal(t, FieldTypeN, fs.FieldType)
	assert.Equal(t, LengthLLVar, fs.LengthType)
	assert.Equal(t, 19, fs.Length)
}
