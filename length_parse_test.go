package iso8583

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLengthValueExtractsAndValidatesNumeric(t *testing.T) {
	spec := NewMessageSpec(map[int]FieldSpec{
		4: {Name: "DE4", FieldType: FieldTypeN, LengthType: LengthFixed, Length: 12},
	})
	msg := NewMessage(spec)
	defer msg.Release()
	msg.SetField(4, []byte("000000010000"))

	results, err := ParseLengthValue(msg, map[string]BitValueLength{
		"amount": {BitNumber: 4, DataType: DataTypeNumeric, Length: 12, Required: true},
	})
	require.NoError(t, err)
	assert.Equal(t, "000000010000", results["amount"].Value)
	assert.True(t, results["amount"].IsValid)
}

func TestParseLengthValueRequiredFieldMissing(t *testing.T) {
	spec := NewMessageSpec(map[int]FieldSpec{
		4: {Name: "DE4", FieldType: FieldTypeN, LengthType: LengthFixed, Length: 12},
	})
	msg := NewMessage(spec)
	defer msg.Release()

	_, err := ParseLengthValue(msg, map[string]BitValueLength{
		"amount": {BitNumber: 4, DataType: DataTypeNumeric, Required: true},
	})
	require.Error(t, err)
}

func TestParseLengthValueValidatesYYMMDDFormat(t *testing.T) {
	spec := NewMessageSpec(map[int]FieldSpec{
		13: {Name: "DE13", FieldType: FieldTypeN, LengthType: LengthFixed, Length: 6},
	})
	msg := NewMessage(spec)
	defer msg.Release()
	msg.SetField(13, []byte("260315"))

	results, err := ParseLengthValue(msg, map[string]BitValueLength{
		"txn_date": {BitNumber: 13, DataType: DataTypeNumeric, Format: FormatYYMMDD, Length: 6},
	})
	require.NoError(t, err)
	assert.Equal(t, "260315", results["txn_date"].Value)
}

func TestParseLengthValueRejectsWrongLength(t *testing.T) {
	spec := NewMessageSpec(map[int]FieldSpec{
		11: {Name: "DE11", FieldType: FieldTypeN, LengthType: LengthFixed, Length: 6},
	})
	msg := NewMessage(spec)
	defer msg.Release()
	msg.SetField(11, []byte("12345"))

	_, err := ParseLengthValue(msg, map[string]BitValueLength{
		"stan": {BitNumber: 11, DataType: DataTypeNumeric, Length: 6},
	})
	require.Error(t, err)
}

func TestParseLengthValueSubstringExtraction(t *testing.T) {
	spec := NewMessageSpec(map[int]FieldSpec{
		2: {Name: "DE2", FieldType: FieldTypeN, LengthType: LengthFixed, Length: 16},
	})
	msg := NewMessage(spec)
	defer msg.Release()
	msg.SetField(2, []byte("4111111111111111"))

	results, err := ParseLengthValue(msg, map[string]BitValueLength{
		"bin": {BitNumber: 2, DataType: DataTypeNumeric, From: 1, Until: 6},
	})
	require.NoError(t, err)
	assert.Equal(t, "411111", results["bin"].Value)
}
