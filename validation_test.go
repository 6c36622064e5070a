package iso8583

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLengthRule(t *testing.T) {
	rule := &LengthRule{ExactLength: 4}
	require.NoError(t, rule.Validate(NewField([]byte("1234"))))
	assert.Error(t, rule.Validate(NewField([]byte("123"))))
}

func TestNumericRule(t *testing.T) {
	rule := &NumericRule{}
	require.NoError(t, rule.Validate(NewField([]byte("123456"))))
	assert.Error(t, rule.Validate(NewField([]byte("12A456"))))
}

func TestAlphanumericRuleRejectsSpecialChars(t *testing.T) {
	rule := &AlphanumericRule{}
	require.NoError(t, rule.Validate(NewField([]byte("ABC123"))))
	assert.Error(t, rule.Validate(NewField([]byte("ABC-123"))))
}

func TestRangeRule(t *testing.T) {
	rule := &RangeRule{Min: 0, Max: 100}
	require.NoError(t, rule.Validate(NewField([]byte("50"))))
	assert.Error(t, rule.Validate(NewField([]byte("150"))))
}

func TestCompileValidatorMandatoryFields(t *testing.T) {
	config := &PackagerConfig{
		Fields: map[int]FieldConfig{
			3: {Type: FieldTypeN, Length: LengthFixed, MaxLength: 6, Mandatory: true},
			4: {Type: FieldTypeN, Length: LengthFixed, MaxLength: 12, Mandatory: false},
		},
	}
	validator := compileValidator(config)

	spec := NewMessageSpec(map[int]FieldSpec{
		3: {FieldType: FieldTypeN, LengthType: LengthFixed, Length: 6},
		4: {FieldType: FieldTypeN, LengthType: LengthFixed, Length: 12},
	})
	msg := NewMessage(spec)
	defer msg.Release()

	err := validator.ValidateMessage(msg, ValidationBasic)
	require.Error(t, err, "DE 3 is mandatory and missing")

	msg.SetField(3, []byte("123456"))
	err = validator.ValidateMessage(msg, ValidationBasic)
	assert.NoError(t, err)
}

func findLengthRule(rules []ValidationRule) *LengthRule {
	for _, r := range rules {
		if lr, ok := r.(*LengthRule); ok {
			return lr
		}
	}
	return nil
}

func TestCompileValidatorDefaultsLengthRuleFromFieldSpecBoundsFixed(t *testing.T) {
	config := &PackagerConfig{
		Fields: map[int]FieldConfig{
			// No explicit MinLength: a Fixed field's min defaults to its
			// exact width via FieldSpec.MinValueSize.
			3: {Type: FieldTypeN, Length: LengthFixed, MaxLength: 6},
		},
	}
	validator := compileValidator(config)

	lengthRule := findLengthRule(validator.fieldRules[3])
	require.NotNil(t, lengthRule, "compileValidator should default a LengthRule from FieldSpec bounds")
	assert.Equal(t, 6, lengthRule.MinLength)
	assert.Equal(t, 6, lengthRule.MaxLength)

	assert.NoError(t, lengthRule.Validate(NewField([]byte("123456"))))
	assert.Error(t, lengthRule.Validate(NewField([]byte("12345"))))
}

func TestCompileValidatorClampsMaxLengthToLengthPrefixDigitCap(t *testing.T) {
	config := &PackagerConfig{
		Fields: map[int]FieldConfig{
			// MaxLength (200) exceeds what a 2-digit LLVar prefix can
			// represent (99); FieldSpec.MaxValueSize must win.
			2: {Type: FieldTypeN, Length: LengthLLVar, MaxLength: 200},
		},
	}
	validator := compileValidator(config)

	lengthRule := findLengthRule(validator.fieldRules[2])
	require.NotNil(t, lengthRule)
	assert.Equal(t, 1, lengthRule.MinLength, "variable-length fields default to a minimum of 1 byte")
	assert.Equal(t, 99, lengthRule.MaxLength)
}

func TestValidateMessageAggregatesAllViolations(t *testing.T) {
	config := &PackagerConfig{
		Fields: map[int]FieldConfig{
			3: {Type: FieldTypeN, Length: LengthFixed, MaxLength: 6, Mandatory: true},
			4: {Type: FieldTypeN, Length: LengthFixed, MaxLength: 12, Mandatory: true},
		},
	}
	validator := compileValidator(config)

	spec := NewMessageSpec(map[int]FieldSpec{
		3: {FieldType: FieldTypeN, LengthType: LengthFixed, Length: 6},
		4: {FieldType: FieldTypeN, LengthType: LengthFixed, Length: 12},
	})
	msg := NewMessage(spec)
	defer msg.Release()

	err := validator.ValidateMessage(msg, ValidationBasic)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 errors occurred")
}
