package iso8583

import (
	"fmt"
	"regexp"
	"sync"

	"github.com/hashicorp/go-multierror"
)

// ValidationRule defines the interface for a single validation rule.
type ValidationRule interface {
	Validate(field Field) error
	Name() string
}

// Validator holds a pre-compiled set of validation rules derived from a
// PackagerConfig. It is safe for concurrent use.
type Validator struct {
	mandatoryFields map[int]bool
	fieldRules      map[int][]ValidationRule
	globalRules     []ValidationRule
	validationLevel ValidationLevel
	mu              sync.RWMutex
}

// NewValidator creates a new, empty validator.
func NewValidator() *Validator {
	return &Validator{
		mandatoryFields: make(map[int]bool),
		fieldRules:      make(map[int][]ValidationRule),
		globalRules:     make([]ValidationRule, 0),
		validationLevel: ValidationBasic,
	}
}

// AddGlobalRule adds a rule that will be applied to all fields.
func (v *Validator) AddGlobalRule(rule ValidationRule) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.globalRules = append(v.globalRules, rule)
}

// ValidateMessage validates every field present on msg, plus mandatory
// field presence. Unlike ValidateField, it does not stop at the first
// failure: every violation is collected and returned together via
// hashicorp/go-multierror, so a caller can report all problems with a
// message in one pass instead of resubmitting it field by field.
func (v *Validator) ValidateMessage(msg *Message, level ValidationLevel) error {
	v.mu.RLock()
	defer v.mu.RUnlock()

	if level == ValidationNone {
		return nil
	}

	var result *multierror.Error

	for fieldNum := 1; fieldNum <= MaxFieldNumber; fieldNum++ {
		if v.mandatoryFields[fieldNum] && !msg.HasField(fieldNum) {
			result = multierror.Append(result, &ValidationError{
				Field:   fieldNum,
				Rule:    "mandatory",
				Message: "mandatory field missing",
			})
			continue
		}

		if msg.HasField(fieldNum) {
			field, _ := msg.Field(fieldNum)
			if err := v.ValidateField(fieldNum, field); err != nil {
				result = multierror.Append(result, err)
			}
		}
	}

	return result.ErrorOrNil()
}

// ValidateField validates a single field against all applicable rules,
// returning the first violation encountered.
func (v *Validator) ValidateField(fieldNum int, field Field) error {
	v.mu.RLock()
	defer v.mu.RUnlock()

	if rules, exists := v.fieldRules[fieldNum]; exists {
		for _, rule := range rules {
			if err := rule.Validate(field); err != nil {
				return &ValidationError{Field: fieldNum, Rule: rule.Name(), Message: err.Error()}
			}
		}
	}

	for _, rule := range v.globalRules {
		if err := rule.Validate(field); err != nil {
			return &ValidationError{Field: fieldNum, Rule: rule.Name(), Message: err.Error()}
		}
	}

	return nil
}

// Clone creates a deep copy of the Validator.
func (v *Validator) Clone() *Validator {
	v.mu.RLock()
	defer v.mu.RUnlock()

	clone := NewValidator()
	for k, val := range v.mandatoryFields {
		clone.mandatoryFields[k] = val
	}
	for k, rules := range v.fieldRules {
		clone.fieldRules[k] = make([]ValidationRule, len(rules))
		copy(clone.fieldRules[k], rules)
	}
	clone.globalRules = make([]ValidationRule, len(v.globalRules))
	copy(clone.globalRules, v.globalRules)
	clone.validationLevel = v.validationLevel

	return clone
}

// --- Validation rule implementations ---

// LengthRule validates the field's length.
type LengthRule struct {
	MinLength   int
	MaxLength   int
	ExactLength int
	AllowEmpty  bool
}

func (r *LengthRule) Name() string { return "length" }

func (r *LengthRule) Validate(field Field) error {
	length := field.Len()

	if length == 0 && r.AllowEmpty {
		return nil
	}
	if r.ExactLength > 0 && length != r.ExactLength {
		return fmt.Errorf("expected length %d, got %d", r.ExactLength, length)
	}
	if r.MinLength > 0 && length < r.MinLength {
		return fmt.Errorf("length %d below minimum %d", length, r.MinLength)
	}
	if r.MaxLength > 0 && length > r.MaxLength {
		return fmt.Errorf("length %d exceeds maximum %d", length, r.MaxLength)
	}
	return nil
}

// NumericRule validates that the field contains only numeric digits.
type NumericRule struct {
	AllowEmpty        bool
	AllowLeadingZeros bool
}

func (r *NumericRule) Name() string { return "numeric" }

func (r *NumericRule) Validate(field Field) error {
	data := field.Bytes()
	if len(data) == 0 && r.AllowEmpty {
		return nil
	}
	for i, b := range data {
		if b < '0' || b > '9' {
			return fmt.Errorf("non-numeric character at position %d", i)
		}
	}
	if !r.AllowLeadingZeros && len(data) > 1 && data[0] == '0' {
		return fmt.Errorf("leading zeros not allowed")
	}
	return nil
}

// AlphanumericRule validates alphanumeric content.
type AlphanumericRule struct {
	AllowEmpty        bool
	AllowSpecialChars bool
	CustomCharset     string
}

func (r *AlphanumericRule) Name() string { return "alphanumeric" }

func (r *AlphanumericRule) Validate(field Field) error {
	data := field.Bytes()
	if len(data) == 0 && r.AllowEmpty {
		return nil
	}
	for i, b := range data {
		if r.CustomCharset != "" {
			found := false
			for _, c := range r.CustomCharset {
				if byte(c) == b {
					found = true
					break
				}
			}
			if !found {
				return fmt.Errorf("invalid character at position %d", i)
			}
		} else if !r.AllowSpecialChars {
			if !((b >= '0' && b <= '9') || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') || b == ' ') {
				return fmt.Errorf("special character not allowed at position %d", i)
			}
		}
	}
	return nil
}

// BinaryRule validates binary data.
type BinaryRule struct {
	AllowEmpty        bool
	RequireEvenLength bool
}

func (r *BinaryRule) Name() string { return "binary" }

func (r *BinaryRule) Validate(field Field) error {
	data := field.Bytes()
	if len(data) == 0 && r.AllowEmpty {
		return nil
	}
	if r.RequireEvenLength && len(data)%2 != 0 {
		return fmt.Errorf("binary data must have even length")
	}
	return nil
}

// RegexRule validates the field against a regular expression. NewRegexRule
// compiles Pattern when the rule is built; a RegexRule written as a struct
// literal compiles it on its first Validate call.
type RegexRule struct {
	Pattern     string
	AllowEmpty  bool
	Description string
	regex       *regexp.Regexp
}

func NewRegexRule(pattern string, allowEmpty bool, description string) *RegexRule {
	return &RegexRule{Pattern: pattern, AllowEmpty: allowEmpty, Description: description, regex: regexp.MustCompile(pattern)}
}

func (r *RegexRule) Name() string { return "regex" }

func (r *RegexRule) Validate(field Field) error {
	if r.regex == nil {
		r.regex = regexp.MustCompile(r.Pattern)
	}
	data := field.String()
	if len(data) == 0 && r.AllowEmpty {
		return nil
	}
	if !r.regex.MatchString(data) {
		if r.Description != "" {
			return fmt.Errorf("%s", r.Description)
		}
		return fmt.Errorf("does not match pattern %s", r.Pattern)
	}
	return nil
}

// RangeRule validates that a numeric field's value is within a given range.
type RangeRule struct {
	Min        int64
	Max        int64
	AllowEmpty bool
}

func (r *RangeRule) Name() string { return "range" }

func (r *RangeRule) Validate(field Field) error {
	if field.Len() == 0 && r.AllowEmpty {
		return nil
	}
	val, err := field.Int64()
	if err != nil {
		return fmt.Errorf("cannot parse as integer: %v", err)
	}
	if val < r.Min {
		return fmt.Errorf("value %d below minimum %d", val, r.Min)
	}
	if val > r.Max {
		return fmt.Errorf("value %d exceeds maximum %d", val, r.Max)
	}
	return nil
}

// CustomRule allows defining an arbitrary validation function.
type CustomRule struct {
	ValidateFunc func(Field) error
	RuleName     string
}

func (r *CustomRule) Name() string          { return r.RuleName }
func (r *CustomRule) Validate(f Field) error { return r.ValidateFunc(f) }

// TrackDataRule provides basic validation for track data (e.g. from a
// magnetic stripe, DE 35/DE 36).
type TrackDataRule struct {
	AllowEmpty bool
	MinLength  int
}

func (r *TrackDataRule) Name() string { return "track_data" }

func (r *TrackDataRule) Validate(field Field) error {
	data := field.String()
	if len(data) == 0 && r.AllowEmpty {
		return nil
	}
	min := r.MinLength
	if min == 0 {
		min = 10
	}
	if len(data) < min {
		return fmt.Errorf("track data too short")
	}
	return nil
}

// compileValidator creates a new Validator based on the rules implied by
// a PackagerConfig's field table.
func compileValidator(config *PackagerConfig) *Validator {
	validator := NewValidator()

	for fieldNum, fieldConfig := range config.Fields {
		if fieldConfig.Mandatory {
			validator.mandatoryFields[fieldNum] = true
		}

		var rules []ValidationRule

		// Min/MaxLength default from the field's own FieldSpec bounds
		// (FieldSpec.MinValueSize/MaxValueSize), which already know a
		// Fixed field's exact width and a variable field's length-prefix
		// digit cap; an explicit, stricter FieldConfig.MinLength/MaxLength
		// narrows the bound further.
		fs := fieldConfig.ToFieldSpec(fmt.Sprintf("DE%d", fieldNum))
		minLen := fs.MinValueSize()
		if fieldConfig.MinLength > minLen {
			minLen = fieldConfig.MinLength
		}
		maxLen := fs.MaxValueSize()
		if fieldConfig.MaxLength > 0 && fieldConfig.MaxLength < maxLen {
			maxLen = fieldConfig.MaxLength
		}
		if minLen > 0 || maxLen > 0 {
			rules = append(rules, &LengthRule{
				MinLength: minLen,
				MaxLength: maxLen,
			})
		}

		switch fieldConfig.Type {
		case FieldTypeN:
			rules = append(rules, &NumericRule{AllowLeadingZeros: true})
		case FieldTypeANS:
			rules = append(rules, &AlphanumericRule{AllowSpecialChars: true})
		case FieldTypeAN:
			rules = append(rules, &AlphanumericRule{})
		case FieldTypeB:
			rules = append(rules, &BinaryRule{})
		}

		if len(rules) > 0 {
			validator.fieldRules[fieldNum] = rules
		}
	}

	return validator
}
