package iso8583

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
)

// CompiledPackager bundles a compiled MessageSpec, Codec, and Validator
// derived from a PackagerConfig. It is immutable after construction and
// safe for concurrent use by multiple Processors/Builders.
type CompiledPackager struct {
	spec            *MessageSpec
	codec           Codec
	config          *PackagerConfig
	validator       *Validator
	fieldConfigs    map[int]FieldConfig
	bitmapEncoding  BitmapEncoding
	lengthIndicator LengthIndicatorConfig
	headerConfig    HeaderConfig
	tlvConfig       TLVConfig
}

// NewCompiledPackager compiles a PackagerConfig into a ready-to-use
// CompiledPackager, including its MessageSpec and Validator.
func NewCompiledPackager(config *PackagerConfig) *CompiledPackager {
	fields := make(map[int]FieldSpec, len(config.Fields))
	for num, fc := range config.Fields {
		fields[num] = fc.ToFieldSpec(fmt.Sprintf("DE%d", num))
	}

	cp := &CompiledPackager{
		spec:            NewMessageSpec(fields),
		codec:           config.Codec,
		config:          config,
		fieldConfigs:    config.Fields,
		bitmapEncoding:  config.BitmapEncoding,
		lengthIndicator: config.LengthIndicator,
		headerConfig:    config.Header,
		tlvConfig:       config.TLV,
	}
	cp.validator = compileValidator(config)
	return cp
}

// Spec returns the compiled MessageSpec.
func (cp *CompiledPackager) Spec() *MessageSpec { return cp.spec }

// Codec returns the compiled Codec.
func (cp *CompiledPackager) Codec() Codec { return cp.codec }

// Validator returns the compiled Validator.
func (cp *CompiledPackager) Validator() *Validator { return cp.validator }

// FieldConfig retrieves the configuration for a specific field number.
func (cp *CompiledPackager) FieldConfig(fieldNum int) (FieldConfig, bool) {
	config, exists := cp.fieldConfigs[fieldNum]
	return config, exists
}

// Parse parses data against the compiled spec and codec.
func (cp *CompiledPackager) Parse(data []byte) (*Message, error) {
	return FromBytes(cp.spec, cp.codec, data)
}

// LogValue implements slog.LogValuer, summarizing the packager's
// configuration for structured logging without dumping the full field
// table on every log line.
func (cp *CompiledPackager) LogValue() slog.Value {
	if cp == nil {
		return slog.StringValue("nil")
	}

	attrs := make([]slog.Attr, 0, 8)
	attrs = append(attrs, slog.Any("bitmap_encoding", cp.bitmapEncoding))
	attrs = append(attrs, slog.Group("length_indicator",
		slog.Any("type", cp.lengthIndicator.Type),
		slog.Int("length", cp.lengthIndicator.Length),
	))
	attrs = append(attrs, slog.Group("header_config",
		slog.Any("type", cp.headerConfig.Type),
		slog.Int("length", cp.headerConfig.Length),
	))
	attrs = append(attrs, slog.Group("tlv_config",
		slog.Any("type", cp.tlvConfig.Type),
		slog.Bool("enabled", cp.tlvConfig.Enabled),
		slog.Int("max_depth", cp.tlvConfig.MaxDepth),
	))
	if cp.validator != nil {
		attrs = append(attrs, slog.Int("mandatory_fields_count", len(cp.validator.mandatoryFields)))
	}
	attrs = append(attrs, slog.Int("total_configured_fields", len(cp.fieldConfigs)))

	return slog.GroupValue(attrs...)
}

// LoadPackagerFromFile reads a JSON PackagerConfig file and compiles it.
func LoadPackagerFromFile(filePath string) (*CompiledPackager, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read packager file %s: %w", filePath, err)
	}
	return LoadPackagerFromBytes(data)
}

// LoadPackagerFromBytes unmarshals a JSON PackagerConfig and compiles it.
func LoadPackagerFromBytes(data []byte) (*CompiledPackager, error) {
	var config PackagerConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse packager config: %w", err)
	}
	return NewCompiledPackager(&config), nil
}

// DefaultPackagerConfig returns the conventional ISO 8583:1987 field table
// as a PackagerConfig.
func DefaultPackagerConfig() *PackagerConfig {
	return &PackagerConfig{
		Fields:         DefaultConfigField,
		Codec:          DefaultCodec(),
		BitmapEncoding: BitmapEncodingBinary,
		LengthIndicator: LengthIndicatorConfig{
			Type:   LengthIndicatorNone,
			Length: 0,
		},
		Header: HeaderConfig{
			Type:   HeaderNone,
			Length: 0,
		},
		TLV: TLVConfig{
			Type:     TLVStandard,
			Enabled:  false,
			MaxDepth: 3,
		},
	}
}

// NewPackagerConfig builds a PackagerConfig from DefaultPackagerConfig
// using the functional-options pattern.
func NewPackagerConfig(opts ...PackagerOption) *PackagerConfig {
	config := DefaultPackagerConfig()
	for _, opt := range opts {
		opt(config)
	}
	return config
}
