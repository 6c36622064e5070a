package iso8583

import (
	"encoding/json"
	"strings"
)

// BitmapEncoding selects how a MessageSpec's bitmap is rendered when a
// PackagerConfig is used to pick defaults for an outer transport layer
// (the core BitMap itself is always binary little-endian chunks; hex is a
// presentation convention some dialects layer on top via the header/frame
// utilities).
type BitmapEncoding int

const (
	BitmapEncodingBinary BitmapEncoding = iota
	BitmapEncodingHex
)

// LengthIndicatorType selects the outer message-length prefix convention a
// transport wraps a serialized Message in (see length_msg.go). Unrelated
// to FieldSpec's own LengthType.
type LengthIndicatorType int

const (
	LengthIndicatorNone LengthIndicatorType = iota
	LengthIndicatorBinary
	LengthIndicatorASCII
	LengthIndicatorHex
)

// HeaderType selects the outer message-length header convention (see
// header.go). Distinct from LengthIndicatorType only by historical origin
// in the corpus this module grew from; kept separate because callers
// configure them independently (header for framing above the codec,
// length indicator for the field below it).
type HeaderType int

const (
	HeaderNone HeaderType = iota
	HeaderBinary
	HeaderASCII
	HeaderHex
	HeaderCustom
)

// TLVType selects the TLV dialect decoded for fields carrying embedded
// chip/EMV data (see tlv.go).
type TLVType int

const (
	TLVStandard TLVType = iota
	TLVEMV
	TLVASCII
)

// ValidationLevel is passed to ValidateMessage (see validation.go).
// ValidationNone skips validation; every other level applies the same
// field rules.
type ValidationLevel int

const (
	ValidationNone ValidationLevel = iota
	ValidationBasic
	ValidationStrict
	ValidationCustom
)

// FieldConfig is the JSON-serializable description of one FieldSpec, used
// to build a MessageSpec and its validation rules from a config file
// instead of Go literals.
type FieldConfig struct {
	Type        FieldType   `json:"type"`
	Length      LengthType  `json:"length"`
	MaxLength   int         `json:"max_length"`
	MinLength   int         `json:"min_length"`
	Mandatory   bool        `json:"mandatory"`
	Sensitivity Sensitivity `json:"sensitivity,omitempty"`
	Format      string      `json:"format,omitempty"`
}

// UnmarshalJSON accepts FieldType either as its numeric enum value or as
// its conventional ISO 8583 mnemonic string ("N", "ANS", "B", ...).
func (fc *FieldConfig) UnmarshalJSON(data []byte) error {
	type Alias FieldConfig
	aux := &struct {
		Type interface{} `json:"type"`
		*Alias
	}{
		Alias: (*Alias)(fc),
	}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	switch v := aux.Type.(type) {
	case float64:
		fc.Type = FieldType(v)
	case string:
		fc.Type = parseFieldTypeString(v)
	}

	return nil
}

func parseFieldTypeString(s string) FieldType {
	switch strings.ToUpper(s) {
	case "A":
		return FieldTypeA
	case "N":
		return FieldTypeN
	case "S":
		return FieldTypeS
	case "NS":
		return FieldTypeNS
	case "AN":
		return FieldTypeAN
	case "B":
		return FieldTypeB
	default:
		return FieldTypeANS
	}
}

// ToFieldSpec converts a FieldConfig into the FieldSpec the core codec
// actually operates on.
func (fc FieldConfig) ToFieldSpec(name string) FieldSpec {
	length := fc.MaxLength
	return FieldSpec{
		Name:        name,
		FieldType:   fc.Type,
		LengthType:  fc.Length,
		Sensitivity: fc.Sensitivity,
		Length:      length,
	}
}

// LengthIndicatorConfig configures the outer message-length prefix a
// transport wraps a serialized message in.
type LengthIndicatorConfig struct {
	Type   LengthIndicatorType `json:"type"`
	Length int                 `json:"length"`
}

// HeaderConfig configures an outer message header (e.g. a TPDU) preceding
// the serialized message.
type HeaderConfig struct {
	Type   HeaderType `json:"type"`
	Length int        `json:"length"`
	Format string     `json:"format,omitempty"`
}

// TLVConfig configures embedded TLV decoding for fields that carry it.
type TLVConfig struct {
	Type     TLVType `json:"type"`
	Enabled  bool    `json:"enabled"`
	MaxDepth int     `json:"max_depth"`
}

// PackagerConfig is the full JSON-serializable description of a dialect:
// field table, bitmap presentation, outer length indicator, header, and
// TLV handling. NewCompiledPackager compiles one into a MessageSpec,
// Codec, and Validator ready for use.
type PackagerConfig struct {
	Fields          map[int]FieldConfig   `json:"fields"`
	Codec           Codec                 `json:"codec"`
	BitmapEncoding  BitmapEncoding        `json:"bitmap_encoding"`
	LengthIndicator LengthIndicatorConfig `json:"length_indicator"`
	Header          HeaderConfig          `json:"header"`
	TLV             TLVConfig             `json:"tlv"`
}

const (
	DefaultBufferSize = 8192
	MaxFieldNumber    = 128
)
