package iso8583

import (
	"github.com/euicc-go/bertlv"
)

// TLV represents a single decoded Tag-Length-Value element. It is a thin,
// zero-copy-where-possible adapter over github.com/euicc-go/bertlv's
// constructed/primitive tag tree, shaped for DE 55 (ICC System-Related
// Data) and other BER-TLV-encoded fields.
type TLV struct {
	Tag      bertlv.Tag
	Value    []byte
	Children []TLV
}

// ParseTLV decodes buf as a sequence of BER-TLV elements, recursing into
// constructed tags so nested EMV templates (e.g. tag 0x70 on DE 55) come
// back fully walked.
func ParseTLV(buf []byte) ([]TLV, error) {
	nodes, err := bertlv.Decode(buf)
	if err != nil {
		return nil, ErrInvalidTLV
	}
	return convertFromBER(nodes), nil
}

func convertFromBER(nodes bertlv.TLVs) []TLV {
	out := make([]TLV, 0, len(nodes))
	for _, n := range nodes {
		t := TLV{Tag: n.Tag, Value: n.Value}
		if n.Tag.IsConstructed() {
			children, err := bertlv.Decode(n.Value)
			if err == nil {
				t.Children = convertFromBER(children)
			}
		}
		out = append(out, t)
	}
	return out
}

// PackTLV serializes a TLV slice back into BER-TLV wire bytes.
func PackTLV(elements []TLV) ([]byte, error) {
	nodes := convertToBER(elements)
	return nodes.Encode()
}

func convertToBER(elements []TLV) bertlv.TLVs {
	nodes := make(bertlv.TLVs, 0, len(elements))
	for _, e := range elements {
		if len(e.Children) > 0 {
			childBytes, err := convertToBER(e.Children).Encode()
			if err == nil {
				nodes = append(nodes, bertlv.TLV{Tag: e.Tag, Value: childBytes})
				continue
			}
		}
		nodes = append(nodes, bertlv.TLV{Tag: e.Tag, Value: e.Value})
	}
	return nodes
}

// Find returns the first element in elements (searched recursively) whose
// Tag matches tag.
func Find(elements []TLV, tag bertlv.Tag) (TLV, bool) {
	for _, e := range elements {
		if e.Tag == tag {
			return e, true
		}
		if found, ok := Find(e.Children, tag); ok {
			return found, true
		}
	}
	return TLV{}, false
}
