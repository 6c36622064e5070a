package iso8583

// MessageOption configures a Message at construction time.
type MessageOption func(*Message)

// WithMTI sets the Message Type Indicator from a 4-character string.
func WithMTI(mti string) MessageOption {
	return func(m *Message) {
		if len(mti) != 4 {
			return
		}
		var b MTI
		copy(b[:], mti)
		m.SetMTI(b)
	}
}

// WithField sets a field's value during message construction.
func WithField(fieldNum int, value []byte) MessageOption {
	return func(m *Message) {
		m.SetField(fieldNum, value)
	}
}

// WithFields sets multiple field values during message construction.
func WithFields(fields map[int][]byte) MessageOption {
	return func(m *Message) {
		for fieldNum, value := range fields {
			m.SetField(fieldNum, value)
		}
	}
}

// PackagerOption configures a PackagerConfig.
type PackagerOption func(*PackagerConfig)

// WithFieldConfig adds a field configuration.
func WithFieldConfig(fieldNum int, config FieldConfig) PackagerOption {
	return func(pc *PackagerConfig) {
		if pc.Fields == nil {
			pc.Fields = make(map[int]FieldConfig)
		}
		pc.Fields[fieldNum] = config
	}
}

// WithCodec overrides the codec a PackagerConfig compiles into.
func WithCodec(codec Codec) PackagerOption {
	return func(pc *PackagerConfig) {
		pc.Codec = codec
	}
}

// WithHeaderConfig sets the header configuration.
func WithHeaderConfig(config HeaderConfig) PackagerOption {
	return func(pc *PackagerConfig) {
		pc.Header = config
	}
}

// WithLengthIndicatorConfig sets the outer length-indicator configuration.
func WithLengthIndicatorConfig(config LengthIndicatorConfig) PackagerOption {
	return func(pc *PackagerConfig) {
		pc.LengthIndicator = config
	}
}

// WithTLVConfig sets the TLV configuration.
func WithTLVConfig(config TLVConfig) PackagerOption {
	return func(pc *PackagerConfig) {
		pc.TLV = config
	}
}

// ProcessorOption configures a Processor.
type ProcessorOption func(*Processor)

// WithConcurrency sets the maximum number of concurrent goroutines used by
// ProcessBatch/ProcessStream.
func WithConcurrency(n int) ProcessorOption {
	return func(p *Processor) {
		if n > 0 {
			p.concurrency = n
		}
	}
}

// WithErrorHandler sets a callback invoked for every error encountered
// during batch or stream processing.
func WithErrorHandler(handler func(error)) ProcessorOption {
	return func(p *Processor) {
		p.errorHandler = handler
	}
}
