package iso8583

// Builder provides a fluent, functional-option-friendly way to assemble a
// Message against a MessageSpec, collecting errors along the way instead
// of failing on the first bad field.
type Builder struct {
	msg    *Message
	errors []error
}

// NewBuilder starts building a new Message against spec.
func NewBuilder(spec *MessageSpec, opts ...MessageOption) *Builder {
	b := &Builder{
		msg:    NewMessage(spec),
		errors: make([]error, 0, 4),
	}
	for _, opt := range opts {
		opt(b.msg)
	}
	return b
}

// MTI sets the message's MTI from a 4-character string.
func (b *Builder) MTI(mti string) *Builder {
	if len(mti) != 4 {
		b.errors = append(b.errors, &ParseError{Message: "Truncated MTI"})
		return b
	}
	var m MTI
	copy(m[:], mti)
	b.msg.SetMTI(m)
	return b
}

// Field sets a field's value.
func (b *Builder) Field(fieldNum int, value []byte) *Builder {
	b.msg.SetField(fieldNum, value)
	return b
}

// PAN sets DE 2, the Primary Account Number.
func (b *Builder) PAN(pan string) *Builder {
	return b.Field(2, []byte(pan))
}

// ProcessingCode sets DE 3.
func (b *Builder) ProcessingCode(code string) *Builder {
	return b.Field(3, []byte(code))
}

// Amount sets DE 4, the transaction amount.
func (b *Builder) Amount(amount string) *Builder {
	return b.Field(4, []byte(amount))
}

// STAN sets DE 11, the System Trace Audit Number.
func (b *Builder) STAN(stan string) *Builder {
	return b.Field(11, []byte(stan))
}

// Build returns the assembled Message, or the first error recorded while
// building it.
func (b *Builder) Build() (*Message, error) {
	if len(b.errors) > 0 {
		b.msg.Release()
		return nil, b.errors[0]
	}
	msg := b.msg
	b.msg = nil
	return msg, nil
}

// MustBuild is like Build but panics on error.
func (b *Builder) MustBuild() *Message {
	msg, err := b.Build()
	if err != nil {
		panic(err)
	}
	return msg
}
