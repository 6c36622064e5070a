package iso8583

// MTI is a 4-byte Message Type Indicator: [version, class, function,
// origin], each nominally an ASCII digit. Its classification predicates
// follow the ISO 8583 convention for each position.
type MTI [4]byte

// DefaultMTI is the zero-value MTI used by a newly-constructed Message.
func DefaultMTI() MTI {
	return MTI{'0', '0', '0', '0'}
}

func mtiFromCursor(cur *cursor) (MTI, error) {
	if cur.remaining() < 4 {
		return MTI{}, &ParseError{Message: "Truncated MTI"}
	}
	var mti MTI
	copy(mti[:], cur.take(4))
	return mti, nil
}

func (m MTI) VersionByte() byte  { return m[0] }
func (m MTI) ClassByte() byte    { return m[1] }
func (m MTI) FunctionByte() byte { return m[2] }
func (m MTI) OriginByte() byte   { return m[3] }

func (m MTI) IsVersion1987() bool   { return m.VersionByte() == '0' }
func (m MTI) IsVersion1993() bool   { return m.VersionByte() == '1' }
func (m MTI) IsVersion2003() bool   { return m.VersionByte() == '2' }
func (m MTI) IsVersionNational() bool { return m.VersionByte() == '8' }
func (m MTI) IsVersionPrivate() bool  { return m.VersionByte() == '9' }

func (m MTI) IsAuthorization() bool  { return m.ClassByte() == '1' }
func (m MTI) IsFinancial() bool      { return m.ClassByte() == '2' }
func (m MTI) IsFileAction() bool     { return m.ClassByte() == '3' }
func (m MTI) IsReversal() bool       { return m.ClassByte() == '4' }
func (m MTI) IsReconciliation() bool { return m.ClassByte() == '5' }
func (m MTI) IsAdministrative() bool { return m.ClassByte() == '6' }
func (m MTI) IsFeeCollection() bool  { return m.ClassByte() == '7' }
func (m MTI) IsManagement() bool     { return m.ClassByte() == '8' }
func (m MTI) IsReservedClass() bool  { return m.ClassByte() == '9' }

func (m MTI) IsRequest() bool         { return m.FunctionByte() == '0' }
func (m MTI) IsRequestResponse() bool { return m.FunctionByte() == '1' }
func (m MTI) IsAdvice() bool          { return m.FunctionByte() == '2' }
func (m MTI) IsAdviceResponse() bool  { return m.FunctionByte() == '3' }
func (m MTI) IsNotification() bool    { return m.FunctionByte() == '4' }
func (m MTI) IsNotificationAck() bool { return m.FunctionByte() == '5' }
func (m MTI) IsInstruction() bool     { return m.FunctionByte() == '6' }
func (m MTI) IsInstructionAck() bool  { return m.FunctionByte() == '7' }
func (m MTI) IsPositiveAck() bool     { return m.FunctionByte() == '8' }
func (m MTI) IsNegativeAck() bool     { return m.FunctionByte() == '9' }

func (m MTI) IsFromAcquirer() bool {
	o := m.OriginByte()
	return o == '0' || o == '1'
}

func (m MTI) IsFromIssuer() bool {
	o := m.OriginByte()
	return o == '2' || o == '3'
}

func (m MTI) IsFromOther() bool {
	o := m.OriginByte()
	return o == '4' || o == '5'
}

func (m MTI) IsRepeat() bool {
	o := m.OriginByte()
	return o == '1' || o == '3' || o == '5'
}

func (m MTI) String() string {
	return string(m[:])
}
