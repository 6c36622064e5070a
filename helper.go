package iso8583

const hexTableUpper = "0123456789ABCDEF"

// encodeHexUpper converts src to uppercase hex and writes it to dst, which
// must be twice the length of src.
func encodeHexUpper(dst, src []byte) {
	for i, v := range src {
		dst[i*2] = hexTableUpper[v>>4]
		dst[i*2+1] = hexTableUpper[v&0x0f]
	}
}

// debugHex renders data as an uppercase hex string. Nothing in the package
// calls it at present; CompiledPackager.LogValue logs configuration only.
func debugHex(data []byte) string {
	out := make([]byte, len(data)*2)
	encodeHexUpper(out, data)
	return string(out)
}
