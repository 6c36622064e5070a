package iso8583

// cursor walks a byte slice without copying it, handing out sub-slices
// that alias the original buffer. Fields and bitmaps parsed through a
// cursor therefore borrow from the input buffer rather than duplicating it,
// matching the payload-slice ownership flexibility the core leaves open.
type cursor struct {
	data []byte
	pos  int
}

func newCursor(data []byte) *cursor {
	return &cursor{data: data}
}

func (c *cursor) remaining() int {
	return len(c.data) - c.pos
}

// take returns the next n bytes and advances the cursor past them. The
// caller must have already checked remaining() >= n.
func (c *cursor) take(n int) []byte {
	b := c.data[c.pos : c.pos+n]
	c.pos += n
	return b
}
