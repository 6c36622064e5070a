package iso8583

import "encoding/binary"

const chunkBits = 64

// BitMap is a dense, variable-width bit sequence stored as a sequence of
// 64-bit chunks in little-endian wire order. Bit 0 of each chunk is the
// continuation bit: when set in chunk k, chunk k+1 is present on the wire.
// Callers address bits 1..=128 semantically; the continuation bits at
// indices 0, 64, 128 are never surfaced by IterSet and are maintained
// automatically by Set.
type BitMap struct {
	chunks []uint64
}

// FromCursor reads one or more 64-bit chunks from data, stopping at the
// first chunk whose continuation bit is clear. It returns the BitMap and
// the number of bytes consumed.
func FromCursor(data []byte) (BitMap, int, error) {
	var bm BitMap
	pos := 0
	for {
		if len(data)-pos < 8 {
			return BitMap{}, 0, &ParseError{Message: "Truncated bitmap"}
		}
		chunk := binary.LittleEndian.Uint64(data[pos : pos+8])
		pos += 8
		bm.chunks = append(bm.chunks, chunk)
		if chunk&1 == 0 {
			break
		}
	}
	return bm, pos, nil
}

// Serialize emits each 64-bit chunk in little-endian wire order.
func (bm BitMap) Serialize() []byte {
	out := make([]byte, 8*len(bm.chunks))
	for i, chunk := range bm.chunks {
		binary.LittleEndian.PutUint64(out[i*8:i*8+8], chunk)
	}
	return out
}

// Len returns the bitmap's length in bits (always a multiple of 64).
func (bm BitMap) Len() int {
	return chunkBits * len(bm.chunks)
}

// Test returns the bit at idx, or false if idx is beyond the bitmap.
func (bm BitMap) Test(idx int) bool {
	if idx < 0 || idx >= bm.Len() {
		return false
	}
	chunkIdx, local := idx/chunkBits, idx%chunkBits
	return bm.chunks[chunkIdx]&(1<<uint(local)) != 0
}

// Set sets bit idx, growing the bitmap (by whole 64-bit chunks) if
// necessary, and maintains the continuation chain: every chunk preceding
// idx's chunk has its own continuation bit set.
func (bm *BitMap) Set(idx int) {
	chunkIdx := idx / chunkBits
	for len(bm.chunks) <= chunkIdx {
		bm.chunks = append(bm.chunks, 0)
	}
	local := idx % chunkBits
	bm.chunks[chunkIdx] |= 1 << uint(local)
	for k := 0; k < chunkIdx; k++ {
		bm.chunks[k] |= 1
	}
}

// Clear clears bit idx if it is set. Trailing all-zero chunks are not
// compacted away; a cleared bitmap may still serialize to its prior width.
func (bm *BitMap) Clear(idx int) {
	if idx < 0 || idx >= bm.Len() {
		return
	}
	chunkIdx, local := idx/chunkBits, idx%chunkBits
	bm.chunks[chunkIdx] &^= 1 << uint(local)
}

// IterSet returns every set bit in ascending order, excluding the
// continuation control bits at indices divisible by 64.
func (bm BitMap) IterSet() []int {
	var out []int
	for idx := 0; idx < bm.Len(); idx++ {
		if idx%chunkBits == 0 {
			continue
		}
		if bm.Test(idx) {
			out = append(out, idx)
		}
	}
	return out
}

// Reset clears the bitmap back to zero chunks.
func (bm *BitMap) Reset() {
	bm.chunks = bm.chunks[:0]
}
