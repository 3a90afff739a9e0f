package spacker

// BitPacker accumulates a stream of values into a byte buffer, one
// bucket-coded value at a time. Bits are packed MSB-first within each
// byte, matching the wire order original_source/include/spacker/pack_psip.hpp
// uses for both the Doubling and Multiplier schemes.
type BitPacker struct {
	cb     *codebook
	out    []byte
	buf    byte // partially filled output byte, left-aligned
	filled int  // number of valid bits already in buf, from the MSB
}

// newBitPacker returns a packer for the given codebook, appending to
// the given output slice.
func newBitPacker(cb *codebook, out []byte) *BitPacker {
	return &BitPacker{cb: cb, out: out}
}

// emitBits pushes the low `width` bits of code into the output stream,
// MSB-first, flushing full bytes to out as they fill.
func (p *BitPacker) emitBits(code uint64, width int) {
	for width > 0 {
		free := 8 - p.filled
		take := width
		if take > free {
			take = free
		}

		shift := width - take
		chunk := byte((code >> uint(shift)) & ((1 << uint(take)) - 1))
		p.buf |= chunk << uint(free-take)
		p.filled += take
		width -= take

		if p.filled == 8 {
			p.out = append(p.out, p.buf)
			p.buf = 0
			p.filled = 0
		}
	}
}

// writePreamble emits bucket b's unary preamble: b one-bits followed
// by a terminating zero.
func (p *BitPacker) writePreamble(b int) {
	if b > 0 {
		p.emitBits((1<<uint(b))-1, b)
	}
	p.emitBits(0, 1)
}

// writeValue packs one value into bucket b, including its preamble
// and payload, and returns the number of bits it cost. v must already
// have been validated against cb.
func (p *BitPacker) writeValue(v uint64, b int) int {
	p.writePreamble(b)
	payload := v - p.cb.baseline[b]
	pw := p.cb.payload[b]
	if pw > 0 {
		p.emitBits(payload, pw)
	}
	return b + 1 + pw
}

// padWithOnes fills out the remainder of the current partial byte
// with one-bits, so the stream is byte-aligned before an RLE marker.
// It returns the number of padding bits written (0 if already
// aligned).
func (p *BitPacker) padWithOnes() int {
	if p.filled == 0 {
		return 0
	}
	n := 8 - p.filled
	p.emitBits((1<<uint(n))-1, n)
	return n
}

// bitPos returns the packer's current position in the stream, in
// bits, counting bytes already flushed to out plus the partial byte.
func (p *BitPacker) bitPos() int {
	return len(p.out)*8 + p.filled
}

// flush left-aligns and appends any partially filled trailing byte.
// After Flush, out holds the complete encoded stream.
func (p *BitPacker) flush() []byte {
	if p.filled > 0 {
		p.out = append(p.out, p.buf)
		p.buf = 0
		p.filled = 0
	}
	return p.out
}

// runLengthCost returns the bit cost of encoding a run of k copies of
// v as an RLE code: the value's own bucket code, any alignment
// padding needed to reach a byte boundary, the 0xFF marker byte, and
// the run length packed into its own bucket code (against the same
// codebook, since run lengths and values share an alphabet starting
// at 1 and a run length is always >= 2).
func runLengthCost(cb *codebook, valueCost, curBitPos int, k uint64, bitWidth int) (int, error) {
	afterValue := curBitPos + valueCost
	pad := (8 - afterValue%8) % 8

	lb, err := cb.bucketFor(k, bitWidth)
	if err != nil {
		return 0, err
	}
	lengthCost := lb + 1 + cb.payload[lb]

	return valueCost + pad + 8 + lengthCost, nil
}
