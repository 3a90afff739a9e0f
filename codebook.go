package spacker

// codebook precomputes, for a given Scheme, the cumulative [min, max]
// range and baseline offset of each bucket 0..7. These ranges depend
// only on the Scheme's width function, never on a caller's integer
// width T — T only decides how many of the eight buckets are usable
// (see supports/maxSupported below), matching the original's template
// specializations where min/max/baseline tables are shared across all
// integer widths and only the upper loop bound varies.
type codebook struct {
	scheme     Scheme
	widths     [8]int // W_b, the total code width: (b+1)-bit preamble + payload
	payload    [8]int // W_b - b - 1, the payload width actually carrying value bits
	baseline   [8]uint64
	maxVal     [8]uint64
	numBuckets int
}

// buildCodebook walks buckets 0..7 in order, accumulating how many
// distinct values each bucket's payload can add on top of the previous
// bucket's maximum, per spec §4.2: max_b = max_{b-1} + 2^(W_b - b - 1),
// with max_{-1} = 0. It stops once a bucket's width can no longer even
// cover its own (b+1)-bit preamble, or exceeds 64 bits (i.e. Width stops
// being usable as a bit count, which buildCodebook treats as "no more
// buckets exist") —
// confirmed against original_source/include/spacker/utils.hpp's
// max<T,Scheme,bits>(), whose `available = width(bits) - bits - 1` is
// exactly this payload width.
func buildCodebook(s Scheme) (*codebook, error) {
	cb := &codebook{scheme: s}

	prevMax := uint64(0)
	for b := 0; b < 8; b++ {
		w := s.Width(b)
		payload := w - b - 1
		if payload < 0 || w > 64 {
			break
		}
		span := uint64(1) << uint(payload)
		cb.widths[b] = w
		cb.payload[b] = payload
		cb.baseline[b] = prevMax + 1
		cb.maxVal[b] = cb.baseline[b] + span - 1
		cb.numBuckets = b + 1
		prevMax = cb.maxVal[b]
	}

	if cb.numBuckets == 0 {
		return nil, errSchemeTooNarrow(s, 0)
	}
	return cb, nil
}

// supports reports whether bucket b's full width fits within bitWidth
// bits, i.e. whether a value of type T with bitWidth bits could ever
// land in that bucket.
func (cb *codebook) supports(b, bitWidth int) bool {
	return b < cb.numBuckets && cb.widths[b] <= bitWidth
}

// maxSupported returns the highest bucket index usable for bitWidth,
// and false if not even bucket 0 fits.
func (cb *codebook) maxSupported(bitWidth int) (int, bool) {
	best := -1
	for b := 0; b < cb.numBuckets; b++ {
		if cb.widths[b] > bitWidth {
			break
		}
		best = b
	}
	if best < 0 {
		return 0, false
	}
	return best, true
}

// bucketFor locates the bucket holding value v, subject to the
// caller's integer width. It returns ErrSchemeTooNarrow if the scheme
// has no bucket at all that fits bitWidth, and ErrValueOutOfRange if v
// exceeds the largest bucket the width does support.
func (cb *codebook) bucketFor(v uint64, bitWidth int) (int, error) {
	maxB, ok := cb.maxSupported(bitWidth)
	if !ok {
		return 0, errSchemeTooNarrow(cb.scheme, bitWidth)
	}
	for b := 0; b <= maxB; b++ {
		if v <= cb.maxVal[b] {
			return b, nil
		}
	}
	return 0, errValueOutOfRange(v, -1, bitWidth, cb.scheme)
}
