package spacker

import "math/bits"

// Unsigned is the set of integer types Encode and Decode operate on.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// bitWidthOf returns the bit width of T, used to decide which buckets
// a Scheme can support for a given call.
func bitWidthOf[T Unsigned]() int {
	var zero T
	return bits.Len64(uint64(^zero))
}

// runLengthBitWidth is the width used when bucketing a run's own
// length, as opposed to the values being run-length-encoded: run
// lengths are always counted in a uint64 regardless of T, because a
// run of values can be arbitrarily long even when each value itself is
// narrow (e.g. a run of a million repeated uint8s).
const runLengthBitWidth = 64

// Encode packs values into a compact byte stream using scheme to
// determine bucket widths. Every value must satisfy v >= 1. If rle is
// true, runs of two or more identical consecutive values are collapsed
// into a marker-prefixed run-length code whenever doing so is cheaper
// than writing every copy out in full.
func Encode[T Unsigned](values []T, scheme Scheme, rle bool) ([]byte, error) {
	bitWidth := bitWidthOf[T]()
	cb, err := buildCodebook(scheme)
	if err != nil {
		return nil, err
	}
	if _, ok := cb.maxSupported(bitWidth); !ok {
		return nil, errSchemeTooNarrow(scheme, bitWidth)
	}

	p := newBitPacker(cb, make([]byte, 0, len(values)))

	i := 0
	for i < len(values) {
		v := uint64(values[i])
		if v == 0 {
			return nil, errZeroValueAt(i)
		}
		b, err := cb.bucketFor(v, bitWidth)
		if err != nil {
			return nil, errValueOutOfRange(v, i, bitWidth, scheme)
		}

		runLen := 1
		if rle {
			for i+runLen < len(values) && uint64(values[i+runLen]) == v {
				runLen++
			}
		}

		if runLen >= 2 {
			k := uint64(runLen)
			valueCost := b + 1 + cb.payload[b]

			naiveCost := valueCost * runLen
			approxRLECost := 8 + bits.Len64(k) // cheap pre-check, see spec §4
			if approxRLECost < naiveCost {
				rleCost, err := runLengthCost(cb, valueCost, p.bitPos(), k, runLengthBitWidth)
				if err == nil && rleCost < naiveCost {
					p.writeValue(v, b)
					p.padWithOnes()
					p.out = append(p.out, 0xFF)
					lb, _ := cb.bucketFor(k, runLengthBitWidth)
					p.writeValue(k, lb)
					i += runLen
					continue
				}
			}
		}

		p.writeValue(v, b)
		i++
	}

	return p.flush(), nil
}

// Decode unpacks n values encoded by Encode with the same scheme.
// Decode has no rle parameter: the encoded stream is self-describing,
// since an RLE marker is only ever recognizable at a position that is
// simultaneously a value boundary and a byte boundary, a property that
// holds regardless of whether rle was requested at encode time.
func Decode[T Unsigned](data []byte, n int, scheme Scheme) ([]T, error) {
	bitWidth := bitWidthOf[T]()
	cb, err := buildCodebook(scheme)
	if err != nil {
		return nil, err
	}
	if _, ok := cb.maxSupported(bitWidth); !ok {
		return nil, errSchemeTooNarrow(scheme, bitWidth)
	}

	u := newBitUnpacker(cb, data)
	out := make([]T, 0, n)

	for len(out) < n {
		if !u.atByteBoundary() {
			// One-bit padding up to the byte boundary followed by a 0xFF
			// byte can only be the alignment before an RLE marker: no
			// value's preamble holds nine or more consecutive ones.
			idx := u.bitPos / 8
			mask := byte(1)<<uint(8-u.bitPos%8) - 1
			if idx+1 < len(data) && data[idx]&mask == mask && data[idx+1] == 0xFF {
				u.skipPadding()
			}
		}
		if u.atByteBoundary() {
			if peek, ok := u.peekByte(); ok && peek == 0xFF {
				u.readBits(8)
				k, err := u.decodeNext(runLengthBitWidth)
				if err != nil {
					return nil, err
				}
				if len(out) == 0 {
					return nil, errExhausted(len(out), n)
				}
				last := out[len(out)-1]
				for j := uint64(0); j < k-1 && len(out) < n; j++ {
					out = append(out, last)
				}
				continue
			}
		}

		v, err := u.decodeNext(bitWidth)
		if err != nil {
			return nil, errExhausted(len(out), n)
		}
		out = append(out, T(v))
	}

	if len(out) != n {
		return nil, ErrCountMismatch
	}
	return out, nil
}
