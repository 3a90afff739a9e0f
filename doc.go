// Package spacker provides a compact bit-level codec for sequences of
// small, often-repeating positive integers.
//
// # Overview
//
// Each plain value v >= 1 is mapped to a "bucket" whose preamble (a run of
// 1-bits terminated by a 0) announces how many payload bits follow. The
// growth rate of bucket widths is pluggable via a Scheme: Doubling grows
// bucket width geometrically, Multiplier grows it linearly. A run of two
// or more identical values may be collapsed into a single marker-prefixed
// run-length code when that is cheaper than writing every copy out.
//
// # When to Use spacker
//
// spacker suits sequences of positive integers that are:
//   - Small relative to their storage type (most values fit in the first
//     few buckets, so codes stay short)
//   - Repetitive in long stretches (RLE collapses runs cheaply)
//   - Produced and consumed in one pass (no random access into the stream)
//
// # When NOT to Use spacker
//
// spacker is not suitable for:
//   - Signed values or zero (the alphabet starts at 1)
//   - Data requiring random access into the middle of an encoded stream
//   - Data requiring integrity checking of corrupted input (the decoder
//     trusts that bytes were produced by a matching encoder and scheme)
//
// # Basic Usage
//
//	values := []uint16{1, 22, 2068}
//	encoded, err := spacker.Encode(values, spacker.Doubling{Base: 1}, false)
//	if err != nil {
//	    // handle err
//	}
//	decoded, err := spacker.Decode[uint16](encoded, len(values), spacker.Doubling{Base: 1})
//	if err != nil {
//	    // handle err
//	}
//
// # Performance Characteristics
//
// Encoding and decoding are both O(n) in the number of values, with no
// allocation beyond the growth of the output byte slice (encode) or the
// output value slice (decode). Each call is a pure, synchronous
// computation over the caller's buffers; concurrent calls with
// independent buffers require no locking.
package spacker
