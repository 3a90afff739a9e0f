package spacker

import (
	"bytes"
	"testing"

	"github.com/davecgh/go-spew/spew"
)

func TestEncodeRejectsZero(t *testing.T) {
	_, err := Encode([]uint16{1, 0, 2}, Doubling{Base: 1}, false)
	if err == nil {
		t.Fatalf("Encode with a zero value succeeded, want ErrZeroValue")
	}
}

func TestEncodeRejectsOutOfRange(t *testing.T) {
	// Multiplier{Factor:3} on a uint8 (8 bits) supports only buckets 0
	// (width 3, payload 2, values 1..4) and 1 (width 6, payload 4, values
	// 5..20): bucket 2 would need 9 bits, wider than a uint8. 21 fits in
	// a uint8 numerically but exceeds bucket 1's max of 20, so it must
	// be rejected.
	_, err := Encode([]uint8{21}, Multiplier{Factor: 3}, false)
	if err == nil {
		t.Fatalf("Encode([]uint8{21}) with Multiplier{Factor:3} succeeded, want ErrValueOutOfRange")
	}

	// 20 itself is representable.
	encoded, err := Encode([]uint8{20}, Multiplier{Factor: 3}, false)
	if err != nil {
		t.Fatalf("Encode([]uint8{20}) failed unexpectedly: %v", err)
	}
	decoded, err := Decode[uint8](encoded, 1, Multiplier{Factor: 3})
	if err != nil || decoded[0] != 20 {
		t.Fatalf("round trip of 20 failed: decoded=%v err=%v", decoded, err)
	}
}

func TestEncodeDecodeRoundTripNoRLE(t *testing.T) {
	values := []uint16{1, 22, 2068, 3, 1, 1}
	encoded, err := Encode(values, Doubling{Base: 1}, false)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	decoded, err := Decode[uint16](encoded, len(values), Doubling{Base: 1})
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !equalSlices(values, decoded) {
		t.Fatalf("round trip mismatch:\nvalues:  %s\ndecoded: %s", spew.Sdump(values), spew.Sdump(decoded))
	}
}

func TestEncodeDecodeRoundTripWithRLE(t *testing.T) {
	values := []uint16{5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 1, 2, 3}
	encoded, err := Encode(values, Doubling{Base: 1}, true)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	decoded, err := Decode[uint16](encoded, len(values), Doubling{Base: 1})
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !equalSlices(values, decoded) {
		t.Fatalf("round trip mismatch:\nvalues:  %s\ndecoded: %s", spew.Sdump(values), spew.Sdump(decoded))
	}
}

func TestEncodeSingleValueScenario(t *testing.T) {
	// value 1 under Doubling{Base:1}: bucket 0, the single bit "0" with no
	// payload, zero-padded => byte 0x00.
	encoded, err := Encode([]uint8{1}, Doubling{Base: 1}, false)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !bytes.Equal(encoded, []byte{0x00}) {
		t.Fatalf("Encode([]uint8{1}) = %s, want [0x00]", spew.Sdump(encoded))
	}
}

func TestEncodeMultiplierScheme(t *testing.T) {
	values := []uint32{1, 2, 3, 100, 4096}
	scheme := Multiplier{Factor: 4}
	encoded, err := Encode(values, scheme, false)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	decoded, err := Decode[uint32](encoded, len(values), scheme)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !equalSlices(values, decoded) {
		t.Fatalf("round trip mismatch:\nvalues:  %s\ndecoded: %s", spew.Sdump(values), spew.Sdump(decoded))
	}
}

func TestEncodeRejectsSchemeTooNarrowForType(t *testing.T) {
	// Multiplier{Factor:0} builds no buckets at all.
	_, err := Encode([]uint16{1}, Multiplier{Factor: 0}, false)
	if err == nil {
		t.Fatalf("Encode with an empty scheme succeeded, want ErrSchemeTooNarrow")
	}
}

func TestDecodeCountMismatch(t *testing.T) {
	encoded, err := Encode([]uint16{1, 2}, Doubling{Base: 1}, false)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if _, err := Decode[uint16](encoded, 5, Doubling{Base: 1}); err == nil {
		t.Fatalf("Decode requesting more values than encoded succeeded, want error")
	}
}

func equalSlices[T comparable](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
