package spacker

import (
	"golang.org/x/xerrors"
)

// Sentinel errors identifying the failure kinds a caller may need to
// distinguish programmatically. Use errors.Is against these.
var (
	// ErrZeroValue is returned when a value outside the representable
	// alphabet (v >= 1) is passed to Encode.
	ErrZeroValue = xerrors.New("spacker: values must be positive; zero is not representable")

	// ErrSchemeTooNarrow is returned when a Scheme's own bucket 0 does not
	// fit within the caller's declared integer width.
	ErrSchemeTooNarrow = xerrors.New("spacker: scheme's smallest bucket does not fit the requested integer width")

	// ErrValueOutOfRange is returned when a value exceeds the largest
	// bucket the Scheme supports for the caller's integer width.
	ErrValueOutOfRange = xerrors.New("spacker: value exceeds the largest bucket supported for this integer width")

	// ErrCountMismatch is returned when Decode finishes with a number of
	// values different from the declared count. A request for more values
	// than the stream can hold runs out of input first and is reported as
	// ErrExhausted.
	ErrCountMismatch = xerrors.New("spacker: declared output count does not match the encoded stream")

	// ErrExhausted is returned when the input bytes run out before the
	// requested number of values has been decoded.
	ErrExhausted = xerrors.New("spacker: input exhausted before the requested number of values was decoded")
)

func errZeroValueAt(index int) error {
	return xerrors.Errorf("spacker: value at index %d is zero: %w", index, ErrZeroValue)
}

func errSchemeTooNarrow(scheme Scheme, bitWidth int) error {
	return xerrors.Errorf("spacker: scheme %s does not fit a %d-bit integer: %w", scheme.Name(), bitWidth, ErrSchemeTooNarrow)
}

func errValueOutOfRange(value uint64, index, bitWidth int, scheme Scheme) error {
	return xerrors.Errorf("spacker: value %d at index %d exceeds what %s can encode in %d bits: %w", value, index, scheme.Name(), bitWidth, ErrValueOutOfRange)
}

func errExhausted(got, want int) error {
	return xerrors.Errorf("spacker: decoded only %d of %d requested values before input ran out: %w", got, want, ErrExhausted)
}
