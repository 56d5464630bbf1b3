package interval

import "errors"

// ErrIncomparableBounds indicates an input bound that violates the
// total-order contract of [Bound], such as a floating-point NaN. All other
// inputs, including inverted and zero-length intervals, are accepted and
// produce well-defined (possibly empty) output.
var ErrIncomparableBounds = errors.New("incomparable bound value")
