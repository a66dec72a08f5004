package rmq

import "errors"

var (
	// ErrNilInput indicates a nil sequence was passed to a constructor.
	ErrNilInput = errors.New("rmq: input sequence must not be nil")
	// ErrEmptyInput indicates a zero-length sequence was passed to a constructor.
	ErrEmptyInput = errors.New("rmq: input sequence must be non-empty")
	// ErrNaNValue indicates a NaN element at construction or a NaN update value.
	// NaN is unordered and would silently poison every minimum fold.
	ErrNaNValue = errors.New("rmq: NaN is not a valid element value")
	// ErrIndexOutOfBounds indicates an index or range bound outside [0, N).
	ErrIndexOutOfBounds = errors.New("rmq: index out of bounds")
	// ErrInvalidRange indicates a query with left bound greater than right bound.
	ErrInvalidRange = errors.New("rmq: left bound greater than right bound")
	// ErrUnknownStrategy indicates an unrecognized Strategy passed to New.
	ErrUnknownStrategy = errors.New("rmq: unknown strategy")
)
