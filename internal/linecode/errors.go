package linecode

import (
	"errors"
	"fmt"
)

var (
	ErrDecode        = errors.New("linecode: decode failed")
	ErrStartOfStream = errors.New("linecode: start of stream delimiter mismatch")
	ErrEndOfPacket   = errors.New("linecode: end of stream delimiter mismatch")
)

// StreamError names the stream (1-based) a validation or decode failure
// belongs to. Err is one of the package sentinels.
type StreamError struct {
	Stream int
	Err    error
	Detail string
}

func (e *StreamError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%v (stream %d)", e.Err, e.Stream)
	}
	return fmt.Sprintf("%v (stream %d): %s", e.Err, e.Stream, e.Detail)
}

func (e *StreamError) Unwrap() error {
	return e.Err
}

func streamErr(stream int, err error, detail string) error {
	return &StreamError{Stream: stream + 1, Err: err, Detail: detail}
}

// Kind returns a stable short name for the failure class of err, or "" when
// err is not a codec failure.
func Kind(err error) string {
	switch {
	case errors.Is(err, ErrStartOfStream):
		return "start_of_stream"
	case errors.Is(err, ErrEndOfPacket):
		return "end_of_packet"
	case errors.Is(err, ErrDecode):
		return "decode"
	default:
		return ""
	}
}
