package frame

import "errors"

var (
	ErrFileName   = errors.New("frame: file name length out of range")
	ErrFileLength = errors.New("frame: file length exceeds 24-bit field")
	ErrTruncated  = errors.New("frame: truncated frame")
	ErrPayload    = errors.New("frame: payload too large")
)
