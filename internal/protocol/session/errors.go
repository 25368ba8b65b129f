package session

import "errors"

var (
	ErrControlFrame   = errors.New("session: control frame rejected")
	ErrDataFrame      = errors.New("session: data frame rejected")
	ErrSequence       = errors.New("session: data frame out of sequence")
	ErrLengthMismatch = errors.New("session: received length differs from control frame")
	ErrFileTooLarge   = errors.New("session: file exceeds configured maximum")
	ErrNoFileSystem   = errors.New("session: no file system configured")
	ErrLineRejected   = errors.New("session: line refused frame")
)
