package frame

import (
	"fmt"
)

const (
	ControlHeaderLen = 4
	MinNameLen       = 4
	MaxNameLen       = 256
	MaxFileLen       = 1<<24 - 1
)

// Control is the metadata frame sent ahead of a file's data frames.
//
// Wire layout: [nameLen:1][fileLen:3 big-endian][name:nameLen]. A 256-byte
// name is carried with nameLen 0.
type Control struct {
	Name   string
	Length int
}

// BuildControl validates name and length and returns the encoded control frame.
func BuildControl(name string, length int64) ([]byte, error) {
	c := Control{Name: name, Length: int(length)}
	if len(name) > MaxNameLen {
		return nil, fmt.Errorf("%w: name %q is %d bytes, max %d", ErrFileName, truncateName(name), len(name), MaxNameLen)
	}
	if len(name) < MinNameLen {
		return nil, fmt.Errorf("%w: name %q is %d bytes, min %d", ErrFileName, name, len(name), MinNameLen)
	}
	if length < 0 || length > MaxFileLen {
		return nil, fmt.Errorf("%w: %d bytes", ErrFileLength, length)
	}
	return c.bytes(), nil
}

func (c Control) bytes() []byte {
	buf := make([]byte, ControlHeaderLen+len(c.Name))
	buf[0] = byte(len(c.Name)) // 256 wraps to 0
	putUint24(buf[1:4], uint32(c.Length))
	copy(buf[ControlHeaderLen:], c.Name)
	return buf
}

// ParseControl decodes a control frame. The name is bounded by the declared
// name length; trailing bytes are ignored.
func ParseControl(b []byte) (Control, error) {
	if len(b) < ControlHeaderLen {
		return Control{}, fmt.Errorf("%w: control header needs %d bytes, got %d", ErrTruncated, ControlHeaderLen, len(b))
	}
	nameLen := int(b[0])
	if nameLen == 0 {
		nameLen = MaxNameLen
	}
	if nameLen < MinNameLen {
		return Control{}, fmt.Errorf("%w: declared name length %d", ErrFileName, nameLen)
	}
	if len(b)-ControlHeaderLen < nameLen {
		return Control{}, fmt.Errorf("%w: name needs %d bytes, got %d", ErrTruncated, nameLen, len(b)-ControlHeaderLen)
	}
	return Control{
		Name:   string(b[ControlHeaderLen : ControlHeaderLen+nameLen]),
		Length: int(uint24(b[1:4])),
	}, nil
}

func putUint24(b []byte, v uint32) {
	_ = b[2]
	b[0] = byte(v >> 16)
	b[1] = byte(v >> 8)
	b[2] = byte(v)
}

func uint24(b []byte) uint32 {
	_ = b[2]
	return uint32(b[0])<<16 | uint32(b[1])<<8 | uint32(b[2])
}

func truncateName(name string) string {
	if len(name) <= 32 {
		return name
	}
	return name[:32] + "..."
}
