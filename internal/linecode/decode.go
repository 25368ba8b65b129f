package linecode

import (
	"fmt"
	"strings"
)

// Decode validates the delimiters of all three streams, then decodes each
// stream and re-interleaves the bytes in transmit order.
func Decode(s Streams) ([]byte, error) {
	payloads, err := validate(s)
	if err != nil {
		return nil, err
	}

	var lines [NumStreams][]byte
	for i, payload := range payloads {
		line, err := decodeLine(i, payload)
		if err != nil {
			return nil, err
		}
		lines[i] = line
	}
	return interleave(lines), nil
}

// validate runs every structural check on all streams before any code group is
// decoded and returns the payload between the delimiters of each stream.
func validate(s Streams) ([NumStreams]string, error) {
	var payloads [NumStreams]string

	for i, line := range s {
		if line == "" {
			return payloads, streamErr(i, ErrDecode, "empty stream")
		}
	}
	for i, line := range s {
		start, end := len(startDelimiters[i]), len(endDelimiters[i])
		if len(line) < start+end {
			return payloads, streamErr(i, ErrDecode, fmt.Sprintf("length %d below minimum %d", len(line), start+end))
		}
		if (len(line)-start)%CodewordLen != 0 {
			return payloads, streamErr(i, ErrDecode, fmt.Sprintf("%d symbols after start delimiter is not a multiple of %d", len(line)-start, CodewordLen))
		}
	}
	for i, line := range s {
		if !strings.HasPrefix(line, startDelimiters[i]) {
			return payloads, streamErr(i, ErrStartOfStream, "")
		}
	}
	for i, line := range s {
		tail := line[len(line)-len(endDelimiters[i]):]
		if tail != endDelimiters[i] && tail != Invert(endDelimiters[i]) {
			return payloads, streamErr(i, ErrEndOfPacket, "")
		}
	}
	for i, line := range s {
		payloads[i] = line[len(startDelimiters[i]) : len(line)-len(endDelimiters[i])]
	}
	return payloads, nil
}

func decodeLine(stream int, payload string) ([]byte, error) {
	if len(payload)%CodewordLen != 0 {
		return nil, streamErr(stream, ErrDecode, "payload is not a whole number of code groups")
	}
	var dc Balance
	out := make([]byte, 0, len(payload)/CodewordLen)
	for off := 0; off < len(payload); off += CodewordLen {
		group := dc.decodeGroup(payload[off : off+CodewordLen])
		b, ok := ByteOf(Codeword(group))
		if !ok {
			return nil, streamErr(stream, ErrDecode, fmt.Sprintf("unknown code group %q at offset %d", group, off))
		}
		out = append(out, b)
	}
	return out, nil
}

// interleave rebuilds first[0], second[0], third[0], first[1], ... and stops
// as soon as the second or third stream runs out at the current position.
func interleave(lines [NumStreams][]byte) []byte {
	first, second, third := lines[0], lines[1], lines[2]
	out := make([]byte, len(first)+len(second)+len(third))
	index := 0
	for i := 0; i < len(first); i++ {
		out[index] = first[i]
		index++
		if i >= len(second) {
			break
		}
		out[index] = second[i]
		index++
		if i >= len(third) {
			break
		}
		out[index] = third[i]
		index++
	}
	return out[:index]
}

// ParseStreams builds Streams from three text lines, trimming surrounding
// whitespace. It does not validate delimiters; Decode does.
func ParseStreams(lines []string) (Streams, error) {
	var s Streams
	if len(lines) != NumStreams {
		return s, fmt.Errorf("%w: expected %d streams, got %d", ErrDecode, NumStreams, len(lines))
	}
	for i, line := range lines {
		s[i] = strings.TrimSpace(line)
	}
	return s, nil
}
