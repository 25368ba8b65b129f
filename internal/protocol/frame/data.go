package frame

import "fmt"

const SegmentSize = 2048

// Data is one file segment. Seq counts down to 0, which marks the last segment.
type Data struct {
	Seq     uint8
	Payload []byte
}

// Bytes returns the wire form [seq:1][payload].
func (d Data) Bytes() []byte {
	buf := make([]byte, 1+len(d.Payload))
	buf[0] = d.Seq
	copy(buf[1:], d.Payload)
	return buf
}

func ParseData(b []byte) (Data, error) {
	if len(b) < 1 {
		return Data{}, fmt.Errorf("%w: data frame has no sequence number", ErrTruncated)
	}
	if len(b)-1 > SegmentSize {
		return Data{}, fmt.Errorf("%w: %d bytes, max %d", ErrPayload, len(b)-1, SegmentSize)
	}
	payload := make([]byte, len(b)-1)
	copy(payload, b[1:])
	return Data{Seq: b[0], Payload: payload}, nil
}

// SegmentCount returns how many data frames carry a file of size bytes. An
// empty file still travels as one empty frame.
func SegmentCount(size int) int {
	if size <= SegmentSize {
		return 1
	}
	return (size + SegmentSize - 1) / SegmentSize
}

// SeqFor returns the sequence number of segment index i (0-based, in send
// order) out of count. Only the low 8 bits are carried on the wire.
func SeqFor(i, count int) uint8 {
	return uint8(count - 1 - i)
}

// Segment splits content into data frames in send order: full segments with
// descending sequence numbers, then the remainder tagged 0.
func Segment(content []byte) []Data {
	count := SegmentCount(len(content))
	out := make([]Data, 0, count)
	for i := 0; i < count; i++ {
		lo := i * SegmentSize
		hi := min(lo+SegmentSize, len(content))
		out = append(out, Data{Seq: SeqFor(i, count), Payload: content[lo:hi]})
	}
	return out
}
