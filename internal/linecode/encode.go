package linecode

import "strings"

// Streams carries the three parallel symbol lines of one frame.
type Streams [NumStreams]string

// Encode maps data onto three delimited 8B/6T streams. Byte i is carried by
// stream i%3. Every call starts from a reset balance state.
func Encode(data []byte) Streams {
	s, _ := EncodeState(data)
	return s
}

// EncodeState is Encode that also returns the balance bits left after the last
// code group of each stream.
func EncodeState(data []byte) (Streams, BalanceState) {
	var (
		state BalanceState
		bufs  [NumStreams]strings.Builder
	)
	for i := range bufs {
		bufs[i].Grow(len(startDelimiters[i]) + (len(data)/NumStreams+1)*CodewordLen + len(endDelimiters[i]))
		bufs[i].WriteString(startDelimiters[i])
	}
	for i, b := range data {
		stream := i % NumStreams
		bufs[stream].WriteString(state[stream].encodeGroup(Lookup(b)))
	}

	var out Streams
	for i := range bufs {
		bufs[i].WriteString(state[i].endDelimiter(i))
		out[i] = bufs[i].String()
	}
	return out, state
}
