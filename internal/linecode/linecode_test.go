package linecode

import (
	"bytes"
	"errors"
	"math/rand"
	"strings"
	"testing"
)

func TestCodeTableIsBijective(t *testing.T) {
	seen := make(map[Codeword]int, len(codeTable))
	for i, cw := range codeTable {
		if len(cw) != CodewordLen {
			t.Fatalf("code group 0x%02X has length %d", i, len(cw))
		}
		if strings.Trim(string(cw), "+-0") != "" {
			t.Fatalf("code group 0x%02X has invalid symbols: %q", i, cw)
		}
		if w := WeightOf(string(cw)); w != WeightNeutral && w != WeightPositive {
			t.Fatalf("code group 0x%02X has weight %d", i, w)
		}
		if prev, dup := seen[cw]; dup {
			t.Fatalf("code group %q assigned to 0x%02X and 0x%02X", cw, prev, i)
		}
		seen[cw] = i
		b, ok := ByteOf(cw)
		if !ok || int(b) != i {
			t.Fatalf("ByteOf(%q)=(0x%02X,%v) want 0x%02X", cw, b, ok, i)
		}
	}
	if IsValidCodeword("000000") {
		t.Fatalf("all-zero group must not be a data code group")
	}
	if !IsValidCodeword("+-00+-") {
		t.Fatalf("expected +-00+- to be valid")
	}
}

func TestWeightAndInvert(t *testing.T) {
	cases := []struct {
		in   string
		want Weight
	}{
		{"+-00+-", WeightNeutral},
		{"0-+++-", WeightPositive},
		{"------", WeightNegative},
		{"000000", WeightNeutral},
		{"+00000", WeightPositive},
	}
	for _, tc := range cases {
		if got := WeightOf(tc.in); got != tc.want {
			t.Fatalf("WeightOf(%q)=%d want %d", tc.in, got, tc.want)
		}
		inv := Invert(tc.in)
		if got := WeightOf(inv); got != -tc.want {
			t.Fatalf("WeightOf(Invert(%q))=%d want %d", tc.in, got, -tc.want)
		}
		if Invert(inv) != tc.in {
			t.Fatalf("Invert is not an involution for %q", tc.in)
		}
	}
	if got := Invert("+-0+-0"); got != "-+0-+0" {
		t.Fatalf("Invert(+-0+-0)=%q", got)
	}
}

func TestBalanceEncodeRules(t *testing.T) {
	pos := Codeword("0-+++-")
	neg := Codeword(Invert(string(pos)))
	zero := Codeword("+-00+-")

	var b Balance
	if got := b.encodeGroup(zero); got != string(zero) || b != 0 {
		t.Fatalf("w0 dc0: got %q dc=%d", got, b)
	}
	if got := b.encodeGroup(pos); got != string(pos) || b != 1 {
		t.Fatalf("w+1 dc0: got %q dc=%d", got, b)
	}
	if got := b.encodeGroup(zero); got != string(zero) || b != 1 {
		t.Fatalf("w0 dc1: got %q dc=%d", got, b)
	}
	if got := b.encodeGroup(pos); got != string(neg) || b != 0 {
		t.Fatalf("w+1 dc1: got %q dc=%d", got, b)
	}
	if got := b.encodeGroup(neg); got != string(pos) || b != 0 {
		t.Fatalf("w-1 dc0: got %q dc=%d", got, b)
	}
	b = 1
	if got := b.encodeGroup(neg); got != string(pos) || b != 0 {
		t.Fatalf("w-1 dc1: got %q dc=%d", got, b)
	}
}

func TestEncodeEmptyInputProducesDelimitersOnly(t *testing.T) {
	s, state := EncodeState(nil)
	for i := 0; i < NumStreams; i++ {
		want := StartDelimiter(i) + Invert(EndDelimiter(i))
		if s[i] != want {
			t.Fatalf("stream %d: got %q want %q", i+1, s[i], want)
		}
		if state[i] != 0 {
			t.Fatalf("stream %d: balance=%d want 0", i+1, state[i])
		}
	}
	out, err := Decode(s)
	if err != nil {
		t.Fatalf("decode empty: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("expected no bytes, got %v", out)
	}
}

func TestEncodeSingleByteLayout(t *testing.T) {
	s := Encode([]byte{0x1D}) // 0-+++-, weight +1
	want := StartDelimiter(0) + "0-+++-" + EndDelimiter(0)
	if s[0] != want {
		t.Fatalf("stream 1: got %q want %q", s[0], want)
	}
	if s[1] != StartDelimiter(1)+Invert(EndDelimiter(1)) {
		t.Fatalf("stream 2 should carry only delimiters: %q", s[1])
	}
}

func TestEncodeIsStateless(t *testing.T) {
	data := []byte{0x1D, 0x1D, 0x1D, 0x1D}
	first := Encode(data)
	second := Encode(data)
	if first != second {
		t.Fatalf("encode must not carry balance state across calls")
	}
}

func TestRoundTripAllLengths(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for n := 0; n <= 96; n++ {
		data := make([]byte, n)
		rng.Read(data)
		out, err := Decode(Encode(data))
		if err != nil {
			t.Fatalf("len=%d decode: %v", n, err)
		}
		if !bytes.Equal(out, data) {
			t.Fatalf("len=%d round trip mismatch: got %v want %v", n, out, data)
		}
	}
}

func TestRoundTripEveryByteValue(t *testing.T) {
	data := make([]byte, 0, 512)
	for i := 0; i < 256; i++ {
		data = append(data, byte(i), byte(255-i))
	}
	out, err := Decode(Encode(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !bytes.Equal(out, data) {
		t.Fatalf("round trip mismatch")
	}
}

func TestHelloWorldInterleave(t *testing.T) {
	in := []byte("Hello World")
	s := Encode(in)
	groups := func(i int) int {
		return (len(s[i]) - len(StartDelimiter(i)) - len(EndDelimiter(i))) / CodewordLen
	}
	if groups(0) != 4 || groups(1) != 4 || groups(2) != 3 {
		t.Fatalf("unexpected group counts: %d %d %d", groups(0), groups(1), groups(2))
	}
	out, err := Decode(s)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if string(out) != "Hello World" {
		t.Fatalf("got %q", out)
	}
}

func TestInterleaveStopsAtShortestStream(t *testing.T) {
	got := interleave([NumStreams][]byte{[]byte("HlWl"), []byte("eoo"), []byte("l r")})
	if string(got) != "Hello Worl" {
		t.Fatalf("got %q", got)
	}
	got = interleave([NumStreams][]byte{[]byte("ab"), nil, []byte("xyz")})
	if string(got) != "a" {
		t.Fatalf("got %q", got)
	}
}

func TestBalanceStateClosure(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	data := make([]byte, 300)
	rng.Read(data)
	s, final := EncodeState(data)
	for i, line := range s {
		payload := line[len(StartDelimiter(i)) : len(line)-len(EndDelimiter(i))]
		var dc Balance
		for off := 0; off < len(payload); off += CodewordLen {
			group := payload[off : off+CodewordLen]
			w := WeightOf(group)
			if w == WeightNegative && dc != 1 {
				t.Fatalf("stream %d offset %d: negative group emitted with dc=%d", i+1, off, dc)
			}
			dc.decodeGroup(group)
			if dc > 1 {
				t.Fatalf("stream %d: balance bit escaped {0,1}: %d", i+1, dc)
			}
		}
		if dc != final[i] {
			t.Fatalf("stream %d: replayed balance %d, encoder reported %d", i+1, dc, final[i])
		}
		tail := line[len(line)-len(EndDelimiter(i)):]
		if (dc == 1) != (tail == EndDelimiter(i)) {
			t.Fatalf("stream %d: end delimiter orientation does not match balance %d", i+1, dc)
		}
	}
}

func mutate(line string, pos int) string {
	b := []byte(line)
	switch b[pos] {
	case '+':
		b[pos] = '0'
	case '-':
		b[pos] = '+'
	default:
		b[pos] = '-'
	}
	return string(b)
}

func TestStartDelimiterMutationRejected(t *testing.T) {
	base := Encode([]byte("delimiters"))
	for stream := 0; stream < NumStreams; stream++ {
		for pos := 0; pos < len(StartDelimiter(stream)); pos++ {
			s := base
			s[stream] = mutate(s[stream], pos)
			_, err := Decode(s)
			if !errors.Is(err, ErrStartOfStream) {
				t.Fatalf("stream %d pos %d: expected ErrStartOfStream, got %v", stream+1, pos, err)
			}
			var se *StreamError
			if !errors.As(err, &se) || se.Stream != stream+1 {
				t.Fatalf("stream %d pos %d: wrong stream in error: %v", stream+1, pos, err)
			}
		}
	}
}

func TestEndDelimiterMutationRejected(t *testing.T) {
	base := Encode([]byte("delimiters!"))
	for stream := 0; stream < NumStreams; stream++ {
		end := len(EndDelimiter(stream))
		for pos := 0; pos < end; pos++ {
			s := base
			s[stream] = mutate(s[stream], len(s[stream])-end+pos)
			_, err := Decode(s)
			if !errors.Is(err, ErrEndOfPacket) {
				t.Fatalf("stream %d pos %d: expected ErrEndOfPacket, got %v", stream+1, pos, err)
			}
		}
	}
}

func TestDecodeAcceptsEitherEndOrientation(t *testing.T) {
	s := Encode([]byte("abc"))
	for i := range s {
		end := EndDelimiter(i)
		body := s[i][:len(s[i])-len(end)]
		flipped := s
		if strings.HasSuffix(s[i], end) {
			flipped[i] = body + Invert(end)
		} else {
			flipped[i] = body + end
		}
		out, err := Decode(flipped)
		if err != nil {
			t.Fatalf("stream %d: %v", i+1, err)
		}
		if string(out) != "abc" {
			t.Fatalf("stream %d: got %q", i+1, out)
		}
	}
}

func TestDecodeLengthValidation(t *testing.T) {
	base := Encode([]byte("length check"))
	for extra := 1; extra < CodewordLen; extra++ {
		for stream := 0; stream < NumStreams; stream++ {
			s := base
			start := StartDelimiter(stream)
			s[stream] = start + strings.Repeat("0", extra) + s[stream][len(start):]
			_, err := Decode(s)
			if !errors.Is(err, ErrDecode) {
				t.Fatalf("stream %d extra %d: expected ErrDecode, got %v", stream+1, extra, err)
			}
		}
	}
}

func TestDecodeRejectsEmptyAndShortStreams(t *testing.T) {
	s := Encode([]byte("xyz"))
	empty := s
	empty[1] = ""
	if _, err := Decode(empty); !errors.Is(err, ErrDecode) {
		t.Fatalf("expected ErrDecode for empty stream, got %v", err)
	}
	short := s
	short[2] = StartDelimiter(2)
	if _, err := Decode(short); !errors.Is(err, ErrDecode) {
		t.Fatalf("expected ErrDecode for short stream, got %v", err)
	}
}

func TestDecodeRejectsUnknownCodeGroup(t *testing.T) {
	s := Encode([]byte("abc"))
	start := StartDelimiter(0)
	s[0] = start + "000000" + s[0][len(start)+CodewordLen:]
	_, err := Decode(s)
	if !errors.Is(err, ErrDecode) {
		t.Fatalf("expected ErrDecode, got %v", err)
	}
	if Kind(err) != "decode" {
		t.Fatalf("unexpected kind %q", Kind(err))
	}
}

func TestParseStreams(t *testing.T) {
	s := Encode([]byte("hi"))
	parsed, err := ParseStreams([]string{" " + s[0] + "\n", s[1], "\t" + s[2]})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if parsed != s {
		t.Fatalf("parsed streams differ")
	}
	if _, err := ParseStreams([]string{s[0]}); !errors.Is(err, ErrDecode) {
		t.Fatalf("expected ErrDecode, got %v", err)
	}
}
