package linecode

// Codeword is one 6T code group: six ternary symbols drawn from '+', '-', '0'.
type Codeword string

const (
	SymbolPositive = '+'
	SymbolNegative = '-'
	SymbolZero     = '0'

	CodewordLen = 6
	NumStreams  = 3
)

// codeTable maps each data octet to its 6T code group. Every group has weight 0
// or +1 and none contains four consecutive zeros.
var codeTable = [256]Codeword{
	"+-00+-", "0+-+-0", "+-0+-0", "-0++-0", "-0+0+-", "0+--0+", "+-0-0+", "-0+-0+", // 0x00
	"-+00+-", "0-++-0", "-+0+-0", "+0-+-0", "+0-0+-", "0-+-0+", "-+0-0+", "+0--0+", // 0x08
	"+0+--0", "++0-0-", "+0+-0-", "0++-0-", "0++--0", "++00--", "+0+0--", "0++0--", // 0x10
	"0+-0+-", "0+-0-+", "0+-++-", "0+-00+", "0-+00+", "0-+++-", "0-+0-+", "0-+0+-", // 0x18
	"00-++-", "--+00+", "++-0+-", "++-0-+", "00+0-+", "00+0+-", "00-00+", "--+++-", // 0x20
	"-0-++0", "--0+0+", "-0-+0+", "0--+0+", "0--++0", "--00++", "-0-0++", "0--0++", // 0x28
	"+-00-+", "0+--+0", "+-0-+0", "-0+-+0", "-0+0-+", "0+-+0-", "+-0+0-", "-0++0-", // 0x30
	"-+00-+", "0-+-+0", "-+0-+0", "+0--+0", "+0-0-+", "0-++0-", "-+0+0-", "+0-+0-", // 0x38
	"+++---", "++-+--", "++--+-", "++---+", "++--00", "++-0-0", "++-00-", "++0--0", // 0x40
	"+-++--", "+-+-+-", "+-+--+", "+-+-00", "+-+0-0", "+-+00-", "+--++-", "+--+-+", // 0x48
	"+--+00", "+---++", "+--0+0", "+--00+", "+0-000", "+00+--", "+00-+-", "+00--+", // 0x50
	"+00-00", "+000-0", "-+++--", "-++-+-", "-++--+", "-++-00", "-++0-0", "-++00-", // 0x58
	"-+-++-", "-+-+-+", "-+-+00", "-+--++", "-+-0+0", "-+-00+", "--++-+", "--++00", // 0x60
	"--+-++", "--+0+0", "---+++", "--0++0", "-0+000", "-00++-", "-00+-+", "-00+00", // 0x68
	"-00-++", "-000+0", "0+-000", "0+0+--", "0+0-+-", "0+0--+", "0+0-00", "0+00-0", // 0x70
	"0+000-", "0-+000", "0-0++-", "0-0+-+", "0-0+00", "0-0-++", "0-00+0", "0-000+", // 0x78
	"00++--", "00+-+-", "00+--+", "00+-00", "00+0-0", "00+00-", "00-+-+", "00-+00", // 0x80
	"00--++", "00-0+0", "000+-0", "000+0-", "000-+0", "000-0+", "+++--0", "+++-0-", // 0x88
	"+++0--", "++-+-0", "++-+0-", "++--+0", "++--0+", "++-000", "++0+--", "++0-+-", // 0x90
	"++0--+", "++0-00", "++00-0", "++000-", "+-++-0", "+-++0-", "+-+-+0", "+-+-0+", // 0x98
	"+-+0+-", "+-+0-+", "+-+000", "+--++0", "+--+0+", "+--0++", "+-0++-", "+-0+-+", // 0xA0
	"+-0+00", "+-0-++", "+-00+0", "+-000+", "+0++--", "+0+-+-", "+0+--+", "+0+-00", // 0xA8
	"+0+0-0", "+0+00-", "+0-++-", "+0-+-+", "+0-+00", "+0--++", "+0-0+0", "+0-00+", // 0xB0
	"+00+-0", "+00+0-", "+00-+0", "+00-0+", "+000+-", "+000-+", "-+++-0", "-+++0-", // 0xB8
	"-++-+0", "-++-0+", "-++0+-", "-++0-+", "-++000", "-+-++0", "-+-+0+", "-+-0++", // 0xC0
	"-+0++-", "-+0+-+", "-+0+00", "-+0-++", "-+00+0", "-+000+", "--+++0", "--++0+", // 0xC8
	"--+0++", "--0+++", "-0+++-", "-0++-+", "-0++00", "-0+-++", "-0+0+0", "-0+00+", // 0xD0
	"-0-+++", "-00++0", "-00+0+", "-000++", "0+++--", "0++-+-", "0++--+", "0++-00", // 0xD8
	"0++0-0", "0++00-", "0+-+-+", "0+-+00", "0+--++", "0+-0+0", "0+0+-0", "0+0+0-", // 0xE0
	"0+0-+0", "0+0-0+", "0+00+-", "0+00-+", "0-++-+", "0-++00", "0-+-++", "0-+0+0", // 0xE8
	"0--+++", "0-0++0", "0-0+0+", "0-00++", "00++-0", "00++0-", "00+-+0", "00+-0+", // 0xF0
	"00+000", "00-++0", "00-+0+", "00-0++", "000++-", "000+-+", "000+00", "000-++", // 0xF8
}

// Delimiter building blocks.
const (
	sosA = "+-+-+-"
	sosB = "+-+--+"
	p3   = "+-"
	p4   = "+-+-"

	eop1 = "++++++"
	eop2 = "++++--"
	eop3 = "++--00"
	eop4 = "------"
	eop5 = "--0000"
)

var (
	startDelimiters = [NumStreams]string{
		p4 + sosA + sosB,
		sosA + sosA + sosB,
		p3 + sosA + sosA + sosB,
	}
	endDelimiters = [NumStreams]string{
		eop1 + eop4,
		eop2 + eop5,
		eop3,
	}
)

var reverseTable = buildReverseTable()

func buildReverseTable() map[Codeword]byte {
	out := make(map[Codeword]byte, len(codeTable))
	for i, cw := range codeTable {
		if _, dup := out[cw]; dup {
			panic("linecode: duplicate code group " + string(cw))
		}
		out[cw] = byte(i)
	}
	return out
}

// Lookup returns the code group assigned to b.
func Lookup(b byte) Codeword {
	return codeTable[b]
}

// ByteOf is the inverse of Lookup.
func ByteOf(cw Codeword) (byte, bool) {
	b, ok := reverseTable[cw]
	return b, ok
}

// IsValidCodeword reports whether symbols is one of the 256 data code groups.
func IsValidCodeword(symbols string) bool {
	_, ok := reverseTable[Codeword(symbols)]
	return ok
}

// StartDelimiter returns the start-of-stream delimiter for stream (0-based).
func StartDelimiter(stream int) string {
	return startDelimiters[stream]
}

// EndDelimiter returns the uninverted end-of-stream delimiter for stream (0-based).
func EndDelimiter(stream int) string {
	return endDelimiters[stream]
}
