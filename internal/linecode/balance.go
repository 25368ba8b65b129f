package linecode

// Weight is the clamped symbol sum of a code group.
type Weight int8

const (
	WeightNegative Weight = -1
	WeightNeutral  Weight = 0
	WeightPositive Weight = 1
)

// WeightOf sums +1 per '+' and -1 per '-', clamped to {-1, 0, +1}.
func WeightOf(symbols string) Weight {
	sum := 0
	for i := 0; i < len(symbols); i++ {
		switch symbols[i] {
		case SymbolPositive:
			sum++
		case SymbolNegative:
			sum--
		}
	}
	switch {
	case sum > 0:
		return WeightPositive
	case sum < 0:
		return WeightNegative
	default:
		return WeightNeutral
	}
}

// Invert swaps '+' and '-' and leaves every other symbol in place.
func Invert(symbols string) string {
	out := []byte(symbols)
	for i, s := range out {
		switch s {
		case SymbolPositive:
			out[i] = SymbolNegative
		case SymbolNegative:
			out[i] = SymbolPositive
		}
	}
	return string(out)
}

// Balance is the per-stream cumulative weight bit (0 or 1).
type Balance uint8

// BalanceState holds one Balance per stream. The zero value is the reset state.
type BalanceState [NumStreams]Balance

// encodeGroup applies the transmit-side correction to cw and advances b.
//
//	w=0           unchanged, b kept
//	w=+1, b=0     unchanged, b=1
//	w=+1, b=1     inverted,  b=0
//	w=-1          inverted,  b=0
func (b *Balance) encodeGroup(cw Codeword) string {
	switch WeightOf(string(cw)) {
	case WeightPositive:
		if *b == 0 {
			*b = 1
			return string(cw)
		}
		*b = 0
		return Invert(string(cw))
	case WeightNegative:
		*b = 0
		return Invert(string(cw))
	default:
		return string(cw)
	}
}

// decodeGroup undoes encodeGroup for one received group and advances b the
// same way the transmitter did.
func (b *Balance) decodeGroup(group string) string {
	switch WeightOf(group) {
	case WeightPositive:
		if *b == 0 {
			*b = 1
			return group
		}
		*b = 0
		return Invert(group)
	case WeightNegative:
		*b = 0
		return Invert(group)
	default:
		return group
	}
}

// endDelimiter returns the stream's end delimiter, inverted when b is 0.
func (b Balance) endDelimiter(stream int) string {
	if b == 0 {
		return Invert(endDelimiters[stream])
	}
	return endDelimiters[stream]
}
