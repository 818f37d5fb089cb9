package codepoints

// UTF-16 surrogate constants.
//
// 0xd800-0xdc00 encodes the high 10 bits of a pair.
// 0xdc00-0xe000 encodes the low 10 bits of a pair.
// The value is those 20 bits plus 0x10000.
const (
	MinHighSurrogate = 0xd800
	MaxHighSurrogate = 0xdbff
	MinLowSurrogate  = 0xdc00
	MaxLowSurrogate  = 0xdfff

	// MinSupplementaryCodePoint is the first code point outside the Basic
	// Multilingual Plane.
	MinSupplementaryCodePoint = 0x10000

	// MaxCodePoint is the largest Unicode code point. Nothing in this package
	// validates against it.
	MaxCodePoint = 0x10ffff

	highSurrogateEncodeOffset = MinHighSurrogate - MinSupplementaryCodePoint>>10
	surrogateDecodeOffset     = MinSupplementaryCodePoint - MinHighSurrogate<<10 - MinLowSurrogate
)

// IsHighSurrogate reports whether u is a leading surrogate code unit.
func IsHighSurrogate(u uint16) bool {
	return u >= MinHighSurrogate && u <= MaxHighSurrogate
}

// IsLowSurrogate reports whether u is a trailing surrogate code unit.
func IsLowSurrogate(u uint16) bool {
	return u >= MinLowSurrogate && u <= MaxLowSurrogate
}

// IsSurrogate reports whether u is either half of a surrogate pair.
func IsSurrogate(u uint16) bool {
	return u >= MinHighSurrogate && u <= MaxLowSurrogate
}

// IsBMPCodePoint reports whether c fits into a single UTF-16 code unit.
func IsBMPCodePoint(c Codepoint) bool {
	return uint32(c)>>16 == 0
}

// HighSurrogate returns the leading surrogate of the UTF-16 encoding of c.
// The result is meaningless for BMP code points.
func HighSurrogate(c Codepoint) uint16 {
	return uint16(c>>10 + highSurrogateEncodeOffset)
}

// LowSurrogate returns the trailing surrogate of the UTF-16 encoding of c.
// The result is meaningless for BMP code points.
func LowSurrogate(c Codepoint) uint16 {
	return uint16(c&0x3ff + MinLowSurrogate)
}

// CodepointFromSurrogatePair decodes a surrogate pair. It is the inverse of
// [HighSurrogate] and [LowSurrogate]; the halves are not validated.
func CodepointFromSurrogatePair(high, low uint16) Codepoint {
	return Codepoint(int32(high)<<10 + int32(low) + surrogateDecodeOffset)
}

// AppendCodepoint appends the UTF-16 encoding of c to buf and returns the
// extended buffer.
func AppendCodepoint(buf []uint16, c Codepoint) []uint16 {
	if IsBMPCodePoint(c) {
		return append(buf, uint16(c))
	}
	return append(buf, HighSurrogate(c), LowSurrogate(c))
}
