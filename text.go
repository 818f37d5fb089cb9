package codepoints

import (
	"iter"
	"unicode/utf16"
)

// Direction selects which way [Codepoints] walks a buffer.
type Direction int

const (
	Forward  Direction = iota // Towards the end of the buffer.
	Backward                  // Towards the start of the buffer.
)

// String returns "forward" or "backward".
func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// CodepointAt returns the code point starting at text[index]. A high
// surrogate followed by a low surrogate is decoded as a pair; any other unit,
// including a lone surrogate, is returned as is.
func CodepointAt(text []uint16, index int) (Codepoint, error) {
	if index < 0 || index >= len(text) {
		return 0, &IndexError{Index: index, Length: len(text)}
	}
	u := text[index]
	if IsHighSurrogate(u) && index+1 < len(text) {
		if next := text[index+1]; IsLowSurrogate(next) {
			return CodepointFromSurrogatePair(u, next), nil
		}
	}
	return Codepoint(u), nil
}

// CodepointBefore returns the code point ending right before text[index].
// A low surrogate preceded by a high surrogate is decoded as a pair; any
// other unit is returned as is.
func CodepointBefore(text []uint16, index int) (Codepoint, error) {
	if index < 1 || index > len(text) {
		return 0, &IndexError{Index: index, Length: len(text)}
	}
	u := text[index-1]
	if IsLowSurrogate(u) && index-2 >= 0 {
		if prev := text[index-2]; IsHighSurrogate(prev) {
			return CodepointFromSurrogatePair(prev, u), nil
		}
	}
	return Codepoint(u), nil
}

// Codepoints returns the code points of text starting at offset, walking in
// the given direction. Walking backward starts with the code point that ends
// at offset.
//
// Unlike [CodepointAt] and [CodepointBefore], the sequence skips unpaired
// surrogates that would start a code point in the walking direction: a lone
// high surrogate walking forward and a lone low surrogate walking backward.
// A lone surrogate of the other kind is yielded as is.
//
// An offset outside 0..len(text) yields nothing. Each call to the returned
// sequence restarts at offset.
func Codepoints(text []uint16, offset int, direction Direction) iter.Seq[Codepoint] {
	return func(yield func(Codepoint) bool) {
		if offset < 0 || offset > len(text) {
			return
		}
		if direction == Backward {
			walkBackward(text, offset, yield)
			return
		}
		walkForward(text, offset, yield)
	}
}

func walkForward(text []uint16, i int, yield func(Codepoint) bool) {
	for i < len(text) {
		u := text[i]
		i++
		if IsHighSurrogate(u) {
			if i < len(text) && IsLowSurrogate(text[i]) {
				if !yield(CodepointFromSurrogatePair(u, text[i])) {
					return
				}
				i++
			}
			continue
		}
		if !yield(Codepoint(u)) {
			return
		}
	}
}

func walkBackward(text []uint16, i int, yield func(Codepoint) bool) {
	for i > 0 {
		i--
		u := text[i]
		if IsLowSurrogate(u) {
			if i > 0 && IsHighSurrogate(text[i-1]) {
				i--
				if !yield(CodepointFromSurrogatePair(text[i], u)) {
					return
				}
			}
			continue
		}
		if !yield(Codepoint(u)) {
			return
		}
	}
}

// Offset8To16 converts a UTF-8 byte offset into the corresponding UTF-16
// offset of text. It walks the text from the start until the UTF-8 length of
// the code points seen reaches or exceeds utf8Offset, so an offset pointing
// into the middle of a character maps to the end of that character. Offsets
// past the end of the text map to len(text).
//
// Lone surrogates count as one UTF-16 unit and three UTF-8 bytes.
func Offset8To16(text []uint16, utf8Offset int) int {
	offset8, offset16 := 0, 0
	for offset8 < utf8Offset && offset16 < len(text) {
		c, _ := CodepointAt(text, offset16)
		offset8 += c.UTF8Len()
		offset16 += c.CharCount()
	}
	return offset16
}

// Offset16To8 converts a UTF-16 offset of text into the corresponding UTF-8
// byte offset. An offset between the halves of a surrogate pair maps to the
// end of the pair.
func Offset16To8(text []uint16, utf16Offset int) int {
	offset8, offset16 := 0, 0
	for offset16 < utf16Offset && offset16 < len(text) {
		c, _ := CodepointAt(text, offset16)
		offset8 += c.UTF8Len()
		offset16 += c.CharCount()
	}
	return offset8
}

// EncodeString returns the UTF-16 encoding of s. Invalid UTF-8 is replaced by
// U+FFFD.
func EncodeString(s string) []uint16 {
	return utf16.Encode([]rune(s))
}

// DecodeString returns the UTF-8 string for text. Lone surrogates are
// replaced by U+FFFD.
func DecodeString(text []uint16) string {
	return string(utf16.Decode(text))
}
