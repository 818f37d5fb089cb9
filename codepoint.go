package codepoints

import "fmt"

// Codepoint is a single Unicode scalar value. It is a plain integer; values
// are not range checked.
type Codepoint int32

// CharCount returns the number of UTF-16 code units needed to encode c.
func (c Codepoint) CharCount() int {
	if c >= MinSupplementaryCodePoint {
		return 2
	}
	return 1
}

// UTF8Len returns the number of bytes needed to encode c in UTF-8. Surrogate
// code points count as three bytes, as they do in WTF-8.
func (c Codepoint) UTF8Len() int {
	switch {
	case c < 0x80:
		return 1
	case c < 0x800:
		return 2
	case c < 0x10000:
		return 3
	default:
		return 4
	}
}

// IsBMP reports whether c fits into a single UTF-16 code unit.
func (c Codepoint) IsBMP() bool {
	return IsBMPCodePoint(c)
}

// AppendTo appends the UTF-16 encoding of c to buf.
func (c Codepoint) AppendTo(buf []uint16) []uint16 {
	return AppendCodepoint(buf, c)
}

// String returns the code point in U+XXXX notation.
func (c Codepoint) String() string {
	return fmt.Sprintf("U+%04X", int32(c))
}

// The methods below consult the default database, see [Default].

// Properties returns the packed property record of c.
func (c Codepoint) Properties() Properties { return Default().Properties(c) }

// Category returns the General Category of c.
func (c Codepoint) Category() Category { return Default().Category(c) }

// Script returns the script of c.
func (c Codepoint) Script() Script { return Default().Script(c) }

// IsLetter reports whether c is a letter.
func (c Codepoint) IsLetter() bool { return Default().IsLetter(c) }

// IsDigit reports whether c is a decimal digit.
func (c Codepoint) IsDigit() bool { return Default().IsDigit(c) }

// IsLetterOrDigit reports whether c is a letter or a decimal digit.
func (c Codepoint) IsLetterOrDigit() bool { return Default().IsLetterOrDigit(c) }

// IsUpperCase reports whether c is uppercase.
func (c Codepoint) IsUpperCase() bool { return Default().IsUpperCase(c) }

// IsLowerCase reports whether c is lowercase.
func (c Codepoint) IsLowerCase() bool { return Default().IsLowerCase(c) }

// IsSpaceChar reports whether c is a Unicode separator.
func (c Codepoint) IsSpaceChar() bool { return Default().IsSpaceChar(c) }

// IsWhitespace reports whether c is whitespace in the Java sense.
func (c Codepoint) IsWhitespace() bool { return Default().IsWhitespace(c) }

// IsIdeographic reports whether c is ideographic.
func (c Codepoint) IsIdeographic() bool { return Default().IsIdeographic(c) }

// IsIdentifierIgnorable reports whether c may be ignored in identifiers.
func (c Codepoint) IsIdentifierIgnorable() bool { return Default().IsIdentifierIgnorable(c) }

// IsUnicodeIdentifierStart reports whether c may start a Unicode identifier.
func (c Codepoint) IsUnicodeIdentifierStart() bool { return Default().IsUnicodeIdentifierStart(c) }

// IsUnicodeIdentifierPart reports whether c may continue a Unicode identifier.
func (c Codepoint) IsUnicodeIdentifierPart() bool { return Default().IsUnicodeIdentifierPart(c) }

// IsJavaIdentifierStart reports whether c may start a Java identifier.
func (c Codepoint) IsJavaIdentifierStart() bool { return Default().IsJavaIdentifierStart(c) }

// IsJavaIdentifierPart reports whether c may continue a Java identifier.
func (c Codepoint) IsJavaIdentifierPart() bool { return Default().IsJavaIdentifierPart(c) }

// IsISOControl reports whether c is an ISO control character.
func (c Codepoint) IsISOControl() bool { return IsISOControl(c) }

// ToLowerCase returns the lowercase mapping of c.
func (c Codepoint) ToLowerCase() Codepoint { return Default().ToLowerCase(c) }

// ToUpperCase returns the uppercase mapping of c.
func (c Codepoint) ToUpperCase() Codepoint { return Default().ToUpperCase(c) }
