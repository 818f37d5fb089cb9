package codepoints

// Classifier answers property and case mapping queries for code points using
// the data of a [Database]. It holds no mutable state and may be shared
// between goroutines.
type Classifier struct {
	db Database
}

// NewClassifier returns a Classifier backed by db.
func NewClassifier(db Database) *Classifier {
	return &Classifier{db: db}
}

// Database returns the underlying database.
func (cl *Classifier) Database() Database {
	return cl.db
}

// Properties returns the packed property record of c.
func (cl *Classifier) Properties(c Codepoint) Properties {
	return cl.db.Properties(c)
}

// Category returns the General Category of c.
func (cl *Classifier) Category(c Codepoint) Category {
	return cl.db.Properties(c).Category()
}

// Script returns the script of c.
func (cl *Classifier) Script(c Codepoint) Script {
	return cl.db.Script(c)
}

// IsLetter reports whether c is a letter (Lu, Ll, Lt, Lm, Lo).
func (cl *Classifier) IsLetter(c Codepoint) bool {
	return cl.db.Properties(c).inCategories(letterMask)
}

// IsDigit reports whether c is a decimal digit (Nd).
func (cl *Classifier) IsDigit(c Codepoint) bool {
	return cl.db.Properties(c).inCategories(digitMask)
}

// IsLetterOrDigit reports whether c is a letter or a decimal digit.
func (cl *Classifier) IsLetterOrDigit(c Codepoint) bool {
	return cl.db.Properties(c).inCategories(letterOrDigitMask)
}

// IsUpperCase reports whether c is Lu or has the Other_Uppercase property.
func (cl *Classifier) IsUpperCase(c Codepoint) bool {
	p := cl.db.Properties(c)
	return p.Category() == Lu || p.Has(FlagOtherUppercase)
}

// IsLowerCase reports whether c is Ll or has the Other_Lowercase property.
func (cl *Classifier) IsLowerCase(c Codepoint) bool {
	p := cl.db.Properties(c)
	return p.Category() == Ll || p.Has(FlagOtherLowercase)
}

// IsSpaceChar reports whether c is a space, line or paragraph separator.
func (cl *Classifier) IsSpaceChar(c Codepoint) bool {
	return cl.db.Properties(c).inCategories(spaceMask)
}

// IsWhitespace reports whether c is whitespace in the Java sense: separators
// other than no-break spaces, plus the ASCII and information separator
// controls. This differs from [Classifier.IsSpaceChar].
func (cl *Classifier) IsWhitespace(c Codepoint) bool {
	return cl.db.Properties(c).Has(FlagWhitespace)
}

// IsIdeographic reports whether c is a CJKV ideograph.
func (cl *Classifier) IsIdeographic(c Codepoint) bool {
	return cl.db.Properties(c).Has(FlagIdeographic)
}

// IsIdentifierIgnorable reports whether c may be ignored inside an
// identifier: non-whitespace ISO controls and format characters.
func (cl *Classifier) IsIdentifierIgnorable(c Codepoint) bool {
	if IsCodepointInRanges(c, cl.db.IdentifierIgnorableRanges()) {
		return true
	}
	return cl.db.Properties(c).Category() == Cf
}

// IsUnicodeIdentifierStart reports whether c may start a Unicode identifier.
func (cl *Classifier) IsUnicodeIdentifierStart(c Codepoint) bool {
	return cl.db.Properties(c).Has(FlagUnicodeIDStart)
}

// IsUnicodeIdentifierPart reports whether c may continue a Unicode identifier.
func (cl *Classifier) IsUnicodeIdentifierPart(c Codepoint) bool {
	return cl.db.Properties(c).Has(FlagUnicodeIDPart)
}

// IsJavaIdentifierStart reports whether c may start a Java identifier.
func (cl *Classifier) IsJavaIdentifierStart(c Codepoint) bool {
	return cl.db.Properties(c).Has(FlagJavaIDStart)
}

// IsJavaIdentifierPart reports whether c may continue a Java identifier.
func (cl *Classifier) IsJavaIdentifierPart(c Codepoint) bool {
	return cl.db.Properties(c).Has(FlagJavaIDPart)
}

// IsISOControl reports whether c is in 0x00-0x1f or 0x7f-0x9f. No table is
// consulted.
func IsISOControl(c Codepoint) bool {
	return c >= 0 && c <= 0x1f || c >= 0x7f && c <= 0x9f
}

// ToLowerCase returns the lowercase mapping of c, or c itself if it has none.
func (cl *Classifier) ToLowerCase(c Codepoint) Codepoint {
	// Fast track ASCII.
	if c >= 0 && c < 0x80 {
		if uint32(c-'A') <= 'Z'-'A' {
			return c + 'a' - 'A'
		}
		return c
	}

	p := cl.db.Properties(c)
	if p.Has(FlagLargeLowerDelta) {
		return c + Codepoint(BinarySearchRange(int32(c), cl.db.LargeLowercaseRanges(), 0))
	}
	if delta := p.CaseDelta(); delta != 0 && p.Has(FlagDeltaToLower) {
		return c + Codepoint(delta)
	}
	return c
}

// ToUpperCase returns the uppercase mapping of c, or c itself if it has none.
func (cl *Classifier) ToUpperCase(c Codepoint) Codepoint {
	// Fast track ASCII.
	if c >= 0 && c < 0x80 {
		if uint32(c-'a') <= 'z'-'a' {
			return c - ('a' - 'A')
		}
		return c
	}

	// Titlecase digraphs (Dž, Lj, Nj, Dz) carry their lowercase delta in the
	// record; their uppercase form is the preceding code point.
	switch c {
	case 0x01c5, 0x01c8, 0x01cb, 0x01f2:
		return c - 1
	}

	p := cl.db.Properties(c)
	if p.Has(FlagLargeUpperDelta) {
		return c + Codepoint(BinarySearchRange(int32(c), cl.db.LargeUppercaseRanges(), 0))
	}
	if delta := p.CaseDelta(); delta != 0 && !p.Has(FlagDeltaToLower) {
		return c + Codepoint(delta)
	}
	return c
}
