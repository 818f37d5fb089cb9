package codepoints

// Category is a Unicode General Category, stored in the low five bits of a
// packed [Properties] record.
type Category uint8

// Unicode General Categories. Unassigned must be 0 so that a zero record
// describes a code point the database knows nothing about.
const (
	Cn Category = iota // Unassigned (must be 0)
	Lu                 // Uppercase Letter
	Ll                 // Lowercase Letter
	Lt                 // Titlecase Letter
	Lm                 // Modifier Letter
	Lo                 // Other Letter
	Mn                 // Nonspacing Mark
	Me                 // Enclosing Mark
	Mc                 // Spacing Mark
	Nd                 // Decimal Number
	Nl                 // Letter Number
	No                 // Other Number
	Zs                 // Space Separator
	Zl                 // Line Separator
	Zp                 // Paragraph Separator
	Cc                 // Control
	Cf                 // Format
	Co                 // Private Use
	Cs                 // Surrogate
	Pd                 // Dash Punctuation
	Ps                 // Open Punctuation
	Pe                 // Close Punctuation
	Pc                 // Connector Punctuation
	Po                 // Other Punctuation
	Sm                 // Math Symbol
	Sc                 // Currency Symbol
	Sk                 // Modifier Symbol
	So                 // Other Symbol
	Pi                 // Initial Punctuation
	Pf                 // Final Punctuation

	numCategories
)

var categoryNames = [numCategories]string{
	"Cn", "Lu", "Ll", "Lt", "Lm", "Lo", "Mn", "Me", "Mc", "Nd", "Nl", "No",
	"Zs", "Zl", "Zp", "Cc", "Cf", "Co", "Cs", "Pd", "Ps", "Pe", "Pc", "Po",
	"Sm", "Sc", "Sk", "So", "Pi", "Pf",
}

// String returns the two-letter category abbreviation, e.g. "Lu".
func (c Category) String() string {
	if c < numCategories {
		return categoryNames[c]
	}
	return "Cn"
}

// categoryByName maps an abbreviation back to its Category. Used when
// building tables from the Unicode category range tables.
func categoryByName(name string) (Category, bool) {
	for c, n := range categoryNames {
		if n == name {
			return Category(c), true
		}
	}
	return Cn, false
}

// Category bitmasks for set membership tests.
const (
	letterMask        = 1<<Lu | 1<<Ll | 1<<Lt | 1<<Lm | 1<<Lo
	digitMask         = 1 << Nd
	letterOrDigitMask = letterMask | digitMask
	spaceMask         = 1<<Zs | 1<<Zl | 1<<Zp
)

// Properties is a packed property record for one code point.
//
// The layout (32 bits):
//   - Bits 0-4:   General Category
//   - Bits 5-14:  Signed case delta (10 bits, raw values >= 0x200 are negative)
//   - Bits 15-25: Flags (see the Flag constants)
type Properties uint32

// Flag is a single boolean bit of a [Properties] record.
type Flag uint32

// Property flags. FlagDeltaToLower tells which direction the small case delta
// applies in; when it is clear, the delta maps to uppercase.
const (
	FlagDeltaToLower    Flag = 1 << (15 + iota) // Case delta maps to lowercase
	FlagLargeLowerDelta                         // Lowercase delta is in the large lowercase ranges
	FlagLargeUpperDelta                         // Uppercase delta is in the large uppercase ranges
	FlagOtherUppercase                          // Other_Uppercase
	FlagOtherLowercase                          // Other_Lowercase
	FlagWhitespace                              // Whitespace in the Java sense
	FlagIdeographic                             // Ideographic
	FlagUnicodeIDStart                          // Unicode identifier start
	FlagUnicodeIDPart                           // Unicode identifier part
	FlagJavaIDStart                             // Java identifier start
	FlagJavaIDPart                              // Java identifier part
)

// Internal bit positions and masks of the packed record.
const (
	maskCategory = 0x1f
	shiftDelta   = 5
	maskDelta    = 0x3ff
	deltaSign    = 0x200

	// Deltas representable in the record; anything else goes to the large
	// delta range tables.
	minSmallDelta = -deltaSign
	maxSmallDelta = deltaSign - 1
)

// PackProperties builds a record from its parts. The delta is truncated to
// 10 bits and must lie within -512..511 to survive a round trip.
func PackProperties(cat Category, delta int, flags Flag) Properties {
	return Properties(uint32(cat)&maskCategory |
		(uint32(delta)&maskDelta)<<shiftDelta |
		uint32(flags))
}

// Category returns the General Category field.
func (p Properties) Category() Category {
	return Category(p & maskCategory)
}

// CaseDelta returns the decoded signed case delta.
func (p Properties) CaseDelta() int32 {
	delta := int32(p>>shiftDelta) & maskDelta
	if delta >= deltaSign {
		delta -= 2 * deltaSign
	}
	return delta
}

// Has reports whether all bits of f are set.
func (p Properties) Has(f Flag) bool {
	return Flag(p)&f == f
}

// inCategories tests the category against a bitmask of categories.
func (p Properties) inCategories(mask uint32) bool {
	return 1<<p.Category()&mask != 0
}
