package codepoints

import (
	"slices"
	"sync"
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// Two-stage property table geometry. Code points are split into blocks of
// 256; identical blocks are stored once.
const (
	blockShift = 8
	blockSize  = 1 << blockShift
	blockMask  = blockSize - 1
	numBlocks  = (MaxCodePoint + 1) >> blockShift
)

// Tables is the default [Database]. Its data is derived from the Unicode
// tables of Go's unicode package, so it follows the Unicode version reported
// by [unicode.Version]. A Tables value is immutable once built.
type Tables struct {
	index      []uint16     // Block number per 256 code points.
	blocks     []Properties // Deduplicated blocks, concatenated.
	scripts    []int32      // Triplets [start, end, Script].
	largeLower []int32      // Triplets [start, end, delta].
	largeUpper []int32      // Triplets [start, end, delta].
}

var (
	defaultOnce       sync.Once
	defaultTables     *Tables
	defaultClassifier *Classifier
)

// Default returns the Classifier over the shared default [Tables], building
// them on first use.
func Default() *Classifier {
	defaultOnce.Do(func() {
		defaultTables = NewTables()
		defaultClassifier = NewClassifier(defaultTables)
	})
	return defaultClassifier
}

// DefaultTables returns the shared default [Tables].
func DefaultTables() *Tables {
	Default()
	return defaultTables
}

// Properties implements [Database]. Code points outside 0..MaxCodePoint
// return the zero record.
func (t *Tables) Properties(c Codepoint) Properties {
	if c < 0 || c > MaxCodePoint {
		return 0
	}
	return t.blocks[int(t.index[c>>blockShift])<<blockShift|int(c&blockMask)]
}

// Script implements [Database].
func (t *Tables) Script(c Codepoint) Script {
	return Script(BinarySearchRange(int32(c), t.scripts, int32(ScriptUnknown)))
}

// LargeLowercaseRanges implements [Database].
func (t *Tables) LargeLowercaseRanges() []int32 {
	return t.largeLower
}

// LargeUppercaseRanges implements [Database].
func (t *Tables) LargeUppercaseRanges() []int32 {
	return t.largeUpper
}

// IdentifierIgnorableRanges implements [Database].
func (t *Tables) IdentifierIgnorableRanges() []int32 {
	return identifierIgnorableRanges
}

// boundaryTable converts a flat boundary table into a RangeTable.
func boundaryTable(ranges []int32) *unicode.RangeTable {
	rt := &unicode.RangeTable{}
	for i := 0; i+1 < len(ranges); i += 2 {
		lo, hi := ranges[i], ranges[i+1]
		if hi <= 0xffff {
			rt.R16 = append(rt.R16, unicode.Range16{Lo: uint16(lo), Hi: uint16(hi), Stride: 1})
		} else {
			rt.R32 = append(rt.R32, unicode.Range32{Lo: uint32(lo), Hi: uint32(hi), Stride: 1})
		}
	}
	return rt
}

// Code point sets for the flags that are not plain Unicode properties.
var (
	// Separators and the controls Java treats as whitespace. The no-break
	// spaces are removed after visiting.
	javaWhitespace = rangetable.Merge(
		unicode.Zs, unicode.Zl, unicode.Zp,
		rangetable.New('\t', '\n', '\v', '\f', '\r', 0x1c, 0x1d, 0x1e, 0x1f),
	)
	noBreakSpaces = []rune{0x00a0, 0x2007, 0x202f}

	// Ignorable controls as [start, end] boundary pairs.
	identifierIgnorableRanges = []int32{0x00, 0x08, 0x0e, 0x1b, 0x7f, 0x9f}
	identifierIgnorable       = rangetable.Merge(boundaryTable(identifierIgnorableRanges), unicode.Cf)

	javaIDStart = rangetable.Merge(unicode.L, unicode.Nl, unicode.Sc, unicode.Pc)
	javaIDPart  = rangetable.Merge(unicode.L, unicode.Nl, unicode.Sc, unicode.Pc,
		unicode.Nd, unicode.Mn, unicode.Mc)

	unicodeIDStart = rangetable.Merge(unicode.L, unicode.Nl, unicode.Other_ID_Start)
	unicodeIDPart  = rangetable.Merge(unicode.L, unicode.Nl, unicode.Other_ID_Start,
		unicode.Mn, unicode.Mc, unicode.Nd, unicode.Pc, unicode.Other_ID_Continue)
	patternChars = rangetable.Merge(unicode.Pattern_Syntax, unicode.Pattern_White_Space)
)

// NewTables builds a fresh set of tables. This takes some milliseconds and
// allocates a few megabytes temporarily; most callers want [Default].
func NewTables() *Tables {
	flat := make([]Properties, MaxCodePoint+1)
	setFlag := func(rt *unicode.RangeTable, f Flag) {
		rangetable.Visit(rt, func(r rune) {
			flat[r] |= Properties(f)
		})
	}
	clearFlag := func(rt *unicode.RangeTable, f Flag) {
		rangetable.Visit(rt, func(r rune) {
			flat[r] &^= Properties(f)
		})
	}

	// General categories. Only two-letter names are actual categories, the
	// others are unions of them.
	for name, rt := range unicode.Categories {
		cat, ok := categoryByName(name)
		if !ok || cat == Cn {
			continue
		}
		rangetable.Visit(rt, func(r rune) {
			flat[r] = flat[r]&^maskCategory | Properties(cat)
		})
	}

	setFlag(unicode.Other_Uppercase, FlagOtherUppercase)
	setFlag(unicode.Other_Lowercase, FlagOtherLowercase)
	setFlag(unicode.Ideographic, FlagIdeographic)
	setFlag(javaWhitespace, FlagWhitespace)
	for _, r := range noBreakSpaces {
		flat[r] &^= Properties(FlagWhitespace)
	}
	setFlag(javaIDStart, FlagJavaIDStart)
	setFlag(javaIDPart, FlagJavaIDPart)
	setFlag(unicodeIDStart, FlagUnicodeIDStart)
	setFlag(unicodeIDPart, FlagUnicodeIDPart)
	clearFlag(patternChars, FlagUnicodeIDStart|FlagUnicodeIDPart)
	setFlag(identifierIgnorable, FlagJavaIDPart|FlagUnicodeIDPart)

	t := &Tables{}
	t.buildCaseDeltas(flat)
	t.buildScripts()
	t.compress(flat)
	return t
}

// buildCaseDeltas stores case deltas in the records, moving deltas that do
// not fit into the large delta range tables.
func (t *Tables) buildCaseDeltas(flat []Properties) {
	var lower, upper runBuilder
	for _, cr := range unicode.CaseRanges {
		for r := rune(cr.Lo); r <= rune(cr.Hi); r++ {
			if lo := unicode.ToLower(r); lo != r {
				delta := lo - r
				if delta >= minSmallDelta && delta <= maxSmallDelta {
					flat[r] |= PackProperties(Cn, int(delta), FlagDeltaToLower)
				} else {
					flat[r] |= Properties(FlagLargeLowerDelta)
					lower.add(r, delta)
				}
				continue
			}
			if up := unicode.ToUpper(r); up != r {
				delta := up - r
				if delta >= minSmallDelta && delta <= maxSmallDelta {
					flat[r] |= PackProperties(Cn, int(delta), 0)
				} else {
					flat[r] |= Properties(FlagLargeUpperDelta)
					upper.add(r, delta)
				}
			}
		}
	}
	t.largeLower = lower.triplets()
	t.largeUpper = upper.triplets()
}

// buildScripts collects the script of every assigned code point into a
// triplet table.
func (t *Tables) buildScripts() {
	var runs []run
	for name, rt := range unicode.Scripts {
		script, _ := LookupScript(name)
		var b runBuilder
		rangetable.Visit(rt, func(r rune) {
			b.add(r, int32(script))
		})
		runs = append(runs, b.runs...)
	}
	slices.SortFunc(runs, func(a, b run) int {
		return int(a.start - b.start)
	})

	// Scripts are split across several range tables; merge neighbors.
	var merged runBuilder
	for _, r := range runs {
		merged.addRun(r)
	}
	t.scripts = merged.triplets()
}

// compress turns the flat record array into the two-stage table.
func (t *Tables) compress(flat []Properties) {
	t.index = make([]uint16, numBlocks)
	seen := make(map[[blockSize]Properties]uint16)
	for i := range numBlocks {
		var block [blockSize]Properties
		copy(block[:], flat[i<<blockShift:])
		n, ok := seen[block]
		if !ok {
			n = uint16(len(seen))
			seen[block] = n
			t.blocks = append(t.blocks, block[:]...)
		}
		t.index[i] = n
	}
}

// run is a range of consecutive code points sharing one value.
type run struct {
	start, end rune
	value      int32
}

// runBuilder collects values in ascending code point order, extending the last
// run where possible.
type runBuilder struct {
	runs []run
}

func (b *runBuilder) add(r rune, value int32) {
	b.addRun(run{start: r, end: r, value: value})
}

func (b *runBuilder) addRun(next run) {
	if n := len(b.runs); n > 0 {
		last := &b.runs[n-1]
		if last.end+1 == next.start && last.value == next.value {
			last.end = next.end
			return
		}
	}
	b.runs = append(b.runs, next)
}

// triplets flattens the runs for BinarySearchRange.
func (b *runBuilder) triplets() []int32 {
	table := make([]int32, 0, 3*len(b.runs))
	for _, r := range b.runs {
		table = append(table, r.start, r.end, r.value)
	}
	return table
}
