/*
Package codepoints implements Unicode code point properties, case mapping, and
the walking of UTF-16 text for Go.

Text here is a []uint16 of UTF-16 code units, as used by editors, language
servers and other software that stores text the way Java or JavaScript do.
Positions are indexes into that slice.

# Overview

Using this package, you can:
  - Decode and encode surrogate pairs
  - Walk UTF-16 text code point by code point, forward or backward
  - Convert between UTF-8 byte offsets and UTF-16 offsets
  - Classify code points (letters, digits, whitespace, identifiers, ...)
  - Map code points to upper and lower case

# Code Points

A [Codepoint] is a plain int32. Its methods consult the default character
database, see [Default]:

	c := codepoints.Codepoint('ǅ')
	c.IsLetter()    // true
	c.ToUpperCase() // 'Ǆ'
	c.ToLowerCase() // 'ǆ'
	c.CharCount()   // 1

No method validates its input. Values outside 0..0x10FFFF have no
properties and map to themselves.

# Character Data

Properties are stored as a packed 32-bit [Properties] record per code point
holding the General Category, a small signed case delta, and flag bits. Case
deltas that do not fit into the record live in range tables searched with
[BinarySearchRange].

The data comes from a [Database]. The default one, [Tables], is built once
from the Unicode tables compiled into Go's unicode package. Use
[NewClassifier] to classify against another Database, e.g. a synthetic one in
tests.

# Walking Text

Use [CodepointAt] and [CodepointBefore] for single positions, and
[Codepoints] for a sequence:

	for c := range codepoints.Codepoints(text, 0, codepoints.Forward) {
		...
	}

Point lookups return lone surrogates as they are. The sequence silently
skips a lone high surrogate when walking forward and a lone low surrogate
when walking backward.

[Offset8To16] and [Offset16To8] translate offsets between UTF-8 and UTF-16,
which is what language servers need when clients count positions
differently from the server.
*/
package codepoints
