package codepoints

import (
	"slices"
	"unicode"
)

// Database provides the Unicode character data that classification and case
// mapping are computed from. Implementations must be safe for concurrent
// reads; the returned range tables must not be modified.
type Database interface {
	// Properties returns the packed property record of c. Unknown or invalid
	// code points should yield the zero record.
	Properties(c Codepoint) Properties

	// Script returns the script c belongs to.
	Script(c Codepoint) Script

	// LargeLowercaseRanges returns a triplet table (see [BinarySearchRange])
	// of lowercase deltas that do not fit into a record.
	LargeLowercaseRanges() []int32

	// LargeUppercaseRanges is the uppercase counterpart of
	// LargeLowercaseRanges.
	LargeUppercaseRanges() []int32

	// IdentifierIgnorableRanges returns a flat boundary table (see
	// [IsCodepointInRanges]) of the controls that identifiers may ignore.
	IdentifierIgnorableRanges() []int32
}

// Script identifies a Unicode script. The set of values is closed: it holds
// ScriptUnknown plus every script of the Unicode version Go was built with,
// in alphabetical order.
type Script uint8

// ScriptUnknown is the script of unassigned code points.
const ScriptUnknown Script = 0

// scriptNames lists all scripts, indexed by Script.
var scriptNames = func() []string {
	names := make([]string, 0, len(unicode.Scripts)+1)
	for name := range unicode.Scripts {
		names = append(names, name)
	}
	slices.Sort(names)
	return append([]string{"Unknown"}, names...)
}()

// String returns the Unicode script name, e.g. "Latin".
func (s Script) String() string {
	if int(s) < len(scriptNames) {
		return scriptNames[s]
	}
	return scriptNames[ScriptUnknown]
}

// LookupScript returns the Script with the given Unicode name.
func LookupScript(name string) (Script, bool) {
	i, found := slices.BinarySearch(scriptNames[1:], name)
	if !found {
		if name == scriptNames[ScriptUnknown] {
			return ScriptUnknown, true
		}
		return ScriptUnknown, false
	}
	return Script(i + 1), true
}
