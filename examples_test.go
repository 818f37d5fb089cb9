package codepoints_test

import (
	"fmt"

	"github.com/scalecode-solutions/codepoints"
)

func ExampleCodepoint() {
	c := codepoints.Codepoint('ǅ')
	fmt.Println(c, c.Category(), c.IsLetter())
	fmt.Println(c.ToUpperCase(), c.ToLowerCase())
	// Output: U+01C5 Lt true
	// U+01C4 U+01C6
}

func ExampleCodepoint_Script() {
	for _, r := range "Aα漢" {
		fmt.Println(codepoints.Codepoint(r).Script())
	}
	// Output: Latin
	// Greek
	// Han
}

func ExampleCodepoints() {
	text := codepoints.EncodeString("a😀b")
	for c := range codepoints.Codepoints(text, 0, codepoints.Forward) {
		fmt.Println(c, c.CharCount())
	}
	// Output: U+0061 1
	// U+1F600 2
	// U+0062 1
}

func ExampleCodepoints_backward() {
	text := codepoints.EncodeString("a😀b")
	for c := range codepoints.Codepoints(text, len(text), codepoints.Backward) {
		fmt.Printf("%c", rune(c))
	}
	fmt.Println()
	// Output: b😀a
}

func ExampleCodepointAt() {
	text := []uint16{'x', 0xd800}
	c, err := codepoints.CodepointAt(text, 1)
	fmt.Println(c, err)
	_, err = codepoints.CodepointAt(text, 2)
	fmt.Println(err)
	// Output: U+D800 <nil>
	// codepoints: index 2 out of bounds for length 2
}

func ExampleOffset8To16() {
	text := codepoints.EncodeString("aé€")
	for _, offset := range []int{0, 1, 3, 6} {
		fmt.Println(offset, codepoints.Offset8To16(text, offset))
	}
	// Output: 0 0
	// 1 1
	// 3 2
	// 6 3
}

func ExampleAppendCodepoint() {
	buf := codepoints.AppendCodepoint(nil, 0x1f600)
	fmt.Printf("%#x\n", buf)
	// Output: [0xd83d 0xde00]
}

func ExampleBinarySearchRange() {
	ranges := []int32{10, 20, 100, 30, 40, 200}
	fmt.Println(codepoints.BinarySearchRange(15, ranges, -1))
	fmt.Println(codepoints.BinarySearchRange(25, ranges, -1))
	// Output: 100
	// -1
}

func ExampleNewClassifier() {
	cl := codepoints.NewClassifier(codepoints.DefaultTables())
	fmt.Println(cl.IsJavaIdentifierStart('_'), cl.IsUnicodeIdentifierStart('_'))
	fmt.Println(cl.IsWhitespace(0xa0), cl.IsSpaceChar(0xa0))
	// Output: true false
	// false true
}
