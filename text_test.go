package codepoints

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodepointAt(t *testing.T) {
	text := EncodeString("a😀b")
	require.Len(t, text, 4)

	tests := []struct {
		index int
		want  Codepoint
	}{
		{0, 'a'},
		{1, 0x1f600},
		{2, 0xde00}, // The low half on its own.
		{3, 'b'},
	}
	for _, tt := range tests {
		c, err := CodepointAt(text, tt.index)
		require.NoError(t, err)
		assert.Equal(t, tt.want, c, "index %d", tt.index)
	}
}

func TestCodepointBefore(t *testing.T) {
	text := EncodeString("a😀b")

	tests := []struct {
		index int
		want  Codepoint
	}{
		{1, 'a'},
		{2, 0xd83d}, // The high half on its own.
		{3, 0x1f600},
		{4, 'b'},
	}
	for _, tt := range tests {
		c, err := CodepointBefore(text, tt.index)
		require.NoError(t, err)
		assert.Equal(t, tt.want, c, "index %d", tt.index)
	}
}

func TestCodepointAtBounds(t *testing.T) {
	text := EncodeString("abc")

	for _, index := range []int{-1, 3, 10} {
		_, err := CodepointAt(text, index)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrIndexOutOfBounds))

		var indexErr *IndexError
		require.ErrorAs(t, err, &indexErr)
		assert.Equal(t, index, indexErr.Index)
		assert.Equal(t, 3, indexErr.Length)
	}

	for _, index := range []int{0, -1, 4} {
		_, err := CodepointBefore(text, index)
		assert.ErrorIs(t, err, ErrIndexOutOfBounds, "index %d", index)
	}

	_, err := CodepointAt(nil, 0)
	assert.EqualError(t, err, "codepoints: index 0 out of bounds for length 0")
}

func TestLoneSurrogates(t *testing.T) {
	high := []uint16{0xd800}
	c, err := CodepointAt(high, 0)
	require.NoError(t, err)
	assert.Equal(t, Codepoint(0xd800), c, "point lookup keeps the lone surrogate")
	assert.Empty(t, slices.Collect(Codepoints(high, 0, Forward)), "forward walk drops it")
	assert.Equal(t, []Codepoint{0xd800}, slices.Collect(Codepoints(high, 1, Backward)))

	low := []uint16{0xdc00}
	c, err = CodepointBefore(low, 1)
	require.NoError(t, err)
	assert.Equal(t, Codepoint(0xdc00), c)
	assert.Empty(t, slices.Collect(Codepoints(low, 1, Backward)), "backward walk drops it")
	assert.Equal(t, []Codepoint{0xdc00}, slices.Collect(Codepoints(low, 0, Forward)))

	// Unpaired halves inside text.
	text := []uint16{'a', 0xd800, 'b', 0xdc00, 'c'}
	assert.Equal(t, []Codepoint{'a', 'b', 0xdc00, 'c'}, slices.Collect(Codepoints(text, 0, Forward)))
	assert.Equal(t, []Codepoint{'c', 'b', 0xd800, 'a'}, slices.Collect(Codepoints(text, len(text), Backward)))
}

func TestCodepointsSymmetry(t *testing.T) {
	for _, s := range []string{
		"",
		"hello",
		"a😀b",
		"😀😁😂",
		"aé€𝄞z",
		"日本語テキスト",
	} {
		text := EncodeString(s)
		forward := slices.Collect(Codepoints(text, 0, Forward))
		backward := slices.Collect(Codepoints(text, len(text), Backward))
		slices.Reverse(backward)
		assert.Equal(t, forward, backward, "%q", s)

		var want []Codepoint
		for _, r := range s {
			want = append(want, Codepoint(r))
		}
		assert.Equal(t, want, forward, "%q", s)
	}
}

func TestCodepointsOffset(t *testing.T) {
	text := EncodeString("ab😀c")

	assert.Equal(t, []Codepoint{0x1f600, 'c'}, slices.Collect(Codepoints(text, 2, Forward)))
	assert.Equal(t, []Codepoint{0x1f600, 'b', 'a'}, slices.Collect(Codepoints(text, 4, Backward)))
	assert.Empty(t, slices.Collect(Codepoints(text, len(text), Forward)))
	assert.Empty(t, slices.Collect(Codepoints(text, 0, Backward)))
	assert.Empty(t, slices.Collect(Codepoints(text, -1, Forward)))
	assert.Empty(t, slices.Collect(Codepoints(text, 6, Backward)))
}

func TestCodepointsRestartAndBreak(t *testing.T) {
	seq := Codepoints(EncodeString("xyz"), 0, Forward)
	assert.Equal(t, slices.Collect(seq), slices.Collect(seq))

	var first []Codepoint
	for c := range seq {
		first = append(first, c)
		if len(first) == 2 {
			break
		}
	}
	assert.Equal(t, []Codepoint{'x', 'y'}, first)

	back := Codepoints(EncodeString("x😀z"), 4, Backward)
	for c := range back {
		assert.Equal(t, Codepoint('z'), c)
		break
	}
}

func TestOffset8To16(t *testing.T) {
	text := EncodeString("aé€")
	assert.Equal(t, 0, Offset8To16(text, 0))
	assert.Equal(t, 1, Offset8To16(text, 1))
	assert.Equal(t, 2, Offset8To16(text, 2), "inside é")
	assert.Equal(t, 2, Offset8To16(text, 3))
	assert.Equal(t, 3, Offset8To16(text, 6))
	assert.Equal(t, 3, Offset8To16(text, 100))

	emoji := EncodeString("a😀b")
	assert.Equal(t, 1, Offset8To16(emoji, 1))
	assert.Equal(t, 3, Offset8To16(emoji, 3), "inside 😀")
	assert.Equal(t, 3, Offset8To16(emoji, 5))
	assert.Equal(t, 4, Offset8To16(emoji, 6))

	// A lone surrogate counts as three bytes.
	lone := []uint16{0xd800, 'x'}
	assert.Equal(t, 1, Offset8To16(lone, 3))
	assert.Equal(t, 2, Offset8To16(lone, 4))
}

func TestOffset16To8(t *testing.T) {
	text := EncodeString("aé€")
	assert.Equal(t, 0, Offset16To8(text, 0))
	assert.Equal(t, 1, Offset16To8(text, 1))
	assert.Equal(t, 3, Offset16To8(text, 2))
	assert.Equal(t, 6, Offset16To8(text, 3))
	assert.Equal(t, 6, Offset16To8(text, 10))

	emoji := EncodeString("a😀b")
	assert.Equal(t, 5, Offset16To8(emoji, 2), "inside 😀")
	assert.Equal(t, 5, Offset16To8(emoji, 3))
	assert.Equal(t, 6, Offset16To8(emoji, 4))

	for _, s := range []string{"aé€", "a😀b", "日本"} {
		u := EncodeString(s)
		assert.Equal(t, len(s), Offset16To8(u, len(u)))
		assert.Equal(t, len(u), Offset8To16(u, len(s)))
	}
}

func TestDirectionString(t *testing.T) {
	assert.Equal(t, "forward", Forward.String())
	assert.Equal(t, "backward", Backward.String())
}
