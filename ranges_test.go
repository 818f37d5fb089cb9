package codepoints

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBinarySearchRange(t *testing.T) {
	ranges := []int32{10, 20, 100, 30, 40, 200}

	tests := []struct {
		name string
		key  int32
		want int32
	}{
		{"inside first", 15, 100},
		{"first start", 10, 100},
		{"first end", 20, 100},
		{"gap", 25, -1},
		{"second start", 30, 200},
		{"second end", 40, 200},
		{"before first", 5, -1},
		{"after last", 45, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BinarySearchRange(tt.key, ranges, -1))
		})
	}
}

func TestBinarySearchRangeEmpty(t *testing.T) {
	assert.Equal(t, int32(7), BinarySearchRange(0, nil, 7))
	assert.Equal(t, int32(7), BinarySearchRange(15, []int32{}, 7))
}

func TestBinarySearchRangeMany(t *testing.T) {
	// Ranges [10i, 10i+4] with value i.
	var ranges []int32
	for i := int32(0); i < 100; i++ {
		ranges = append(ranges, 10*i, 10*i+4, i)
	}
	for key := int32(0); key < 1000; key++ {
		want := int32(-1)
		if key%10 <= 4 {
			want = key / 10
		}
		if got := BinarySearchRange(key, ranges, -1); got != want {
			t.Fatalf("key %d: got %d, want %d", key, got, want)
		}
	}
}

func TestIsCodepointInRanges(t *testing.T) {
	ranges := []int32{10, 20, 30, 40}

	tests := []struct {
		c    Codepoint
		want bool
	}{
		{15, true},
		{25, false},
		{10, true},
		{20, true},
		{30, true},
		{40, true},
		{5, false},
		{50, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsCodepointInRanges(tt.c, ranges), "code point %d", tt.c)
	}

	assert.False(t, IsCodepointInRanges(0, nil))
}
