package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeLabel_Alpha(t *testing.T) {
	assert.Equal(t, "A", encodeLabel(0, LabelAlpha))
	assert.Equal(t, "B", encodeLabel(1, LabelAlpha))
	assert.Equal(t, "Z", encodeLabel(25, LabelAlpha))
	assert.Equal(t, "AA", encodeLabel(26, LabelAlpha))
	assert.Equal(t, "AB", encodeLabel(27, LabelAlpha))
	assert.Equal(t, "AZ", encodeLabel(51, LabelAlpha))
	assert.Equal(t, "BA", encodeLabel(52, LabelAlpha))
	assert.Equal(t, "ZZ", encodeLabel(701, LabelAlpha))
	assert.Equal(t, "AAA", encodeLabel(702, LabelAlpha))
}

func TestEncodeLabel_Numeric(t *testing.T) {
	assert.Equal(t, "1", encodeLabel(0, LabelNumeric))
	assert.Equal(t, "10", encodeLabel(9, LabelNumeric))
	assert.Equal(t, "100", encodeLabel(99, LabelNumeric))
}

func TestDecodeLabel_RoundTrip(t *testing.T) {
	for _, style := range []LabelStyle{LabelAlpha, LabelNumeric} {
		for i := 0; i < 1000; i++ {
			got, ok := decodeLabel(encodeLabel(i, style), style)
			assert.True(t, ok)
			assert.Equal(t, i, got, "style %s index %d", style, i)
		}
	}
}

func TestDecodeLabel_CrossGrammarFallback(t *testing.T) {
	// A numeric-style field still accepts an alpha label, and vice versa.
	n, ok := decodeLabel("C", LabelNumeric)
	assert.True(t, ok)
	assert.Equal(t, 2, n)

	n, ok = decodeLabel("3", LabelAlpha)
	assert.True(t, ok)
	assert.Equal(t, 2, n)
}

func TestDecodeLabel_NormalizesInput(t *testing.T) {
	n, ok := decodeLabel("  aa ", LabelAlpha)
	assert.True(t, ok)
	assert.Equal(t, 26, n)
}

func TestDecodeLabel_RejectsGarbage(t *testing.T) {
	for _, text := range []string{"", "  ", "A1", "1.5", "!"} {
		_, ok := decodeLabel(text, LabelAlpha)
		assert.False(t, ok, "input %q", text)
	}
}

func TestDecodeLabel_ClampsBelowOne(t *testing.T) {
	n, ok := decodeLabel("0", LabelNumeric)
	assert.True(t, ok)
	assert.Equal(t, 0, n)
}
