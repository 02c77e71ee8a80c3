package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeTLV_PadsShortLengths(t *testing.T) {
	got, err := EncodeTLV("00", "01")
	assert.NoError(t, err)
	assert.Equal(t, "000201", got)

	got, err = EncodeTLV("58", "VN")
	assert.NoError(t, err)
	assert.Equal(t, "5802VN", got)
}

func TestEncodeTLV_CountsGraphemesNotBytes(t *testing.T) {
	// 17 display characters but 20 UTF-8 bytes
	note := "Xin chào Việt Nam"
	require.Equal(t, 20, len(note))

	got, err := EncodeTLV("08", note)
	assert.NoError(t, err)
	assert.Equal(t, "0817"+note, got)
}

func TestEncodeTLV_CombiningSequenceIsOneCharacter(t *testing.T) {
	// "e" followed by a combining acute accent renders as a single glyph
	got, err := EncodeTLV("08", "é")
	assert.NoError(t, err)
	assert.Equal(t, "0801é", got)
}

func TestEncodeTLV_WidensLengthAtOneHundred(t *testing.T) {
	value := strings.Repeat("a", 100)
	got, err := EncodeTLV("54", value)
	assert.NoError(t, err)
	assert.Equal(t, "54100"+value, got)
}

func TestEncodeTLV_RejectsMalformedTags(t *testing.T) {
	for _, tag := range []string{"", "5", "123", "ab", "5a", "0 "} {
		_, err := EncodeTLV(tag, "value")
		assert.ErrorIs(t, err, ErrInvalidTag, "tag %q should be rejected", tag)
	}
}

func TestDecodeTLV_RoundTrip(t *testing.T) {
	first, err := EncodeTLV("08", "Xin chào Việt Nam")
	require.NoError(t, err)
	second, err := EncodeTLV("53", "704")
	require.NoError(t, err)

	nodes, err := DecodeTLV(first + second)
	require.NoError(t, err)
	require.Len(t, nodes, 2)

	assert.Equal(t, "08", nodes[0].Tag)
	assert.Equal(t, 17, nodes[0].Length)
	assert.Equal(t, "Xin chào Việt Nam", nodes[0].Value)

	assert.Equal(t, "53", nodes[1].Tag)
	assert.Equal(t, 3, nodes[1].Length)
	assert.Equal(t, "704", nodes[1].Value)
}

func TestDecodeTLV_EmptyPayloadAndEmptyValue(t *testing.T) {
	nodes, err := DecodeTLV("")
	assert.NoError(t, err)
	assert.Empty(t, nodes)

	nodes, err = DecodeTLV("0800")
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	assert.Equal(t, "08", nodes[0].Tag)
	assert.Equal(t, 0, nodes[0].Length)
	assert.Equal(t, "", nodes[0].Value)
}

func TestDecodeTLV_TruncatedValue(t *testing.T) {
	// Declares 17 characters but only 8 follow
	_, err := DecodeTLV("0817Xin chào")
	assert.ErrorIs(t, err, ErrTruncatedPayload)
}

func TestDecodeTLV_TruncatedHeader(t *testing.T) {
	_, err := DecodeTLV("6")
	assert.ErrorIs(t, err, ErrTruncatedPayload)

	_, err = DecodeTLV("63")
	assert.ErrorIs(t, err, ErrTruncatedPayload)

	_, err = DecodeTLV("630")
	assert.ErrorIs(t, err, ErrTruncatedPayload)
}

func TestDecodeTLV_MalformedTagOrLength(t *testing.T) {
	_, err := DecodeTLV("6a04abcd")
	assert.ErrorIs(t, err, ErrInvalidTag)

	_, err = DecodeTLV("63x4abcd")
	assert.ErrorIs(t, err, ErrInvalidTag)
}
