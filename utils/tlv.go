package utils

import (
	"fmt"

	"github.com/rivo/uniseg"
)

// TLV is one tag-length-value record from an EMV-style payload. Length is
// the declared count in display characters (grapheme clusters), which for
// Vietnamese text is smaller than the UTF-8 byte count.
type TLV struct {
	Tag    string
	Length int
	Value  string
}

// EncodeTLV renders a single TLV record: tag + zero-padded length + value.
// The length counts grapheme clusters, not bytes or code points, because
// the banking-app parsers this payload targets count one visual character
// per accented glyph. Counts under 10 pad to two digits; counts of 100 or
// more widen naturally.
func EncodeTLV(tag, value string) (string, error) {
	if !IsValidTag(tag) {
		return "", NewInvalidTagError(tag)
	}
	count := uniseg.GraphemeClusterCount(value)
	return fmt.Sprintf("%s%02d%s", tag, count, value), nil
}

// DecodeTLV parses a payload into its sequence of sibling TLV records.
// Constructed values (tags 38 and 62) come back as raw strings; re-parse
// them with another DecodeTLV call. Length fields are read as two digits,
// matching how the payloads this package emits are consumed in practice.
func DecodeTLV(payload string) ([]TLV, error) {
	var nodes []TLV
	rest := payload
	for rest != "" {
		if len(rest) < 2 {
			return nil, fmt.Errorf("%w: incomplete tag %q", ErrTruncatedPayload, rest)
		}
		tag := rest[:2]
		if !IsValidTag(tag) {
			return nil, NewInvalidTagError(tag)
		}
		if len(rest) < 4 {
			return nil, fmt.Errorf("%w: tag %s has no length field", ErrTruncatedPayload, tag)
		}
		lengthDigits := rest[2:4]
		if !IsDigits(lengthDigits) {
			return nil, NewInvalidTagError(tag + lengthDigits)
		}
		declared := int(lengthDigits[0]-'0')*10 + int(lengthDigits[1]-'0')

		// Consume exactly `declared` grapheme clusters as the value.
		value, remaining, consumed := takeClusters(rest[4:], declared)
		if consumed < declared {
			return nil, NewTruncatedPayloadError(tag, declared, consumed)
		}
		nodes = append(nodes, TLV{Tag: tag, Length: declared, Value: value})
		rest = remaining
	}
	return nodes, nil
}

// takeClusters splits s after n grapheme clusters, returning the consumed
// prefix, the remainder, and how many clusters were actually available.
func takeClusters(s string, n int) (prefix, rest string, consumed int) {
	rest = s
	state := -1
	for consumed < n && rest != "" {
		_, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		consumed++
	}
	return s[:len(s)-len(rest)], rest, consumed
}
