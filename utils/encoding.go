package utils

import (
	"bytes"
	"encoding/base64"
	"io"

	"github.com/klauspost/compress/flate"
)

// Deflate compresses data as a raw DEFLATE stream (no zlib or gzip
// wrapper) at the highest compression level. Tokens ride in URLs, so
// every byte saved matters more than encode speed.
func Deflate(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w, err := flate.NewWriter(&buf, flate.BestCompression)
	if err != nil {
		return nil, err
	}
	if _, err := w.Write(data); err != nil {
		w.Close()
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Inflate decompresses a raw DEFLATE stream produced by Deflate.
func Inflate(data []byte) ([]byte, error) {
	r := flate.NewReader(bytes.NewReader(data))
	defer r.Close()
	return io.ReadAll(r)
}

// base64URL is the unpadded URL-safe alphabet in strict mode: the unused
// trailing bits of a final character must be zero, so two distinct tokens
// never decode to the same bytes.
var base64URL = base64.RawURLEncoding.Strict()

// EncodeBase64URL encodes data with the URL-safe alphabet and no padding,
// so tokens can sit in query strings without percent-escaping.
func EncodeBase64URL(data []byte) string {
	return base64URL.EncodeToString(data)
}

// DecodeBase64URL reverses EncodeBase64URL. Non-canonical trailing bits
// are an error, not discarded.
func DecodeBase64URL(s string) ([]byte, error) {
	return base64URL.DecodeString(s)
}
