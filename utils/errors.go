package utils

import (
	"errors"
	"fmt"
)

// Sentinel errors for the encoder core. Callers branch with errors.Is; the
// constructors below attach the offending input to the message.
var (
	ErrUnknownBank        = errors.New("unknown bank")
	ErrInvalidTag         = errors.New("invalid TLV tag")
	ErrInvalidAccount     = errors.New("invalid account")
	ErrTruncatedPayload   = errors.New("truncated TLV payload")
	ErrUnsupportedVersion = errors.New("unsupported bill version")
	ErrCorruptToken       = errors.New("corrupt token")
)

// NewUnknownBankError reports that no directory entry matched the query.
func NewUnknownBankError(query string) error {
	return fmt.Errorf("%w: %q", ErrUnknownBank, query)
}

// NewInvalidTagError reports a TLV tag that is not exactly two decimal digits.
func NewInvalidTagError(tag string) error {
	return fmt.Errorf("%w: %q", ErrInvalidTag, tag)
}

// NewInvalidAccountError reports a malformed bank BIN or account number.
func NewInvalidAccountError(reason string) error {
	return fmt.Errorf("%w: %s", ErrInvalidAccount, reason)
}

// NewTruncatedPayloadError reports a TLV stream that ended before the
// declared value length was consumed.
func NewTruncatedPayloadError(tag string, want, have int) error {
	return fmt.Errorf("%w: tag %s declares %d characters, %d remain", ErrTruncatedPayload, tag, want, have)
}

// NewUnsupportedVersionError reports a bill token with a schema version this
// build does not understand.
func NewUnsupportedVersionError(version int) error {
	return fmt.Errorf("%w: got %d, supported %d", ErrUnsupportedVersion, version, BillSchemaVersion)
}

// NewCorruptTokenError reports a failure in the decode/decompress/deserialize
// chain of a URL token.
func NewCorruptTokenError(stage string, err error) error {
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrCorruptToken, stage, err)
	}
	return fmt.Errorf("%w: %s", ErrCorruptToken, stage)
}
