package utils

import (
	"fmt"

	"github.com/sigurn/crc16"
)

// CRC-16/CCITT-FALSE: polynomial 0x1021, initial value 0xFFFF, no
// reflection, no final XOR. The variant NAPAS payloads are checked with.
var crcTable = crc16.MakeTable(crc16.CRC16_CCITT_FALSE)

// ChecksumHex computes the payload checksum over the UTF-8 bytes of s and
// formats it as four lowercase hex digits, zero-padded.
func ChecksumHex(s string) string {
	return fmt.Sprintf("%04x", crc16.Checksum([]byte(s), crcTable))
}
