package vectors

import (
	"encoding/hex"
	"strings"
)

// EncodeHex renders a raw vector as uppercase hex, the textual form the
// reference vectors are published and exchanged in.
func EncodeHex(b []byte) string {
	return strings.ToUpper(hex.EncodeToString(b))
}

// DecodeHex is the inverse of EncodeHex. It accepts either case.
func DecodeHex(s string) ([]byte, error) {
	return hex.DecodeString(s)
}
