// Package hexutil provides small hex helpers shared by the CLI and the
// examples: decoding that tolerates an 0x prefix and odd-length input, and
// big integer parsing for scalars given in hex or decimal form.
package hexutil

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"
)

// Decode decodes a hex string, handling an optional 0x prefix and padding
// odd-length input with a leading zero nibble.
func Decode(s string) ([]byte, error) {
	s = strings.TrimPrefix(s, "0x")
	s = strings.TrimPrefix(s, "0X")
	if len(s)%2 != 0 {
		s = "0" + s
	}
	return hex.DecodeString(s)
}

// Encode returns the 0x-prefixed hex form of b.
func Encode(b []byte) string {
	return "0x" + hex.EncodeToString(b)
}

// ParseBig parses a big integer given either as hex (with or without an 0x
// prefix) or as a decimal string.
func ParseBig(s string) (*big.Int, error) {
	if trimmed := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X"); trimmed != s {
		v, ok := new(big.Int).SetString(trimmed, 16)
		if !ok {
			return nil, fmt.Errorf("invalid hex number: %s", s)
		}
		return v, nil
	}
	if v, ok := new(big.Int).SetString(s, 10); ok {
		return v, nil
	}
	if v, ok := new(big.Int).SetString(s, 16); ok {
		return v, nil
	}
	return nil, fmt.Errorf("invalid number format: %s", s)
}
