package secp256k1

import (
	"encoding/hex"
	"encoding/json"
	"math/big"
	"os"
	"strings"
)

// testKeyInfo mirrors fixtures/test_key_info.json.
type testKeyInfo struct {
	PrivateKey   string `json:"private_key"`
	PublicKeyHex string `json:"public_key_hex"`
}

// testSignatureVector mirrors an entry of
// fixtures/test_signatures_rfc6979.json: a deterministic signature expected
// from the given key and message.
type testSignatureVector struct {
	PrivateKey string `json:"private_key"`
	Message    string `json:"message"`
	R          string `json:"r"`
	S          string `json:"s"`
}

// loadTestKeyInfo reads the key fixture from the fixtures directory.
func loadTestKeyInfo() (testKeyInfo, error) {
	var info testKeyInfo
	raw, err := os.ReadFile("../../fixtures/test_key_info.json")
	if err != nil {
		return info, err
	}
	err = json.Unmarshal(raw, &info)
	return info, err
}

// loadTestSignatureVectors reads the deterministic signature fixtures.
func loadTestSignatureVectors() ([]testSignatureVector, error) {
	raw, err := os.ReadFile("../../fixtures/test_signatures_rfc6979.json")
	if err != nil {
		return nil, err
	}
	var vectors []testSignatureVector
	if err := json.Unmarshal(raw, &vectors); err != nil {
		return nil, err
	}
	return vectors, nil
}

// hexBig parses a hex number, handling an optional 0x prefix. Decimal input
// without a prefix is accepted too, matching the fixture format.
func hexBig(s string) (*big.Int, bool) {
	if trimmed := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X"); trimmed != s {
		return new(big.Int).SetString(trimmed, 16)
	}
	return new(big.Int).SetString(s, 10)
}

// hexDecode decodes a hex string, handling an optional 0x prefix.
func hexDecode(s string) ([]byte, error) {
	s = strings.TrimPrefix(s, "0x")
	s = strings.TrimPrefix(s, "0X")
	return hex.DecodeString(s)
}
