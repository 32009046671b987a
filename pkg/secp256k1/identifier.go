package secp256k1

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"
)

// AccountIDLen is the length of an account identifier in bytes.
const AccountIDLen = 20

// AccountID is a short stable handle derived from a public key: the last 20
// bytes of the Keccak-256 hash of the raw x‖y coordinates. The all-zero
// identifier is reserved as "no signer" and never matches a real key during
// verification.
type AccountID [AccountIDLen]byte

// IsZero reports whether the identifier is the all-zero reserved value.
func (id AccountID) IsZero() bool {
	return id == AccountID{}
}

// String returns the 0x-prefixed hex form of the identifier.
func (id AccountID) String() string {
	return "0x" + hex.EncodeToString(id[:])
}

// AccountID derives the account identifier of the public key. The identity
// has no coordinates to hash and cannot have an identifier.
func (pk *PublicKey) AccountID() (AccountID, error) {
	raw, err := pk.SerializeRaw()
	if err != nil {
		return AccountID{}, err
	}
	d := sha3.NewLegacyKeccak256()
	d.Write(raw)
	sum := d.Sum(nil)

	var id AccountID
	copy(id[:], sum[len(sum)-AccountIDLen:])
	return id, nil
}
