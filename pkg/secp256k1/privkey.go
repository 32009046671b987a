package secp256k1

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// SecretKeyLen is the length of a serialized secret key in bytes.
const SecretKeyLen = 32

// SecretKey is a secp256k1 secret key: a scalar in the range [1, N-1]. The
// constructors guarantee the invariant, and the value is immutable once
// created. The scalar itself must never appear in logs or error messages.
type SecretKey struct {
	d *big.Int
}

// NewSecretKey generates a uniformly random secret key using the operating
// system's cryptographically secure randomness source. The zero sample is
// rejected and redrawn, which is the only internal retry in this package.
func NewSecretKey() (*SecretKey, error) {
	for {
		k, err := rand.Int(rand.Reader, N)
		if err != nil {
			return nil, fmt.Errorf("failed to read randomness: %w", err)
		}
		if k.Sign() == 0 {
			continue
		}
		return &SecretKey{d: k}, nil
	}
}

// SecretKeyFromScalar constructs a secret key from the given scalar. The
// scalar must be in [1, N-1].
func SecretKeyFromScalar(k *big.Int) (*SecretKey, error) {
	if k.Sign() <= 0 {
		return nil, makeError(ErrInvalidScalar, "secret scalar must be positive")
	}
	if k.Cmp(N) >= 0 {
		return nil, makeError(ErrInvalidScalar,
			"secret scalar is not less than the group order")
	}
	return &SecretKey{d: new(big.Int).Set(k)}, nil
}

// SecretKeyFromBytes constructs a secret key from its 32-byte big-endian
// serialization. The length is checked before the scalar range.
func SecretKeyFromBytes(b []byte) (*SecretKey, error) {
	if len(b) != SecretKeyLen {
		return nil, makeError(ErrInvalidLength,
			fmt.Sprintf("secret key must be %d bytes, got %d", SecretKeyLen, len(b)))
	}
	return SecretKeyFromScalar(new(big.Int).SetBytes(b))
}

// secretKeyFromScalarUnchecked bypasses the range invariant. It exists only
// so negative tests can exercise the defensive re-checks downstream and must
// never be used outside of tests.
func secretKeyFromScalarUnchecked(k *big.Int) *SecretKey {
	return &SecretKey{d: new(big.Int).Set(k)}
}

// Scalar returns a copy of the secret scalar.
func (sk *SecretKey) Scalar() *big.Int {
	return new(big.Int).Set(sk.d)
}

// Serialize returns the 32-byte big-endian encoding of the secret key.
func (sk *SecretKey) Serialize() []byte {
	var buf [SecretKeyLen]byte
	sk.d.FillBytes(buf[:])
	return buf[:]
}

// valid reports whether the scalar satisfies the [1, N-1] invariant. The
// constructors enforce it, so this only trips on values smuggled in through
// the unchecked test hook.
func (sk *SecretKey) valid() bool {
	return sk.d != nil && sk.d.Sign() > 0 && sk.d.Cmp(N) < 0
}

// PubKey derives the public key d·G. The range invariant is re-checked
// defensively before any curve work.
func (sk *SecretKey) PubKey() (*PublicKey, error) {
	if !sk.valid() {
		return nil, makeError(ErrInvalidSecretKey,
			"secret key does not satisfy its range invariant")
	}
	return NewPublicKey(ScalarBaseMult(sk.d)), nil
}
