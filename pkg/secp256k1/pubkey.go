package secp256k1

import (
	"fmt"
	"math/big"
)

// Serialized public key lengths and prefix bytes.
const (
	// PubKeyRawLen is the length of a raw x‖y public key serialization.
	PubKeyRawLen = 64

	// PubKeyUncompressedLen is the length of an uncompressed (0x04-prefixed)
	// public key serialization.
	PubKeyUncompressedLen = 65

	// PubKeyCompressedLen is the length of a compressed public key
	// serialization.
	PubKeyCompressedLen = 33

	// PubKeyIdentityLen is the length of the identity public key
	// serialization, which is the single byte 0x00 in both the uncompressed
	// and compressed forms.
	PubKeyIdentityLen = 1

	pubKeyIdentityTag     = 0x00
	pubKeyUncompressedTag = 0x04
	pubKeyCompressedEven  = 0x02
	pubKeyCompressedOdd   = 0x03
)

// PublicKey is a secp256k1 public key: an affine curve point. The zero value
// wraps the all-zero point, which fails validation, so uninitialized keys
// cannot slip through.
type PublicKey struct {
	p Point
}

// NewPublicKey wraps an affine point as a public key. No validation is
// performed; use IsValid.
func NewPublicKey(p Point) *PublicKey {
	return &PublicKey{p: p}
}

// Point returns the affine point of the public key.
func (pk *PublicKey) Point() Point {
	return pk.p
}

// IsIdentity reports whether the public key is the group identity.
func (pk *PublicKey) IsIdentity() bool {
	return pk.p.IsIdentity()
}

// IsValid reports whether the public key is a member of the curve group.
// The identity is a group member and is accepted here; operations that
// additionally require a usable signer, such as Verify, reject it
// separately. The all-zero point is not on the curve and is rejected.
func (pk *PublicKey) IsValid() bool {
	if pk == nil {
		return false
	}
	if pk.p.identity {
		return true
	}
	if pk.p.x == nil || pk.p.y == nil {
		return false
	}
	return pk.p.IsOnCurve()
}

// Equal reports whether both public keys are the same group element.
func (pk *PublicKey) Equal(other *PublicKey) bool {
	return pk.p.Equal(other.p)
}

// SerializeRaw returns the 64-byte x‖y encoding with both coordinates in
// big-endian form. The identity has no affine coordinates and therefore no
// raw encoding.
func (pk *PublicKey) SerializeRaw() ([]byte, error) {
	if pk.p.identity {
		return nil, makeError(ErrInvalidPublicKey,
			"the identity has no raw coordinate encoding")
	}
	var buf [PubKeyRawLen]byte
	pk.p.x.FillBytes(buf[:32])
	pk.p.y.FillBytes(buf[32:])
	return buf[:], nil
}

// SerializeUncompressed returns the 65-byte SEC1 uncompressed encoding
// 0x04‖x‖y. The identity encodes as the single byte 0x00.
func (pk *PublicKey) SerializeUncompressed() []byte {
	if pk.p.identity {
		return []byte{pubKeyIdentityTag}
	}
	var buf [PubKeyUncompressedLen]byte
	buf[0] = pubKeyUncompressedTag
	pk.p.x.FillBytes(buf[1:33])
	pk.p.y.FillBytes(buf[33:])
	return buf[:]
}

// SerializeCompressed returns the 33-byte SEC1 compressed encoding: 0x02‖x
// when y is even and 0x03‖x when y is odd. The identity encodes as the
// single byte 0x00, never as a 33-byte blob.
func (pk *PublicKey) SerializeCompressed() []byte {
	if pk.p.identity {
		return []byte{pubKeyIdentityTag}
	}
	var buf [PubKeyCompressedLen]byte
	buf[0] = pubKeyCompressedEven | pk.p.YParity()
	pk.p.x.FillBytes(buf[1:])
	return buf[:]
}

// ParsePublicKeyRaw parses the 64-byte x‖y encoding produced by
// SerializeRaw. The decoded point must be on the curve.
func ParsePublicKeyRaw(b []byte) (*PublicKey, error) {
	if len(b) != PubKeyRawLen {
		return nil, makeError(ErrInvalidLength,
			fmt.Sprintf("raw public key must be %d bytes, got %d", PubKeyRawLen, len(b)))
	}
	return pubKeyFromCoords(new(big.Int).SetBytes(b[:32]), new(big.Int).SetBytes(b[32:]))
}

// ParsePublicKey parses the 65-byte uncompressed encoding produced by
// SerializeUncompressed, or the 1-byte identity encoding. A 65-byte all-zero
// blob is not a valid identity encoding and is rejected by the on-curve
// check like any other off-curve point.
func ParsePublicKey(b []byte) (*PublicKey, error) {
	switch len(b) {
	case PubKeyIdentityLen:
		if b[0] != pubKeyIdentityTag {
			return nil, makeError(ErrInvalidPrefix,
				fmt.Sprintf("invalid identity public key tag %#02x", b[0]))
		}
		return NewPublicKey(IdentityPoint()), nil

	case PubKeyUncompressedLen:
		if b[0] != pubKeyUncompressedTag {
			return nil, makeError(ErrInvalidPrefix,
				fmt.Sprintf("invalid uncompressed public key prefix %#02x", b[0]))
		}
		return pubKeyFromCoords(new(big.Int).SetBytes(b[1:33]), new(big.Int).SetBytes(b[33:]))

	default:
		return nil, makeError(ErrInvalidLength,
			fmt.Sprintf("uncompressed public key must be %d or %d bytes, got %d",
				PubKeyIdentityLen, PubKeyUncompressedLen, len(b)))
	}
}

// ParseCompressedPublicKey parses the 33-byte compressed encoding produced
// by SerializeCompressed, or the 1-byte identity encoding. The y coordinate
// is recovered as the square root of x³ + 7 matching the parity tag.
func ParseCompressedPublicKey(b []byte) (*PublicKey, error) {
	switch len(b) {
	case PubKeyIdentityLen:
		if b[0] != pubKeyIdentityTag {
			return nil, makeError(ErrInvalidPrefix,
				fmt.Sprintf("invalid identity public key tag %#02x", b[0]))
		}
		return NewPublicKey(IdentityPoint()), nil

	case PubKeyCompressedLen:
		if b[0] != pubKeyCompressedEven && b[0] != pubKeyCompressedOdd {
			return nil, makeError(ErrInvalidPrefix,
				fmt.Sprintf("invalid compressed public key prefix %#02x", b[0]))
		}
		x := new(big.Int).SetBytes(b[1:])
		if x.Cmp(P) >= 0 {
			return nil, makeError(ErrInvalidPublicKey,
				"compressed public key x coordinate exceeds the field prime")
		}
		y := sqrtModP(curvePolynomial(x))
		if y == nil {
			return nil, makeError(ErrPointNotOnCurve,
				"compressed public key x coordinate is not on the curve")
		}
		if byte(y.Bit(0)) != b[0]&1 {
			y.Sub(P, y)
		}
		return pubKeyFromCoords(x, y)

	default:
		return nil, makeError(ErrInvalidLength,
			fmt.Sprintf("compressed public key must be %d or %d bytes, got %d",
				PubKeyIdentityLen, PubKeyCompressedLen, len(b)))
	}
}

// pubKeyFromCoords builds a public key from decoded coordinates, enforcing
// curve membership.
func pubKeyFromCoords(x, y *big.Int) (*PublicKey, error) {
	p := NewPoint(x, y)
	if !p.IsOnCurve() {
		return nil, makeError(ErrPointNotOnCurve, "public key point is not on the curve")
	}
	return NewPublicKey(p), nil
}
