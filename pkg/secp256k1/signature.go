package secp256k1

import (
	"crypto/sha256"
	"fmt"
	"math/big"
)

// Serialized signature lengths.
const (
	// SignatureLen is the length of a raw v‖r‖s signature serialization.
	SignatureLen = 65

	// CompactSignatureLen is the length of a compact signature
	// serialization, which folds the recovery indicator into the high bit
	// of the s component.
	CompactSignatureLen = 64
)

// Signature is an ECDSA signature over secp256k1 together with a recovery
// indicator. The indicator distinguishes which of the two candidate public
// keys produced the signature: it is the y parity of the random point used
// during signing.
//
// Signatures produced by Sign always carry s ≤ N/2 (the low-S canonical
// form). The high-S twin is representable, so negative fixtures can be
// built, but verification rejects it.
type Signature struct {
	v    byte
	r, s *big.Int
}

// NewSignature constructs a signature from its components. The recovery
// indicator must be 0 or 1 and both scalars must be in [1, N-1]; high-S
// values inside that range are accepted here and rejected at verification.
func NewSignature(v byte, r, s *big.Int) (*Signature, error) {
	if v > 1 {
		return nil, makeError(ErrInvalidRecoveryBit,
			fmt.Sprintf("recovery indicator must be 0 or 1, got %d", v))
	}
	for _, c := range []struct {
		name string
		val  *big.Int
	}{{"r", r}, {"s", s}} {
		if c.val.Sign() <= 0 {
			return nil, makeError(ErrInvalidScalar,
				fmt.Sprintf("signature %s must be positive", c.name))
		}
		if c.val.Cmp(N) >= 0 {
			return nil, makeError(ErrInvalidScalar,
				fmt.Sprintf("signature %s is not less than the group order", c.name))
		}
	}
	return &Signature{v: v, r: new(big.Int).Set(r), s: new(big.Int).Set(s)}, nil
}

// V returns the recovery indicator.
func (sig *Signature) V() byte { return sig.v }

// R returns a copy of the r component.
func (sig *Signature) R() *big.Int { return new(big.Int).Set(sig.r) }

// S returns a copy of the s component.
func (sig *Signature) S() *big.Int { return new(big.Int).Set(sig.s) }

// Equal reports whether both signatures have identical v, r, and s.
func (sig *Signature) Equal(other *Signature) bool {
	return sig.v == other.v && sig.r.Cmp(other.r) == 0 && sig.s.Cmp(other.s) == 0
}

// IsMalleable reports whether the signature is in the non-canonical high-S
// form (s > N/2).
func (sig *Signature) IsMalleable() bool {
	return sig.s.Cmp(halfN) > 0
}

// IntoNonMalleable returns the canonical low-S representative of the
// signature: s is replaced by N-s and the recovery indicator flipped when
// the signature is malleable, otherwise an identical copy is returned. The
// receiver is not modified.
func (sig *Signature) IntoNonMalleable() *Signature {
	out := &Signature{v: sig.v, r: new(big.Int).Set(sig.r), s: new(big.Int).Set(sig.s)}
	if out.IsMalleable() {
		out.s.Sub(N, out.s)
		out.v ^= 1
	}
	return out
}

// Serialize returns the 65-byte v‖r‖s encoding with r and s in fixed-width
// big-endian form.
func (sig *Signature) Serialize() []byte {
	var buf [SignatureLen]byte
	buf[0] = sig.v
	sig.r.FillBytes(buf[1:33])
	sig.s.FillBytes(buf[33:])
	return buf[:]
}

// SerializeCompact returns the 64-byte r‖vs encoding where the recovery
// indicator occupies the top bit of the s component. A canonical s is always
// below N/2 and never has that bit set, so the layout only admits
// non-malleable signatures.
func (sig *Signature) SerializeCompact() ([]byte, error) {
	if sig.IsMalleable() {
		return nil, makeError(ErrMalleableSignature,
			"compact form cannot carry a high-S signature")
	}
	var buf [CompactSignatureLen]byte
	sig.r.FillBytes(buf[:32])
	sig.s.FillBytes(buf[32:])
	buf[32] |= sig.v << 7
	return buf[:], nil
}

// ParseSignature parses the 65-byte v‖r‖s encoding produced by Serialize.
func ParseSignature(b []byte) (*Signature, error) {
	if len(b) != SignatureLen {
		return nil, makeError(ErrInvalidLength,
			fmt.Sprintf("signature must be %d bytes, got %d", SignatureLen, len(b)))
	}
	return NewSignature(b[0], new(big.Int).SetBytes(b[1:33]), new(big.Int).SetBytes(b[33:]))
}

// ParseCompactSignature parses the 64-byte encoding produced by
// SerializeCompact.
func ParseCompactSignature(b []byte) (*Signature, error) {
	if len(b) != CompactSignatureLen {
		return nil, makeError(ErrInvalidLength,
			fmt.Sprintf("compact signature must be %d bytes, got %d",
				CompactSignatureLen, len(b)))
	}
	s := make([]byte, 32)
	copy(s, b[32:])
	v := s[0] >> 7
	s[0] &= 0x7f
	return NewSignature(v, new(big.Int).SetBytes(b[:32]), new(big.Int).SetBytes(s))
}

// HashMessage returns the 32-byte SHA-256 digest used as the signing input
// for a raw message.
func HashMessage(message []byte) []byte {
	d := sha256.Sum256(message)
	return d[:]
}

// Sign signs an arbitrary message by first hashing it with HashMessage. It
// is observably identical to SignDigest(sk, HashMessage(message)).
func Sign(sk *SecretKey, message []byte) (*Signature, error) {
	return SignDigest(sk, HashMessage(message))
}

// SignDigest produces a canonical ECDSA signature over the 32-byte digest.
//
// The nonce is derived deterministically per RFC 6979, so the same key and
// digest always yield the same signature. The s component is normalized to
// its low-S representative; negating s corresponds to the random point
// generated by -k, which has the opposite y parity, so the recovery
// indicator is flipped along with it.
func SignDigest(sk *SecretKey, digest []byte) (*Signature, error) {
	if !sk.valid() {
		return nil, makeError(ErrInvalidSecretKey,
			"secret key does not satisfy its range invariant")
	}
	if len(digest) != sha256.Size {
		return nil, makeError(ErrInvalidLength,
			fmt.Sprintf("digest must be %d bytes, got %d", sha256.Size, len(digest)))
	}

	e := new(big.Int).SetBytes(digest)
	e.Mod(e, N)
	skBytes := sk.Serialize()

	for iteration := uint32(0); ; iteration++ {
		k := nonceRFC6979(skBytes, digest, iteration)

		// R = k·G, r = R.x mod N. Retry when r is zero. Retry as well in
		// the ~1 in 2¹²⁷ case where R.x overflows N: the single-bit
		// recovery indicator cannot represent the overflow, so such
		// signatures would not be recoverable.
		rPoint := ScalarBaseMult(k)
		rx, _ := rPoint.Coords()
		if rx.Cmp(N) >= 0 {
			continue
		}
		r := new(big.Int).Set(rx)
		if r.Sign() == 0 {
			continue
		}
		v := rPoint.YParity()

		// s = k⁻¹(e + d·r) mod N. Retry when s is zero.
		kInv := new(big.Int).ModInverse(k, N)
		s := new(big.Int).Mul(sk.d, r)
		s.Add(s, e)
		s.Mul(s, kInv)
		s.Mod(s, N)
		if s.Sign() == 0 {
			continue
		}

		if s.Cmp(halfN) > 0 {
			s.Sub(N, s)
			v ^= 1
		}
		return &Signature{v: v, r: r, s: s}, nil
	}
}

// Verify reports whether the signature is valid for the message under the
// public key. The message is hashed with HashMessage first; Verify and
// VerifyDigest(pub, HashMessage(message), sig) are observably identical.
func Verify(pub *PublicKey, message []byte, sig *Signature) (bool, error) {
	return VerifyDigest(pub, HashMessage(message), sig)
}

// VerifyDigest reports whether the signature is valid for the 32-byte digest
// under the public key.
//
// Malleable (high-S) signatures fail with ErrMalleableSignature before any
// curve work is done; they are never accepted even when the underlying
// (r, s) pair would satisfy the verification equation. A public key that is
// off-curve, or the identity, fails with ErrInvalidPublicKey. A signature
// that is merely wrong yields (false, nil), never an error.
func VerifyDigest(pub *PublicKey, digest []byte, sig *Signature) (bool, error) {
	if sig.IsMalleable() {
		return false, makeError(ErrMalleableSignature,
			"signature s component exceeds half the group order")
	}
	if !pub.IsValid() || pub.IsIdentity() {
		return false, makeError(ErrInvalidPublicKey,
			"verification requires an on-curve, non-identity public key")
	}
	if len(digest) != sha256.Size {
		return false, makeError(ErrInvalidLength,
			fmt.Sprintf("digest must be %d bytes, got %d", sha256.Size, len(digest)))
	}
	if sig.r.Sign() <= 0 || sig.r.Cmp(N) >= 0 || sig.s.Sign() <= 0 || sig.s.Cmp(N) >= 0 {
		return false, nil
	}

	// Standard ECDSA: with w = s⁻¹, accept iff the x coordinate of
	// u1·G + u2·Q reduced mod N equals r, where u1 = e·w and u2 = r·w.
	e := new(big.Int).SetBytes(digest)
	e.Mod(e, N)
	w := new(big.Int).ModInverse(sig.s, N)
	u1 := new(big.Int).Mul(e, w)
	u1.Mod(u1, N)
	u2 := new(big.Int).Mul(sig.r, w)
	u2.Mod(u2, N)

	u1G := ScalarBaseMult(u1).ToJacobian()
	u2Q := ScalarMult(pub.p, u2).ToJacobian()
	X := addUnified(u1G, u2Q).ToAffine()
	if X.IsIdentity() {
		return false, nil
	}
	xCoord, _ := X.Coords()
	xCoord.Mod(xCoord, N)
	return xCoord.Cmp(sig.r) == 0, nil
}
