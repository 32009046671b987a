package secp256k1

import (
	"crypto/sha256"
	"fmt"
	"math/big"
)

// RecoverPublicKey recovers the public key that produced the signature over
// the 32-byte digest, using the recovery indicator to select between the two
// candidate keys (SEC1 section 4.1.6).
//
// The random point X is rebuilt from r and the indicator's y parity, and the
// candidate key is Q = r⁻¹(s·X - e·G). A digest/signature pair that does not
// correspond to any curve point fails with ErrPointNotOnCurve.
func RecoverPublicKey(digest []byte, sig *Signature) (*PublicKey, error) {
	if len(digest) != sha256.Size {
		return nil, makeError(ErrInvalidLength,
			fmt.Sprintf("digest must be %d bytes, got %d", sha256.Size, len(digest)))
	}
	if sig.r.Sign() <= 0 || sig.r.Cmp(N) >= 0 || sig.s.Sign() <= 0 || sig.s.Cmp(N) >= 0 {
		return nil, makeError(ErrInvalidScalar,
			"signature components must be in [1, N-1]")
	}

	// Rebuild X = (r, y) with the y parity recorded at signing time. Signing
	// never emits an r that overflowed the group order, so r is used as the
	// field x coordinate directly.
	y := sqrtModP(curvePolynomial(sig.r))
	if y == nil {
		return nil, makeError(ErrPointNotOnCurve,
			"signature r is not the x coordinate of a curve point")
	}
	if byte(y.Bit(0)) != sig.v {
		y.Sub(P, y)
	}
	X := NewPoint(sig.r, y)

	// Q = u1·G + u2·X with u1 = -(e·w) and u2 = s·w, where w = r⁻¹ mod N.
	e := new(big.Int).SetBytes(digest)
	e.Mod(e, N)
	w := new(big.Int).ModInverse(sig.r, N)
	u1 := new(big.Int).Mul(e, w)
	u1.Neg(u1)
	u1.Mod(u1, N)
	u2 := new(big.Int).Mul(sig.s, w)
	u2.Mod(u2, N)

	u1G := ScalarBaseMult(u1).ToJacobian()
	u2X := ScalarMult(X, u2).ToJacobian()
	Q := addUnified(u1G, u2X).ToAffine()
	if Q.IsIdentity() {
		return nil, makeError(ErrInvalidPublicKey,
			"recovered public key is the identity")
	}
	return NewPublicKey(Q), nil
}

// VerifyWithAccountID reports whether the signature over the message was
// produced by the key behind the given account identifier. The message is
// hashed with HashMessage first.
func VerifyWithAccountID(id AccountID, message []byte, sig *Signature) (bool, error) {
	return VerifyDigestWithAccountID(id, HashMessage(message), sig)
}

// VerifyDigestWithAccountID reports whether the signature over the 32-byte
// digest was produced by the key behind the given account identifier.
//
// The all-zero identifier is the "no signer" reserved value and fails with
// ErrZeroSigner rather than ever matching; malleable signatures fail with
// ErrMalleableSignature before any curve work, as in VerifyDigest. A
// signature that simply does not match yields (false, nil).
func VerifyDigestWithAccountID(id AccountID, digest []byte, sig *Signature) (bool, error) {
	if sig.IsMalleable() {
		return false, makeError(ErrMalleableSignature,
			"signature s component exceeds half the group order")
	}
	if id.IsZero() {
		return false, makeError(ErrZeroSigner,
			"cannot verify against the zero account identifier")
	}
	if len(digest) != sha256.Size {
		return false, makeError(ErrInvalidLength,
			fmt.Sprintf("digest must be %d bytes, got %d", sha256.Size, len(digest)))
	}

	// Recovery inverts the verification equation, so a recovered key whose
	// identifier matches is exactly a key under which the signature
	// verifies. Failures to recover mean no key matches: merely false.
	pub, err := RecoverPublicKey(digest, sig)
	if err != nil {
		return false, nil
	}
	recoveredID, err := pub.AccountID()
	if err != nil {
		return false, nil
	}
	return recoveredID == id, nil
}
