package secp256k1

import (
	"errors"
	"math/big"
	"testing"
)

func TestRecoverPublicKey(t *testing.T) {
	scalars := []*big.Int{
		big.NewInt(1),
		big.NewInt(0xD00D),
		new(big.Int).Sub(N, big.NewInt(7)),
	}

	for _, d := range scalars {
		sk := mustSecretKey(t, d)
		pub, err := sk.PubKey()
		if err != nil {
			t.Fatalf("PubKey failed: %v", err)
		}
		digest := HashMessage([]byte("recoverable"))
		sig, err := SignDigest(sk, digest)
		if err != nil {
			t.Fatalf("SignDigest failed: %v", err)
		}

		recovered, err := RecoverPublicKey(digest, sig)
		if err != nil {
			t.Fatalf("scalar %x: recovery failed: %v", d, err)
		}
		if !recovered.Equal(pub) {
			t.Errorf("scalar %x: recovered the wrong key", d)
		}
	}
}

// TestRecoverFlippedIndicator checks that the wrong recovery indicator yields
// a different key, not a failure: the mirrored random point is still on the
// curve and selects the other candidate.
func TestRecoverFlippedIndicator(t *testing.T) {
	sk := mustSecretKey(t, big.NewInt(0xBEE))
	pub, err := sk.PubKey()
	if err != nil {
		t.Fatalf("PubKey failed: %v", err)
	}
	digest := HashMessage([]byte("indicator matters"))
	sig, err := SignDigest(sk, digest)
	if err != nil {
		t.Fatalf("SignDigest failed: %v", err)
	}

	flipped, err := NewSignature(sig.V()^1, sig.R(), sig.S())
	if err != nil {
		t.Fatalf("failed to flip indicator: %v", err)
	}
	recovered, err := RecoverPublicKey(digest, flipped)
	if err != nil {
		t.Fatalf("recovery with flipped indicator failed: %v", err)
	}
	if recovered.Equal(pub) {
		t.Error("flipped indicator recovered the signing key")
	}
}

func TestRecoverPublicKeyErrors(t *testing.T) {
	sk := mustSecretKey(t, big.NewInt(0xBEE))
	digest := HashMessage([]byte("error paths"))
	sig, err := SignDigest(sk, digest)
	if err != nil {
		t.Fatalf("SignDigest failed: %v", err)
	}

	if _, err := RecoverPublicKey(make([]byte, 20), sig); !errors.Is(err, ErrInvalidLength) {
		t.Errorf("short digest: want ErrInvalidLength, got %v", err)
	}

	// An r whose curve polynomial has no square root yields no random point.
	noRootR := new(big.Int)
	for x := int64(2); ; x++ {
		noRootR.SetInt64(x)
		if sqrtModP(curvePolynomial(noRootR)) == nil {
			break
		}
	}
	badSig, err := NewSignature(0, noRootR, big.NewInt(1))
	if err != nil {
		t.Fatalf("failed to build signature: %v", err)
	}
	if _, err := RecoverPublicKey(digest, badSig); !errors.Is(err, ErrPointNotOnCurve) {
		t.Errorf("non-residue r: want ErrPointNotOnCurve, got %v", err)
	}
}

func TestVerifyWithAccountID(t *testing.T) {
	sk := mustSecretKey(t, big.NewInt(0xCAFE))
	pub, err := sk.PubKey()
	if err != nil {
		t.Fatalf("PubKey failed: %v", err)
	}
	id, err := pub.AccountID()
	if err != nil {
		t.Fatalf("AccountID failed: %v", err)
	}
	msg := []byte("pay to identifier")
	sig := mustSign(t, sk, msg)

	ok, err := VerifyWithAccountID(id, msg, sig)
	if err != nil || !ok {
		t.Fatalf("matching identifier did not verify: ok=%v err=%v", ok, err)
	}

	ok, err = VerifyDigestWithAccountID(id, HashMessage(msg), sig)
	if err != nil || !ok {
		t.Fatalf("digest form disagrees: ok=%v err=%v", ok, err)
	}

	// A different signer's identifier fails quietly.
	otherID, err := mustPubKey(t, big.NewInt(2)).AccountID()
	if err != nil {
		t.Fatalf("AccountID failed: %v", err)
	}
	ok, err = VerifyWithAccountID(otherID, msg, sig)
	if err != nil {
		t.Errorf("mismatched identifier errored: %v", err)
	}
	if ok {
		t.Error("signature verified under the wrong identifier")
	}

	// Same identifier, different message.
	ok, err = VerifyWithAccountID(id, []byte("another message"), sig)
	if err != nil {
		t.Errorf("wrong message errored: %v", err)
	}
	if ok {
		t.Error("signature verified the wrong message")
	}
}

func TestVerifyWithAccountIDRejects(t *testing.T) {
	sk := mustSecretKey(t, big.NewInt(0xCAFE))
	pub, err := sk.PubKey()
	if err != nil {
		t.Fatalf("PubKey failed: %v", err)
	}
	id, err := pub.AccountID()
	if err != nil {
		t.Fatalf("AccountID failed: %v", err)
	}
	msg := []byte("rejection paths")
	sig := mustSign(t, sk, msg)

	// The zero identifier is reserved and never matches.
	ok, err := VerifyWithAccountID(AccountID{}, msg, sig)
	if ok || !errors.Is(err, ErrZeroSigner) {
		t.Errorf("zero identifier: ok=%v err=%v", ok, err)
	}

	// Malleability is rejected before the identifier checks.
	twin := highSTwin(t, sig)
	ok, err = VerifyWithAccountID(AccountID{}, msg, twin)
	if ok || !errors.Is(err, ErrMalleableSignature) {
		t.Errorf("malleable with zero identifier: ok=%v err=%v", ok, err)
	}
	ok, err = VerifyWithAccountID(id, msg, twin)
	if ok || !errors.Is(err, ErrMalleableSignature) {
		t.Errorf("malleable with real identifier: ok=%v err=%v", ok, err)
	}

	// Digest length is still enforced.
	ok, err = VerifyDigestWithAccountID(id, make([]byte, 16), sig)
	if ok || !errors.Is(err, ErrInvalidLength) {
		t.Errorf("short digest: ok=%v err=%v", ok, err)
	}
}
