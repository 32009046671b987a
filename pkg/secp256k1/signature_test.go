package secp256k1

import (
	"bytes"
	"errors"
	"math/big"
	"testing"

	decred "github.com/decred/dcrd/dcrec/secp256k1/v4"
	decredecdsa "github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
)

func mustSecretKey(t *testing.T, d *big.Int) *SecretKey {
	t.Helper()
	sk, err := SecretKeyFromScalar(d)
	if err != nil {
		t.Fatalf("bad scalar %x: %v", d, err)
	}
	return sk
}

func mustSign(t *testing.T, sk *SecretKey, message []byte) *Signature {
	t.Helper()
	sig, err := Sign(sk, message)
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}
	return sig
}

// highSTwin returns the malleable high-S counterpart of a canonical
// signature.
func highSTwin(t *testing.T, sig *Signature) *Signature {
	t.Helper()
	twin, err := NewSignature(sig.V()^1, sig.R(), new(big.Int).Sub(N, sig.S()))
	if err != nil {
		t.Fatalf("failed to build high-S twin: %v", err)
	}
	return twin
}

// TestSignFixtureVectors checks deterministic signing against published
// RFC 6979 test vectors.
func TestSignFixtureVectors(t *testing.T) {
	vectors, err := loadTestSignatureVectors()
	if err != nil {
		t.Fatalf("failed to load signature fixtures: %v", err)
	}
	if len(vectors) == 0 {
		t.Fatal("no signature fixtures found")
	}

	for _, vec := range vectors {
		d, ok := hexBig(vec.PrivateKey)
		if !ok {
			t.Fatalf("bad private key in fixture: %q", vec.PrivateKey)
		}
		wantR, ok := hexBig(vec.R)
		if !ok {
			t.Fatalf("bad r in fixture: %q", vec.R)
		}
		wantS, ok := hexBig(vec.S)
		if !ok {
			t.Fatalf("bad s in fixture: %q", vec.S)
		}

		sig := mustSign(t, mustSecretKey(t, d), []byte(vec.Message))
		if sig.R().Cmp(wantR) != 0 {
			t.Errorf("%q: r mismatch:\ngot  %x\nwant %x", vec.Message, sig.R(), wantR)
		}
		if sig.S().Cmp(wantS) != 0 {
			t.Errorf("%q: s mismatch:\ngot  %x\nwant %x", vec.Message, sig.S(), wantS)
		}
	}
}

func TestSignDeterministic(t *testing.T) {
	sk := mustSecretKey(t, big.NewInt(0xFEED))
	msg := []byte("repeatable input")

	first := mustSign(t, sk, msg)
	second := mustSign(t, sk, msg)
	if !first.Equal(second) {
		t.Error("same key and message produced different signatures")
	}

	viaDigest, err := SignDigest(sk, HashMessage(msg))
	if err != nil {
		t.Fatalf("SignDigest failed: %v", err)
	}
	if !first.Equal(viaDigest) {
		t.Error("Sign and SignDigest over the hashed message disagree")
	}

	other := mustSign(t, sk, []byte("different input"))
	if first.Equal(other) {
		t.Error("different messages produced the same signature")
	}
}

func TestSignVerifyRoundTrip(t *testing.T) {
	scalars := []*big.Int{
		big.NewInt(1),
		big.NewInt(0xBADC0DE),
		new(big.Int).Set(halfN),
		new(big.Int).Sub(N, big.NewInt(1)),
	}
	messages := [][]byte{
		[]byte(""),
		[]byte("hello"),
		bytes.Repeat([]byte{0xAB}, 1024),
	}

	for _, d := range scalars {
		sk := mustSecretKey(t, d)
		pub, err := sk.PubKey()
		if err != nil {
			t.Fatalf("PubKey failed: %v", err)
		}

		for _, msg := range messages {
			sig := mustSign(t, sk, msg)
			if sig.IsMalleable() {
				t.Errorf("scalar %x: produced a high-S signature", d)
			}

			ok, err := Verify(pub, msg, sig)
			if err != nil || !ok {
				t.Errorf("scalar %x: valid signature did not verify: ok=%v err=%v", d, ok, err)
			}
			ok, err = VerifyDigest(pub, HashMessage(msg), sig)
			if err != nil || !ok {
				t.Errorf("scalar %x: digest verification disagrees: ok=%v err=%v", d, ok, err)
			}

			ok, err = Verify(pub, append(append([]byte(nil), msg...), '!'), sig)
			if err != nil {
				t.Errorf("scalar %x: wrong message errored: %v", d, err)
			}
			if ok {
				t.Errorf("scalar %x: signature verified the wrong message", d)
			}
		}
	}
}

// TestSignMatchesReference cross-checks signing and verification against the
// decred implementation in both directions.
func TestSignMatchesReference(t *testing.T) {
	sk := mustSecretKey(t, big.NewInt(0x1337))
	pub, err := sk.PubKey()
	if err != nil {
		t.Fatalf("PubKey failed: %v", err)
	}
	digest := HashMessage([]byte("cross-implementation check"))

	refKey := decred.PrivKeyFromBytes(sk.Serialize())

	// Our signature must satisfy the reference verifier.
	sig, err := SignDigest(sk, digest)
	if err != nil {
		t.Fatalf("SignDigest failed: %v", err)
	}
	var refR, refS decred.ModNScalar
	refR.SetByteSlice(sig.R().Bytes())
	refS.SetByteSlice(sig.S().Bytes())
	if !decredecdsa.NewSignature(&refR, &refS).Verify(digest, refKey.PubKey()) {
		t.Error("reference verifier rejected our signature")
	}

	// The reference signature must satisfy our verifier, after normalizing
	// the legacy 27-offset recovery byte of the compact form.
	refCompact := decredecdsa.SignCompact(refKey, digest, false)
	refSig, err := NewSignature(refCompact[0]-27,
		new(big.Int).SetBytes(refCompact[1:33]),
		new(big.Int).SetBytes(refCompact[33:]))
	if err != nil {
		t.Fatalf("failed to adapt reference signature: %v", err)
	}
	ok, err := VerifyDigest(pub, digest, refSig)
	if err != nil || !ok {
		t.Errorf("our verifier rejected the reference signature: ok=%v err=%v", ok, err)
	}
	if !sig.Equal(refSig) {
		t.Error("deterministic signatures disagree with reference")
	}
}

func TestVerifyRejectsMalleable(t *testing.T) {
	sk := mustSecretKey(t, big.NewInt(42))
	pub, err := sk.PubKey()
	if err != nil {
		t.Fatalf("PubKey failed: %v", err)
	}
	msg := []byte("canonical form only")
	sig := mustSign(t, sk, msg)
	twin := highSTwin(t, sig)

	if !twin.IsMalleable() {
		t.Fatal("twin should be malleable")
	}
	ok, err := Verify(pub, msg, twin)
	if ok {
		t.Error("malleable signature verified")
	}
	if !errors.Is(err, ErrMalleableSignature) {
		t.Errorf("want ErrMalleableSignature, got %v", err)
	}

	// The malleability check fires before the public key and digest checks.
	ok, err = VerifyDigest(NewPublicKey(IdentityPoint()), []byte("short"), twin)
	if ok || !errors.Is(err, ErrMalleableSignature) {
		t.Errorf("malleability should be checked first: ok=%v err=%v", ok, err)
	}
}

func TestVerifyRejectsBadInputs(t *testing.T) {
	sk := mustSecretKey(t, big.NewInt(42))
	pub, err := sk.PubKey()
	if err != nil {
		t.Fatalf("PubKey failed: %v", err)
	}
	msg := []byte("input validation")
	sig := mustSign(t, sk, msg)

	if ok, err := Verify(NewPublicKey(IdentityPoint()), msg, sig); ok || !errors.Is(err, ErrInvalidPublicKey) {
		t.Errorf("identity key: ok=%v err=%v", ok, err)
	}
	if ok, err := Verify(&PublicKey{}, msg, sig); ok || !errors.Is(err, ErrInvalidPublicKey) {
		t.Errorf("zero-value key: ok=%v err=%v", ok, err)
	}
	if ok, err := VerifyDigest(pub, make([]byte, 31), sig); ok || !errors.Is(err, ErrInvalidLength) {
		t.Errorf("short digest: ok=%v err=%v", ok, err)
	}
}

// TestVerifyRejectsCorruption flips every bit of the r and s components and
// checks no corrupted signature can verify.
func TestVerifyRejectsCorruption(t *testing.T) {
	sk := mustSecretKey(t, big.NewInt(0xACE))
	pub, err := sk.PubKey()
	if err != nil {
		t.Fatalf("PubKey failed: %v", err)
	}
	msg := []byte("bit flip resistance")
	good := mustSign(t, sk, msg).Serialize()

	// Byte 0 is the recovery indicator, which the plain verification
	// equation does not consume; corruption there is covered by the
	// recovery tests instead.
	for bit := 8; bit < SignatureLen*8; bit++ {
		mutated := append([]byte(nil), good...)
		mutated[bit/8] ^= 1 << (bit % 8)

		sig, err := ParseSignature(mutated)
		if err != nil {
			continue // corrupted into an unparseable component
		}
		ok, err := Verify(pub, msg, sig)
		if ok && err == nil {
			t.Fatalf("signature with bit %d flipped verified", bit)
		}
	}
}

func TestNewSignatureValidation(t *testing.T) {
	okScalar := big.NewInt(12345)

	if _, err := NewSignature(2, okScalar, okScalar); !errors.Is(err, ErrInvalidRecoveryBit) {
		t.Errorf("v=2: want ErrInvalidRecoveryBit, got %v", err)
	}
	for name, pair := range map[string][2]*big.Int{
		"zero r":    {new(big.Int), okScalar},
		"zero s":    {okScalar, new(big.Int)},
		"r = order": {new(big.Int).Set(N), okScalar},
		"s = order": {okScalar, new(big.Int).Set(N)},
	} {
		if _, err := NewSignature(0, pair[0], pair[1]); !errors.Is(err, ErrInvalidScalar) {
			t.Errorf("%s: want ErrInvalidScalar, got %v", name, err)
		}
	}

	// High-S values are representable; only verification refuses them.
	highS := new(big.Int).Add(halfN, big.NewInt(1))
	sig, err := NewSignature(1, okScalar, highS)
	if err != nil {
		t.Fatalf("high-S construction failed: %v", err)
	}
	if !sig.IsMalleable() {
		t.Error("s just above N/2 should be malleable")
	}
}

func TestIntoNonMalleable(t *testing.T) {
	sk := mustSecretKey(t, big.NewInt(77))
	sig := mustSign(t, sk, []byte("normalization"))
	twin := highSTwin(t, sig)

	normalized := twin.IntoNonMalleable()
	if !normalized.Equal(sig) {
		t.Error("normalizing the high-S twin should recover the original")
	}
	if !twin.IsMalleable() {
		t.Error("normalization must not modify the receiver")
	}
	if again := sig.IntoNonMalleable(); !again.Equal(sig) {
		t.Error("normalizing a canonical signature should be a no-op")
	}
}

func TestSignatureSerializeRoundTrip(t *testing.T) {
	sk := mustSecretKey(t, big.NewInt(0x5EED))
	sig := mustSign(t, sk, []byte("wire format"))

	parsed, err := ParseSignature(sig.Serialize())
	if err != nil {
		t.Fatalf("ParseSignature failed: %v", err)
	}
	if !sig.Equal(parsed) {
		t.Error("raw round trip changed the signature")
	}

	compact, err := sig.SerializeCompact()
	if err != nil {
		t.Fatalf("SerializeCompact failed: %v", err)
	}
	fromCompact, err := ParseCompactSignature(compact)
	if err != nil {
		t.Fatalf("ParseCompactSignature failed: %v", err)
	}
	if !sig.Equal(fromCompact) {
		t.Error("compact round trip changed the signature")
	}
	if sig.V() == 1 && compact[32]&0x80 == 0 {
		t.Error("compact form lost the recovery indicator")
	}

	// The high-S twin fits the raw form but not the compact one.
	twin := highSTwin(t, sig)
	if _, err := ParseSignature(twin.Serialize()); err != nil {
		t.Errorf("raw form should carry a high-S signature: %v", err)
	}
	if _, err := twin.SerializeCompact(); !errors.Is(err, ErrMalleableSignature) {
		t.Errorf("compact high-S: want ErrMalleableSignature, got %v", err)
	}
}

func TestParseSignatureErrors(t *testing.T) {
	for _, n := range []int{0, 64, 66} {
		if _, err := ParseSignature(make([]byte, n)); !errors.Is(err, ErrInvalidLength) {
			t.Errorf("raw len %d: want ErrInvalidLength, got %v", n, err)
		}
	}
	for _, n := range []int{0, 63, 65} {
		if _, err := ParseCompactSignature(make([]byte, n)); !errors.Is(err, ErrInvalidLength) {
			t.Errorf("compact len %d: want ErrInvalidLength, got %v", n, err)
		}
	}

	// Zero components fail even at the right length.
	if _, err := ParseSignature(make([]byte, SignatureLen)); !errors.Is(err, ErrInvalidScalar) {
		t.Errorf("all-zero raw signature: want ErrInvalidScalar, got %v", err)
	}
	if _, err := ParseCompactSignature(make([]byte, CompactSignatureLen)); !errors.Is(err, ErrInvalidScalar) {
		t.Errorf("all-zero compact signature: want ErrInvalidScalar, got %v", err)
	}
}

func TestHashMessage(t *testing.T) {
	// SHA-256("abc"), from FIPS 180-2.
	want, err := hexDecode("ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad")
	if err != nil {
		t.Fatalf("bad vector: %v", err)
	}
	if got := HashMessage([]byte("abc")); !bytes.Equal(got, want) {
		t.Errorf("digest mismatch: got %x, want %x", got, want)
	}
}
