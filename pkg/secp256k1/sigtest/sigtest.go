// Package sigtest provides deliberately unsafe signature transforms for
// building negative-test fixtures. Nothing here is imported by the
// production signing or verification paths; keeping the high-S transform out
// of the main package prevents it from being reached by accident.
package sigtest

import (
	"math/big"

	"github.com/curvekit/secp256k1/pkg/secp256k1"
)

// IntoMalleable returns the high-S twin of a canonical signature: s is
// replaced by N-s and the recovery indicator flipped. Verification must
// reject the result with ErrMalleableSignature, which is exactly what tests
// use it to prove. Applying it to an already malleable signature returns the
// canonical form again.
func IntoMalleable(sig *secp256k1.Signature) *secp256k1.Signature {
	s := new(big.Int).Sub(secp256k1.N, sig.S())
	twin, err := secp256k1.NewSignature(sig.V()^1, sig.R(), s)
	if err != nil {
		// N-s stays in [1, N-1] for any valid signature, so this is
		// unreachable for inputs built by the main package.
		panic("sigtest: malleable twin construction failed: " + err.Error())
	}
	return twin
}

// FlipBit returns a copy of buf with the given bit (big-endian bit order
// within each byte) inverted. Tests use it to corrupt serialized signatures
// and keys one bit at a time.
func FlipBit(buf []byte, bit int) []byte {
	out := make([]byte, len(buf))
	copy(out, buf)
	out[bit/8] ^= 0x80 >> (bit % 8)
	return out
}
