package secp256k1

import "math/big"

// Domain parameters for the secp256k1 curve y² = x³ + 7 over GF(P).
// See https://www.secg.org/sec2-v2.pdf, section 2.4.1.
var (
	// P is the prime of the field the curve is defined over.
	P = hexToBig("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFC2F")

	// N is the order of the group generated by the base point.
	N = hexToBig("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364141")

	// Gx and Gy are the coordinates of the base point G.
	Gx = hexToBig("79BE667EF9DCBBAC55A06295CE870B07029BFCDB2DCE28D959F2815B16F81798")
	Gy = hexToBig("483ADA7726A3C4655DA4FBFC0E1108A8FD17B448A68554199C47D08FFB10D4B8")

	// curveB is the constant term of the curve equation.
	curveB = big.NewInt(7)

	// halfN is N/2, the threshold above which a signature S component is
	// considered malleable.
	halfN = new(big.Int).Rsh(N, 1)

	// sqrtExp is (P+1)/4. Since P ≡ 3 (mod 4), raising a quadratic residue
	// to this power yields one of its square roots mod P.
	sqrtExp = new(big.Int).Rsh(new(big.Int).Add(P, big.NewInt(1)), 2)

	one = big.NewInt(1)
)

// hexToBig parses a big-endian hex string. It is only used for hardcoded
// constants, so errors in the source code can be detected by panicking.
func hexToBig(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("secp256k1: invalid hex constant " + s)
	}
	return v
}

// Generator returns the base point G of the curve group.
func Generator() Point {
	return NewPoint(Gx, Gy)
}
