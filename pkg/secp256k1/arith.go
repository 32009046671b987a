package secp256k1

import (
	"fmt"
	"math/big"
)

// ModInverse computes x⁻¹ mod P via Fermat's little theorem (x^(P-2) mod P).
// The input must be in the range [1, P-1]; anything else is a domain error.
func ModInverse(x *big.Int) (*big.Int, error) {
	if x.Sign() <= 0 {
		return nil, makeError(ErrArithmeticDomain,
			"modular inverse requires a positive input")
	}
	if x.Cmp(P) >= 0 {
		return nil, makeError(ErrArithmeticDomain,
			"modular inverse input exceeds the field prime")
	}
	exp := new(big.Int).Sub(P, big.NewInt(2))
	return new(big.Int).Exp(x, exp, P), nil
}

// IsModInversePair reports whether x·xInv ≡ 1 (mod P). Both inputs must be
// in the range [1, P-1]; out-of-domain inputs fail with an error rather than
// reporting false.
func IsModInversePair(x, xInv *big.Int) (bool, error) {
	for i, v := range []*big.Int{x, xInv} {
		if v.Sign() <= 0 || v.Cmp(P) >= 0 {
			return false, makeError(ErrArithmeticDomain,
				fmt.Sprintf("inverse pair operand %d is outside [1, P-1]", i))
		}
	}
	prod := new(big.Int).Mul(x, xInv)
	prod.Mod(prod, P)
	return prod.Cmp(one) == 0, nil
}

// sqrtModP returns a square root of v mod P, or nil when v is not a
// quadratic residue. P ≡ 3 (mod 4), so the root is v^((P+1)/4) mod P.
func sqrtModP(v *big.Int) *big.Int {
	root := new(big.Int).Exp(v, sqrtExp, P)
	check := new(big.Int).Mul(root, root)
	check.Mod(check, P)
	if check.Cmp(new(big.Int).Mod(v, P)) != 0 {
		return nil
	}
	return root
}

// curvePolynomial returns x³ + 7 mod P.
func curvePolynomial(x *big.Int) *big.Int {
	x3 := new(big.Int).Mul(x, x)
	x3.Mul(x3, x)
	x3.Add(x3, curveB)
	return x3.Mod(x3, P)
}
