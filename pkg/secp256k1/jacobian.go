package secp256k1

import "math/big"

// JacobianPoint is a curve point in Jacobian projective coordinates: the
// affine point it represents is (X/Z², Y/Z³). The identity is the canonical
// triple (0, 1, 0); any point with Z == 0 is treated as the identity.
//
// Jacobian points are transient values used inside addition chains to avoid
// a modular inversion per step. They are never serialized.
type JacobianPoint struct {
	X, Y, Z *big.Int
}

// jacobianIdentity returns the canonical projective identity (0, 1, 0).
func jacobianIdentity() JacobianPoint {
	return JacobianPoint{
		X: new(big.Int),
		Y: big.NewInt(1),
		Z: new(big.Int),
	}
}

// IsIdentity reports whether the point is the group identity.
func (jp JacobianPoint) IsIdentity() bool {
	return jp.Z.Sign() == 0
}

// ToJacobian lifts an affine point into Jacobian coordinates: (x, y, 1) for
// ordinary points and (0, 1, 0) for the identity.
func (p Point) ToJacobian() JacobianPoint {
	if p.identity {
		return jacobianIdentity()
	}
	return JacobianPoint{
		X: new(big.Int).Set(p.x),
		Y: new(big.Int).Set(p.y),
		Z: big.NewInt(1),
	}
}

// ToAffine normalizes the point back to affine coordinates by scaling with
// Z⁻² and Z⁻³. A zero Z denotes the identity and is returned as the affine
// identity sentinel without ever attempting to invert zero.
func (jp JacobianPoint) ToAffine() Point {
	if jp.Z.Sign() == 0 {
		return IdentityPoint()
	}
	// Z is a product of field elements and stays in [1, P-1], so the
	// inversion cannot fail.
	zInv, err := ModInverse(new(big.Int).Mod(jp.Z, P))
	if err != nil {
		panic("secp256k1: non-invertible Z coordinate: " + err.Error())
	}
	zInv2 := new(big.Int).Mul(zInv, zInv)
	zInv2.Mod(zInv2, P)

	x := new(big.Int).Mul(jp.X, zInv2)
	x.Mod(x, P)

	zInv3 := zInv2.Mul(zInv2, zInv)
	zInv3.Mod(zInv3, P)
	y := new(big.Int).Mul(jp.Y, zInv3)
	y.Mod(y, P)

	return Point{x: x, y: y}
}

// addJacobian computes p1 + p2 using the general Jacobian addition formula
// (add-2007-bl). The formula is undefined when both operands represent the
// same group element; that case is detected and reported via the second
// return value with an unusable sum.
func addJacobian(p1, p2 JacobianPoint) (JacobianPoint, bool) {
	// The identity is absorbing under addition.
	if p1.Z.Sign() == 0 {
		return JacobianPoint{
			X: new(big.Int).Set(p2.X),
			Y: new(big.Int).Set(p2.Y),
			Z: new(big.Int).Set(p2.Z),
		}, false
	}
	if p2.Z.Sign() == 0 {
		return JacobianPoint{
			X: new(big.Int).Set(p1.X),
			Y: new(big.Int).Set(p1.Y),
			Z: new(big.Int).Set(p1.Z),
		}, false
	}

	z1z1 := new(big.Int).Mul(p1.Z, p1.Z)
	z1z1.Mod(z1z1, P)
	z2z2 := new(big.Int).Mul(p2.Z, p2.Z)
	z2z2.Mod(z2z2, P)

	u1 := new(big.Int).Mul(p1.X, z2z2)
	u1.Mod(u1, P)
	u2 := new(big.Int).Mul(p2.X, z1z1)
	u2.Mod(u2, P)
	h := new(big.Int).Sub(u2, u1)
	if h.Sign() == -1 {
		h.Add(h, P)
	}
	xEqual := h.Sign() == 0

	s1 := new(big.Int).Mul(p1.Y, p2.Z)
	s1.Mul(s1, z2z2)
	s1.Mod(s1, P)
	s2 := new(big.Int).Mul(p2.Y, p1.Z)
	s2.Mul(s2, z1z1)
	s2.Mod(s2, P)
	r := new(big.Int).Sub(s2, s1)
	if r.Sign() == -1 {
		r.Add(r, P)
	}
	yEqual := r.Sign() == 0

	if xEqual && yEqual {
		// Same group element; the general formula degenerates here.
		return JacobianPoint{}, true
	}
	if xEqual {
		// p2 is the negation of p1, so the sum is the identity.
		return jacobianIdentity(), false
	}

	i := new(big.Int).Lsh(h, 1)
	i.Mul(i, i)
	j := new(big.Int).Mul(h, i)
	r.Lsh(r, 1)
	v := new(big.Int).Mul(u1, i)

	x3 := new(big.Int).Mul(r, r)
	x3.Sub(x3, j)
	x3.Sub(x3, v)
	x3.Sub(x3, v)
	x3.Mod(x3, P)

	y3 := new(big.Int).Sub(v, x3)
	y3.Mul(y3, r)
	s1.Mul(s1, j)
	s1.Lsh(s1, 1)
	y3.Sub(y3, s1)
	y3.Mod(y3, P)

	z3 := new(big.Int).Add(p1.Z, p2.Z)
	z3.Mul(z3, z3)
	z3.Sub(z3, z1z1)
	z3.Sub(z3, z2z2)
	z3.Mul(z3, h)
	z3.Mod(z3, P)

	return JacobianPoint{X: x3, Y: y3, Z: z3}, false
}

// Add returns p1 + p2 using the general Jacobian addition formula. The
// formula is not valid when both operands represent the same group element;
// routing equal points through Add instead of Double is a programming error,
// so it panics rather than silently producing a wrong sum.
func Add(p1, p2 JacobianPoint) JacobianPoint {
	sum, equal := addJacobian(p1, p2)
	if equal {
		panic("secp256k1: Add called with two representations of the same point; use Double")
	}
	return sum
}

// addUnified returns p1 + p2, routing the equal-point case through Double.
// It backs the scalar multiplication and verification chains where operand
// equality is data dependent rather than a caller bug.
func addUnified(p1, p2 JacobianPoint) JacobianPoint {
	sum, equal := addJacobian(p1, p2)
	if equal {
		return Double(p1)
	}
	return sum
}

// Double returns 2·p. Unlike Add it is valid for every input, including the
// identity, which doubles to itself.
func Double(p JacobianPoint) JacobianPoint {
	if p.Z.Sign() == 0 {
		return jacobianIdentity()
	}

	// dbl-2009-l specialized for a = 0: alpha = 3·X².
	gamma := new(big.Int).Mul(p.Y, p.Y)
	gamma.Mod(gamma, P)

	x2 := new(big.Int).Mul(p.X, p.X)
	alpha := new(big.Int).Lsh(x2, 1)
	alpha.Add(alpha, x2)
	alpha.Mod(alpha, P)

	beta4 := new(big.Int).Mul(p.X, gamma)
	beta4.Lsh(beta4, 2)
	beta4.Mod(beta4, P)

	x3 := new(big.Int).Mul(alpha, alpha)
	beta8 := new(big.Int).Lsh(beta4, 1)
	x3.Sub(x3, beta8)
	x3.Mod(x3, P)

	z3 := new(big.Int).Mul(p.Y, p.Z)
	z3.Lsh(z3, 1)
	z3.Mod(z3, P)

	y3 := new(big.Int).Sub(beta4, x3)
	y3.Mul(y3, alpha)
	gamma.Mul(gamma, gamma)
	gamma.Lsh(gamma, 3)
	y3.Sub(y3, gamma)
	y3.Mod(y3, P)

	return JacobianPoint{X: x3, Y: y3, Z: z3}
}

// ScalarMult returns k·p computed with a plain double-and-add chain over the
// bits of k reduced mod N. The identity is absorbing: multiplying it, or
// multiplying any point by zero, yields the identity.
func ScalarMult(p Point, k *big.Int) Point {
	kRed := new(big.Int).Mod(k, N)
	if kRed.Sign() == 0 || p.IsIdentity() {
		return IdentityPoint()
	}

	base := p.ToJacobian()
	acc := jacobianIdentity()
	for i := kRed.BitLen() - 1; i >= 0; i-- {
		acc = Double(acc)
		if kRed.Bit(i) == 1 {
			acc = addUnified(acc, base)
		}
	}
	return acc.ToAffine()
}

// ScalarBaseMult returns k·G.
func ScalarBaseMult(k *big.Int) Point {
	return ScalarMult(Generator(), k)
}
