package secp256k1

import "math/big"

// Point is an affine point on the secp256k1 curve, or the group identity
// (the point at infinity). The identity is carried as an explicit tag rather
// than a magic coordinate pair, so it can never collide with a genuine curve
// point, and the all-zero pair (0,0) remains representable as the invalid
// point it is.
//
// Points are immutable once constructed; all methods return fresh values.
type Point struct {
	x, y     *big.Int
	identity bool
}

// NewPoint constructs an affine point from the given coordinates. The
// coordinates are copied. No on-curve validation is performed; use IsOnCurve.
func NewPoint(x, y *big.Int) Point {
	return Point{x: new(big.Int).Set(x), y: new(big.Int).Set(y)}
}

// IdentityPoint returns the group identity (the point at infinity).
func IdentityPoint() Point {
	return Point{identity: true}
}

// IsIdentity reports whether the point is the group identity.
func (p Point) IsIdentity() bool {
	return p.identity
}

// Coords returns copies of the affine coordinates. It must not be called on
// the identity, which has no affine coordinates; callers check IsIdentity
// first.
func (p Point) Coords() (x, y *big.Int) {
	if p.identity {
		panic("secp256k1: identity point has no affine coordinates")
	}
	return new(big.Int).Set(p.x), new(big.Int).Set(p.y)
}

// Equal reports whether two points are the same group element.
func (p Point) Equal(q Point) bool {
	if p.identity || q.identity {
		return p.identity == q.identity
	}
	return p.x.Cmp(q.x) == 0 && p.y.Cmp(q.y) == 0
}

// IsOnCurve reports whether the point satisfies the curve equation
// y² = x³ + 7 (mod P). The identity is a member of the group and reports
// true. The all-zero pair (0,0) does not satisfy the equation and reports
// false, which makes it usable as a detector for uninitialized memory.
// Coordinates outside [0, P-1] are rejected as well.
func (p Point) IsOnCurve() bool {
	if p.identity {
		return true
	}
	if p.x == nil || p.y == nil {
		return false
	}
	if p.x.Sign() < 0 || p.y.Sign() < 0 || p.x.Cmp(P) >= 0 || p.y.Cmp(P) >= 0 {
		return false
	}
	y2 := new(big.Int).Mul(p.y, p.y)
	y2.Mod(y2, P)
	return y2.Cmp(curvePolynomial(p.x)) == 0
}

// YParity returns 0 when the y coordinate is even and 1 when it is odd. It
// is used for compressed encodings and recovery indicators, not for any
// cryptographic conditioning. The identity has no y coordinate and reports 0.
func (p Point) YParity() byte {
	if p.identity {
		return 0
	}
	return byte(p.y.Bit(0))
}
