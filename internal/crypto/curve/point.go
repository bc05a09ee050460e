package curve

import (
	"fmt"
	"math/big"

	"github.com/smallyu/go-toy-ecdsa/internal/crypto/field"
)

// Point is an immutable curve point: either an affine (X, Y) pair or
// the point at infinity, the identity of the group. Operations return
// fresh points and never mutate their operands.
type Point struct {
	X, Y *big.Int
	inf  bool
}

// Infinity returns the point at infinity.
func Infinity() Point {
	return Point{inf: true}
}

// NewPoint returns the affine point (x, y). The coordinates are copied.
func NewPoint(x, y *big.Int) Point {
	return Point{
		X: new(big.Int).Set(x),
		Y: new(big.Int).Set(y),
	}
}

// IsInfinity reports whether p is the point at infinity.
func (p Point) IsInfinity() bool {
	return p.inf
}

// Equal reports whether two points are the same group element.
func (p Point) Equal(q Point) bool {
	if p.inf || q.inf {
		return p.inf == q.inf
	}
	return p.X.Cmp(q.X) == 0 && p.Y.Cmp(q.Y) == 0
}

func (p Point) String() string {
	if p.inf {
		return "(infinity)"
	}
	return fmt.Sprintf("(%s, %s)", p.X, p.Y)
}

// Negate returns -pt, the reflection (x, p-y). Infinity is its own
// negation.
func (c *Params) Negate(pt Point) Point {
	if pt.IsInfinity() {
		return Infinity()
	}
	return NewPoint(pt.X, field.Sub(big.NewInt(0), pt.Y, c.P))
}

// Add computes the group law p + q.
func (c *Params) Add(p, q Point) Point {
	if p.IsInfinity() {
		return q
	}
	if q.IsInfinity() {
		return p
	}

	if p.X.Cmp(q.X) == 0 {
		// Same x-coordinate: either an inverse pair or the same point.
		if p.Y.Cmp(field.Sub(big.NewInt(0), q.Y, c.P)) == 0 {
			return Infinity()
		}
		return c.Double(p)
	}

	// Chord case: lambda = (y2 - y1) / (x2 - x1).
	lambda := field.Div(
		field.Sub(q.Y, p.Y, c.P),
		field.Sub(q.X, p.X, c.P),
		c.P,
	)
	x3 := field.Sub(field.Sub(field.Mul(lambda, lambda, c.P), p.X, c.P), q.X, c.P)
	y3 := field.Sub(field.Mul(lambda, field.Sub(p.X, x3, c.P), c.P), p.Y, c.P)
	return NewPoint(x3, y3)
}

// Double computes p + p via the tangent line. A point with y = 0 has a
// vertical tangent and doubles to infinity.
func (c *Params) Double(p Point) Point {
	if p.IsInfinity() {
		return Infinity()
	}
	if p.Y.Sign() == 0 {
		return Infinity()
	}

	// lambda = (3x² + a) / (2y)
	lambda := field.Div(
		field.Add(field.Mul(big.NewInt(3), field.Mul(p.X, p.X, c.P), c.P), c.A, c.P),
		field.Mul(big.NewInt(2), p.Y, c.P),
		c.P,
	)
	x3 := field.Sub(field.Mul(lambda, lambda, c.P), field.Mul(big.NewInt(2), p.X, c.P), c.P)
	y3 := field.Sub(field.Mul(lambda, field.Sub(p.X, x3, c.P), c.P), p.Y, c.P)
	return NewPoint(x3, y3)
}

// ScalarMult computes k·pt by double-and-add over the bits of k,
// O(log k) point operations. k = 0 yields infinity; negative k
// multiplies the negated point by |k|.
func (c *Params) ScalarMult(k *big.Int, pt Point) Point {
	if pt.IsInfinity() || k.Sign() == 0 {
		return Infinity()
	}

	kk := k
	if k.Sign() < 0 {
		kk = new(big.Int).Neg(k)
		pt = c.Negate(pt)
	}

	result := Infinity()
	addend := pt
	for i := 0; i < kk.BitLen(); i++ {
		if kk.Bit(i) == 1 {
			result = c.Add(result, addend)
		}
		addend = c.Double(addend)
	}
	return result
}

// ScalarBaseMult computes k·G for the curve's base point.
func (c *Params) ScalarBaseMult(k *big.Int) Point {
	return c.ScalarMult(k, c.Generator())
}
