// Package curve implements affine point algebra on short-Weierstrass
// curves y² = x³ + ax + b over caller-supplied prime fields.
//
// The arithmetic is generic big.Int math with no constant-time
// guarantees. Parameters are trusted by default; Validate offers an
// explicit opt-in check for callers that want one.
package curve

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/smallyu/go-toy-ecdsa/internal/crypto/field"
)

// ErrInvalidParams reports a curve descriptor that failed Validate.
var ErrInvalidParams = errors.New("invalid curve parameters")

// Params describes a curve y² = x³ + Ax + B over GF(P) together with a
// base point G of order N. The descriptor is treated as immutable once
// constructed.
type Params struct {
	Name string
	P    *big.Int // field modulus for point coordinates
	N    *big.Int // order of the base point; all scalar math is mod N
	A    *big.Int
	B    *big.Int
	Gx   *big.Int
	Gy   *big.Int
}

// NewParams builds a descriptor for an arbitrary short-Weierstrass curve.
func NewParams(name string, p, n, a, b, gx, gy *big.Int) *Params {
	return &Params{
		Name: name,
		P:    new(big.Int).Set(p),
		N:    new(big.Int).Set(n),
		A:    new(big.Int).Set(a),
		B:    new(big.Int).Set(b),
		Gx:   new(big.Int).Set(gx),
		Gy:   new(big.Int).Set(gy),
	}
}

// KoblitzParams builds a descriptor for a curve in the secp256k1 family
// (a=0, b=7) over a caller-supplied field. This is the shape the CLI
// exposes: only p, n and the base point vary.
func KoblitzParams(p, n, gx, gy *big.Int) *Params {
	return NewParams("", p, n, big.NewInt(0), big.NewInt(7), gx, gy)
}

// Generator returns the base point G as a Point.
func (c *Params) Generator() Point {
	return NewPoint(c.Gx, c.Gy)
}

// Polynomial evaluates x³ + Ax + B mod P.
func (c *Params) Polynomial(x *big.Int) *big.Int {
	x3 := field.Mul(field.Mul(x, x, c.P), x, c.P)
	ax := field.Mul(c.A, x, c.P)
	return field.Add(field.Add(x3, ax, c.P), c.B, c.P)
}

// IsOnCurve reports whether pt satisfies the curve equation. The point
// at infinity is on every curve.
func (c *Params) IsOnCurve(pt Point) bool {
	if pt.IsInfinity() {
		return true
	}
	y2 := field.Mul(pt.Y, pt.Y, c.P)
	return y2.Cmp(c.Polynomial(pt.X)) == 0
}

// Validate checks the invariants the rest of the package otherwise
// trusts: P is an odd probable prime, N is at least 2, G lies on the
// curve and N·G is the identity. It is never invoked implicitly; the
// arithmetic stays permissive for callers that skip it.
func (c *Params) Validate() error {
	if c.P == nil || c.N == nil || c.A == nil || c.B == nil || c.Gx == nil || c.Gy == nil {
		return fmt.Errorf("%w: missing field", ErrInvalidParams)
	}
	if c.P.Cmp(big.NewInt(3)) < 0 || c.P.Bit(0) == 0 {
		return fmt.Errorf("%w: p must be an odd integer > 2", ErrInvalidParams)
	}
	if !c.P.ProbablyPrime(32) {
		return fmt.Errorf("%w: p is not prime", ErrInvalidParams)
	}
	if c.N.Cmp(big.NewInt(2)) < 0 {
		return fmt.Errorf("%w: order n must be at least 2", ErrInvalidParams)
	}
	g := c.Generator()
	if !c.IsOnCurve(g) {
		return fmt.Errorf("%w: base point is not on the curve", ErrInvalidParams)
	}
	if !c.ScalarMult(c.N, g).IsInfinity() {
		return fmt.Errorf("%w: n is not the order of the base point", ErrInvalidParams)
	}
	return nil
}
