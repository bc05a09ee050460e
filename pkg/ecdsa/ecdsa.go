// Package ecdsa implements the ECDSA key-generation, signing and
// verification procedures over curves described by curve.Params.
//
// Point coordinates are reduced modulo the field prime P; every scalar
// (private key d, ephemeral k, hash h, signature components r and s)
// is reduced modulo the group order N. The two moduli are never
// interchangeable.
//
// This is an educational implementation: arithmetic is not constant
// time and curve parameters are trusted unless the caller runs
// curve.Params.Validate first.
package ecdsa

import (
	"math/big"

	"github.com/smallyu/go-toy-ecdsa/internal/crypto/curve"
	"github.com/smallyu/go-toy-ecdsa/internal/crypto/field"
)

// maxSignAttempts bounds the degenerate-signature retry loop in Sign.
// Each retry requires r or s to come out exactly zero, so on any
// non-degenerate curve a handful of attempts already overshoots by
// orders of magnitude.
const maxSignAttempts = 256

// KeyPair holds a private scalar d in [1, N-1] and the matching public
// point Q = d*G. D must be kept secret; Q is derived from it.
type KeyPair struct {
	D *big.Int
	Q curve.Point
}

// Signature is an ECDSA signature. Both components are in [1, N-1].
type Signature struct {
	R *big.Int
	S *big.Int
}

// GenerateKey draws a private scalar from src and derives the public
// point. A nil src falls back to a time-seeded math/rand source.
func GenerateKey(c *curve.Params, src ScalarSource) (*KeyPair, error) {
	if src == nil {
		src = NewTimeSeededSource()
	}
	d, err := src.NewScalar(c.N)
	if err != nil {
		return nil, err
	}
	return &KeyPair{D: d, Q: c.ScalarBaseMult(d)}, nil
}

// Sign produces a signature over the hash value h with private key d.
// h is an integer in [1, N-1]; hashing the message down to that range
// is the caller's concern.
//
// Draws that produce a degenerate signature (R at infinity, r = 0 or
// s = 0) are retried with a fresh ephemeral scalar, up to
// maxSignAttempts; exhaustion returns ErrSigningExhausted.
func Sign(c *curve.Params, d, h *big.Int, src ScalarSource) (*Signature, error) {
	if src == nil {
		src = NewTimeSeededSource()
	}

	for attempt := 0; attempt < maxSignAttempts; attempt++ {
		k, err := src.NewScalar(c.N)
		if err != nil {
			return nil, err
		}

		R := c.ScalarBaseMult(k)
		if R.IsInfinity() {
			continue
		}

		r := new(big.Int).Mod(R.X, c.N)
		if r.Sign() == 0 {
			continue
		}

		kInv := field.Inverse(k, c.N)
		if kInv.Sign() == 0 {
			continue
		}

		// s = k^(-1) * (h + r*d) mod N
		s := field.Mul(kInv, field.Add(h, field.Mul(r, d, c.N), c.N), c.N)
		if s.Sign() == 0 {
			continue
		}

		return &Signature{R: r, S: s}, nil
	}

	return nil, ErrSigningExhausted
}

// Verify reports whether sig is a valid signature over h for the
// public point Q. Malformed signatures (r or s outside [1, N-1]) fail
// verification; no error is ever returned.
func Verify(c *curve.Params, Q curve.Point, sig *Signature, h *big.Int) bool {
	if sig == nil || sig.R == nil || sig.S == nil {
		return false
	}

	one := big.NewInt(1)
	if sig.R.Cmp(one) < 0 || sig.R.Cmp(c.N) >= 0 {
		return false
	}
	if sig.S.Cmp(one) < 0 || sig.S.Cmp(c.N) >= 0 {
		return false
	}

	w := field.Inverse(sig.S, c.N)
	if w.Sign() == 0 {
		return false
	}

	u1 := field.Mul(h, w, c.N)
	u2 := field.Mul(sig.R, w, c.N)

	// R' = u1*G + u2*Q
	R := c.Add(c.ScalarBaseMult(u1), c.ScalarMult(u2, Q))
	if R.IsInfinity() {
		return false
	}

	return new(big.Int).Mod(R.X, c.N).Cmp(sig.R) == 0
}
