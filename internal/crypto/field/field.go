// Package field implements modular arithmetic over a prime modulus p.
//
// Every operation takes the modulus explicitly and returns a fresh
// *big.Int normalized into [0, p-1]. The modulus is trusted to be an odd
// prime; nothing here verifies that.
package field

import "math/big"

var one = big.NewInt(1)

// Add computes (a + b) mod p.
func Add(a, b, p *big.Int) *big.Int {
	r := new(big.Int).Add(a, b)
	return r.Mod(r, p)
}

// Sub computes (a - b) mod p, normalized into [0, p-1].
func Sub(a, b, p *big.Int) *big.Int {
	r := new(big.Int).Sub(a, b)
	return r.Mod(r, p)
}

// Mul computes (a * b) mod p.
func Mul(a, b, p *big.Int) *big.Int {
	r := new(big.Int).Mul(a, b)
	return r.Mod(r, p)
}

// Pow computes base^exp mod p by square-and-multiply, O(log exp)
// multiplications. exp must be non-negative.
func Pow(base, exp, p *big.Int) *big.Int {
	result := big.NewInt(1)
	b := new(big.Int).Mod(base, p)
	for i := exp.BitLen() - 1; i >= 0; i-- {
		result.Mul(result, result).Mod(result, p)
		if exp.Bit(i) == 1 {
			result.Mul(result, b).Mod(result, p)
		}
	}
	return result
}

// Inverse computes the multiplicative inverse of a mod p using the
// extended Euclidean algorithm. Returns 0 when no inverse exists,
// i.e. gcd(a, p) != 1 — including a ≡ 0 (mod p).
func Inverse(a, p *big.Int) *big.Int {
	r0 := new(big.Int).Mod(a, p)
	if r0.Sign() == 0 {
		return big.NewInt(0)
	}

	// Iterative extended gcd: track r_i and the Bezout coefficient of a.
	r1 := new(big.Int).Set(p)
	s0, s1 := big.NewInt(1), big.NewInt(0)
	for r1.Sign() != 0 {
		q, rem := new(big.Int).QuoRem(r0, r1, new(big.Int))
		r0, r1 = r1, rem
		s0, s1 = s1, new(big.Int).Sub(s0, q.Mul(q, s1))
	}

	if r0.Cmp(one) != 0 {
		return big.NewInt(0) // no inverse exists
	}
	return s0.Mod(s0, p)
}

// Div computes a / b mod p as a * b^(-1). The result is meaningless
// when b has no inverse mod p; callers are expected to rule that out.
func Div(a, b, p *big.Int) *big.Int {
	return Mul(a, Inverse(b, p), p)
}
