package curve

import (
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// Secp256k1 returns the production secp256k1 parameters as a generic
// descriptor, sourced from the decred implementation. The generic
// algebra here is orders of magnitude slower than decred's and leaks
// timing; the preset exists so the two can be compared on the same
// inputs.
func Secp256k1() *Params {
	p := secp256k1.S256().Params()
	return &Params{
		Name: "secp256k1",
		P:    new(big.Int).Set(p.P),
		N:    new(big.Int).Set(p.N),
		A:    big.NewInt(0),
		B:    new(big.Int).Set(p.B),
		Gx:   new(big.Int).Set(p.Gx),
		Gy:   new(big.Int).Set(p.Gy),
	}
}

// Tiny43 returns the 43-element test curve y² = x³ + 7 over GF(43)
// with base point (25, 25) of order 31. Small enough to enumerate by
// hand, which makes it the default curve for examples and tests.
func Tiny43() *Params {
	c := KoblitzParams(big.NewInt(43), big.NewInt(31), big.NewInt(25), big.NewInt(25))
	c.Name = "tiny43"
	return c
}
