package benchmark

import (
	"math/big"
	"testing"

	"github.com/smallyu/go-toy-ecdsa/internal/crypto/curve"
	"github.com/smallyu/go-toy-ecdsa/pkg/ecdsa"
)

func BenchmarkScalarMultTiny(b *testing.B) {
	c := curve.Tiny43()
	k := big.NewInt(17)
	g := c.Generator()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.ScalarMult(k, g)
	}
}

func BenchmarkScalarMultSecp256k1(b *testing.B) {
	c := curve.Secp256k1()
	k, _ := new(big.Int).SetString("deadbeefdeadbeefdeadbeefdeadbeefdeadbeefdeadbeefdeadbeefdeadbeef", 16)
	g := c.Generator()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.ScalarMult(k, g)
	}
}

func BenchmarkSign(b *testing.B) {
	c := curve.Tiny43()
	src := ecdsa.NewMathRandSource(1)
	d := big.NewInt(16)
	h := big.NewInt(30)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ecdsa.Sign(c, d, h, src); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkVerify(b *testing.B) {
	c := curve.Tiny43()
	Q := c.ScalarBaseMult(big.NewInt(16))
	sig := &ecdsa.Signature{R: big.NewInt(12), S: big.NewInt(24)}
	h := big.NewInt(30)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !ecdsa.Verify(c, Q, sig, h) {
			b.Fatal("valid signature rejected")
		}
	}
}
