package curve

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentityLaws(t *testing.T) {
	c := Tiny43()
	g := c.Generator()

	// P + O = P and O + P = P.
	assert.True(t, c.Add(g, Infinity()).Equal(g))
	assert.True(t, c.Add(Infinity(), g).Equal(g))

	// P + (-P) = O.
	assert.True(t, c.Add(g, c.Negate(g)).IsInfinity())

	// O doubles and negates to itself.
	assert.True(t, c.Double(Infinity()).IsInfinity())
	assert.True(t, c.Negate(Infinity()).IsInfinity())

	// O + O = O.
	assert.True(t, c.Add(Infinity(), Infinity()).IsInfinity())
}

func TestDouble(t *testing.T) {
	c := Tiny43()

	// 2G on the 43-element curve, computed by hand from the tangent law.
	twoG := c.Double(c.Generator())
	assert.True(t, twoG.Equal(NewPoint(big.NewInt(34), big.NewInt(3))))

	// Doubling a point with y = 0 hits a vertical tangent.
	assert.True(t, c.Double(Point{X: big.NewInt(5), Y: big.NewInt(0)}).IsInfinity())
}

func TestAddKeepsPointsOnCurve(t *testing.T) {
	c := Tiny43()
	g := c.Generator()

	p := g
	for i := 2; i <= 31; i++ {
		p = c.Add(p, g)
		require.True(t, c.IsOnCurve(p), "%d*G = %s left the curve", i, p)
	}
	// 31 is the order of G.
	assert.True(t, p.IsInfinity())
}

func TestScalarMultMatchesRepeatedAdd(t *testing.T) {
	c := Tiny43()
	g := c.Generator()

	acc := Infinity()
	for k := int64(0); k <= 20; k++ {
		got := c.ScalarMult(big.NewInt(k), g)
		require.True(t, got.Equal(acc), "k=%d: ScalarMult %s, repeated add %s", k, got, acc)
		acc = c.Add(acc, g)
	}
}

func TestScalarMultEdgeCases(t *testing.T) {
	c := Tiny43()
	g := c.Generator()

	assert.True(t, c.ScalarMult(big.NewInt(0), g).IsInfinity())
	assert.True(t, c.ScalarMult(big.NewInt(5), Infinity()).IsInfinity())

	// Known multiples on the test curve: 16*G and 17*G.
	assert.True(t, c.ScalarBaseMult(big.NewInt(16)).Equal(NewPoint(big.NewInt(37), big.NewInt(36))))
	assert.True(t, c.ScalarBaseMult(big.NewInt(17)).Equal(NewPoint(big.NewInt(12), big.NewInt(12))))

	// Scalars wrap at the group order: (n+1)*G = G.
	assert.True(t, c.ScalarBaseMult(big.NewInt(32)).Equal(g))

	// -k*P = k*(-P).
	minus3 := c.ScalarMult(big.NewInt(-3), g)
	assert.True(t, minus3.Equal(c.ScalarMult(big.NewInt(3), c.Negate(g))))
	// k*P + (-k*P) = O.
	assert.True(t, c.Add(c.ScalarMult(big.NewInt(3), g), minus3).IsInfinity())
}

func TestNegate(t *testing.T) {
	c := Tiny43()
	g := c.Generator()

	neg := c.Negate(g)
	assert.Equal(t, big.NewInt(25), neg.X)
	assert.Equal(t, big.NewInt(18), neg.Y) // 43 - 25

	// Negation is an involution.
	assert.True(t, c.Negate(neg).Equal(g))
	assert.True(t, c.IsOnCurve(neg))
}

func TestPointString(t *testing.T) {
	assert.Equal(t, "(infinity)", Infinity().String())
	assert.Equal(t, "(25, 25)", NewPoint(big.NewInt(25), big.NewInt(25)).String())
}
