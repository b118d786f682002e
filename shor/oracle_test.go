package shor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alan-christopher/shor/go/shor/circuit"
)

var admissibleBases = []int{2, 4, 7, 8, 11, 13}

// applyPermutation classically evaluates an X/Swap permutation circuit on a
// single basis state.
func applyPermutation(t *testing.T, c circuit.Circuit, x int) int {
	t.Helper()
	for _, g := range c.Gates() {
		require.Empty(t, g.Controls, "oracle gates must be unconditioned")
		switch g.Kind {
		case circuit.X:
			x ^= 1 << g.Targets[0]
		case circuit.Swap:
			a, b := g.Targets[0], g.Targets[1]
			if x>>a&1 != x>>b&1 {
				x ^= 1<<a | 1<<b
			}
		default:
			t.Fatalf("oracle contains non-permutation gate %v", g.Kind)
		}
	}
	return x
}

// order returns the multiplicative order of a modulo 15.
func order(a int) int {
	r, v := 1, a%Modulus
	for v != 1 {
		v = v * a % Modulus
		r++
	}
	return r
}

func TestModExpIdentityAtOrder(t *testing.T) {
	for _, a := range admissibleBases {
		c, err := ModExp(a, 1)
		require.NoError(t, err)
		ord := order(a)
		for x := 0; x < 1<<workQubits; x++ {
			y := x
			for i := 0; i < ord; i++ {
				y = applyPermutation(t, c, y)
			}
			assert.Equal(t, x, y, "base %d composed %d times on state %d", a, ord, x)
		}
	}
}

func TestModExpIsModularMultiplication(t *testing.T) {
	// The permutation must act as multiplication by a fixed unit of Z/15 on
	// every residue 1..14.
	for _, a := range admissibleBases {
		c, err := ModExp(a, 1)
		require.NoError(t, err)
		mult := applyPermutation(t, c, 1)
		require.Equal(t, 1, gcd(mult, Modulus), "base %d acts by multiplying with %d", a, mult)
		for x := 1; x < Modulus; x++ {
			assert.Equal(t, mult*x%Modulus, applyPermutation(t, c, x),
				"base %d on residue %d", a, x)
		}
	}
}

func TestModExpPowerIsSelfComposition(t *testing.T) {
	for _, a := range []int{2, 7, 11} {
		single, err := ModExp(a, 1)
		require.NoError(t, err)
		cubed, err := ModExp(a, 3)
		require.NoError(t, err)
		require.Equal(t, 3*single.Len(), cubed.Len())
		for x := 0; x < 1<<workQubits; x++ {
			y := x
			for i := 0; i < 3; i++ {
				y = applyPermutation(t, single, y)
			}
			assert.Equal(t, y, applyPermutation(t, cubed, x), "base %d on state %d", a, x)
		}
	}
}

func TestModExpRejectsUnsupportedBase(t *testing.T) {
	for _, a := range []int{0, 1, 3, 5, 6, 9, 10, 12, 14, 15, 16} {
		_, err := ModExp(a, 1)
		assert.ErrorIs(t, err, ErrUnsupportedBase, "base %d", a)
	}
}

func TestModExpRejectsNonPositivePower(t *testing.T) {
	for _, power := range []int{0, -1} {
		_, err := ModExp(7, power)
		require.Error(t, err)
		assert.False(t, errors.Is(err, ErrUnsupportedBase))
	}
}
