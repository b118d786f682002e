package shor

import (
	"errors"
	"fmt"

	"github.com/alan-christopher/shor/go/shor/circuit"
)

// Modulus is the modulus the oracle's permutation networks are derived for.
// The work register is sized to hold values modulo it.
const Modulus = 15

// workQubits is the size of the work register: four qubits hold any residue
// modulo 15.
const workQubits = 4

// ErrUnsupportedBase is returned when the oracle is asked for a base whose
// action modulo 15 has no hand-derived swap-network decomposition.
var ErrUnsupportedBase = errors.New("unsupported base")

// ModExp returns a circuit over the four-qubit work register implementing
// the permutation x -> (a^power * x) mod 15. The construction is algebraic:
// each admissible base's action decomposes into a fixed qubit swap network,
// optionally followed by a bitwise complement, and the power is realized by
// repeating that pattern. Bases outside {2, 4, 7, 8, 11, 13} are rejected.
func ModExp(a, power int) (circuit.Circuit, error) {
	switch a {
	case 2, 4, 7, 8, 11, 13:
	default:
		return circuit.Circuit{}, fmt.Errorf("%w: %d is not in {2, 4, 7, 8, 11, 13}", ErrUnsupportedBase, a)
	}
	if power < 1 {
		return circuit.Circuit{}, fmt.Errorf("power must be positive, got %d", power)
	}
	c := circuit.New(workQubits, 0)
	for i := 0; i < power; i++ {
		switch a {
		case 2, 13:
			c.Append(circuit.SwapGate(0, 1), circuit.SwapGate(1, 2), circuit.SwapGate(2, 3))
		case 7, 8:
			c.Append(circuit.SwapGate(2, 3), circuit.SwapGate(1, 2), circuit.SwapGate(0, 1))
		case 4, 11:
			c.Append(circuit.SwapGate(1, 3), circuit.SwapGate(0, 2))
		}
		switch a {
		case 7, 11, 13:
			for q := 0; q < workQubits; q++ {
				c.Append(circuit.XGate(q))
			}
		}
	}
	return c, nil
}
