package shor

import (
	"fmt"

	"github.com/alan-christopher/shor/go/shor/circuit"
)

// OrderFindingCircuit composes the full phase-estimation circuit for base a:
// a countingBits-qubit counting register in uniform superposition, the work
// register initialized to |1>, one controlled oracle application per
// counting qubit at geometrically increasing powers, the inverse Fourier
// transform over the counting register, and a terminal measurement of every
// counting qubit into its matching classical bit. Counting qubit q controls
// the oracle at power 2^q, so the imprinted phase accumulates little-endian
// across the register, matching the inverse transform's qubit ordering; the
// work register is never measured.
func OrderFindingCircuit(a, countingBits int) (circuit.Circuit, error) {
	if countingBits < 1 {
		return circuit.Circuit{}, fmt.Errorf("counting register needs at least one qubit, got %d", countingBits)
	}
	c := circuit.New(countingBits+workQubits, countingBits)
	for q := 0; q < countingBits; q++ {
		c.Append(circuit.HGate(q))
	}
	c.Append(circuit.XGate(countingBits)) // work register to |1>

	work := make([]int, workQubits)
	for i := range work {
		work[i] = countingBits + i
	}
	for q := 0; q < countingBits; q++ {
		u, err := ModExp(a, 1<<q)
		if err != nil {
			return circuit.Circuit{}, err
		}
		cu, err := circuit.Controlled(u)
		if err != nil {
			return circuit.Circuit{}, err
		}
		c, err = circuit.Compose(c, cu, append([]int{q}, work...))
		if err != nil {
			return circuit.Circuit{}, err
		}
	}

	counting := make([]int, countingBits)
	for q := range counting {
		counting[q] = q
	}
	c, err := circuit.Compose(c, InverseQFT(countingBits), counting)
	if err != nil {
		return circuit.Circuit{}, err
	}
	for q := 0; q < countingBits; q++ {
		c.Append(circuit.MeasureGate(q, q))
	}
	return c, nil
}
