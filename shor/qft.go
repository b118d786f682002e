package shor

import (
	"math"

	"github.com/alan-christopher/shor/go/shor/circuit"
)

// InverseQFT returns the inverse of the n-qubit quantum Fourier transform:
// the circuit that collapses a periodic superposition's phase information
// into a classically readable register. Construction is deterministic:
// qubit order is first reversed by a swap network, then each qubit j
// receives a controlled -pi/2^(j-m) rotation from every earlier qubit m
// before its own Hadamard. Both loops must ascend; reordering them breaks
// the inverse-transform property.
func InverseQFT(n int) circuit.Circuit {
	c := circuit.New(n, 0)
	for q := 0; q < n/2; q++ {
		c.Append(circuit.SwapGate(q, n-q-1))
	}
	for j := 0; j < n; j++ {
		for m := 0; m < j; m++ {
			c.Append(circuit.CPhaseGate(-math.Pi/float64(int(1)<<(j-m)), m, j))
		}
		c.Append(circuit.HGate(j))
	}
	return c
}
