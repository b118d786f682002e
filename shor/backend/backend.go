// Package backend provides the quantum execution capability consumed by the
// factoring pipeline, along with a simulated implementation of it.
package backend

import "github.com/alan-christopher/shor/go/shor/circuit"

// A Backend executes quantum circuits and reports measurement statistics.
type Backend interface {
	// Execute runs c for the given number of shots and returns a histogram
	// mapping classical-register bitstrings to observed frequencies. Bit 0
	// of the classical register is the rightmost character of each key, and
	// counts sum to shots.
	Execute(c circuit.Circuit, shots int) (map[string]int, error)
}
