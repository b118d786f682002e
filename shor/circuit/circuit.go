// Package circuit provides an immutable gate-list representation of quantum
// circuits, along with pure composition and transformation functions.
package circuit

import "fmt"

// A Kind identifies the operation a gate performs.
type Kind int

const (
	// X is the bit-flip (NOT) gate.
	X Kind = iota
	// H is the Hadamard basis-mixing gate.
	H
	// Swap exchanges the states of two qubits.
	Swap
	// CPhase applies a phase rotation when both of its qubits are set.
	CPhase
	// Measure reads a qubit into a classical bit.
	Measure
)

// String returns the conventional lowercase mnemonic for k.
func (k Kind) String() string {
	switch k {
	case X:
		return "x"
	case H:
		return "h"
	case Swap:
		return "swap"
	case CPhase:
		return "cp"
	case Measure:
		return "measure"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// A Gate is a single operation within a circuit. Gates are treated as
// read-only records once appended to a circuit: callers must not modify the
// Targets or Controls slices of a gate obtained from Gates.
type Gate struct {
	Kind Kind

	// Targets holds the qubit indices the gate acts on: one for X, H, and
	// Measure, two for Swap and CPhase.
	Targets []int

	// Controls holds qubit indices that gate application: the operation is
	// applied only when every control qubit is set.
	Controls []int

	// Phase is the rotation angle for CPhase gates, in radians.
	Phase float64

	// Clbit is the classical destination bit for Measure gates.
	Clbit int
}

// A Circuit is an ordered sequence of gates over a fixed-size qubit register
// and classical register. Gate order defines a total temporal ordering.
// Register sizes are fixed at construction and never resized.
type Circuit struct {
	qubits int
	clbits int
	gates  []Gate
}

// New returns an empty circuit over the given number of qubits and classical
// bits.
func New(qubits, clbits int) Circuit {
	return Circuit{qubits: qubits, clbits: clbits}
}

// Qubits returns the size of c's qubit register.
func (c Circuit) Qubits() int { return c.qubits }

// Clbits returns the size of c's classical register.
func (c Circuit) Clbits() int { return c.clbits }

// Len returns the number of gates in c.
func (c Circuit) Len() int { return len(c.gates) }

// Gates returns c's gates in temporal order. The returned slice is a copy and
// may be reordered freely, but the gates themselves are shared records and
// must not be modified.
func (c Circuit) Gates() []Gate {
	gates := make([]Gate, len(c.gates))
	copy(gates, c.gates)
	return gates
}

// Append adds gates to the end of c.
func (c *Circuit) Append(gates ...Gate) {
	c.gates = append(c.gates, gates...)
}

// XGate returns a bit-flip gate on qubit q.
func XGate(q int) Gate {
	return Gate{Kind: X, Targets: []int{q}}
}

// HGate returns a Hadamard gate on qubit q.
func HGate(q int) Gate {
	return Gate{Kind: H, Targets: []int{q}}
}

// SwapGate returns a gate exchanging qubits a and b.
func SwapGate(a, b int) Gate {
	return Gate{Kind: Swap, Targets: []int{a, b}}
}

// CPhaseGate returns a controlled-phase gate rotating by phase radians when
// both control and target are set.
func CPhaseGate(phase float64, control, target int) Gate {
	return Gate{Kind: CPhase, Targets: []int{control, target}, Phase: phase}
}

// MeasureGate returns a gate measuring qubit q into classical bit clbit.
func MeasureGate(q, clbit int) Gate {
	return Gate{Kind: Measure, Targets: []int{q}, Clbit: clbit}
}

// Controlled returns the controlled form of sub: a circuit over one
// additional qubit in which qubit 0 gates every operation, and sub's qubit i
// becomes qubit i+1. When the control qubit is unset the returned circuit
// acts as the identity. Circuits containing measurements cannot be
// controlled.
func Controlled(sub Circuit) (Circuit, error) {
	r := Circuit{
		qubits: sub.qubits + 1,
		gates:  make([]Gate, 0, len(sub.gates)),
	}
	for _, g := range sub.gates {
		if g.Kind == Measure {
			return Circuit{}, fmt.Errorf("cannot control a circuit containing measurements")
		}
		ng := Gate{
			Kind:     g.Kind,
			Targets:  make([]int, len(g.Targets)),
			Controls: make([]int, 0, len(g.Controls)+1),
			Phase:    g.Phase,
		}
		for i, t := range g.Targets {
			ng.Targets[i] = t + 1
		}
		ng.Controls = append(ng.Controls, 0)
		for _, q := range g.Controls {
			ng.Controls = append(ng.Controls, q+1)
		}
		r.gates = append(r.gates, ng)
	}
	return r, nil
}

// Compose returns a new circuit consisting of dst's gates followed by sub's
// gates, with sub's qubit i remapped onto dst qubit qubits[i]. Neither input
// is modified. Sub must not use classical bits.
func Compose(dst, sub Circuit, qubits []int) (Circuit, error) {
	if len(qubits) != sub.qubits {
		return Circuit{}, fmt.Errorf("embedding %d-qubit circuit onto %d indices", sub.qubits, len(qubits))
	}
	if sub.clbits != 0 {
		return Circuit{}, fmt.Errorf("cannot embed a circuit with classical bits")
	}
	seen := make(map[int]bool, len(qubits))
	for _, q := range qubits {
		if q < 0 || q >= dst.qubits {
			return Circuit{}, fmt.Errorf("embedding onto qubit %d, register has %d", q, dst.qubits)
		}
		if seen[q] {
			return Circuit{}, fmt.Errorf("embedding onto duplicate qubit %d", q)
		}
		seen[q] = true
	}
	r := Circuit{
		qubits: dst.qubits,
		clbits: dst.clbits,
		gates:  make([]Gate, 0, len(dst.gates)+len(sub.gates)),
	}
	r.gates = append(r.gates, dst.gates...)
	for _, g := range sub.gates {
		ng := Gate{
			Kind:     g.Kind,
			Targets:  make([]int, len(g.Targets)),
			Controls: make([]int, len(g.Controls)),
			Phase:    g.Phase,
		}
		for i, t := range g.Targets {
			ng.Targets[i] = qubits[t]
		}
		for i, q := range g.Controls {
			ng.Controls[i] = qubits[q]
		}
		r.gates = append(r.gates, ng)
	}
	return r, nil
}

// Inverse returns the algebraic inverse of c: gates in reverse temporal
// order, with phase rotations negated. X, H, and Swap are their own
// inverses. Circuits containing measurements cannot be inverted.
func Inverse(c Circuit) (Circuit, error) {
	r := Circuit{
		qubits: c.qubits,
		clbits: c.clbits,
		gates:  make([]Gate, 0, len(c.gates)),
	}
	for i := len(c.gates) - 1; i >= 0; i-- {
		g := c.gates[i]
		if g.Kind == Measure {
			return Circuit{}, fmt.Errorf("cannot invert a circuit containing measurements")
		}
		ng := g
		if g.Kind == CPhase {
			ng.Phase = -g.Phase
		}
		r.gates = append(r.gates, ng)
	}
	return r, nil
}
