package backend

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/alan-christopher/shor/go/shor/circuit"
)

// maxQubits bounds the registers we are willing to simulate densely. The
// state vector holds 2^n amplitudes.
const maxQubits = 24

// A Simulator is a Backend that evaluates circuits by dense state-vector
// simulation and draws shots from the resulting measurement distribution. It
// models an idealized, noiseless machine. Qubit i corresponds to bit i of a
// basis-state index.
type Simulator struct {
	src rand.Source
}

// NewSimulator returns a Simulator whose measurement samples are drawn from
// a stream seeded with seed. Two simulators with the same seed, executing
// the same sequence of circuits, produce identical histograms.
func NewSimulator(seed uint64) *Simulator {
	return &Simulator{src: rand.NewSource(seed)}
}

// Execute implements the Backend interface.
func (s *Simulator) Execute(c circuit.Circuit, shots int) (map[string]int, error) {
	if shots <= 0 {
		return nil, fmt.Errorf("shots must be positive, got %d", shots)
	}
	psi, meas, err := run(c)
	if err != nil {
		return nil, err
	}
	if len(meas) == 0 {
		return nil, fmt.Errorf("circuit measures no qubits")
	}

	// Terminal measurement: marginalize |psi|^2 onto the classical register.
	probs := make([]float64, 1<<c.Clbits())
	for i, amp := range psi {
		p := real(amp)*real(amp) + imag(amp)*imag(amp)
		if p == 0 {
			continue
		}
		v := 0
		for _, m := range meas {
			if i&(1<<m.qubit) != 0 {
				v |= 1 << m.clbit
			}
		}
		probs[v] += p
	}

	dist := distuv.NewCategorical(probs, s.src)
	counts := make(map[string]int)
	for i := 0; i < shots; i++ {
		v := int(dist.Rand())
		counts[fmt.Sprintf("%0*b", c.Clbits(), v)]++
	}
	return counts, nil
}

// Statevector applies c's unitary gates to the all-zeros state and returns
// the resulting amplitude vector. Any trailing measurements are ignored.
func Statevector(c circuit.Circuit) ([]complex128, error) {
	psi, _, err := run(c)
	return psi, err
}

type measurement struct {
	qubit, clbit int
}

// run simulates c's gates in temporal order. Measurements must be terminal:
// no unitary gate may follow one, and the measured amplitudes are returned
// untouched together with the qubit-to-clbit mapping.
func run(c circuit.Circuit) ([]complex128, []measurement, error) {
	nq := c.Qubits()
	if nq < 1 {
		return nil, nil, fmt.Errorf("cannot simulate an empty register")
	}
	if nq > maxQubits {
		return nil, nil, fmt.Errorf("simulating %d qubits, limit is %d", nq, maxQubits)
	}
	psi := make([]complex128, 1<<nq)
	psi[0] = 1

	var meas []measurement
	clbitUsed := make([]bool, c.Clbits())
	for gi, g := range c.Gates() {
		if g.Kind == circuit.Measure {
			if len(g.Targets) != 1 {
				return nil, nil, fmt.Errorf("gate %d: measure wants 1 target, has %d", gi, len(g.Targets))
			}
			q := g.Targets[0]
			if q < 0 || q >= nq {
				return nil, nil, fmt.Errorf("gate %d: measuring qubit %d of %d", gi, q, nq)
			}
			if g.Clbit < 0 || g.Clbit >= c.Clbits() {
				return nil, nil, fmt.Errorf("gate %d: measuring into clbit %d of %d", gi, g.Clbit, c.Clbits())
			}
			if clbitUsed[g.Clbit] {
				return nil, nil, fmt.Errorf("gate %d: clbit %d measured twice", gi, g.Clbit)
			}
			clbitUsed[g.Clbit] = true
			meas = append(meas, measurement{qubit: q, clbit: g.Clbit})
			continue
		}
		if len(meas) > 0 {
			return nil, nil, fmt.Errorf("gate %d: unitary %v after measurement", gi, g.Kind)
		}
		ctrl, err := gateMask(g, nq)
		if err != nil {
			return nil, nil, fmt.Errorf("gate %d: %w", gi, err)
		}
		switch g.Kind {
		case circuit.X:
			tb := 1 << g.Targets[0]
			for i := range psi {
				if i&ctrl != ctrl || i&tb != 0 {
					continue
				}
				j := i | tb
				psi[i], psi[j] = psi[j], psi[i]
			}
		case circuit.H:
			tb := 1 << g.Targets[0]
			s := complex(math.Sqrt2/2, 0)
			for i := range psi {
				if i&ctrl != ctrl || i&tb != 0 {
					continue
				}
				j := i | tb
				psi[i], psi[j] = s*(psi[i]+psi[j]), s*(psi[i]-psi[j])
			}
		case circuit.Swap:
			am, bm := 1<<g.Targets[0], 1<<g.Targets[1]
			for i := range psi {
				// Visit each pair once, from the a-set, b-unset side.
				if i&ctrl != ctrl || i&am == 0 || i&bm != 0 {
					continue
				}
				j := i ^ am ^ bm
				psi[i], psi[j] = psi[j], psi[i]
			}
		case circuit.CPhase:
			pm := 1<<g.Targets[0] | 1<<g.Targets[1]
			ph := complex(math.Cos(g.Phase), math.Sin(g.Phase))
			for i := range psi {
				if i&ctrl == ctrl && i&pm == pm {
					psi[i] *= ph
				}
			}
		default:
			return nil, nil, fmt.Errorf("gate %d: unknown kind %v", gi, g.Kind)
		}
	}
	return psi, meas, nil
}

// gateMask validates g's qubit indices against an nq-qubit register and
// returns the bitmask of its control qubits.
func gateMask(g circuit.Gate, nq int) (int, error) {
	want := 1
	if g.Kind == circuit.Swap || g.Kind == circuit.CPhase {
		want = 2
	}
	if len(g.Targets) != want {
		return 0, fmt.Errorf("%v gate wants %d targets, has %d", g.Kind, want, len(g.Targets))
	}
	targets := 0
	for _, t := range g.Targets {
		if t < 0 || t >= nq {
			return 0, fmt.Errorf("target qubit %d of %d", t, nq)
		}
		if targets&(1<<t) != 0 {
			return 0, fmt.Errorf("duplicate target qubit %d", t)
		}
		targets |= 1 << t
	}
	ctrl := 0
	for _, q := range g.Controls {
		if q < 0 || q >= nq {
			return 0, fmt.Errorf("control qubit %d of %d", q, nq)
		}
		if targets&(1<<q) != 0 {
			return 0, fmt.Errorf("qubit %d is both control and target", q)
		}
		ctrl |= 1 << q
	}
	return ctrl, nil
}
