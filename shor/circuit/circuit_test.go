package circuit

import (
	"math"
	"reflect"
	"testing"
)

func TestControlled(t *testing.T) {
	sub := New(2, 0)
	sub.Append(XGate(0), SwapGate(0, 1), CPhaseGate(math.Pi/2, 0, 1))
	sub.Append(Gate{Kind: H, Targets: []int{1}, Controls: []int{0}})

	got, err := Controlled(sub)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Qubits() != 3 {
		t.Errorf("controlled circuit has %d qubits, want 3", got.Qubits())
	}
	want := []Gate{
		{Kind: X, Targets: []int{1}, Controls: []int{0}},
		{Kind: Swap, Targets: []int{1, 2}, Controls: []int{0}},
		{Kind: CPhase, Targets: []int{1, 2}, Controls: []int{0}, Phase: math.Pi / 2},
		{Kind: H, Targets: []int{2}, Controls: []int{0, 1}},
	}
	if !reflect.DeepEqual(got.Gates(), want) {
		t.Errorf("Controlled gates == %v, want %v", got.Gates(), want)
	}
}

func TestControlledRejectsMeasurement(t *testing.T) {
	sub := New(1, 1)
	sub.Append(MeasureGate(0, 0))
	if _, err := Controlled(sub); err == nil {
		t.Error("controlling a measuring circuit succeeded, want error")
	}
}

func TestCompose(t *testing.T) {
	dst := New(4, 0)
	dst.Append(HGate(0))
	sub := New(2, 0)
	sub.Append(SwapGate(0, 1))
	sub.Append(Gate{Kind: X, Targets: []int{1}, Controls: []int{0}})

	got, err := Compose(dst, sub, []int{3, 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Gate{
		{Kind: H, Targets: []int{0}},
		{Kind: Swap, Targets: []int{3, 1}, Controls: []int{}},
		{Kind: X, Targets: []int{1}, Controls: []int{3}},
	}
	if !reflect.DeepEqual(got.Gates(), want) {
		t.Errorf("Compose gates == %v, want %v", got.Gates(), want)
	}
	if dst.Len() != 1 {
		t.Errorf("Compose modified dst, which now has %d gates", dst.Len())
	}
}

func TestComposeErrors(t *testing.T) {
	sub := New(2, 0)
	sub.Append(SwapGate(0, 1))
	measuring := New(1, 1)
	measuring.Append(MeasureGate(0, 0))

	tcs := []struct {
		name   string
		sub    Circuit
		qubits []int
	}{
		{name: "too few indices", sub: sub, qubits: []int{0}},
		{name: "out of range", sub: sub, qubits: []int{0, 4}},
		{name: "negative index", sub: sub, qubits: []int{-1, 1}},
		{name: "duplicate index", sub: sub, qubits: []int{2, 2}},
		{name: "classical bits", sub: measuring, qubits: []int{0}},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Compose(New(4, 0), tc.sub, tc.qubits); err == nil {
				t.Errorf("Compose(dst, sub, %v) succeeded, want error", tc.qubits)
			}
		})
	}
}

func TestInverse(t *testing.T) {
	c := New(2, 0)
	c.Append(HGate(0), CPhaseGate(-math.Pi/4, 0, 1), SwapGate(0, 1), XGate(1))

	inv, err := Inverse(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Gate{
		{Kind: X, Targets: []int{1}},
		{Kind: Swap, Targets: []int{0, 1}},
		{Kind: CPhase, Targets: []int{0, 1}, Phase: math.Pi / 4},
		{Kind: H, Targets: []int{0}},
	}
	if !reflect.DeepEqual(inv.Gates(), want) {
		t.Errorf("Inverse gates == %v, want %v", inv.Gates(), want)
	}

	// Inverting twice restores the original.
	back, err := Inverse(inv)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(back.Gates(), c.Gates()) {
		t.Errorf("double inverse == %v, want %v", back.Gates(), c.Gates())
	}
}

func TestInverseRejectsMeasurement(t *testing.T) {
	c := New(1, 1)
	c.Append(MeasureGate(0, 0))
	if _, err := Inverse(c); err == nil {
		t.Error("inverting a measuring circuit succeeded, want error")
	}
}

func TestGatesIsACopy(t *testing.T) {
	c := New(2, 0)
	c.Append(XGate(0), XGate(1))
	gates := c.Gates()
	gates[0] = HGate(1)
	if c.Gates()[0].Kind != X {
		t.Error("mutating the slice returned by Gates changed the circuit")
	}
}

func TestKindString(t *testing.T) {
	tcs := []struct {
		kind Kind
		want string
	}{
		{X, "x"}, {H, "h"}, {Swap, "swap"}, {CPhase, "cp"}, {Measure, "measure"},
	}
	for _, tc := range tcs {
		if got := tc.kind.String(); got != tc.want {
			t.Errorf("Kind(%d).String() == %q, want %q", int(tc.kind), got, tc.want)
		}
	}
}
