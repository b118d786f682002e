package shor

import (
	"errors"
	"fmt"
)

// Factor returns a pair of nontrivial factors of n, together with metrics
// about the attempts made. Even targets and lucky base draws sharing a
// factor with n are resolved classically; otherwise each attempt runs one
// phase-estimation circuit through the backend and extracts a period from
// the measured histogram. Attempts failing for algorithmic reasons (no
// usable period) are retried with a fresh base up to the configured bound;
// the last such failure is returned as an *AttemptError when the bound is
// exhausted. Construction and backend errors abort immediately.
func (f *Factorer) Factor(n int) (FactorPair, Stats, error) {
	var stats Stats
	if n < 4 {
		return FactorPair{}, stats, fmt.Errorf("nothing to factor: %d has no nontrivial factor pair", n)
	}
	if n%2 == 0 {
		stats.Shortcut = true
		return FactorPair{2, n / 2}, stats, nil
	}
	var lastErr error
	for i := 0; i < f.attempts; i++ {
		stats.Attempts++
		pair, err := f.attempt(n, &stats)
		if err == nil {
			return pair, stats, nil
		}
		var ae *AttemptError
		if !errors.As(err, &ae) {
			return FactorPair{}, stats, err
		}
		lastErr = err
	}
	return FactorPair{}, stats, lastErr
}

// attempt runs a single pass of the order-finding reduction: draw a base,
// check coprimality, run the quantum step, validate the period, and derive
// factors from it.
func (f *Factorer) attempt(n int, stats *Stats) (FactorPair, error) {
	a := f.base
	if a == 0 {
		a = 2 + f.rand.Intn(n-2) // uniform over [2, n-1]
	}
	stats.BasesTried = append(stats.BasesTried, a)

	if g := gcd(a, n); g > 1 {
		stats.Shortcut = true
		return FactorPair{g, n / g}, nil
	}

	qc, err := OrderFindingCircuit(a, f.countingBits)
	if err != nil {
		return FactorPair{}, err
	}
	counts, err := f.backend.Execute(qc, f.shots)
	if err != nil {
		return FactorPair{}, fmt.Errorf("executing order-finding circuit: %w", err)
	}
	stats.QuantumExecutions++

	r, err := Period(counts, f.countingBits, a, n)
	if err != nil {
		return FactorPair{}, err
	}
	if r%2 != 0 {
		return FactorPair{}, &AttemptError{Base: a, Period: r, Reason: ReasonOddPeriod}
	}
	h := powMod(a, r/2, n)
	if h == n-1 {
		return FactorPair{}, &AttemptError{Base: a, Period: r, Reason: ReasonTrivialPeriod}
	}
	return FactorPair{gcd(h-1, n), gcd(h+1, n)}, nil
}
