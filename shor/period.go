package shor

import (
	"fmt"
	"sort"
	"strconv"
)

// maxCandidates bounds how many of the most frequent phases the extractor
// tries. Measurement noise produces many spurious low-frequency phases;
// restricting to the most probable outcomes trades completeness for
// practicality.
const maxCandidates = 5

// Period recovers a verified period of a modulo n from a measurement
// histogram over a countingBits-wide counting register. Every bitstring is
// read as an integer k and interpreted as the phase k/2^countingBits; the
// most frequent phases are approximated by their best rational with
// denominator at most n, and the first denominator r satisfying r even,
// a^(r/2) mod n != n-1, and a^r mod n == 1 is returned. If no candidate
// qualifies, an *AttemptError with ReasonNoPeriod is returned; retrying with
// a different base or histogram is left to the caller.
func Period(counts map[string]int, countingBits, a, n int) (int, error) {
	den := 1 << countingBits
	type outcome struct {
		k     int
		count int
	}
	outcomes := make([]outcome, 0, len(counts))
	for key, count := range counts {
		k, err := strconv.ParseUint(key, 2, 64)
		if err != nil {
			return 0, fmt.Errorf("parsing measurement key %q: %w", key, err)
		}
		if k >= uint64(den) {
			return 0, fmt.Errorf("measurement key %q exceeds %d-bit register", key, countingBits)
		}
		outcomes = append(outcomes, outcome{k: int(k), count: count})
	}
	// Rank by descending frequency. Histogram keys carry no arrival order,
	// so ties break on the measured value for determinism.
	sort.Slice(outcomes, func(i, j int) bool {
		if outcomes[i].count != outcomes[j].count {
			return outcomes[i].count > outcomes[j].count
		}
		return outcomes[i].k < outcomes[j].k
	})

	for i, o := range outcomes {
		if i >= maxCandidates {
			break
		}
		_, r := limitDenominator(o.k, den, n)
		if r%2 != 0 {
			continue
		}
		if powMod(a, r/2, n) == n-1 {
			continue
		}
		if powMod(a, r, n) != 1 {
			continue
		}
		return r, nil
	}
	return 0, &AttemptError{Base: a, Reason: ReasonNoPeriod}
}

// limitDenominator returns the closest rational approximation to num/den
// whose denominator is at most maxDen, as a reduced numerator/denominator
// pair. It walks the continued-fraction expansion of num/den and picks
// between the last convergent below the bound and its best semiconvergent.
func limitDenominator(num, den, maxDen int) (int, int) {
	g := gcd(num, den)
	if g > 0 {
		num, den = num/g, den/g
	}
	if den <= maxDen {
		return num, den
	}
	p0, q0, p1, q1 := 0, 1, 1, 0
	n, d := num, den
	for {
		a := n / d
		q2 := q0 + a*q1
		if q2 > maxDen {
			break
		}
		p0, q0, p1, q1 = p1, q1, p0+a*p1, q2
		n, d = d, n-a*d
	}
	k := (maxDen - q0) / q1
	sp, sq := p0+k*p1, q0+k*q1 // best semiconvergent under the bound

	// Compare |num/den - sp/sq| against |num/den - p1/q1| by
	// cross-multiplication; the convergent wins ties.
	dSemi := abs(num*sq-sp*den) * q1
	dConv := abs(num*q1-p1*den) * sq
	if dConv <= dSemi {
		return p1, q1
	}
	return sp, sq
}

// gcd returns the greatest common divisor of a and b.
func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		return -a
	}
	return a
}

// powMod returns base^exp mod mod by binary exponentiation.
func powMod(base, exp, mod int) int {
	r := 1
	base %= mod
	for exp > 0 {
		if exp&1 == 1 {
			r = r * base % mod
		}
		base = base * base % mod
		exp >>= 1
	}
	return r
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
