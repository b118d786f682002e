// Package shor implements integer factorization by quantum order finding.
// The quantum half builds a phase-estimation circuit around a
// modular-exponentiation oracle whose permutation networks are hand-derived
// for the modulus 15; the classical half turns measurement statistics into a
// verified period and from there into factors.
package shor

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/alan-christopher/shor/go/shor/backend"
)

var (
	DefaultCountingBits = 8
	DefaultShots        = 1024
	DefaultAttempts     = 8
)

// Stats packages together a collection of potentially interesting metrics
// pertaining to a factoring run.
type Stats struct {
	// Attempts is the number of order-finding attempts made, including the
	// one that succeeded.
	Attempts int
	// QuantumExecutions is the number of calls made to the backend.
	QuantumExecutions int
	// BasesTried lists the candidate bases in the order they were drawn.
	BasesTried []int
	// Shortcut records whether factors were found without running the
	// quantum step at all, i.e. the target was even or a drawn base shared
	// a factor with it.
	Shortcut bool
}

// A FactorPair holds two nontrivial factors of the target integer.
type FactorPair struct {
	P, Q int
}

// A Reason classifies a recoverable order-finding failure.
type Reason string

const (
	ReasonNoPeriod      Reason = "no period found"
	ReasonOddPeriod     Reason = "odd period"
	ReasonTrivialPeriod Reason = "trivial period from a^(r/2) ≡ -1"
)

// An AttemptError reports that a single order-finding attempt failed through
// algorithmic bad luck rather than misconfiguration. Attempts failing this
// way may be retried with a different base; construction errors, e.g. an
// unsupported oracle base, are reported as ordinary errors instead and are
// not retried.
type AttemptError struct {
	// Base is the candidate base the attempt used.
	Base int
	// Period is the rejected period, when one was extracted at all.
	Period int
	// Reason classifies the failure.
	Reason Reason
}

// Error implements the error interface.
func (e *AttemptError) Error() string {
	if e.Period != 0 {
		return fmt.Sprintf("attempt with base %d: %s (r=%d)", e.Base, e.Reason, e.Period)
	}
	return fmt.Sprintf("attempt with base %d: %s", e.Base, e.Reason)
}

// An Opts packages together the arguments necessary to construct a Factorer.
// The Backend and Rand fields do *not* have reasonable defaults, and leaving
// them to zero-initialize will result in New returning an error.
type Opts struct {
	// Backend executes phase-estimation circuits. Must be non-nil.
	Backend backend.Backend

	// Rand provides the randomness used to draw candidate bases. This may
	// use pRNG so that runs are reproducible. Must be non-nil.
	Rand *rand.Rand

	// Base fixes the candidate base rather than drawing it from Rand. Zero
	// leaves base selection random.
	Base int

	// CountingBits specifies the size of the counting register, and with it
	// the resolution of the measured phase estimates. Defaults to
	// DefaultCountingBits.
	CountingBits int

	// Shots specifies how many times each phase-estimation circuit is
	// sampled. Defaults to DefaultShots.
	Shots int

	// Attempts bounds the number of order-finding attempts per call to
	// Factor, so that a run cannot loop forever on unlucky bases. Defaults
	// to DefaultAttempts.
	Attempts int
}

// A Factorer factors integers via quantum order finding.
type Factorer struct {
	backend      backend.Backend
	rand         *rand.Rand
	base         int
	countingBits int
	shots        int
	attempts     int
}

// New returns a new Factorer, configured in accordance with opts, or an
// error if the options are nonsensical.
func New(opts Opts) (*Factorer, error) {
	if opts.Backend == nil {
		return nil, errors.New("must provide Backend")
	}
	if opts.Rand == nil {
		return nil, errors.New("must provide Rand")
	}
	if opts.Base < 0 {
		return nil, fmt.Errorf("fixed base must be positive, got %d", opts.Base)
	}
	countingBits := opts.CountingBits
	if countingBits == 0 {
		countingBits = DefaultCountingBits
	}
	if countingBits < 1 {
		return nil, fmt.Errorf("counting register needs at least one qubit, got %d", countingBits)
	}
	shots := opts.Shots
	if shots == 0 {
		shots = DefaultShots
	}
	if shots < 0 {
		return nil, fmt.Errorf("shots must be positive, got %d", shots)
	}
	attempts := opts.Attempts
	if attempts == 0 {
		attempts = DefaultAttempts
	}
	if attempts < 0 {
		return nil, fmt.Errorf("attempts must be positive, got %d", attempts)
	}
	return &Factorer{
		backend:      opts.Backend,
		rand:         opts.Rand,
		base:         opts.Base,
		countingBits: countingBits,
		shots:        shots,
		attempts:     attempts,
	}, nil
}
