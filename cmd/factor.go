// factor.go runs one factorization of a small integer via quantum order
// finding against the simulated backend, logging the progress of each
// attempt and printing the resulting factor pair.
package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/rs/zerolog"
	flag "github.com/spf13/pflag"

	"github.com/alan-christopher/shor/go/shor"
	"github.com/alan-christopher/shor/go/shor/backend"
)

var (
	n = flag.Int("n", 15,
		"The integer to factor. The modular-exponentiation oracle is derived for 15.")
	base = flag.Int("base", 0,
		"Fix the candidate base instead of drawing bases at random. Zero draws randomly.")
	countingBits = flag.Int("counting-qubits", shor.DefaultCountingBits,
		"The size of the counting register.")
	shots = flag.Int("shots", shor.DefaultShots,
		"The number of times to sample each phase-estimation circuit.")
	attempts = flag.Int("attempts", shor.DefaultAttempts,
		"The maximum number of order-finding attempts before giving up.")
	seed = flag.Int64("seed", 42,
		"Seed for both base selection and simulated measurement sampling.")
)

func main() {
	flag.Parse()
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	f, err := shor.New(shor.Opts{
		Backend:      backend.NewSimulator(uint64(*seed)),
		Rand:         rand.New(rand.NewSource(*seed)),
		Base:         *base,
		CountingBits: *countingBits,
		Shots:        *shots,
		Attempts:     *attempts,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("configuring factorer")
	}

	log.Info().Int("n", *n).Int("shots", *shots).Int("counting_qubits", *countingBits).
		Msg("starting factorization")
	pair, stats, err := f.Factor(*n)
	if err != nil {
		log.Fatal().Err(err).
			Int("attempts", stats.Attempts).
			Ints("bases", stats.BasesTried).
			Msg("factorization failed")
	}
	log.Info().
		Int("attempts", stats.Attempts).
		Int("quantum_executions", stats.QuantumExecutions).
		Ints("bases", stats.BasesTried).
		Bool("shortcut", stats.Shortcut).
		Msg("factorization complete")
	fmt.Printf("%d = %d * %d\n", *n, pair.P, pair.Q)
}
