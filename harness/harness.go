// Package harness times the two attacks against each other. It owns
// the clocks and result aggregation; the attack package stays pure.
package harness

import (
	"math/big"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/Pirat3King/rsa-attack-comparison/attack"
)

// Attack names as reported in results.
const (
	BruteForce = "brute force"
	Factoring  = "factoring"
)

// Result is the outcome of one timed attack. P, Q, and D are only set
// by the factoring attack. It is owned by the caller and never mutated
// after being returned.
type Result struct {
	Attack  string
	M       *big.Int
	P       *big.Int
	Q       *big.Int
	D       *big.Int
	Elapsed time.Duration
	Err     error
}

// RunBruteForce times a brute-force recovery of the plaintext.
func RunBruteForce(e, n, c *big.Int) Result {
	start := time.Now()
	m, err := attack.BruteForce(e, n, c)
	return Result{
		Attack:  BruteForce,
		M:       m,
		Elapsed: time.Since(start),
		Err:     errors.Wrap(err, BruteForce),
	}
}

// RunFactoring times a factoring recovery of the plaintext, primes,
// and private exponent.
func RunFactoring(e, n, c *big.Int) Result {
	start := time.Now()
	rec, err := attack.Factoring(e, n, c)
	res := Result{
		Attack:  Factoring,
		Elapsed: time.Since(start),
		Err:     errors.Wrap(err, Factoring),
	}
	if rec != nil {
		res.M, res.P, res.Q, res.D = rec.M, rec.P, rec.Q, rec.D
	}
	return res
}

// Compare runs both attacks on the same public values and returns both
// results. The attacks are pure functions of (e, n, c) with no shared
// state, so they run concurrently to shorten the overall wall-clock
// time; neither result depends on the other.
func Compare(e, n, c *big.Int) (brute, factoring Result) {
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		brute = RunBruteForce(e, n, c)
	}()
	go func() {
		defer wg.Done()
		factoring = RunFactoring(e, n, c)
	}()
	wg.Wait()
	return brute, factoring
}
