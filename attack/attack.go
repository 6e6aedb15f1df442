package attack

import "math/big"

// Recovery holds everything the factoring attack learns about a key:
// the plaintext, the two primes of the modulus, and the private
// exponent. It is never mutated after being returned.
type Recovery struct {
	M *big.Int // recovered plaintext
	P *big.Int // smaller prime factor of n
	Q *big.Int // larger prime factor of n
	D *big.Int // private exponent
}

// Encrypt returns the ciphertext m^e mod n.
func Encrypt(m, e, n *big.Int) (*big.Int, error) {
	return ModExp(m, e, n)
}

// BruteForce recovers the plaintext by scanning candidates m = 0, 1,
// ... n-1 in order and returning the first whose encryption under
// (e, n) equals the ciphertext. O(n log e); deliberately the slow
// half of the comparison. Returns ErrNoSolution if no candidate in
// [0, n) encrypts to c.
func BruteForce(e, n, c *big.Int) (*big.Int, error) {
	if n.Sign() == 0 {
		return nil, ErrZeroModulus
	}
	for m := big.NewInt(0); m.Cmp(n) < 0; m.Add(m, one) {
		x, err := ModExp(m, e, n)
		if err != nil {
			return nil, err
		}
		if equal(x, c) {
			return m, nil
		}
	}
	return nil, ErrNoSolution
}

// Factoring recovers the plaintext by factoring the modulus: with
// n = p*q known, the totient (p-1)(q-1) and from it the private
// exponent d follow directly, and m = c^d mod n. Dominated by the
// O(sqrt n) factoring step.
func Factoring(e, n, c *big.Int) (*Recovery, error) {
	p, q, err := Factor(n)
	if err != nil {
		return nil, err
	}
	d, err := ModInverse(e, Totient(p, q))
	if err != nil {
		return nil, err
	}
	m, err := ModExp(c, d, n)
	if err != nil {
		return nil, err
	}
	return &Recovery{M: m, P: p, Q: q, D: d}, nil
}
