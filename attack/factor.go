package attack

import "math/big"

// Factor decomposes a semiprime modulus into its two prime factors by
// trial division and returns them in the order discovered, smaller
// first. Factors of 2 are stripped without being collected (an RSA
// modulus is odd), then odd divisors are tested in ascending order up
// to the square root of what remains, dividing each out repeatedly.
// Any remainder greater than 2 is itself prime and becomes the final
// factor. O(sqrt n) divisions; this is the step the benchmark times.
func Factor(n *big.Int) (p, q *big.Int, err error) {
	if n.Sign() == 0 {
		return nil, nil, ErrZeroModulus
	}
	x := new(big.Int).Set(n)
	mod := new(big.Int)
	for x.Bit(0) == 0 {
		x.Rsh(x, 1)
	}

	var factors []*big.Int
	i := big.NewInt(3)
	sq := new(big.Int).Mul(i, i)
	for sq.Cmp(x) <= 0 {
		for mod.Mod(x, i).Sign() == 0 {
			factors = append(factors, new(big.Int).Set(i))
			x.Div(x, i)
		}
		i.Add(i, two)
		sq.Mul(i, i)
	}
	if x.Cmp(two) > 0 {
		factors = append(factors, x)
	}

	// A valid RSA modulus yields exactly two factors. Anything else
	// (a prime, a prime power, more than two distinct primes) is
	// malformed input.
	if len(factors) != 2 {
		return nil, nil, ErrMalformedModulus
	}
	return factors[0], factors[1], nil
}

// Totient returns Euler's totient of a semiprime, (p-1)(q-1).
func Totient(p, q *big.Int) *big.Int {
	pMinusOne := new(big.Int).Sub(p, one)
	qMinusOne := new(big.Int).Sub(q, one)
	return pMinusOne.Mul(pMinusOne, qMinusOne)
}
