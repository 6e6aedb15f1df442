// Package attack recovers RSA plaintexts from the public values alone,
// either by brute-forcing the message space or by factoring the modulus
// and deriving the private exponent. All functions are pure and operate
// on arbitrary-precision integers, so there is no overflow ceiling on
// the modulus.
package attack

import (
	"errors"
	"math/big"
)

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)

// ModExp returns base^exponent mod modulus by binary square-and-multiply:
// O(log exponent) modular multiplications. The brute-force scan calls
// this once per candidate plaintext, so its cost sets the scan's pace.
func ModExp(base, exponent, modulus *big.Int) (*big.Int, error) {
	if modulus.Sign() == 0 {
		return nil, ErrZeroModulus
	}
	if exponent.Sign() < 0 {
		return nil, errors.New("ModExp: negative exponent")
	}
	x := big.NewInt(1)
	a := new(big.Int).Mod(base, modulus)
	e := new(big.Int).Set(exponent)
	for e.Sign() > 0 {
		if e.Bit(0) == 1 {
			x.Mul(x, a)
			x.Mod(x, modulus)
		}
		a.Mul(a, a)
		a.Mod(a, modulus)
		e.Rsh(e, 1)
	}
	return x, nil
}

// equal returns true if two arbitrary-precision integers are equal.
func equal(z1, z2 *big.Int) bool {
	return z1.Cmp(z2) == 0
}
