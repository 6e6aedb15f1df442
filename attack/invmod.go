package attack

import "math/big"

// ModInverse returns d in [0, phi) such that e*d = 1 (mod phi), using
// the extended Euclidean algorithm. The Euclidean division chain runs
// on (e, phi) while a Bezout coefficient is built up one quotient at a
// time; a sign flag tracks the coefficient's alternating sign so the
// result can be normalized into [0, phi) at the end. If gcd(e, phi) is
// not 1 no inverse exists and ErrNoModularInverse is returned; there is
// no sentinel value a caller could mistake for a legitimate inverse.
func ModInverse(e, phi *big.Int) (*big.Int, error) {
	if phi.Sign() == 0 {
		return nil, ErrZeroModulus
	}
	a := new(big.Int).Set(e)
	b := new(big.Int).Set(phi)
	d := big.NewInt(1)
	y := big.NewInt(0)
	negative := false

	for b.Sign() != 0 {
		q, r := new(big.Int).QuoRem(a, b, new(big.Int))
		t := q.Mul(q, y)
		t.Add(t, d)
		d, y = y, t
		a, b = b, r
		negative = !negative
	}

	// a now holds gcd(e, phi).
	if !equal(a, one) {
		return nil, ErrNoModularInverse
	}
	if negative {
		d.Sub(phi, d)
	}
	return d.Mod(d, phi), nil
}
