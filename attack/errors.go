package attack

import "errors"

// Attack failures are sentinel values so callers can match on them.
var (
	// ErrMalformedModulus means trial division did not produce exactly
	// two prime factors, so the modulus is not an RSA semiprime.
	ErrMalformedModulus = errors.New("attack: modulus is not a product of two primes")

	// ErrNoModularInverse means gcd(e, phi) != 1; the encryption
	// exponent has no inverse modulo the totient.
	ErrNoModularInverse = errors.New("attack: no modular inverse exists")

	// ErrNoSolution means the brute-force scan exhausted [0, n) without
	// finding a plaintext that encrypts to the ciphertext.
	ErrNoSolution = errors.New("attack: no plaintext encrypts to the ciphertext")

	// ErrZeroModulus means a modulus of zero was supplied; reduction
	// modulo zero is undefined.
	ErrZeroModulus = errors.New("attack: modulus is zero")
)
