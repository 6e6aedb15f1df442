package harness

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pirat3King/rsa-attack-comparison/attack"
)

func TestCompare(t *testing.T) {
	e := big.NewInt(17)
	n := big.NewInt(3233)
	c := big.NewInt(2790)

	brute, factoring := Compare(e, n, c)

	require.NoError(t, brute.Err)
	require.NoError(t, factoring.Err)
	assert.Equal(t, BruteForce, brute.Attack)
	assert.Equal(t, Factoring, factoring.Attack)

	assert.Equal(t, int64(65), brute.M.Int64())
	assert.Equal(t, int64(65), factoring.M.Int64())
	assert.Equal(t, int64(53), factoring.P.Int64())
	assert.Equal(t, int64(61), factoring.Q.Int64())
	assert.Equal(t, int64(2753), factoring.D.Int64())

	assert.Nil(t, brute.P)
	assert.Nil(t, brute.Q)
	assert.Nil(t, brute.D)
}

func TestRunBruteForceNoSolution(t *testing.T) {
	res := RunBruteForce(big.NewInt(17), big.NewInt(3233), big.NewInt(3233))
	assert.ErrorIs(t, res.Err, attack.ErrNoSolution)
	assert.Nil(t, res.M)
}

func TestRunFactoringBadModulus(t *testing.T) {
	res := RunFactoring(big.NewInt(17), big.NewInt(13), big.NewInt(5))
	assert.ErrorIs(t, res.Err, attack.ErrMalformedModulus)
	assert.Nil(t, res.M)
}
