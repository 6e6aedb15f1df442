package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUint(t *testing.T) {
	z, err := parseUint("3233")
	require.NoError(t, err)
	assert.Equal(t, int64(3233), z.Int64())

	for _, s := range []string{"", "abc", "-5", "1.5", "0x10"} {
		if _, err := parseUint(s); err == nil {
			t.Errorf("parseUint(%q): want error", s)
		}
	}
}

func TestMenuBruteForce(t *testing.T) {
	in := strings.NewReader("1\n17\n3233\n2790\n3\n")
	var out bytes.Buffer

	err := menu(in, &out)
	require.NoError(t, err)

	got := out.String()
	assert.Contains(t, got, "Attack: brute force")
	assert.Contains(t, got, "Decrypted message (M): 65")
	assert.NotContains(t, got, "Primes:")
	assert.Contains(t, got, "Goodbye")
}

func TestMenuFactoring(t *testing.T) {
	in := strings.NewReader("2\n17\n3233\n2790\n3\n")
	var out bytes.Buffer

	err := menu(in, &out)
	require.NoError(t, err)

	got := out.String()
	assert.Contains(t, got, "Decrypted message (M): 65")
	assert.Contains(t, got, "p: 53")
	assert.Contains(t, got, "q: 61")
	assert.Contains(t, got, "Decryption exponent (d): 2753")
	assert.Contains(t, got, "Goodbye")
}

func TestMenuBadInput(t *testing.T) {
	// A non-numeric modulus aborts the prompt; the menu comes back
	// around and a later attempt still works.
	in := strings.NewReader("2\n17\nxyzzy\n2\n17\n3233\n2790\n3\n")
	var out bytes.Buffer

	err := menu(in, &out)
	require.NoError(t, err)

	got := out.String()
	assert.Contains(t, got, "Decrypted message (M): 65")
	assert.Contains(t, got, "Goodbye")
}

func TestMenuInvalidOption(t *testing.T) {
	in := strings.NewReader("9\n3\n")
	var out bytes.Buffer

	err := menu(in, &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "ERROR: Invalid option")
}
