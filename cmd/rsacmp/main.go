// Command rsacmp recovers a toy RSA plaintext from the public values
// (e, n, c) by brute force, by factoring, or both, and reports how long
// each attack took.
package main

import (
	"bufio"
	"fmt"
	"io"
	"math/big"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/Pirat3King/rsa-attack-comparison/harness"
)

const banner = `---------------------------------------------------
            RSA Attack Time Comparison
---------------------------------------------------`

func main() {
	app := &cli.App{
		Name:  "rsacmp",
		Usage: "compare brute-force and factoring attacks on an RSA ciphertext",
		Commands: []*cli.Command{
			{
				Name:   "brute",
				Usage:  "recover the plaintext by scanning the message space",
				Flags:  keyFlags(),
				Action: runOne(harness.RunBruteForce),
			},
			{
				Name:   "factor",
				Usage:  "recover the plaintext by factoring the modulus",
				Flags:  keyFlags(),
				Action: runOne(harness.RunFactoring),
			},
			{
				Name:   "compare",
				Usage:  "run both attacks on the same input and time them",
				Flags:  keyFlags(),
				Action: runCompare,
			},
		},
		// With no command, drop into the interactive menu.
		Action: func(*cli.Context) error {
			return menu(os.Stdin, os.Stdout)
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// keyFlags returns a fresh flag set for the three public values. The
// values are decimal strings so the modulus is not capped at 64 bits.
func keyFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "e", Usage: "encryption exponent", Required: true},
		&cli.StringFlag{Name: "n", Usage: "RSA modulus", Required: true},
		&cli.StringFlag{Name: "c", Usage: "ciphertext", Required: true},
	}
}

// runOne adapts a single timed attack to a cli action.
func runOne(run func(e, n, c *big.Int) harness.Result) cli.ActionFunc {
	return func(ctx *cli.Context) error {
		e, n, c, err := publicValues(ctx)
		if err != nil {
			return err
		}
		res := run(e, n, c)
		if res.Err != nil {
			return res.Err
		}
		printResult(os.Stdout, res)
		return nil
	}
}

func runCompare(ctx *cli.Context) error {
	e, n, c, err := publicValues(ctx)
	if err != nil {
		return err
	}
	brute, factoring := harness.Compare(e, n, c)
	for _, res := range []harness.Result{brute, factoring} {
		if res.Err != nil {
			log.WithField("attack", res.Attack).Error(res.Err)
			continue
		}
		printResult(os.Stdout, res)
	}
	if brute.Err != nil || factoring.Err != nil {
		return errors.New("attack failed")
	}
	return nil
}

// publicValues parses the e, n, and c flags.
func publicValues(ctx *cli.Context) (e, n, c *big.Int, err error) {
	if e, err = parseUint(ctx.String("e")); err != nil {
		return nil, nil, nil, errors.Wrap(err, "flag e")
	}
	if n, err = parseUint(ctx.String("n")); err != nil {
		return nil, nil, nil, errors.Wrap(err, "flag n")
	}
	if c, err = parseUint(ctx.String("c")); err != nil {
		return nil, nil, nil, errors.Wrap(err, "flag c")
	}
	return e, n, c, nil
}

// parseUint reads a non-negative decimal integer of any size.
func parseUint(s string) (*big.Int, error) {
	z, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, errors.Errorf("%q is not a decimal integer", s)
	}
	if z.Sign() < 0 {
		return nil, errors.Errorf("%v is negative", z)
	}
	return z, nil
}

// printResult renders one attack's outcome the way the menu does.
func printResult(w io.Writer, res harness.Result) {
	fmt.Fprintln(w, "\n--------------------Result-------------------------")
	fmt.Fprintf(w, "Attack: %s\n", res.Attack)
	fmt.Fprintf(w, "Decrypted message (M): %v\n", res.M)
	if res.P != nil {
		fmt.Fprintf(w, "Primes:\n\tp: %v\n\tq: %v\n", res.P, res.Q)
		fmt.Fprintf(w, "Decryption exponent (d): %v\n", res.D)
	}
	fmt.Fprintf(w, "Time to run: %v\n\n", res.Elapsed)
}

// menu runs the interactive loop: show the options, read a selection,
// prompt for the public values, and print the timed result.
func menu(in io.Reader, w io.Writer) error {
	fmt.Fprintln(w, banner)
	input := bufio.NewScanner(in)
	for {
		fmt.Fprint(w, "Choose an option below to continue:\n"+
			"\t1) Attack 1: Brute Force M\n"+
			"\t2) Attack 2: Factor N\n"+
			"\t3) Quit\n\n"+
			"Select Option: ")
		if !input.Scan() {
			return input.Err()
		}
		switch input.Text() {
		case "1", "2":
			run := harness.RunBruteForce
			if input.Text() == "2" {
				run = harness.RunFactoring
			}
			e, n, c, err := readInput(input, w)
			if err != nil {
				log.Error(err)
				continue
			}
			res := run(e, n, c)
			if res.Err != nil {
				log.Error(res.Err)
				continue
			}
			printResult(w, res)
		case "3":
			fmt.Fprintln(w, "Goodbye")
			return nil
		default:
			fmt.Fprintln(w, "\nERROR: Invalid option")
		}
	}
}

// readInput prompts for the three public values, one per line.
func readInput(input *bufio.Scanner, w io.Writer) (e, n, c *big.Int, err error) {
	fmt.Fprintln(w, "--------------------Input--------------------------")
	for _, v := range []struct {
		prompt string
		z      **big.Int
	}{
		{"Enter the encryption exponent (e): ", &e},
		{"Enter the RSA modulus (N): ", &n},
		{"Enter the ciphertext (C): ", &c},
	} {
		fmt.Fprint(w, v.prompt)
		if !input.Scan() {
			if err := input.Err(); err != nil {
				return nil, nil, nil, err
			}
			return nil, nil, nil, errors.New("unexpected end of input")
		}
		if *v.z, err = parseUint(input.Text()); err != nil {
			return nil, nil, nil, err
		}
	}
	return e, n, c, nil
}
