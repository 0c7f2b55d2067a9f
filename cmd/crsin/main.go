// Command crsin evaluates the correctly rounded sine and cosine from the
// command line and checks them against an arbitrary-precision oracle.
//
//	crsin sin 1 0x1p1023 bits:7ff8000000000001
//	crsin reduce --dump 1e300
//	crsin check --samples 100000 --seed 1
package main

import (
	"fmt"
	"io"
	"log"
	"math"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/davecgh/go-spew/spew"
	crmath "github.com/shabbyrobe/go-crmath"
	"github.com/shabbyrobe/go-crmath/ctype"
	"github.com/shabbyrobe/go-crmath/internal/oracle"
	"github.com/spf13/cobra"
)

const configEnv = "CRMATH_CONFIG"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}

type cli struct {
	lib *crmath.Lib
}

func newRootCmd() *cobra.Command {
	var configPath string
	c := &cli{lib: crmath.Default()}

	root := &cobra.Command{
		Use:           "crsin",
		Short:         "Correctly rounded sine and cosine",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if configPath == "" {
				return nil
			}
			cfg, err := crmath.LoadConfig(configPath)
			if err != nil {
				return err
			}
			c.lib, err = crmath.New(cfg)
			return err
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", os.Getenv(configEnv),
		"YAML config file (default from $"+configEnv+")")

	root.AddCommand(
		c.evalCmd("sin", "Print sin(x) for each argument", (*crmath.Lib).SinStatus),
		c.evalCmd("cos", "Print cos(x) for each argument", (*crmath.Lib).CosStatus),
		c.sincosCmd(),
		reduceCmd(),
		c.checkCmd(),
	)
	return root
}

func (c *cli) evalCmd(name, short string, fn func(*crmath.Lib, float64) (float64, crmath.Exception)) *cobra.Command {
	return &cobra.Command{
		Use:   name + " <x>...",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				x, err := parseArg(arg)
				if err != nil {
					return err
				}
				y, exc := fn(c.lib, x)
				printResult(cmd.OutOrStdout(), name, x, y, exc)
			}
			return nil
		},
	}
}

func (c *cli) sincosCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sincos <x>...",
		Short: "Print sin(x) and cos(x) for each argument",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				x, err := parseArg(arg)
				if err != nil {
					return err
				}
				var sin, cos float64
				c.lib.SincosTo(x, &sin, &cos)
				printResult(cmd.OutOrStdout(), "sin", x, sin, 0)
				printResult(cmd.OutOrStdout(), "cos", x, cos, 0)
			}
			return nil
		},
	}
}

func printResult(w io.Writer, name string, x, y float64, exc crmath.Exception) {
	fmt.Fprintf(w, "%s(%v) = %v\t%#016x", name, x, y, math.Float64bits(y))
	if exc != 0 {
		fmt.Fprintf(w, "\t%s", exc)
	}
	fmt.Fprintln(w)
}

func reduceCmd() *cobra.Command {
	var dump bool
	cmd := &cobra.Command{
		Use:   "reduce <x>...",
		Short: "Print the quadrant and reduced argument of x",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, arg := range args {
				x, err := parseArg(arg)
				if err != nil {
					return err
				}
				r := crmath.Reduce(x)
				if dump {
					spew.Fdump(out, r)
					continue
				}
				fmt.Fprintf(out, "%v = %d*pi/2 + (%x + %x)\n", x, r.Quadrant, r.R.Hi, r.R.Lo)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&dump, "dump", false, "Dump the reduced argument structure")
	return cmd
}

func (c *cli) checkCmd() *cobra.Command {
	var (
		samples int
		seed    int64
		fn      string
	)
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Compare random arguments against the arbitrary-precision oracle",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			log.Println("seed:", seed)

			var got func(float64) float64
			switch fn {
			case "sin":
				got = c.lib.Sin
			case "cos":
				got = c.lib.Cos
			default:
				return fmt.Errorf("crsin: unknown function %q", fn)
			}
			res := check(rand.New(rand.NewSource(seed)), samples, fn, got)
			fmt.Fprintf(cmd.OutOrStdout(), "samples: %d\nmax ulp: %g at %v\nfailures: %d\n",
				res.samples, res.maxULP, res.worst, res.failures)
			if res.failures > 0 {
				return fmt.Errorf("crsin: %d of %d results not correctly rounded", res.failures, res.samples)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&samples, "samples", 10000, "Number of random arguments")
	cmd.Flags().Int64Var(&seed, "seed", 0, "RNG seed (0 == current nanotime)")
	cmd.Flags().StringVar(&fn, "func", "sin", "Function to check (sin, cos)")
	return cmd
}

type checkResult struct {
	samples  int
	failures int
	maxULP   float64
	worst    float64
}

// randomArg draws a finite float64 with a uniformly chosen biased
// exponent, so every binade from the subnormals up is sampled equally.
func randomArg(rng *rand.Rand) float64 {
	exp := uint64(rng.Intn(0x7FF))
	frac := rng.Uint64() & (1<<52 - 1)
	sign := uint64(rng.Intn(2)) << 63
	return math.Float64frombits(sign | exp<<52 | frac)
}

func check(rng *rand.Rand, samples int, fn string, got func(float64) float64) checkResult {
	want := oracle.Sin
	if fn == "cos" {
		want = oracle.Cos
	}
	res := checkResult{samples: samples}
	for i := 0; i < samples; i++ {
		x := randomArg(rng)
		ulp := oracle.ULPError(got(x), want(x))
		if ulp > 0.5 {
			res.failures++
		}
		if ulp > res.maxULP {
			res.maxULP, res.worst = ulp, x
		}
	}
	return res
}

const bitsPrefix = "bits:"

// parseArg accepts anything strconv.ParseFloat does, plus "bits:" followed
// by up to 16 hex digits of a raw IEEE 754 bit pattern.
func parseArg(s string) (float64, error) {
	if !strings.HasPrefix(s, bitsPrefix) {
		x, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("crsin: bad argument %q: %w", s, err)
		}
		return x, nil
	}

	digits := strings.TrimPrefix(s, bitsPrefix)
	if digits == "" || len(digits) > 16 {
		return 0, fmt.Errorf("crsin: bad bit pattern %q", s)
	}
	for i := 0; i < len(digits); i++ {
		if !ctype.IsXDigitL(int(digits[i]), ctype.CLocale) {
			return 0, fmt.Errorf("crsin: bad bit pattern %q", s)
		}
	}
	b, err := strconv.ParseUint(digits, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("crsin: bad bit pattern %q: %w", s, err)
	}
	return math.Float64frombits(b), nil
}
