// Command gentables writes tables.go: the digits of 2/π used by the
// Payne-Hanek reducer, the Cody-Waite split of π/2 and the Taylor
// coefficients of both evaluation passes.
//
//	go run ./misc/gentables -out tables.go
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"log"
	"math"
	"math/big"
	"os"
	"strconv"

	"github.com/davecgh/go-spew/spew"
	"github.com/shabbyrobe/go-crmath/internal/oracle"
)

// Enough words that the window read for the largest float64 exponent stays
// inside the table.
const defaultFracWords = 22

type config struct {
	out       string
	dump      bool
	fracWords int
	sinDD     int
	cosDD     int
	sinDyadic int
	cosDyadic int
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	var cfg config
	flag.StringVar(&cfg.out, "out", "tables.go", "Output file ('-' for stdout)")
	flag.BoolVar(&cfg.dump, "dump", false, "Dump intermediate values to stderr")
	flag.IntVar(&cfg.fracWords, "words", defaultFracWords, "64-bit words of 2/π after the binary point")
	flag.IntVar(&cfg.sinDD, "sin-dd", 14, "Double-double sine coefficients")
	flag.IntVar(&cfg.cosDD, "cos-dd", 15, "Double-double cosine coefficients")
	flag.IntVar(&cfg.sinDyadic, "sin-dyadic", 16, "Dyadic sine coefficients")
	flag.IntVar(&cfg.cosDyadic, "cos-dyadic", 17, "Dyadic cosine coefficients")
	flag.Parse()

	t := compute(cfg)
	if cfg.dump {
		spew.Fdump(os.Stderr, t)
	}

	src, err := format.Source(t.render())
	if err != nil {
		return fmt.Errorf("gentables: format: %w", err)
	}
	if cfg.out == "-" {
		_, err = os.Stdout.Write(src)
		return err
	}
	if err := os.WriteFile(cfg.out, src, 0644); err != nil {
		return fmt.Errorf("gentables: %w", err)
	}
	log.Println("wrote", cfg.out)
	return nil
}

type dyadicLit struct {
	Neg    bool
	Exp    int
	Hi, Lo uint64
}

type ddLit struct {
	Hi, Lo float64
}

type tables struct {
	TwoOverPiWords []uint64
	TwoOverPi      float64
	C1, C2, C3     float64
	Pio2           ddLit
	Pio2Dyadic     dyadicLit
	SinDD, CosDD   []ddLit
	SinDyadic      []dyadicLit
	CosDyadic      []dyadicLit
}

func compute(cfg config) *tables {
	prec := uint(oracle.ReducePrec)
	pi := oracle.Pi(prec)
	pio2 := new(big.Float).SetPrec(prec).SetMantExp(pi, -1)
	twoOverPi := new(big.Float).SetPrec(prec).Quo(big.NewFloat(2), pi)

	t := &tables{}

	// Two leading words: padding, then the (zero) integer part.
	t.TwoOverPiWords = []uint64{0, 0}
	scaled := new(big.Float).SetPrec(prec).SetMantExp(twoOverPi, 64*cfg.fracWords)
	digits, _ := scaled.Int(nil)
	mask := new(big.Int).SetUint64(math.MaxUint64)
	for i := cfg.fracWords - 1; i >= 0; i-- {
		w := new(big.Int).Rsh(digits, uint(64*i))
		t.TwoOverPiWords = append(t.TwoOverPiWords, w.And(w, mask).Uint64())
	}
	t.TwoOverPi, _ = twoOverPi.Float64()

	// pio2C1 keeps 33 bits: floor(π/2 * 2**32) / 2**32.
	c1 := new(big.Float).SetPrec(prec).SetMantExp(pio2, 32)
	c1i, _ := c1.Int(nil)
	c1.SetInt(c1i)
	c1.SetMantExp(c1, -32)
	t.C1, _ = c1.Float64()

	rest := new(big.Float).SetPrec(prec).Sub(pio2, c1)
	t.C2, _ = rest.Float64()
	rest.Sub(rest, big.NewFloat(t.C2))
	t.C3, _ = rest.Float64()

	pio2Rat, _ := pio2.Rat(nil)
	t.Pio2 = toDD(pio2Rat)
	t.Pio2Dyadic = toDyadic(pio2Rat)

	for k := 0; k < max(cfg.sinDD, cfg.sinDyadic); k++ {
		c := taylor(2*k + 1)
		if k < cfg.sinDD {
			t.SinDD = append(t.SinDD, toDD(c))
		}
		if k < cfg.sinDyadic {
			t.SinDyadic = append(t.SinDyadic, toDyadic(c))
		}
	}
	for k := 0; k < max(cfg.cosDD, cfg.cosDyadic); k++ {
		c := taylor(2 * k)
		if k < cfg.cosDD {
			t.CosDD = append(t.CosDD, toDD(c))
		}
		if k < cfg.cosDyadic {
			t.CosDyadic = append(t.CosDyadic, toDyadic(c))
		}
	}
	return t
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// taylor returns (-1)**(n/2) / n!.
func taylor(n int) *big.Rat {
	fact := new(big.Int).MulRange(1, int64(n)) // 0! == 1 as an empty range
	r := new(big.Rat).SetFrac(big.NewInt(1), fact)
	if (n/2)%2 == 1 {
		r.Neg(r)
	}
	return r
}

func toDD(v *big.Rat) ddLit {
	hi, _ := v.Float64()
	lo, _ := new(big.Rat).Sub(v, new(big.Rat).SetFloat64(hi)).Float64()
	return ddLit{hi, lo}
}

// toDyadic rounds |v| to a 128-bit significand, half away from zero.
func toDyadic(v *big.Rat) dyadicLit {
	neg := v.Sign() < 0
	num := new(big.Int).Abs(v.Num())
	den := v.Denom()

	e := num.BitLen() - den.BitLen()
	var m *big.Int
	for {
		m = scaleRound(num, den, 127-e)
		switch {
		case m.BitLen() > 128:
			e++
			continue
		case m.BitLen() < 128:
			e--
			continue
		}
		break
	}
	lo := new(big.Int).And(m, new(big.Int).SetUint64(math.MaxUint64)).Uint64()
	hi := new(big.Int).Rsh(m, 64).Uint64()
	return dyadicLit{Neg: neg, Exp: e - 127, Hi: hi, Lo: lo}
}

// scaleRound returns round(num/den * 2**k), half up.
func scaleRound(num, den *big.Int, k int) *big.Int {
	n := new(big.Int).Set(num)
	d := new(big.Int).Set(den)
	if k >= 0 {
		n.Lsh(n, uint(k)+1)
	} else {
		n.Lsh(n, 1)
		d.Lsh(d, uint(-k))
	}
	n.Quo(n, d)
	n.Add(n, big.NewInt(1))
	return n.Rsh(n, 1)
}

func hexFloat(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'x', -1, 64)
}

func (d dyadicLit) String() string {
	return fmt.Sprintf("{%v, %d, U128{%#016x, %#016x}}", d.Neg, d.Exp, d.Hi, d.Lo)
}

func (t *tables) render() []byte {
	var buf bytes.Buffer
	p := func(format string, args ...interface{}) { fmt.Fprintf(&buf, format+"\n", args...) }

	p("// Code generated by misc/gentables; DO NOT EDIT.")
	p("")
	p("package crmath")
	p("")
	p("// twoOverPiWords is the binary expansion of 2/π, 64 bits per word, most")
	p("// significant first. Word 0 is padding for small exponents and word 1 holds")
	p("// the integer part; the fraction starts at word 2.")
	p("var twoOverPiWords = [...]uint64{")
	for i := 0; i < len(t.TwoOverPiWords); i += 4 {
		buf.WriteString("\t")
		for j := i; j < i+4 && j < len(t.TwoOverPiWords); j++ {
			fmt.Fprintf(&buf, "%#016x, ", t.TwoOverPiWords[j])
		}
		buf.WriteString("\n")
	}
	p("}")
	p("")
	p("const (")
	p("\ttwoOverPi = %s", hexFloat(t.TwoOverPi))
	p("")
	p("\t// π/2 = pio2C1 + pio2C2 + pio2C3 + O(2**-139). pio2C1 has 33 significant")
	p("\t// bits so that q*pio2C1 is exact for q < 2**20.")
	p("\tpio2C1 = %s", hexFloat(t.C1))
	p("\tpio2C2 = %s", hexFloat(t.C2))
	p("\tpio2C3 = %s", hexFloat(t.C3))
	p("")
	p("\tpio2Hi = %s", hexFloat(t.Pio2.Hi))
	p("\tpio2Lo = %s", hexFloat(t.Pio2.Lo))
	p(")")
	p("")

	ddTable := func(name, doc string, cs []ddLit) {
		p("// %s", doc)
		p("var %s = [...]DD{", name)
		for _, c := range cs {
			p("\t{%s, %s},", hexFloat(c.Hi), hexFloat(c.Lo))
		}
		p("}")
		p("")
	}
	dyTable := func(name, doc string, cs []dyadicLit) {
		p("// %s", doc)
		p("var %s = [...]dyadic{", name)
		for _, c := range cs {
			p("\t%s,", c)
		}
		p("}")
		p("")
	}

	ddTable("sinCoeffsDD", "sinCoeffsDD[k] = (-1)**k / (2k+1)!", t.SinDD)
	ddTable("cosCoeffsDD", "cosCoeffsDD[k] = (-1)**k / (2k)!", t.CosDD)
	p("var pio2Dyadic = dyadic%s", t.Pio2Dyadic)
	p("")
	dyTable("sinCoeffsDyadic", "sinCoeffsDyadic[k] = (-1)**k / (2k+1)!, rounded to 128 bits.", t.SinDyadic)
	dyTable("cosCoeffsDyadic", "cosCoeffsDyadic[k] = (-1)**k / (2k)!, rounded to 128 bits.", t.CosDyadic)
	return buf.Bytes()
}
