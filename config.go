package crmath

import (
	"errors"
	"fmt"
	"os"

	"github.com/shabbyrobe/go-crmath/nullcheck"
	"sigs.k8s.io/yaml"
)

// MathOptimization names a trade-off the library may make.
type MathOptimization string

const (
	// SkipAccuratePass returns the fast-pass result even when its rounding
	// test fails. Results are then faithful but not always correctly
	// rounded.
	SkipAccuratePass MathOptimization = "skip-accurate-pass"

	// NoExcept makes the Status variants report no exceptions.
	NoExcept MathOptimization = "no-except"

	// Fast implies SkipAccuratePass.
	Fast MathOptimization = "fast"

	// SmallTables and NoErrno are accepted for compatibility with other
	// members of the function family and have no effect here.
	SmallTables MathOptimization = "small-tables"
	NoErrno     MathOptimization = "no-errno"
)

func (o MathOptimization) known() bool {
	switch o {
	case SkipAccuratePass, NoExcept, Fast, SmallTables, NoErrno:
		return true
	}
	return false
}

type MathOpts struct {
	Optimizations []MathOptimization `json:"optimizations,omitempty"`
}

func (m MathOpts) Has(o MathOptimization) bool {
	for _, v := range m.Optimizations {
		if v == o {
			return true
		}
	}
	return false
}

// Config selects the behaviour of a Lib. It is read from YAML or JSON:
//
//	null_checks: true
//	math:
//	  optimizations: [no-except]
type Config struct {
	NullChecks bool     `json:"null_checks"`
	Math       MathOpts `json:"math"`
}

var ErrUnknownOptimization = errors.New("crmath: unknown math optimization")

// DefaultConfig enables null checks and every accuracy pass.
func DefaultConfig() Config {
	return Config{NullChecks: true}
}

func (c Config) Validate() error {
	for _, o := range c.Math.Optimizations {
		if !o.known() {
			return fmt.Errorf("%w %q", ErrUnknownOptimization, o)
		}
	}
	return nil
}

// ParseConfig decodes a YAML or JSON document over DefaultConfig. Unknown
// fields and unknown optimizations are errors.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("crmath: parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("crmath: load config: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("%w (in %s)", err, path)
	}
	return cfg, nil
}

// Lib is an immutable, resolved Config. It is safe for concurrent use.
type Lib struct {
	cfg          Config
	skipAccurate bool
	noExcept     bool
	guard        nullcheck.Guard
}

var defaultLib = mustNew(DefaultConfig())

func New(cfg Config) (*Lib, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	opts := cfg.Math
	cfg.Math.Optimizations = append([]MathOptimization(nil), opts.Optimizations...)
	return &Lib{
		cfg:          cfg,
		skipAccurate: opts.Has(SkipAccuratePass) || opts.Has(Fast),
		noExcept:     opts.Has(NoExcept),
		guard:        nullcheck.New(cfg.NullChecks),
	}, nil
}

func mustNew(cfg Config) *Lib {
	l, err := New(cfg)
	if err != nil {
		panic(err)
	}
	return l
}

// Default returns the Lib behind the package-level functions.
func Default() *Lib { return defaultLib }

func (l *Lib) Config() Config { return l.cfg }

func (l *Lib) Guard() nullcheck.Guard { return l.guard }

func (l *Lib) Sin(x float64) float64 {
	y, _ := l.eval(x, false)
	return y
}

func (l *Lib) Cos(x float64) float64 {
	y, _ := l.eval(x, true)
	return y
}

func (l *Lib) SinStatus(x float64) (float64, Exception) { return l.eval(x, false) }
func (l *Lib) CosStatus(x float64) (float64, Exception) { return l.eval(x, true) }

// Sincos returns Sin(x) and Cos(x).
func (l *Lib) Sincos(x float64) (sin, cos float64) {
	return l.Sin(x), l.Cos(x)
}

// SincosTo stores Sin(x) in *sin and Cos(x) in *cos. A nil destination
// panics with a *nullcheck.Error when null checks are enabled and is
// skipped otherwise.
func (l *Lib) SincosTo(x float64, sin, cos *float64) {
	nullcheck.NewRef(l.guard, sin).Set(l.Sin(x))
	nullcheck.NewRef(l.guard, cos).Set(l.Cos(x))
}
