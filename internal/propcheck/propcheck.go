// Package propcheck verifies the algebraic properties of vector arithmetic
// over every ordered pair of component kinds.
//
// Pairs are checked concurrently. Each pair draws its own deterministic
// operands, so a report is reproducible from its seed.
package propcheck

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"runtime"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/algo-nvec/numeric"
	"github.com/cwbudde/algo-nvec/internal/operand"
	"github.com/cwbudde/algo-nvec/nvec"
)

// Config controls a check session.
type Config struct {
	Seed    int64
	Rounds  int   // operand draws per pair
	Limit   int64 // magnitude bound for generated components
	Workers int
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the settings used by the check command.
func DefaultConfig() Config {
	return Config{
		Seed:    1,
		Rounds:  8,
		Limit:   1000,
		Workers: runtime.GOMAXPROCS(0),
	}
}

// WithSeed sets the operand seed.
func WithSeed(seed int64) Option {
	return func(cfg *Config) { cfg.Seed = seed }
}

// WithRounds sets the operand draws per pair.
func WithRounds(n int) Option {
	return func(cfg *Config) {
		if n > 0 {
			cfg.Rounds = n
		}
	}
}

// WithLimit bounds generated component magnitudes. Limits above
// operand.MaxLimit are clamped to it.
func WithLimit(limit int64) Option {
	return func(cfg *Config) {
		if limit > 0 {
			cfg.Limit = operand.ClampLimit(limit)
		}
	}
}

// WithWorkers caps the number of pairs checked at once.
func WithWorkers(n int) Option {
	return func(cfg *Config) {
		if n > 0 {
			cfg.Workers = n
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Failure is one violated property.
type Failure struct {
	Property string
	A, B     numeric.Kind
	Err      error
}

func (f Failure) String() string {
	return fmt.Sprintf("%s (%s, %s): %v", f.Property, f.A, f.B, f.Err)
}

// Report summarises a session.
type Report struct {
	Pairs       int // ordered pairs visited
	Unsupported int // pairs without a promotion rule
	Checks      int // property evaluations
	Failures    []Failure
}

// OK reports whether no property failed.
func (r Report) OK() bool { return len(r.Failures) == 0 }

// Run checks every ordered kind pair. The returned error is non-nil only
// when ctx is cancelled; property violations are listed in the report.
// A nil logger disables logging.
func Run(ctx context.Context, cfg Config, logger *zap.Logger) (Report, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	cfg.Limit = operand.ClampLimit(cfg.Limit)

	var (
		mu  sync.Mutex
		rep Report
	)
	merge := func(p pairReport) {
		mu.Lock()
		defer mu.Unlock()
		rep.Pairs++
		rep.Checks += p.checks
		if p.unsupported {
			rep.Unsupported++
		}
		rep.Failures = append(rep.Failures, p.failures...)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)

	kinds := numeric.Kinds()
pairs:
	for _, a := range kinds {
		for _, b := range kinds {
			if gctx.Err() != nil {
				break pairs
			}
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				p := checkPair(cfg, a, b)
				for _, f := range p.failures {
					logger.Warn("property failed",
						zap.String("property", f.Property),
						zap.Stringer("a", f.A),
						zap.Stringer("b", f.B),
						zap.Error(f.Err))
				}
				merge(p)
				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		return rep, err
	}
	if err := ctx.Err(); err != nil {
		return rep, err
	}

	logger.Info("property check finished",
		zap.Int("pairs", rep.Pairs),
		zap.Int("unsupported", rep.Unsupported),
		zap.Int("checks", rep.Checks),
		zap.Int("failures", len(rep.Failures)))
	return rep, nil
}

type pairReport struct {
	unsupported bool
	checks      int
	failures    []Failure
}

func (p *pairReport) record(name string, a, b numeric.Kind, err error) {
	p.checks++
	if err != nil {
		p.failures = append(p.failures, Failure{Property: name, A: a, B: b, Err: err})
	}
}

func checkPair(cfg Config, a, b numeric.Kind) pairReport {
	var p pairReport
	rng := rand.New(rand.NewSource(cfg.Seed ^ int64(a)<<8 ^ int64(b)))

	r, err := numeric.Promote(a, b)
	rba, errBA := numeric.Promote(b, a)
	p.record("promote symmetric", a, b, symmetric(r, err, rba, errBA))
	if a == b {
		var e error
		if err != nil || r != a {
			e = fmt.Errorf("promote(%s, %s) = %s, %v", a, a, r, err)
		}
		p.record("promote reflexive", a, b, e)
	}

	if err != nil {
		p.unsupported = true
		x := nvec.Fill[[3]numeric.Bits](operand.Sample(rng, a, cfg.Limit))
		y := nvec.Fill[[3]numeric.Bits](operand.Sample(rng, b, cfg.Limit))
		p.record("unsupported pair rejected", a, b, rejected(x, y))
		return p
	}

	for round := 0; round < cfg.Rounds; round++ {
		x := vector4(rng, a, cfg.Limit)
		y := vector4(rng, b, cfg.Limit)
		s := operand.Sample(rng, b, cfg.Limit)

		p.record("add componentwise", a, b, componentwise(x, y, nvec.Vec4.Add, numeric.Value.Add))
		p.record("sub componentwise", a, b, componentwise(x, y, nvec.Vec4.Sub, numeric.Value.Sub))
		p.record("mul componentwise", a, b, componentwise(x, y, nvec.Vec4.ElementMul, numeric.Value.Mul))
		p.record("sub anti-commutative", a, b, subAntiCommutes(x, y))
		p.record("mul commutative", a, b, commutes(x, y, nvec.Vec4.ElementMul))
		p.record("add commutative", a, b, commutes(x, y, nvec.Vec4.Add))
		p.record("dot commutative", a, b, dotCommutes(x, y))
		p.record("cross anti-commutative", a, b, crossAntiCommutes(vector3(rng, a, cfg.Limit), vector3(rng, b, cfg.Limit)))
		p.record("scalar order", a, b, scalarOrder(x, s))
		if a == b {
			p.record("mag alias", a, b, magAlias(x))
		}
	}
	return p
}

func symmetric(ab numeric.Kind, errAB error, ba numeric.Kind, errBA error) error {
	if (errAB == nil) != (errBA == nil) || ab != ba {
		return fmt.Errorf("promote differs by order: %s (%v) vs %s (%v)", ab, errAB, ba, errBA)
	}
	return nil
}

func rejected(x, y nvec.Vec3) error {
	var errs []error
	collect := func(op string, err error) {
		if !errors.Is(err, numeric.ErrNoPromotion) {
			errs = append(errs, fmt.Errorf("%s: got %v, want no promotion", op, err))
		}
	}
	_, err := x.Add(y)
	collect("add", err)
	_, err = x.Sub(y)
	collect("sub", err)
	_, err = x.ElementMul(y)
	collect("mul", err)
	_, err = x.Dot(y)
	collect("dot", err)
	_, err = nvec.Cross(x, y)
	collect("cross", err)
	_, err = x.Scale(y.At(0))
	collect("scale", err)
	return errors.Join(errs...)
}

func componentwise(x, y nvec.Vec4, vop func(nvec.Vec4, nvec.Vec4) (nvec.Vec4, error), sop func(numeric.Value, numeric.Value) (numeric.Value, error)) error {
	got, err := vop(x, y)
	if err != nil {
		return err
	}
	for i := 0; i < got.Len(); i++ {
		want, err := sop(x.At(i), y.At(i))
		if err != nil {
			return err
		}
		if !sameValue(got.At(i), want) {
			return fmt.Errorf("component %d: vector %s, scalar %s", i, got.At(i), want)
		}
	}
	return nil
}

func commutes(x, y nvec.Vec4, op func(nvec.Vec4, nvec.Vec4) (nvec.Vec4, error)) error {
	xy, err := op(x, y)
	if err != nil {
		return err
	}
	yx, err := op(y, x)
	if err != nil {
		return err
	}
	if !sameVector(xy, yx) {
		return fmt.Errorf("%s != %s", xy, yx)
	}
	return nil
}

// subAntiCommutes checks (x-y) + (y-x) == 0, which holds for wrapping
// integers and exactly for IEEE floats.
func subAntiCommutes(x, y nvec.Vec4) error {
	xy, err := x.Sub(y)
	if err != nil {
		return err
	}
	yx, err := y.Sub(x)
	if err != nil {
		return err
	}
	return sumIsZero(xy, yx)
}

func crossAntiCommutes(x, y nvec.Vec3) error {
	xy, err := nvec.Cross(x, y)
	if err != nil {
		return err
	}
	yx, err := nvec.Cross(y, x)
	if err != nil {
		return err
	}
	return sumIsZero(xy, yx)
}

func sumIsZero[A nvec.Array](p, q nvec.Vector[A]) error {
	sum, err := p.Add(q)
	if err != nil {
		return err
	}
	for i := 0; i < sum.Len(); i++ {
		c := sum.At(i)
		if !c.IsZero() && !isNaN(c) {
			return fmt.Errorf("%s + %s has non-zero component %d", p, q, i)
		}
	}
	return nil
}

func dotCommutes(x, y nvec.Vec4) error {
	xy, err := x.Dot(y)
	if err != nil {
		return err
	}
	yx, err := y.Dot(x)
	if err != nil {
		return err
	}
	if !sameValue(xy, yx) {
		return fmt.Errorf("x.y = %s, y.x = %s", xy, yx)
	}
	return nil
}

func scalarOrder(v nvec.Vec4, s numeric.Value) error {
	right, err := v.Scale(s)
	if err != nil {
		return err
	}
	left, err := scalarLeft(s, v)
	if err != nil {
		return err
	}
	if !sameVector(left, right) {
		return fmt.Errorf("s*v = %s, v*s = %s", left, right)
	}
	return nil
}

// scalarLeft dispatches s * v through the typed left-multiplication entry
// point for the scalar's kind.
func scalarLeft(s numeric.Value, v nvec.Vec4) (nvec.Vec4, error) {
	switch s.Kind() {
	case numeric.Int8:
		return leftAs[int8](s, v)
	case numeric.Int16:
		return leftAs[int16](s, v)
	case numeric.Int32:
		return leftAs[int32](s, v)
	case numeric.Int64:
		return leftAs[int64](s, v)
	case numeric.Int128:
		return leftAs[numeric.I128](s, v)
	case numeric.Uint8:
		return leftAs[uint8](s, v)
	case numeric.Uint16:
		return leftAs[uint16](s, v)
	case numeric.Uint32:
		return leftAs[uint32](s, v)
	case numeric.Uint64:
		return leftAs[uint64](s, v)
	case numeric.Uint128:
		return leftAs[numeric.U128](s, v)
	case numeric.Float32:
		return leftAs[float32](s, v)
	case numeric.Float64:
		return leftAs[float64](s, v)
	default:
		return nvec.Vec4{}, numeric.ErrInvalidKind
	}
}

func leftAs[T numeric.Element](s numeric.Value, v nvec.Vec4) (nvec.Vec4, error) {
	x, err := numeric.As[T](s)
	if err != nil {
		return nvec.Vec4{}, err
	}
	return nvec.ScalarMul(x, v)
}

func magAlias(v nvec.Vec4) error {
	m1, err1 := v.Magnitude()
	m2, err2 := v.Mag()
	if (err1 == nil) != (err2 == nil) {
		return fmt.Errorf("magnitude error %v, mag error %v", err1, err2)
	}
	if !sameFloat(m1, m2) {
		return fmt.Errorf("magnitude %v != mag %v", m1, m2)
	}
	return nil
}
