// Package bench times elementwise vector multiplication across component
// kinds and vector lengths.
//
// Each run draws two random int32 values, casts them into every configured
// kind, fills a pair of vectors with them and times repeated ElementMul
// calls. Per (kind, size) timings are summarised across runs.
package bench

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-nvec/numeric"
	"github.com/cwbudde/algo-nvec/nvec"
)

// Measurement is one timed batch.
type Measurement struct {
	Run     int     `yaml:"run"`
	Kind    string  `yaml:"kind"`
	Size    int     `yaml:"size"`
	A       int32   `yaml:"a"`
	B       int32   `yaml:"b"`
	NsPerOp float64 `yaml:"ns_per_op"`
}

// Summary aggregates the measurements of one (kind, size) cell.
type Summary struct {
	Kind    string  `yaml:"kind"`
	Size    int     `yaml:"size"`
	Samples int     `yaml:"samples"`
	MeanNs  float64 `yaml:"mean_ns"`
	StdNs   float64 `yaml:"std_ns"`
}

// Report is the outcome of Run.
type Report struct {
	ID           string        `yaml:"id"`
	Started      time.Time     `yaml:"started"`
	Elapsed      time.Duration `yaml:"elapsed"`
	Seed         int64         `yaml:"seed"`
	Measurements []Measurement `yaml:"measurements"`
	Summaries    []Summary     `yaml:"summaries"`
}

type measureFunc func(a, b numeric.Value, iters int) (time.Duration, error)

func measure[A nvec.Array](a, b numeric.Value, iters int) (time.Duration, error) {
	x := nvec.Fill[A](a)
	y := nvec.Fill[A](b)

	start := time.Now()
	for i := 0; i < iters; i++ {
		if _, err := x.ElementMul(y); err != nil {
			return 0, err
		}
	}
	return time.Since(start), nil
}

// measurers is indexed by vector length.
var measurers = [nvec.MaxDim + 1]measureFunc{
	1:  measure[[1]numeric.Bits],
	2:  measure[[2]numeric.Bits],
	3:  measure[[3]numeric.Bits],
	4:  measure[[4]numeric.Bits],
	5:  measure[[5]numeric.Bits],
	6:  measure[[6]numeric.Bits],
	7:  measure[[7]numeric.Bits],
	8:  measure[[8]numeric.Bits],
	9:  measure[[9]numeric.Bits],
	10: measure[[10]numeric.Bits],
	11: measure[[11]numeric.Bits],
	12: measure[[12]numeric.Bits],
	13: measure[[13]numeric.Bits],
	14: measure[[14]numeric.Bits],
	15: measure[[15]numeric.Bits],
	16: measure[[16]numeric.Bits],
}

// Run executes the session described by cfg. It stops between measurements
// when ctx is cancelled. A nil logger disables logging.
func Run(ctx context.Context, cfg Config, logger *zap.Logger) (Report, error) {
	if err := cfg.Validate(); err != nil {
		return Report{}, err
	}
	kinds, err := cfg.parsedKinds()
	if err != nil {
		return Report{}, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rep := Report{
		ID:      uuid.NewString(),
		Started: time.Now(),
		Seed:    seed,
	}
	logger.Info("bench started",
		zap.String("id", rep.ID),
		zap.Int64("seed", seed),
		zap.Int("kinds", len(kinds)),
		zap.Ints("sizes", cfg.Sizes),
		zap.Int("runs", cfg.Runs))

	rng := rand.New(rand.NewSource(seed))
	for run := 0; run < cfg.Runs; run++ {
		a, b := int32(rng.Uint32()), int32(rng.Uint32())
		for _, size := range cfg.Sizes {
			for _, k := range kinds {
				if err := ctx.Err(); err != nil {
					return rep, err
				}
				m, err := measureOne(k, size, a, b, cfg.Iterations)
				if err != nil {
					return rep, err
				}
				m.Run = run
				rep.Measurements = append(rep.Measurements, m)
				logger.Debug("measured",
					zap.String("kind", m.Kind),
					zap.Int("size", size),
					zap.Float64("ns_per_op", m.NsPerOp))
			}
		}
	}

	rep.Summaries = summarize(rep.Measurements)
	rep.Elapsed = time.Since(rep.Started)
	logger.Info("bench finished",
		zap.String("id", rep.ID),
		zap.Int("measurements", len(rep.Measurements)),
		zap.Duration("elapsed", rep.Elapsed))
	return rep, nil
}

func measureOne(k numeric.Kind, size int, a, b int32, iters int) (Measurement, error) {
	va, err := numeric.Of(a).Convert(k)
	if err != nil {
		return Measurement{}, err
	}
	vb, err := numeric.Of(b).Convert(k)
	if err != nil {
		return Measurement{}, err
	}

	d, err := measurers[size](va, vb, iters)
	if err != nil {
		return Measurement{}, fmt.Errorf("bench: %s size %d: %w", k, size, err)
	}
	return Measurement{
		Kind:    k.String(),
		Size:    size,
		A:       a,
		B:       b,
		NsPerOp: float64(d.Nanoseconds()) / float64(iters),
	}, nil
}

func summarize(ms []Measurement) []Summary {
	type cell struct {
		kind string
		size int
	}
	var order []cell
	samples := make(map[cell][]float64)
	for _, m := range ms {
		c := cell{m.Kind, m.Size}
		if _, ok := samples[c]; !ok {
			order = append(order, c)
		}
		samples[c] = append(samples[c], m.NsPerOp)
	}

	out := make([]Summary, 0, len(order))
	for _, c := range order {
		xs := samples[c]
		s := Summary{Kind: c.kind, Size: c.size, Samples: len(xs)}
		if len(xs) > 1 {
			s.MeanNs, s.StdNs = stat.MeanStdDev(xs, nil)
		} else {
			s.MeanNs = xs[0]
		}
		out = append(out, s)
	}
	return out
}
