package bench

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"runtime"
	"time"

	"github.com/docker/go-units"
	"github.com/op/go-logging"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/rmq"
	"github.com/katalvlaran/rmq/dataset"
)

var log = logging.MustGetLogger("bench")

// Runner executes the configured workload. It is single-use state for one
// Run call sequence: the skip sets persist across sizes so a strategy that
// timed out on some N is not retried on larger N.
type Runner struct {
	cfg  Config
	rng  *rand.Rand
	skip map[Metric]map[rmq.Strategy]bool
}

// NewRunner validates cfg and prepares a Runner.
func NewRunner(cfg Config) (*Runner, error) {
	switch {
	case cfg.Runs < 1:
		return nil, fmt.Errorf("%w: Runs must be >= 1", ErrBadConfig)
	case cfg.Queries < 1:
		return nil, fmt.Errorf("%w: Queries must be >= 1", ErrBadConfig)
	case cfg.Updates < 1:
		return nil, fmt.Errorf("%w: Updates must be >= 1", ErrBadConfig)
	case cfg.Timeout <= 0:
		return nil, fmt.Errorf("%w: Timeout must be positive", ErrBadConfig)
	case len(cfg.Strategies) == 0:
		return nil, fmt.Errorf("%w: at least one strategy required", ErrBadConfig)
	}

	skip := make(map[Metric]map[rmq.Strategy]bool, len(Metrics()))
	for _, m := range Metrics() {
		skip[m] = make(map[rmq.Strategy]bool)
	}

	return &Runner{
		cfg:  cfg,
		rng:  rand.New(rand.NewSource(cfg.Seed)),
		skip: skip,
	}, nil
}

// Run measures every configured strategy against every dataset, sizes
// ascending, and returns one Result per completed (metric, strategy, N)
// triple. Skipped (timed-out) triples produce no Result. Any validation
// error from the structures aborts the run.
func (r *Runner) Run(datasets map[int][]float64) ([]Result, error) {
	if len(datasets) == 0 {
		return nil, ErrNoDatasets
	}

	sizes := dataset.Sizes(datasets)
	var results []Result

	for _, n := range sizes {
		data := datasets[n]
		log.Infof("dataset N=%d", n)

		for _, strat := range r.cfg.Strategies {
			build, buildOK, err := r.runBuild(strat, data)
			if err != nil {
				return nil, err
			}
			query, queryOK, err := r.runOps(MetricQuery, strat, data)
			if err != nil {
				return nil, err
			}
			update, updateOK, err := r.runOps(MetricUpdate, strat, data)
			if err != nil {
				return nil, err
			}

			log.Infof("  %-17s | build %s | mem %s | query %s | update %s",
				strat,
				formatSeconds(build.Mean, buildOK),
				formatMemory(build.MemoryBytes, buildOK),
				formatMicros(query.Mean, queryOK),
				formatMicros(update.Mean, updateOK))

			if buildOK {
				results = append(results, build)
			}
			if queryOK {
				results = append(results, query)
			}
			if updateOK {
				results = append(results, update)
			}
		}
	}

	return results, nil
}

// runBuild measures construction Runs times. The memory column keeps the
// delta of the last completed repetition.
func (r *Runner) runBuild(strat rmq.Strategy, data []float64) (Result, bool, error) {
	if r.skip[MetricBuild][strat] {
		return Result{}, false, nil
	}

	times := make([]float64, 0, r.cfg.Runs)
	var mem uint64
	for i := 0; i < r.cfg.Runs; i++ {
		t, err := r.supervise(func() (timing, error) { return buildOnce(strat, data) })
		if errors.Is(err, ErrTimeout) {
			r.markSkipped(MetricBuild, strat, len(data))
			return Result{}, false, nil
		}
		if err != nil {
			return Result{}, false, fmt.Errorf("bench: %v build on N=%d: %w", strat, len(data), err)
		}
		times = append(times, t.elapsed.Seconds())
		mem = t.mem
	}

	return Result{
		Metric:      MetricBuild,
		N:           len(data),
		Strategy:    strat,
		Mean:        stat.Mean(times, nil),
		StdDev:      stat.PopStdDev(times, nil),
		MemoryBytes: mem,
	}, true, nil
}

// runOps measures the query or update metric Runs times against a fresh
// structure per repetition, returning mean per-operation seconds.
func (r *Runner) runOps(metric Metric, strat rmq.Strategy, data []float64) (Result, bool, error) {
	if r.skip[metric][strat] {
		return Result{}, false, nil
	}

	times := make([]float64, 0, r.cfg.Runs)
	for i := 0; i < r.cfg.Runs; i++ {
		perOp, err := r.opsOnce(metric, strat, data)
		if errors.Is(err, ErrTimeout) {
			r.markSkipped(metric, strat, len(data))
			return Result{}, false, nil
		}
		if err != nil {
			return Result{}, false, fmt.Errorf("bench: %v %s on N=%d: %w", strat, metric, len(data), err)
		}
		times = append(times, perOp)
	}

	return Result{
		Metric:   metric,
		N:        len(data),
		Strategy: strat,
		Mean:     stat.Mean(times, nil),
		StdDev:   stat.PopStdDev(times, nil),
	}, true, nil
}

// opsOnce builds a structure, pre-generates the operation stream outside
// the timed region, then times the whole batch under supervision.
func (r *Runner) opsOnce(metric Metric, strat rmq.Strategy, data []float64) (float64, error) {
	s, err := rmq.New(strat, data)
	if err != nil {
		return 0, err
	}

	n := len(data)
	var batch func() error
	var ops int

	switch metric {
	case MetricQuery:
		ops = r.cfg.Queries
		lefts := make([]int, ops)
		rights := make([]int, ops)
		for i := 0; i < ops; i++ {
			a, b := r.rng.Intn(n), r.rng.Intn(n)
			if a > b {
				a, b = b, a
			}
			lefts[i], rights[i] = a, b
		}
		batch = func() error {
			for i := 0; i < ops; i++ {
				if _, qerr := s.Query(lefts[i], rights[i]); qerr != nil {
					return qerr
				}
			}

			return nil
		}
	case MetricUpdate:
		ops = r.cfg.Updates
		idx := make([]int, ops)
		val := make([]float64, ops)
		for i := 0; i < ops; i++ {
			idx[i] = r.rng.Intn(n)
			val[i] = r.rng.Float64()*2000 - 1000
		}
		batch = func() error {
			for i := 0; i < ops; i++ {
				if uerr := s.Update(idx[i], val[i]); uerr != nil {
					return uerr
				}
			}

			return nil
		}
	default:
		return 0, fmt.Errorf("%w: metric %q has no operation stream", ErrBadConfig, metric)
	}

	t, err := r.supervise(func() (timing, error) {
		start := time.Now()
		if berr := batch(); berr != nil {
			return timing{}, berr
		}

		return timing{elapsed: time.Since(start)}, nil
	})
	if err != nil {
		return 0, err
	}

	return t.elapsed.Seconds() / float64(ops), nil
}

// timing is the payload of one supervised run.
type timing struct {
	elapsed time.Duration
	mem     uint64
}

// supervise runs fn under the configured timeout. The structures expose no
// cancellation, so a timed-out fn keeps running to completion in the
// background and its outcome is discarded.
func (r *Runner) supervise(fn func() (timing, error)) (timing, error) {
	ctx, cancel := context.WithTimeout(context.Background(), r.cfg.Timeout)
	defer cancel()

	type outcome struct {
		t   timing
		err error
	}
	done := make(chan outcome, 1)
	go func() {
		t, err := fn()
		done <- outcome{t: t, err: err}
	}()

	select {
	case out := <-done:
		return out.t, out.err
	case <-ctx.Done():
		return timing{}, ErrTimeout
	}
}

// buildOnce times one construction and the heap growth around it.
func buildOnce(strat rmq.Strategy, data []float64) (timing, error) {
	runtime.GC()
	var before, after runtime.MemStats
	runtime.ReadMemStats(&before)

	start := time.Now()
	s, err := rmq.New(strat, data)
	elapsed := time.Since(start)
	if err != nil {
		return timing{}, err
	}

	runtime.ReadMemStats(&after)
	runtime.KeepAlive(s)

	var mem uint64
	if after.HeapAlloc > before.HeapAlloc {
		mem = after.HeapAlloc - before.HeapAlloc
	}

	return timing{elapsed: elapsed, mem: mem}, nil
}

// markSkipped records a timeout and logs the decision once.
func (r *Runner) markSkipped(metric Metric, strat rmq.Strategy, n int) {
	r.skip[metric][strat] = true
	log.Warningf("%v %s on N=%d exceeded %v; skipping this and larger sizes",
		strat, metric, n, r.cfg.Timeout)
}

func formatSeconds(mean float64, ok bool) string {
	if !ok {
		return "N/A"
	}

	return fmt.Sprintf("%.6fs", mean)
}

func formatMicros(mean float64, ok bool) string {
	if !ok {
		return "N/A"
	}

	return fmt.Sprintf("%9.2fµs", mean*1e6)
}

func formatMemory(bytes uint64, ok bool) string {
	if !ok {
		return "N/A"
	}

	return units.BytesSize(float64(bytes))
}
