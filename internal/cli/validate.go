package cli

import (
	"go.uber.org/zap"

	"github.com/AndreyAkinshin/h2verify/internal/check"
	"github.com/AndreyAkinshin/h2verify/internal/errors"
	"github.com/AndreyAkinshin/h2verify/internal/logging"
	"github.com/AndreyAkinshin/h2verify/internal/output"
	"github.com/AndreyAkinshin/h2verify/internal/record"
	"github.com/AndreyAkinshin/h2verify/internal/report"
)

// validation is a single run: load both records, check, report.
// A load failure ends the run before any check executes; once checking
// starts, every check runs and the report is always produced.
type validation struct {
	opts     *Options
	out      *output.Writer
	log      *zap.Logger
	resolver func() (record.Resolver, error)
}

// run validates the candidate at path and returns the process exit code.
// A non-nil error means a record could not be loaded or the summary could
// not be written.
func (v *validation) run(path string) (int, error) {
	v.out.Info("Validating H2 Hamiltonian implementation...")

	v.log.Debug("phase", zap.String("phase", logging.PhaseLoading))
	bench, err := v.loadBenchmark()
	if err != nil {
		return errors.ExitFailure, err
	}
	v.out.Loaded("Loaded benchmark from: %s", bench.Path)
	v.log.Debug("benchmark loaded",
		zap.String("path", bench.Path),
		zap.Strings("tolerances", bench.Tolerances.Names()))
	if bench.NotConverged() {
		v.out.Warning("benchmark computation did not converge (%s); reference values may be unreliable", bench.Computation.Method)
	}

	cand, err := record.LoadCandidate(path)
	if err != nil {
		return errors.ExitFailure, err
	}
	v.out.Loaded("Loaded candidate results from: %s", cand.Path)
	v.log.Debug("candidate loaded", zap.String("path", cand.Path))

	v.log.Debug("phase", zap.String("phase", logging.PhaseValidating))
	result := check.Run(cand, bench)
	for _, r := range result.Checks {
		v.log.Debug("check finished",
			zap.String("check", r.Name),
			zap.Bool("passed", r.Passed),
			zap.Int("issues", len(r.Issues)))
		for _, is := range r.Issues {
			v.log.Debug("issue",
				zap.String("check", r.Name),
				zap.Stringer("kind", is.Kind),
				zap.String("field", is.Field))
		}
	}

	v.log.Debug("phase", zap.String("phase", logging.PhaseReporting))
	v.out.Println("")
	v.out.Report(report.Render(result, cand, bench))

	if !v.opts.NoSummary {
		summaryPath, err := report.WriteSummary(result, cand.Path, v.opts.SummaryName)
		if err != nil {
			return errors.ExitFailure, err
		}
		v.out.Info("")
		v.out.Info("Validation summary saved to: %s", summaryPath)
	}

	v.log.Debug("done", zap.Bool("passed", result.Overall.Passed))
	if result.Overall.Passed {
		return errors.ExitSuccess, nil
	}
	return errors.ExitFailure, nil
}

// loadBenchmark loads the benchmark from an explicit path when one is set,
// and otherwise resolves the fixed file name.
func (v *validation) loadBenchmark() (*record.Benchmark, error) {
	if v.opts.Benchmark != "" {
		v.log.Debug("using explicit benchmark", zap.String("path", v.opts.Benchmark))
		return record.LoadBenchmarkFile(v.opts.Benchmark)
	}

	r, err := v.resolver()
	if err != nil {
		return nil, err
	}
	v.log.Debug("resolving benchmark", zap.Strings("candidates", r.Candidates(record.BenchmarkFileName)))
	b, err := r.LoadBenchmark()
	if errors.IsKind(err, errors.KindNotFound) {
		return nil, errors.WithHint(err, "generate the benchmark first, or pass --benchmark <path>")
	}
	return b, err
}
