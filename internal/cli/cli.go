// Package cli provides command-line interface functionality for h2verify.
package cli

import (
	stderrors "errors"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/AndreyAkinshin/h2verify/internal/errors"
	"github.com/AndreyAkinshin/h2verify/internal/logging"
	"github.com/AndreyAkinshin/h2verify/internal/output"
	"github.com/AndreyAkinshin/h2verify/internal/record"
	"github.com/AndreyAkinshin/h2verify/internal/report"
)

// Version is set at build time.
var Version = "dev"

// EnvBenchmark names an explicit benchmark path, used when --benchmark is not given.
const EnvBenchmark = "H2VERIFY_BENCHMARK"

// Options holds parsed command-line flags.
type Options struct {
	Benchmark   string
	SummaryName string
	NoSummary   bool
	NoColor     bool
	Quiet       bool
	Verbose     bool
}

// environment is everything a run touches outside its arguments.
type environment struct {
	stdout   io.Writer
	stderr   io.Writer
	terminal bool
	getenv   func(string) string
	resolver func() (record.Resolver, error)
}

func defaultEnvironment() environment {
	return environment{
		stdout:   os.Stdout,
		stderr:   os.Stderr,
		terminal: output.IsTerminal(os.Stdout),
		getenv:   os.Getenv,
		resolver: record.DefaultResolver,
	}
}

// Run executes the CLI with the given arguments and returns an exit code.
func Run(args []string) int {
	return run(args, defaultEnvironment())
}

func run(args []string, env environment) int {
	exitCode := errors.ExitSuccess
	out := output.NewWithWriters(env.stdout, env.stderr, false)

	cmd := newRootCmd(env, out, &exitCode)
	cmd.SetArgs(args)
	cmd.SetOut(env.stdout)
	cmd.SetErr(env.stderr)

	if err := cmd.Execute(); err != nil {
		reportError(out, err)
		return errors.GetExitCode(err)
	}
	return exitCode
}

func newRootCmd(env environment, out *output.Writer, exitCode *int) *cobra.Command {
	opts := &Options{}

	cmd := &cobra.Command{
		Use:   "h2verify <results.json>",
		Short: "Validate H2 Hamiltonian results against a benchmark",
		Long: `h2verify compares a candidate H2 results record against the reference
benchmark h2_benchmark.json using absolute per-field tolerances.

The benchmark is looked up in the current directory first and then next to
the h2verify executable. A summary is written to validation_summary.txt in
the directory of the results file.

Exit status is 0 when every check passes and 1 otherwise.`,
		Example: `  h2verify ../Ralph_Test_H2_Hamiltonian/h2_results.json
  h2verify --benchmark ref/h2_benchmark.json h2_results.yaml`,
		Version:       Version,
		Args:          exactlyOneArg,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("benchmark") {
				opts.Benchmark = env.getenv(EnvBenchmark)
			}
			applyOutputOptions(out, opts, env)

			logger := logging.New(opts.Verbose, env.stderr)
			defer func() { _ = logger.Sync() }()

			v := &validation{
				opts:     opts,
				out:      out,
				log:      logger,
				resolver: env.resolver,
			}
			code, err := v.run(args[0])
			if err != nil {
				return err
			}
			*exitCode = code
			return nil
		},
	}

	cmd.SetVersionTemplate("h2verify {{.Version}}\n")

	f := cmd.Flags()
	f.StringVar(&opts.Benchmark, "benchmark", "", "benchmark record to use instead of looking up "+record.BenchmarkFileName+" (env "+EnvBenchmark+")")
	f.StringVar(&opts.SummaryName, "summary-name", report.SummaryFileName, "file name of the summary written next to the results file")
	f.BoolVar(&opts.NoSummary, "no-summary", false, "do not write the summary file")
	f.BoolVar(&opts.NoColor, "no-color", false, "disable colored output")
	f.BoolVarP(&opts.Quiet, "quiet", "q", false, "print only the report and errors")
	f.BoolVarP(&opts.Verbose, "verbose", "v", false, "print diagnostic logs to stderr")
	cmd.MarkFlagsMutuallyExclusive("quiet", "verbose")

	return cmd
}

// exactlyOneArg requires the results file path.
func exactlyOneArg(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return errors.Usagef("expected exactly one results file, got %d arguments", len(args))
	}
	return nil
}

// applyOutputOptions configures the output writer from flags and environment.
func applyOutputOptions(out *output.Writer, opts *Options, env environment) {
	out.SetQuiet(opts.Quiet)
	out.SetColor(env.terminal && !opts.NoColor && env.getenv("NO_COLOR") == "")
}

// reportError prints a fatal error with any extra detail and hints.
func reportError(out *output.Writer, err error) {
	out.ErrorPrefix("%v", err)

	var ve *errors.VerifyError
	if !stderrors.As(err, &ve) {
		return
	}
	for _, d := range ve.Details() {
		out.Hint("%s", d)
	}
	if ve.Kind == errors.KindUsage {
		out.Hint("usage: h2verify <results.json>")
		out.Hint("example: h2verify ../Ralph_Test_H2_Hamiltonian/h2_results.json")
	}
}
