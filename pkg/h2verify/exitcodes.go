// Package h2verify provides public constants for external tools that run the
// h2verify CLI as an acceptance gate.
package h2verify

// Exit codes returned by the h2verify CLI.
// These constants allow external tools to check exit codes symbolically
// rather than using magic numbers.
const (
	// ExitSuccess indicates that every validation check passed.
	ExitSuccess = 0

	// ExitFailure indicates that at least one check failed, or that the
	// benchmark or candidate record could not be loaded.
	ExitFailure = 1
)

// SummaryFileName is the name of the summary file written next to the
// candidate record.
const SummaryFileName = "validation_summary.txt"

// BenchmarkFileName is the benchmark file looked up in the working directory
// and then next to the executable.
const BenchmarkFileName = "h2_benchmark.json"
