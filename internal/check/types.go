// Package check compares a candidate record against the benchmark.
//
// Each check is independent: it reads both records and the tolerance set and
// returns a fresh Result. Problems found in the candidate are recorded as
// Issues on the Result; a check never returns an error and never stops the
// other checks from running.
package check

// Check names, in report order.
const (
	NameMolecule    = "molecule"
	NameEnergies    = "energies"
	NameHamiltonian = "hamiltonian"
	NameOverall     = "overall"
)

// Messages used by passing results and the aggregate.
const (
	MessageOK        = "OK"
	MessageAllPassed = "All checks passed"
	MessageSomeFail  = "Some checks failed"
)

// IssueKind classifies a problem found by a check.
type IssueKind int

const (
	// MissingField means the candidate did not report a required value.
	MissingField IssueKind = iota
	// ToleranceViolation means a value differs from the benchmark by more
	// than its absolute threshold.
	ToleranceViolation
	// Mismatch means a value that must match exactly does not.
	Mismatch
	// InvariantViolation means a physical rule independent of the benchmark
	// is broken.
	InvariantViolation
)

func (k IssueKind) String() string {
	switch k {
	case MissingField:
		return "missing field"
	case ToleranceViolation:
		return "tolerance violation"
	case Mismatch:
		return "mismatch"
	case InvariantViolation:
		return "invariant violation"
	default:
		return "unknown"
	}
}

// Issue is a single problem found by a check.
type Issue struct {
	Kind    IssueKind
	Field   string // Record field the issue refers to, e.g. "energies.hf_hartree"
	Message string
}

// Result is the outcome of one check.
type Result struct {
	Name    string
	Passed  bool
	Message string
	Issues  []Issue
}

// Report is the ordered set of check results plus their aggregate.
type Report struct {
	Checks  []Result
	Overall Result
}

// Get returns the result for the named check.
func (r Report) Get(name string) (Result, bool) {
	if name == NameOverall {
		return r.Overall, true
	}
	for _, c := range r.Checks {
		if c.Name == name {
			return c, true
		}
	}
	return Result{}, false
}

// Failed returns the checks that did not pass, in report order.
func (r Report) Failed() []Result {
	var failed []Result
	for _, c := range r.Checks {
		if !c.Passed {
			failed = append(failed, c)
		}
	}
	return failed
}
