package check

import (
	"fmt"
	"math"
	"strings"

	"github.com/AndreyAkinshin/h2verify/internal/record"
)

// Run executes every check against the two records and aggregates the results.
func Run(c *record.Candidate, b *record.Benchmark) Report {
	return Aggregate(
		Molecule(c.Molecule, b.Molecule, b.Tolerances),
		Energies(c.Energies, b.Energies, b.Tolerances),
		Hamiltonian(c.Hamiltonian, b.Hamiltonian),
	)
}

// Aggregate combines results into a Report. Overall passes only when every
// result passed.
func Aggregate(results ...Result) Report {
	passed := true
	for _, r := range results {
		passed = passed && r.Passed
	}

	msg := MessageAllPassed
	if !passed {
		msg = MessageSomeFail
	}

	checks := make([]Result, len(results))
	copy(checks, results)
	return Report{
		Checks:  checks,
		Overall: Result{Name: NameOverall, Passed: passed, Message: msg},
	}
}

// Molecule checks the bond length against its tolerance and the basis set for
// an exact match. Both sub-checks always run.
func Molecule(c record.Molecule, b record.BenchmarkMolecule, tol record.ToleranceSet) Result {
	var issues []Issue

	bondTol := tol.BondLength()
	switch {
	case c.BondLengthAngstrom == nil:
		issues = append(issues, Issue{
			Kind:    MissingField,
			Field:   "molecule.bond_length_angstrom",
			Message: "Missing bond length information",
		})
	case !withinAbsolute(b.BondLengthAngstrom, *c.BondLengthAngstrom, bondTol):
		issues = append(issues, Issue{
			Kind:  ToleranceViolation,
			Field: "molecule.bond_length_angstrom",
			Message: fmt.Sprintf("Bond length mismatch: %v Å vs %v Å (±%v Å)",
				*c.BondLengthAngstrom, b.BondLengthAngstrom, bondTol),
		})
	}

	if tol.BasisSetMatch() {
		switch {
		case c.BasisSet == nil:
			issues = append(issues, Issue{
				Kind:    MissingField,
				Field:   "molecule.basis_set",
				Message: fmt.Sprintf("Missing basis set information (expected '%s')", b.BasisSet),
			})
		case *c.BasisSet != b.BasisSet:
			issues = append(issues, Issue{
				Kind:    Mismatch,
				Field:   "molecule.basis_set",
				Message: fmt.Sprintf("Basis set mismatch: '%s' vs '%s'", *c.BasisSet, b.BasisSet),
			})
		}
	}

	return newResult(NameMolecule, issues)
}

// Energies checks the Hartree-Fock and FCI energies against their tolerances
// and enforces that the HF energy lies strictly above the FCI energy.
func Energies(c record.Energies, b record.BenchmarkEnergies, tol record.ToleranceSet) Result {
	var issues []Issue

	issues = append(issues, energyIssues("HF", "energies.hf_hartree", c.HFHartree, b.HFHartree, tol.HFEnergy())...)
	issues = append(issues, energyIssues("FCI", "energies.fci_hartree", c.FCIHartree, b.FCIHartree, tol.FCIEnergy())...)

	// The variational principle bounds FCI from above by HF.
	if c.HFHartree != nil && c.FCIHartree != nil && !(*c.HFHartree > *c.FCIHartree) {
		issues = append(issues, Issue{
			Kind:  InvariantViolation,
			Field: "energies",
			Message: fmt.Sprintf("Energy relationship incorrect: HF(%.6f) ≤ FCI(%.6f)",
				*c.HFHartree, *c.FCIHartree),
		})
	}

	return newResult(NameEnergies, issues)
}

func energyIssues(label, field string, got *float64, want, tol float64) []Issue {
	if got == nil {
		return []Issue{{
			Kind:    MissingField,
			Field:   field,
			Message: fmt.Sprintf("Missing %s energy", label),
		}}
	}
	if !withinAbsolute(want, *got, tol) {
		return []Issue{{
			Kind:  ToleranceViolation,
			Field: field,
			Message: fmt.Sprintf("%s energy mismatch: %.6f vs %.6f Hartree (±%v)",
				label, *got, want, tol),
		}}
	}
	return nil
}

// Hamiltonian checks the qubit count against the benchmark range and the
// Hermiticity flag. A field the candidate did not report is not checked.
func Hamiltonian(c record.Hamiltonian, b record.BenchmarkHamiltonian) Result {
	var issues []Issue

	if c.NQubits != nil {
		n := *c.NQubits
		if n < b.NQubitsMin || n > b.NQubitsMax {
			issues = append(issues, Issue{
				Kind:  ToleranceViolation,
				Field: "hamiltonian.n_qubits",
				Message: fmt.Sprintf("Qubit count %d outside expected range [%d, %d]",
					n, b.NQubitsMin, b.NQubitsMax),
			})
		}
	}

	if c.H1Hermitian != nil && !*c.H1Hermitian {
		issues = append(issues, Issue{
			Kind:    InvariantViolation,
			Field:   "hamiltonian.h1_hermitian",
			Message: "Hamiltonian is not Hermitian",
		})
	}

	return newResult(NameHamiltonian, issues)
}

func newResult(name string, issues []Issue) Result {
	if len(issues) == 0 {
		return Result{Name: name, Passed: true, Message: MessageOK}
	}
	msgs := make([]string, len(issues))
	for i, is := range issues {
		msgs[i] = is.Message
	}
	return Result{
		Name:    name,
		Passed:  false,
		Message: strings.Join(msgs, "; "),
		Issues:  issues,
	}
}

// withinAbsolute reports whether actual is within tolerance of expected.
// NaN on either side is never within tolerance.
func withinAbsolute(expected, actual, tolerance float64) bool {
	if math.IsNaN(expected) || math.IsNaN(actual) {
		return false
	}
	return math.Abs(expected-actual) <= tolerance
}
