// Package report renders validation results for the console and the summary file.
package report

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/AndreyAkinshin/h2verify/internal/check"
	"github.com/AndreyAkinshin/h2verify/internal/record"
)

const (
	title     = "H2 Hamiltonian Validation Report"
	ruleWidth = 60
	na        = "N/A"
)

// Label returns the display name of a check, e.g. "Molecule".
func Label(name string) string {
	// A Caser keeps state between calls, so each call gets its own.
	return cases.Title(language.English).String(name)
}

// suggestion is a remediation step shown when the check it belongs to fails.
// Steps with an empty check name are always shown.
type suggestion struct {
	check string
	text  func(b *record.Benchmark) string
}

var suggestions = []suggestion{
	{check.NameMolecule, func(b *record.Benchmark) string {
		return fmt.Sprintf("Verify the H2 molecule definition (%v Å bond length, %s basis)",
			b.Molecule.BondLengthAngstrom, b.Molecule.BasisSet)
	}},
	{check.NameEnergies, func(*record.Benchmark) string {
		return "Check Hartree-Fock and FCI calculation methods"
	}},
	{check.NameHamiltonian, func(*record.Benchmark) string {
		return "Ensure Hamiltonian is properly extracted and Hermitian"
	}},
	{"", func(*record.Benchmark) string {
		return "Review PySCF documentation for molecular setup"
	}},
}

// Render returns the human-readable validation report. The output depends
// only on its arguments.
func Render(r check.Report, c *record.Candidate, b *record.Benchmark) string {
	var sb strings.Builder
	rule := strings.Repeat("=", ruleWidth)

	line := func(format string, args ...interface{}) {
		fmt.Fprintf(&sb, format+"\n", args...)
	}

	line("%s", rule)
	line("%s", title)
	line("%s", rule)

	line("")
	line("VALIDATION SUMMARY:")
	line("  %s %s: %s", mark(r.Overall.Passed), Label(check.NameOverall), r.Overall.Message)

	line("")
	line("DETAILED CHECKS:")
	for _, res := range r.Checks {
		line("  %s %s: %s", mark(res.Passed), Label(res.Name), res.Message)
	}

	line("")
	line("RESULTS COMPARISON:")
	line("  Energies (Hartree):")
	line("    %-13s Candidate=%s, Benchmark=%.6f", "HF:", energy(c.Energies.HFHartree), b.Energies.HFHartree)
	line("    %-13s Candidate=%s, Benchmark=%.6f", "FCI:", energy(c.Energies.FCIHartree), b.Energies.FCIHartree)
	line("    %-13s Candidate=%s, Benchmark=%.6f", "Correlation:", energy(c.Energies.CorrelationEnergy), b.Energies.CorrelationEnergy)

	line("")
	line("  Molecular setup:")
	line("    %-13s Candidate=%s, Benchmark=%v Å", "Bond length:", bondLength(c.Molecule.BondLengthAngstrom), b.Molecule.BondLengthAngstrom)
	line("    %-13s Candidate=%s, Benchmark='%s'", "Basis set:", quoted(c.Molecule.BasisSet), b.Molecule.BasisSet)

	line("")
	line("  Hamiltonian:")
	line("    %-13s Candidate=%s, Benchmark=[%d, %d]", "Qubits:", qubits(c.Hamiltonian.NQubits), b.Hamiltonian.NQubitsMin, b.Hamiltonian.NQubitsMax)
	line("    %-13s Candidate=%s, Benchmark=%t", "Hermitian:", flag(c.Hamiltonian.H1Hermitian), b.Hamiltonian.H1Hermitian)

	line("")
	line("RECOMMENDATIONS:")
	if r.Overall.Passed {
		line("  + Excellent! All validation checks passed.")
		line("  + The implementation correctly generates the H2 Hamiltonian.")
	} else {
		line("  x Some issues detected. Please check:")
		failed := make(map[string]bool)
		for _, res := range r.Failed() {
			failed[res.Name] = true
			line("    - %s: %s", Label(res.Name), res.Message)
		}
		line("")
		line("  Suggestions:")
		n := 0
		for _, s := range suggestions {
			if s.check != "" && !failed[s.check] {
				continue
			}
			n++
			line("    %d. %s", n, s.text(b))
		}
	}

	line("")
	line("%s", rule)
	return sb.String()
}

func mark(passed bool) string {
	if passed {
		return "[PASS]"
	}
	return "[FAIL]"
}

func energy(v *float64) string {
	if v == nil {
		return na
	}
	return fmt.Sprintf("%.6f", *v)
}

func bondLength(v *float64) string {
	if v == nil {
		return na
	}
	return fmt.Sprintf("%v Å", *v)
}

func quoted(v *string) string {
	if v == nil {
		return na
	}
	return "'" + *v + "'"
}

func qubits(v *int) string {
	if v == nil {
		return na
	}
	return fmt.Sprintf("%d", *v)
}

func flag(v *bool) string {
	if v == nil {
		return na
	}
	return fmt.Sprintf("%t", *v)
}
