package report

import (
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/AndreyAkinshin/h2verify/internal/check"
	"github.com/AndreyAkinshin/h2verify/internal/record"
)

func ptr[T any](v T) *T { return &v }

func testBenchmark() *record.Benchmark {
	return &record.Benchmark{
		Molecule: record.BenchmarkMolecule{
			Formula:            "H2",
			BondLengthAngstrom: 0.5,
			BasisSet:           "sto-3g",
		},
		Energies: record.BenchmarkEnergies{
			HFHartree:         -1.05,
			FCIHartree:        -1.1,
			CorrelationEnergy: -0.05,
		},
		Hamiltonian: record.BenchmarkHamiltonian{
			NQubitsMin:  2,
			NQubitsMax:  4,
			H1Hermitian: true,
		},
		Tolerances: record.NewToleranceSet(map[string]float64{
			record.TolHFEnergy:   0.001,
			record.TolFCIEnergy:  0.001,
			record.TolBondLength: 0.01,
		}),
	}
}

func passingCandidate() *record.Candidate {
	return &record.Candidate{
		Molecule: record.Molecule{
			BondLengthAngstrom: ptr(0.505),
			BasisSet:           ptr("sto-3g"),
		},
		Energies: record.Energies{
			HFHartree:  ptr(-1.0505),
			FCIHartree: ptr(-1.0995),
		},
		Hamiltonian: record.Hamiltonian{
			NQubits:     ptr(4),
			H1Hermitian: ptr(true),
		},
	}
}

func failingCandidate() *record.Candidate {
	return &record.Candidate{
		Molecule: record.Molecule{
			BondLengthAngstrom: ptr(0.74),
			BasisSet:           ptr("sto-3g"),
		},
		Energies: record.Energies{
			HFHartree:  ptr(-1.2),
			FCIHartree: ptr(-1.1),
		},
		Hamiltonian: record.Hamiltonian{
			H1Hermitian: ptr(true),
		},
	}
}

func assertGolden(t *testing.T, name, got string) {
	t.Helper()
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, []byte(got))
}

func TestRender_Golden(t *testing.T) {
	tests := []struct {
		name      string
		candidate *record.Candidate
	}{
		{"passing", passingCandidate()},
		{"failing", failingCandidate()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := testBenchmark()
			r := check.Run(tt.candidate, b)
			assertGolden(t, tt.name, Render(r, tt.candidate, b))
		})
	}
}

func TestRender_Deterministic(t *testing.T) {
	b := testBenchmark()
	c := failingCandidate()
	r := check.Run(c, b)

	first := Render(r, c, b)
	for i := 0; i < 5; i++ {
		if got := Render(r, c, b); got != first {
			t.Fatalf("Render() output changed between calls:\n%s\n---\n%s", first, got)
		}
	}
}

func TestRender_SuggestionsFollowFailingChecks(t *testing.T) {
	b := testBenchmark()

	tests := []struct {
		name    string
		report  check.Report
		want    []string
		notWant []string
	}{
		{
			name: "hamiltonian only",
			report: check.Aggregate(
				check.Result{Name: check.NameMolecule, Passed: true, Message: check.MessageOK},
				check.Result{Name: check.NameEnergies, Passed: true, Message: check.MessageOK},
				check.Result{Name: check.NameHamiltonian, Passed: false, Message: "Hamiltonian is not Hermitian"},
			),
			want: []string{
				"    - Hamiltonian: Hamiltonian is not Hermitian",
				"    1. Ensure Hamiltonian is properly extracted and Hermitian",
				"    2. Review PySCF documentation for molecular setup",
			},
			notWant: []string{"Verify the H2 molecule definition", "Check Hartree-Fock"},
		},
		{
			name: "all passing",
			report: check.Aggregate(
				check.Result{Name: check.NameMolecule, Passed: true, Message: check.MessageOK},
			),
			want:    []string{"Excellent! All validation checks passed."},
			notWant: []string{"Suggestions:", "Review PySCF documentation"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Render(tt.report, &record.Candidate{}, b)
			for _, s := range tt.want {
				if !strings.Contains(got, s) {
					t.Errorf("report missing %q:\n%s", s, got)
				}
			}
			for _, s := range tt.notWant {
				if strings.Contains(got, s) {
					t.Errorf("report unexpectedly contains %q:\n%s", s, got)
				}
			}
		})
	}
}

func TestRender_MissingCandidateValues(t *testing.T) {
	b := testBenchmark()
	c := &record.Candidate{}
	got := Render(check.Run(c, b), c, b)

	for _, s := range []string{
		"HF:           Candidate=N/A, Benchmark=-1.050000",
		"Bond length:  Candidate=N/A, Benchmark=0.5 Å",
		"Basis set:    Candidate=N/A, Benchmark='sto-3g'",
		"Qubits:       Candidate=N/A, Benchmark=[2, 4]",
		"Hermitian:    Candidate=N/A, Benchmark=true",
	} {
		if !strings.Contains(got, s) {
			t.Errorf("report missing %q:\n%s", s, got)
		}
	}
}

func TestLabel(t *testing.T) {
	tests := map[string]string{
		check.NameMolecule:    "Molecule",
		check.NameEnergies:    "Energies",
		check.NameHamiltonian: "Hamiltonian",
		check.NameOverall:     "Overall",
	}
	for in, want := range tests {
		if got := Label(in); got != want {
			t.Errorf("Label(%q) = %q, want %q", in, got, want)
		}
	}
}
