package record

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/AndreyAkinshin/h2verify/internal/errors"
	"github.com/AndreyAkinshin/h2verify/internal/schema"
)

// BenchmarkFileName is the fixed name of the benchmark record.
const BenchmarkFileName = "h2_benchmark.json"

// Resolver locates the benchmark record.
type Resolver struct {
	// WorkDir is searched first.
	WorkDir string
	// ExecutableDir is searched when the file is not in WorkDir.
	ExecutableDir string
}

// DefaultResolver returns a Resolver for the current working directory and
// the directory of the running executable.
func DefaultResolver() (Resolver, error) {
	wd, err := os.Getwd()
	if err != nil {
		return Resolver{}, errors.Wrap(err, "cannot determine working directory")
	}

	r := Resolver{WorkDir: wd}

	exe, err := os.Executable()
	if err != nil {
		// Without an executable path only the working directory is searched.
		return r, nil
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	r.ExecutableDir = filepath.Dir(exe)
	return r, nil
}

// Candidates returns the paths that are tried for name, in order.
func (r Resolver) Candidates(name string) []string {
	paths := []string{filepath.Join(r.WorkDir, name)}
	if r.ExecutableDir != "" {
		alt := filepath.Join(r.ExecutableDir, name)
		if filepath.Clean(alt) != filepath.Clean(paths[0]) {
			paths = append(paths, alt)
		}
	}
	return paths
}

// Resolve returns the first existing regular file named name.
// It fails with a not-found error listing every location tried.
func (r Resolver) Resolve(name string) (string, error) {
	tried := r.Candidates(name)
	for _, p := range tried {
		if isFile(p) {
			return p, nil
		}
	}
	err := errors.NotFound("benchmark file "+name, tried...)
	err.Hints = append(err.Hints, "searched the working directory, then the directory of the executable")
	return "", err
}

// LoadBenchmark resolves BenchmarkFileName with r and loads it.
func (r Resolver) LoadBenchmark() (*Benchmark, error) {
	path, err := r.Resolve(BenchmarkFileName)
	if err != nil {
		return nil, err
	}
	return LoadBenchmarkFile(path)
}

// LoadBenchmarkFile loads a benchmark record from an explicit path.
func LoadBenchmarkFile(path string) (*Benchmark, error) {
	data, err := readRecord(path, "benchmark file")
	if err != nil {
		return nil, err
	}

	if err := schema.ValidateBenchmark(data); err != nil {
		return nil, errors.Parse("benchmark file", path, err)
	}

	var raw rawBenchmark
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.Parse("benchmark file", path, err)
	}

	b, err := raw.toBenchmark()
	if err != nil {
		return nil, errors.Parse("benchmark file", path, err)
	}
	b.Path = path
	return b, nil
}

// LoadCandidate loads the record produced by the implementation under test.
// Absent fields are allowed; fields of the wrong type are a parse error.
func LoadCandidate(path string) (*Candidate, error) {
	data, err := readRecord(path, "results file")
	if err != nil {
		return nil, err
	}

	if err := schema.ValidateCandidate(data); err != nil {
		return nil, errors.Parse("results file", path, err)
	}

	var c Candidate
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, errors.Parse("results file", path, err)
	}
	c.Path = path
	return &c, nil
}

// readRecord reads path and returns its contents normalized to JSON.
func readRecord(path, what string) ([]byte, error) {
	if !isFile(path) {
		return nil, errors.NotFound(what, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, fmt.Sprintf("failed to read %s %s", what, path))
	}

	normalized, err := normalize(path, data)
	if err != nil {
		return nil, errors.Parse(what, path, err)
	}
	return normalized, nil
}

func (raw *rawBenchmark) toBenchmark() (*Benchmark, error) {
	h := raw.Hamiltonian
	if *h.NQubitsMin > *h.NQubitsMax {
		return nil, fmt.Errorf("hamiltonian: n_qubits_min (%d) exceeds n_qubits_max (%d)", *h.NQubitsMin, *h.NQubitsMax)
	}

	tol, err := toleranceSetFromDocument(raw.Tolerances)
	if err != nil {
		return nil, err
	}

	e := raw.Energies
	correlation := *e.FCIHartree - *e.HFHartree
	if e.CorrelationEnergy != nil {
		correlation = *e.CorrelationEnergy
	}

	return &Benchmark{
		Molecule: BenchmarkMolecule{
			Formula:            raw.Molecule.Formula,
			BondLengthAngstrom: *raw.Molecule.BondLengthAngstrom,
			BasisSet:           *raw.Molecule.BasisSet,
			Atoms:              raw.Molecule.Atoms,
		},
		Energies: BenchmarkEnergies{
			HFHartree:         *e.HFHartree,
			FCIHartree:        *e.FCIHartree,
			CorrelationEnergy: correlation,
		},
		Hamiltonian: BenchmarkHamiltonian{
			NQubitsMin:                *h.NQubitsMin,
			NQubitsMax:                *h.NQubitsMax,
			NSpinOrbitals:             h.NSpinOrbitals,
			H1Hermitian:               h.H1Hermitian,
			OneElectronIntegralsShape: h.OneElectronIntegralsShape,
			TwoElectronIntegralsShape: h.TwoElectronIntegralsShape,
		},
		Tolerances:  tol,
		Computation: raw.Computation,
	}, nil
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
