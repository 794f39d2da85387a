// Package record loads benchmark and candidate records for H2 validation.
//
// A candidate is decoded into structs whose leaf fields are pointers: a nil
// pointer means the producer did not report the value, and the checks report
// it as missing. A benchmark is validated against its schema first, so its
// fields are plain values.
package record

// Atom is a single atom of the molecule descriptor.
type Atom struct {
	Symbol   string    `json:"symbol"`
	Position []float64 `json:"position"`
}

// Molecule describes the molecule as reported by a candidate.
type Molecule struct {
	Formula            *string  `json:"formula,omitempty"`
	BondLengthAngstrom *float64 `json:"bond_length_angstrom,omitempty"`
	BasisSet           *string  `json:"basis_set,omitempty"`
	Atoms              []Atom   `json:"atoms,omitempty"`
}

// Energies holds the candidate energies in Hartree.
type Energies struct {
	HFHartree         *float64 `json:"hf_hartree,omitempty"`
	FCIHartree        *float64 `json:"fci_hartree,omitempty"`
	CorrelationEnergy *float64 `json:"correlation_energy,omitempty"`
}

// Hamiltonian holds the Hamiltonian properties reported by a candidate.
type Hamiltonian struct {
	NQubits                   *int  `json:"n_qubits,omitempty"`
	NSpinOrbitals             *int  `json:"n_spin_orbitals,omitempty"`
	H1Hermitian               *bool `json:"h1_hermitian,omitempty"`
	OneElectronIntegralsShape []int `json:"one_electron_integrals_shape,omitempty"`
	TwoElectronIntegralsShape []int `json:"two_electron_integrals_shape,omitempty"`
}

// Candidate is the record produced by the implementation under test.
// Missing sections decode to their zero value, leaving every field nil.
type Candidate struct {
	Path        string      `json:"-"`
	Molecule    Molecule    `json:"molecule"`
	Energies    Energies    `json:"energies"`
	Hamiltonian Hamiltonian `json:"hamiltonian"`
}

// BenchmarkMolecule is the reference molecule descriptor.
type BenchmarkMolecule struct {
	Formula            string
	BondLengthAngstrom float64
	BasisSet           string
	Atoms              []Atom
}

// BenchmarkEnergies holds the reference energies in Hartree.
type BenchmarkEnergies struct {
	HFHartree         float64
	FCIHartree        float64
	CorrelationEnergy float64
}

// BenchmarkHamiltonian holds the reference Hamiltonian properties.
type BenchmarkHamiltonian struct {
	NQubitsMin                int
	NQubitsMax                int
	NSpinOrbitals             int
	H1Hermitian               bool
	OneElectronIntegralsShape []int
	TwoElectronIntegralsShape []int
}

// ComputationDetails records how the benchmark was produced.
type ComputationDetails struct {
	Method       string `json:"method,omitempty"`
	PySCFVersion string `json:"pyscf_version,omitempty"`
	Converged    *bool  `json:"converged,omitempty"`
}

// Benchmark is the reference record. It is not modified after loading.
type Benchmark struct {
	Path        string
	Molecule    BenchmarkMolecule
	Energies    BenchmarkEnergies
	Hamiltonian BenchmarkHamiltonian
	Tolerances  ToleranceSet
	Computation *ComputationDetails
}

// NotConverged reports whether the benchmark generator flagged its own
// computation as unconverged.
func (b *Benchmark) NotConverged() bool {
	return b.Computation != nil && b.Computation.Converged != nil && !*b.Computation.Converged
}

// rawBenchmark mirrors the benchmark document before conversion. The schema
// guarantees the required pointers are non-nil by the time it is converted.
type rawBenchmark struct {
	Molecule struct {
		Formula            string   `json:"formula"`
		BondLengthAngstrom *float64 `json:"bond_length_angstrom"`
		BasisSet           *string  `json:"basis_set"`
		Atoms              []Atom   `json:"atoms"`
	} `json:"molecule"`
	Energies struct {
		HFHartree         *float64 `json:"hf_hartree"`
		FCIHartree        *float64 `json:"fci_hartree"`
		CorrelationEnergy *float64 `json:"correlation_energy"`
	} `json:"energies"`
	Hamiltonian struct {
		NQubitsMin                *int  `json:"n_qubits_min"`
		NQubitsMax                *int  `json:"n_qubits_max"`
		NSpinOrbitals             int   `json:"n_spin_orbitals"`
		H1Hermitian               bool  `json:"h1_hermitian"`
		OneElectronIntegralsShape []int `json:"one_electron_integrals_shape"`
		TwoElectronIntegralsShape []int `json:"two_electron_integrals_shape"`
	} `json:"hamiltonian"`
	Tolerances  map[string]any      `json:"verification_tolerances"`
	Computation *ComputationDetails `json:"computation_details"`
}
