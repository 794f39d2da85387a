package schema

import (
	"strings"
	"testing"
)

const validBenchmark = `{
  "molecule": {
    "formula": "H2",
    "atoms": [
      {"symbol": "H", "position": [0.0, 0.0, 0.0]},
      {"symbol": "H", "position": [0.0, 0.0, 0.5]}
    ],
    "bond_length_angstrom": 0.5,
    "basis_set": "sto-3g"
  },
  "energies": {"hf_hartree": -1.05, "fci_hartree": -1.1, "correlation_energy": -0.05},
  "hamiltonian": {
    "n_spin_orbitals": 4,
    "n_qubits_min": 2,
    "n_qubits_max": 4,
    "one_electron_integrals_shape": [2, 2],
    "two_electron_integrals_shape": [4, 4, 4, 4],
    "h1_hermitian": true
  },
  "verification_tolerances": {
    "hf_energy_tolerance_hartree": 0.001,
    "fci_energy_tolerance_hartree": 0.001,
    "bond_length_tolerance_angstrom": 0.01,
    "basis_set_match": true
  },
  "computation_details": {"method": "PySCF RHF + FCI", "pyscf_version": "2.12.0", "converged": true}
}`

func TestValidateBenchmark_Valid(t *testing.T) {
	if err := ValidateBenchmark([]byte(validBenchmark)); err != nil {
		t.Errorf("expected valid benchmark, got error: %v", err)
	}
}

func TestValidateBenchmark_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{
			name:    "not JSON",
			data:    `{"molecule": `,
			wantErr: "invalid JSON",
		},
		{
			name:    "missing sections",
			data:    `{"molecule": {"bond_length_angstrom": 0.5, "basis_set": "sto-3g"}}`,
			wantErr: "benchmark validation failed",
		},
		{
			name:    "missing tolerance",
			data:    strings.Replace(validBenchmark, `"hf_energy_tolerance_hartree": 0.001,`, "", 1),
			wantErr: "benchmark validation failed",
		},
		{
			name:    "negative tolerance",
			data:    strings.Replace(validBenchmark, `"bond_length_tolerance_angstrom": 0.01`, `"bond_length_tolerance_angstrom": -0.01`, 1),
			wantErr: "benchmark validation failed",
		},
		{
			name:    "fractional qubit count",
			data:    strings.Replace(validBenchmark, `"n_qubits_max": 4`, `"n_qubits_max": 4.5`, 1),
			wantErr: "benchmark validation failed",
		},
		{
			name:    "string energy",
			data:    strings.Replace(validBenchmark, `"hf_hartree": -1.05`, `"hf_hartree": "-1.05"`, 1),
			wantErr: "benchmark validation failed",
		},
		{
			name:    "boolean under a threshold name",
			data:    strings.Replace(validBenchmark, `"basis_set_match": true`, `"basis_set_match": true, "strict_mode": true`, 1),
			wantErr: "benchmark validation failed",
		},
		{
			name:    "negative extra threshold",
			data:    strings.Replace(validBenchmark, `"basis_set_match": true`, `"basis_set_match": true, "dipole_margin": -1`, 1),
			wantErr: "benchmark validation failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBenchmark([]byte(tt.data))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to contain %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestValidateCandidate(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr bool
	}{
		{"empty object", `{}`, false},
		{"energies only", `{"energies": {"hf_hartree": -1.05}}`, false},
		{"extra fields allowed", `{"hamiltonian": {"n_qubits": 4, "mapping": "jordan-wigner"}, "notes": "x"}`, false},
		{"integral-valued float qubits", `{"hamiltonian": {"n_qubits": 4.0}}`, false},
		{"null leaves", `{"molecule": {"bond_length_angstrom": null, "basis_set": null}, "energies": {"hf_hartree": -1.05, "fci_hartree": null}, "hamiltonian": {"n_qubits": null, "h1_hermitian": null}}`, false},
		{"null sections", `{"molecule": null, "energies": null, "hamiltonian": null}`, false},
		{"null arrays", `{"molecule": {"atoms": null}, "hamiltonian": {"one_electron_integrals_shape": null}}`, false},
		{"top level null", `null`, true},
		{"top level array", `[1, 2]`, true},
		{"string bond length", `{"molecule": {"bond_length_angstrom": "0.5"}}`, true},
		{"string hermiticity", `{"hamiltonian": {"h1_hermitian": "yes"}}`, true},
		{"fractional qubits", `{"hamiltonian": {"n_qubits": 3.5}}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCandidate([]byte(tt.data))
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateCandidate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
