package record

import (
	"fmt"
	"sort"
)

// Tolerance names as they appear under verification_tolerances.
const (
	TolHFEnergy   = "hf_energy_tolerance_hartree"
	TolFCIEnergy  = "fci_energy_tolerance_hartree"
	TolBondLength = "bond_length_tolerance_angstrom"
	BasisSetMatch = "basis_set_match"
)

// ToleranceSet maps tolerance names to absolute thresholds.
// The zero value is empty and requires an exact basis-set match.
type ToleranceSet struct {
	values        map[string]float64
	basisSetMatch *bool
}

// NewToleranceSet builds a ToleranceSet from named thresholds.
func NewToleranceSet(values map[string]float64) ToleranceSet {
	copied := make(map[string]float64, len(values))
	for k, v := range values {
		copied[k] = v
	}
	return ToleranceSet{values: copied}
}

// WithBasisSetMatch returns a copy of ts with the basis-set flag set.
func (ts ToleranceSet) WithBasisSetMatch(match bool) ToleranceSet {
	ts.basisSetMatch = &match
	return ts
}

func toleranceSetFromDocument(doc map[string]any) (ToleranceSet, error) {
	values := make(map[string]float64, len(doc))
	var match *bool
	for name, v := range doc {
		switch val := v.(type) {
		case float64:
			values[name] = val
		case bool:
			if name != BasisSetMatch {
				return ToleranceSet{}, fmt.Errorf("verification_tolerances.%s: expected number, got boolean", name)
			}
			b := val
			match = &b
		default:
			return ToleranceSet{}, fmt.Errorf("verification_tolerances.%s: expected number, got %T", name, v)
		}
	}
	ts := NewToleranceSet(values)
	ts.basisSetMatch = match
	return ts, nil
}

// Lookup returns the threshold registered under name.
func (ts ToleranceSet) Lookup(name string) (float64, bool) {
	v, ok := ts.values[name]
	return v, ok
}

// Names returns the names of all numeric thresholds, sorted.
func (ts ToleranceSet) Names() []string {
	names := make([]string, 0, len(ts.values))
	for k := range ts.values {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// HFEnergy is the allowed absolute Hartree-Fock energy difference.
func (ts ToleranceSet) HFEnergy() float64 { return ts.threshold(TolHFEnergy) }

// FCIEnergy is the allowed absolute FCI energy difference.
func (ts ToleranceSet) FCIEnergy() float64 { return ts.threshold(TolFCIEnergy) }

// BondLength is the allowed absolute bond length difference in angstrom.
func (ts ToleranceSet) BondLength() float64 { return ts.threshold(TolBondLength) }

// threshold returns the named threshold, or 0 (exact match) when unset.
func (ts ToleranceSet) threshold(name string) float64 {
	v, _ := ts.Lookup(name)
	return v
}

// BasisSetMatch reports whether the basis set must match exactly.
// It defaults to true when the benchmark does not say otherwise.
func (ts ToleranceSet) BasisSetMatch() bool {
	return ts.basisSetMatch == nil || *ts.basisSetMatch
}
