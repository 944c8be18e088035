// Package target constructs domain.Target values from literal, already-
// computed parameters supplied by the operator (JSON config files or
// inline calls). It deliberately does not compute Ip, Z, or orbital
// coefficients — that remains a collaborator responsibility (spec
// Non-goals); this package only parses and validates the values someone
// else already computed.
package target

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/strongfield/adk-sampler/internal/domain"
)

// NewSAEAtom constructs a single-active-electron atom target from
// literal parameters.
func NewSAEAtom(ip, z float64, l, m int, coeff, theta, phi float64) (domain.Target, error) {
	return domain.NewAtomTarget(ip, z, l, m, coeff, theta, phi)
}

// moleculeFile is the on-disk JSON shape loaded by NewMolecularOrbitalFromFile:
//
//	{
//	  "ip": 0.5, "z": 1.0,
//	  "alpha": 0.0, "beta": 0.0, "gamma": 0.0,
//	  "l_max": 2,
//	  "coefficients": [{"l": 0, "m": 0, "value": 1.0}]
//	}
type moleculeFile struct {
	Ip           float64             `json:"ip"`
	Z            float64             `json:"z"`
	Alpha        float64             `json:"alpha"`
	Beta         float64             `json:"beta"`
	Gamma        float64             `json:"gamma"`
	LMax         int                 `json:"l_max"`
	Coefficients []moleculeCoeffFile `json:"coefficients"`
}

type moleculeCoeffFile struct {
	L     int     `json:"l"`
	M     int     `json:"m"`
	Value float64 `json:"value"`
}

// NewMolecularOrbital constructs a molecular-orbital target from an
// already-parsed coefficient table.
func NewMolecularOrbital(ip, z, alpha, beta, gamma float64, lMax int, coeffs map[[2]int]float64) (domain.Target, error) {
	return domain.NewMoleculeTarget(ip, z, alpha, beta, gamma, lMax, coeffs)
}

// NewMolecularOrbitalFromFile reads and validates a molecular-orbital
// coefficient table from a JSON file, mirroring the teacher's
// os.ReadFile+encoding/json loading pattern for operator-supplied
// override tables.
func NewMolecularOrbitalFromFile(path string) (domain.Target, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("target: reading %s: %w", path, err)
	}
	var parsed moleculeFile
	if err := json.Unmarshal(b, &parsed); err != nil {
		return nil, fmt.Errorf("target: parsing %s: %w", path, err)
	}

	coeffs := make(map[[2]int]float64, len(parsed.Coefficients))
	for _, c := range parsed.Coefficients {
		coeffs[[2]int{c.L, c.M}] = c.Value
	}

	t, err := domain.NewMoleculeTarget(parsed.Ip, parsed.Z, parsed.Alpha, parsed.Beta, parsed.Gamma, parsed.LMax, coeffs)
	if err != nil {
		return nil, fmt.Errorf("target: %s: %w", path, err)
	}
	return t, nil
}
