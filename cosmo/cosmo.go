/*
package cosmo computes distance measures in a flat LCDM universe.

All distance formulas follow Hogg (1999), "Distance measures in cosmology",
arXiv:astro-ph/9905116.
*/
package cosmo

import (
	"fmt"
	"math"
)

// FlatLCDM is a flat Lambda-CDM cosmology. Every field is fixed at
// construction and never mutated, so a single instance is safe to share
// between goroutines.
type FlatLCDM struct {
	OmegaM float64 // matter density fraction
	OmegaK float64 // curvature density, always 0 for this model
	OmegaL float64 // dark energy density, 1 - OmegaM by flatness
	H100   float64 // dimensionless Hubble constant, H0 / (100 km/s/Mpc)
	H0     float64 // Hubble constant in km/s/Mpc
	DH     float64 // Hubble distance in Mpc
}

// New creates a flat LCDM cosmology from a matter density fraction and a
// dimensionless Hubble constant h = H0 / (100 km/s/Mpc). The dark energy
// density is set by the flatness constraint, OmegaM + OmegaL = 1.
//
// New returns ErrInvalidParameter if h <= 0 or either parameter is
// non-finite, since those make the derived constants meaningless.
func New(omegaM, h float64) (*FlatLCDM, error) {
	if math.IsNaN(omegaM) || math.IsInf(omegaM, 0) {
		return nil, fmt.Errorf("cosmo: OmegaM = %g: %w",
			omegaM, ErrInvalidParameter)
	}
	if math.IsNaN(h) || h <= 0 {
		return nil, fmt.Errorf("cosmo: h = %g: %w", h, ErrInvalidParameter)
	}

	c := &FlatLCDM{
		OmegaM: omegaM,
		OmegaK: 0,
		OmegaL: 1 - omegaM,
		H100:   h,
	}
	c.H0 = 100 * h
	c.DH = CKms / c.H0
	return c, nil
}

// Default returns the fiducial OmegaM = 0.3, h = 0.7 cosmology.
func Default() *FlatLCDM {
	c, err := New(0.3, 0.7)
	if err != nil {
		panic(err.Error())
	}
	return c
}
