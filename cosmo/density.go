package cosmo

import (
	"math"
)

// e2 is E^2(z) = OmegaM (1+z)^3 + OmegaK (1+z)^2 + OmegaL. Kept separate
// from E so eInv can test the sign of the radicand.
func (c *FlatLCDM) e2(z float64) float64 {
	zp1 := 1 + z
	return c.OmegaM*zp1*zp1*zp1 + c.OmegaK*zp1*zp1 + c.OmegaL
}

// E calculates E(z) = H(z)/H0. Here H(z) is from Hubble's Law,
// H(z)**2 = H0**2 (OmegaM a**-3 + OmegaK a**-2 + OmegaL). An alternate
// formulation is E(a) = da/dt / (a H0). Radiation is neglected.
func (c *FlatLCDM) E(z float64) float64 {
	return math.Sqrt(c.e2(z))
}

// (And by "Mks", I mean "Mks/h".)
func (c *FlatLCDM) rhoCriticalMks(z float64) float64 {
	H0Mks := (c.H0 * 1000) / MpcMks
	// m = m * H100
	H0MksH := H0Mks / c.H100

	H := c.E(z) * H0MksH
	return 3.0 * H * H / (8.0 * math.Pi * GMks)
}

// RhoCritical calculates the critical density of the universe at z. This
// shows up (among other places) in halo definitions and in the definitions
// of the omegas (OmegaFoo = pFoo / pCritical). The returned value is in
// cosmological units / h.
func (c *FlatLCDM) RhoCritical(z float64) float64 {
	return c.rhoCriticalMks(z) * math.Pow(MpcMks, 3) / MSunMks
}

// RhoAverage calculates the average density of matter in the universe. The
// returned value is in cosmological units / h.
func (c *FlatLCDM) RhoAverage(z float64) float64 {
	return c.RhoCritical(0) * c.OmegaM * math.Pow(1+z, 3.0)
}
