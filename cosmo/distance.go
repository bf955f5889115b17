package cosmo

import (
	"fmt"
	"math"

	"github.com/phil-mansfield/cosmodist/math/calc"
)

// eInv is the integrand of the comoving distance integral, 1/E(z). It
// returns NaN when E^2(z) <= 0, which Comoving converts into an ErrDomain
// after integration. eInv must stay a method so the integrand closes over
// the model's densities and never reads global state.
func (c *FlatLCDM) eInv(z float64) float64 {
	e2 := c.e2(z)
	if e2 <= 0 {
		return math.NaN()
	}
	return 1 / math.Sqrt(e2)
}

// Comoving calculates the line-of-sight comoving distance to redshift z,
// DH * int_0^z dt/E(t), in Mpc. Comoving(0) is exactly 0.
func (c *FlatLCDM) Comoving(z float64) (float64, error) {
	if z < 0 || math.IsNaN(z) || math.IsInf(z, 0) {
		return 0, fmt.Errorf("cosmo: Comoving(z = %g): %w", z, ErrDomain)
	}
	if z == 0 {
		return 0, nil
	}

	dc := c.DH * calc.Integrate(c.eInv, 0, z)
	if math.IsNaN(dc) || math.IsInf(dc, 0) {
		// E^2 <= 0 somewhere in [0, z], possible for exotic densities
		// (e.g. OmegaM < 0 at large z).
		return 0, fmt.Errorf(
			"cosmo: Comoving(z = %g): E^2 <= 0 inside [0, z]: %w",
			z, ErrDomain,
		)
	}
	return dc, nil
}

// TransverseComoving calculates the transverse comoving distance at z in
// Mpc, the distance relating an angle on the sky to a comoving separation
// at that redshift. The positive and negative curvature branches are kept
// explicit even though this model pins OmegaK to 0, so the sign policy
// stays correct if a curved variant is ever admitted.
func (c *FlatLCDM) TransverseComoving(z float64) (float64, error) {
	dc, err := c.Comoving(z)
	if err != nil {
		return 0, err
	}
	switch {
	case c.OmegaK > 0:
		sqrtK := math.Sqrt(c.OmegaK)
		return c.DH / sqrtK * math.Sinh(sqrtK*dc/c.DH), nil
	case c.OmegaK < 0:
		sqrtK := math.Sqrt(-c.OmegaK)
		return c.DH / sqrtK * math.Sin(sqrtK*dc/c.DH), nil
	}
	return dc, nil
}

// AngularDiameter calculates the angular diameter distance at z in Mpc, the
// ratio of an object's physical transverse size to its angular size.
func (c *FlatLCDM) AngularDiameter(z float64) (float64, error) {
	if z == -1 {
		return 0, fmt.Errorf("cosmo: AngularDiameter(z = -1): %w", ErrDomain)
	}
	dm, err := c.TransverseComoving(z)
	if err != nil {
		return 0, err
	}
	return dm / (1 + z), nil
}

// Luminosity calculates the luminosity distance at z in Mpc, the distance
// relating bolometric flux to bolometric luminosity. The canonical formula
// is (1+z) * DM(z); the equivalent (1+z)^2 * DA(z) form is deliberately not
// a second code path.
func (c *FlatLCDM) Luminosity(z float64) (float64, error) {
	dm, err := c.TransverseComoving(z)
	if err != nil {
		return 0, err
	}
	return (1 + z) * dm, nil
}

// Mu calculates the distance modulus at z in magnitudes, the difference
// between the apparent and absolute bolometric magnitude of a source at z.
// The luminosity distance vanishes at z = 0, and Mu(0) returns -Inf with a
// nil error rather than an ErrDomain: the logarithm's limit is the honest
// answer there, and the error taxonomy is reserved for invalid arguments.
func (c *FlatLCDM) Mu(z float64) (float64, error) {
	dl, err := c.Luminosity(z)
	if err != nil {
		return 0, err
	}
	// DL in parsecs over the 10 pc zero point.
	return 5 * math.Log10(dl*1e6/10), nil
}
