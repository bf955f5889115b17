package cosmo

// Distances are in Mpc and velocities in km/s unless the name says otherwise
// (an "Mks" suffix means SI units).
const (
	// CKms is the speed of light.
	CKms = 299792.458 // km/s

	MpcMks  = 3.08567758149137e22 // m
	GMks    = 6.67408e-11         // m^3 / (kg s^2)
	MSunMks = 1.98892e30          // kg
)
