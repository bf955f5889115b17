/*package calc provides some basic calculus routines.
 */
package calc

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/integrate/quad"
)

type integralParams struct {
	absTol, relTol float64
	maxDoublings   int
}

type internalIntegralOption func(*integralParams)
type IntegralOption internalIntegralOption

// Tolerance supplies a call to Integrate with a relative convergence
// tolerance.
func Tolerance(rel float64) IntegralOption {
	return func(p *integralParams) { p.relTol = rel }
}

// AbsTolerance supplies a call to Integrate with an absolute convergence
// tolerance.
func AbsTolerance(abs float64) IntegralOption {
	return func(p *integralParams) { p.absTol = abs }
}

// MaxDoublings supplies a call to Integrate with the number of times the
// node count may be doubled before the current estimate is returned as is.
func MaxDoublings(n int) IntegralOption {
	return func(p *integralParams) { p.maxDoublings = n }
}

func (p *integralParams) loadOptions(opts []IntegralOption) {
	for _, opt := range opts {
		opt(p)
	}
}

// Integrate computes the definite integral of f over [a, b] by
// Gauss-Legendre quadrature, doubling the node count until two successive
// estimates agree to within absTol + relTol*|estimate|. The acceptance test
// underestimates the error of the later, higher-order estimate, so the
// returned value is in practice much more accurate than the tolerance. The
// defaults (relTol = 1e-10, absTol = 0) give at least ten significant
// figures for smooth integrands. Reversed bounds negate the result.
//
// NaNs produced by f propagate into the result; callers that can feed
// Integrate an integrand with a restricted domain must check the result.
func Integrate(
	f func(float64) float64, a, b float64, opts ...IntegralOption,
) float64 {
	if math.IsNaN(a) || math.IsInf(a, 0) ||
		math.IsNaN(b) || math.IsInf(b, 0) {
		panic(fmt.Sprintf("Non-finite integration bounds [%g, %g].", a, b))
	}

	p := &integralParams{absTol: 0, relTol: 1e-10, maxDoublings: 12}
	p.loadOptions(opts)

	if a == b {
		return 0
	}
	if a > b {
		return -Integrate(f, b, a, opts...)
	}

	n := 16
	est := quad.Fixed(f, a, b, n, quad.Legendre{}, 0)
	for i := 0; i < p.maxDoublings; i++ {
		n *= 2
		next := quad.Fixed(f, a, b, n, quad.Legendre{}, 0)
		if math.Abs(next-est) <= p.absTol+p.relTol*math.Abs(next) {
			return next
		}
		est = next
	}
	return est
}
