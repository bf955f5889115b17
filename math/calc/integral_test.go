package calc

import (
	"math"
	"testing"
)

func TestIntegrate(t *testing.T) {
	table := []struct {
		name string
		f    func(float64) float64
		a, b float64
		want float64
	}{
		{"x^2 over [0, 3]",
			func(x float64) float64 { return x * x }, 0, 3, 9},
		{"x^5 over [-1, 2]",
			func(x float64) float64 { return math.Pow(x, 5) }, -1, 2, 10.5},
		{"sin(x) over [0, pi]",
			math.Sin, 0, math.Pi, 2},
		{"exp(x) over [0, 1]",
			math.Exp, 0, 1, math.E - 1},
		{"1/sqrt(0.3(1+x)^3 + 0.7) over [0, 1]",
			func(x float64) float64 {
				zp1 := 1 + x
				return 1 / math.Sqrt(0.3*zp1*zp1*zp1+0.7)
			}, 0, 1, 0.77142707},
		{"reversed bounds", math.Exp, 1, 0, 1 - math.E},
		{"empty interval", math.Exp, 2, 2, 0},
	}

	for i, test := range table {
		got := Integrate(test.f, test.a, test.b)
		if !epsEq(got, test.want, 1e-7) {
			t.Errorf("%d) Integrate(%s) -> %.9g instead of %.9g",
				i+1, test.name, got, test.want)
		}
	}
}

func TestIntegrateOptions(t *testing.T) {
	f := func(x float64) float64 { return math.Exp(-x * x) }

	loose := Integrate(f, 0, 2, Tolerance(1e-3))
	tight := Integrate(f, 0, 2, Tolerance(1e-14), AbsTolerance(1e-14))
	want := math.Sqrt(math.Pi) / 2 * math.Erf(2)

	if !epsEq(loose, want, 1e-3) {
		t.Errorf("Loose estimate %.9g too far from %.9g.", loose, want)
	}
	if !epsEq(tight, want, 1e-12) {
		t.Errorf("Tight estimate %.9g too far from %.9g.", tight, want)
	}

	// With no doublings allowed the first estimate is returned unchecked.
	one := Integrate(f, 0, 2, MaxDoublings(0))
	if !epsEq(one, want, 1e-6) {
		t.Errorf("MaxDoublings(0) estimate %.9g too far from %.9g.",
			one, want)
	}
}

func TestIntegrateNaNPropagates(t *testing.T) {
	f := func(x float64) float64 {
		if x > 1 {
			return math.NaN()
		}
		return x
	}
	if !math.IsNaN(Integrate(f, 0, 2)) {
		t.Errorf("Integrand NaN did not propagate into the estimate.")
	}
}

func TestIntegratePanicsOnNonFiniteBounds(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("Integrate accepted an infinite bound.")
		}
	}()
	Integrate(math.Exp, 0, math.Inf(1))
}

func epsEq(x, y, eps float64) bool {
	return math.Abs(x-y) <= eps*(1+math.Abs(y))
}

func BenchmarkIntegrateSmooth(b *testing.B) {
	f := func(x float64) float64 {
		zp1 := 1 + x
		return 1 / math.Sqrt(0.3*zp1*zp1*zp1+0.7)
	}
	for i := 0; i < b.N; i++ {
		Integrate(f, 0, 1)
	}
}
