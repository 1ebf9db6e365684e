package obskit

import (
	"math"
	"testing"
)

// AssertionConfig contains tolerances for propagation assertions.
type AssertionConfig struct {
	// Absolute tolerance for value comparisons
	ValueTol float64

	// Absolute tolerance for error comparisons
	ErrorTol float64
}

// DefaultAssertionConfig returns tolerances tight enough for float64
// propagation arithmetic.
func DefaultAssertionConfig() AssertionConfig {
	return AssertionConfig{
		ValueTol: 1e-12,
		ErrorTol: 1e-12,
	}
}

// AssertSame verifies that a and b trace to the same measurement history,
// i.e. arithmetic between them will take the correlated branch.
func AssertSame(t *testing.T, a, b Quantity) {
	t.Helper()

	if !a.IsSame(b) {
		t.Errorf("Quantities are not the same observable:\n"+
			"  a = %v with identity %v\n"+
			"  b = %v with identity %v\n"+
			"Arithmetic between them would combine errors in quadrature.",
			a, a.Identity(), b, b.Identity())
		return
	}
	t.Logf("✓ Same observable: identity %v", a.Identity())
}

// AssertIndependent verifies that a and b are statistically independent,
// i.e. arithmetic between them will combine errors in quadrature.
func AssertIndependent(t *testing.T, a, b Quantity) {
	t.Helper()

	if a.IsSame(b) {
		t.Errorf("Quantities share identity %v:\n"+
			"  a = %v\n"+
			"  b = %v\n"+
			"Arithmetic between them would take the correlated branch.",
			a.Identity(), a, b)
		return
	}
	t.Logf("✓ Independent: %v vs %v", a.Identity(), b.Identity())
}

// AssertQuantity verifies value and error of got against expectations.
func AssertQuantity(t *testing.T, got Quantity, wantValue, wantError float64, cfg AssertionConfig) {
	t.Helper()

	if math.Abs(got.Value()-wantValue) > cfg.ValueTol {
		t.Errorf("Value mismatch: got %.12g, want %.12g (tol %.3g)",
			got.Value(), wantValue, cfg.ValueTol)
	}
	if math.Abs(got.Error()-wantError) > cfg.ErrorTol {
		t.Errorf("Error mismatch: got %.12g, want %.12g (tol %.3g)",
			got.Error(), wantError, cfg.ErrorTol)
	}
	if !t.Failed() {
		t.Logf("✓ %v ≈ %.6g (%.6g)", got, wantValue, wantError)
	}
}

// AssertQuadrature verifies that combined carries the quadrature sum of
// the operand errors, the signature of the independent branch.
func AssertQuadrature(t *testing.T, combined, a, b Quantity, cfg AssertionConfig) {
	t.Helper()

	want := math.Sqrt(a.Error()*a.Error() + b.Error()*b.Error())
	if math.Abs(combined.Error()-want) > cfg.ErrorTol {
		t.Errorf("Error is not the quadrature sum: got %.12g, want √(%.6g²+%.6g²) = %.12g",
			combined.Error(), a.Error(), b.Error(), want)
		return
	}
	t.Logf("✓ Quadrature: %.6g = √(%.6g²+%.6g²)", combined.Error(), a.Error(), b.Error())
}
