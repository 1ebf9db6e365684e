package obskit

import (
	"github.com/cockroachdb/errors"
)

// Sentinel errors for use with errors.Is.
var (
	// ErrNonNumeric indicates an operand or constructor input that is
	// neither a Go real-number kind nor a Quantity.
	ErrNonNumeric = errors.New("obskit: operand is not a real number or Quantity")

	// ErrModularPow indicates an attempt at three-argument modular
	// exponentiation, which Quantity arithmetic does not support.
	ErrModularPow = errors.New("obskit: modular exponentiation is not supported")
)
