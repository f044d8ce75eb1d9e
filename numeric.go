package equations

import (
	"errors"
	"math"
)

// factorial computes n! exactly. It is defined for 0 through 20; 21! does
// not fit in int64.
func factorial(n int) (int64, error) {
	if n < 0 || n > 20 {
		return 0, &FactorialError{X: float32(n)}
	}
	r := int64(1)
	for i := int64(2); i <= int64(n); i++ {
		r *= i
	}
	return r, nil
}

// errNoRealRoots indicates a quadratic with a negative discriminant.
var errNoRealRoots = errors.New("no real roots")

// quadraticRoots solves ax² + bx + c = 0, returning the +√ root first.
func quadraticRoots(a, b, c float32) (float32, float32, error) {
	d := float64(b)*float64(b) - 4*float64(a)*float64(c)
	if d < 0 {
		return 0, 0, errNoRealRoots
	}
	s := float32(math.Sqrt(d))
	return (-b + s) / (2 * a), (-b - s) / (2 * a), nil
}
