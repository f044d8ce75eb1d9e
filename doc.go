// Package equations evaluates and analyzes single-variable equations.
//
// An equation like "y = 3x^2 - 2" flows through three stages: a scanner
// that folds coefficients, exponents, and unary minus into single tokens, a
// shunting-yard parser that produces reverse Polish notation, and a stack
// machine that computes a float32 result. Each stage works both eagerly
// over slices and as a pull iterator, so the whole pipeline can run with no
// intermediate buffering; the buffered and streaming paths always agree.
//
// Plot and BuildEquationData evaluate the same parsed form at many x values
// concurrently. The shape analyzers recognize the constrained linear and
// quadratic forms y=mx+b and y=ax²+bx+c and recover their coefficients and
// real zeros.
package equations
