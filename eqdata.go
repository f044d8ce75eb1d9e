package equations

import "math"

// EquationData bundles everything a plotting client needs for one equation:
// its text, its sampled points, and any real zeros recovered by the shape
// analyzers.
type EquationData struct {
	// Literal is the equation as given.
	Literal string
	// Points are the samples over the requested range, in ascending x.
	Points []Point
	// Zeros are the real x intercepts, if the equation has a recognized
	// linear or quadratic shape. Empty otherwise.
	Zeros []float32
}

// BuildEquationData samples an equation over [xMin, xMax] at the given step
// and attaches the zeros of recognized linear or quadratic shapes. A
// horizontal line and a quadratic with no real roots both yield no zeros.
func BuildEquationData(eq string, xMin, xMax, step float32) (*EquationData, error) {
	toks, err := Tokens(eq)
	if err != nil {
		return nil, err
	}
	var zeros []float32
	switch {
	case DetectLinear(toks):
		z := LinearZero(toks)
		if !math.IsNaN(float64(z)) {
			zeros = []float32{z}
		}
	case DetectQuadratic(toks):
		a, b, c := QuadraticCoeffs(toks)
		r1, r2, err := quadraticRoots(a, b, c)
		if err == nil {
			zeros = []float32{r1, r2}
		}
	}
	rpn, err := ParseTokens(toks)
	if err != nil {
		return nil, err
	}
	xs := sampleXs(xMin, xMax, step)
	ys, err := parallelMap(xs, func(x float32) (float32, error) {
		return Evaluate(rpn, x)
	})
	if err != nil {
		return nil, err
	}
	pts := make([]Point, len(xs))
	for i := range xs {
		pts[i] = Point{X: xs[i], Y: ys[i]}
	}
	return &EquationData{Literal: eq, Points: pts, Zeros: zeros}, nil
}
