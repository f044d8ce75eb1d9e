package equations

// Point is one plotted sample of an equation.
type Point struct {
	X float32
	Y float32
}

// Calculate evaluates an equation through the fully buffered pipeline: scan
// everything, parse everything, then run the stack machine. Any x in the
// equation takes the value 0.
func Calculate(eq string) (float32, error) {
	toks, err := Tokens(eq)
	if err != nil {
		return 0, err
	}
	rpn, err := ParseTokens(toks)
	if err != nil {
		return 0, err
	}
	return Evaluate(rpn, 0)
}

// CalculateStreaming evaluates an equation scanning tokens on demand but
// parsing eagerly. It agrees with Calculate on every well-formed equation.
func CalculateStreaming(eq string) (float32, error) {
	l, err := NewLexer(eq)
	if err != nil {
		return 0, err
	}
	rpn, err := Parse(l)
	if err != nil {
		return 0, err
	}
	return Evaluate(rpn, 0)
}

// CalculatePull evaluates an equation through the fully streaming pull
// chain: the evaluator pulls reverse Polish tokens from the parser, which
// pulls tokens from the scanner, with no intermediate buffering. It agrees
// with Calculate on every well-formed equation.
func CalculatePull(eq string) (float32, error) {
	l, err := NewLexer(eq)
	if err != nil {
		return 0, err
	}
	return EvalStream(NewParser(l), 0)
}

// Plot samples an equation over [xMin, xMax] at the given step, evaluating
// the samples concurrently. The equation is parsed once; the reverse Polish
// form is shared read-only across workers. Points come back in ascending-x
// input order regardless of worker completion order.
func Plot(eq string, xMin, xMax, step float32) ([]Point, error) {
	toks, err := Tokens(eq)
	if err != nil {
		return nil, err
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
	return pts, nil
}

// sampleXs returns xMin, xMin+step, ... up to and including every sample
// still at or below xMax under float32 comparison.
func sampleXs(xMin, xMax, step float32) []float32 {
	var xs []float32
	for x := xMin; x <= xMax; x += step {
		xs = append(xs, x)
	}
	return xs
}
