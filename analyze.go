package equations

import "math"

// The shape analyzers inspect an eager token vector, terminator included,
// for the constrained forms y=mx+b and y=ax²+bx+c. They never mutate the
// tokens.

// DetectLinear reports whether toks is a linear equation y=mx+b. The
// equation must carry a y= envelope on either end, use only additive terms,
// contain at most one x term, and raise x to no power other than 1.
func DetectLinear(toks []Token) bool {
	if len(toks) < 4 || len(toks) > 6 {
		return false
	}
	if !yEnvelope(toks) {
		return false
	}
	xs := 0
	for _, tok := range toks {
		switch tok.Kind {
		case KindX:
			if tok.N2 != 1 {
				return false
			}
			xs++
		case KindY, KindEqual, KindNumber, KindPlus, KindMinus, KindEnd:
		default:
			return false
		}
	}
	return xs <= 1
}

// LinearCoeffs extracts the slope and intercept of a linear equation. The
// slope is negated when its x term follows a binary minus; the intercept is
// taken as written. Missing terms are zero.
func LinearCoeffs(toks []Token) (m, b float32) {
	prev := KindNone
	for _, tok := range toks {
		switch tok.Kind {
		case KindX:
			m = tok.N1
			if prev == KindMinus {
				m = -m
			}
		case KindNumber:
			b = tok.N1
		}
		prev = tok.Kind
	}
	return m, b
}

// LinearZero returns the x intercept of a linear equation, or NaN for a
// horizontal line.
func LinearZero(toks []Token) float32 {
	m, b := LinearCoeffs(toks)
	if m == 0 {
		return float32(math.NaN())
	}
	return -b / m
}

// DetectQuadratic reports whether toks is a quadratic equation y=ax²+bx+c:
// a y= envelope, one or two x terms of which exactly one is squared, and
// only additive terms otherwise.
func DetectQuadratic(toks []Token) bool {
	if len(toks) < 4 || len(toks) > 8 {
		return false
	}
	if !yEnvelope(toks) {
		return false
	}
	var xs, squared, other int
	for _, tok := range toks {
		switch tok.Kind {
		case KindX:
			xs++
			switch tok.N2 {
			case 1:
			case 2:
				squared++
			default:
				other++
			}
		case KindY, KindEqual, KindNumber, KindPlus, KindMinus, KindEnd:
		default:
			return false
		}
	}
	return squared == 1 && other == 0 && (xs == 1 || xs == 2)
}

// QuadraticCoeffs extracts the coefficients of a quadratic equation, each
// negated when its term follows a binary minus. Missing terms are zero.
func QuadraticCoeffs(toks []Token) (a, b, c float32) {
	prev := KindNone
	for _, tok := range toks {
		sign := float32(1)
		if prev == KindMinus {
			sign = -1
		}
		switch tok.Kind {
		case KindX:
			if tok.N2 == 2 {
				a = sign * tok.N1
			} else {
				b = sign * tok.N1
			}
		case KindNumber:
			c = sign * tok.N1
		}
		prev = tok.Kind
	}
	return a, b, c
}

// yEnvelope reports whether a terminated token vector is wrapped in y= or
// =y.
func yEnvelope(toks []Token) bool {
	n := len(toks)
	if n < 4 || toks[n-1].Kind != KindEnd {
		return false
	}
	if toks[0].Kind == KindY && toks[1].Kind == KindEqual {
		return true
	}
	return toks[n-3].Kind == KindEqual && toks[n-2].Kind == KindY
}
