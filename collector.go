package equations

import (
	"math"
	"sort"
)

// collectResult classifies a token's relation to variadic collection.
type collectResult int

const (
	// collectNone means collection is inactive and the token is not an
	// opener.
	collectNone collectResult = iota
	// collectConsumed means the token was absorbed into the current call.
	collectConsumed
	// collectDone means a terminator completed the call; the accompanying
	// value is the call's result.
	collectDone
)

// paramCollector materializes the arguments of a variadic call between its
// opener and its synthetic terminator during evaluation. The parser
// guarantees that only numbers and x terms appear in between.
type paramCollector struct {
	opener Kind
	params []float32
}

// step feeds one token to the collector. While a call is open the collector
// owns every token until the terminator arrives, at which point it reports
// collectDone with the call's value.
func (c *paramCollector) step(tok Token, x float32) (collectResult, float32, error) {
	if c.opener == KindNone {
		if !tok.Kind.IsVariadic() {
			return collectNone, 0, nil
		}
		c.opener = tok.Kind
		c.params = c.params[:0]
		return collectConsumed, 0, nil
	}
	switch tok.Kind {
	case KindNumber:
		c.params = append(c.params, tok.N1)
	case KindX:
		c.params = append(c.params, xTerm(tok, x))
	default:
		if tok.Kind != c.opener.VariadicEnd() {
			return collectConsumed, 0, ErrBadVariadicParam
		}
		op := c.opener
		c.opener = KindNone
		v, err := finishVariadic(op, c.params)
		return collectDone, v, err
	}
	return collectConsumed, 0, nil
}

// finishVariadic computes the value of a completed variadic call.
func finishVariadic(op Kind, params []float32) (float32, error) {
	if op == KindChoice {
		return choose(params)
	}
	if len(params) == 0 {
		return 0, &UnderflowError{Op: op}
	}
	switch op {
	case KindMin:
		v := params[0]
		for _, p := range params[1:] {
			if p < v {
				v = p
			}
		}
		return v, nil
	case KindMax:
		v := params[0]
		for _, p := range params[1:] {
			if p > v {
				v = p
			}
		}
		return v, nil
	case KindAvg:
		var sum float64
		for _, p := range params {
			sum += float64(p)
		}
		return float32(sum / float64(len(params))), nil
	case KindMed:
		return median(params), nil
	case KindMode:
		return mode(params), nil
	}
	return 0, &BadTokenError{Kind: op}
}

// median returns the middle value of params, or the mean of the two middle
// values for an even count. NaNs compare equal to everything, so they sort
// wherever they started.
func median(params []float32) float32 {
	s := append([]float32(nil), params...)
	sort.Slice(s, func(i, j int) bool { return s[i] < s[j] })
	k := len(s) / 2
	if len(s)%2 == 1 {
		return s[k]
	}
	return (s[k-1] + s[k]) / 2
}

// mode returns the most frequent value of params. Values bucket by exact
// bit pattern, so 2 and 2.0000001 are distinct. With no repeated value the
// mode is NaN; with several equally frequent values it is their mean, taken
// in first-occurrence order so the result does not depend on map iteration.
func mode(params []float32) float32 {
	counts := make(map[uint32]int, len(params))
	for _, p := range params {
		counts[math.Float32bits(p)]++
	}
	best := 0
	for _, n := range counts {
		if n > best {
			best = n
		}
	}
	if best <= 1 {
		return float32(math.NaN())
	}
	seen := make(map[uint32]bool, len(counts))
	var sum float64
	var n int
	for _, p := range params {
		b := math.Float32bits(p)
		if counts[b] == best && !seen[b] {
			seen[b] = true
			sum += float64(p)
			n++
		}
	}
	return float32(sum / float64(n))
}

// choose computes the binomial coefficient C(n, k) for two non-negative
// integer arguments. k greater than n is 0, not an error.
func choose(params []float32) (float32, error) {
	if len(params) != 2 {
		return 0, &ChoiceError{Params: append([]float32(nil), params...)}
	}
	n, k := params[0], params[1]
	if n < 0 || k < 0 || n != float32(int64(n)) || k != float32(int64(k)) {
		return 0, &ChoiceError{Params: append([]float32(nil), params...)}
	}
	if k > n {
		return 0, nil
	}
	nf, err := factorial(int(n))
	if err != nil {
		return 0, err
	}
	kf, err := factorial(int(k))
	if err != nil {
		return 0, err
	}
	nkf, err := factorial(int(n - k))
	if err != nil {
		return 0, err
	}
	return float32(nf / (kf * nkf)), nil
}
