package equations

import (
	"errors"
	"io"
	"math"
)

// evaluator is the reverse-Polish stack machine shared by the eager and
// streaming drivers. It is not safe to use concurrently.
type evaluator struct {
	x     float32
	stack []float32
	coll  paramCollector
	// n counts tokens other than the terminator, to tell an empty stream
	// from an unbalanced one.
	n int
	// nan records a domain failure that poisons the whole result without
	// being an error, such as the square root of a negative value.
	nan bool
}

// Evaluate computes the value of a reverse Polish token sequence at x.
func Evaluate(rpn []Token, x float32) (float32, error) {
	e := evaluator{x: x, stack: make([]float32, 0, 8)}
	for _, tok := range rpn {
		if err := e.step(tok); err != nil {
			return 0, err
		}
	}
	return e.result()
}

// EvalStream computes the value of a reverse Polish token stream at x,
// pulling one token at a time.
func EvalStream(src TokenSource, x float32) (float32, error) {
	e := evaluator{x: x, stack: make([]float32, 0, 8)}
	for {
		tok, err := src.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return e.result()
			}
			return 0, err
		}
		if err := e.step(tok); err != nil {
			return 0, err
		}
	}
}

// step executes one reverse Polish token.
func (e *evaluator) step(tok Token) error {
	if e.nan {
		// The result is already NaN; nothing can un-poison it.
		return nil
	}
	res, v, err := e.coll.step(tok, e.x)
	if err != nil {
		return err
	}
	switch res {
	case collectConsumed:
		e.n++
		return nil
	case collectDone:
		e.push(v)
		e.n++
		return nil
	}
	switch tok.Kind {
	case KindEnd:
		return nil
	case KindNumber:
		e.push(tok.N1)
	case KindX:
		e.push(xTerm(tok, e.x))
	case KindPi:
		e.push(math.Pi)
	case KindE:
		e.push(math.E)
	case KindNegPi:
		e.push(-math.Pi)
	case KindNegE:
		e.push(-math.E)
	case KindPlus, KindMinus, KindStar, KindSlash, KindPower, KindModulo, KindPercent:
		if err := e.binary(tok.Kind); err != nil {
			return err
		}
	case KindFactorial:
		v, err := e.pop(KindFactorial)
		if err != nil {
			return err
		}
		if err := e.fact(v); err != nil {
			return err
		}
	case KindSin, KindCos, KindTan, KindAsin, KindAcos, KindAtan, KindAbs, KindSqrt, KindLn, KindLog:
		if err := e.unary(tok); err != nil {
			return err
		}
	default:
		return &BadTokenError{Kind: tok.Kind}
	}
	e.n++
	return nil
}

// result returns the final value after the last token.
func (e *evaluator) result() (float32, error) {
	if e.nan {
		return float32(math.NaN()), nil
	}
	if e.n == 0 {
		return 0, ErrEmptyInput
	}
	if len(e.stack) != 1 {
		return 0, &UnbalancedError{Values: len(e.stack)}
	}
	return e.stack[0], nil
}

// binary applies an infix operator to the top two stack values. The right
// operand is the more recently pushed one.
func (e *evaluator) binary(op Kind) error {
	rhs, err := e.pop(op)
	if err != nil {
		return err
	}
	lhs, err := e.pop(op)
	if err != nil {
		return err
	}
	var v float32
	switch op {
	case KindPlus:
		v = lhs + rhs
	case KindMinus:
		v = lhs - rhs
	case KindStar:
		v = lhs * rhs
	case KindSlash:
		// IEEE semantics: x/0 is an infinity and 0/0 is NaN.
		v = lhs / rhs
	case KindPower:
		v = pow32(lhs, rhs)
	case KindModulo:
		v = float32(math.Mod(float64(lhs), float64(rhs)))
	case KindPercent:
		// lhs reduced to rhs percent: 50 % 10 is 5.
		v = lhs * (rhs / 100)
	}
	e.push(v)
	return nil
}

// unary applies a one-argument function to the top stack value.
func (e *evaluator) unary(tok Token) error {
	v, err := e.pop(tok.Kind)
	if err != nil {
		return err
	}
	f := float64(v)
	var r float64
	switch tok.Kind {
	case KindSin:
		r = math.Sin(f)
	case KindCos:
		r = math.Cos(f)
	case KindTan:
		r = math.Tan(f)
	case KindAsin:
		r = math.Asin(f)
	case KindAcos:
		r = math.Acos(f)
	case KindAtan:
		r = math.Atan(f)
	case KindAbs:
		r = math.Abs(f)
	case KindSqrt:
		if v < 0 {
			e.nan = true
			return nil
		}
		r = math.Sqrt(f)
	case KindLn:
		r = math.Log(f)
	case KindLog:
		r = math.Log(f) / math.Log(float64(tok.N1))
	}
	e.push(float32(r))
	return nil
}

// fact applies the factorial operator, which is defined only for integers 0
// through 20.
func (e *evaluator) fact(v float32) error {
	if v < 0 || v != float32(int64(v)) {
		return &FactorialError{X: v}
	}
	f, err := factorial(int(v))
	if err != nil {
		return err
	}
	e.push(float32(f))
	return nil
}

func (e *evaluator) push(v float32) {
	e.stack = append(e.stack, v)
}

func (e *evaluator) pop(op Kind) (float32, error) {
	if len(e.stack) == 0 {
		return 0, &UnderflowError{Op: op}
	}
	v := e.stack[len(e.stack)-1]
	e.stack = e.stack[:len(e.stack)-1]
	return v, nil
}

// xTerm computes the value of an X token: coefficient times x to the folded
// exponent.
func xTerm(tok Token, x float32) float32 {
	return tok.N1 * pow32(x, tok.N2)
}

func pow32(b, p float32) float32 {
	return float32(math.Pow(float64(b), float64(p)))
}
