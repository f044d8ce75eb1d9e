package equations

import (
	"errors"
	"strconv"
)

// Parser contract errors. These indicate malformed token streams rather than
// malformed text, so they carry no position.
var (
	// ErrUnmatchedClose indicates a closing parenthesis with no opener.
	ErrUnmatchedClose = errors.New("unmatched closing parenthesis")
	// ErrUnmatchedOpen indicates an opening parenthesis never closed.
	ErrUnmatchedOpen = errors.New("unmatched opening parenthesis")
	// ErrNoEndMarker indicates a token stream that ran out without the
	// terminator every well-formed stream carries.
	ErrNoEndMarker = errors.New("token stream ended without end marker")
	// ErrVariadicArgsNotScalar indicates a variadic call whose argument is
	// not a plain number or x term, including a nested call.
	ErrVariadicArgsNotScalar = errors.New("variadic arguments must be numbers or x terms")
	// ErrSyntheticToken indicates a variadic terminator appearing in parser
	// input; those exist only in parser output.
	ErrSyntheticToken = errors.New("synthetic terminator in input")
	// ErrBadVariadicParam indicates a token between a variadic opener and
	// its terminator that the evaluator cannot treat as a parameter.
	ErrBadVariadicParam = errors.New("invalid variadic parameter")
)

// BadTokenError indicates a token used where an operator or function was
// required.
type BadTokenError struct {
	// Kind is the kind of the offending token.
	Kind Kind
}

func (err *BadTokenError) Error() string {
	return "token " + err.Kind.String() + " is not an operator or function"
}

// UnderflowError indicates an operator or function that popped an empty
// evaluation stack.
type UnderflowError struct {
	// Op is the operator or function that needed more values.
	Op Kind
}

func (err *UnderflowError) Error() string {
	return "not enough values for " + err.Op.String()
}

// UnbalancedError indicates an evaluation that finished with a number of
// stack values other than one.
type UnbalancedError struct {
	// Values is the number of values left on the stack.
	Values int
}

func (err *UnbalancedError) Error() string {
	return "evaluation left " + strconv.Itoa(err.Values) + " values on the stack"
}

// FactorialError indicates a factorial of a negative, fractional, or
// too-large value.
type FactorialError struct {
	// X is the operand.
	X float32
}

func (err *FactorialError) Error() string {
	return "factorial undefined for " + strconv.FormatFloat(float64(err.X), 'g', -1, 32)
}

// ChoiceError indicates a ch call whose arguments are not two non-negative
// integers.
type ChoiceError struct {
	// Params are the arguments as given.
	Params []float32
}

func (err *ChoiceError) Error() string {
	if len(err.Params) != 2 {
		return "ch requires exactly 2 arguments, got " + strconv.Itoa(len(err.Params))
	}
	return "ch requires non-negative integers, got (" +
		strconv.FormatFloat(float64(err.Params[0]), 'g', -1, 32) + ", " +
		strconv.FormatFloat(float64(err.Params[1]), 'g', -1, 32) + ")"
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting
// from invalid equation text implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*BadCharError)(nil)
	_ InputError = (*BadNumberError)(nil)
	_ InputError = (*BadFunctionError)(nil)
	_ InputError = (*BadLogError)(nil)
	_ InputError = (*BadPowerError)(nil)
)
