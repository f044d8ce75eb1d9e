package equations

// operand is an operator-stack entry during Shunting-Yard parsing. It keeps
// the originating token so that payload-carrying operators (KindLog keeps
// its base in N1) survive the trip through the stack.
type operand struct {
	tok Token
	// prec is the precedence value. Higher is more binding.
	prec int8
	// rightAssoc indicates right-associativity.
	rightAssoc bool
	// isFunc marks function openers, which are emitted to the output when
	// their closing parenthesis is found.
	isFunc bool
	// parenOpener marks stack entries that block operator popping:
	// KindOpen and every function opener, since functions are written
	// "name(".
	parenOpener bool
}

// operandFor returns the operand metadata for an operator or function token.
// It is total over operator and function kinds and fails for everything
// else.
func operandFor(tok Token) (operand, error) {
	switch tok.Kind {
	case KindOpen:
		return operand{tok: tok, prec: 0, rightAssoc: true, parenOpener: true}, nil
	case KindSin, KindCos, KindTan, KindAsin, KindAcos, KindAtan,
		KindAbs, KindSqrt, KindLn, KindLog,
		KindMin, KindMax, KindAvg, KindMed, KindMode, KindChoice:
		return operand{tok: tok, prec: 0, rightAssoc: true, isFunc: true, parenOpener: true}, nil
	case KindFactorial:
		return operand{tok: tok, prec: 5}, nil
	case KindPower:
		return operand{tok: tok, prec: 4, rightAssoc: true}, nil
	case KindStar, KindSlash, KindModulo, KindPercent:
		return operand{tok: tok, prec: 3}, nil
	case KindPlus, KindMinus:
		return operand{tok: tok, prec: 2}, nil
	}
	return operand{}, &BadTokenError{Kind: tok.Kind}
}
