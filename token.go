package equations

import "strconv"

// Token is a single lexical or RPN element of an equation. N1 and N2 carry
// kind-dependent payload: for KindNumber, N1 is the literal value; for KindX,
// N1 is the coefficient and N2 the exponent (so "3x^2" is one token with
// (3, 2)); for KindLog, N1 is the base. Every other kind ignores both.
type Token struct {
	Kind Kind
	N1   float32
	N2   float32
}

// Kind identifies the kind of a token.
type Kind int8

const (
	KindNone Kind = iota

	// structural
	KindY
	KindEqual
	KindComma
	KindOpen
	KindClose
	// KindEnd terminates every well-formed token stream exactly once.
	KindEnd

	// operands
	KindNumber
	KindX
	KindPi
	KindE
	KindNegPi
	KindNegE

	// operators
	KindPlus
	KindMinus
	KindStar
	KindSlash
	KindPower
	KindModulo
	KindPercent
	KindFactorial

	// unary functions, written "name("
	KindSin
	KindCos
	KindTan
	KindAsin
	KindAcos
	KindAtan
	KindAbs
	KindSqrt
	KindLn
	KindLog

	// variadic functions, written "name("
	KindMin
	KindMax
	KindAvg
	KindMed
	KindMode
	KindChoice

	// synthetic variadic terminators; they appear only in RPN output, never
	// in tokenizer output.
	KindEndMin
	KindEndMax
	KindEndAvg
	KindEndMed
	KindEndMode
	KindEndChoice
)

var kindNames = [...]string{
	KindNone:      "None",
	KindY:         "Y",
	KindEqual:     "Equal",
	KindComma:     "Comma",
	KindOpen:      "OpenParen",
	KindClose:     "CloseParen",
	KindEnd:       "End",
	KindNumber:    "Number",
	KindX:         "X",
	KindPi:        "Pi",
	KindE:         "E",
	KindNegPi:     "NegPi",
	KindNegE:      "NegE",
	KindPlus:      "Plus",
	KindMinus:     "Minus",
	KindStar:      "Star",
	KindSlash:     "Slash",
	KindPower:     "Power",
	KindModulo:    "Modulo",
	KindPercent:   "Percent",
	KindFactorial: "Factorial",
	KindSin:       "Sin",
	KindCos:       "Cos",
	KindTan:       "Tan",
	KindAsin:      "Asin",
	KindAcos:      "Acos",
	KindAtan:      "Atan",
	KindAbs:       "Abs",
	KindSqrt:      "Sqrt",
	KindLn:        "Ln",
	KindLog:       "Log",
	KindMin:       "Min",
	KindMax:       "Max",
	KindAvg:       "Avg",
	KindMed:       "Med",
	KindMode:      "Mode",
	KindChoice:    "Choice",
	KindEndMin:    "EndMin",
	KindEndMax:    "EndMax",
	KindEndAvg:    "EndAvg",
	KindEndMed:    "EndMed",
	KindEndMode:   "EndMode",
	KindEndChoice: "EndChoice",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// IsVariadic reports whether k opens a variadic function call.
func (k Kind) IsVariadic() bool {
	switch k {
	case KindMin, KindMax, KindAvg, KindMed, KindMode, KindChoice:
		return true
	}
	return false
}

// IsFunction reports whether k is a function opener, unary or variadic.
func (k Kind) IsFunction() bool {
	return k >= KindSin && k <= KindChoice
}

// VariadicEnd maps a variadic opener to its synthetic terminator kind. For
// any other kind the result is KindNone.
func (k Kind) VariadicEnd() Kind {
	switch k {
	case KindMin:
		return KindEndMin
	case KindMax:
		return KindEndMax
	case KindAvg:
		return KindEndAvg
	case KindMed:
		return KindEndMed
	case KindMode:
		return KindEndMode
	case KindChoice:
		return KindEndChoice
	}
	return KindNone
}

// isSynthetic reports whether k is a parser-generated variadic terminator.
func (k Kind) isSynthetic() bool {
	return k >= KindEndMin && k <= KindEndChoice
}

func (t Token) String() string {
	switch t.Kind {
	case KindNumber, KindLog:
		return t.Kind.String() + "(" + strconv.FormatFloat(float64(t.N1), 'g', -1, 32) + ")"
	case KindX:
		return "X(" + strconv.FormatFloat(float64(t.N1), 'g', -1, 32) + "," + strconv.FormatFloat(float64(t.N2), 'g', -1, 32) + ")"
	}
	return t.Kind.String()
}
