package equations

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"
)

// ErrEmptyInput indicates an empty equation.
var ErrEmptyInput = errors.New("empty equation")

// Lexer scans an equation into tokens on demand. The zero value is not
// usable; create one with NewLexer. Once the input is exhausted the scanner
// yields exactly one KindEnd token, and every call after that returns
// io.EOF.
//
// Unary minus is resolved in place: -5 scans as Number(-5), -2x as X(-2, 1),
// -π as NegPi. Forms with no single operand to fold the sign into, such as
// -(2+3) or -sqrt(4), scan as Number(-1) followed by a queued Star.
// Coefficients and exponents on x fold into a single X token, so -2x^3 is
// X(-2, 3).
type Lexer struct {
	src     string
	pos     int // byte offset into src
	col     int // runes consumed, for error positions
	prev    Kind
	pending []Token
	eof     bool
}

// NewLexer creates a lexer over an equation. Empty input fails immediately.
func NewLexer(src string) (*Lexer, error) {
	if src == "" {
		return nil, ErrEmptyInput
	}
	return &Lexer{src: src}, nil
}

// Tokens scans an entire equation eagerly. The sequence is identical to the
// one produced by draining a Lexer over the same input.
func Tokens(src string) ([]Token, error) {
	l, err := NewLexer(src)
	if err != nil {
		return nil, err
	}
	toks := make([]Token, 0, len(src)/2+1)
	for {
		tok, err := l.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return toks, nil
			}
			return nil, err
		}
		toks = append(toks, tok)
	}
}

// Next scans the next token from the input.
func (l *Lexer) Next() (Token, error) {
	if len(l.pending) > 0 {
		tok := l.pending[0]
		l.pending = l.pending[1:]
		l.prev = tok.Kind
		return tok, nil
	}
	if l.eof {
		return Token{}, io.EOF
	}
	for isSpace(l.peek()) {
		l.advance()
	}
	if l.pos >= len(l.src) {
		l.eof = true
		return l.emit(KindEnd), nil
	}
	start := l.pos
	col := l.col + 1
	c := l.advance()
	switch c {
	case 'y':
		return l.emit(KindY), nil
	case '=':
		return l.emit(KindEqual), nil
	case ',':
		return l.emit(KindComma), nil
	case '(':
		return l.emit(KindOpen), nil
	case ')':
		return l.emit(KindClose), nil
	case '^':
		return l.emit(KindPower), nil
	case '!':
		return l.emit(KindFactorial), nil
	case '+':
		return l.emit(KindPlus), nil
	case '*':
		return l.emit(KindStar), nil
	case '/':
		return l.emit(KindSlash), nil
	case '%':
		if l.peek() == '%' {
			l.advance()
			return l.emit(KindModulo), nil
		}
		return l.emit(KindPercent), nil
	case 'π':
		return l.emit(KindPi), nil
	case 'e':
		return l.emit(KindE), nil
	case '-':
		return l.minus(col)
	case 'x':
		return l.xToken(1, col)
	}
	switch {
	case isDigit(c):
		return l.number(start, col, false)
	case isLetter(c):
		return l.ident(start, col)
	}
	return Token{}, &BadCharError{Col: col, Char: c}
}

// minus resolves a '-' as binary subtraction or as a folded negation. It is
// binary exactly when the previous token can end an operand.
func (l *Lexer) minus(col int) (Token, error) {
	switch l.prev {
	case KindE, KindPi, KindNumber, KindClose, KindX, KindFactorial:
		return l.emit(KindMinus), nil
	}
	switch {
	case l.peek() == 'e':
		l.advance()
		return l.emit(KindNegE), nil
	case l.peek() == 'π':
		l.advance()
		return l.emit(KindNegPi), nil
	case isDigit(l.peek()):
		start := l.pos
		l.advance()
		return l.number(start, col, true)
	case l.peek() == 'x':
		l.advance()
		return l.xToken(-1, col)
	case l.peek() == '(' || l.peek() == '-' || isLetter(l.peek()):
		// -(5+2), -sqrt(4), --2: no operand to fold the sign into, so fall
		// back to multiplication by -1.
		l.pending = append(l.pending, Token{Kind: KindStar})
		return l.emit2(KindNumber, -1, 0), nil
	}
	return Token{}, &BadCharError{Col: col, Char: '-'}
}

// number scans the remainder of a digit run whose first digit is already
// consumed. start is the byte offset of that first digit.
func (l *Lexer) number(start, col int, neg bool) (Token, error) {
	l.scanDigits()
	lit := l.src[start:l.pos]
	if l.peek() == 'x' {
		l.advance()
		coef, err := parseNumber(lit, col)
		if err != nil {
			return Token{}, err
		}
		if neg {
			coef = -coef
		}
		return l.xToken(coef, col)
	}
	v, err := parseNumber(lit, col)
	if err != nil {
		return Token{}, err
	}
	if neg {
		// A folded negative base would capture the exponent: -2^2 is
		// -1 * 2^2, not (-2)^2.
		if l.peek() == '^' {
			l.pending = append(l.pending, Token{Kind: KindStar}, Token{Kind: KindNumber, N1: v})
			return l.emit2(KindNumber, -1, 0), nil
		}
		v = -v
	}
	return l.emit2(KindNumber, v, 0), nil
}

// xToken finishes an X token whose 'x' is already consumed, folding an
// optional ^exponent suffix into the token's second payload.
func (l *Lexer) xToken(coef float32, col int) (Token, error) {
	exp := float32(1)
	if l.peek() == '^' {
		l.advance()
		e, err := l.exponent(col)
		if err != nil {
			return Token{}, err
		}
		exp = e
	}
	if l.prev == KindPower && coef != 1 {
		// The coefficient must not become part of an exponent base:
		// 2^-3x is 2^(-3*x). Expand into a parenthesized product.
		l.pending = append(l.pending,
			Token{Kind: KindNumber, N1: coef},
			Token{Kind: KindStar},
			Token{Kind: KindX, N1: 1, N2: exp},
			Token{Kind: KindClose},
		)
		return l.emit(KindOpen), nil
	}
	return l.emit2(KindX, coef, exp), nil
}

// exponent scans an x exponent: a digit run, or a parenthesized integer or
// integer ratio. The value is folded to a constant at scan time.
func (l *Lexer) exponent(col int) (float32, error) {
	switch {
	case isDigit(l.peek()):
		start := l.pos
		l.advance()
		l.scanDigits()
		return parseNumber(l.src[start:l.pos], col)
	case l.peek() == '(':
		l.advance()
		num, err := l.exponentInt(col)
		if err != nil {
			return 0, err
		}
		den := float32(1)
		if l.peek() == '/' {
			l.advance()
			den, err = l.exponentInt(col)
			if err != nil {
				return 0, err
			}
		}
		if l.peek() != ')' {
			return 0, &BadPowerError{Col: col}
		}
		l.advance()
		return num / den, nil
	}
	return 0, &BadPowerError{Col: col}
}

// exponentInt scans one integer inside a parenthesized exponent.
func (l *Lexer) exponentInt(col int) (float32, error) {
	if !isDigit(l.peek()) {
		return 0, &BadPowerError{Col: col}
	}
	start := l.pos
	l.advance()
	for isDigit(l.peek()) || l.peek() == '_' {
		l.advance()
	}
	return parseNumber(l.src[start:l.pos], col)
}

// ident scans a function name, which must be immediately followed by an
// opening parenthesis that is consumed with it.
func (l *Lexer) ident(start, col int) (Token, error) {
	for isLetter(l.peek()) {
		l.advance()
	}
	name := l.src[start:l.pos]
	if l.peek() == '_' {
		if name != "log" {
			return Token{}, &BadFunctionError{Col: col, Name: name}
		}
		l.advance()
		if !isDigit(l.peek()) {
			return Token{}, &BadLogError{Col: col}
		}
		bstart := l.pos
		l.advance()
		l.scanDigits()
		base, err := parseNumber(l.src[bstart:l.pos], col)
		if err != nil {
			return Token{}, err
		}
		if l.peek() != '(' {
			return Token{}, &BadLogError{Col: col}
		}
		l.advance()
		return l.emit2(KindLog, base, 0), nil
	}
	var kind Kind
	switch name {
	case "sin":
		kind = KindSin
	case "cos":
		kind = KindCos
	case "tan":
		kind = KindTan
	case "asin":
		kind = KindAsin
	case "acos":
		kind = KindAcos
	case "atan":
		kind = KindAtan
	case "abs":
		kind = KindAbs
	case "sqrt":
		kind = KindSqrt
	case "ln":
		kind = KindLn
	case "min":
		kind = KindMin
	case "max":
		kind = KindMax
	case "avg":
		kind = KindAvg
	case "med":
		kind = KindMed
	case "mode":
		kind = KindMode
	case "ch":
		kind = KindChoice
	case "log":
		return Token{}, &BadLogError{Col: col}
	default:
		return Token{}, &BadFunctionError{Col: col, Name: name}
	}
	if l.peek() != '(' {
		return Token{}, &BadFunctionError{Col: col, Name: name}
	}
	l.advance()
	return l.emit(kind), nil
}

// scanDigits consumes a digit run with optional underscore separators and an
// optional fractional part.
func (l *Lexer) scanDigits() {
	for isDigit(l.peek()) || l.peek() == '_' {
		l.advance()
	}
	if l.peek() == '.' && isDigit(l.peek2()) {
		l.advance()
		for isDigit(l.peek()) {
			l.advance()
		}
	}
}

func (l *Lexer) emit(k Kind) Token {
	l.prev = k
	return Token{Kind: k}
}

func (l *Lexer) emit2(k Kind, n1, n2 float32) Token {
	l.prev = k
	return Token{Kind: k, N1: n1, N2: n2}
}

func (l *Lexer) peek() rune {
	if l.pos >= len(l.src) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.src[l.pos:])
	return r
}

func (l *Lexer) peek2() rune {
	_, sz := utf8.DecodeRuneInString(l.src[l.pos:])
	if l.pos+sz >= len(l.src) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.src[l.pos+sz:])
	return r
}

func (l *Lexer) advance() rune {
	r, sz := utf8.DecodeRuneInString(l.src[l.pos:])
	l.pos += sz
	l.col++
	return r
}

func parseNumber(lit string, col int) (float32, error) {
	v, err := strconv.ParseFloat(strings.ReplaceAll(lit, "_", ""), 32)
	if err != nil {
		return 0, &BadNumberError{Col: col, Lexeme: lit}
	}
	return float32(v), nil
}

func isSpace(c rune) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

func isDigit(c rune) bool {
	return '0' <= c && c <= '9'
}

func isLetter(c rune) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

// BadCharError indicates a character the scanner does not recognize. It
// implements InputError.
type BadCharError struct {
	// Col is the rune position of the character.
	Col int
	// Char is the offending character.
	Char rune
}

func (err *BadCharError) Error() string {
	return errpos(err.Col, "unrecognized character "+strconv.QuoteRune(err.Char))
}

func (err *BadCharError) Pos() int {
	return err.Col
}

// BadNumberError indicates a numeric literal that does not parse. It
// implements InputError.
type BadNumberError struct {
	// Col is the rune position of the start of the literal.
	Col int
	// Lexeme is the text that failed to parse.
	Lexeme string
}

func (err *BadNumberError) Error() string {
	return errpos(err.Col, "invalid number "+strconv.Quote(err.Lexeme))
}

func (err *BadNumberError) Pos() int {
	return err.Col
}

// BadFunctionError indicates an identifier that is not a known function
// written name(. It implements InputError.
type BadFunctionError struct {
	// Col is the rune position of the start of the identifier.
	Col int
	// Name is the identifier.
	Name string
}

func (err *BadFunctionError) Error() string {
	return errpos(err.Col, "unknown function "+strconv.Quote(err.Name))
}

func (err *BadFunctionError) Pos() int {
	return err.Col
}

// BadLogError indicates a log written without a base. It implements
// InputError.
type BadLogError struct {
	// Col is the rune position of the log keyword.
	Col int
}

func (err *BadLogError) Error() string {
	return errpos(err.Col, "log must be written log_<digits>(")
}

func (err *BadLogError) Pos() int {
	return err.Col
}

// BadPowerError indicates a ^ on x that is not followed by digits or a
// parenthesized rational. It implements InputError.
type BadPowerError struct {
	// Col is the rune position of the x carrying the exponent.
	Col int
}

func (err *BadPowerError) Error() string {
	return errpos(err.Col, "exponent must be digits or a parenthesized rational")
}

func (err *BadPowerError) Pos() int {
	return err.Col
}
