package equations

import (
	"errors"
	"io"
)

// TokenSource is a pull source of tokens. Next returns io.EOF when the
// source is exhausted; a well-formed source yields exactly one KindEnd token
// immediately before that.
type TokenSource interface {
	Next() (Token, error)
}

// tokenSlice adapts an eagerly scanned token slice to a TokenSource.
type tokenSlice struct {
	toks []Token
}

func (s *tokenSlice) Next() (Token, error) {
	if len(s.toks) == 0 {
		return Token{}, io.EOF
	}
	tok := s.toks[0]
	s.toks = s.toks[1:]
	return tok, nil
}

// Parser converts a token stream to reverse Polish notation on demand using
// the shunting-yard algorithm. Create one with NewParser. After the single
// KindEnd token of the output, Next returns io.EOF.
//
// Operands stream through as soon as they arrive; operators wait on a stack
// until precedence forces them out. Variadic calls are the exception to pure
// shunting-yard: between a variadic opener and its closing parenthesis only
// numbers, x terms, and commas may appear, and the parser emits the opener
// followed by its arguments and a synthetic terminator so that the
// evaluator can collect the arguments without knowing their count in
// advance.
type Parser struct {
	src TokenSource
	// ops is the operator stack.
	ops []operand
	// out is the queue of tokens ready to be returned.
	out []Token
	// depth is the number of unmatched parenthesis openers.
	depth int
	// variadic is the opener currently collecting arguments, or KindNone.
	variadic Kind
	sawEnd   bool
	done     bool
	err      error
}

// NewParser creates a parser reading from src.
func NewParser(src TokenSource) *Parser {
	return &Parser{src: src}
}

// Parse converts an entire token stream to reverse Polish notation eagerly.
// The sequence is identical to the one produced by draining a Parser over
// the same source.
func Parse(src TokenSource) ([]Token, error) {
	p := NewParser(src)
	out := make([]Token, 0, 16)
	for {
		tok, err := p.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return out, nil
			}
			return nil, err
		}
		out = append(out, tok)
	}
}

// ParseTokens converts an eagerly scanned token slice to reverse Polish
// notation.
func ParseTokens(toks []Token) ([]Token, error) {
	return Parse(&tokenSlice{toks: toks})
}

// Next returns the next token of the reverse Polish output. Once the parser
// fails it keeps returning the same error.
func (p *Parser) Next() (Token, error) {
	for {
		if len(p.out) > 0 {
			tok := p.out[0]
			p.out = p.out[1:]
			return tok, nil
		}
		if p.err != nil {
			return Token{}, p.err
		}
		if p.done {
			p.err = io.EOF
			return Token{}, io.EOF
		}
		tok, err := p.src.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				// The source must end the stream explicitly; a silent EOF
				// means it was truncated.
				p.err = ErrNoEndMarker
				if p.sawEnd {
					p.err = io.EOF
				}
				continue
			}
			p.err = err
			return Token{}, err
		}
		if err := p.process(tok); err != nil {
			p.err = err
			return Token{}, err
		}
		if tok.Kind == KindEnd {
			p.done = true
		}
	}
}

// process advances the shunting-yard state machine by one input token,
// appending any output it releases to the out queue.
func (p *Parser) process(tok Token) error {
	if tok.Kind.isSynthetic() {
		return ErrSyntheticToken
	}
	if p.variadic != KindNone {
		return p.collect(tok)
	}
	switch tok.Kind {
	case KindY, KindEqual, KindComma:
		// The y= envelope carries no value, and commas only matter inside
		// variadic calls.
		return nil
	case KindNumber, KindX, KindPi, KindE, KindNegPi, KindNegE:
		p.out = append(p.out, tok)
		return nil
	case KindClose:
		return p.closeParen()
	case KindEnd:
		p.sawEnd = true
		return p.flush()
	}
	if tok.Kind.IsVariadic() {
		p.out = append(p.out, tok)
		p.variadic = tok.Kind
		return nil
	}
	op, err := operandFor(tok)
	if err != nil {
		return err
	}
	if op.parenOpener {
		p.depth++
		p.ops = append(p.ops, op)
		return nil
	}
	for len(p.ops) > 0 {
		top := p.ops[len(p.ops)-1]
		if top.parenOpener {
			break
		}
		if top.prec > op.prec || (top.prec == op.prec && !op.rightAssoc) {
			p.out = append(p.out, top.tok)
			p.ops = p.ops[:len(p.ops)-1]
			continue
		}
		break
	}
	p.ops = append(p.ops, op)
	return nil
}

// collect handles one token inside a variadic call. Arguments pass straight
// to the output, and the closing parenthesis becomes the synthetic
// terminator.
func (p *Parser) collect(tok Token) error {
	switch tok.Kind {
	case KindNumber, KindX:
		p.out = append(p.out, tok)
	case KindComma:
	case KindClose:
		p.out = append(p.out, Token{Kind: p.variadic.VariadicEnd()})
		p.variadic = KindNone
	case KindEnd:
		return ErrUnmatchedOpen
	default:
		return ErrVariadicArgsNotScalar
	}
	return nil
}

// closeParen pops operators to the output until the matching opener. A
// function opener is emitted to the output in place of its parentheses.
func (p *Parser) closeParen() error {
	for len(p.ops) > 0 {
		top := p.ops[len(p.ops)-1]
		p.ops = p.ops[:len(p.ops)-1]
		if top.parenOpener {
			p.depth--
			if top.isFunc {
				p.out = append(p.out, top.tok)
			}
			return nil
		}
		p.out = append(p.out, top.tok)
	}
	return ErrUnmatchedClose
}

// flush drains the operator stack at end of input and appends the output
// terminator.
func (p *Parser) flush() error {
	for len(p.ops) > 0 {
		top := p.ops[len(p.ops)-1]
		p.ops = p.ops[:len(p.ops)-1]
		if top.parenOpener {
			return ErrUnmatchedOpen
		}
		p.out = append(p.out, top.tok)
	}
	if p.depth != 0 {
		return ErrUnmatchedOpen
	}
	p.out = append(p.out, Token{Kind: KindEnd})
	return nil
}
