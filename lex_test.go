package equations

import (
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func num(v float32) Token  { return Token{Kind: KindNumber, N1: v} }
func x(c, e float32) Token { return Token{Kind: KindX, N1: c, N2: e} }
func tk(k Kind) Token      { return Token{Kind: k} }
func logb(b float32) Token { return Token{Kind: KindLog, N1: b} }

func TestTokens(t *testing.T) {
	cases := []struct {
		src  string
		want []Token
	}{
		// numbers
		{"0", []Token{num(0), tk(KindEnd)}},
		{"42", []Token{num(42), tk(KindEnd)}},
		{"3.25", []Token{num(3.25), tk(KindEnd)}},
		{"1_000", []Token{num(1000), tk(KindEnd)}},
		{"1_000.5", []Token{num(1000.5), tk(KindEnd)}},
		{" \t 7 \n", []Token{num(7), tk(KindEnd)}},
		// constants
		{"π", []Token{tk(KindPi), tk(KindEnd)}},
		{"e", []Token{tk(KindE), tk(KindEnd)}},
		{"-π", []Token{tk(KindNegPi), tk(KindEnd)}},
		{"-e", []Token{tk(KindNegE), tk(KindEnd)}},
		// x terms
		{"x", []Token{x(1, 1), tk(KindEnd)}},
		{"-x", []Token{x(-1, 1), tk(KindEnd)}},
		{"3x", []Token{x(3, 1), tk(KindEnd)}},
		{"3x^2", []Token{x(3, 2), tk(KindEnd)}},
		{"-2x^3", []Token{x(-2, 3), tk(KindEnd)}},
		{"2.5x", []Token{x(2.5, 1), tk(KindEnd)}},
		{"x^(3)", []Token{x(1, 3), tk(KindEnd)}},
		{"x^(1/2)", []Token{x(1, 0.5), tk(KindEnd)}},
		{"x^(3/4)", []Token{x(1, 0.75), tk(KindEnd)}},
		// operators
		{"2 + 2", []Token{num(2), tk(KindPlus), num(2), tk(KindEnd)}},
		{"2 - 3", []Token{num(2), tk(KindMinus), num(3), tk(KindEnd)}},
		{"2*3/4", []Token{num(2), tk(KindStar), num(3), tk(KindSlash), num(4), tk(KindEnd)}},
		{"2^3", []Token{num(2), tk(KindPower), num(3), tk(KindEnd)}},
		{"5!", []Token{num(5), tk(KindFactorial), tk(KindEnd)}},
		{"50 % 10", []Token{num(50), tk(KindPercent), num(10), tk(KindEnd)}},
		{"7 %% 3", []Token{num(7), tk(KindModulo), num(3), tk(KindEnd)}},
		// unary minus folding
		{"-2", []Token{num(-2), tk(KindEnd)}},
		{"-2 + 3", []Token{num(-2), tk(KindPlus), num(3), tk(KindEnd)}},
		{"3 - -2", []Token{num(3), tk(KindMinus), num(-2), tk(KindEnd)}},
		{"(2)-3", []Token{tk(KindOpen), num(2), tk(KindClose), tk(KindMinus), num(3), tk(KindEnd)}},
		{"2!-3", []Token{num(2), tk(KindFactorial), tk(KindMinus), num(3), tk(KindEnd)}},
		{"x-3", []Token{x(1, 1), tk(KindMinus), num(3), tk(KindEnd)}},
		// no single operand to fold into
		{"-(2+3)", []Token{num(-1), tk(KindStar), tk(KindOpen), num(2), tk(KindPlus), num(3), tk(KindClose), tk(KindEnd)}},
		{"-sqrt(4)", []Token{num(-1), tk(KindStar), tk(KindSqrt), num(4), tk(KindClose), tk(KindEnd)}},
		{"--2", []Token{num(-1), tk(KindStar), num(-2), tk(KindEnd)}},
		// a negative base must not capture the exponent
		{"-2^2", []Token{num(-1), tk(KindStar), num(2), tk(KindPower), num(2), tk(KindEnd)}},
		// a coefficient after ^ must not become part of the base
		{"2^-3x^2", []Token{num(2), tk(KindPower), tk(KindOpen), num(-3), tk(KindStar), x(1, 2), tk(KindClose), tk(KindEnd)}},
		// functions
		{"sin(1)", []Token{tk(KindSin), num(1), tk(KindClose), tk(KindEnd)}},
		{"sqrt(4)", []Token{tk(KindSqrt), num(4), tk(KindClose), tk(KindEnd)}},
		{"ln(e)", []Token{tk(KindLn), tk(KindE), tk(KindClose), tk(KindEnd)}},
		{"log_10(100)", []Token{logb(10), num(100), tk(KindClose), tk(KindEnd)}},
		{"log_2(8)", []Token{logb(2), num(8), tk(KindClose), tk(KindEnd)}},
		{"min(1,2,3)", []Token{tk(KindMin), num(1), tk(KindComma), num(2), tk(KindComma), num(3), tk(KindClose), tk(KindEnd)}},
		{"ch(5,2)", []Token{tk(KindChoice), num(5), tk(KindComma), num(2), tk(KindClose), tk(KindEnd)}},
		// envelope
		{"y = 42x + 7", []Token{tk(KindY), tk(KindEqual), x(42, 1), tk(KindPlus), num(7), tk(KindEnd)}},
		{"x + 2 = y", []Token{x(1, 1), tk(KindPlus), num(2), tk(KindEqual), tk(KindY), tk(KindEnd)}},
		{"y = -2x + 1", []Token{tk(KindY), tk(KindEqual), x(-2, 1), tk(KindPlus), num(1), tk(KindEnd)}},
	}
	for _, c := range cases {
		t.Run(c.src, func(t *testing.T) {
			got, err := Tokens(c.src)
			require.NoError(t, err)
			require.Equal(t, c.want, got)
		})
	}
}

func TestTokensErrors(t *testing.T) {
	cases := []struct {
		src  string
		want error
	}{
		{"2 $ 2", &BadCharError{}},
		{"@", &BadCharError{}},
		{"foo(1)", &BadFunctionError{}},
		{"sin 5", &BadFunctionError{}},
		{"sinh(1)", &BadFunctionError{}},
		{"log(5)", &BadLogError{}},
		{"log_(5)", &BadLogError{}},
		{"log_a(5)", &BadLogError{}},
		{"x^a", &BadPowerError{}},
		{"x^(a)", &BadPowerError{}},
		{"x^(1/a)", &BadPowerError{}},
		{"x^(1", &BadPowerError{}},
	}
	for _, c := range cases {
		t.Run(c.src, func(t *testing.T) {
			_, err := Tokens(c.src)
			require.Error(t, err)
			require.IsType(t, c.want, err)
			var in InputError
			require.ErrorAs(t, err, &in)
			require.Greater(t, in.Pos(), 0)
		})
	}
	_, err := Tokens("")
	require.ErrorIs(t, err, ErrEmptyInput)
	_, err = NewLexer("")
	require.ErrorIs(t, err, ErrEmptyInput)
}

// The pull scanner and the eager scanner must produce identical sequences.
func TestLexerMatchesTokens(t *testing.T) {
	srcs := []string{
		"2 + 2",
		"y = 3x^2 - 2x + 1",
		"sin(π/2) * ln(e)",
		"min(1,2,3) + max(4, 5)",
		"-2^2 + 2^-3x^2",
		"log_10(100) / 50 % 10",
	}
	for _, src := range srcs {
		t.Run(src, func(t *testing.T) {
			want, err := Tokens(src)
			require.NoError(t, err)
			l, err := NewLexer(src)
			require.NoError(t, err)
			var got []Token
			for {
				tok, err := l.Next()
				if err == io.EOF {
					break
				}
				require.NoError(t, err)
				got = append(got, tok)
			}
			require.Equal(t, want, got)
			// drained scanners stay drained
			_, err = l.Next()
			require.ErrorIs(t, err, io.EOF)
		})
	}
}

// A leading negation folds into the operand itself: "-a op b" scans to a
// negative number or coefficient, never to a Minus token.
func TestUnaryMinusFolds(t *testing.T) {
	for _, a := range []string{"2", "3.5", "1_000"} {
		for _, op := range []string{"+", "*", "/", "%%", "%"} {
			src := "-" + a + " " + op + " 4"
			t.Run(src, func(t *testing.T) {
				got, err := Tokens(src)
				require.NoError(t, err)
				require.Len(t, got, 4)
				require.Equal(t, KindNumber, got[0].Kind)
				require.Negative(t, got[0].N1)
				for _, tok := range got {
					require.NotEqual(t, KindMinus, tok.Kind)
				}
			})
		}
	}
	// same for x terms
	got, err := Tokens("-2x * 4")
	require.NoError(t, err)
	require.Equal(t, x(-2, 1), got[0])
}

func TestLexerEndOnce(t *testing.T) {
	l, err := NewLexer("1")
	require.NoError(t, err)
	tok, err := l.Next()
	require.NoError(t, err)
	require.Equal(t, num(1), tok)
	tok, err = l.Next()
	require.NoError(t, err)
	require.Equal(t, KindEnd, tok.Kind)
	for i := 0; i < 3; i++ {
		_, err = l.Next()
		require.ErrorIs(t, err, io.EOF)
	}
}
