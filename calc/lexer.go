package calc

import (
	"fmt"
	"strconv"
	"strings"
)

// maxTokens bounds the number of tokens a single expression may produce.
// The lexer fails with ErrTooManyTokens instead of truncating.
const maxTokens = 100

func lex(expr string, lastResult float64, emit func(token)) error {
	l := newLexer(expr, lastResult, emit)
	return l.scan()
}

type lexer struct {
	expr             []rune
	length           int
	currentCharIndex int
	lastResult       float64
	emitCallback     func(token)
	emitted          int
}

func newLexer(expr string, lastResult float64, emit func(token)) *lexer {
	runes := []rune(expr)
	return &lexer{
		expr:         runes,
		length:       len(runes),
		lastResult:   lastResult,
		emitCallback: emit,
	}
}

func (l *lexer) emit(tok token) error {
	if l.emitted >= maxTokens {
		return fmt.Errorf("%w: expression exceeds %d tokens", ErrTooManyTokens, maxTokens)
	}
	l.emitted++
	l.emitCallback(tok)
	return nil
}

func (l *lexer) peek(offset int) (rune, bool) {
	i := l.currentCharIndex + offset
	if i >= l.length {
		return 0, false
	}
	return l.expr[i], true
}

func (l *lexer) advance() (rune, bool) {
	ch, ok := l.peek(0)
	l.currentCharIndex++
	return ch, ok
}

func (l *lexer) scan() error {
	for {
		more, err := l.next()
		if err != nil {
			return err
		}
		if !more {
			break
		}
	}
	return nil
}

func (l *lexer) next() (bool, error) {
	col := l.currentCharIndex + 1
	ch, ok := l.advance()
	if !ok {
		return false, nil
	}

	switch {
	case isSpace(ch):
		return true, nil
	case isDigit(ch):
		return true, l.scanNumber(col)
	case ch == '.':
		// a dot only starts a literal when a digit follows
		ahead, ok := l.peek(0)
		if ok && isDigit(ahead) {
			return true, l.scanNumber(col)
		}
		return false, l.errorf(col, "unexpected character %q", ch)
	case isAlpha(ch):
		return true, l.scanIdentifier(col)
	case ch == '(':
		return true, l.emit(token{tokType: tokenTypeLParen, col: col})
	case ch == ')':
		return true, l.emit(token{tokType: tokenTypeRParen, col: col})
	case isOperatorChar(ch):
		return true, l.emit(token{tokType: tokenTypeOperator, op: byte(ch), col: col})
	default:
		return false, l.errorf(col, "unexpected character %q", ch)
	}
}

// scanNumber consumes the rest of a numeric literal whose first rune was
// already advanced past: a maximal run of digits with at most one decimal
// point.
func (l *lexer) scanNumber(col int) error {
	start := l.currentCharIndex - 1
	hasDecimal := l.expr[start] == '.'

	for {
		next, ok := l.peek(0)
		if !ok {
			break
		}
		if next == '.' {
			if hasDecimal {
				return l.errorf(l.currentCharIndex+1, "second decimal point in number")
			}
			hasDecimal = true
		} else if !isDigit(next) {
			break
		}
		l.advance()
	}

	text := string(l.expr[start:l.currentCharIndex])
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return l.errorf(col, "bad numeric literal %q", text)
	}
	return l.emit(token{tokType: tokenTypeNumber, value: value, col: col})
}

// scanIdentifier consumes a maximal run of letters. "Ans" is rewritten in
// place to a number token carrying the previous result; any other name
// becomes a function token, validated at evaluation time.
func (l *lexer) scanIdentifier(col int) error {
	start := l.currentCharIndex - 1
	for {
		next, ok := l.peek(0)
		if !ok || !isAlpha(next) {
			break
		}
		l.advance()
	}

	name := string(l.expr[start:l.currentCharIndex])
	if name == "Ans" {
		return l.emit(token{tokType: tokenTypeNumber, value: l.lastResult, col: col})
	}
	return l.emit(token{tokType: tokenTypeFunction, name: name, col: col})
}

func (l *lexer) errorf(col int, format string, args ...interface{}) error {
	return fmt.Errorf("%w at column %d: %s", ErrInvalidCharacter, col, fmt.Sprintf(format, args...))
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func isAlpha(ch rune) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isSpace(ch rune) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n'
}

func isOperatorChar(ch rune) bool {
	return strings.ContainsRune("+-*/%^", ch)
}
