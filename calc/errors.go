package calc

import "errors"

// Sentinel errors for the three pipeline stages. Callers that only want a
// yes/no answer can treat any non-nil error as "invalid expression"; tests
// and embedders can distinguish the kinds with errors.Is.
var (
	// tokenizer
	ErrInvalidCharacter = errors.New("invalid character")
	ErrTooManyTokens    = errors.New("too many tokens")

	// converter
	ErrMismatchedParen = errors.New("mismatched parentheses")

	// evaluator
	ErrStackUnderflow      = errors.New("stack underflow")
	ErrMalformedExpression = errors.New("malformed expression")
	ErrDivisionByZero      = errors.New("division by zero")
	ErrDomain              = errors.New("argument outside function domain")
	ErrUnknownFunction     = errors.New("unknown function")
)
