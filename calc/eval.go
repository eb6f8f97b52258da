// Package calc evaluates infix arithmetic expressions: a lexer feeds typed
// tokens through a buffer into a shunting-yard converter, and a stack
// machine reduces the resulting postfix sequence to a float64.
package calc

import "fmt"

// Evaluate computes the value of expr. lastResult is substituted wherever
// the expression says "Ans"; the function never mutates it. Evaluate is
// pure: identical inputs always produce identical results.
func Evaluate(expr string, lastResult float64) (float64, error) {
	buffer := newTokenBuffer()
	var lexErr error

	go (func() {
		lexErr = lex(expr, lastResult, buffer.Write)
		buffer.Done()
	})()

	postfix, err := toPostfix(buffer)
	if err == nil {
		err = lexErr
	}
	if err != nil {
		return 0, err
	}

	return evalPostfix(postfix)
}

// evalPostfix reduces a postfix token sequence with a value stack. Exactly
// one value must remain at the end.
func evalPostfix(postfix []token) (float64, error) {
	stack := []float64{}

	for _, tok := range postfix {
		switch tok.tokType {
		case tokenTypeNumber:
			stack = append(stack, tok.value)

		case tokenTypeOperator:
			if len(stack) < 2 {
				return 0, fmt.Errorf("%w: operator %q needs two operands", ErrStackUnderflow, string(tok.op))
			}
			b := stack[len(stack)-1]
			a := stack[len(stack)-2]
			stack = stack[:len(stack)-2]
			result, err := applyOperator(tok.op, a, b)
			if err != nil {
				return 0, err
			}
			stack = append(stack, result)

		case tokenTypeFunction:
			if len(stack) < 1 {
				return 0, fmt.Errorf("%w: function %q needs an argument", ErrStackUnderflow, tok.name)
			}
			a := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			result, err := applyFunction(tok.name, a)
			if err != nil {
				return 0, err
			}
			stack = append(stack, result)

		default:
			return 0, fmt.Errorf("%w: parenthesis in postfix sequence", ErrMalformedExpression)
		}
	}

	if len(stack) != 1 {
		return 0, fmt.Errorf("%w: %d values left after evaluation", ErrMalformedExpression, len(stack))
	}
	return stack[0], nil
}
