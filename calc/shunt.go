package calc

import "fmt"

func precedence(op byte) int {
	switch op {
	case '+', '-':
		return 1
	case '*', '/', '%':
		return 2
	case '^':
		return 3
	}
	return 0
}

func isRightAssociative(op byte) bool {
	return op == '^'
}

// toPostfix reorders an infix token stream into postfix order with the
// shunting-yard algorithm. Functions are never compared by precedence: they
// sit on the stack until their argument region resolves at the matching
// right parenthesis, and an incoming operator always pops them first.
func toPostfix(r tokenReader) ([]token, error) {
	output := []token{}
	stack := []token{}

	for {
		tok, done, err := r.Next()
		if err != nil {
			return nil, err
		}
		if done {
			break
		}

		switch tok.tokType {
		case tokenTypeNumber:
			output = append(output, tok)

		case tokenTypeFunction:
			stack = append(stack, tok)

		case tokenTypeOperator:
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				shouldPop := top.tokType == tokenTypeFunction ||
					(top.tokType == tokenTypeOperator &&
						(precedence(top.op) > precedence(tok.op) ||
							(precedence(top.op) == precedence(tok.op) && !isRightAssociative(tok.op))))
				if !shouldPop {
					break
				}
				output = append(output, top)
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, tok)

		case tokenTypeLParen:
			stack = append(stack, tok)

		case tokenTypeRParen:
			matched := false
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if top.tokType == tokenTypeLParen {
					matched = true
					break
				}
				output = append(output, top)
			}
			if !matched {
				return nil, fmt.Errorf("%w: unexpected ')'", ErrMismatchedParen)
			}
			// a function directly before the '(' owns the region we just
			// closed, so it resolves now
			if len(stack) > 0 && stack[len(stack)-1].tokType == tokenTypeFunction {
				output = append(output, stack[len(stack)-1])
				stack = stack[:len(stack)-1]
			}
		}
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.tokType == tokenTypeLParen {
			return nil, fmt.Errorf("%w: unclosed '('", ErrMismatchedParen)
		}
		output = append(output, top)
	}

	return output, nil
}
