package calc

import (
	"fmt"
	"math"
)

func applyOperator(op byte, a, b float64) (float64, error) {
	switch op {
	case '+':
		return a + b, nil
	case '-':
		return a - b, nil
	case '*':
		return a * b, nil
	case '/':
		if b == 0 {
			return 0, fmt.Errorf("%w: %v / 0", ErrDivisionByZero, a)
		}
		return a / b, nil
	case '%':
		// integer remainder, operands truncated toward zero
		if int64(b) == 0 {
			return 0, fmt.Errorf("%w: %v %% 0", ErrDivisionByZero, a)
		}
		return float64(int64(a) % int64(b)), nil
	case '^':
		return math.Pow(a, b), nil
	}
	return 0, fmt.Errorf("%w: operator %q", ErrMalformedExpression, string(op))
}

type unaryFunc func(float64) (float64, error)

// functions is the registry of single-argument named functions. Trig
// arguments are degrees.
var functions = map[string]unaryFunc{
	"sqrt": func(a float64) (float64, error) {
		if a < 0 {
			return 0, fmt.Errorf("%w: sqrt of %v", ErrDomain, a)
		}
		return math.Sqrt(a), nil
	},
	"abs": func(a float64) (float64, error) { return math.Abs(a), nil },
	"ln": func(a float64) (float64, error) {
		if a <= 0 {
			return 0, fmt.Errorf("%w: ln of %v", ErrDomain, a)
		}
		return math.Log(a), nil
	},
	"log": func(a float64) (float64, error) {
		if a <= 0 {
			return 0, fmt.Errorf("%w: log of %v", ErrDomain, a)
		}
		return math.Log10(a), nil
	},
	"exp": func(a float64) (float64, error) { return math.Exp(a), nil },
	"fact": func(a float64) (float64, error) {
		if a < 0 || math.Floor(a) != a {
			return 0, fmt.Errorf("%w: fact of %v", ErrDomain, a)
		}
		return factorial(int(a)), nil
	},
	"sin": func(a float64) (float64, error) { return math.Sin(degreesToRadians(a)), nil },
	"cos": func(a float64) (float64, error) { return math.Cos(degreesToRadians(a)), nil },
	"tan": func(a float64) (float64, error) { return math.Tan(degreesToRadians(a)), nil },
}

func applyFunction(name string, a float64) (float64, error) {
	fn, ok := functions[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownFunction, name)
	}
	return fn(a)
}

func factorial(n int) float64 {
	result := 1.0
	for i := 2; i <= n; i++ {
		result *= float64(i)
	}
	return result
}

func degreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
