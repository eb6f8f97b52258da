package calc

type tokenType int

const (
	tokenTypeNumber tokenType = iota
	tokenTypeOperator
	tokenTypeFunction
	tokenTypeLParen
	tokenTypeRParen
)

type token struct {
	tokType tokenType
	value   float64 // tokenTypeNumber
	op      byte    // tokenTypeOperator
	name    string  // tokenTypeFunction
	col     int
}
