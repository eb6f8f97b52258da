package calc

type tokenReader interface {
	Next() (tok token, done bool, err error)
	Peek() (tok token, done bool, err error)
}

// sliceReader serves an already-materialized token sequence.
type sliceReader struct {
	tokens []token
	pos    int
}

func (r *sliceReader) Next() (token, bool, error) {
	if r.pos >= len(r.tokens) {
		return token{}, true, nil
	}
	tok := r.tokens[r.pos]
	r.pos++
	return tok, false, nil
}

func (r *sliceReader) Peek() (token, bool, error) {
	if r.pos >= len(r.tokens) {
		return token{}, true, nil
	}
	return r.tokens[r.pos], false, nil
}
