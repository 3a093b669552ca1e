package editor

import "github.com/google/uuid"

// Token identifies a proposed mutation awaiting confirmation. The mutation
// runs on Confirm, at most once; Cancel discards it and the prior state
// stands. A declined confirmation is a no-op, not an error.
type Token string

// gate holds proposed mutations keyed by token.
type gate struct {
	pending map[Token]func()
}

func newGate() *gate {
	return &gate{pending: make(map[Token]func())}
}

// propose registers apply under a fresh token.
func (g *gate) propose(apply func()) Token {
	tok := Token(uuid.New().String())
	g.pending[tok] = apply
	return tok
}

// confirm runs and consumes the mutation behind tok. Returns false for an
// unknown or already-consumed token.
func (g *gate) confirm(tok Token) bool {
	apply, ok := g.pending[tok]
	if !ok {
		return false
	}
	delete(g.pending, tok)
	apply()
	return true
}

// cancel discards the mutation behind tok without running it.
func (g *gate) cancel(tok Token) {
	delete(g.pending, tok)
}
