package dispatch

import (
	"regexp"

	"pushrelay/internal/domain/constants"
)

var tokenCharset = regexp.MustCompile(`^[A-Za-z0-9_:.-]+$`)

// TokenGate is the pre-dispatch plausibility check on raw token strings.
// It only rejects strings that cannot be provider tokens; the provider
// remains the authority on whether a token is live.
type TokenGate struct {
	minLength int
	strict    bool
}

// NewTokenGate returns a gate accepting strings of at least minLength
// characters. In strict mode the string must also be drawn from the
// provider token alphabet.
func NewTokenGate(minLength int, strict bool) *TokenGate {
	if minLength <= 0 {
		minLength = constants.MinTokenLength
	}

	return &TokenGate{minLength: minLength, strict: strict}
}

// Valid reports whether token passes the gate.
func (g *TokenGate) Valid(token string) bool {
	if len(token) < g.minLength {
		return false
	}
	if g.strict && !tokenCharset.MatchString(token) {
		return false
	}

	return true
}

// Screen splits tokens into the ones that pass the gate, in input order,
// and the number rejected.
func (g *TokenGate) Screen(tokens []string) (valid []string, invalid int) {
	valid = make([]string, 0, len(tokens))
	for _, t := range tokens {
		if g.Valid(t) {
			valid = append(valid, t)

			continue
		}
		invalid++
	}

	return valid, invalid
}
