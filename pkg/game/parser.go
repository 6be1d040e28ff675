package game

import (
	"strings"
)

// tokenize splits an input line on whitespace, keeping double-quoted spans as
// single tokens without their quotes: `tell "Old Man Jenkins" hi` yields
// ["tell", "Old Man Jenkins", "hi"].
func tokenize(line string) []string {
	var tokens []string
	var b strings.Builder
	inQuote := false
	flush := func() {
		if b.Len() > 0 {
			tokens = append(tokens, b.String())
			b.Reset()
		}
	}
	for _, r := range line {
		switch {
		case r == '"':
			if inQuote {
				// closing quote flushes even an empty span's boundary
				flush()
			}
			inQuote = !inQuote
		case !inQuote && (r == ' ' || r == '\t' || r == '\n' || r == '\r'):
			flush()
		default:
			b.WriteRune(r)
		}
	}
	flush()
	return tokens
}

// idPrefix marks an explicit entity-id reference in command arguments.
const idPrefix = "@id:"

// candidate is a resolvable named entity.
type candidate struct {
	id   string
	name string
}

// resolveGreedy matches the longest candidate-name prefix of tokens,
// case-insensitively, and returns the winner plus the unconsumed remainder.
// A quoted name arrives as one token and matches the whole candidate name.
// The @id:<uuid> form bypasses name matching entirely.
func resolveGreedy(tokens []string, candidates []candidate) (candidate, []string, bool) {
	if len(tokens) == 0 {
		return candidate{}, nil, false
	}

	if strings.HasPrefix(tokens[0], idPrefix) {
		id := strings.TrimPrefix(tokens[0], idPrefix)
		for _, c := range candidates {
			if c.id == id {
				return c, tokens[1:], true
			}
		}
		return candidate{}, nil, false
	}

	best := -1
	bestLen := 0
	for i, c := range candidates {
		n := matchLen(tokens, c.name)
		if n > bestLen {
			best, bestLen = i, n
		}
	}
	if best >= 0 {
		return candidates[best], tokens[bestLen:], true
	}

	// Fall back to a prefix match on the first token, so `examine sw` finds
	// the rusty sword when nothing matches exactly.
	needle := strings.ToLower(tokens[0])
	for _, c := range candidates {
		for _, word := range strings.Fields(strings.ToLower(c.name)) {
			if strings.HasPrefix(word, needle) {
				return c, tokens[1:], true
			}
		}
	}
	return candidate{}, nil, false
}

// matchLen returns how many leading tokens the candidate name consumes, or 0
// when it does not match. A single token equal to the full name (the quoted
// form) counts as one.
func matchLen(tokens []string, name string) int {
	lower := strings.ToLower(name)
	if strings.EqualFold(tokens[0], name) && strings.ContainsRune(lower, ' ') {
		return 1
	}
	words := strings.Fields(lower)
	if len(words) == 0 || len(words) > len(tokens) {
		return 0
	}
	for i, w := range words {
		if strings.ToLower(tokens[i]) != w {
			return 0
		}
	}
	return len(words)
}
