// Package encodedset stores a set of small string tokens as a single
// semicolon-joined, lexicographically sorted string, so multi-valued
// attributes (roles, author ids, tag ids) fit in one text column
// without a join table. The empty string is the empty set.
//
// Tokens must not contain the ';' delimiter; callers are expected to
// pass identifiers, not free text.
package encodedset

import (
	"sort"
	"strings"
)

const delimiter = ";"

// Decode splits an encoded set into its member tokens. A string with
// no delimiter decodes to a single-member slice; the empty string
// decodes to nil.
func Decode(encoded string) []string {
	if encoded == "" {
		return nil
	}
	return strings.Split(strings.TrimSpace(encoded), delimiter)
}

// Encode joins tokens into the canonical sorted representation.
func Encode(tokens []string) string {
	sorted := make([]string, len(tokens))
	copy(sorted, tokens)
	sort.Strings(sorted)
	return strings.Join(sorted, delimiter)
}

// Add returns the encoded set with token inserted. Adding a token
// that is already present returns the input unchanged.
func Add(encoded, token string) string {
	if encoded == "" {
		return token
	}
	tokens := Decode(encoded)
	for _, t := range tokens {
		if t == token {
			return encoded
		}
	}
	return Encode(append(tokens, token))
}

// Remove returns the encoded set with token removed. Removing an
// absent token returns the input unchanged.
func Remove(encoded, token string) string {
	if encoded == "" {
		return encoded
	}
	tokens := Decode(encoded)
	kept := tokens[:0]
	for _, t := range tokens {
		if t != token {
			kept = append(kept, t)
		}
	}
	if len(kept) == len(tokens) {
		return encoded
	}
	return Encode(kept)
}

// Contains reports whether token is a member of the encoded set.
func Contains(encoded, token string) bool {
	for _, t := range Decode(encoded) {
		if t == token {
			return true
		}
	}
	return false
}

// Intersects reports whether the encoded set and candidates share at
// least one member.
func Intersects(encoded string, candidates ...string) bool {
	if encoded == "" {
		return false
	}
	members := Decode(encoded)
	for _, c := range candidates {
		for _, m := range members {
			if m == c {
				return true
			}
		}
	}
	return false
}
