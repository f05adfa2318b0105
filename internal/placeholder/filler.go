// Package placeholder substitutes marker-prefixed tokens in plain-text
// templates.
package placeholder

import (
	"math/rand/v2"
	"strings"
	"unicode"

	"github.com/aliskhannn/happy-hour-mailer/internal/settings"
)

const (
	DefaultMarker   = "$"
	DefaultFallback = "DERP"
)

// Resolver looks up the value of a single token.
type Resolver func(token string) (settings.Value, bool)

// Filler replaces tokens in a template.
type Filler struct {
	Marker   string
	Fallback string
	// TrimPunctuation strips trailing punctuation from extracted tokens so
	// that "$time." resolves as "time". Off by default.
	TrimPunctuation bool

	rng *rand.Rand
}

// NewFiller creates a Filler with the default marker and fallback.
func NewFiller(rng *rand.Rand) *Filler {
	return &Filler{
		Marker:   DefaultMarker,
		Fallback: DefaultFallback,
		rng:      rng,
	}
}

// Tokens returns the distinct tokens found in text, in order of first
// appearance. A token is any whitespace-delimited word starting with the
// marker, minus the marker itself.
func (f *Filler) Tokens(text string) []string {
	seen := make(map[string]struct{})
	var tokens []string

	for _, word := range strings.Fields(text) {
		if !strings.HasPrefix(word, f.Marker) {
			continue
		}

		token := word[len(f.Marker):]
		if f.TrimPunctuation {
			token = strings.TrimRightFunc(token, unicode.IsPunct)
		}
		if token == "" {
			continue
		}

		if _, ok := seen[token]; ok {
			continue
		}
		seen[token] = struct{}{}
		tokens = append(tokens, token)
	}

	return tokens
}

// Fill replaces every token in text with the value produced by the first
// resolver that knows it, or with the fallback. A list value contributes one
// randomly chosen element, shared by all occurrences of that token.
// Replacements are not scanned again.
func (f *Filler) Fill(text string, resolvers ...Resolver) string {
	for _, token := range f.Tokens(text) {
		text = strings.ReplaceAll(text, f.Marker+token, f.resolve(token, resolvers))
	}
	return text
}

func (f *Filler) resolve(token string, resolvers []Resolver) string {
	for _, r := range resolvers {
		v, ok := r(token)
		if !ok {
			continue
		}

		switch v.Kind() {
		case settings.KindScalar:
			return v.String()
		case settings.KindList:
			items := v.Items()
			if len(items) == 0 {
				continue
			}
			return items[f.rng.IntN(len(items))]
		}
	}

	return f.Fallback
}

// MapResolver resolves tokens from a flat string map.
func MapResolver(m map[string]string) Resolver {
	return func(token string) (settings.Value, bool) {
		s, ok := m[token]
		if !ok {
			return settings.Value{}, false
		}
		return settings.Scalar(s), true
	}
}

// ValueResolver resolves tokens from the top level of a settings mapping.
func ValueResolver(v settings.Value) Resolver {
	return v.Lookup
}

// NestedResolver resolves tokens from the mapping stored under key.
func NestedResolver(v settings.Value, key string) Resolver {
	nested, _ := v.Lookup(key)
	return nested.Lookup
}
