package ingredient

import (
	"errors"
	"strings"
)

// Domain errors for ingredient identity
var (
	ErrEmptyName = errors.New("ingredient name is required")
)

// Reference is a name-based identity for something edible. NormalizedName
// and SearchTerms are pure functions of Name and Aliases; they are only ever
// produced through NewReference or Rename so the derived fields can never
// drift from the display name.
type Reference struct {
	name           string
	normalizedName string
	aliases        []string
	searchTerms    map[string]struct{}
}

// NewReference creates an ingredient reference, computing the derived
// matching key and search-term set.
func NewReference(name string, aliases ...string) (Reference, error) {
	if Normalize(name) == "" {
		return Reference{}, ErrEmptyName
	}

	return Reference{
		name:           name,
		normalizedName: Normalize(name),
		aliases:        append([]string(nil), aliases...),
		searchTerms:    SearchTerms(name, aliases),
	}, nil
}

// Name returns the display name.
func (r Reference) Name() string {
	return r.name
}

// NormalizedName returns the canonical matching key.
func (r Reference) NormalizedName() string {
	return r.normalizedName
}

// Aliases returns the alternate names mapped to this identity.
func (r Reference) Aliases() []string {
	return append([]string(nil), r.aliases...)
}

// SearchTerms returns a copy of the derived search-term set.
func (r Reference) SearchTerms() map[string]struct{} {
	terms := make(map[string]struct{}, len(r.searchTerms))
	for term := range r.searchTerms {
		terms[term] = struct{}{}
	}
	return terms
}

// MatchesTerm reports whether the given query matches one of the reference's
// search terms by substring containment.
func (r Reference) MatchesTerm(query string) bool {
	normalized := Normalize(query)
	if normalized == "" {
		return false
	}
	for term := range r.searchTerms {
		if strings.Contains(term, normalized) || strings.Contains(normalized, term) {
			return true
		}
	}
	return false
}

// Rename returns a new Reference with recomputed derived fields.
func (r Reference) Rename(name string) (Reference, error) {
	return NewReference(name, r.aliases...)
}
