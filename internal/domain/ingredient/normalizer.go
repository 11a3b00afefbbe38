// Package ingredient contains the core domain logic for ingredient identity.
// Ingredient names arrive as free text (French, accented, inconsistently
// cased); every matching decision downstream keys off the normalized form
// produced here.
package ingredient

import (
	"strings"
)

// accentReplacer maps French accented characters to their ASCII equivalents.
// Input is lowercased before replacement, so only lowercase forms are listed.
var accentReplacer = strings.NewReplacer(
	"à", "a", "á", "a", "â", "a", "ã", "a", "ä", "a", "å", "a",
	"è", "e", "é", "e", "ê", "e", "ë", "e",
	"ì", "i", "í", "i", "î", "i", "ï", "i",
	"ò", "o", "ó", "o", "ô", "o", "õ", "o", "ö", "o",
	"ù", "u", "ú", "u", "û", "u", "ü", "u",
	"ç", "c",
	"ñ", "n",
	"œ", "oe",
)

// Normalize canonicalizes an ingredient name: lowercase, whitespace runs
// collapsed to a single space, leading/trailing whitespace trimmed, accents
// stripped. It is deterministic, idempotent and total over all strings.
func Normalize(name string) string {
	lowered := strings.ToLower(name)
	collapsed := strings.Join(strings.Fields(lowered), " ")
	return accentReplacer.Replace(collapsed)
}

// SearchTerms derives the set of terms used for substring and alias search:
// the normalized full name, the normalized full form of every alias, and
// every whitespace-separated token of length >= 2 from both. The result is a
// set; order carries no meaning and it is never used as a ranking signal.
func SearchTerms(name string, aliases []string) map[string]struct{} {
	terms := make(map[string]struct{})

	addForm := func(raw string) {
		normalized := Normalize(raw)
		if normalized == "" {
			return
		}
		terms[normalized] = struct{}{}
		for _, token := range strings.Fields(normalized) {
			if len(token) >= 2 {
				terms[token] = struct{}{}
			}
		}
	}

	addForm(name)
	for _, alias := range aliases {
		addForm(alias)
	}

	return terms
}

// NamesMatch reports whether two ingredient names refer to the same thing
// under the loose bidirectional substring policy: either normalized name may
// contain the other. The policy deliberately tolerates free-text recipe
// ingredients against a smaller curated pantry vocabulary; it can over-match
// on short common substrings.
func NamesMatch(a, b string) bool {
	na, nb := Normalize(a), Normalize(b)
	if na == "" || nb == "" {
		return false
	}
	return strings.Contains(na, nb) || strings.Contains(nb, na)
}
