package usecase

import (
	"regexp"
	"strings"

	"github.com/aromax/storefront/internal/domain"
)

var punctuationRegex = regexp.MustCompile(`[^\w\s]`)

// Fuzzy matching only kicks in for words this long, short words produce too many false positives
const minFuzzyTokenLength = 4

// queryVocabulary holds words the parser understands on its own
var queryVocabulary = []string{"under", "over", "day", "daytime", "evening", "night"}

// SpellingSuggester proposes a corrected query when a search comes back empty.
// Corrections are drawn from the words of the catalog itself.
type SpellingSuggester struct{}

// NewSpellingSuggester creates a new spelling suggester
func NewSpellingSuggester() *SpellingSuggester {
	return &SpellingSuggester{}
}

// Suggest returns query with each unknown word replaced by the closest
// catalog word, or "" when nothing would change.
func (s *SpellingSuggester) Suggest(query string, catalog *domain.Catalog) string {
	if catalog == nil || catalog.Len() == 0 {
		return ""
	}

	words, known := catalogVocabulary(catalog)
	fields := strings.Fields(strings.ToLower(query))
	changed := false

	for i, field := range fields {
		token := punctuationRegex.ReplaceAllString(field, "")
		if len(token) < minFuzzyTokenLength || isNumeric(token) || known[token] {
			continue
		}
		if best, ok := closestToken(token, words); ok {
			fields[i] = best
			changed = true
		}
	}

	if !changed {
		return ""
	}
	return strings.Join(fields, " ")
}

// catalogVocabulary collects name, profile and note words in catalog order.
// The set also includes parser keywords so they are never "corrected".
func catalogVocabulary(catalog *domain.Catalog) ([]string, map[string]bool) {
	known := make(map[string]bool)
	for _, w := range queryVocabulary {
		known[w] = true
	}
	for w := range keywordStopWords {
		known[w] = true
	}

	var words []string
	add := func(text string) {
		for _, token := range tokenize(text) {
			if !known[token] {
				known[token] = true
				words = append(words, token)
			}
		}
	}

	catalog.Each(func(p *domain.Product) bool {
		add(p.Name)
		add(p.ScentProfile)
		for _, note := range p.Notes {
			add(note)
		}
		return true
	})
	return words, known
}

// tokenize lowercases s, strips punctuation and drops numbers
func tokenize(s string) []string {
	cleaned := punctuationRegex.ReplaceAllString(strings.ToLower(s), " ")

	var tokens []string
	for _, token := range strings.Fields(cleaned) {
		if isNumeric(token) {
			continue
		}
		tokens = append(tokens, token)
	}
	return tokens
}

// closestToken picks the vocabulary word with the smallest edit distance.
// Ties go to the word seen first.
func closestToken(token string, vocabulary []string) (string, bool) {
	threshold := editThreshold(token)
	best, bestDistance := "", threshold+1

	for _, candidate := range vocabulary {
		if !fuzzyTokenMatch(token, candidate, threshold) {
			continue
		}
		if d := levenshteinDistance(token, candidate); d < bestDistance {
			best, bestDistance = candidate, d
		}
	}
	return best, best != ""
}

func editThreshold(token string) int {
	if len(token) <= 5 {
		return 1
	}
	return 2
}

func isNumeric(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return len(s) > 0
}

// fuzzyTokenMatch checks if two tokens are similar within the edit distance threshold
func fuzzyTokenMatch(token1, token2 string, threshold int) bool {
	if token1 == token2 {
		return true
	}
	if len(token1) < minFuzzyTokenLength || len(token2) < minFuzzyTokenLength {
		return false
	}

	lenDiff := len(token1) - len(token2)
	if lenDiff < 0 {
		lenDiff = -lenDiff
	}
	if lenDiff > threshold {
		return false
	}

	return levenshteinDistance(token1, token2) <= threshold
}

// levenshteinDistance calculates the edit distance between two strings
func levenshteinDistance(s1, s2 string) int {
	if len(s1) == 0 {
		return len(s2)
	}
	if len(s2) == 0 {
		return len(s1)
	}

	r1 := []rune(s1)
	r2 := []rune(s2)
	m := len(r1)
	n := len(r2)

	// two rows instead of the full matrix
	prev := make([]int, n+1)
	curr := make([]int, n+1)
	for j := 0; j <= n; j++ {
		prev[j] = j
	}

	for i := 1; i <= m; i++ {
		curr[0] = i
		for j := 1; j <= n; j++ {
			cost := 0
			if r1[i-1] != r2[j-1] {
				cost = 1
			}
			curr[j] = min(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}

	return prev[n]
}
