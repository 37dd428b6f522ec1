package usecase

import (
	"testing"

	"github.com/aromax/storefront/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestSpellingSuggester_Suggest(t *testing.T) {
	speller := NewSpellingSuggester()
	catalog := fixtureCatalog()

	testCases := []struct {
		name  string
		query string
		want  string
	}{
		{"single misspelled note", "lavendar", "lavender"},
		{"missing letter", "vanila", "vanilla"},
		{"short word uses tighter threshold", "evening flral", "evening floral"},
		{"name word", "ceder mist", "cedar mist"},
		{"case is folded", "JASMIN", "jasmine"},
		{"known words are left alone", "amber nights", ""},
		{"parser words are left alone", "evening under $80", ""},
		{"only close to a short word", "oudd", ""},
		{"nothing close enough", "xyzzyq", ""},
		{"blank query", "   ", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, speller.Suggest(tc.query, catalog))
		})
	}
}

func TestSpellingSuggester_EmptyCatalog(t *testing.T) {
	speller := NewSpellingSuggester()
	assert.Empty(t, speller.Suggest("lavendar", nil))
	assert.Empty(t, speller.Suggest("lavendar", domain.EmptyCatalog()))
}

func TestTokenize(t *testing.T) {
	testCases := []struct {
		input string
		want  []string
	}{
		{"Floral & Woody", []string{"floral", "woody"}},
		{"Sea Salt", []string{"sea", "salt"}},
		{"No. 5 Classic", []string{"no", "classic"}},
		{"", nil},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.want, tokenize(tc.input))
		})
	}
}

func TestIsNumeric(t *testing.T) {
	testCases := []struct {
		input string
		want  bool
	}{
		{"80", true},
		{"0", true},
		{"", false},
		{"8a", false},
		{"$80", false},
	}

	for _, tc := range testCases {
		if got := isNumeric(tc.input); got != tc.want {
			t.Errorf("isNumeric(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestLevenshteinDistance(t *testing.T) {
	testCases := []struct {
		s1   string
		s2   string
		want int
	}{
		{"", "", 0},
		{"a", "", 1},
		{"", "a", 1},
		{"rose", "rose", 0},
		{"rose", "rise", 1},      // substitution
		{"rose", "roses", 1},     // insertion
		{"musk", "mus", 1},       // deletion
		{"kitten", "sitting", 3}, // classic example
		{"amber", "ambre", 2},    // transposition (2 edits)
		{"vanilla", "vanila", 1}, // missing letter
	}

	for _, tc := range testCases {
		t.Run(tc.s1+"_"+tc.s2, func(t *testing.T) {
			got := levenshteinDistance(tc.s1, tc.s2)
			if got != tc.want {
				t.Errorf("levenshteinDistance(%q, %q) = %v, want %v", tc.s1, tc.s2, got, tc.want)
			}
		})
	}
}

func TestFuzzyTokenMatch(t *testing.T) {
	testCases := []struct {
		token1    string
		token2    string
		threshold int
		want      bool
	}{
		{"musk", "musk", 1, true},          // identical
		{"oud", "odu", 1, false},           // short token, fuzzy disabled
		{"vanilla", "vanila", 1, true},     // edit distance 1
		{"cedarwood", "cedrwod", 1, false}, // edit distance 2
		{"cedarwood", "cedrwod", 2, true},  // within threshold 2
		{"lavender", "lav", 2, false},      // length gap too large
	}

	for _, tc := range testCases {
		t.Run(tc.token1+"_"+tc.token2, func(t *testing.T) {
			got := fuzzyTokenMatch(tc.token1, tc.token2, tc.threshold)
			if got != tc.want {
				t.Errorf("fuzzyTokenMatch(%q, %q, %d) = %v, want %v",
					tc.token1, tc.token2, tc.threshold, got, tc.want)
			}
		})
	}
}
