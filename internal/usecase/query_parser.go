package usecase

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/aromax/storefront/internal/domain"
	"github.com/rs/zerolog"
)

// Compiled regex patterns for query parsing
var (
	// "under $80", "under80"
	priceUnderPattern = regexp.MustCompile(`under\s*\$?(\d+)`)

	// "over $85"
	priceOverPattern = regexp.MustCompile(`over\s*\$?(\d+)`)

	// "$70-$90", "70 - 90"
	priceRangePattern = regexp.MustCompile(`\$?(\d+)\s*-\s*\$?(\d+)`)

	// Stripped before keyword extraction. "day" is tried first, so "daytime" leaves "time".
	priceUnderStrip = regexp.MustCompile(`under\s*\$?\d+`)
	priceOverStrip  = regexp.MustCompile(`over\s*\$?\d+`)
	priceRangeStrip = regexp.MustCompile(`\$?\d+\s*-\s*\$?\d+`)
	seasonStrip     = regexp.MustCompile(`day|evening|night|daytime`)
)

// scentProfileTags is the fixed profile vocabulary recognized in queries
var scentProfileTags = []string{
	"Floral",
	"Citrus",
	"Fresh",
	"Woody",
	"Amber",
	"Warm",
	"Spicy",
	"Oriental",
	"Aquatic",
	"Fruity",
	"Herbal",
	"Romantic",
}

// keywordStopWords are dropped from residual keywords
var keywordStopWords = map[string]bool{
	"and":  true,
	"the":  true,
	"for":  true,
	"with": true,
}

// minKeywordLength is exclusive: a keyword must be longer than this
const minKeywordLength = 2

// QueryParser turns free-text queries into structured filters
type QueryParser struct {
	logger             zerolog.Logger
	enableDebugLogging bool
}

// NewQueryParser creates a new query parser
func NewQueryParser(logger zerolog.Logger, enableDebugLogging bool) *QueryParser {
	return &QueryParser{
		logger:             logger,
		enableDebugLogging: enableDebugLogging,
	}
}

// ParseQuery builds a ParsedFilter from query.
// The catalog only contributes its note vocabulary; nothing is modified.
// Rules run in a fixed order and never fail: a pattern that does not match
// leaves its field unset.
func (p *QueryParser) ParseQuery(query string, catalog *domain.Catalog) domain.ParsedFilter {
	lowerQuery := strings.ToLower(query)
	filter := domain.ParsedFilter{
		ScentProfiles: []string{},
		Notes:         []string{},
		Keywords:      []string{},
	}

	// Steps 1-3: price bounds. The range rule overwrites under/over.
	if m := priceUnderPattern.FindStringSubmatch(lowerQuery); m != nil {
		filter.PriceMax = parseBound(m[1])
	}
	if m := priceOverPattern.FindStringSubmatch(lowerQuery); m != nil {
		filter.PriceMin = parseBound(m[1])
	}
	if m := priceRangePattern.FindStringSubmatch(lowerQuery); m != nil {
		filter.PriceMin = parseBound(m[1])
		filter.PriceMax = parseBound(m[2])
	}

	// Step 4: season. Day wins when both are present.
	filter.Season = parseSeason(lowerQuery)

	// Step 5: scent profile tags
	for _, tag := range scentProfileTags {
		if strings.Contains(lowerQuery, strings.ToLower(tag)) {
			filter.ScentProfiles = append(filter.ScentProfiles, tag)
		}
	}

	// Step 6: notes known to the catalog
	if catalog != nil {
		for _, note := range catalog.Notes() {
			if strings.Contains(lowerQuery, strings.ToLower(note)) {
				filter.Notes = append(filter.Notes, note)
			}
		}
	}

	// Step 7: residual keywords
	filter.Keywords = extractKeywords(lowerQuery)

	if p.enableDebugLogging {
		p.logger.Debug().
			Str("query", query).
			Interface("filter", filter).
			Msg("parsed query")
	}

	return filter
}

// parseSeason maps season words in an already lowercased query
func parseSeason(lowerQuery string) domain.Season {
	if strings.Contains(lowerQuery, "day") || strings.Contains(lowerQuery, "daytime") {
		return domain.SeasonDay
	}
	if strings.Contains(lowerQuery, "evening") || strings.Contains(lowerQuery, "night") {
		return domain.SeasonEvening
	}
	return ""
}

// extractKeywords strips price and season text and returns the remaining words
func extractKeywords(lowerQuery string) []string {
	cleaned := priceUnderStrip.ReplaceAllString(lowerQuery, "")
	cleaned = priceOverStrip.ReplaceAllString(cleaned, "")
	cleaned = priceRangeStrip.ReplaceAllString(cleaned, "")
	cleaned = seasonStrip.ReplaceAllString(cleaned, "")

	keywords := []string{}
	for _, word := range strings.Fields(cleaned) {
		if len(word) <= minKeywordLength || keywordStopWords[word] {
			continue
		}
		keywords = append(keywords, word)
	}
	return keywords
}

// parseBound converts a digit run to a bound; overflow saturates at math.MaxInt
func parseBound(digits string) *int {
	n, err := strconv.Atoi(digits)
	if errors.Is(err, strconv.ErrRange) {
		n = math.MaxInt
	} else if err != nil {
		return nil
	}
	return &n
}
