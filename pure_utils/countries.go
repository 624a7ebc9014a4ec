package pure_utils

import (
	"strings"
	"sync"
	"time"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
	"github.com/biter777/countries"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	countryFuzzyMatchThreshold = 0.85
	countryCacheSize           = 1000
	countryCacheTTL            = time.Hour
)

var (
	// countryCache caches fuzzy match results to avoid repeated computation
	countryCache     *expirable.LRU[string, string]
	countryCacheOnce sync.Once

	countryNames     []countryNameEntry
	countryNamesOnce sync.Once
)

type countryNameEntry struct {
	lowerName string
	country   countries.CountryCode
}

func getCountryCache() *expirable.LRU[string, string] {
	countryCacheOnce.Do(func() {
		countryCache = expirable.NewLRU[string, string](countryCacheSize, nil, countryCacheTTL)
	})
	return countryCache
}

func getCountryNames() []countryNameEntry {
	countryNamesOnce.Do(func() {
		all := countries.All()
		countryNames = make([]countryNameEntry, 0, len(all))
		for _, c := range all {
			if c == countries.Unknown {
				continue
			}
			countryNames = append(countryNames, countryNameEntry{
				lowerName: strings.ToLower(c.Info().Name),
				country:   c,
			})
		}
	})
	return countryNames
}

// CountryToAlpha2 converts a country identifier (full name, Alpha-2, or
// Alpha-3 code) to its ISO 3166-1 Alpha-2 code, falling back to fuzzy matching
// for misspellings. Customer nationality arrives free-form from uploads and
// extraction output, so "Russia", "RUS" and "RU" must all normalize to "RU"
// before the jurisdiction check.
//
// Returns the initial input if the country cannot be identified.
func CountryToAlpha2(input string) string {
	input = strings.TrimSpace(input)
	if input == "" {
		return ""
	}

	// Fast path: exact match (handles Alpha-2, Alpha-3, and standard English names)
	if c := countries.ByName(input); c != countries.Unknown {
		return c.Alpha2()
	}

	cache := getCountryCache()
	if cached, ok := cache.Get(input); ok {
		return cached
	}

	result := fuzzyMatchCountry(input)
	if result == "" {
		result = input
	}

	cache.Add(input, result)

	return result
}

// fuzzyMatchCountry matches the input against all country names with
// Jaro-Winkler, which behaves well on short strings.
func fuzzyMatchCountry(input string) string {
	inputLower := strings.ToLower(input)
	metric := metrics.NewJaroWinkler()

	bestScore := 0.0
	best := countries.Unknown
	for _, entry := range getCountryNames() {
		score := strutil.Similarity(inputLower, entry.lowerName, metric)
		if score > bestScore {
			bestScore = score
			best = entry.country
		}
	}

	if bestScore < countryFuzzyMatchThreshold || best == countries.Unknown {
		return ""
	}
	return best.Alpha2()
}
