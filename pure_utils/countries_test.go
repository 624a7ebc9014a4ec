package pure_utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountryToAlpha2_exactMatches(t *testing.T) {
	assert.Equal(t, "RU", CountryToAlpha2("RU"))
	assert.Equal(t, "RU", CountryToAlpha2("RUS"))
	assert.Equal(t, "RU", CountryToAlpha2("Russia"))
	assert.Equal(t, "FR", CountryToAlpha2("France"))
	assert.Equal(t, "FR", CountryToAlpha2(" France "))
}

func TestCountryToAlpha2_fuzzyMatches(t *testing.T) {
	assert.Equal(t, "RU", CountryToAlpha2("Russsia"))
	assert.Equal(t, "FR", CountryToAlpha2("Frnace"))
}

func TestCountryToAlpha2_unidentified(t *testing.T) {
	assert.Equal(t, "", CountryToAlpha2(""))
	assert.Equal(t, "Atlantis III", CountryToAlpha2("Atlantis III"))
}

func TestCountryToAlpha2_cachedFuzzyMatch(t *testing.T) {
	// second call is served by the cache and must agree with the first
	assert.Equal(t, CountryToAlpha2("Russsia"), CountryToAlpha2("Russsia"))
}
