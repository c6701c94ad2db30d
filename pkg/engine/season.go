package engine

import (
	"fmt"
	"regexp"
)

var yearPattern = regexp.MustCompile(`\b(20[0-9]{2}|19[0-9]{2})\b`)

// ExtractYear returns the first 4-digit 19xx/20xx token in the text.
// Any later years in the same utterance are ignored.
func ExtractYear(text string) (int, bool) {
	m := yearPattern.FindString(text)
	if m == "" {
		return 0, false
	}
	year := 0
	for _, c := range m {
		year = year*10 + int(c-'0')
	}
	return year, true
}

// SeasonLabel converts a calendar year to the stats backend's season
// identifier: the season ending in that year, e.g. 2022 -> "2021-22"
// and 2000 -> "1999-00". No bounds check; a season the backend has
// never heard of simply misses downstream.
func SeasonLabel(year int) string {
	return fmt.Sprintf("%d-%02d", year-1, year%100)
}
