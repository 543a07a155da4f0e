package extract

import (
	"math"
	"strconv"
	"strings"
)

// xpByChallengeRating is the 5e monster XP table, CR 0 through CR 30
var xpByChallengeRating = map[string]int{
	"0":   10,
	"1/8": 25,
	"1/4": 50,
	"1/2": 100,
	"1":   200,
	"2":   450,
	"3":   700,
	"4":   1100,
	"5":   1800,
	"6":   2300,
	"7":   2900,
	"8":   3900,
	"9":   5000,
	"10":  5900,
	"11":  7200,
	"12":  8400,
	"13":  10000,
	"14":  11500,
	"15":  13000,
	"16":  15000,
	"17":  18000,
	"18":  20000,
	"19":  22000,
	"20":  25000,
	"21":  33000,
	"22":  41000,
	"23":  50000,
	"24":  62000,
	"25":  75000,
	"26":  90000,
	"27":  105000,
	"28":  120000,
	"29":  135000,
	"30":  155000,
}

// decimalFractions maps decimal spellings of the fractional ratings to table keys
var decimalFractions = map[float64]string{
	0.125: "1/8",
	0.25:  "1/4",
	0.5:   "1/2",
}

// normalizeChallengeRating strips whitespace (" 1 / 4 " becomes "1/4") and rewrites
// decimals that name a table rating ("0.25", "2.0"). Other decimals such as "1.5"
// are kept as written and so miss the table.
func normalizeChallengeRating(cr string) string {
	cr = strings.ReplaceAll(strings.TrimSpace(cr), " ", "")
	if !strings.Contains(cr, ".") || strings.Contains(cr, "/") {
		return cr
	}

	value, err := strconv.ParseFloat(cr, 64)
	if err != nil {
		return cr
	}
	if fraction, ok := decimalFractions[value]; ok {
		return fraction
	}
	if value == math.Trunc(value) && value >= 0 && value <= 30 {
		return strconv.Itoa(int(value))
	}
	return cr
}

// XPForChallengeRating returns the canonical XP for a challenge rating string.
// The second value is false when the rating is not in the table.
func XPForChallengeRating(cr string) (int, bool) {
	xp, ok := xpByChallengeRating[normalizeChallengeRating(cr)]
	return xp, ok
}

// ParseChallengeRating evaluates a rating such as "5" or "1/4" to its numeric value.
// Anything unparsable, including a zero denominator, evaluates to 0.
func ParseChallengeRating(cr string) float64 {
	cr = normalizeChallengeRating(cr)
	if cr == "" {
		return 0
	}

	num, den, isFraction := strings.Cut(cr, "/")
	if !isFraction {
		value, err := strconv.ParseFloat(cr, 64)
		if err != nil || value < 0 || math.IsInf(value, 0) || math.IsNaN(value) {
			return 0
		}
		return value
	}

	n, err := strconv.Atoi(num)
	if err != nil || n < 0 {
		return 0
	}
	d, err := strconv.Atoi(den)
	if err != nil || d <= 0 {
		return 0
	}

	return float64(n) / float64(d)
}
