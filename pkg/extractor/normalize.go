package extractor

import (
	"strconv"
	"strings"
	"time"
)

// ParseCurrency converts a Brazilian-formatted amount ("R$ 1.234.567,89")
// to its decimal value. Returns false when the span does not parse.
func ParseCurrency(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "R$")
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")
	value, err := strconv.ParseFloat(s, 64)
	if err != nil || value < 0 {
		return 0, false
	}
	return value, true
}

// ParsePercent converts "50,5 %" or "50.5%" to 50.5
func ParsePercent(raw string) (float64, bool) {
	s := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(raw), "%"))
	s = strings.ReplaceAll(s, ",", ".")
	value, err := strconv.ParseFloat(s, 64)
	if err != nil || value < 0 {
		return 0, false
	}
	return value, true
}

// FormatAmount renders a decimal with two places, the canonical entity value
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// ParseNumericDate normalizes a d/m/y (por) or m/d/y (eng) numeric date to
// ISO form. Impossible calendar dates return false and are dropped by the
// caller rather than surfaced as errors.
func ParseNumericDate(first, second, year, lang string) (string, bool) {
	a, err1 := strconv.Atoi(first)
	b, err2 := strconv.Atoi(second)
	y, err3 := strconv.Atoi(year)
	if err1 != nil || err2 != nil || err3 != nil {
		return "", false
	}

	day, month := a, b
	if lang == "eng" {
		day, month = b, a
	}
	// Disambiguate when the preferred reading is impossible but the
	// swapped one is not (e.g. 25/12 under an eng hint).
	if month > 12 && day <= 12 {
		day, month = month, day
	}
	return isoDate(y, month, day)
}

var monthNumbers = map[string]int{
	"janeiro": 1, "fevereiro": 2, "março": 3, "abril": 4,
	"maio": 5, "junho": 6, "julho": 7, "agosto": 8,
	"setembro": 9, "outubro": 10, "novembro": 11, "dezembro": 12,
}

// ParseWrittenDate normalizes "15 de março de 2025" to ISO form
func ParseWrittenDate(day, month, year string) (string, bool) {
	d, err1 := strconv.Atoi(day)
	y, err2 := strconv.Atoi(year)
	m, ok := monthNumbers[strings.ToLower(month)]
	if err1 != nil || err2 != nil || !ok {
		return "", false
	}
	return isoDate(y, m, d)
}

// isoDate validates the calendar date and renders it as YYYY-MM-DD.
// time.Date normalizes overflow (Feb 31 becomes Mar 3), so the components
// are checked against the round trip to reject impossible dates.
func isoDate(year, month, day int) (string, bool) {
	if year < 1900 || year > 2200 || month < 1 || month > 12 || day < 1 || day > 31 {
		return "", false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return "", false
	}
	return t.Format("2006-01-02"), true
}
