package usecase

import (
	"math"
	"strconv"
	"strings"
)

// Unit conversion always starts from the canonical gram value. Chaining
// mg→mcg conversions would accumulate floating error across round trips, so
// no such helpers exist.

// GramsToMilligrams converts grams to milligrams.
func GramsToMilligrams(g float64) float64 { return g * 1000 }

// GramsToMicrograms converts grams to micrograms.
func GramsToMicrograms(g float64) float64 { return g * 1e6 }

// MilligramsToGrams converts milligrams to grams.
func MilligramsToGrams(mg float64) float64 { return mg / 1000 }

// MicrogramsToGrams converts micrograms to grams.
func MicrogramsToGrams(mcg float64) float64 { return mcg / 1e6 }

// FormatAmount renders a display value: whole numbers without decimals,
// anything else with exactly two.
func FormatAmount(v float64) string {
	if v == math.Trunc(v) {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// ParseLocalizedDecimal parses decimal text using the locale's separator.
// On failure it retries with the alternate comma/period separator, then with
// comma substituted by period as a plain decimal. Returns nil when nothing
// parses; malformed optional input is not an error.
func ParseLocalizedDecimal(text, separator string) *float64 {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	if separator == "" {
		separator = "."
	}

	if v, err := parseWithSeparator(text, separator); err == nil {
		return &v
	}
	alternate := ","
	if separator == "," {
		alternate = "."
	}
	if v, err := parseWithSeparator(text, alternate); err == nil {
		return &v
	}
	if v, err := strconv.ParseFloat(strings.ReplaceAll(text, ",", "."), 64); err == nil {
		return &v
	}
	return nil
}

func parseWithSeparator(text, separator string) (float64, error) {
	if separator != "." {
		text = strings.ReplaceAll(text, separator, ".")
	}
	return strconv.ParseFloat(text, 64)
}

// SanitizeDecimalInput normalizes raw keystroke input for a decimal field:
// strips everything outside digits and the locale separator, keeps only the
// first separator occurrence, caps fractional digits and collapses a leading
// run of redundant zeros ("00…" becomes "0…", "0.5" is untouched).
func SanitizeDecimalInput(text, separator string, maxFractionDigits int) string {
	if separator == "" {
		separator = "."
	}
	sep := rune(separator[0])

	var b strings.Builder
	seenSep := false
	for _, r := range text {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == sep && !seenSep:
			b.WriteRune(r)
			seenSep = true
		}
	}
	out := b.String()

	if seenSep && maxFractionDigits >= 0 {
		if idx := strings.IndexRune(out, sep); idx >= 0 {
			frac := out[idx+1:]
			if len(frac) > maxFractionDigits {
				frac = frac[:maxFractionDigits]
			}
			out = out[:idx+1] + frac
		}
	}

	for len(out) > 1 && out[0] == '0' && rune(out[1]) != sep {
		out = out[1:]
	}
	return out
}

// SanitizeIntegerInput strips everything except digits. Leading zeros are
// preserved; zero collapsing is a decimal-input behavior only.
func SanitizeIntegerInput(text string) string {
	var b strings.Builder
	for _, r := range text {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
