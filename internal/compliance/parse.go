// File path: internal/compliance/parse.go
package compliance

import (
	"regexp"
	"strconv"
	"strings"
)

var leadingNumericRun = regexp.MustCompile(`^[0-9][0-9.,]*`)

// ParseOrZero reads a free-text numeric field for risk math. Anything
// that does not parse contributes zero to the calculation; this helper
// never reports failure. The export layer deliberately uses ParseLocale
// instead, which distinguishes "absent" from "zero".
func ParseOrZero(s string) float64 {
	t := strings.TrimSpace(s)
	if t == "" {
		return 0
	}
	run := leadingNumericRun.FindString(t)
	if run == "" {
		return 0
	}
	v, err := strconv.ParseFloat(normalizeDecimal(run), 64)
	if err != nil {
		return 0
	}
	return v
}

// ParseLocale reads a locale-formatted numeric override ("1.234,56").
// The thousands separator is stripped and the decimal comma normalised.
// An unparseable value returns nil, not zero, so required-field
// validation can flag the field as missing.
func ParseLocale(s string) *float64 {
	t := strings.TrimSpace(s)
	if t == "" {
		return nil
	}
	t = strings.ReplaceAll(t, ".", "")
	t = strings.ReplaceAll(t, ",", ".")
	v, err := strconv.ParseFloat(t, 64)
	if err != nil {
		return nil
	}
	return &v
}

// SplitQuantity parses a combined "NUMBER UNIT" field ("100 UN",
// "1.234,56 KG") into its numeric quantity and unit string. When no
// leading numeric run exists both results are absent.
func SplitQuantity(s string) (quantity *float64, unit *string) {
	t := strings.TrimSpace(s)
	if t == "" {
		return nil, nil
	}
	run := leadingNumericRun.FindString(t)
	if run == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(normalizeDecimal(run), 64)
	if err != nil {
		return nil, nil
	}
	rest := strings.TrimSpace(t[len(run):])
	quantity = &v
	if rest != "" {
		unit = &rest
	}
	return quantity, unit
}

// normalizeDecimal rewrites a numeric run that may use "." or "," as the
// decimal separator into canonical form. When a comma is present it is
// the decimal separator and any dots are thousands grouping.
func normalizeDecimal(run string) string {
	if strings.Contains(run, ",") {
		run = strings.ReplaceAll(run, ".", "")
		run = strings.Replace(run, ",", ".", 1)
		// A second comma makes the run malformed; let ParseFloat reject it.
		run = strings.ReplaceAll(run, ",", "x")
	}
	return run
}
