// File path: internal/compliance/ncm.go
package compliance

import (
	"math"
	"regexp"
)

var nonDigits = regexp.MustCompile(`[^0-9]`)

// DigitsOnly strips every non-digit character from an NCM code.
func DigitsOnly(ncm string) string {
	return nonDigits.ReplaceAllString(ncm, "")
}

// ValidNCMFormat reports whether the code has exactly 8 digits after
// stripping separators. Format validity only; the code is not checked
// against the nomenclature table.
func ValidNCMFormat(ncm string) bool {
	return len(DigitsOnly(ncm)) == 8
}

// Score rates the format risk of an NCM code on a 0-100 scale. A
// format-valid code always scores 0. An invalid code lands in the 85-100
// band, positioned by the declarant's historical non-compliance rate
// (clamped to [0,1]) so repeat offenders rank above clean declarants.
func Score(ncmRaw string, nonComplianceRate float64) int {
	if ValidNCMFormat(ncmRaw) {
		return 0
	}
	rate := nonComplianceRate
	if rate < 0 {
		rate = 0
	}
	if rate > 1 {
		rate = 1
	}
	return int(math.Round(85 + rate*15))
}
