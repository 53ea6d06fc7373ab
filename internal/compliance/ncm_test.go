// File path: internal/compliance/ncm_test.go
package compliance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreValidFormat(t *testing.T) {
	assert.Equal(t, 0, Score("85171231", 0))
	assert.Equal(t, 0, Score("85171231", 1))
	assert.Equal(t, 0, Score("8517.12.31", 0.9), "separators are stripped before the length check")
	assert.Equal(t, 0, Score(" 8517-12-31 ", 0.5))
}

func TestScoreInvalidFormat(t *testing.T) {
	tests := []struct {
		name string
		ncm  string
		rate float64
		want int
	}{
		{"short code, clean declarant", "123", 0, 85},
		{"short code, worst declarant", "123", 1, 100},
		{"empty code, mid rate", "", 0.6, 94},
		{"too long", "123456789", 0.5, 93},
		{"letters only", "abcdefgh", 0, 85},
		{"rate below range clamps", "8517", -3, 85},
		{"rate above range clamps", "8517", 7, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Score(tt.ncm, tt.rate))
		})
	}
}

func TestScoreBandAndMonotonicity(t *testing.T) {
	prev := 0
	for i := 0; i <= 20; i++ {
		rate := float64(i) / 20
		got := Score("123", rate)
		assert.GreaterOrEqual(t, got, 85)
		assert.LessOrEqual(t, got, 100)
		assert.GreaterOrEqual(t, got, prev, "score must be non-decreasing in the rate")
		prev = got
	}
}

func TestDigitsOnly(t *testing.T) {
	assert.Equal(t, "85171231", DigitsOnly("8517.12.31"))
	assert.Equal(t, "", DigitsOnly("n/a"))
	assert.Equal(t, "12", DigitsOnly(" 1a2 "))
}

func TestValidNCMFormat(t *testing.T) {
	assert.True(t, ValidNCMFormat("85171231"))
	assert.True(t, ValidNCMFormat("8517.12.31"))
	assert.False(t, ValidNCMFormat("8517123"))
	assert.False(t, ValidNCMFormat("851712345"))
	assert.False(t, ValidNCMFormat(""))
}
