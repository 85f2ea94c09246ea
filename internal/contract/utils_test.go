package contract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetPlainLabel(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{42.5, FrontierValue},
		{40.0, FrontierValue},
		{34.5, AcceleratingValue},
		{30.0, AcceleratingValue},
		{23.4, EmergingValue},
		{20.0, EmergingValue},
		{19.9, NascentValue},
		{0.0, NascentValue},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, GetPlainLabel(tt.score))
		})
	}
}

func TestGetColorLabel(t *testing.T) {
	// The colored label always contains the plain label text, with or
	// without ANSI escapes depending on terminal detection.
	for _, score := range []float64{45, 35, 25, 5} {
		plain := GetPlainLabel(score)
		assert.Contains(t, GetColorLabel(score), plain)
	}
}

func TestTruncateName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		want     string
	}{
		{name: "short name unchanged", input: "Retail", maxWidth: 10, want: "Retail"},
		{name: "exact width unchanged", input: "Healthcare", maxWidth: 10, want: "Healthcare"},
		{name: "long name truncated", input: "Telecommunications", maxWidth: 10, want: "Telecom..."},
		{name: "width too small to truncate", input: "Finance", maxWidth: 3, want: "Finance"},
		{name: "unicode name", input: "Industría Aeroespacial", maxWidth: 12, want: "Industría..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TruncateName(tt.input, tt.maxWidth)
			assert.Equal(t, tt.want, got)
			if len([]rune(tt.input)) > tt.maxWidth && tt.maxWidth > 3 {
				assert.True(t, strings.HasSuffix(got, "..."))
				assert.Len(t, []rune(got), tt.maxWidth)
			}
		})
	}
}

func TestParseBoolString(t *testing.T) {
	truthy := []string{"yes", "YES", "true", "True", "1"}
	for _, s := range truthy {
		got, err := ParseBoolString(s)
		assert.NoError(t, err)
		assert.True(t, got, s)
	}

	falsy := []string{"no", "NO", "false", "False", "0"}
	for _, s := range falsy {
		got, err := ParseBoolString(s)
		assert.NoError(t, err)
		assert.False(t, got, s)
	}

	for _, s := range []string{"", "maybe", "2", "on"} {
		_, err := ParseBoolString(s)
		assert.Error(t, err, s)
	}
}
