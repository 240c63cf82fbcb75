package dates

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{"iso passthrough", "2025-09-05", "2025-09-05", true},
		{"short slash two digit year", "5/9/25", "2025-09-05", true},
		{"full slash date", "05/09/2025", "2025-09-05", true},
		{"single digit month", "1/12/2024", "2024-12-01", true},
		{"dash dmy", "02-01-2006", "2006-01-02", true},
		{"long month name", "January 2, 2006", "2006-01-02", true},
		{"whitespace trimmed", "  2024-01-31  ", "2024-01-31", true},
		{"empty", "", "", false},
		{"garbage", "not a date", "", false},
		{"impossible day", "32/1/2024", "", false},
		{"impossible month", "1/13/2024", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Normalize(tc.input)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNormalizeNeverPanics(t *testing.T) {
	for _, s := range []string{"//", "1/2", "x/y/z", "9999999999", "05/09/20255"} {
		assert.NotPanics(t, func() { Normalize(s) })
	}
}
