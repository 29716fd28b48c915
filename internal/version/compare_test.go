package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want int
	}{
		{"equal", "1.2.3", "1.2.3", 0},
		{"shorter equals padded", "1.2.0", "1.2", 0},
		{"major wins over minor", "2.0.0", "1.9.9", 1},
		{"minor", "1.3", "1.2.9", 1},
		{"patch", "1.2.1", "1.2.2", -1},
		{"v prefix stripped", "v5.8.1", "5.8.1", 0},
		{"capital V", "V2.0", "v1.0", 1},
		{"different lengths", "1.2.3.4", "1.2.3", 1},
		{"malformed left", "vX", "1.0", 0},
		{"malformed right", "1.0", "beta", 0},
		{"empty both", "", "", 0},
		{"empty one side", "", "1.0", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Compare(tt.a, tt.b))
		})
	}
}

// Antisymmetry: swapping arguments negates the result for all inputs,
// treating 0 as its own negation.
func TestCompare_Antisymmetry(t *testing.T) {
	versions := []string{"1.0", "1.0.1", "2.0.0", "v1.9.9", "0.0.0", "garbage", "", "3"}
	for _, a := range versions {
		for _, b := range versions {
			assert.Equal(t, -Compare(b, a), Compare(a, b), "a=%q b=%q", a, b)
		}
	}
}
