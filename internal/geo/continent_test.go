package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContinentOf(t *testing.T) {
	tests := []struct {
		country string
		want    string
	}{
		{"France", Europe},
		{"france", Europe},
		{"  FRANCE  ", Europe},
		{"Japan", Asia},
		{"United States", NorthAmerica},
		{"Brazil", SouthAmerica},
		{"Kenya", Africa},
		{"Australia", Oceania},
		{"Antarctica", Antarctica},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ContinentOf(tt.country), tt.country)
	}
}

func TestContinentOfUnknownCountry(t *testing.T) {
	assert.Empty(t, ContinentOf("Atlantis"))
	assert.Empty(t, ContinentOf(""))
}
