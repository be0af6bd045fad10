package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var locations = []string{"Farm", "Forest", "Town", "Beach", "Mountain", "BusStop", "FarmCave", "Backwoods"}

func TestSuggest(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   string
		wantOK bool
	}{
		{"exact match", "Forest", "Forest", true},
		{"case insensitive", "forest", "Forest", true},
		{"single typo", "Froest", "Forest", true},
		{"missing letter", "Mountin", "Mountain", true},
		{"prefix", "BusS", "BusStop", true},
		{"too far", "Desert", "", false},
		{"too short", "F", "", false},
		{"blank", "   ", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Suggest(tt.input, locations)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRank_OrdersByDistanceThenName(t *testing.T) {
	matches := Rank("Farm", locations)

	if assert.NotEmpty(t, matches) {
		assert.Equal(t, Match{Name: "Farm", Distance: 0}, matches[0])
	}
	assert.Contains(t, matches, Match{Name: "FarmCave", Distance: 1})
}

func TestRank_NoCandidates(t *testing.T) {
	assert.Empty(t, Rank("Farm", nil))
}
