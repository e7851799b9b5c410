package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetRankByPoints(t *testing.T) {
	tests := []struct {
		name          string
		points        int
		expectedTitle string
	}{
		{"Starter rank", 0, "Beginner"},
		{"High beginner", 29, "Beginner"},
		{"Low explorer", 30, "Explorer"},
		{"Mid word smith", 100, "Word Smith"},
		{"Spell master", 200, "Spell Master"},
		{"Top rank", 250, "Intellispeller"},
		{"Far beyond", 5000, "Intellispeller"},
		{"Negative", -10, "Beginner"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rank := GetRankByPoints(tt.points)
			assert.Equal(t, tt.expectedTitle, rank.Title)
		})
	}
}

func TestWordsToNextRank(t *testing.T) {
	tests := []struct {
		name     string
		points   int
		reward   int
		expected int
	}{
		{"From zero", 0, 10, 3},
		{"Partial word", 25, 10, 1},
		{"Exactly at boundary", 30, 10, 5},
		{"Top rank", 300, 10, 0},
		{"No reward", 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, WordsToNextRank(tt.points, tt.reward))
		})
	}
}
