package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sortInput = []int{64, 34, 25, 12, 22, 11, 90, 5, 77, 50}
var sortWant = []int{5, 11, 12, 22, 25, 34, 50, 64, 77, 90}

func TestSortStrategies(t *testing.T) {
	tests := []struct {
		name     string
		strategy SortStrategy
	}{
		{name: "quicksort", strategy: QuickSort{}},
		{name: "mergesort", strategy: MergeSort{}},
		{name: "bubblesort", strategy: BubbleSort{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := append([]int(nil), sortInput...)

			got := tt.strategy.Sort(input)
			assert.Equal(t, sortWant, got)
			// Input must not be mutated.
			assert.Equal(t, sortInput, input)
		})
	}
}

func TestSortEdgeCases(t *testing.T) {
	tests := []struct {
		name  string
		input []int
		want  []int
	}{
		{name: "empty", input: []int{}, want: []int{}},
		{name: "single element", input: []int{7}, want: []int{7}},
		{name: "already sorted", input: []int{1, 2, 3}, want: []int{1, 2, 3}},
		{name: "reverse sorted", input: []int{3, 2, 1}, want: []int{1, 2, 3}},
		{name: "duplicates", input: []int{2, 1, 2, 1}, want: []int{1, 1, 2, 2}},
		{name: "negatives", input: []int{0, -5, 3, -1}, want: []int{-5, -1, 0, 3}},
	}

	strategies := []SortStrategy{QuickSort{}, MergeSort{}, BubbleSort{}}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, s := range strategies {
				got := s.Sort(tt.input)
				assert.Len(t, got, len(tt.input), s.Name())
				assert.ElementsMatch(t, tt.input, got, s.Name())
				assert.IsNonDecreasing(t, got, s.Name())
			}
		})
	}
}

func TestSorterWithoutStrategy(t *testing.T) {
	s := NewSorter()

	_, err := s.Sort([]int{3, 1, 2})
	assert.ErrorIs(t, err, ErrNoStrategy)
	assert.Equal(t, "none", s.StrategyName())
}

func TestSorterDelegates(t *testing.T) {
	s := NewSorter()
	s.SetStrategy(MergeSort{})

	got, err := s.Sort(append([]int(nil), sortInput...))
	require.NoError(t, err)
	assert.Equal(t, sortWant, got)
	assert.Equal(t, "MergeSort", s.StrategyName())
}
