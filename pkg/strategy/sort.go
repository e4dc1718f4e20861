package strategy

import "fmt"

// SortStrategy is the interface every sorting algorithm implements.
// Sort must not mutate its input; it returns a new non-descending
// permutation of the same length.
type SortStrategy interface {
	Sort(data []int) []int
	Name() string
}

// QuickSort sorts by recursive three-way partitioning around a middle pivot.
// Not stable.
type QuickSort struct{}

func (QuickSort) Name() string { return "QuickSort" }

func (q QuickSort) Sort(data []int) []int {
	if len(data) <= 1 {
		return append([]int(nil), data...)
	}
	pivot := data[len(data)/2]
	var left, middle, right []int
	for _, v := range data {
		switch {
		case v < pivot:
			left = append(left, v)
		case v == pivot:
			middle = append(middle, v)
		default:
			right = append(right, v)
		}
	}
	out := q.Sort(left)
	out = append(out, middle...)
	out = append(out, q.Sort(right)...)
	return out
}

// MergeSort sorts by recursive halving and merging. Stable.
type MergeSort struct{}

func (MergeSort) Name() string { return "MergeSort" }

func (m MergeSort) Sort(data []int) []int {
	if len(data) <= 1 {
		return append([]int(nil), data...)
	}
	mid := len(data) / 2
	left := m.Sort(data[:mid])
	right := m.Sort(data[mid:])
	return merge(left, right)
}

func merge(left, right []int) []int {
	out := make([]int, 0, len(left)+len(right))
	i, j := 0, 0
	for i < len(left) && j < len(right) {
		if left[i] <= right[j] {
			out = append(out, left[i])
			i++
		} else {
			out = append(out, right[j])
			j++
		}
	}
	out = append(out, left[i:]...)
	out = append(out, right[j:]...)
	return out
}

// BubbleSort sorts by adjacent swaps, stopping early once a pass makes no
// swap.
type BubbleSort struct{}

func (BubbleSort) Name() string { return "BubbleSort" }

func (BubbleSort) Sort(data []int) []int {
	out := append([]int(nil), data...)
	for i := 0; i < len(out); i++ {
		swapped := false
		for j := 0; j < len(out)-i-1; j++ {
			if out[j] > out[j+1] {
				out[j], out[j+1] = out[j+1], out[j]
				swapped = true
			}
		}
		if !swapped {
			break
		}
	}
	return out
}

// Sorter is the sorting context. It delegates Sort to the currently held
// algorithm.
type Sorter struct {
	strategy SortStrategy
}

// NewSorter returns a Sorter with no strategy set.
func NewSorter() *Sorter {
	return &Sorter{}
}

// SetStrategy replaces the active sorting strategy unconditionally.
func (s *Sorter) SetStrategy(strategy SortStrategy) {
	s.strategy = strategy
}

// Sort sorts data using the active strategy.
// Returns ErrNoStrategy if no strategy has been set.
func (s *Sorter) Sort(data []int) ([]int, error) {
	if s.strategy == nil {
		return nil, fmt.Errorf("sort data: %w", ErrNoStrategy)
	}
	return s.strategy.Sort(data), nil
}

// StrategyName returns the active strategy's name, or "none" when unset.
func (s *Sorter) StrategyName() string {
	if s.strategy == nil {
		return "none"
	}
	return s.strategy.Name()
}
