package iterkit

import "slices"

// Freq is a value with the number of its occurrences.
type Freq[T comparable] struct {
	Value T
	Count int
}

// CountFreq consumes the iterator and counts the occurrences of each distinct value.
// The result is ordered by the first appearance of the values.
func CountFreq[T comparable](it Iterator[T]) []Freq[T] {
	var (
		index = make(map[T]int)
		freqs []Freq[T]
	)
	for {
		v, ok := it.Next()
		if !ok {
			return freqs
		}
		if i, ok := index[v]; ok {
			freqs[i].Count++
			continue
		}
		index[v] = len(freqs)
		freqs = append(freqs, Freq[T]{Value: v, Count: 1})
	}
}

// Modes returns the most frequent values of the iterator.
// When multiple values share the highest count, all of them are returned,
// ordered by their first appearance.
func Modes[T comparable](it Iterator[T]) []Freq[T] {
	freqs := CountFreq(it)
	var top int
	for _, f := range freqs {
		top = max(top, f.Count)
	}
	return slices.DeleteFunc(freqs, func(f Freq[T]) bool {
		return f.Count < top
	})
}
