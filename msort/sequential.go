// Copyright 2026 mergesort-cmp Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package msort

import "cmp"

// insertionThreshold: ranges this size or smaller are copied out and
// insertion sorted instead of being split further.
const insertionThreshold = 32

// Sequential sorts array in ascending order entirely on the calling
// goroutine and returns the result as a fresh slice. array is not modified.
func Sequential[T cmp.Ordered](array []T) []T {
	return SequentialBy(array, cmp.Compare[T])
}

// SequentialBy sorts array by compare entirely on the calling goroutine and
// returns the result as a fresh slice. array is not modified.
func SequentialBy[T any](array []T, compare Compare[T]) []T {
	return sequentialSort(array, compare)
}

// sequentialSort is the single-goroutine recursion: split the range at the
// midpoint, sort both halves, merge. The lower half takes the extra element
// of an odd split.
func sequentialSort[T any](data []T, compare Compare[T]) []T {
	if len(data) <= insertionThreshold {
		return insertionSorted(data, compare)
	}
	mid := (len(data) + 1) / 2
	lower := sequentialSort(data[:mid], compare)
	upper := sequentialSort(data[mid:], compare)
	return mergeRuns(lower, upper, compare)
}

// insertionSorted copies data and insertion sorts the copy. Equal elements
// keep their input order.
func insertionSorted[T any](data []T, compare Compare[T]) []T {
	sorted := make([]T, len(data))
	copy(sorted, data)
	for i := 1; i < len(sorted); i++ {
		elem := sorted[i]
		j := i - 1
		for j >= 0 && compare(sorted[j], elem) > 0 {
			sorted[j+1] = sorted[j]
			j--
		}
		sorted[j+1] = elem
	}
	return sorted
}
