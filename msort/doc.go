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

// Package msort sorts slices with a comparator-driven merge sort, either on
// the calling goroutine or fanned out over a bounded number of goroutines.
//
// Every sort reads its input and returns the result as a freshly allocated
// slice; the input is never modified and the output never aliases it. Sorts
// are stable: elements that compare equal keep the order they had in the
// input.
//
// # Sorting
//
// The package-level functions sort with the parallel strategy, budgeting one
// goroutine per logical CPU:
//
//	sorted := msort.Sort([]int{-1, 5, 91293, 12, -95})
//	// sorted is [-95, -1, 5, 12, 91293]
//
//	evenFirst := msort.SortBy(values, func(a, b int) int {
//	    return cmp.Or(a&1-b&1, cmp.Compare(a, b))
//	})
//
// Sequential and SequentialBy run the same algorithm entirely on the calling
// goroutine.
//
// # Configuration
//
// An Options value selects the order, the goroutine budget, an optional
// sub-range, and the spawn grain through chained setters:
//
//	sorted := msort.NaturalOrder[int]().
//	    Threads(4).
//	    Range(3, 7).
//	    Sort(array)
//
// Options values are reusable; one configured value can sort any number of
// arrays.
//
// # Parallelism
//
// The parallel strategy splits the range at the midpoint, hands the upper
// half to a fresh goroutine, solves the lower half itself, joins, and merges.
// The goroutine budget is halved at every split, so a budget of n occupies at
// most n goroutines and spawns at most n-1. Ranges shorter than the grain,
// and any range once the budget reaches 1, are solved sequentially. Results
// are identical for every budget and grain.
package msort
