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

// Options configures a sort: the comparator, the goroutine budget, an
// optional sub-range, and the spawn grain. Construct one with NaturalOrder,
// ReverseOrder, or CustomOrder, adjust it with the chained setters, then
// call Sort. The zero value has no comparator and is not usable.
type Options[T any] struct {
	compare  Compare[T]
	threads  int
	start    int
	end      int
	hasRange bool
	grain    int
}

// NaturalOrder returns options that sort in ascending order, budgeting one
// goroutine per logical CPU over the full array.
func NaturalOrder[T cmp.Ordered]() *Options[T] {
	return CustomOrder(Ascending[T]())
}

// ReverseOrder returns options that sort in descending order, budgeting one
// goroutine per logical CPU over the full array.
func ReverseOrder[T cmp.Ordered]() *Options[T] {
	return CustomOrder(Descending[T]())
}

// CustomOrder returns options that sort by compare, budgeting one goroutine
// per logical CPU over the full array.
func CustomOrder[T any](compare Compare[T]) *Options[T] {
	return &Options[T]{
		compare: compare,
		threads: logicalCPUs(),
		grain:   defaultGrain,
	}
}

// Threads sets the goroutine budget. Values below 1 run sequentially, the
// same as a budget of 1.
func (o *Options[T]) Threads(n int) *Options[T] {
	o.threads = n
	return o
}

// ThreadPerCPU sets the goroutine budget to the logical CPU count, the
// constructor default.
func (o *Options[T]) ThreadPerCPU() *Options[T] {
	o.threads = logicalCPUs()
	return o
}

// ThreadPerPhysicalCPU sets the goroutine budget to the physical core
// count, ignoring SMT siblings.
func (o *Options[T]) ThreadPerPhysicalCPU() *Options[T] {
	o.threads = physicalCPUs()
	return o
}

// Range restricts the sort to the half-open interval [start, end) of the
// array handed to Sort. Sort panics if the interval does not fit the array,
// exactly as slicing it would.
func (o *Options[T]) Range(start, end int) *Options[T] {
	o.start = start
	o.end = end
	o.hasRange = true
	return o
}

// FullRange undoes Range: the whole array is sorted again.
func (o *Options[T]) FullRange() *Options[T] {
	o.hasRange = false
	return o
}

// Grain sets the minimum range length worth a goroutine spawn. Values below
// 2 remove the floor, so every split with budget to spare spawns.
func (o *Options[T]) Grain(n int) *Options[T] {
	o.grain = n
	return o
}

// Sort sorts the configured range of array and returns the result as a
// fresh slice; array is not modified. The options are read, not consumed,
// so one value can sort any number of arrays.
func (o *Options[T]) Sort(array []T) []T {
	data := array
	if o.hasRange {
		data = array[o.start:o.end]
	}
	threads := o.threads
	if threads < 1 {
		threads = 1
	}
	return parallelSort(data, o.compare, threads, o.grain)
}

// Sort sorts array in ascending order with the parallel strategy and
// returns the result as a fresh slice.
func Sort[T cmp.Ordered](array []T) []T {
	return NaturalOrder[T]().Sort(array)
}

// SortBy sorts array by compare with the parallel strategy and returns the
// result as a fresh slice.
func SortBy[T any](array []T, compare Compare[T]) []T {
	return CustomOrder(compare).Sort(array)
}

// SortRange sorts the interval [start, end) of array in ascending order
// with the parallel strategy and returns it as a fresh slice.
func SortRange[T cmp.Ordered](array []T, start, end int) []T {
	return NaturalOrder[T]().Range(start, end).Sort(array)
}

// SortRangeBy sorts the interval [start, end) of array by compare with the
// parallel strategy and returns it as a fresh slice.
func SortRangeBy[T any](array []T, start, end int, compare Compare[T]) []T {
	return CustomOrder(compare).Range(start, end).Sort(array)
}
