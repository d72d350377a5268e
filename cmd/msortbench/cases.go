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

package main

import (
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/intel/forGoParallel/parallel"
	"github.com/intel/forGoParallel/psort"
)

// caseClass describes one batch of cases: how many arrays to draw and the
// bounds their lengths are drawn from.
type caseClass struct {
	name   string
	count  int
	minLen int
	maxLen int
}

var caseClasses = []caseClass{
	{name: "small", count: 400, minLen: 10, maxLen: 200},
	{name: "medium", count: 200, minLen: 500, maxLen: 10000},
	{name: "large", count: 50, minLen: 20000, maxLen: 400000},
	{name: "huge", count: 10, minLen: 800000, maxLen: 2000000},
}

// classNames lists the known class names for flag help.
func classNames() string {
	names := make([]string, len(caseClasses))
	for i, class := range caseClasses {
		names[i] = class.name
	}
	return strings.Join(names, ",")
}

// generate draws the class's arrays from rng. Lengths and per-case seeds
// come off the master stream one case at a time, so a fixed top-level seed
// always yields the same cases.
func (c caseClass) generate(rng *rand.Rand) [][]int64 {
	cases := make([][]int64, c.count)
	for i := range cases {
		n := c.minLen + rng.IntN(c.maxLen-c.minLen+1)
		data := make([]int64, n)
		fillCase(data, rng.Uint64())
		cases[i] = data
	}
	return cases
}

// caseFillChunk: cases are filled in chunks of this many elements, each
// chunk from its own rng stream keyed by chunk index. The values depend
// only on the case seed, never on how the chunks get scheduled.
const caseFillChunk = 16384

func fillCase(data []int64, caseSeed uint64) {
	chunks := (len(data) + caseFillChunk - 1) / caseFillChunk
	parallel.Range(0, chunks, 0, func(low, high int) {
		for k := low; k < high; k++ {
			start := k * caseFillChunk
			end := min(start+caseFillChunk, len(data))
			chunk := rand.New(rand.NewPCG(caseSeed, uint64(k)))
			for j := start; j < end; j++ {
				data[j] = int64(chunk.Uint64())
			}
		}
	})
}

// elements is the total element count across the class's cases.
func elements(cases [][]int64) int64 {
	var total int64
	for _, data := range cases {
		total += int64(len(data))
	}
	return total
}

// int64Sorter adapts a plain []int64 to psort.StableSort.
type int64Sorter []int64

func (s int64Sorter) Assign(source psort.StableSorter) func(i, j, len int) {
	src := source.(int64Sorter)
	return func(i, j, len int) {
		copy(s[i:i+len], src[j:j+len])
	}
}

func (s int64Sorter) Len() int {
	return len(s)
}

func (s int64Sorter) Less(i, j int) bool {
	return s[i] < s[j]
}

func (s int64Sorter) NewTemp() psort.StableSorter {
	return make(int64Sorter, len(s))
}

func (s int64Sorter) SequentialSort(i, j int) {
	slices.Sort(s[i:j])
}

func (s int64Sorter) Swap(i, j int) {
	s[i], s[j] = s[j], s[i]
}
