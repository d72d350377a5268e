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
	"testing"

	"github.com/intel/forGoParallel/psort"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDeterministic(t *testing.T) {
	class := caseClass{name: "test", count: 5, minLen: 10, maxLen: 5000}

	first := class.generate(rand.New(rand.NewPCG(99, 0)))
	second := class.generate(rand.New(rand.NewPCG(99, 0)))
	assert.Equal(t, first, second)

	other := class.generate(rand.New(rand.NewPCG(100, 0)))
	assert.NotEqual(t, first, other)
}

func TestGenerateLengthBounds(t *testing.T) {
	class := caseClass{name: "test", count: 50, minLen: 10, maxLen: 200}

	cases := class.generate(rand.New(rand.NewPCG(7, 0)))
	require.Len(t, cases, 50)
	for _, data := range cases {
		assert.GreaterOrEqual(t, len(data), 10)
		assert.LessOrEqual(t, len(data), 200)
	}
}

func TestSelectClasses(t *testing.T) {
	all, err := selectClasses("all")
	require.NoError(t, err)
	assert.Equal(t, caseClasses, all)

	two, err := selectClasses("small, huge")
	require.NoError(t, err)
	require.Len(t, two, 2)
	assert.Equal(t, "small", two[0].name)
	assert.Equal(t, "huge", two[1].name)

	_, err = selectClasses("small,big")
	assert.Error(t, err)
}

// TestInt64SorterSorts pushes the adapter through the parallel path of
// psort.StableSort, which kicks in above its sequential grain size.
func TestInt64SorterSorts(t *testing.T) {
	rng := rand.New(rand.NewPCG(21, 0))
	data := make([]int64, 20000)
	for i := range data {
		data[i] = rng.Int64N(1000) - 500
	}

	want := slices.Clone(data)
	slices.Sort(want)

	buf := slices.Clone(data)
	psort.StableSort(int64Sorter(buf))
	assert.Equal(t, want, buf)
}
