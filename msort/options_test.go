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

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionsDefaults(t *testing.T) {
	opts := NaturalOrder[int]()

	assert.Equal(t, logicalCPUs(), opts.threads)
	assert.Equal(t, defaultGrain, opts.grain)
	assert.False(t, opts.hasRange)
	assert.NotNil(t, opts.compare)
}

// TestOptionsChaining: every setter mutates and returns the same options
// value, so chains and stepwise calls configure identically.
func TestOptionsChaining(t *testing.T) {
	opts := CustomOrder(byKey)

	require.Same(t, opts, opts.Threads(3))
	require.Same(t, opts, opts.ThreadPerCPU())
	require.Same(t, opts, opts.ThreadPerPhysicalCPU())
	require.Same(t, opts, opts.Range(1, 2))
	require.Same(t, opts, opts.FullRange())
	require.Same(t, opts, opts.Grain(64))
}

func TestOptionsThreadSetters(t *testing.T) {
	opts := NaturalOrder[int]()

	opts.Threads(3)
	assert.Equal(t, 3, opts.threads)

	opts.ThreadPerCPU()
	assert.Equal(t, logicalCPUs(), opts.threads)

	opts.ThreadPerPhysicalCPU()
	assert.Equal(t, physicalCPUs(), opts.threads)
}

func TestOptionsRangeRoundTrip(t *testing.T) {
	opts := NaturalOrder[int]().Range(3, 7)
	assert.Equal(t, []int{-95, 12, 20000, 20001}, opts.Sort(mixedInts()))

	opts.FullRange()
	assert.Equal(t, []int{-95, -12, -1, 5, 7, 12, 20000, 20001, 91293},
		opts.Sort(mixedInts()))
}

func TestOptionsEmptyRange(t *testing.T) {
	got := NaturalOrder[int]().Range(4, 4).Sort(mixedInts())
	require.NotNil(t, got)
	assert.Empty(t, got)
}

// TestOptionsReuse: one options value sorts any number of arrays without
// carrying state across calls.
func TestOptionsReuse(t *testing.T) {
	opts := NaturalOrder[int]().Threads(4)

	assert.Equal(t, []int{1, 2, 3}, opts.Sort([]int{3, 1, 2}))
	assert.Equal(t, []int{-2, 0, 9}, opts.Sort([]int{9, -2, 0}))
	assert.Equal(t, []int{1, 2, 3}, opts.Sort([]int{3, 1, 2}))
}
