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

import "golang.org/x/sync/errgroup"

// defaultGrain: ranges shorter than this are not worth a goroutine spawn
// and run sequentially even while budget remains.
const defaultGrain = 2048

// parallelSort is the fork-join recursion. budget is the number of
// goroutines this call may occupy, counting the one it runs on; grain is
// the minimum range length worth a spawn. Each split hands the upper half
// to a fresh goroutine and solves the lower half in place, with half the
// budget on each side, then joins and merges. Once the budget reaches 1 or
// the range drops under the grain, the rest of the subtree is sequential.
func parallelSort[T any](data []T, compare Compare[T], budget, grain int) []T {
	if len(data) <= insertionThreshold {
		return insertionSorted(data, compare)
	}
	if budget <= 1 || len(data) < grain {
		return sequentialSort(data, compare)
	}
	mid := (len(data) + 1) / 2
	half := budget / 2

	var (
		group       errgroup.Group
		upper       []T
		workerPanic any
	)
	group.Go(func() error {
		// errgroup does not recover panics; catch a comparator panic here
		// and hold it for the joining side.
		defer func() { workerPanic = recover() }()
		upper = parallelSort(data[mid:], compare, half, grain)
		return nil
	})
	lower := parallelSort(data[:mid], compare, half, grain)

	// The worker never returns an error; Wait is the join. A stashed worker
	// panic resumes on this goroutine with its original value. When the
	// lower half panics before the join, the stash is simply never read.
	_ = group.Wait()
	if workerPanic != nil {
		panic(workerPanic)
	}

	return mergeRuns(lower, upper, compare)
}
