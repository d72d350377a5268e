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

// Compare orders two values: negative when a sorts before b, zero when the
// two are tied, positive when a sorts after b. It must describe a total
// order. Comparators are shared across goroutines by the parallel strategy,
// so they must be safe for concurrent calls; pure functions always are.
type Compare[T any] func(a, b T) int

// Ascending returns the natural ascending comparator for an ordered type.
func Ascending[T cmp.Ordered]() Compare[T] {
	return cmp.Compare[T]
}

// Descending returns the natural descending comparator for an ordered type.
func Descending[T cmp.Ordered]() Compare[T] {
	return Reversed(Ascending[T]())
}

// Reversed returns compare with its order flipped.
func Reversed[T any](compare Compare[T]) Compare[T] {
	return func(a, b T) int {
		return compare(b, a)
	}
}
