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

// mergeRuns merges two sorted runs into a fresh slice. Instead of comparing
// the two run heads directly, it carries a single pivot element and drains
// the runs against it in alternation: each drain step emits elements from
// one run until it meets one that belongs after the pivot, at which point
// the pivot is emitted and that element becomes the new pivot. The pivot is
// seeded from the first element of lower, and the upper run drains first.
//
// Ties are side-aware so that the merge stays stable: the upper run stops
// draining at an element equal to the pivot, while the lower run keeps
// draining through elements equal to the pivot. An equal pivot facing the
// lower run always originated from upper, so lower-run elements come out
// first either way.
func mergeRuns[T any](lower, upper []T, compare Compare[T]) []T {
	m := merger[T]{
		compare: compare,
		out:     make([]T, 0, len(lower)+len(upper)),
	}
	var li, ui int
	if len(lower) > 0 {
		m.pivot = lower[0]
		m.live = true
		li = 1
	}
	for m.drain(upper, &ui, false) && m.drain(lower, &li, true) {
	}
	return m.out
}

// merger is the state threaded through the alternating drain steps: the
// output being built and the one element currently held out of both runs.
type merger[T any] struct {
	compare Compare[T]
	out     []T
	pivot   T
	live    bool // pivot holds an element
}

// drain emits elements of run, starting at *next, until one belongs after
// the carried pivot; that element is swapped with the pivot and drain
// reports true so the other run takes over. Exhausting the run emits the
// pivot, leaves the carry empty, and also reports true. With no pivot to
// trade against, drain flushes the rest of run and reports false, ending
// the alternation.
//
// takeEqual selects the tie rule: when set, elements equal to the pivot are
// emitted and the drain continues; when clear, an equal element stops the
// drain like a greater one.
func (m *merger[T]) drain(run []T, next *int, takeEqual bool) bool {
	if !m.live {
		m.out = append(m.out, run[*next:]...)
		*next = len(run)
		return false
	}
	pivot := m.pivot
	m.live = false
	for *next < len(run) {
		elem := run[*next]
		ord := m.compare(elem, pivot)
		if ord > 0 || (ord == 0 && !takeEqual) {
			m.out = append(m.out, pivot)
			m.pivot = elem
			m.live = true
			*next++
			return true
		}
		m.out = append(m.out, elem)
		*next++
	}
	m.out = append(m.out, pivot)
	return true
}
