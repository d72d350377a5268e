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
	"runtime"

	"github.com/klauspost/cpuid/v2"
)

// logicalCPUs returns the logical CPU count, the default goroutine budget.
// The CPUID probe reports 0 on platforms it cannot read; fall back to the
// runtime's count there.
func logicalCPUs() int {
	if n := cpuid.CPU.LogicalCores; n > 0 {
		return n
	}
	return runtime.NumCPU()
}

// physicalCPUs returns the physical core count, ignoring SMT siblings,
// with the same fallback as logicalCPUs.
func physicalCPUs() int {
	if n := cpuid.CPU.PhysicalCores; n > 0 {
		return n
	}
	return runtime.NumCPU()
}
