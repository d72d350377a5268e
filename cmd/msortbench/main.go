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

// Command msortbench times the merge sorts against stdlib and third-party
// baselines over batches of randomly generated int64 arrays.
//
// Usage:
//
//	msortbench                       # random seed, all classes
//	msortbench -seed 42              # reproducible cases
//	msortbench -classes large,huge -threads 8
//
// Cases come in four size classes (small, medium, large, huge). Every
// contender sorts the same arrays; the report shows wall-clock totals per
// class with the fastest contender highlighted.
package main

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/brunoczim/mergesort-cmp/msort"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/intel/forGoParallel/psort"
)

var (
	seedFlag    = flag.Uint64("seed", 0, "Case generator seed (default: random)")
	classesFlag = flag.String("classes", "all", "Comma-separated case classes ("+classNames()+") or 'all'")
	threadsFlag = flag.Int("threads", 0, "Goroutine budget for the parallel sort (default: one per logical CPU)")
)

// contender is one sort implementation under measurement. Contenders that
// sort in place get a fresh copy each round, so every contender pays for
// one allocation per case.
type contender struct {
	name string
	run  func(data []int64)
}

func contenders(threads int) []contender {
	opts := msort.NaturalOrder[int64]()
	if threads > 0 {
		opts.Threads(threads)
	}
	return []contender{
		{name: "sequential", run: func(data []int64) {
			msort.Sequential(data)
		}},
		{name: "parallel", run: func(data []int64) {
			opts.Sort(data)
		}},
		{name: "slices.Sort", run: func(data []int64) {
			buf := slices.Clone(data)
			slices.Sort(buf)
		}},
		{name: "psort.StableSort", run: func(data []int64) {
			buf := slices.Clone(data)
			psort.StableSort(int64Sorter(buf))
		}},
	}
}

func main() {
	flag.Parse()

	seed := *seedFlag
	if !flagGiven("seed") {
		seed = rand.Uint64()
	}
	fmt.Printf("Using seed %d\n", seed)

	selected, err := selectClasses(*classesFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
		flag.Usage()
		os.Exit(1)
	}

	runners := contenders(*threadsFlag)
	rng := rand.New(rand.NewPCG(seed, 0))

	for _, class := range selected {
		cases := class.generate(rng)

		header := color.New(color.FgCyan, color.Bold)
		header.Printf("=== %s: %s cases, %s elements ===\n",
			class.name, humanize.Comma(int64(len(cases))), humanize.Comma(elements(cases)))

		durations := make([]time.Duration, len(runners))
		for i, r := range runners {
			durations[i] = timeRuns(cases, r.run)
		}

		best := slices.Min(durations)
		for i, r := range runners {
			line := fmt.Sprintf("  %-16s %12s", r.name, durations[i].Round(time.Microsecond))
			if i > 0 && durations[0] > 0 {
				line += fmt.Sprintf("  (%.2fx vs sequential)", float64(durations[0])/float64(durations[i]))
			}
			if durations[i] == best {
				line = color.GreenString("%s", line)
			}
			fmt.Println(line)
		}
	}
}

// timeRuns runs one contender over every case of a class and reports the
// wall-clock total.
func timeRuns(cases [][]int64, run func([]int64)) time.Duration {
	start := time.Now()
	for _, data := range cases {
		run(data)
	}
	return time.Since(start)
}

// selectClasses resolves the -classes flag into the classes to run, in
// their order of appearance on the flag.
func selectClasses(value string) ([]caseClass, error) {
	if value == "all" {
		return caseClasses, nil
	}
	var selected []caseClass
	for _, name := range strings.Split(value, ",") {
		name = strings.TrimSpace(name)
		found := false
		for _, class := range caseClasses {
			if class.name == name {
				selected = append(selected, class)
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("unknown class %q", name)
		}
	}
	return selected, nil
}

// flagGiven reports whether the named flag was set on the command line.
func flagGiven(name string) bool {
	given := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			given = true
		}
	})
	return given
}
