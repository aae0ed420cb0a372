// SPDX-License-Identifier: MIT

// Package stats summarises a meeting snapshot into the figures an organiser
// reads after a run: pair coverage, overlap distribution and per-participant
// unmet counts.
package stats

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/katalvlaran/seatplan/ledger"
)

// ErrLabelCount indicates a label slice whose length differs from the
// participant count.
var ErrLabelCount = errors.New("stats: label count does not match participants")

// Bucket counts the pairs that met exactly Meetings times.
type Bucket struct {
	Meetings int `json:"meetings" yaml:"meetings"`
	Pairs    int `json:"pairs" yaml:"pairs"`
}

// Summary holds pair-level statistics for one run.
type Summary struct {
	Participants  int      `json:"participants" yaml:"participants"`
	TotalPairs    int      `json:"total_pairs" yaml:"total_pairs"`
	PairsMet      int      `json:"pairs_met" yaml:"pairs_met"`
	PairsUnmet    int      `json:"pairs_unmet" yaml:"pairs_unmet"`
	PercentUnmet  float64  `json:"percent_unmet" yaml:"percent_unmet"`
	MaxOverlap    int      `json:"max_overlap" yaml:"max_overlap"`
	TargetOverlap int      `json:"target_overlap" yaml:"target_overlap"`
	ExceedsTarget bool     `json:"exceeds_target" yaml:"exceeds_target"`
	Distribution  []Bucket `json:"distribution" yaml:"distribution"`
	Unmet         []int    `json:"unmet" yaml:"unmet"`
}

// Summarize walks every unordered pair of s once.
//
// Unmet[i] is the number of other participants i never shared a table with.
// ExceedsTarget reports MaxOverlap > targetMaxOverlap.
//
// Complexity: O(N²) time, O(N + distinct meeting counts) space.
func Summarize(s *ledger.Snapshot, targetMaxOverlap int) Summary {
	n := s.Size()
	sum := Summary{
		Participants:  n,
		TotalPairs:    n * (n - 1) / 2,
		TargetOverlap: targetMaxOverlap,
		Unmet:         make([]int, n),
	}

	counts := make(map[int]int)
	s.EachPair(func(_, _, m int) bool {
		counts[m]++
		if m > sum.MaxOverlap {
			sum.MaxOverlap = m
		}
		return true
	})
	sum.Distribution = make([]Bucket, 0, len(counts))
	for m, c := range counts {
		sum.Distribution = append(sum.Distribution, Bucket{Meetings: m, Pairs: c})
	}
	sort.Slice(sum.Distribution, func(a, b int) bool {
		return sum.Distribution[a].Meetings < sum.Distribution[b].Meetings
	})

	sum.PairsUnmet = counts[0]
	sum.PairsMet = sum.TotalPairs - sum.PairsUnmet
	if sum.TotalPairs > 0 {
		sum.PercentUnmet = float64(sum.PairsUnmet) / float64(sum.TotalPairs) * 100
	}
	sum.ExceedsTarget = sum.MaxOverlap > targetMaxOverlap

	uc := s.UniqueCounts()
	for i := 0; i < n; i++ {
		sum.Unmet[i] = n - 1 - uc[i]
	}

	return sum
}

// FormatPercent renders p with one decimal place ("12.5").
func FormatPercent(p float64) string {
	return strconv.FormatFloat(p, 'f', 1, 64)
}

// UnmetEntry pairs a participant label with its unmet count.
type UnmetEntry struct {
	Label string `json:"label" yaml:"label"`
	Count int    `json:"count" yaml:"count"`
}

// UnmetReport lists every participant by unmet count descending, then label
// ascending under English collation.
func UnmetReport(sum Summary, labels []string) ([]UnmetEntry, error) {
	if len(labels) != len(sum.Unmet) {
		return nil, fmt.Errorf("%w: %d labels, %d participants", ErrLabelCount, len(labels), len(sum.Unmet))
	}
	out := make([]UnmetEntry, len(labels))
	for i, l := range labels {
		out[i] = UnmetEntry{Label: l, Count: sum.Unmet[i]}
	}

	col := collate.New(language.English)
	sort.SliceStable(out, func(a, b int) bool {
		if out[a].Count != out[b].Count {
			return out[a].Count > out[b].Count
		}
		return col.CompareString(out[a].Label, out[b].Label) < 0
	})

	return out, nil
}
