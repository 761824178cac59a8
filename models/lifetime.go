package models

import (
	"sort"
	"strings"
)

// LifetimeStats parameterizes the normal distribution a unit's physical
// end-of-life threshold is sampled from. This is deliberately separate from
// the legal DepreciationYears: accounting lifetime schedules replacements,
// physical lifetime triggers disuse.
type LifetimeStats struct {
	MeanYears   float64
	StddevYears float64
}

// Expected real-world lifetimes by equipment keyword (warranty-provider and
// fleet-replacement statistics).
var lifetimeStatsByKeyword = map[string]LifetimeStats{
	"노트북":    {4.3, 0.9},
	"데스크톱":   {5.0, 1.2},
	"모니터":    {7.0, 1.5},
	"프린터":    {6.0, 1.5},
	"스캐너":    {6.5, 1.5},
	"라우터":    {5.5, 1.5},
	"하드디스크":  {4.5, 1.2},
	"서버":     {6.0, 1.5},
	"랙":      {15.0, 4.0},
	"책상":     {15.0, 3.5},
	"실습대":    {15.0, 3.5},
	"실험대":    {15.0, 3.5},
	"보조장":    {15.0, 3.5},
	"의자":     {9.5, 2.0},
	"소파":     {11.0, 3.0},
	"화이트보드":  {7.0, 2.0},
}

var defaultLifetimeStats = LifetimeStats{8.0, 2.0}

// Keyword match order: longest keyword first, so the most specific term wins;
// ties break lexicographically to keep the resolution deterministic.
var lifetimeKeywordsOrdered = func() []string {
	keys := make([]string, 0, len(lifetimeStatsByKeyword))
	for k := range lifetimeStatsByKeyword {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	return keys
}()

// resolveLifetime maps a display name onto its lifetime statistics. Called
// once per catalogue entry at load time.
func resolveLifetime(displayName string) LifetimeStats {
	name := strings.ToLower(strings.TrimSpace(displayName))
	for _, key := range lifetimeKeywordsOrdered {
		if strings.Contains(name, strings.ToLower(key)) {
			return lifetimeStatsByKeyword[key]
		}
	}
	return defaultLifetimeStats
}
