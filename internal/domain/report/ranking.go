package report

import (
	"fmt"
	"sort"

	"buffet_festas/internal/domain/entities"
)

// DefaultTopN is the usual cut for dashboard rankings.
const DefaultTopN = 5

// Count is the number of events attributed to one entity (client or freelancer).
type Count struct {
	Key      string
	Name     string
	Subtitle string
	Events   int
}

// RankEntry is a derived ranking line. Position is 1-based.
type RankEntry struct {
	Position int
	Key      string
	Name     string
	Events   int
	Subtitle string
}

// Rank orders counts by descending number of events. Ties keep the input
// order. n <= 0 returns every entry.
func Rank(counts []Count, n int) ([]RankEntry, error) {
	for _, c := range counts {
		if c.Events < 0 {
			return nil, fmt.Errorf("%w: negative event count for %q", entities.ErrInvalidArgument, c.Key)
		}
	}

	sorted := make([]Count, len(counts))
	copy(sorted, counts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Events > sorted[j].Events
	})

	if n > 0 && n < len(sorted) {
		sorted = sorted[:n]
	}

	out := make([]RankEntry, 0, len(sorted))
	for i, c := range sorted {
		out = append(out, RankEntry{
			Position: i + 1,
			Key:      c.Key,
			Name:     c.Name,
			Events:   c.Events,
			Subtitle: c.Subtitle,
		})
	}
	return out, nil
}

// CountByKey counts occurrences of each key, in first-seen order. Name defaults
// to the key; callers resolve display names afterwards.
func CountByKey(keys []string) []Count {
	index := make(map[string]int, len(keys))
	out := make([]Count, 0)
	for _, k := range keys {
		if i, ok := index[k]; ok {
			out[i].Events++
			continue
		}
		index[k] = len(out)
		out = append(out, Count{Key: k, Name: k, Events: 1})
	}
	return out
}
