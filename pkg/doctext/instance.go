package doctext

import "sort"

// SelectInstance deduplicates matches, orders them by StartIndex and returns
// the instance-th (1-based) one. It reports false when fewer matches exist
// or instance is below 1.
func SelectInstance(matches []MatchRange, instance int) (MatchRange, bool) {
	if instance < 1 {
		return MatchRange{}, false
	}

	seen := make(map[MatchRange]bool, len(matches))
	unique := make([]MatchRange, 0, len(matches))
	for _, m := range matches {
		if seen[m] {
			continue
		}
		seen[m] = true
		unique = append(unique, m)
	}

	sort.SliceStable(unique, func(i, j int) bool {
		return unique[i].StartIndex < unique[j].StartIndex
	})

	if instance > len(unique) {
		return MatchRange{}, false
	}
	return unique[instance-1], true
}
