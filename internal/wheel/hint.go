package wheel

import (
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// Hint points at an existing reward that a new label duplicates or
// nearly duplicates.
type Hint struct {
	Existing string
	Exact    bool
}

// SimilarLabel looks for a reward whose label equals label or sits within a
// small edit distance of it. Matching is case-insensitive for the near
// check.
func SimilarLabel(rewards []Reward, label string) (Hint, bool) {
	label = strings.TrimSpace(label)
	if label == "" {
		return Hint{}, false
	}
	for _, r := range rewards {
		if r.Label == label {
			return Hint{Existing: r.Label, Exact: true}, true
		}
	}
	want := strings.ToLower(label)
	best, bestDist := "", -1
	for _, r := range rewards {
		have := strings.ToLower(r.Label)
		dist := levenshtein.ComputeDistance(want, have)
		longest := max(utf8.RuneCountInString(want), utf8.RuneCountInString(have))
		if dist > 2 || float64(dist)/float64(longest) >= 0.5 {
			continue
		}
		if bestDist < 0 || dist < bestDist {
			best, bestDist = r.Label, dist
		}
	}
	if bestDist < 0 {
		return Hint{}, false
	}
	return Hint{Existing: best}, true
}
