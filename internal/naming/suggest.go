// Package naming matches user-supplied names against known names.
package naming

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"golang.org/x/text/cases"
)

// Match is a candidate name with its edit distance from the query
type Match struct {
	Name     string
	Distance int
}

// Suggest returns the closest candidate to name, compared case-insensitively.
// It reports false when nothing is within the typo limit for the candidate's length.
func Suggest(name string, candidates []string) (string, bool) {
	matches := Rank(name, candidates)
	if len(matches) == 0 {
		return "", false
	}
	return matches[0].Name, true
}

// Rank returns every candidate within the typo limit, closest first.
// Ties are broken alphabetically.
func Rank(name string, candidates []string) []Match {
	fold := cases.Fold()
	query := fold.String(strings.TrimSpace(name))
	if len(query) < MinQueryLength {
		return nil
	}

	var out []Match
	for _, cand := range candidates {
		key := fold.String(cand)
		var dist int
		switch {
		case key == query:
			dist = 0
		case strings.HasPrefix(key, query):
			dist = 1
		default:
			dist = levenshtein.ComputeDistance(query, key)
			if dist > distanceLimit(len(key)) {
				continue
			}
		}
		out = append(out, Match{Name: cand, Distance: dist})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Distance == out[j].Distance {
			return out[i].Name < out[j].Name
		}
		return out[i].Distance < out[j].Distance
	})
	return out
}

func distanceLimit(length int) int {
	switch {
	case length <= ShortNameLength:
		return ShortNameLimit
	case length <= MediumNameLength:
		return MediumNameLimit
	default:
		return LongNameLimit
	}
}
