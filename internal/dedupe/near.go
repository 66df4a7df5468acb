package dedupe

import (
	"sort"

	"github.com/hbollon/go-edlib"
)

// nearThreshold is the minimum Jaro-Winkler stem similarity for a pair
// rejected by the name gate to be worth reporting.
const nearThreshold = 0.90

// NearMatch is a pair of files whose comparison keys differ but whose
// name stems are suspiciously close. Report-only: near matches never
// feed the duplicate policy.
type NearMatch struct {
	PathA string
	PathB string
	Score float64
}

// NearMatches finds pairs in paths that failed the name gate but score
// at or above the reporting threshold on Jaro-Winkler stem similarity.
// Jaro-Winkler favors shared prefixes, which fits camera-style names.
// Results are ordered best match first.
func NearMatches(paths []string) []NearMatch {
	var out []NearMatch
	for i := 0; i < len(paths); i++ {
		for j := i + 1; j < len(paths); j++ {
			if Key(paths[i]) == Key(paths[j]) {
				continue // already candidate duplicates
			}
			score := float64(edlib.JaroWinklerSimilarity(stem(paths[i]), stem(paths[j])))
			if score >= nearThreshold {
				out = append(out, NearMatch{
					PathA: paths[i],
					PathB: paths[j],
					Score: score,
				})
			}
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out
}
