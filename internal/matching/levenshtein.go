package matching

import "strings"

// Levenshtein computes the edit distance between two strings,
// case-insensitively. Comparison operates on runes so accented
// catalog labels are counted as single edits.
func Levenshtein(a, b string) int {
	ra := []rune(strings.ToLower(a))
	rb := []rune(strings.ToLower(b))

	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := 0; j <= len(rb); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min3(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

// ClosestMatch returns the candidate nearest to target within maxDistance,
// along with its distance. Ties keep the earliest candidate. The second
// return is false when nothing falls within tolerance.
func ClosestMatch(target string, candidates []string, maxDistance int) (string, int, bool) {
	best := ""
	bestDist := maxDistance + 1
	for _, c := range candidates {
		d := Levenshtein(target, c)
		if d < bestDist {
			best = c
			bestDist = d
			if d == 0 {
				break
			}
		}
	}
	if bestDist > maxDistance {
		return "", 0, false
	}
	return best, bestDist, true
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
