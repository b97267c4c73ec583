package repl

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// maxSuggestDistance is the largest edit distance offered as a suggestion.
const maxSuggestDistance = 2

// Suggest returns the registered command name closest to name, if one is
// within a small edit distance. Case is ignored unless the window is case
// sensitive. Ties go to the command registered first.
func Suggest(w *Window, name string) (string, bool) {
	if w == nil || name == "" {
		return "", false
	}

	needle := name
	if !w.caseSensitive {
		needle = strings.ToLower(name)
	}

	best := ""
	bestDist := -1
	for _, c := range w.commands {
		cand := c.name
		if !w.caseSensitive {
			cand = strings.ToLower(cand)
		}
		d := levenshtein.ComputeDistance(needle, cand)
		if bestDist < 0 || d < bestDist {
			best, bestDist = c.name, d
		}
	}

	if bestDist < 0 || bestDist > maxSuggestDistance || bestDist >= len([]rune(name)) {
		return "", false
	}
	return best, true
}
