package download

import (
	"sort"
	"strings"
	"unicode"

	"github.com/hbollon/go-edlib"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/vmunix/ondemand/internal/catalog"
)

// suggestThreshold is the minimum Jaro-Winkler similarity for a suggestion.
const suggestThreshold = 0.85

// foldTitle lowercases s and strips accents so "amelie" compares equal to "Amélie".
func foldTitle(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, strings.ToLower(s))
	return strings.Join(strings.Fields(result), " ")
}

// similarity scores fragment against the closest run of words in title.
func similarity(fragment, title string) float64 {
	best := float64(edlib.JaroWinklerSimilarity(fragment, title))

	words := strings.Fields(title)
	n := len(strings.Fields(fragment))
	if n == 0 || n > len(words) {
		return best
	}
	for i := 0; i+n <= len(words); i++ {
		window := strings.Join(words[i:i+n], " ")
		if score := float64(edlib.JaroWinklerSimilarity(fragment, window)); score > best {
			best = score
		}
	}
	return best
}

// Suggest returns up to limit titles that closely resemble fragment, best first.
func Suggest(fragment string, titles []catalog.Title, limit int) []string {
	folded := foldTitle(fragment)
	if folded == "" || limit <= 0 {
		return nil
	}

	type scored struct {
		title string
		score float64
	}
	var candidates []scored
	for _, t := range titles {
		score := similarity(folded, foldTitle(t.Title))
		if score >= suggestThreshold {
			candidates = append(candidates, scored{title: t.Title, score: score})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	suggestions := make([]string, len(candidates))
	for i, c := range candidates {
		suggestions[i] = c.title
	}
	return suggestions
}
