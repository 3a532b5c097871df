package scoring

import "strings"

// fold case-folds a string for matching. The dictionary mixes German and
// English terms, so Unicode-aware lowering matters (ä, ö, ü survive intact).
func fold(s string) string {
	return strings.ToLower(s)
}

// contains reports whether the folded haystack contains the folded needle
func contains(haystack, needle string) bool {
	return strings.Contains(haystack, needle)
}

// foldAll folds a list of tokens once up front
func foldAll(tokens []string) []string {
	folded := make([]string, len(tokens))
	for i, t := range tokens {
		folded[i] = fold(t)
	}
	return folded
}

// MatchingKeywords returns the dictionary keywords contained in the
// description, in no particular order. Used by reinforcement to decide
// which weights to bump.
func MatchingKeywords(description string, weights Weights) []string {
	desc := fold(description)

	var matched []string
	for keyword := range weights {
		if contains(desc, fold(keyword)) {
			matched = append(matched, keyword)
		}
	}
	return matched
}
