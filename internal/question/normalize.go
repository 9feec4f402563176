package question

import "strings"

// MatchesFilter reports whether an option matches a filter, using
// case-insensitive substring matching. An empty filter matches everything.
func MatchesFilter(option, filter string) bool {
	return strings.Contains(strings.ToLower(option), strings.ToLower(filter))
}

// FilterChoices returns the choices matching a filter, preserving order.
func FilterChoices(choices []string, filter string) []string {
	if filter == "" {
		return choices
	}
	filtered := make([]string, 0, len(choices))
	for _, choice := range choices {
		if MatchesFilter(choice, filter) {
			filtered = append(filtered, choice)
		}
	}
	return filtered
}
