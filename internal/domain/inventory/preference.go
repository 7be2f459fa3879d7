package inventory

import "strings"

// MatchPreference returns the index of the first preference token that
// matches the resource name, or false if none do. A token matches on
// case-insensitive trimmed equality, or when the digit-only extractions of
// token and name are both non-empty and equal, so a preference of "472"
// matches a resource named "Site 472".
func MatchPreference(resourceName string, preferred []string) (int, bool) {
	nameNorm := strings.ToLower(strings.TrimSpace(resourceName))
	nameDigits := digitsOf(resourceName)

	for i, pref := range preferred {
		prefNorm := strings.ToLower(strings.TrimSpace(pref))
		if prefNorm == nameNorm {
			return i, true
		}
		prefDigits := digitsOf(prefNorm)
		if prefDigits != "" && nameDigits != "" && prefDigits == nameDigits {
			return i, true
		}
	}
	return 0, false
}

// BestMatch pairs each available resource against the preference list and
// returns the pairing with the lowest preference index. Ties keep the first
// resource encountered in input order. Returns false when nothing matches
// or the preference list is empty.
func BestMatch(available []AvailableResource, preferred []string) (Match, bool) {
	var best Match
	found := false
	for _, r := range available {
		idx, ok := MatchPreference(r.Name, preferred)
		if !ok {
			continue
		}
		if !found || idx < best.PreferenceIndex {
			best = Match{PreferenceIndex: idx, Resource: r}
			found = true
		}
	}
	return best, found
}

func digitsOf(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
