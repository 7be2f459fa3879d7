package inventory

import "strings"

const maxAmbiguousCandidates = 10

// ResolveLocation selects exactly one location for a free-text park query.
// An exact match on the normalized name wins (first such location if names
// repeat). Otherwise the query must be a substring of exactly one normalized
// name; zero matches is a *NotFoundError and several is an
// *AmbiguousMatchError.
func ResolveLocation(locations []Location, query string) (Location, error) {
	q := normalize(query)

	for _, l := range locations {
		if normalize(l.Name) == q {
			return l, nil
		}
	}

	var partial []Location
	for _, l := range locations {
		if strings.Contains(normalize(l.Name), q) {
			partial = append(partial, l)
		}
	}

	switch len(partial) {
	case 1:
		return partial[0], nil
	case 0:
		return Location{}, &NotFoundError{Query: query}
	default:
		names := make([]string, 0, maxAmbiguousCandidates)
		for _, l := range partial {
			if len(names) == maxAmbiguousCandidates {
				break
			}
			names = append(names, l.Name)
		}
		return Location{}, &AmbiguousMatchError{Query: query, Candidates: names}
	}
}

// normalize lowercases, trims, and collapses internal whitespace runs to a
// single space.
func normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
