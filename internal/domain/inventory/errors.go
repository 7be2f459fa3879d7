package inventory

import (
	"fmt"
	"strings"
)

// NotFoundError reports a park query that matched no location.
type NotFoundError struct {
	Query string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no park matches %q", e.Query)
}

// AmbiguousMatchError reports a park query that matched more than one
// location. Candidates holds up to ten of the matching names.
type AmbiguousMatchError struct {
	Query      string
	Candidates []string
}

func (e *AmbiguousMatchError) Error() string {
	return fmt.Sprintf("multiple parks match %q: %s", e.Query, strings.Join(e.Candidates, ", "))
}
