package periodic

import (
	"strconv"
	"strings"
)

// Search finds elements matching a free-form query. A numeric query matches
// the atomic number exactly; otherwise the query matches the symbol exactly
// (case-insensitive) or the name or category as a substring. An empty query
// matches nothing.
func Search(query string) []Element {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	if n, err := strconv.Atoi(q); err == nil {
		if e := ByNumber(n); e != nil {
			return []Element{*e}
		}
		return nil
	}

	var hits []Element
	for _, e := range Elements {
		switch {
		case strings.ToLower(e.Symbol) == q:
			hits = append(hits, e)
		case strings.Contains(strings.ToLower(e.Name), q):
			hits = append(hits, e)
		case strings.Contains(string(e.Category), q):
			hits = append(hits, e)
		}
	}
	return hits
}
