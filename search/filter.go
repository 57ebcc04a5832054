package search

import (
	"strings"

	"biorxiv-calendar/models"
)

// Filter returns the papers matching query with a case-insensitive substring
// match against title, abstract, authors or category; one matching field is
// enough. A blank query returns the input unchanged.
func Filter(papers []models.Paper, query string) []models.Paper {
	query = strings.TrimSpace(query)
	if query == "" {
		return papers
	}

	q := strings.ToLower(query)
	out := make([]models.Paper, 0, len(papers))
	for _, p := range papers {
		if strings.Contains(strings.ToLower(p.Title), q) ||
			strings.Contains(strings.ToLower(p.Abstract), q) ||
			strings.Contains(strings.ToLower(p.Authors), q) ||
			strings.Contains(strings.ToLower(p.Category), q) {
			out = append(out, p)
		}
	}
	return out
}
