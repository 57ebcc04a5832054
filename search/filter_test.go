package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"biorxiv-calendar/models"
	"biorxiv-calendar/search"
)

var papers = []models.Paper{
	{
		DOI:      "10.1101/2026.09.01.000001",
		Title:    "Single-cell atlas of the zebrafish brain",
		Abstract: "We profile neuronal transcriptomes across development.",
		Authors:  "Tanaka, H.; Muller, K.",
		Category: "neuroscience",
	},
	{
		DOI:      "10.1101/2026.09.02.000002",
		Title:    "CRISPR screening in organoids",
		Abstract: "A genome-wide knockout screen identifies growth regulators.",
		Authors:  "Okafor, C.; Lindqvist, A.",
		Category: "genetics",
	},
	{
		DOI:      "10.1101/2026.09.03.000003",
		Title:    "Protein folding dynamics under crowding",
		Abstract: "Molecular crowding alters folding pathways of model proteins.",
		Authors:  "Muller, K.",
		Category: "biophysics",
	},
}

func TestFilterBlankQueryReturnsInputUnchanged(t *testing.T) {
	assert.Equal(t, papers, search.Filter(papers, ""))
	assert.Equal(t, papers, search.Filter(papers, "   "))
}

func TestFilterNoMatch(t *testing.T) {
	assert.Empty(t, search.Filter(papers, "XQZ-no-match"))
}

func TestFilterMatchesAuthorCaseInsensitively(t *testing.T) {
	got := search.Filter(papers, "MULLER")
	assert.Len(t, got, 2)
	assert.Equal(t, papers[0].DOI, got[0].DOI)
	assert.Equal(t, papers[2].DOI, got[1].DOI)
}

func TestFilterMatchesAnySingleField(t *testing.T) {
	// title only
	assert.Len(t, search.Filter(papers, "crispr"), 1)
	// abstract only
	assert.Len(t, search.Filter(papers, "knockout"), 1)
	// category only
	assert.Len(t, search.Filter(papers, "biophysics"), 1)
}
