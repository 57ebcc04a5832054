package models

// Paper represents a single preprint record as returned by the bioRxiv
// details API. Field names follow the API payload verbatim; records are
// immutable once fetched.
//
// Date and DatePublished are YYYY-MM-DD strings. Date (the record date)
// is the bucketing key for calendar cells.
type Paper struct {
	DOI                            string `json:"doi"`
	Title                          string `json:"title"`
	Authors                        string `json:"authors"`
	AuthorCorresponding            string `json:"author_corresponding"`
	AuthorCorrespondingInstitution string `json:"author_corresponding_institution"`
	Date                           string `json:"date"`
	DatePublished                  string `json:"date_published"`
	Abstract                       string `json:"abstract"`
	Category                       string `json:"category"`
	Version                        string `json:"version"`
	Type                           string `json:"type"`
	License                        string `json:"license"`
	Server                         string `json:"server"`
}
