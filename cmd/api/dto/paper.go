package dto

import "biorxiv-calendar/models"

// PaperDTO exposes one preprint record to API consumers. Field names follow
// the bioRxiv payload so the front-end can treat both shapes alike.
type PaperDTO struct {
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

// FromPaper maps a models.Paper to its DTO.
func FromPaper(p models.Paper) PaperDTO {
	return PaperDTO{
		DOI:                            p.DOI,
		Title:                          p.Title,
		Authors:                        p.Authors,
		AuthorCorresponding:            p.AuthorCorresponding,
		AuthorCorrespondingInstitution: p.AuthorCorrespondingInstitution,
		Date:                           p.Date,
		DatePublished:                  p.DatePublished,
		Abstract:                       p.Abstract,
		Category:                       p.Category,
		Version:                        p.Version,
		Type:                           p.Type,
		License:                        p.License,
		Server:                         p.Server,
	}
}
