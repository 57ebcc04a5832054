package biorxiv

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"biorxiv-calendar/config"
	"biorxiv-calendar/internal/httpclient"
	"biorxiv-calendar/internal/logger"
	"biorxiv-calendar/models"
)

const defaultMaxPapers = 2000

// Message is the status/metadata record carried in the messages array of a
// details API response. messages[0].total is the number of matching records
// across all pages.
type Message struct {
	Status   string `json:"status"`
	Interval string `json:"interval"`
	// The API returns cursor as a string or a number depending on context,
	// so it is kept raw and never relied on; the loop tracks its own offset.
	Cursor json.RawMessage `json:"cursor"`
	Count  int             `json:"count"`
	Total  int             `json:"total"`
}

// Response is one page of the details API: metadata plus up to 100 records.
type Response struct {
	Messages   []Message      `json:"messages"`
	Collection []models.Paper `json:"collection"`
}

// Client fetches preprint records from the bioRxiv details API.
type Client struct {
	base      *httpclient.BaseClient
	server    string
	maxPapers int
}

// New builds a Client from config.yaml (biorxiv section).
func New() *Client {
	cfg := config.GetConfig().BioRxiv

	var timeout time.Duration
	if cfg.RequestTimeoutSeconds > 0 {
		timeout = time.Duration(cfg.RequestTimeoutSeconds) * time.Second
	}

	return NewWithBase(cfg.BaseURL, cfg.Server, cfg.MaxPapers, timeout)
}

// NewWithBase builds a Client against an explicit endpoint. maxPapers <= 0
// falls back to the default cap of 2000.
func NewWithBase(baseURL, server string, maxPapers int, timeout time.Duration) *Client {
	if maxPapers <= 0 {
		maxPapers = defaultMaxPapers
	}
	return &Client{
		base:      httpclient.NewBaseClientWithConfig(baseURL, httpclient.Config{Timeout: timeout}),
		server:    server,
		maxPapers: maxPapers,
	}
}

// MonthRange returns the first and last calendar day of (year, month) as
// YYYY-MM-DD strings. month is zero-based (0 = January).
func MonthRange(year, month int) (string, string) {
	start := time.Date(year, time.Month(month+1), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	return start.Format("2006-01-02"), end.Format("2006-01-02")
}

// FetchPapersByMonth retrieves every record whose record date falls within
// (year, month), paginating with a cursor until the server-reported total is
// reached. month is zero-based.
//
// The page size is capped at 100 by the API, so a full month requires
// exhaustive pagination. Pages are fetched strictly one at a time.
//
// Failures are never propagated: on a transport error, a non-200 status or a
// malformed payload the loop stops and whatever was accumulated so far is
// returned. The cap guards against unbounded loops if the server misreports
// total.
func (c *Client) FetchPapersByMonth(ctx context.Context, year, month int) []models.Paper {
	startStr, endStr := MonthRange(year, month)

	var all []models.Paper
	cursor := 0
	total := 0

	for {
		relPath := fmt.Sprintf("/%s/%s/%s/%d/json", c.server, startStr, endStr, cursor)
		req, err := c.base.NewRequest(ctx, http.MethodGet, relPath, nil)
		if err != nil {
			logger.WarnWithFields("biorxiv: failed to build page request", logger.Fields{
				"interval": startStr + "/" + endStr,
				"cursor":   cursor,
				"error":    err.Error(),
			})
			break
		}

		resp, err := c.base.Do(req)
		if err != nil {
			logger.WarnWithFields("biorxiv: page request failed, keeping partial results", logger.Fields{
				"interval":    startStr + "/" + endStr,
				"cursor":      cursor,
				"accumulated": len(all),
				"error":       err.Error(),
			})
			break
		}

		if resp.StatusCode != http.StatusOK {
			body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
			resp.Body.Close()
			logger.WarnWithFields("biorxiv: unexpected status, keeping partial results", logger.Fields{
				"interval":    startStr + "/" + endStr,
				"cursor":      cursor,
				"status":      resp.StatusCode,
				"body":        string(body),
				"accumulated": len(all),
			})
			break
		}

		var page Response
		err = json.NewDecoder(resp.Body).Decode(&page)
		resp.Body.Close()
		if err != nil || page.Collection == nil {
			logger.WarnWithFields("biorxiv: malformed page payload, keeping partial results", logger.Fields{
				"interval":    startStr + "/" + endStr,
				"cursor":      cursor,
				"accumulated": len(all),
			})
			break
		}

		if len(page.Messages) > 0 {
			total = page.Messages[0].Total
		}

		all = append(all, page.Collection...)
		cursor += len(page.Collection)

		if len(all) >= c.maxPapers {
			logger.WarnWithFields("biorxiv: reached maximum paper cap", logger.Fields{
				"interval": startStr + "/" + endStr,
				"cap":      c.maxPapers,
			})
			break
		}

		// An empty page with cursor still below total would otherwise spin forever.
		if cursor >= total || len(page.Collection) == 0 {
			break
		}
	}

	return all
}
