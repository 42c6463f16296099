// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package airacdates resolves the effective date of an AIRAC cycle from
// the published cycle/date table.
package airacdates

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/airac-tools/airac-notice/internal/httputil"
	"github.com/airac-tools/airac-notice/pkg/types"
)

// ErrCycleNotFound is returned when no table row carries the cycle.
var ErrCycleNotFound = errors.New("cycle not found in dates table")

// Lookup scans every table row of the page in r. A row matches when the
// cell at cycleColumn reads cycle; the text of the row's last cell is
// returned. Cell text is taken from the cell's first <strong> element when
// there is one.
func Lookup(r io.Reader, cycle string, cycleColumn int) (string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return "", fmt.Errorf("parsing dates page: %w", err)
	}

	var date string
	found := false
	doc.Find("tr").EachWithBreak(func(_ int, row *goquery.Selection) bool {
		cells := row.Find("td")
		if cells.Length() < 2 || cells.Length() <= cycleColumn {
			return true
		}
		if cellText(cells.Eq(cycleColumn)) != cycle {
			return true
		}
		date = cellText(cells.Last())
		found = true
		return false
	})

	if !found || date == "" {
		return "", fmt.Errorf("%w: %s", ErrCycleNotFound, cycle)
	}
	return date, nil
}

func cellText(cell *goquery.Selection) string {
	if strong := cell.Find("strong").First(); strong.Length() > 0 {
		return strings.TrimSpace(strong.Text())
	}
	return strings.TrimSpace(cell.Text())
}

// Client fetches the dates page and looks a cycle up in it.
type Client struct {
	http *http.Client
	cfg  types.DatesConfig
}

// NewClient returns a Client using hc for requests. A nil hc gets a client
// with the configured timeout.
func NewClient(hc *http.Client, cfg types.DatesConfig) *Client {
	if hc == nil {
		hc = &http.Client{Timeout: cfg.Timeout}
	}
	return &Client{http: hc, cfg: cfg}
}

// EffectiveDate makes one request to the dates page and returns the date
// of cycle. Errors are *httputil.StatusError for non-200 answers,
// ErrCycleNotFound when the table has no such cycle, or a wrapped
// transport error.
func (c *Client) EffectiveDate(ctx context.Context, cycle string) (string, error) {
	body, err := httputil.Get(ctx, c.http, c.cfg.URL, c.cfg.UserAgent)
	if err != nil {
		return "", err
	}
	return Lookup(bytes.NewReader(body), cycle, c.cfg.CycleColumn)
}
