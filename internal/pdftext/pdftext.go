// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pdftext extracts the text layer of a PDF as lines, grouping
// glyphs into rows and words by a fixed distance tolerance.
package pdftext

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
)

// DefaultTolerance is the row and word grouping distance in points.
const DefaultTolerance = 2.0

// Extractor reads text from PDF files with github.com/ledongthuc/pdf.
type Extractor struct {
	// Tolerance is the maximum baseline difference for glyphs on one row
	// and the maximum gap between glyphs of one word.
	Tolerance float64
}

// New returns an Extractor. A non-positive tolerance uses DefaultTolerance.
func New(tolerance float64) *Extractor {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	return &Extractor{Tolerance: tolerance}
}

// ExtractText returns the text of every page that has any, each page
// followed by a newline. Pages without text are skipped.
func (e *Extractor) ExtractText(path string) (text string, err error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening PDF: %w", err)
	}
	defer f.Close()

	// ledongthuc/pdf panics on some malformed content streams.
	defer func() {
		if rec := recover(); rec != nil {
			text, err = "", fmt.Errorf("reading PDF %s: %v", path, rec)
		}
	}()

	var b strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		pageText := PageText(p.Content().Text, e.Tolerance)
		if pageText == "" {
			continue
		}
		b.WriteString(pageText)
		b.WriteByte('\n')
	}
	return b.String(), nil
}

type row struct {
	y      float64
	glyphs []pdf.Text
}

// PageText lays glyphs out as lines: glyphs whose baselines differ by no
// more than tolerance share a row, rows run top to bottom and glyphs left
// to right. A space separates glyphs when the page has an explicit space
// between them or the horizontal gap exceeds tolerance.
func PageText(glyphs []pdf.Text, tolerance float64) string {
	rows := groupRows(glyphs, tolerance)
	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		if line := rowText(r.glyphs, tolerance); line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}

func groupRows(glyphs []pdf.Text, tolerance float64) []row {
	var rows []row
	for _, g := range glyphs {
		if g.S == "" {
			continue
		}
		placed := false
		for i := range rows {
			if math.Abs(rows[i].y-g.Y) <= tolerance {
				rows[i].glyphs = append(rows[i].glyphs, g)
				placed = true
				break
			}
		}
		if !placed {
			rows = append(rows, row{y: g.Y, glyphs: []pdf.Text{g}})
		}
	}

	// PDF user space grows upwards.
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].y > rows[j].y })
	for i := range rows {
		sort.SliceStable(rows[i].glyphs, func(a, b int) bool {
			return rows[i].glyphs[a].X < rows[i].glyphs[b].X
		})
	}
	return rows
}

func rowText(glyphs []pdf.Text, tolerance float64) string {
	var b strings.Builder
	var prevEnd float64
	space := false
	for _, g := range glyphs {
		if strings.TrimSpace(g.S) == "" {
			space = true
			prevEnd = g.X + g.W
			continue
		}
		if b.Len() > 0 && (space || g.X-prevEnd > tolerance) {
			b.WriteByte(' ')
		}
		b.WriteString(g.S)
		prevEnd = g.X + g.W
		space = false
	}
	return b.String()
}
