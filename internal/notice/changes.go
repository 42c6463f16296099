// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package notice

import (
	"strings"

	"github.com/airac-tools/airac-notice/pkg/types"
)

// BuildChanges scans extracted text and groups formatted change entries by
// region in first-seen order. Header lines set the current region and are
// dropped; lines in the ATC section or before any header are dropped; the
// remaining lines are kept only when they carry a region-like code.
// Malformed input yields a sparse or empty list.
func (s *Scanner) BuildChanges(text string) types.ChangeList {
	var (
		list   types.ChangeList
		index  = make(map[types.Region]int)
		cursor Cursor
	)
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")

		next, header := s.Next(cursor, line)
		cursor = next
		if header || !s.Keep(cursor, line) {
			continue
		}

		i, ok := index[cursor.Region]
		if !ok {
			i = len(list)
			index[cursor.Region] = i
			list = append(list, types.RegionChanges{Region: cursor.Region})
		}
		list[i].Lines = append(list[i].Lines, FormatLine(s.pat, line))
	}
	return list
}

// ChangesText renders the grouped entries: one block per region headed by
// its label, blocks separated by a blank line.
func ChangesText(list types.ChangeList) string {
	blocks := make([]string, 0, len(list))
	for _, rc := range list {
		var b strings.Builder
		b.WriteString(RegionLabel(rc.Region))
		b.WriteByte('\n')
		b.WriteString(strings.Join(rc.Lines, "\n"))
		b.WriteByte('\n')
		blocks = append(blocks, b.String())
	}
	return strings.Join(blocks, "\n")
}

// RegionLabel is the bold heading of a region block.
func RegionLabel(r types.Region) string {
	return "**FIR de " + string(r) + "**"
}
