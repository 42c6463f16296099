// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package notice

import "github.com/airac-tools/airac-notice/internal/pattern"

// FormatLine turns one raw content line into a notice entry. The steps run
// in a fixed order: page references are parenthesised, the bullet is
// normalised, a colon is ensured after the bulleted region code and runs
// of spaces are collapsed. FormatLine is idempotent.
func FormatLine(p *pattern.Set, line string) string {
	line = pattern.WrapPageRefs(line)
	line = pattern.NormalizeBullet(line)
	line = p.EnsureRegionColon(line)
	return pattern.CollapseSpaces(line)
}
