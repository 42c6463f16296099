// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pattern holds the regular-expression predicates used to find
// structural markers in text extracted from amendment PDFs: page
// references, region codes, bullets and the ATC section marker.
package pattern

import (
	"regexp"
	"strings"
)

const (
	// OpenBullet is the hollow bullet the amendment PDF uses for entries.
	OpenBullet = "○"
	// Bullet is the solid bullet used in the published notice.
	Bullet = "●"
)

// pageRef matches "Pag 5", "pág. 12", "PÁG 3-4". Parenthesis checks are
// done by WrapPageRefs since RE2 has no lookaround.
var pageRef = regexp.MustCompile(`(?i)p[aá]g\.? \d+(?:-\d+)?`)

var spaces = regexp.MustCompile(` +`)

// Set is a compiled group of predicates for one set of region prefixes
// and ATC marker.
type Set struct {
	region       *regexp.Regexp // region-like code anywhere
	header       *regexp.Regexp // region-like code or ATC marker
	bulletRegion *regexp.Regexp // bullet, spaces, region-like code
	atc          string
}

// New compiles a Set. prefixes are two-letter code prefixes such as "LE";
// atc is the literal marker of the ATC section.
func New(prefixes []string, atc string) *Set {
	alts := make([]string, len(prefixes))
	for i, p := range prefixes {
		alts[i] = regexp.QuoteMeta(p) + ".."
	}
	code := strings.Join(alts, "|")
	if code == "" {
		// No prefixes: match nothing.
		code = `[^\x00-\x{10FFFF}]`
	}

	header := code
	if atc != "" {
		header += "|" + regexp.QuoteMeta(atc)
	}

	return &Set{
		region:       regexp.MustCompile(`(?:` + code + `)`),
		header:       regexp.MustCompile(`(?:` + header + `)`),
		bulletRegion: regexp.MustCompile(Bullet + ` +(?:` + code + `)`),
		atc:          atc,
	}
}

// HasRegionCode reports whether line contains a region-like code.
func (s *Set) HasRegionCode(line string) bool {
	return s.region.MatchString(line)
}

// HeaderToken returns the first region-like code or ATC marker in line and
// whether the character after it is a colon. ok is false when the line has
// no such token.
func (s *Set) HeaderToken(line string) (token string, colon bool, ok bool) {
	loc := s.header.FindStringIndex(line)
	if loc == nil {
		return "", false, false
	}
	return line[loc[0]:loc[1]], strings.HasPrefix(line[loc[1]:], ":"), true
}

// IsATC reports whether token is the ATC marker.
func (s *Set) IsATC(token string) bool {
	return s.atc != "" && token == s.atc
}

// EnsureRegionColon inserts a colon after every bullet-prefixed region code
// that is not already followed by one.
func (s *Set) EnsureRegionColon(line string) string {
	locs := s.bulletRegion.FindAllStringIndex(line, -1)
	if locs == nil {
		return line
	}
	var b strings.Builder
	last := 0
	for _, loc := range locs {
		b.WriteString(line[last:loc[1]])
		if !strings.HasPrefix(line[loc[1]:], ":") {
			b.WriteByte(':')
		}
		last = loc[1]
	}
	b.WriteString(line[last:])
	return b.String()
}

// WrapPageRefs wraps page references in parentheses unless the reference
// is already preceded by "(" or followed by ")".
func WrapPageRefs(line string) string {
	locs := pageRef.FindAllStringIndex(line, -1)
	if locs == nil {
		return line
	}
	var b strings.Builder
	last := 0
	for _, loc := range locs {
		start, end := loc[0], loc[1]
		b.WriteString(line[last:start])
		if strings.HasSuffix(line[:start], "(") || strings.HasPrefix(line[end:], ")") {
			b.WriteString(line[start:end])
		} else {
			b.WriteString("(" + line[start:end] + ")")
		}
		last = end
	}
	b.WriteString(line[last:])
	return b.String()
}

// HasPageRef reports whether line contains a page reference.
func HasPageRef(line string) bool {
	return pageRef.MatchString(line)
}

// NormalizeBullet swaps hollow bullets for a tab and solid bullet. A line
// without a hollow bullet gets a leading tab, solid bullet and space unless
// it already has a solid bullet.
func NormalizeBullet(line string) string {
	if strings.Contains(line, OpenBullet) {
		return strings.ReplaceAll(line, OpenBullet, "\t"+Bullet)
	}
	if strings.Contains(line, Bullet) {
		return line
	}
	return "\t" + Bullet + " " + line
}

// CollapseSpaces replaces runs of spaces with a single space.
func CollapseSpaces(line string) string {
	return spaces.ReplaceAllString(line, " ")
}
