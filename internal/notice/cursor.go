// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package notice

import (
	"github.com/airac-tools/airac-notice/internal/pattern"
	"github.com/airac-tools/airac-notice/pkg/types"
)

// CursorState is the scan state of the change-list builder.
type CursorState int

const (
	// Idle means no region header has been seen yet.
	Idle CursorState = iota
	// Suppressed means the scan is inside the ATC section.
	Suppressed
	// Active means content lines are collected for Cursor.Region.
	Active
)

func (s CursorState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Suppressed:
		return "suppressed"
	case Active:
		return "active"
	default:
		return "unknown"
	}
}

// Cursor tracks the region that content lines belong to.
type Cursor struct {
	State  CursorState
	Region types.Region
}

// Scanner drives a Cursor over extracted lines.
type Scanner struct {
	cfg types.ScanConfig
	pat *pattern.Set
}

// NewScanner builds a Scanner for the given allowlist and region prefixes.
func NewScanner(cfg types.ScanConfig) *Scanner {
	return &Scanner{
		cfg: cfg,
		pat: pattern.New(cfg.RegionPrefixes, string(cfg.ATCMarker)),
	}
}

// Patterns returns the predicates the scanner was built with.
func (s *Scanner) Patterns() *pattern.Set {
	return s.pat
}

// Next returns the cursor after reading line and whether line is a section
// header. A header is a line whose first region-like token is in the
// allowlist. A region code followed by a colon is an entry label, not a
// header; the ATC marker opens the ATC section either way.
// Non-header lines leave the cursor unchanged.
func (s *Scanner) Next(c Cursor, line string) (Cursor, bool) {
	token, colon, ok := s.pat.HeaderToken(line)
	if !ok || !s.cfg.Allows(types.Region(token)) {
		return c, false
	}
	if s.pat.IsATC(token) {
		return Cursor{State: Suppressed}, true
	}
	if colon {
		return c, false
	}
	return Cursor{State: Active, Region: types.Region(token)}, true
}

// Keep reports whether a non-header line read under c is a change entry.
func (s *Scanner) Keep(c Cursor, line string) bool {
	return c.State == Active && s.pat.HasRegionCode(line)
}
