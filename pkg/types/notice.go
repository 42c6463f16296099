// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Region is a flight information region code (e.g. "LECB") or the ATC
// section marker.
type Region string

// Amendment holds the metadata of one AIRAC amendment run.
type Amendment struct {
	// Cycle is the four-digit AIRAC cycle identifier (e.g. "2501").
	Cycle string `json:"cycle" yaml:"cycle"`

	// EffectiveDate is the WEF date as published (e.g. "23 JAN 2025").
	EffectiveDate string `json:"effective_date" yaml:"effective_date"`

	// DownloadURL links to the published amendment PDF.
	DownloadURL string `json:"download_url" yaml:"download_url"`
}

// RegionChanges holds the formatted change entries of one region in
// encounter order.
type RegionChanges struct {
	Region Region   `json:"region" yaml:"region"`
	Lines  []string `json:"lines" yaml:"lines"`
}

// ChangeList groups change entries by region in first-seen order.
type ChangeList []RegionChanges

// Empty reports whether the list holds no entries.
func (c ChangeList) Empty() bool {
	return len(c) == 0
}

// Lines returns the entries recorded for r, or nil.
func (c ChangeList) Lines(r Region) []string {
	for _, rc := range c {
		if rc.Region == r {
			return rc.Lines
		}
	}
	return nil
}
