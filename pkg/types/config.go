// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds the HTTP settings for the effective date lookup.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "airac-notice/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`
}

// Link is a named URL rendered as a Markdown link in the notice.
type Link struct {
	Name string `json:"name" yaml:"name" mapstructure:"name"`
	URL  string `json:"url" yaml:"url" mapstructure:"url"`
}

// ScanConfig holds the settings that drive the region scan over extracted text.
type ScanConfig struct {
	// FIRs is the allowlist of region codes recognised on header lines,
	// including the ATC marker.
	FIRs []Region `json:"firs" yaml:"firs" mapstructure:"firs"`

	// ATCMarker is the header token whose section is suppressed.
	ATCMarker Region `json:"atc_marker" yaml:"atc_marker" mapstructure:"atc_marker"`

	// RegionPrefixes are the two-letter prefixes of region-like codes
	// (e.g. "LE", "GC").
	RegionPrefixes []string `json:"region_prefixes" yaml:"region_prefixes" mapstructure:"region_prefixes"`
}

// Allows reports whether r is in the FIR allowlist.
func (c ScanConfig) Allows(r Region) bool {
	for _, f := range c.FIRs {
		if f == r {
			return true
		}
	}
	return false
}

// DatesConfig holds settings for the effective-date lookup.
type DatesConfig struct {
	HTTPConfig `yaml:",inline" mapstructure:",squash"`

	// URL is the page holding the AIRAC cycle/date table.
	URL string `json:"dates_url" yaml:"dates_url" mapstructure:"dates_url"`

	// CycleColumn is the zero-based index of the cell holding the cycle
	// identifier in each table row (default 1).
	CycleColumn int `json:"cycle_column" yaml:"cycle_column" mapstructure:"cycle_column"`
}

// NoticeConfig groups every setting of a notice run.
type NoticeConfig struct {
	ScanConfig  `yaml:",inline" mapstructure:",squash"`
	DatesConfig `yaml:",inline" mapstructure:",squash"`

	// InputDir is where AIRAC_<cycle>.pdf is read from.
	InputDir string `json:"input_dir" yaml:"input_dir" mapstructure:"input_dir"`

	// OutputDir is where ciclo<cycle>.txt is written.
	OutputDir string `json:"output_dir" yaml:"output_dir" mapstructure:"output_dir"`

	// PDFTolerance is the distance in points under which glyphs are grouped
	// into the same row or word.
	PDFTolerance float64 `json:"pdf_tolerance" yaml:"pdf_tolerance" mapstructure:"pdf_tolerance"`

	// AmendmentPattern is the regular expression an amendment download URL
	// must match in full.
	AmendmentPattern string `json:"amdt_pattern" yaml:"amdt_pattern" mapstructure:"amdt_pattern"`

	// LegacyENR lists the links to the old enroute charts appended to every notice.
	LegacyENR []Link `json:"legacy_enr" yaml:"legacy_enr" mapstructure:"legacy_enr"`
}

const (
	DefaultDatesURL         = "https://www.nm.eurocontrol.int/RAD/common/airac_dates.html"
	DefaultAmendmentPattern = `https://aip\.enaire\.es/AIP/contenido_AMDT/LE_Amdt_A_\d{4}_\d{2}_en\.pdf`
	DefaultUserAgent        = "airac-notice/0.1"
	DefaultTimeout          = 30 * time.Second
	DefaultTolerance        = 2.0
	DefaultCycleColumn      = 1
)

// DefaultNoticeConfig returns the configuration used when no config file
// or flag overrides a value.
func DefaultNoticeConfig() NoticeConfig {
	return NoticeConfig{
		ScanConfig: ScanConfig{
			FIRs:           []Region{"LECB", "LECS", "LECM", "GCCC", "ATC"},
			ATCMarker:      "ATC",
			RegionPrefixes: []string{"LE", "GC"},
		},
		DatesConfig: DatesConfig{
			HTTPConfig: HTTPConfig{
				Timeout:   DefaultTimeout,
				UserAgent: DefaultUserAgent,
			},
			URL:         DefaultDatesURL,
			CycleColumn: DefaultCycleColumn,
		},
		InputDir:         ".",
		OutputDir:        ".",
		PDFTolerance:     DefaultTolerance,
		AmendmentPattern: DefaultAmendmentPattern,
		LegacyENR: []Link{
			{Name: "ENR 3.0", URL: "https://files.es.ivao.aero/FIR/AOC/AIRACS/2402_LE_ENR_3_0_en.pdf"},
			{Name: "ENR 3.1", URL: "https://files.es.ivao.aero/FIR/AOC/AIRACS/2402_LE_ENR_3_1_en.pdf"},
			{Name: "ENR 3.2", URL: "https://files.es.ivao.aero/FIR/AOC/AIRACS/2402_LE_ENR_3_2_en.pdf"},
		},
	}
}
