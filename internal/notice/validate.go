// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package notice

import (
	"fmt"
	"regexp"
)

var cyclePattern = regexp.MustCompile(`^[0-9]{4}$`)

// ValidateCycle checks that cycle is exactly four ASCII digits.
func ValidateCycle(cycle string) error {
	if !cyclePattern.MatchString(cycle) {
		return &FatalError{
			Message: "Error: Número de ciclo AIRAC no válido.",
			Err:     fmt.Errorf("invalid AIRAC cycle %q: want 4 digits", cycle),
		}
	}
	return nil
}

// URLValidator checks amendment download links against a fixed pattern.
type URLValidator struct {
	pattern string
	re      *regexp.Regexp
}

// NewURLValidator compiles pattern so that it must match the whole URL.
func NewURLValidator(pattern string) (*URLValidator, error) {
	re, err := regexp.Compile(`^(?:` + pattern + `)$`)
	if err != nil {
		return nil, fmt.Errorf("compiling amendment URL pattern: %w", err)
	}
	return &URLValidator{pattern: pattern, re: re}, nil
}

// Validate returns a FatalError when url does not follow the pattern.
func (v *URLValidator) Validate(url string) error {
	if v.re.MatchString(url) {
		return nil
	}
	return &FatalError{
		Message: "Error: Enlace de descarga de la enmienda no válido. Asegúrate de que sigue el formato",
		Hint:    "https://aip.enaire.es/AIP/contenido_AMDT/LE_Amdt_A_XXXX_XX_en.pdf",
		Err:     fmt.Errorf("amendment URL %q does not match %s", url, v.pattern),
	}
}
