// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package notice turns the text of an AIRAC amendment PDF into the monthly
// amendment announcement: it validates the run metadata, groups change
// entries by FIR, renders the fixed template and writes it to disk.
package notice

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/airac-tools/airac-notice/internal/airacdates"
	"github.com/airac-tools/airac-notice/internal/httputil"
	"github.com/airac-tools/airac-notice/pkg/types"
)

const (
	promptCycle = "Introduce el número de ciclo AIRAC: "
	promptAmdt  = "Introduce el enlace de descarga de la enmienda de ENAIRE: "
	promptWEF   = "Introduce la fecha de entrada en vigor: "
)

// TextExtractor returns the text of every page of a PDF.
type TextExtractor interface {
	ExtractText(path string) (string, error)
}

// DateSource resolves the effective date of an AIRAC cycle.
type DateSource interface {
	EffectiveDate(ctx context.Context, cycle string) (string, error)
}

// Console is the operator's terminal.
type Console interface {
	// Ask prints prompt and returns the trimmed answer.
	Ask(prompt string) (string, error)
	// Info prints a plain status line.
	Info(format string, args ...any)
	// Success prints a highlighted success line.
	Success(format string, args ...any)
}

// Request carries the metadata known before the run starts. Empty fields
// are asked for on the console; an empty EffectiveDate is looked up first.
type Request struct {
	Cycle         string
	AmendmentURL  string
	EffectiveDate string
}

// Generator runs one notice generation.
type Generator struct {
	cfg       types.NoticeConfig
	scanner   *Scanner
	urls      *URLValidator
	extractor TextExtractor
	dates     DateSource
	console   Console
	log       *zap.Logger
}

// NewGenerator wires a Generator. A nil logger is replaced by a no-op one.
func NewGenerator(cfg types.NoticeConfig, extractor TextExtractor, dates DateSource, console Console, log *zap.Logger) (*Generator, error) {
	urls, err := NewURLValidator(cfg.AmendmentPattern)
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Generator{
		cfg:       cfg,
		scanner:   NewScanner(cfg.ScanConfig),
		urls:      urls,
		extractor: extractor,
		dates:     dates,
		console:   console,
		log:       log,
	}, nil
}

// Run executes the pipeline and returns the path of the written notice.
// Input and IO failures are returned as *FatalError; network failures
// while resolving the effective date fall back to a console prompt.
func (g *Generator) Run(ctx context.Context, req Request) (string, error) {
	cycle, err := g.value(req.Cycle, promptCycle)
	if err != nil {
		return "", err
	}
	if err := ValidateCycle(cycle); err != nil {
		return "", err
	}

	pdfPath := InputPath(g.cfg.InputDir, cycle)
	text, err := g.extractor.ExtractText(pdfPath)
	if err != nil {
		return "", &FatalError{
			Message: fmt.Sprintf("Error: El archivo %s no se ha encontrado. Asegúrate de que el archivo existe y está en el directorio actual.", pdfPath),
			Err:     fmt.Errorf("extracting %s: %w", pdfPath, err),
		}
	}
	g.log.Debug("extracted amendment text", zap.String("path", pdfPath), zap.Int("bytes", len(text)))

	amdt, err := g.value(req.AmendmentURL, promptAmdt)
	if err != nil {
		return "", err
	}
	if err := g.urls.Validate(amdt); err != nil {
		return "", err
	}

	wef := strings.TrimSpace(req.EffectiveDate)
	if wef == "" {
		if wef, err = g.effectiveDate(ctx, cycle); err != nil {
			return "", err
		}
	}

	changes := g.scanner.BuildChanges(text)
	for _, rc := range changes {
		g.log.Debug("region changes", zap.String("region", string(rc.Region)), zap.Int("entries", len(rc.Lines)))
	}
	if changes.Empty() {
		g.log.Warn("no change entries found", zap.String("path", pdfPath))
	}

	amendment := types.Amendment{Cycle: cycle, EffectiveDate: wef, DownloadURL: amdt}
	doc := Render(amendment, changes, g.cfg.LegacyENR)

	outPath := OutputPath(g.cfg.OutputDir, cycle)
	if err := WriteDocument(outPath, doc); err != nil {
		return "", &FatalError{
			Message: fmt.Sprintf("Error: No se ha podido escribir el archivo %s.", outPath),
			Err:     err,
		}
	}
	g.log.Info("notice written", zap.String("path", outPath), zap.Int("regions", len(changes)))
	g.console.Success("\nEl txt se ha generado correctamente en %s.", outPath)
	return outPath, nil
}

// effectiveDate looks the date up once and asks the operator when the
// lookup fails for any reason.
func (g *Generator) effectiveDate(ctx context.Context, cycle string) (string, error) {
	wef, err := g.dates.EffectiveDate(ctx, cycle)
	if err == nil {
		g.log.Debug("effective date resolved", zap.String("cycle", cycle), zap.String("wef", wef))
		return wef, nil
	}

	var statusErr *httputil.StatusError
	switch {
	case errors.As(err, &statusErr):
		g.console.Info("Request failed with status code: %d", statusErr.StatusCode)
		g.console.Info("Response content: %s", statusErr.Body)
	case errors.Is(err, airacdates.ErrCycleNotFound):
		g.console.Info("No se ha encontrado la fecha del ciclo %s.", cycle)
	default:
		g.console.Info("An error occurred: %v", err)
	}
	g.log.Warn("effective date lookup failed", zap.String("cycle", cycle), zap.Error(err))

	return g.ask(promptWEF)
}

// value returns given when non-empty and asks for it otherwise.
func (g *Generator) value(given, prompt string) (string, error) {
	if v := strings.TrimSpace(given); v != "" {
		return v, nil
	}
	return g.ask(prompt)
}

func (g *Generator) ask(prompt string) (string, error) {
	v, err := g.console.Ask(prompt)
	if err != nil {
		return "", &FatalError{
			Message: "Error: No se ha podido leer la entrada.",
			Err:     fmt.Errorf("reading answer to %q: %w", strings.TrimSpace(prompt), err),
		}
	}
	return strings.TrimSpace(v), nil
}
