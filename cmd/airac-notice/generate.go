// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"net/http"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/airac-tools/airac-notice/internal/airacdates"
	"github.com/airac-tools/airac-notice/internal/console"
	"github.com/airac-tools/airac-notice/internal/logging"
	"github.com/airac-tools/airac-notice/internal/notice"
	"github.com/airac-tools/airac-notice/internal/pdftext"
	"github.com/airac-tools/airac-notice/pkg/types"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Build ciclo<cycle>.txt from AIRAC_<cycle>.pdf",
	Long: `Generate extracts the amendment text from AIRAC_<cycle>.pdf, groups the
changes by FIR and writes the announcement to ciclo<cycle>.txt. The cycle
and the ENAIRE amendment link are asked for when not given as flags. The
effective date is looked up in the EUROCONTROL AIRAC table and asked for
when the lookup fails.`,
	RunE: runGenerate,
}

func init() {
	d := types.DefaultNoticeConfig()

	generateCmd.Flags().String("cycle", "", "AIRAC cycle (4 digits, e.g. 2501)")
	generateCmd.Flags().String("amdt", "", "ENAIRE amendment download link")
	generateCmd.Flags().String("wef", "", "effective date; skips the online lookup")
	generateCmd.Flags().String("input-dir", d.InputDir, "directory holding AIRAC_<cycle>.pdf")
	generateCmd.Flags().String("output-dir", d.OutputDir, "directory for ciclo<cycle>.txt")
	generateCmd.Flags().String("dates-url", d.URL, "page with the AIRAC cycle/date table")
	generateCmd.Flags().Duration("timeout", d.Timeout, "HTTP request timeout")
	generateCmd.Flags().Float64("pdf-tolerance", d.PDFTolerance, "glyph grouping tolerance in points")
	generateCmd.Flags().BoolP("verbose", "v", false, "log diagnostic details to stderr")

	for key, flag := range map[string]string{
		"input_dir":     "input-dir",
		"output_dir":    "output-dir",
		"dates_url":     "dates-url",
		"timeout":       "timeout",
		"pdf_tolerance": "pdf-tolerance",
	} {
		viper.BindPFlag(key, generateCmd.Flags().Lookup(flag))
	}

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(viper.GetViper())
	if err != nil {
		return err
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	log := logging.New(cmd.ErrOrStderr(), verbose)
	defer log.Sync()

	con := console.New(cmd.InOrStdin(), cmd.OutOrStdout(), colored(cmd))
	printBanner(con)

	dates := airacdates.NewClient(&http.Client{Timeout: cfg.Timeout}, cfg.DatesConfig)
	g, err := notice.NewGenerator(cfg, pdftext.New(cfg.PDFTolerance), dates, con, log)
	if err != nil {
		return err
	}

	cycle, _ := cmd.Flags().GetString("cycle")
	amdt, _ := cmd.Flags().GetString("amdt")
	wef, _ := cmd.Flags().GetString("wef")

	_, err = g.Run(cmd.Context(), notice.Request{
		Cycle:         cycle,
		AmendmentURL:  amdt,
		EffectiveDate: wef,
	})
	return err
}

func printBanner(con *console.Console) {
	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}
	con.Info("Generador de documento txt para el bot de Discord de IVAO España")
	con.Info("Este programa extrae la información del documento PDF de la enmienda AIRAC y la guarda en un archivo de texto.")
	con.Info("Asegúrate de tener en este mismo directorio (%s) el documento PDF de la enmienda AIRAC con el nombre 'AIRAC_XXXX.pdf'.\n", wd)
}
