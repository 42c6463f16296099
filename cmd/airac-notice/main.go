// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the airac-notice CLI, which turns an
// ENAIRE AIRAC amendment PDF into the monthly amendment announcement.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/airac-tools/airac-notice/internal/console"
	"github.com/airac-tools/airac-notice/internal/notice"
	"github.com/airac-tools/airac-notice/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the airac-notice CLI.
var rootCmd = &cobra.Command{
	Use:   "airac-notice",
	Short: "Generate the monthly AIRAC amendment announcement",
	Long: `airac-notice reads the amendment PDF of an AIRAC cycle (AIRAC_<cycle>.pdf),
groups its changes by FIR, looks up the effective date of the cycle and
writes the announcement text to ciclo<cycle>.txt, ready to be posted.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./airac-notice.yaml or ~/.config/airac-notice/airac-notice.yaml)")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable colored output")
}

func initConfig() {
	setDefaults(viper.GetViper())

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("airac-notice")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "airac-notice"))
		}
	}

	viper.SetEnvPrefix("AIRAC_NOTICE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// setDefaults registers every configuration key with its default value.
func setDefaults(v *viper.Viper) {
	d := types.DefaultNoticeConfig()

	firs := make([]string, len(d.FIRs))
	for i, f := range d.FIRs {
		firs[i] = string(f)
	}
	links := make([]map[string]any, len(d.LegacyENR))
	for i, l := range d.LegacyENR {
		links[i] = map[string]any{"name": l.Name, "url": l.URL}
	}

	v.SetDefault("firs", firs)
	v.SetDefault("atc_marker", string(d.ATCMarker))
	v.SetDefault("region_prefixes", d.RegionPrefixes)
	v.SetDefault("input_dir", d.InputDir)
	v.SetDefault("output_dir", d.OutputDir)
	v.SetDefault("pdf_tolerance", d.PDFTolerance)
	v.SetDefault("dates_url", d.URL)
	v.SetDefault("cycle_column", d.CycleColumn)
	v.SetDefault("amdt_pattern", d.AmendmentPattern)
	v.SetDefault("legacy_enr", links)
	v.SetDefault("timeout", d.Timeout)
	v.SetDefault("user_agent", d.UserAgent)
}

// loadConfig decodes the effective configuration held by v.
func loadConfig(v *viper.Viper) (types.NoticeConfig, error) {
	var cfg types.NoticeConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding configuration: %w", err)
	}
	return cfg, nil
}

// colored reports whether console output should carry color codes.
func colored(cmd *cobra.Command) bool {
	noColor, _ := cmd.Root().PersistentFlags().GetBool("no-color")
	return !noColor && !color.NoColor
}

// reportError prints a failed run to out, fatal operator errors with their
// hint and anything else prefixed with "Error:".
func reportError(out io.Writer, err error, colored bool) {
	con := console.New(strings.NewReader(""), out, colored)
	if fe, ok := notice.AsFatal(err); ok {
		con.Error(fe.Message, fe.Hint)
		return
	}
	con.Error("Error: "+err.Error(), "")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		reportError(os.Stdout, err, colored(rootCmd))
		os.Exit(1)
	}
}
