// Package main provides the CLI entry point for sheetgen.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ukaji3/sheetgen-go/pkg/sheetgen"
	"github.com/ukaji3/sheetgen-go/pkg/sheetgen/config"
	"github.com/ukaji3/sheetgen-go/pkg/sheetgen/logging"
	"github.com/ukaji3/sheetgen-go/pkg/sheetgen/output"
)

var (
	configPath string
	logLevel   string
	multiSheet bool
	reportPath string
	dump       bool
	strict     bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sheetgen",
		Short: "Generate Go record types and JSON data from Excel sheets",
		Long: `sheetgen reads every workbook in the configured directory, interprets
the key/type/description header rows of each sheet and writes a Go record
type with a loader plus a JSON data document per sheet.`,
		Args:          cobra.NoArgs,
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultPath, "Configuration file (created with defaults when missing)")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "info", "Console log level: debug, info, warn, error")
	rootCmd.Flags().BoolVar(&multiSheet, "multi-sheet", false, "Process every sheet (overrides allowMultipleSheets)")
	rootCmd.Flags().StringVar(&reportPath, "report", "", "Write a YAML batch report to this path")
	rootCmd.Flags().BoolVar(&dump, "dump", false, "Dump resolved schemas to stderr")
	rootCmd.Flags().BoolVar(&strict, "strict", false, "Exit with status 1 when any file failed")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "sheetgen:", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("multi-sheet") {
		cfg.AllowMultipleSheets = multiSheet
	}

	base, err := cfg.BaseDir()
	if err != nil {
		return err
	}
	if err := cfg.ResolveDirs(base); err != nil {
		return err
	}

	logger, closer, err := logging.Setup(os.Stderr, logLevel, cfg.LogDir, time.Now())
	if err != nil {
		return err
	}
	defer closer.Close()

	if cfg.Created {
		logger.Info("configuration file created with defaults", "path", configPath)
	}

	opts := sheetgen.Options{
		InputDir:     cfg.ExcelDir,
		LoaderDir:    cfg.LoaderDir,
		JSONDir:      cfg.JSONDir,
		EnumFileName: cfg.EnumFileName,
		MultiSheet:   cfg.AllowMultipleSheets,
		Source: output.SourceOptions{
			PackageName:   cfg.PackageName,
			UseResources:  cfg.UseResources,
			ResourcesPath: cfg.ResourcesInternalPath,
		},
		Logger: logger,
	}
	if dump {
		opts.Dump = os.Stderr
	}

	report, err := sheetgen.Run(opts)
	if err != nil {
		return err
	}

	printSummary(cmd.OutOrStdout(), report.Total, report.Succeeded, report.Failed, report.Skipped)

	if reportPath != "" {
		if err := sheetgen.WriteReport(reportPath, report); err != nil {
			return err
		}
	}

	if strict && report.Failed > 0 {
		return fmt.Errorf("%d file(s) failed", report.Failed)
	}
	return nil
}

func printSummary(w io.Writer, total, succeeded, failed, skipped int) {
	fmt.Fprintf(w, "Total files: %d\n", total)
	fmt.Fprintf(w, "Successfully processed files: %d\n", succeeded)
	fmt.Fprintf(w, "Files with errors: %d\n", failed)
	fmt.Fprintf(w, "Skipped files: %d\n", skipped)
}
