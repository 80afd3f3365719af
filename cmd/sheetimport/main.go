// Package main provides the CLI entry point for sheetimport.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/UNO-SOFT/zlog/v2"
	"github.com/spf13/cobra"
	"github.com/ukaji3/sheetimport-go/pkg/sheetimport"
	"github.com/ukaji3/sheetimport-go/pkg/sheetimport/models"
	"github.com/ukaji3/sheetimport-go/pkg/sheetimport/output"
)

var (
	verbose zlog.VerboseVar
	logger  = zlog.NewLogger(zlog.MaybeConsoleHandler(&verbose, os.Stderr)).SLog()
)

var (
	preset      string
	configPath  string
	outputPath  string
	pretty      bool
	reportPath  string
	cleanPath   string
	trim        bool
	lang        string
	previewRows int
	charset     string
)

// errHasErrors signals an import that parsed but failed validation.
var errHasErrors = errors.New("import has validation errors")

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	cancel()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sheetimport [input.xlsx|input.csv]",
		Short: "Validate spreadsheet uploads",
		Long: `sheetimport parses an xlsx or csv file, validates it against an import
configuration and outputs the preview, issues and statistics as JSON.`,
		Args:         cobra.ExactArgs(1),
		RunE:         run,
		SilenceUsage: true,
	}

	rootCmd.Flags().StringVar(&preset, "preset", "", "Import preset: questions, roster, users")
	rootCmd.Flags().StringVar(&configPath, "config", "", "YAML import configuration")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.Flags().StringVar(&reportPath, "report", "", "Write the text report to this path (- for stdout)")
	rootCmd.Flags().StringVar(&cleanPath, "clean", "", "Write the cleaned workbook to this path")
	rootCmd.Flags().BoolVar(&trim, "trim", false, "Trim whitespace of text cells in the cleaned workbook")
	rootCmd.Flags().StringVar(&lang, "lang", "", "Message language (en, es)")
	rootCmd.Flags().IntVar(&previewRows, "preview-rows", 0, "Rows kept in each sheet preview (default 10)")
	rootCmd.Flags().StringVar(&charset, "charset", "", "CSV charset name (default: auto)")
	rootCmd.MarkFlagsMutuallyExclusive("preset", "config")

	fs := flag.NewFlagSet("sheetimport", flag.ContinueOnError)
	fs.Var(&verbose, "v", "logging verbosity")
	rootCmd.PersistentFlags().AddGoFlagSet(fs)

	return rootCmd
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if trim {
		cfg.TrimWhitespace = true
	}
	if lang != "" {
		cfg.Language = lang
	}

	opts := sheetimport.DefaultOptions()
	opts.Logger = logger
	if previewRows > 0 {
		opts.Parser.PreviewRows = previewRows
	}
	opts.Parser.Charset = charset

	res, err := sheetimport.ImportFile(cmd.Context(), inputPath, cfg, opts)
	if err != nil {
		logger.Error("import failed", "file", inputPath, "error", err)
		return fmt.Errorf("import failed: %w", err)
	}

	// Serialize to JSON
	jsonData, err := output.ToJSON(res, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	} else if reportPath != "-" {
		fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
	}

	if reportPath != "" {
		if err := writeReport(cmd, res); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}

	if cleanPath != "" && !res.HasErrors {
		data, err := res.ExportCleaned()
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}
		if err := os.WriteFile(cleanPath, data, 0644); err != nil {
			return fmt.Errorf("failed to write cleaned workbook: %w", err)
		}
	}

	if res.HasErrors {
		logger.Warn("import rejected", "file", inputPath, "errors", len(res.Issues.Errors()))
		return errHasErrors
	}
	return nil
}

func loadConfig() (models.ImportConfiguration, error) {
	if configPath != "" {
		fh, err := os.Open(configPath)
		if err != nil {
			return models.ImportConfiguration{}, err
		}
		defer fh.Close()
		return sheetimport.LoadConfig(fh)
	}
	if preset == "" {
		return models.ImportConfiguration{}, nil
	}
	cfg, ok := sheetimport.Preset(preset)
	if !ok {
		return models.ImportConfiguration{}, fmt.Errorf("invalid preset: %s (must be questions, roster, or users)", preset)
	}
	return cfg, nil
}

func writeReport(cmd *cobra.Command, res *sheetimport.Result) error {
	text := res.Report()
	if reportPath == "-" {
		_, err := fmt.Fprint(cmd.OutOrStdout(), text)
		return err
	}
	return os.WriteFile(reportPath, []byte(text), 0644)
}
