package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"tably"
)

var (
	// Global flags
	formatName string
	columns    []string
	sortField  string
	sortOrder  string
	dateParts  string
	configPath string
	outputPath string
	verbose    bool

	// Logger
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "tably [file]",
	Short: "Render legacy list-API JSON as a table",
	Long: `tably reads list-style JSON in any of the legacy envelope shapes
({d: {results: [...]}}, {results: [...]}, {d: [...]}, or a bare array)
from a file or stdin and renders it as an HTML, text, or XLSX table.

Examples:
  tably orders.json
  tably orders.json -f text --columns Title,Status --sort Status
  curl -s $LIST_URL | tably -f html -o orders.html`,
	Args: cobra.MaximumNArgs(1),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE:          render,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func render(cmd *cobra.Command, args []string) error {
	input, err := readInput(args)
	if err != nil {
		return err
	}

	cfg := tably.Config{}
	if configPath != "" {
		cfg, err = tably.LoadConfig(configPath)
		if err != nil {
			return err
		}
	}

	t := cfg.Table(nil)
	t.JSON = input
	t.Logger = logger
	if len(columns) > 0 {
		t.IncludeHeaders = columns
	}
	if sortField != "" {
		t.SortBy = &tably.SortSpec{Field: sortField, Order: sortOrder}
	}
	if dateParts != "" {
		t.Dates = &tably.DateFormat{
			ShowDate: strings.Contains(dateParts, "date"),
			ShowTime: strings.Contains(dateParts, "time"),
		}
	}

	format, err := tably.ParseFormat(formatName)
	if err != nil {
		return err
	}

	out := io.Writer(os.Stdout)
	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		out = f
	}

	logger.Debug("rendering",
		zap.String("format", format.String()),
		zap.Int("input_bytes", len(input)))
	return t.Write(out, format)
}

func readInput(args []string) ([]byte, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return data, nil
}

func init() {
	rootCmd.Flags().StringVarP(&formatName, "format", "f", "html", "output format: html, text, or xlsx")
	rootCmd.Flags().StringSliceVarP(&columns, "columns", "c", nil, "columns to display, in order")
	rootCmd.Flags().StringVar(&sortField, "sort", "", "field to sort by")
	rootCmd.Flags().StringVar(&sortOrder, "order", "asc", "sort order: asc or desc")
	rootCmd.Flags().StringVar(&dateParts, "dates", "", "date display: date, time, or date,time")
	rootCmd.Flags().StringVar(&configPath, "config", "", "YAML render configuration file")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "output file (default stdout)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
