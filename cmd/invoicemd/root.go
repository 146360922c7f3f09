package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/invoicemd/invoicemd/constants"
	"github.com/invoicemd/invoicemd/internal/common"
	"github.com/invoicemd/invoicemd/internal/export"
	"github.com/invoicemd/invoicemd/internal/ocr"
	"github.com/invoicemd/invoicemd/internal/pdftext"
	"github.com/invoicemd/invoicemd/internal/pipeline"
)

type app struct {
	cfg    *common.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	var verbose bool

	root := &cobra.Command{
		Use:           "invoicemd",
		Short:         "Convert scanned invoice text into structured documents",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			a.logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
			slog.SetDefault(a.logger)

			a.cfg = common.LoadConfig()
			return a.cfg.Validate()
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log pipeline details to stderr")

	root.AddCommand(newConvertCmd(a))
	root.AddCommand(newExportCmd(a))
	return root
}

// readInput loads pipeline input from a path. PDFs go through the text
// layer extractor; anything else is read as UTF-8 text.
func readInput(path string) (ocr.RawText, error) {
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		return pdftext.Extract(path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return ocr.RawText{}, fmt.Errorf("read %s: %w", path, err)
	}
	return ocr.RawText{Text: string(data)}, nil
}

func newConvertCmd(a *app) *cobra.Command {
	var formatFlag string
	var outPath string

	cmd := &cobra.Command{
		Use:   "convert <file>...",
		Short: "Convert one or more invoices",
		Long: `Convert reads OCR text files or PDFs and writes the converted document.
A single input goes to stdout unless --out is given. With multiple inputs,
each document is written next to its input with the format's extension.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, ok := constants.ParseFormat(formatFlag)
			if !ok {
				return fmt.Errorf("unsupported format %q (choose one of: markdown, json, xml, yaml, html)", formatFlag)
			}
			if len(args) > 1 && outPath != "" {
				return fmt.Errorf("--out only applies to a single input")
			}

			p := pipeline.New(a.cfg.Pipeline, a.logger)
			for _, path := range args {
				raw, err := readInput(path)
				if err != nil {
					return err
				}
				out, inv, err := p.Convert(cmd.Context(), raw, format)
				if err != nil {
					return fmt.Errorf("convert %s: %w", path, err)
				}
				for _, w := range inv.Warnings {
					a.logger.Warn("document.warning", "input", path, "code", w.Code, "field", w.Field, "message", w.Message)
				}

				switch {
				case len(args) == 1 && outPath == "":
					fmt.Fprint(cmd.OutOrStdout(), out)
				case len(args) == 1:
					if err := os.WriteFile(outPath, []byte(out), 0o644); err != nil {
						return err
					}
				default:
					dst := strings.TrimSuffix(path, filepath.Ext(path)) + "." + extensionFor(format)
					if err := os.WriteFile(dst, []byte(out), 0o644); err != nil {
						return err
					}
					fmt.Fprintln(cmd.OutOrStdout(), dst)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&formatFlag, "format", "f", "markdown", "output format: markdown, json, xml, yaml, html")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (single input only, default stdout)")
	return cmd
}

func extensionFor(f constants.OutputFormat) string {
	if f == constants.FormatMarkdown {
		return "md"
	}
	return string(f)
}

func newExportCmd(a *app) *cobra.Command {
	var kind string
	var outPath string

	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Export an invoice's line items as CSV or XLSX",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if kind != "csv" && kind != "xlsx" {
				return fmt.Errorf("kind must be csv or xlsx")
			}

			raw, err := readInput(args[0])
			if err != nil {
				return err
			}
			inv, err := pipeline.New(a.cfg.Pipeline, a.logger).Run(cmd.Context(), raw)
			if err != nil {
				return err
			}

			svc := export.NewService(a.logger)
			var data []byte
			if kind == "csv" {
				data, err = svc.LineItemsCSV(inv)
			} else {
				data, err = svc.LineItemsXLSX(inv)
			}
			if err != nil {
				return err
			}

			if outPath == "" {
				outPath = strings.TrimSuffix(args[0], filepath.Ext(args[0])) + "." + kind
			}
			if err := os.WriteFile(outPath, data, 0o644); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), outPath)
			return nil
		},
	}
	cmd.Flags().StringVarP(&kind, "kind", "k", "xlsx", "export kind: csv or xlsx")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default next to input)")
	return cmd
}
