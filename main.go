package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/locvowork/sheetpdf/internal/bootstrap"
	"github.com/locvowork/sheetpdf/internal/logger"
	"github.com/locvowork/sheetpdf/internal/service"
	"github.com/locvowork/sheetpdf/pkg/simpleexcel"
	"github.com/locvowork/sheetpdf/pkg/simplepdf"
	"github.com/spf13/cobra"
)

var (
	outputPath string
	layoutPath string
	pretty     bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sheetpdf",
		Short: "Preview spreadsheets as tables and export them to PDF",
		RunE:  serve,
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP service",
		Args:  cobra.NoArgs,
		RunE:  serve,
	}

	previewCmd := &cobra.Command{
		Use:   "preview [input.xlsx]",
		Short: "Print the detected table of the active sheet as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  preview,
	}
	previewCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	renderCmd := &cobra.Command{
		Use:   "render [input.xlsx]",
		Short: "Render the active sheet of a workbook to a PDF file",
		Args:  cobra.ExactArgs(1),
		RunE:  render,
	}
	renderCmd.Flags().StringVarP(&outputPath, "output", "o", "out.pdf", "Output PDF path")
	renderCmd.Flags().StringVar(&layoutPath, "layout", "", "YAML page layout file")

	inspectCmd := &cobra.Command{
		Use:   "inspect [file.pdf]",
		Short: "Print the page count and first page text of a PDF",
		Args:  cobra.ExactArgs(1),
		RunE:  inspect,
	}

	rootCmd.AddCommand(serveCmd, previewCmd, renderCmd, inspectCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serve(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	app := bootstrap.NewApp()
	if err := app.Initialize(ctx); err != nil {
		logger.ErrorLog(ctx, "Failed to initialize application: %v", err)
		return err
	}

	if err := app.Run(); err != nil {
		logger.ErrorLog(ctx, "Application failed: %v", err)
		return err
	}
	return nil
}

func preview(cmd *cobra.Command, args []string) error {
	sheet, err := simpleexcel.ReadActiveSheetFile(args[0])
	if err != nil {
		return err
	}
	table := service.TableFromSheet(sheet)

	enc := json.NewEncoder(cmd.OutOrStdout())
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(table)
}

func render(cmd *cobra.Command, args []string) error {
	sheet, err := simpleexcel.ReadActiveSheetFile(args[0])
	if err != nil {
		return err
	}
	table := service.TableFromSheet(sheet)
	if err := table.Validate(); err != nil {
		return fmt.Errorf("nothing to render in %s: %w", args[0], err)
	}

	layout := simplepdf.DefaultLayout()
	if layoutPath != "" {
		if layout, err = simplepdf.NewLayoutFromYamlFile(layoutPath); err != nil {
			return err
		}
	}

	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	res, err := simplepdf.NewRenderer(layout).Render(f, table.Headers, table.Rows)
	if err != nil {
		f.Close()
		os.Remove(outputPath)
		return fmt.Errorf("failed to render pdf: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d pages, %d rows)\n", outputPath, res.PageCount, len(table.Rows))
	return nil
}

func inspect(cmd *cobra.Command, args []string) error {
	info, err := simplepdf.InspectFile(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Pages: %d\n%s\n", info.PageCount, info.FirstPageText)
	return nil
}
