package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"stagewiki/internal/eventbus"
	"stagewiki/internal/export"
)

var (
	exportFilter filterFlags
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the filtered glossary as a standalone HTML page",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "stagewiki.html", "output file (\"-\" for stdout)")
	addFilterFlags(exportCmd, &exportFilter)
}

func runExport(cmd *cobra.Command, args []string) error {
	state, err := exportFilter.state()
	if err != nil {
		return err
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	terms, report := a.load(cmd.Context())
	if failed := report.Failed(); failed > 0 {
		fmt.Fprintln(cmd.ErrOrStderr(), a.msgs.LoadFailures(failed, len(report.Results)))
	}

	categories := a.engine.MergeCategories(a.cfg.CategoryNames(), terms)
	subs := make(map[string][]string, len(categories))
	for _, c := range categories {
		subs[c] = a.engine.SubcategoriesOf(terms, c)
	}

	view := a.engine.ComputeView(terms, state)
	page := export.Page{
		Title:         a.cfg.Title,
		Terms:         view,
		State:         state,
		Categories:    categories,
		Subcategories: subs,
		Colors:        a.cfg.CategoryColors(),
		Accent:        a.cfg.UI.Accent,
		Messages:      a.msgs,
	}

	if err := writePage(cmd.OutOrStdout(), exportOutput, page); err != nil {
		a.logger.Error("export failed", zap.String("path", exportOutput), zap.Error(err))
		return err
	}

	a.logger.Info("page exported", zap.String("path", exportOutput), zap.Int("terms", len(view)))
	a.bus.Publish(eventbus.ExportFinishedEvent{Path: exportOutput, Terms: len(view)})
	if exportOutput != "-" {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s → %s\n", a.msgs.Count(len(view)), exportOutput)
	}
	return nil
}

func writePage(stdout io.Writer, path string, page export.Page) error {
	if path == "-" {
		return export.Render(stdout, page)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := export.Render(f, page); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
