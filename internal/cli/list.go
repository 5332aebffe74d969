package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"stagewiki/internal/domain"
	"stagewiki/internal/i18n"
	"stagewiki/internal/ui/views"
)

var listFilter filterFlags

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the filtered glossary as plain text",
	Long:  "Loads every data source, applies the filters and prints the visible terms sorted by title.",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	addFilterFlags(listCmd, &listFilter)
}

func addFilterFlags(cmd *cobra.Command, f *filterFlags) {
	cmd.Flags().StringVar(&f.category, "category", "", "only terms of this category")
	cmd.Flags().StringVar(&f.subcategory, "subcategory", "", "only terms of this subcategory (needs --category)")
	cmd.Flags().StringVarP(&f.search, "search", "s", "", "free-text search in title, description and categories")
}

func runList(cmd *cobra.Command, args []string) error {
	state, err := listFilter.state()
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

	view := a.engine.ComputeView(terms, state)
	return writeList(cmd.OutOrStdout(), view, state, a.msgs)
}

// writeList prints one block per term followed by the count line
func writeList(w io.Writer, view []domain.Term, state domain.FilterState, msgs *i18n.Messages) error {
	if status := msgs.Status(state, len(view)); status != "" {
		if _, err := fmt.Fprintf(w, "%s\n\n", views.Sanitize(status)); err != nil {
			return err
		}
	}
	if len(view) == 0 {
		_, err := fmt.Fprintln(w, msgs.NoResults())
		return err
	}

	for _, term := range view {
		path := views.Sanitize(term.Category)
		if term.HasSubcategory() {
			path += " → " + views.Sanitize(term.Subcategory)
		}
		if _, err := fmt.Fprintf(w, "%s  [%s]\n", views.Sanitize(term.Title), path); err != nil {
			return err
		}
		if desc := views.Sanitize(term.Description); desc != "" {
			if _, err := fmt.Fprintf(w, "    %s\n", desc); err != nil {
				return err
			}
		}
	}
	_, err := fmt.Fprintf(w, "\n%s\n", msgs.Count(len(view)))
	return err
}
