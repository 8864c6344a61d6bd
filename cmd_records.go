package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/kjcma/portfolio/internal/content"
	"github.com/kjcma/portfolio/internal/portfolio"
)

type recordsFlags struct {
	page   string
	tab    string
	format string
}

func newRecordsCmd() *cobra.Command {
	var flags recordsFlags
	cmd := &cobra.Command{
		Use:   "records",
		Short: "Print the records a page shows under a tab",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRecords(cmd.OutOrStdout(), flags)
		},
	}

	f := cmd.Flags()
	f.StringVar(&flags.page, "page", "/", "Page route: /, /1 or /palash")
	f.StringVar(&flags.tab, "tab", string(portfolio.TabAll), "Tab to filter by")
	f.StringVar(&flags.format, "format", "table", "Output format: table or yaml")
	return cmd
}

func runRecords(out io.Writer, flags recordsFlags) error {
	if flags.format != "table" && flags.format != "yaml" {
		return fmt.Errorf("unknown format %q (want table or yaml)", flags.format)
	}

	page, err := content.MustSite().Lookup(flags.page)
	if err != nil {
		return err
	}

	state, err := page.Policy.Reduce(portfolio.NewFilterState(), portfolio.SelectTab{Tab: portfolio.ParseTab(flags.tab)})
	if err != nil {
		return fmt.Errorf("%w (tabs on %s: %s)", err, page.Route, joinTabs(page.Policy.Keys()))
	}
	records := page.Filter(state.Selected)

	if flags.format == "yaml" {
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(records); err != nil {
			return err
		}
		return enc.Close()
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCATEGORY\tTITLE\tTAGS")
	for _, r := range records {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", r.ID, r.Category, r.Title, strings.Join(r.Tags, ", "))
	}
	return w.Flush()
}

func newPagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pages",
		Short: "List the pages and their tabs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			site := content.MustSite()

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ROUTE\tBRAND\tTABS")
			for _, page := range site.Pages() {
				records := page.Records()
				tabs := lo.Map(page.Policy.Tabs(), func(t portfolio.TabSpec, _ int) string {
					return fmt.Sprintf("%s(%d)", t.Key, page.Policy.Count(records, t.Key))
				})
				brand := page.Profile.Brand + "." + page.Profile.BrandSuffix
				fmt.Fprintf(w, "%s\t%s\t%s\n", page.Route, brand, strings.Join(tabs, " "))
			}
			return w.Flush()
		},
	}
}

func joinTabs(tabs []portfolio.Tab) string {
	return strings.Join(lo.Map(tabs, func(t portfolio.Tab, _ int) string { return string(t) }), ", ")
}
