package commands

import (
	"fmt"
	"io"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/tsawler/cadcodec/internal/cli/config"
	"github.com/tsawler/cadcodec/model"
)

// NewInspectCommand creates the inspect command.
func NewInspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect FILE...",
		Short: "Summarize the entities and layers of drawings",
		Long: `Decode each file and print its entity count per kind, its layers in
table order, and the warnings raised while decoding.`,
		Example: `  cadcodec inspect plan.dxf`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.FromContext(cmd.Context())
			w := cmd.OutOrStdout()
			for i, input := range args {
				kinds, layers, warnings, err := converter(cfg, input).Summary()
				if err != nil {
					return fmt.Errorf("%s: %w", input, err)
				}
				if i > 0 {
					_, _ = fmt.Fprintln(w)
				}
				renderSummary(w, input, kinds, layers, warnings)
			}
			return nil
		},
	}
}

// renderSummary writes the tables for one file.
func renderSummary(w io.Writer, name string, kinds map[model.Kind]int, layers []string, warnings []model.Warning) {
	_, _ = fmt.Fprintln(w, name)

	order := make([]model.Kind, 0, len(kinds))
	total := 0
	for k, n := range kinds {
		order = append(order, k)
		total += n
	}
	sort.Slice(order, func(i, j int) bool { return order[i] < order[j] })

	kt := table.NewWriter()
	kt.SetOutputMirror(w)
	kt.SetStyle(table.StyleLight)
	kt.AppendHeader(table.Row{"Kind", "Count"})
	for _, k := range order {
		kt.AppendRow(table.Row{k.String(), kinds[k]})
	}
	kt.AppendFooter(table.Row{"Total", total})
	kt.Render()

	lt := table.NewWriter()
	lt.SetOutputMirror(w)
	lt.SetStyle(table.StyleLight)
	lt.AppendHeader(table.Row{"#", "Layer"})
	for i, l := range layers {
		lt.AppendRow(table.Row{i + 1, l})
	}
	lt.Render()

	if len(warnings) == 0 {
		return
	}
	wt := table.NewWriter()
	wt.SetOutputMirror(w)
	wt.SetStyle(table.StyleLight)
	wt.AppendHeader(table.Row{"Warning", "Entity", "Field", "Message"})
	for _, warn := range warnings {
		entity := "-"
		if warn.Entity >= 0 {
			entity = fmt.Sprint(warn.Entity)
		}
		wt.AppendRow(table.Row{warn.Kind.String(), entity, warn.Field, warn.Message})
	}
	wt.Render()
}
