package main

import (
	"errors"
	"fmt"
	"slices"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"kvbench/internal/bench"
	"kvbench/internal/report"
	"kvbench/internal/ui"
)

// allLabel is the special target meaning "every non-baseline label".
const allLabel = "ALL"

// errSelectionAborted means the operator quit out of a label menu.
var errSelectionAborted = errors.New("selection aborted")

// runLabelMenu allows mocking the tea program in tests.
var runLabelMenu = func(m ui.LabelMenu) (ui.LabelMenu, error) {
	final, err := tea.NewProgram(m).Run()
	if err != nil {
		return m, err
	}
	return final.(ui.LabelMenu), nil
}

func newReportCmd() *cobra.Command {
	var baseline, target string
	var all, raw bool

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Compare labeled runs from the results table",
		Long: `Loads the persisted results table, groups rows by label, and renders a
markdown comparison of throughput and p50 latency between a baseline label
and one (or all) target labels. Without flags, labels are picked
interactively.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := newStore().Load()
			if err != nil {
				if errors.Is(err, bench.ErrNoTable) {
					return fmt.Errorf("nothing to report yet: %w", err)
				}
				return err
			}

			labels := report.UniqueLabels(rows)

			if baseline == "" {
				baseline, err = pickLabel("Select BASELINE (The Control Group)", labels, false)
				if err != nil {
					if errors.Is(err, errSelectionAborted) {
						return nil
					}
					return err
				}
			} else if !slices.Contains(labels, baseline) {
				return fmt.Errorf("no rows labeled %q (have: %v)", baseline, labels)
			}

			if all {
				target = allLabel
			}
			if target == "" {
				target, err = pickLabel(fmt.Sprintf("Select TARGET (Comparing against %s)", baseline), labels, true)
				if err != nil {
					if errors.Is(err, errSelectionAborted) {
						return nil
					}
					return err
				}
			} else if target != allLabel && !slices.Contains(labels, target) {
				return fmt.Errorf("no rows labeled %q (have: %v)", target, labels)
			}

			var md string
			if target == allLabel {
				md = report.RenderAll(rows, baseline)
			} else {
				md = report.Render(rows, baseline, target)
			}
			if md == "" {
				fmt.Fprintln(cmd.OutOrStdout(), ui.DimStyle.Render("No comparable rows for this pairing."))
				return nil
			}

			return renderReport(cmd, md, raw)
		},
	}

	cmd.Flags().StringVar(&baseline, "baseline", "", "Baseline label (the control group)")
	cmd.Flags().StringVar(&target, "target", "", "Target label to compare against the baseline")
	cmd.Flags().BoolVar(&all, "all", false, "Compare every other label against the baseline")
	cmd.Flags().BoolVar(&raw, "raw", false, "Print raw markdown instead of rendering for the terminal")
	return cmd
}

func pickLabel(title string, labels []string, includeAll bool) (string, error) {
	items := make([]ui.LabelItem, 0, len(labels)+1)
	for _, l := range labels {
		items = append(items, ui.LabelItem{Name: l})
	}
	if includeAll {
		items = append(items, ui.LabelItem{Name: allLabel, Desc: "Compare every other label against the baseline"})
	}

	m, err := runLabelMenu(ui.NewLabelMenu(title, items))
	if err != nil {
		return "", err
	}
	if m.Quitting || m.Selected == "" {
		return "", errSelectionAborted
	}
	return m.Selected, nil
}

func renderReport(cmd *cobra.Command, md string, raw bool) error {
	out := cmd.OutOrStdout()
	if !raw {
		renderer, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(100),
		)
		if err == nil {
			if rendered, rerr := renderer.Render(md); rerr == nil {
				fmt.Fprint(out, rendered)
				return nil
			}
		}
		// fall back to plain markdown if the renderer is unhappy
	}
	fmt.Fprintln(out, md)
	return nil
}

func init() {
	rootCmd.AddCommand(newReportCmd())
}
