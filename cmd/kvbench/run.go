package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"kvbench/internal/bench"
	"kvbench/internal/suite"
	"kvbench/internal/ui"
)

func newRunCmd() *cobra.Command {
	var label string
	var stream bool

	cmd := &cobra.Command{
		Use:   "run <suite-key>",
		Short: "Run a single benchmark suite non-interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			def, ok := suite.Default().Get(args[0])
			if !ok {
				return fmt.Errorf("unknown suite %q (see 'kvbench list')", args[0])
			}

			runner := newRunner()
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\n", ui.RunningStyle.Render(">>> Running: "+def.Name+"..."))

			if stream {
				res := runner.Stream(ctx, def, out, cmd.ErrOrStderr())
				if res.Status == bench.StatusCancelled {
					fmt.Fprintf(out, "\n%s\n", ui.ErrorStyle.Render("Test interrupted."))
					return nil
				}
				if res.Status == bench.StatusFailed {
					return res.Err
				}
				return nil
			}

			res := runner.Execute(ctx, def)
			switch res.Status {
			case bench.StatusFailed:
				return res.Err
			case bench.StatusCancelled:
				fmt.Fprintf(out, "\n%s\n", ui.ErrorStyle.Render("Test interrupted."))
				return nil
			}

			fmt.Fprintln(out, res.Stdout)
			if res.Stderr != "" {
				fmt.Fprintln(out, ui.DimStyle.Render(res.Stderr))
			}

			if label == "" {
				fmt.Fprintln(out, ui.DimStyle.Render("  [Skipped Saving]"))
				return nil
			}

			samples, err := bench.Parse(res.Stdout)
			if err != nil {
				return fmt.Errorf("parsing output: %w", err)
			}

			store := newStore()
			if _, err := store.Append(samples, def.Name, label); err != nil {
				if errors.Is(err, bench.ErrNoSamples) {
					fmt.Fprintln(out, ui.DimStyle.Render("  [Skipping Save] No valid data found in output."))
					return nil
				}
				return err
			}

			fmt.Fprintln(out, ui.SuccessStyle.Render(
				fmt.Sprintf("  ✔ Saved to %s (label: %q)", store.Path(), label)))
			return nil
		},
	}

	cmd.Flags().StringVar(&label, "label", "", "Persist parsed results under this label")
	cmd.Flags().BoolVar(&stream, "stream", false, "Forward output directly; skip parsing and saving")
	return cmd
}

func init() {
	rootCmd.AddCommand(newRunCmd())
}
