package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"kvbench/internal/bench"
	"kvbench/internal/config"
	"kvbench/internal/suite"
	"kvbench/internal/ui"
)

// askOne allows mocking survey prompts in tests.
var askOne = survey.AskOne

// console is the interactive menu loop around the runner and store. All
// operator input goes through survey so a single reader owns stdin.
type console struct {
	catalog *suite.Catalog
	runner  *bench.Runner
	store   *bench.Store
	out     io.Writer
	delay   time.Duration
}

func runConsole(cmd *cobra.Command) error {
	c := &console{
		catalog: suite.Default(),
		runner:  newRunner(),
		store:   newStore(),
		out:     cmd.OutOrStdout(),
		delay:   time.Duration(config.BatchDelaySeconds()) * time.Second,
	}
	return c.loop()
}

// loop redraws the menu until the operator quits. A failed run never exits
// the loop; only "q" (or interrupted/closed stdin) does.
func (c *console) loop() error {
	for {
		c.clear()
		c.printMenu()

		var line string
		if err := askOne(&survey.Input{Message: "Select >"}, &line); err != nil {
			return nil
		}

		switch choice := strings.ToLower(strings.TrimSpace(line)); choice {
		case "q":
			return nil
		case "a":
			c.runBatch()
		default:
			if def, ok := c.catalog.Get(choice); ok {
				c.runSingle(def, nil)
				c.pause("Press Enter to continue...")
			}
			// anything else: silently redraw
		}
	}
}

func (c *console) clear() {
	termenv.NewOutput(c.out).ClearScreen()
}

func (c *console) printMenu() {
	fmt.Fprintln(c.out, ui.HeaderStyle.Render("  KVBENCH BENCHMARK SUITE  "))
	for _, def := range c.catalog.All() {
		fmt.Fprintf(c.out, "[%s] %s\n", ui.KeyStyle.Render(def.Key), ui.TitleStyle.Render(def.Name))
		fmt.Fprintf(c.out, "    └── %s\n", ui.DescStyle.Render(def.Desc))
	}
	fmt.Fprintln(c.out, strings.Repeat("-", 40))
	fmt.Fprintf(c.out, "[%s] %s\n", ui.AccentKeyStyle.Render("a"), ui.TitleStyle.Render("Run ALL Tests"))
	fmt.Fprintln(c.out, "[q] Quit")
}

// runSingle executes one suite. batchLabel non-nil means we are inside a
// batch: use it as-is (even when empty) instead of prompting.
func (c *console) runSingle(def suite.Definition, batchLabel *string) bench.Status {
	fmt.Fprintf(c.out, "\n%s\n", ui.RunningStyle.Render(">>> Running: "+def.Name+"..."))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	res := c.runner.Execute(ctx, def)
	switch res.Status {
	case bench.StatusFailed:
		if errors.Is(res.Err, bench.ErrExecNotFound) {
			fmt.Fprintf(c.out, "%s\n", ui.ErrorStyle.Render(
				fmt.Sprintf("Cannot run %q - is it installed and on your PATH?", c.runner.Executable)))
		} else {
			fmt.Fprintf(c.out, "%s\n", ui.ErrorStyle.Render("Run failed: "+res.Err.Error()))
		}
		return res.Status
	case bench.StatusCancelled:
		fmt.Fprintf(c.out, "\n%s\n", ui.ErrorStyle.Render("Test interrupted."))
		return res.Status
	}

	fmt.Fprintln(c.out, res.Stdout)
	if res.Stderr != "" {
		fmt.Fprintln(c.out, ui.DimStyle.Render(res.Stderr))
	}
	if res.Err != nil {
		fmt.Fprintln(c.out, ui.DimStyle.Render("  (benchmark exited with an error: "+res.Err.Error()+")"))
	}

	var label string
	if batchLabel != nil {
		label = *batchLabel
	} else {
		fmt.Fprintln(c.out, strings.Repeat("-", 30))
		prompt := &survey.Input{Message: "Save results? Enter label (or press Enter to skip):"}
		if err := askOne(prompt, &label); err != nil {
			if errors.Is(err, terminal.InterruptErr) {
				return bench.StatusCancelled
			}
			// unreadable prompt (e.g. no tty): fall through and skip saving
		}
		label = strings.TrimSpace(label)
	}

	if label == "" {
		fmt.Fprintln(c.out, ui.DimStyle.Render("  [Skipped Saving]"))
		return bench.StatusCompleted
	}

	c.save(def.Name, res.Stdout, label)
	return bench.StatusCompleted
}

func (c *console) save(suiteName, output, label string) {
	samples, err := bench.Parse(output)
	if err != nil {
		fmt.Fprintln(c.out, ui.ErrorStyle.Render("  Could not parse output: "+err.Error()))
		return
	}

	_, err = c.store.Append(samples, suiteName, label)
	switch {
	case errors.Is(err, bench.ErrNoSamples):
		fmt.Fprintln(c.out, ui.DimStyle.Render("  [Skipping Save] No valid data found in output."))
	case err != nil:
		fmt.Fprintln(c.out, ui.ErrorStyle.Render("  Save failed: "+err.Error()))
	default:
		fmt.Fprintln(c.out, ui.SuccessStyle.Render(
			fmt.Sprintf("  ✔ Saved to %s (label: %q)", c.store.Path(), label)))
	}
}

// runBatch executes every suite in key order under one shared label. Any
// cancellation (or a missing executable) aborts the remaining queue.
func (c *console) runBatch() {
	fmt.Fprintf(c.out, "\n%s\n", ui.RunningStyle.Render(">>> BATCH MODE: Running All Tests"))
	fmt.Fprintln(c.out, "This will run every test suite sequentially.")

	var label string
	prompt := &survey.Input{Message: "Enter label for this entire batch (or press Enter to skip saving):"}
	if err := askOne(prompt, &label); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			fmt.Fprintln(c.out, "\nBatch run aborted.")
			return
		}
	}
	label = strings.TrimSpace(label)

	for _, def := range c.catalog.All() {
		if st := c.runSingle(def, &label); st != bench.StatusCompleted {
			fmt.Fprintln(c.out, "\nBatch run aborted.")
			return
		}
		// small pause between tests so it doesn't look like a glitch
		time.Sleep(c.delay)
	}

	fmt.Fprintf(c.out, "\n%s\n", ui.SuccessStyle.Render("✔ Batch run complete."))
	c.pause("Press Enter to return to menu...")
}

func (c *console) pause(msg string) {
	var discard string
	_ = askOne(&survey.Input{Message: msg}, &discard)
}
