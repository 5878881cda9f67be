package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"kvbench/internal/suite"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the benchmark suite catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
			fmt.Fprintln(w, "KEY\tNAME\tARGS\tDESCRIPTION")
			for _, def := range suite.Default().All() {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
					def.Key, def.Name, strings.Join(def.Args, " "), def.Desc)
			}
			return w.Flush()
		},
	}
}

func init() {
	rootCmd.AddCommand(newListCmd())
}
