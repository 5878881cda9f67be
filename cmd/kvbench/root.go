package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"kvbench/internal/bench"
	"kvbench/internal/config"
	"kvbench/internal/git"
)

var exit = os.Exit
var cfgFile string

// rootCmd represents the base command when called without any subcommands.
// The bare invocation drops into the interactive console.
var rootCmd = &cobra.Command{
	Use:   "kvbench",
	Short: "Operator console for key-value server load tests",
	Long: `kvbench drives a fixed catalog of redis-benchmark presets against a
key-value server, records parsed throughput and p50 latency to a CSV
table, and renders comparison reports between labeled runs.

Run without arguments for the interactive console.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConsole(cmd)
	},
}

// Execute runs the root command. Called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exit(1)
	}
}

func init() {
	cobra.OnInitialize(func() { config.Load(cfgFile) })

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().String("csv", "", "results table location (default benchmarks.csv)")
	rootCmd.PersistentFlags().String("executable", "", "benchmark executable (default redis-benchmark)")

	bindFlag(rootCmd.PersistentFlags(), "benchmark.csv", "csv")
	bindFlag(rootCmd.PersistentFlags(), "benchmark.executable", "executable")
}

func bindFlag(fs *pflag.FlagSet, key, name string) {
	viper.BindPFlag(key, fs.Lookup(name))
}

// gitClientFactory allows mocking in tests.
var gitClientFactory = func() *git.Client { return git.NewClient() }

// currentRevision stamps records with the checkout under test; "unknown"
// when the working directory is not a repository.
func currentRevision() string {
	return gitClientFactory().Revision(".")
}

func newStore() *bench.Store {
	return bench.NewStore(config.CSVPath(), currentRevision)
}

func newRunner() *bench.Runner {
	return bench.NewRunner(config.Executable())
}
