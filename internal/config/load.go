package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Load initializes the configuration from file and environment variables.
func Load(cfgFile string) {
	// explicit .env loading; missing file is fine
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("KVBENCH")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("benchmark.executable", "redis-benchmark")
	viper.SetDefault("benchmark.csv", "benchmarks.csv")
	viper.SetDefault("benchmark.batch_delay", 1)
	viper.SetDefault("no_color", false)

	// A missing config file is not an error; defaults and env cover it.
	_ = viper.ReadInConfig()
}

// Executable returns the configured benchmark executable name.
func Executable() string { return viper.GetString("benchmark.executable") }

// CSVPath returns the configured results table location.
func CSVPath() string { return viper.GetString("benchmark.csv") }

// BatchDelaySeconds returns the pause between suites in a batch run.
func BatchDelaySeconds() int { return viper.GetInt("benchmark.batch_delay") }
