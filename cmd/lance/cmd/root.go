package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "lance",
	Short: "Manage versioned columnar datasets",
	Long: `Manage versioned columnar datasets kept on an object store.

A dataset is an immutable, append-only history of committed versions.
This tool addresses dataset metadata: it can name versions with tags,
list them, and delete them, analogous to "git tag".
`,
}

var config *CLIConfig

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	log.SetFlags(0)
	cobra.OnInitialize(initConfig)

	fls := rootCmd.PersistentFlags()
	fls.StringVar(&datasetLocation, "dataset", "", "dataset location: gs://bucket/root, s3://bucket/root or a local path")
	fls.StringVar(&logLevel, "loglevel", "info", "log level (debug|info|error|none)")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if os.Getenv("LANCE_CONFIG") != "" {
		viper.SetConfigFile(os.Getenv("LANCE_CONFIG"))
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.lance")
		viper.AddConfigPath("/etc/lance")
		viper.SetConfigName("lance")
	}

	viper.AutomaticEnv() // read in environment variables that match
	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		log.Println("Using config file:", viper.ConfigFileUsed())
	}
	var err error
	config, err = newConfig()
	if err != nil {
		logFatalln(err)
	}
	config.setDefaults()
}
