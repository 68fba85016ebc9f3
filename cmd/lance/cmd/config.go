package cmd

import (
	"github.com/spf13/viper"
)

// CLIConfig describes the CLI configuration.
type CLIConfig struct {
	// bug in viper? Need to keep names of fields the same as the serialized names..
	Credential string `json:"credential" yaml:"credential"` // Credentials to use for GCS
	Dataset    string `json:"dataset" yaml:"dataset"`       // Default dataset location
	LogLevel   string `json:"loglevel" yaml:"loglevel"`     // Default log level
}

func newConfig() (*CLIConfig, error) {
	var config CLIConfig
	err := viper.Unmarshal(&config)
	if err != nil {
		return nil, err
	}
	return &config, nil
}

// setDefaults patches unset flags with values from the config file.
func (c *CLIConfig) setDefaults() {
	if datasetLocation == "" {
		datasetLocation = c.Dataset
	}
	if c.LogLevel != "" && !rootCmd.PersistentFlags().Changed("loglevel") {
		logLevel = c.LogLevel
	}
}
