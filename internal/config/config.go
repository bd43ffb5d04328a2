// Package config defines the data structures related to configuration and
// includes functions for loading and parsing the config.
package config

import (
	"fmt"

	"github.com/guillemsala/expenses-app/internal/expense"
	"github.com/guillemsala/expenses-app/pkg/constants"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for expenses-app.
type Configuration struct {
	Input   InputConfig   `yaml:"input,omitempty"`
	Parties PartyConfig   `yaml:"parties,omitempty"`
	Logging LoggingConfig `yaml:"logging,omitempty"`
	Output  OutputConfig  `yaml:"output,omitempty"`
	Server  ServerConfig  `yaml:"server,omitempty"`
}

// InputConfig points at the expenses dataset.
type InputConfig struct {
	Path string `yaml:"path,omitempty"` // CSV file with the expense rows
}

// PartyConfig carries display labels for the two cost-sharing parties. The
// labels only affect presentation; the engine itself is label-agnostic.
type PartyConfig struct {
	PartyA string `yaml:"partyA,omitempty"`
	PartyB string `yaml:"partyB,omitempty"`
}

// Labels returns the party display labels with defaults applied.
func (p PartyConfig) Labels() [expense.PartyCount]string {
	labels := [expense.PartyCount]string{p.PartyA, p.PartyB}
	if labels[expense.PartyA] == "" {
		labels[expense.PartyA] = "Party A"
	}
	if labels[expense.PartyB] == "" {
		labels[expense.PartyB] = "Party B"
	}
	return labels
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// ServerConfig holds the report API options.
type ServerConfig struct {
	Address            string `yaml:"address,omitempty"`
	MaxUploadSizeBytes int64  `yaml:"maxUploadSizeBytes,omitempty"`
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := viper.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	configuration.applyDefaults()
	return &configuration, nil
}

func (c *Configuration) applyDefaults() {
	if c.Input.Path == "" {
		c.Input.Path = constants.DefaultInputFile
	}
	if c.Output.Format == "" {
		c.Output.Format = constants.OutputFormatPretty
	}
	if c.Server.Address == "" {
		c.Server.Address = constants.DefaultServerAddress
	}
	if c.Server.MaxUploadSizeBytes <= 0 {
		c.Server.MaxUploadSizeBytes = constants.DefaultMaxUploadSizeBytes
	}
}

// ValidateOutputFormat checks if the output format is one of the supported formats.
func ValidateOutputFormat(format string) error {
	if format != constants.OutputFormatPretty && format != constants.OutputFormatCSV {
		return fmt.Errorf("expected output format of %s or %s, got %s",
			constants.OutputFormatPretty, constants.OutputFormatCSV, format)
	}
	return nil
}
