// Package config provides configuration loading and management for the
// lesionquant tools. It handles loading configuration from YAML files
// and provides default values.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration loaded from YAML
type Config struct {
	// Atlas parameters describe the reference map library
	Atlas struct {
		// Dir is the directory holding the reference map volumes
		Dir string `yaml:"dir"`

		// Pattern is the file-name glob selecting map files
		Pattern string `yaml:"pattern"`

		// Suffix is stripped from map file names to derive column names
		Suffix string `yaml:"suffix"`
	} `yaml:"atlas"`

	// Overlap parameters control the quantifier
	Overlap struct {
		// Percentile of the non-zero intersection values reported as
		// the importance score
		Percentile float64 `yaml:"percentile"`
	} `yaml:"overlap"`

	// Dicom parameters control the orientation patcher
	Dicom struct {
		// Orientation is the corrected ImageOrientationPatient
		// direction-cosine sextet written to every file
		Orientation []float64 `yaml:"orientation"`
	} `yaml:"dicom"`

	// Radar parameters control the chart renderer
	Radar struct {
		// Order is the preferred category order around the chart
		Order []string `yaml:"order"`

		// GrayMatterColor and WhiteMatterColor are hex series colors
		GrayMatterColor  string `yaml:"grayMatterColor"`
		WhiteMatterColor string `yaml:"whiteMatterColor"`

		// SizeInches is the rendered chart width and height
		SizeInches float64 `yaml:"sizeInches"`
	} `yaml:"radar"`
}

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	cfg := &Config{}

	cfg.Atlas.Pattern = "*.gz"
	cfg.Atlas.Suffix = "_union_randomise_1mm.nii.gz"

	cfg.Overlap.Percentile = 90

	// Corrected direction cosines with flipped Y components, as used in
	// the nii2dcm fixing workflow.
	cfg.Dicom.Orientation = []float64{
		0.9995173750741061, -0.030577011219287256, 0.005483001902670556,
		0.027891304407167042, 0.9610401413769338, 0.2749980396305939,
	}

	cfg.Radar.Order = []string{
		"Semantic", "Phonological", "Speech Arrest", "Motor",
		"Movement Arrest", "Sensorial", "Visual", "Spatial Perception",
		"Mentalizing", "Anomia",
	}
	cfg.Radar.GrayMatterColor = "#DAA520"
	cfg.Radar.WhiteMatterColor = "#808080"
	cfg.Radar.SizeInches = 8

	return cfg
}

// LoadConfig loads configuration from a YAML file
// If the file doesn't exist, it returns the default configuration
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves the configuration to a YAML file
func SaveConfig(cfg *Config, configPath string) error {
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}
