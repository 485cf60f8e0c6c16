package patternfile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Loader handles loading and parsing of a patterns.yaml file
type Loader struct {
	filePath string
}

// NewLoader creates a new pattern file loader
func NewLoader(filePath string) *Loader {
	return &Loader{
		filePath: filePath,
	}
}

// Load reads and parses the patterns file
func (l *Loader) Load() (FileConfig, error) {
	var config FileConfig

	data, err := os.ReadFile(l.filePath)
	if err != nil {
		return config, fmt.Errorf("failed to read patterns file: %w", err)
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("failed to parse patterns yaml: %w", err)
	}

	return config, nil
}
