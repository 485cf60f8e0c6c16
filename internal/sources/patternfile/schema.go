package patternfile

// FileConfig represents the top-level structure of patterns.yaml
type FileConfig struct {
	Patterns []PatternEntry `yaml:"patterns"`
}

// PatternEntry is one named pattern declaration
type PatternEntry struct {
	Name   string `yaml:"name"`
	Format string `yaml:"format"`
	Zone   string `yaml:"zone,omitempty"`
}
