package config

// Datafile represents the structure of the datagen.yaml configuration file.
type Datafile struct {
	Version    string     `yaml:"version"`
	Components []string   `yaml:"components"`
	Locales    []string   `yaml:"locales"`
	Source     *SourceDTO `yaml:"source"`
	Export     *ExportDTO `yaml:"export"`
}

// SourceDTO represents the provider source section of the configuration.
// Pointer fields distinguish an explicit false from an omitted key.
type SourceDTO struct {
	CLDRVersion  string `yaml:"cldrVersion"`
	BaseURL      string `yaml:"baseURL"`
	LocalDir     string `yaml:"localDir"`
	CacheDir     string `yaml:"cacheDir"`
	Network      *bool  `yaml:"network"`
	Compute      *bool  `yaml:"compute"`
	Experimental *bool  `yaml:"experimental"`
}

// ExportDTO represents the export section of the configuration.
type ExportDTO struct {
	Format   string `yaml:"format"`
	Output   string `yaml:"output"`
	Parallel *bool  `yaml:"parallel"`
	Dedupe   *bool  `yaml:"dedupe"`
}
