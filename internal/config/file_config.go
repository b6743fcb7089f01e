package config

// FileConfig represents the raw config.toml file contents.
// All fields are pointers to distinguish "not set" from "set to zero/false".
type FileConfig struct {
	// Global settings
	ProjectRoot *string `toml:"project_root"`
	NoColor     *bool   `toml:"no_color"`
	Verbose     *bool   `toml:"verbose"`
	JSON        *bool   `toml:"json"`

	// Build settings
	Python *string `toml:"python"` // Interpreter used to invoke PyInstaller

	// Fetch settings
	Owner *string `toml:"owner"` // GitHub repository owner
	Repo  *string `toml:"repo"`  // GitHub repository name
}

// IsEmpty returns true if no configuration values are set.
func (f *FileConfig) IsEmpty() bool {
	return f.ProjectRoot == nil &&
		f.NoColor == nil &&
		f.Verbose == nil &&
		f.JSON == nil &&
		f.Python == nil &&
		f.Owner == nil &&
		f.Repo == nil
}
