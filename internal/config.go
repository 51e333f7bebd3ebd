package internal

import (
	"log/slog"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Config represents the application configuration.
type Config struct {
	App      ApplicationConfig `yaml:"app"`
	Document DocumentConfig    `yaml:"document"`
	Output   OutputConfig      `yaml:"output"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.Document.Validate(); err != nil {
		return err
	}
	return c.Output.Validate()
}

// ApplicationConfig holds application-level configuration.
type ApplicationConfig struct {
	LogLevel slog.Level `yaml:"log_level"`
}

// DocumentConfig holds the ReqIF header metadata stamped on every
// generated document.
type DocumentConfig struct {
	Title        string `yaml:"title"`
	ToolID       string `yaml:"tool_id"`
	SourceToolID string `yaml:"source_tool_id"`
}

// Validate validates the document configuration.
func (c *DocumentConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Title, validation.Required),
		validation.Field(&c.ToolID, validation.Required),
	)
}

// OutputConfig holds output file configuration. Path is the fallback
// output location when no --out flag is given; empty means "derive from
// the requirements sheet path".
type OutputConfig struct {
	Path string `yaml:"path"`
}

// Validate validates the output configuration. Any path, including none,
// is acceptable; the entry point derives a default.
func (c *OutputConfig) Validate() error {
	return nil
}

// NewDefaultConfig returns a new Config with sensible default values.
func NewDefaultConfig() *Config {
	return &Config{
		App: ApplicationConfig{
			LogLevel: slog.LevelInfo,
		},
		Document: DocumentConfig{
			Title:  "System Requirements Specification",
			ToolID: "gebo",
		},
	}
}
