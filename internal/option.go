package internal

// Option is a functional option for configuring the application.
type Option func(*application)

type application struct {
	config           *Config
	requirementsPath string
	relationsPath    string
	outputPath       string
}

// WithConfig sets the application configuration.
func WithConfig(cfg *Config) Option {
	return func(a *application) {
		a.config = cfg
	}
}

// WithRequirementsPath sets the path of the requirements CSV sheet.
func WithRequirementsPath(path string) Option {
	return func(a *application) {
		a.requirementsPath = path
	}
}

// WithRelationsPath sets the path of the relations CSV sheet. Empty means
// the document has no relations.
func WithRelationsPath(path string) Option {
	return func(a *application) {
		a.relationsPath = path
	}
}

// WithOutputPath sets the output file path, overriding the configured one.
func WithOutputPath(path string) Option {
	return func(a *application) {
		a.outputPath = path
	}
}
