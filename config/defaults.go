package config

import "github.com/philipp01105/tzlog/formatter"

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Format: Format{
			Precision: formatter.Seconds.String(),
			Style:     formatter.StyleAuto.String(),
			Indent:    formatter.DefaultIndent,
		},
		Logger: Logger{
			Level:   "info",
			Backend: BackendTzlog,
		},
	}
}
