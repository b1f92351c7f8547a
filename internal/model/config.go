package model

// DefaultSource is the quine source the tools act on when no file is given.
const DefaultSource Path = "cmd/quine/main.go"

// Config holds settings read from the optional YAML configuration file.
type Config struct {
	Source   Path      `yaml:"source"`
	Parallel int       `yaml:"parallel"`
	Reports  Path      `yaml:"reports"`
	Log      LogConfig `yaml:"log"`
}

// LogConfig configures structured logging.
type LogConfig struct {
	Level   string `yaml:"level"`
	Format  string `yaml:"format"`
	Journal bool   `yaml:"journal"`
}

// DefaultConfig returns the settings used when no file is present.
func DefaultConfig() Config {
	return Config{
		Source:   DefaultSource,
		Parallel: 1,
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}
