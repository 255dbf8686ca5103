// Package config handles vectool configuration loading and management.
package config

// Config holds all tool settings.
type Config struct {
	Output  OutputConfig  `yaml:"output"`
	Interp  InterpConfig  `yaml:"interp"`
	Logging LoggingConfig `yaml:"logging"`
}

// OutputConfig controls how numbers are printed.
type OutputConfig struct {
	Precision int `yaml:"precision"` // fractional digits, 0..MaxPrecision
}

// InterpConfig controls interpolation commands.
type InterpConfig struct {
	Steps int `yaml:"steps"` // samples between the endpoints; lerp prints Steps+1 rows
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// MaxPrecision caps the number of fractional digits. float32 carries
// fewer than 9 significant decimal digits.
const MaxPrecision = 9

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Precision: 4,
		},
		Interp: InterpConfig{
			Steps: 4,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
