package config

// TapeConfig sizes the machine's memory.
type TapeConfig struct {
	Size int `yaml:"size"`
}

// InputConfig controls how ',' consumes input.
type InputConfig struct {
	EOF string `yaml:"eof"`
	Raw bool   `yaml:"raw"`
}

// Limits bounds a single run.
type Limits struct {
	MaxSteps uint64 `yaml:"max_steps"`
}

// LogConfig controls diagnostic output on stderr.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Config represents the .tapeworm/config.yaml file.
type Config struct {
	Tape   TapeConfig  `yaml:"tape"`
	Input  InputConfig `yaml:"input"`
	Limits Limits      `yaml:"limits"`
	Log    LogConfig   `yaml:"log"`
}
