package config

import "fmt"

type Config struct {
	Store   StoreConfig   `yaml:"store"`
	Whisper WhisperConfig `yaml:"whisper"`
	FFmpeg  FFmpegConfig  `yaml:"ffmpeg"`
	Paths   PathsConfig   `yaml:"paths"`
	Logging LoggingConfig `yaml:"logging"`
}

// StoreConfig identifies the remote media store account. Credentials are
// never read from the YAML file; they come from env.local / the environment.
type StoreConfig struct {
	CloudName string `yaml:"cloud_name"`
	APIKey    string `yaml:"-"`
	APISecret string `yaml:"-"`
}

type WhisperConfig struct {
	BinaryPath   string `yaml:"binary_path"`
	ModelPath    string `yaml:"model_path"`
	VADModelPath string `yaml:"vad_model_path"`
	Language     string `yaml:"language"`
	Device       string `yaml:"device"`
	Threads      int    `yaml:"threads"`
	BeamSize     int    `yaml:"beam_size"`
}

type FFmpegConfig struct {
	BinaryPath string `yaml:"binary_path"`
}

type PathsConfig struct {
	Temp string `yaml:"temp"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

func (c *Config) Validate() error {
	if c.Store.CloudName == "" {
		return fmt.Errorf("store.cloud_name is required")
	}
	if c.Store.APIKey == "" {
		return fmt.Errorf("store API key is required (set %s)", EnvAPIKey)
	}
	if c.Store.APISecret == "" {
		return fmt.Errorf("store API secret is required (set %s)", EnvAPISecret)
	}
	if c.Whisper.BinaryPath == "" {
		return fmt.Errorf("whisper.binary_path is required")
	}
	if c.Whisper.ModelPath == "" {
		return fmt.Errorf("whisper.model_path is required")
	}

	if c.Whisper.Language == "" {
		c.Whisper.Language = "es"
	}
	if c.Whisper.Device == "" {
		c.Whisper.Device = "auto"
	}
	if c.Whisper.Threads == 0 {
		c.Whisper.Threads = 4
	}
	if c.Whisper.BeamSize == 0 {
		c.Whisper.BeamSize = 5
	}
	if c.FFmpeg.BinaryPath == "" {
		c.FFmpeg.BinaryPath = "ffmpeg"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	return nil
}
