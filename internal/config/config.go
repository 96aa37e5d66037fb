// Package config loads optional YAML settings for the dashboard.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// File mirrors the YAML config file. Zero values mean "not set".
//
//	log: /tmp/scheduler.log
//	refresh_interval: 10s
//	timezone: Europe/London
//	watch: true
//	intensity_url: http://127.0.0.1:5000/intensity
//	mock_addr: 127.0.0.1:5000
type File struct {
	LogPath         string   `yaml:"log"`
	RefreshInterval Duration `yaml:"refresh_interval"`
	Timezone        string   `yaml:"timezone"`
	Watch           *bool    `yaml:"watch"`
	IntensityURL    string   `yaml:"intensity_url"`
	MockAddr        string   `yaml:"mock_addr"`
}

// Duration accepts Go duration strings ("10s") or plain seconds (10).
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var secs int
	if err := value.Decode(&secs); err == nil {
		*d = Duration(time.Duration(secs) * time.Second)
		return nil
	}

	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// Load reads path. A missing file yields an empty File and no error.
func Load(path string) (*File, error) {
	if path == "" {
		return &File{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &File{}, nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML, rejecting unknown keys.
func Parse(data []byte) (*File, error) {
	cfg := &File{}
	if len(bytes.TrimSpace(data)) == 0 {
		return cfg, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.RefreshInterval < 0 {
		return nil, fmt.Errorf("refresh_interval must be positive")
	}
	return cfg, nil
}
