package config

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"gopkg.in/yaml.v3"
)

// Fingerprint hashes a raw config document. Reload paths compare fingerprints
// to skip rebuilding controllers from an unchanged file.
func Fingerprint(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// LoadYAML decodes a YAML document over the defaults, so partial documents
// only override what they mention.
func LoadYAML(r io.Reader) (*Config, error) {
	c := Default()
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("decode yaml config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// LoadJSON decodes a JSON document over the defaults.
func LoadJSON(r io.Reader) (*Config, error) {
	c := Default()
	dec := json.NewDecoder(r)
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("decode json config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// LoadFile loads a config file by extension (.yaml/.yml or .json) and returns
// the decoded config with the raw document's fingerprint.
func LoadFile(path string) (*Config, uint64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, fmt.Errorf("read config file: %w", err)
	}

	var c Config
	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		c = Default()
		if err = yaml.Unmarshal(data, &c); err != nil {
			return nil, 0, fmt.Errorf("decode yaml config %s: %w", path, err)
		}
	case ".json":
		c = Default()
		if err = json.Unmarshal(data, &c); err != nil {
			return nil, 0, fmt.Errorf("decode json config %s: %w", path, err)
		}
	default:
		return nil, 0, fmt.Errorf("unsupported config extension %q", ext)
	}

	if err = c.Validate(); err != nil {
		return nil, 0, err
	}
	return &c, Fingerprint(data), nil
}
