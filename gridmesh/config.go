package gridmesh

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is a YAML mesh description:
//
//	width: 5
//	height: 2
//	connectivity: conn8   # optional, conn4 by default
type Config struct {
	Width        int    `yaml:"width"`
	Height       int    `yaml:"height"`
	Connectivity string `yaml:"connectivity,omitempty"`
}

// ParseConfig decodes a YAML mesh description. The result is not validated;
// FromConfig does that.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("gridmesh: failed to parse mesh description: %w", err)
	}

	return cfg, nil
}

// LoadConfig reads and decodes the YAML mesh description at path.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("gridmesh: failed to read %s: %w", path, err)
	}

	return ParseConfig(data)
}

// Conn resolves the connectivity name. An empty name means Conn4.
// Returns ErrConnectivity for anything but "conn4" or "conn8".
func (c Config) Conn() (Connectivity, error) {
	switch strings.ToLower(strings.TrimSpace(c.Connectivity)) {
	case "", "conn4":
		return Conn4, nil
	case "conn8":
		return Conn8, nil
	default:
		return Conn4, fmt.Errorf("%q: %w", c.Connectivity, ErrConnectivity)
	}
}

// FromConfig builds the Grid described by cfg and resolves its connectivity.
func FromConfig(cfg Config) (*Grid, Connectivity, error) {
	conn, err := cfg.Conn()
	if err != nil {
		return nil, Conn4, err
	}
	g, err := NewGrid(cfg.Width, cfg.Height)
	if err != nil {
		return nil, Conn4, err
	}

	return g, conn, nil
}
