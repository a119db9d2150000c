// Package config loads the host-side configuration shared by the
// console and the MQTT bridge.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the root of the host configuration file
type Config struct {
	Link LinkConfig `yaml:"link"`
	MQTT MQTTConfig `yaml:"mqtt"`
	Game GameConfig `yaml:"game"`
}

// LinkConfig selects how to reach the pad
type LinkConfig struct {
	// Serial device path (e.g. "/dev/ttyACM0", "COM3")
	Device string `yaml:"device"`

	// Baud rate for serial devices
	Baud int `yaml:"baud"`

	// TCP address of a simulator (host:port). Takes precedence over
	// Device when both are set.
	TCP string `yaml:"tcp"`
}

// MQTTConfig configures the bridge's broker connection
type MQTTConfig struct {
	// Broker URL (e.g. "tcp://localhost:1883")
	Broker string `yaml:"broker"`

	// TopicRoot prefixes every topic the bridge touches
	TopicRoot string `yaml:"topic_root"`

	// ClientID overrides the machine-derived client id
	ClientID string `yaml:"client_id"`
}

// GameConfig holds the state pushed to the pad on startup
type GameConfig struct {
	StartFood   int    `yaml:"start_food"`
	StartEnergy int    `yaml:"start_energy"`
	StartStatus string `yaml:"start_status"`
}

// Load parses a YAML configuration and returns a validated Config
func Load(data []byte) (*Config, error) {
	var cfg Config

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadFile reads and parses a YAML configuration file
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return Load(data)
}

// Default returns the configuration used when no file is given
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// applyDefaults fills in missing configuration values
func applyDefaults(cfg *Config) {
	if cfg.Link.Device == "" && cfg.Link.TCP == "" {
		cfg.Link.Device = "/dev/ttyACM0"
	}
	if cfg.Link.Baud == 0 {
		cfg.Link.Baud = 115200
	}

	if cfg.MQTT.TopicRoot == "" {
		cfg.MQTT.TopicRoot = "treasure"
	}

	// The pad's own power-up state.
	if cfg.Game.StartEnergy == 0 {
		cfg.Game.StartEnergy = 100
	}
	if cfg.Game.StartStatus == "" {
		cfg.Game.StartStatus = "Ready"
	}
}

// Validate rejects configurations no component could run with
func (c *Config) Validate() error {
	if c.Link.Device == "" && c.Link.TCP == "" {
		return fmt.Errorf("link: either device or tcp must be set")
	}
	if c.Link.Baud <= 0 {
		return fmt.Errorf("link: baud must be positive, got %d", c.Link.Baud)
	}

	if strings.ContainsAny(c.MQTT.TopicRoot, "#+") {
		return fmt.Errorf("mqtt: topic_root %q must not contain wildcards", c.MQTT.TopicRoot)
	}
	if strings.HasSuffix(c.MQTT.TopicRoot, "/") {
		return fmt.Errorf("mqtt: topic_root %q must not end with a slash", c.MQTT.TopicRoot)
	}

	return nil
}
