package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/vinhtrinh326/cpusched/internal/scheduler"
)

// PolicyAll selects every policy, each run on its own copy of the input.
const PolicyAll = "all"

// Config mirrors the YAML config file.
type Config struct {
	Policy    string       `yaml:"policy"`     // fcfs, srt, rr or all; empty prompts with a menu
	Quantum   int64        `yaml:"quantum"`    // round-robin time slice
	LogLevel  string       `yaml:"log_level"`  // logrus level name
	ShowGantt bool         `yaml:"show_gantt"` // print the Gantt chart before each table
	Server    ServerConfig `yaml:"server"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Quantum:   2,
		LogLevel:  "warn",
		ShowGantt: true,
		Server: ServerConfig{
			Addr: ":9095",
		},
	}
}

// Load reads path over the defaults. Unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config file: %w", err)
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("%w: parsing %s: %v", scheduler.ErrInvalidConfiguration, path, err)
	}
	return cfg, cfg.Validate()
}

// Policies resolves the Policy field. An empty field yields no policies.
func (c Config) Policies() ([]scheduler.Policy, error) {
	switch c.Policy {
	case "":
		return nil, nil
	case PolicyAll:
		return scheduler.Policies(), nil
	}
	p, err := scheduler.ParsePolicy(c.Policy)
	if err != nil {
		return nil, err
	}
	return []scheduler.Policy{p}, nil
}

// Validate checks the values that can be checked without running anything.
func (c Config) Validate() error {
	policies, err := c.Policies()
	if err != nil {
		return err
	}
	for _, p := range policies {
		if p.NeedsQuantum() && c.Quantum <= 0 {
			return fmt.Errorf("%w: quantum must be positive, got %d", scheduler.ErrInvalidConfiguration, c.Quantum)
		}
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", scheduler.ErrInvalidConfiguration, err)
	}
	return nil
}
