// Package config holds the settings of a test run, which can come from a YAML file as well
// as from the command line.
package config

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/cohesivestack/valgo"
	"gopkg.in/yaml.v3"
)

const (
	DefaultServiceURL     = "https://cybertek-ui-names.herokuapp.com/api/"
	DefaultRequestTimeout = time.Second * 30
	DefaultStartupTimeout = time.Second * 60
)

type Config struct {
	ServiceURL     string        `yaml:"serviceUrl"`
	RequestTimeout time.Duration `yaml:"requestTimeout"`
	StartupTimeout time.Duration `yaml:"startupTimeout"`
	StrictChecks   bool          `yaml:"strictChecks"`
	Run            []string      `yaml:"run"`
	Skip           []string      `yaml:"skip"`
	Debug          bool          `yaml:"debug"`
	DebugAll       bool          `yaml:"debugAll"`
}

func (c *Config) InitDefaults() {
	c.ServiceURL = DefaultServiceURL
	c.RequestTimeout = DefaultRequestTimeout
	c.StartupTimeout = DefaultStartupTimeout
}

func (c *Config) Validation() *valgo.Validation {
	v := valgo.New()
	v.Is(valgo.String(c.ServiceURL, "serviceUrl").Not().Blank().Passing(isAbsoluteHTTPURL, "{{title}} must be an absolute http or https URL"))
	v.Is(valgo.Int64(int64(c.RequestTimeout), "requestTimeout").GreaterThan(0))
	v.Is(valgo.Int64(int64(c.StartupTimeout), "startupTimeout").GreaterOrEqualTo(0))
	return v
}

// Validate returns an error describing every invalid setting, or nil.
func (c *Config) Validate() error {
	return c.Validation().ToError()
}

// Load reads a YAML config file. Settings that are not in the file keep their defaults.
func Load(path string) (Config, error) {
	var cfg Config
	cfg.InitDefaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return cfg, nil
}

func isAbsoluteHTTPURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
