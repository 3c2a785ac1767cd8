package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/alessio/shellescape"

	"github.com/uinames/names-contract-tests/config"
	"github.com/uinames/names-contract-tests/framework"
)

type commandParams struct {
	configPath string
	config     config.Config
	filters    framework.RegexFilters
}

func (c *commandParams) Read(args []string) bool {
	c.config.InitDefaults()

	fs := flag.NewFlagSet("", flag.ContinueOnError)
	fs.StringVar(&c.configPath, "config", "", "YAML file with default settings; flags override it")
	fs.StringVar(&c.config.ServiceURL, "url", c.config.ServiceURL, "base URL of the names service")
	fs.DurationVar(&c.config.RequestTimeout, "timeout", c.config.RequestTimeout, "timeout for each request")
	fs.DurationVar(&c.config.StartupTimeout, "startup-timeout", c.config.StartupTimeout, "how long to wait for the service to respond at startup")
	fs.BoolVar(&c.config.StrictChecks, "strict", false, "also check that returned values equal the requested ones")
	fs.Var(&c.filters.MustMatch, "run", "regex pattern(s) to select tests to run")
	fs.Var(&c.filters.MustNotMatch, "skip", "regex pattern(s) to select tests not to run")
	fs.BoolVar(&c.config.Debug, "debug", false, "enable debug logging for failed tests")
	fs.BoolVar(&c.config.DebugAll, "debug-all", false, "enable debug logging for all tests")

	if err := fs.Parse(args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return false
	}

	if c.configPath != "" {
		fileConfig, err := config.Load(c.configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return false
		}
		fs.Visit(func(f *flag.Flag) {
			overrideSetting(&fileConfig, c.config, f.Name)
		})
		c.config = fileConfig
		for _, p := range c.config.Run {
			if err := c.filters.MustMatch.Set(p); err != nil {
				fmt.Fprintf(os.Stderr, "invalid run pattern in config file: %s\n", err)
				return false
			}
		}
		for _, p := range c.config.Skip {
			if err := c.filters.MustNotMatch.Set(p); err != nil {
				fmt.Fprintf(os.Stderr, "invalid skip pattern in config file: %s\n", err)
				return false
			}
		}
	}

	if err := c.config.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid settings: %s\n", err)
		fs.Usage()
		return false
	}
	return true
}

// overrideSetting copies a setting that was given on the command line over the value from
// the config file.
func overrideSetting(dest *config.Config, flags config.Config, name string) {
	switch name {
	case "url":
		dest.ServiceURL = flags.ServiceURL
	case "timeout":
		dest.RequestTimeout = flags.RequestTimeout
	case "startup-timeout":
		dest.StartupTimeout = flags.StartupTimeout
	case "strict":
		dest.StrictChecks = flags.StrictChecks
	case "debug":
		dest.Debug = flags.Debug
	case "debug-all":
		dest.DebugAll = flags.DebugAll
	}
}

// rerunCommand builds a command line that runs only the given tests with the same settings.
// Settings that came from a config file are passed as flags rather than with -config, since
// the file's run patterns would select more than the failed tests.
func (c *commandParams) rerunCommand(program string, failures []framework.TestResult) string {
	var b commandBuilder
	b.add(program, "-url", c.config.ServiceURL)
	if c.config.RequestTimeout != config.DefaultRequestTimeout {
		b.add("-timeout", c.config.RequestTimeout.String())
	}
	if c.config.StartupTimeout != config.DefaultStartupTimeout {
		b.add("-startup-timeout", c.config.StartupTimeout.String())
	}
	if c.config.StrictChecks {
		b.add("-strict")
	}
	if c.config.DebugAll {
		b.add("-debug-all")
	} else if c.config.Debug {
		b.add("-debug")
	}
	for _, p := range c.filters.MustNotMatch.Sources() {
		b.add("-skip", p)
	}
	for _, f := range failures {
		b.add("-run", framework.RunPattern(f.TestID))
	}
	return b.String()
}

type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}
