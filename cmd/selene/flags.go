package main

import (
	"fmt"
	"runtime"
	"strconv"
	"strings"

	"github.com/grindlemire/selene/internal/compiler"
)

// config holds the options shared by all subcommands.
type config struct {
	verbose  bool
	target   string
	pkg      string
	runtime  string
	factory  string
	fragment string
	strict   bool
	register bool
	jobs     int
}

func defaultConfig() config {
	return config{
		target:  "js",
		runtime: "selene",
		jobs:    runtime.GOMAXPROCS(0),
	}
}

// parseArgs separates flags from paths.
func parseArgs(args []string) (config, []string, error) {
	cfg := defaultConfig()
	var paths []string

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "-" || !strings.HasPrefix(arg, "-") {
			paths = append(paths, arg)
			continue
		}

		name, value, hasValue := strings.Cut(arg, "=")
		switch name {
		case "-v", "--verbose":
			cfg.verbose = true
		case "--strict":
			cfg.strict = true
		case "--register":
			cfg.register = true
		case "--target", "--package", "--runtime", "--factory", "--fragment", "-j", "--jobs":
			if !hasValue {
				if i+1 >= len(args) {
					return cfg, nil, fmt.Errorf("flag %s needs a value", name)
				}
				i++
				value = args[i]
			}
			if err := cfg.set(name, value); err != nil {
				return cfg, nil, err
			}
		default:
			return cfg, nil, fmt.Errorf("unknown flag %s", name)
		}
	}

	return cfg, paths, nil
}

func (c *config) set(name, value string) error {
	switch name {
	case "--target":
		if value != "js" && value != "go" {
			return fmt.Errorf("unknown target %q (want js or go)", value)
		}
		c.target = value
	case "--package":
		c.pkg = value
	case "--runtime":
		c.runtime = value
	case "--factory":
		c.factory = value
	case "--fragment":
		c.fragment = value
	case "-j", "--jobs":
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 {
			return fmt.Errorf("invalid job count %q", value)
		}
		c.jobs = n
	}
	return nil
}

// compileOptions returns the emitter options selected on the command line.
func (c config) compileOptions() []compiler.Option {
	return []compiler.Option{
		compiler.WithFactory(c.factory),
		compiler.WithFragment(c.fragment),
	}
}
