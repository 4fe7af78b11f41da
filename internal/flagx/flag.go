// Package flagx holds helpers for reading a few flags ahead of the main
// command-line parser.
package flagx

import (
	"io"
	"strings"

	"github.com/spf13/pflag"
)

// FilterArgs returns a slice of command-line arguments that only contains
// the allowed flags (and their values) specified in allowedFlags.
//
// Supported formats:
//  1. Flag and value as separate arguments:  -c conf.yaml
//  2. Flag and value combined with '=':      --config=conf.yaml
//  3. Shorthand with the value attached:     -cconf.yaml
func FilterArgs(args []string, allowedFlags []string) []string {
	allowed := make(map[string]struct{}, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[f] = struct{}{}
	}

	filtered := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		// "--" ends flag parsing; everything after it is positional.
		if arg == "--" {
			break
		}

		if name, ok := attachedShorthand(arg); ok {
			if _, ok := allowed[name]; ok {
				filtered = append(filtered, arg)
				continue
			}
		}

		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			name, _, _ := strings.Cut(arg, "=")
			if _, ok := allowed[name]; ok {
				filtered = append(filtered, arg)
			}
			continue
		}

		if _, ok := allowed[arg]; ok {
			filtered = append(filtered, arg)
			// the next argument is the value unless it looks like another flag
			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				filtered = append(filtered, args[i+1])
				i++
			}
		}
	}

	return filtered
}

// attachedShorthand reports the "-x" flag of a single-dash argument that
// carries its value, as in "-cconf.yaml" or "-c=conf.yaml".
func attachedShorthand(arg string) (string, bool) {
	if len(arg) <= 2 || arg[0] != '-' || arg[1] == '-' {
		return "", false
	}
	return arg[:2], true
}

// ConfigFlags extracts the config file path given with -c or --config.
//
// Only these flags are parsed; everything else is ignored so the main parser
// can still report its own errors. An empty string means no file was given.
func ConfigFlags(args []string) string {
	var config string

	filtered := FilterArgs(args, []string{"-c", "--config"})

	fs := pflag.NewFlagSet("config", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVarP(&config, "config", "c", "", "path to config file")
	_ = fs.Parse(filtered)

	return config
}
