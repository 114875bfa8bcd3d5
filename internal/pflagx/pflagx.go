// Package pflagx implements extensions to pflag.
package pflagx

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"unicode"

	"github.com/spf13/pflag"
)

// LevelP defines a slog.Level flag on the command line.
func LevelP(name, shorthand string, value slog.Level, usage string) *slog.LevelVar {
	return FlagSetLevelP(pflag.CommandLine, name, shorthand, value, usage)
}

// FlagSetLevelP defines a slog.Level flag on fs.
func FlagSetLevelP(fs *pflag.FlagSet, name, shorthand string, value slog.Level, usage string) *slog.LevelVar {
	level := new(slog.LevelVar)
	def := new(slog.LevelVar)
	def.Set(value)
	fs.TextVarP(level, name, shorthand, def, usage)
	return level
}

// ParseEnv sets command line flags from environment variables named
// prefix + the upper-cased flag name with dashes as underscores.
func ParseEnv(prefix string) error {
	return FlagSetParseEnv(pflag.CommandLine, prefix, os.Environ())
}

// FlagSetParseEnv sets flags on fs from env, a list of KEY=value pairs.
// Unknown flags are reported to the flag set's output and skipped.
func FlagSetParseEnv(fs *pflag.FlagSet, prefix string, env []string) error {
	for _, kv := range env {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		s, ok := strings.CutPrefix(k, prefix)
		if !ok {
			continue
		}
		n := strings.Map(func(r rune) rune {
			if r == '_' {
				return '-'
			}
			return unicode.ToLower(r)
		}, s)
		f := fs.Lookup(n)
		if f == nil {
			fmt.Fprintf(fs.Output(), "env %s: unknown flag --%s\n", k, n)
			continue
		}
		if err := fs.Set(n, v); err != nil {
			return fmt.Errorf("env %s: flag --%s: invalid argument: %w", k, n, err)
		}
	}
	return nil
}
