// Package flagx lets several independent flag sets share os.Args: each caller
// extracts only the flags it owns before parsing, so unknown flags owned by
// another component never abort the parse.
package flagx

import (
	"flag"
	"strings"
)

// Owned describes the flags a caller owns. The value reports whether the flag
// consumes the following argument ("-d dsn"); boolean flags map to false.
type Owned map[string]bool

// Names builds an Owned set of value-taking flags.
func Names(names ...string) Owned {
	s := make(Owned, len(names))
	for _, n := range names {
		s[n] = true
	}
	return s
}

// Bool marks names as boolean flags and returns s for chaining.
func (s Owned) Bool(names ...string) Owned {
	for _, n := range names {
		s[n] = false
	}
	return s
}

// FilterArgs keeps the arguments in args that belong to owned, preserving order.
//
// Supported forms are "-f value", "-f=value" and, for boolean flags, "-f".
// A value-taking flag followed by another flag keeps no value.
func FilterArgs(args []string, owned Owned) []string {
	filtered := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "-") {
			continue
		}

		if name, _, ok := strings.Cut(arg, "="); ok {
			if _, known := owned[name]; known {
				filtered = append(filtered, arg)
			}
			continue
		}

		takesValue, known := owned[arg]
		if !known {
			continue
		}
		filtered = append(filtered, arg)
		if takesValue && i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			filtered = append(filtered, args[i+1])
			i++
		}
	}

	return filtered
}

// ConfigPath returns the JSON config file named by -c or -config in args,
// or "" when neither is present.
func ConfigPath(args []string) string {
	var path string

	fs := flag.NewFlagSet("json", flag.ContinueOnError)
	fs.StringVar(&path, "config", "", "Path to config file")
	fs.StringVar(&path, "c", "", "Path to config file (short)")
	_ = fs.Parse(FilterArgs(args, Names("-c", "-config")))

	return path
}
