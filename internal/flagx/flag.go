// Package flagx contains helpers that let several configuration layers read
// their own flags from os.Args without tripping over each other.
package flagx

import (
	"flag"
	"os"
	"strings"
)

// FilterArgs keeps only the allowed flags from args, together with their
// values. Both "-f value" and "-f=value" forms are recognised; a following
// argument that starts with "-" is never taken as a value.
func FilterArgs(args []string, allowedFlags []string) []string {
	allowed := make(map[string]struct{}, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[f] = struct{}{}
	}

	filtered := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			name, _, _ := strings.Cut(arg, "=")
			if _, ok := allowed[name]; ok {
				filtered = append(filtered, arg)
			}
			continue
		}

		if _, ok := allowed[arg]; !ok {
			continue
		}
		filtered = append(filtered, arg)
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			filtered = append(filtered, args[i+1])
			i++
		}
	}

	return filtered
}

// stringFlag reads a single string flag, registered under every name in
// names, from os.Args. The last occurrence wins.
func stringFlag(setName string, names []string) string {
	var value string

	dashed := make([]string, len(names))
	for i, n := range names {
		dashed[i] = "-" + n
	}

	fs := flag.NewFlagSet(setName, flag.ContinueOnError)
	fs.SetOutput(discard{})
	for _, n := range names {
		fs.StringVar(&value, n, "", setName+" path")
	}
	_ = fs.Parse(FilterArgs(os.Args[1:], dashed))

	return value
}

// JsonConfigFlags returns the JSON config path given with -c or -config, or
// "" when neither is present.
func JsonConfigFlags() string {
	return stringFlag("config", []string{"config", "c"})
}

// EnvFileFlags returns the dotenv path given with -env, or "" when absent.
func EnvFileFlags() string {
	return stringFlag("env", []string{"env"})
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
