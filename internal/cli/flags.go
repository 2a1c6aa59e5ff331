package cli

import (
	"flag"
	"strconv"

	"github.com/pkg/errors"
)

var errDuplicateFlag = errors.New("duplicate flag passed")

// onceBool is a boolean flag that may be set only once across all of its
// aliases.
type onceBool struct {
	set   bool
	value bool
}

func (b *onceBool) Set(s string) error {
	if b.set {
		return errDuplicateFlag
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return errors.Wrapf(err, "expected no value, got %s", s)
	}
	b.set, b.value = true, v
	return nil
}

func (b *onceBool) String() string {
	if b == nil {
		return "false"
	}
	return strconv.FormatBool(b.value)
}

func (b *onceBool) IsBoolFlag() bool { return true }

// onceString is a string flag that may be set only once across all of its
// aliases.
type onceString struct {
	set   bool
	value string
}

func (s *onceString) Set(v string) error {
	if s.set {
		return errDuplicateFlag
	}
	s.set, s.value = true, v
	return nil
}

func (s *onceString) String() string {
	if s == nil {
		return ""
	}
	return s.value
}

// alias registers value under a short and a long name.
func alias(fs *flag.FlagSet, value flag.Value, short, long, usage string) {
	fs.Var(value, short, usage)
	fs.Var(value, long, usage)
}

// parseInterspersed parses flags that may appear before, after or around
// positional arguments and returns the positional ones in order. Everything
// after a `--` terminator is positional.
func parseInterspersed(fs *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		rest := fs.Args()
		if consumed := len(args) - len(rest); consumed > 0 && args[consumed-1] == "--" {
			return append(positional, rest...), nil
		}
		if len(rest) == 0 {
			return positional, nil
		}
		positional = append(positional, rest[0])
		args = rest[1:]
	}
}
