package flagx

import (
	"errors"
	"log/slog"
	"slices"
	"strings"
	"unicode/utf8"
)

var (
	HelpFlags = []string{"--help", "-h"} // HelpFlags trigger [FlagSet.Usage] when they aren't registered as flags, and the resulting error matches [ErrHelp].
)

// parseState only lives as long as one call to Parse.
type parseState struct {
	pending     *Flag
	passthrough bool
	args        []string
}

// Parse consumes args, setting bound values for each flag found.
// Positional arguments are available from [FlagSet.Args] afterward.
//
// Flags are given as "--name", "--name value", "--name=value", "-n", "-n value", or as a cluster of boolean short flags like "-ab".
// A flag is treated as boolean if its [Value.Activate] succeeds, otherwise the next token is its value.
// The token "--" ends flag parsing, and is not included in the positional arguments.
// Unless interspersed parsing is enabled, the first positional argument also ends flag parsing.
//
// A flag waiting for a value at the end of args is ignored.
// An error stops parsing immediately, but flags set before the error keep their new values.
func (f *FlagSet) Parse(args []string) error {
	f.parsed = false
	f.args = nil
	state := &parseState{args: make([]string, 0, len(args))}
	for _, arg := range args {
		if err := f.scan(state, arg); err != nil {
			f.log().Debug("Parse failed", slog.String("token", arg), slog.Any("error", err))
			return err
		}
	}
	if state.pending != nil {
		f.log().Debug("Dropping flag without a value", slog.String("flag", state.pending.Name))
	}
	f.args = state.args
	f.parsed = true
	return nil
}

// ParseArgs parses args with fs, and returns the positional arguments.
func ParseArgs(fs *FlagSet, args []string) ([]string, error) {
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return fs.Args(), nil
}

func (f *FlagSet) scan(state *parseState, arg string) error {
	logger := f.log()
	if state.passthrough {
		state.args = append(state.args, arg)
		return nil
	}
	if arg == "--" {
		if state.pending != nil {
			logger.Debug("Dropping flag without a value", slog.String("flag", state.pending.Name))
			state.pending = nil
		}
		logger.Debug("End of flags")
		state.passthrough = true
		return nil
	}
	if flag := state.pending; flag != nil {
		state.pending = nil
		logger.Debug("Flag value", slog.String("flag", flag.Name), slog.String("value", arg))
		if err := flag.Value.Set(arg); err != nil {
			return &ParseError{Flag: flag.Name, Err: err}
		}
		flag.Changed = true
		return nil
	}

	switch {
	case len(arg) > 2 && strings.HasPrefix(arg, "--"):
		return f.scanLong(state, arg[2:])
	case len(arg) > 1 && arg[0] == '-':
		return f.scanShort(state, arg[1:])
	default:
		logger.Debug("Positional argument", slog.String("arg", arg))
		state.args = append(state.args, arg)
		if !f.interspersed {
			state.passthrough = true
		}
		return nil
	}
}

func (f *FlagSet) scanLong(state *parseState, name string) error {
	if key, val, found := strings.Cut(name, "="); found && len(key) > 0 {
		flag, ok := f.formal[key]
		if !ok {
			return &UnknownFlagError{Name: key}
		}
		f.log().Debug("Long flag with value", slog.String("flag", key), slog.String("value", val))
		if err := flag.Value.Set(val); err != nil {
			return &ParseError{Flag: key, Err: err}
		}
		flag.Changed = true
		return nil
	}
	flag, ok := f.formal[name]
	if !ok {
		return f.unknown("--"+name, name)
	}
	f.log().Debug("Long flag", slog.String("flag", name))
	f.activateOrWait(state, flag)
	return nil
}

func (f *FlagSet) scanShort(state *parseState, letters string) error {
	if r, ok := singleRune(letters); ok {
		flag := f.ShorthandLookup(r)
		if flag == nil {
			return f.unknown("-"+letters, letters)
		}
		f.log().Debug("Short flag", slog.String("flag", flag.Name))
		f.activateOrWait(state, flag)
		return nil
	}

	cluster := make([]*Flag, 0, utf8.RuneCountInString(letters))
	for _, r := range letters {
		flag := f.ShorthandLookup(r)
		if flag == nil {
			return f.unknown("-"+letters, letters)
		}
		cluster = append(cluster, flag)
	}
	f.log().Debug("Short flag cluster", slog.String("flags", letters))
	for _, flag := range cluster {
		if err := flag.Value.Activate(); err != nil {
			return &ParseError{Flag: flag.Name, Err: err}
		}
		flag.Changed = true
	}
	return nil
}

// activateOrWait sets a boolean style flag, or makes it wait for the next token as its value.
func (f *FlagSet) activateOrWait(state *parseState, flag *Flag) {
	if err := flag.Value.Activate(); err != nil {
		if !errors.Is(err, ErrNotBool) {
			f.log().Debug("Unexpected activation error", slog.String("flag", flag.Name), slog.Any("error", err))
		}
		state.pending = flag
		return
	}
	flag.Changed = true
}

func (f *FlagSet) unknown(token, name string) error {
	if slices.Contains(HelpFlags, token) {
		if f.Usage == nil {
			f.defaultUsage()
		} else {
			f.Usage()
		}
		return &UnknownFlagError{Name: name, Help: true}
	}
	return &UnknownFlagError{Name: name}
}
