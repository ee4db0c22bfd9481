package flagx

import (
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"
	"unicode/utf8"
)

// Flag is a named, optionally short-aliased, typed argument.
type Flag struct {
	Name      string // Name is the canonical name, used in the long form "--name".
	Shorthand rune   // Shorthand is the one character alias used in the short form "-n", or 0 if there is none.
	Usage     string // Usage is the help text for the flag.
	Value     Value  // Value is the bound slot.
	DefValue  string // DefValue is the rendering of Value when the flag was registered.
	Changed   bool   // Changed is true if the flag was set by parsing or [FlagSet.Set].
}

// FlagSet is a registry of [Flag], and the state of the last [FlagSet.Parse] call.
//
// A FlagSet is not safe for concurrent use.
// Parse is the only writer of bound values while it runs, so bound variables should only be read after it returns.
type FlagSet struct {
	// Usage is called when help is requested and the help flags aren't registered.
	// It may be replaced to customize the output.
	Usage func()

	name         string
	formal       map[string]*Flag
	shorthands   map[rune]*Flag
	args         []string
	parsed       bool
	interspersed bool
	output       io.Writer
	logger       *slog.Logger
}

// NewFlagSet creates an empty [FlagSet].
// The name is used in default usage output.
func NewFlagSet(name string) *FlagSet {
	f := &FlagSet{
		name:       name,
		formal:     map[string]*Flag{},
		shorthands: map[rune]*Flag{},
	}
	f.Usage = f.defaultUsage
	return f
}

// Name returns the name given to [NewFlagSet].
func (f *FlagSet) Name() string {
	return f.name
}

// SetOutput sets the destination for usage output.
// Passing nil resets to [os.Stderr].
func (f *FlagSet) SetOutput(output io.Writer) {
	f.output = output
}

func (f *FlagSet) out() io.Writer {
	if f.output == nil {
		return os.Stderr
	}
	return f.output
}

// SetLogger sets a logger that will receive debug details about parsing.
// Passing nil disables logging, which is the default.
func (f *FlagSet) SetLogger(logger *slog.Logger) {
	f.logger = logger
}

func (f *FlagSet) log() *slog.Logger {
	if f.logger == nil {
		return discardLogger
	}
	return f.logger
}

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))

// SetInterspersed controls whether flags may follow positional arguments.
// This is false by default, which means that the first positional argument ends flag parsing.
func (f *FlagSet) SetInterspersed(interspersed bool) {
	f.interspersed = interspersed
}

// Var registers value under name.
// If short is true, then the first character of name is registered as an alias as well.
//
// Registration mistakes are programming errors, so Var panics if name is empty, value is nil, or either key is already taken.
// A single character name and an alias are the same key for this purpose.
func (f *FlagSet) Var(value Value, name string, short bool, usage string) *Flag {
	if len(name) == 0 {
		violation("empty flag name")
	}
	if value == nil {
		violation("nil value for flag %q", name)
	}
	if _, ok := f.formal[name]; ok {
		violation("flag redefined: %s", name)
	}
	if r, ok := singleRune(name); ok {
		if other, ok := f.shorthands[r]; ok {
			violation("flag %q collides with shorthand of flag %q", name, other.Name)
		}
	}
	flag := &Flag{
		Name:     name,
		Usage:    usage,
		Value:    value,
		DefValue: value.String(),
	}
	if short {
		r, _ := utf8.DecodeRuneInString(name)
		if other, ok := f.shorthands[r]; ok {
			violation("shorthand %q for flag %q is already used by flag %q", r, name, other.Name)
		}
		if other, ok := f.formal[string(r)]; ok {
			violation("shorthand %q for flag %q collides with flag %q", r, name, other.Name)
		}
		flag.Shorthand = r
		f.shorthands[r] = flag
	}
	f.formal[name] = flag
	return flag
}

func singleRune(name string) (rune, bool) {
	r, size := utf8.DecodeRuneInString(name)
	if size == 0 || size != len(name) {
		return 0, false
	}
	return r, true
}

// HasFlag returns true if name is the canonical name of a registered [Flag].
// A single character name is also found if it's registered as an alias of a flag with the same canonical name.
func (f *FlagSet) HasFlag(name string) bool {
	if _, ok := f.formal[name]; ok {
		return true
	}
	r, ok := singleRune(name)
	if !ok {
		return false
	}
	flag, ok := f.shorthands[r]
	return ok && flag.Name == name
}

// Lookup returns the [Flag] with the given canonical name, or nil if there is none.
func (f *FlagSet) Lookup(name string) *Flag {
	return f.formal[name]
}

// ShorthandLookup returns the [Flag] with the given alias.
// If no alias matches, then a flag with a single character name matching r is returned, if any.
func (f *FlagSet) ShorthandLookup(r rune) *Flag {
	if flag, ok := f.shorthands[r]; ok {
		return flag
	}
	return f.formal[string(r)]
}

// Set parses value into the named flag and marks it as changed.
func (f *FlagSet) Set(name, value string) error {
	flag, ok := f.formal[name]
	if !ok {
		return &UnknownFlagError{Name: name}
	}
	if err := flag.Value.Set(value); err != nil {
		return &ParseError{Flag: name, Err: err}
	}
	flag.Changed = true
	return nil
}

// Changed returns true if the named flag was set while parsing, or with [FlagSet.Set].
func (f *FlagSet) Changed(name string) bool {
	flag, ok := f.formal[name]
	return ok && flag.Changed
}

// NFlag returns the number of flags that have been set.
func (f *FlagSet) NFlag() int {
	var n int
	for _, flag := range f.formal {
		if flag.Changed {
			n++
		}
	}
	return n
}

func (f *FlagSet) sortedFlags() []*Flag {
	names := make([]string, 0, len(f.formal))
	for name := range f.formal {
		names = append(names, name)
	}
	slices.Sort(names)
	flags := make([]*Flag, len(names))
	for i, name := range names {
		flags[i] = f.formal[name]
	}
	return flags
}

// VisitAll calls fn for each registered [Flag], in lexicographical order by name.
func (f *FlagSet) VisitAll(fn func(*Flag)) {
	for _, flag := range f.sortedFlags() {
		fn(flag)
	}
}

// Visit calls fn for each [Flag] that has been set, in lexicographical order by name.
func (f *FlagSet) Visit(fn func(*Flag)) {
	for _, flag := range f.sortedFlags() {
		if flag.Changed {
			fn(flag)
		}
	}
}

// Parsed reports whether [FlagSet.Parse] has completed without error.
func (f *FlagSet) Parsed() bool {
	return f.parsed
}

// Args returns the positional arguments left over from the last successful [FlagSet.Parse].
func (f *FlagSet) Args() []string {
	return f.args
}

// NArg is the number of positional arguments.
func (f *FlagSet) NArg() int {
	return len(f.args)
}

// Arg returns the i'th positional argument, or an empty string if it doesn't exist.
func (f *FlagSet) Arg(i int) string {
	if i < 0 || i >= len(f.args) {
		return ""
	}
	return f.args[i]
}

func (f *FlagSet) StringVar(p *string, name string, short bool, value string, usage string) {
	f.Var(newStringValue(value, p), name, short, usage)
}

// String defines a string flag, and returns the address of the variable that it's bound to.
func (f *FlagSet) String(name string, short bool, value string, usage string) *string {
	p := new(string)
	f.StringVar(p, name, short, value, usage)
	return p
}

func (f *FlagSet) IntVar(p *int, name string, short bool, value int, usage string) {
	f.Var(newIntValue(value, p), name, short, usage)
}

// Int defines an integer flag, and returns the address of the variable that it's bound to.
func (f *FlagSet) Int(name string, short bool, value int, usage string) *int {
	p := new(int)
	f.IntVar(p, name, short, value, usage)
	return p
}

func (f *FlagSet) RuneVar(p *rune, name string, short bool, value rune, usage string) {
	f.Var(newRuneValue(value, p), name, short, usage)
}

// Rune defines a single character flag, and returns the address of the variable that it's bound to.
// The value given on the command line must be exactly one character.
func (f *FlagSet) Rune(name string, short bool, value rune, usage string) *rune {
	p := new(rune)
	f.RuneVar(p, name, short, value, usage)
	return p
}

func (f *FlagSet) BoolVar(p *bool, name string, short bool, value bool, usage string) {
	f.Var(newBoolValue(value, p), name, short, usage)
}

// Bool defines a boolean flag, and returns the address of the variable that it's bound to.
// Boolean flags don't need a value on the command line, and may be clustered in short form, as in "-ab".
func (f *FlagSet) Bool(name string, short bool, value bool, usage string) *bool {
	p := new(bool)
	f.BoolVar(p, name, short, value, usage)
	return p
}

func (f *FlagSet) StringListVar(p *[]string, name string, short bool, value []string, usage string) {
	*p = slices.Clone(value)
	f.Var(NewStringList(p, ""), name, short, usage)
}

// StringList defines a flag holding a list of strings separated by [DefaultListSeparator].
func (f *FlagSet) StringList(name string, short bool, value []string, usage string) *[]string {
	p := new([]string)
	f.StringListVar(p, name, short, value, usage)
	return p
}

func (f *FlagSet) IntListVar(p *[]int, name string, short bool, value []int, usage string) {
	*p = slices.Clone(value)
	f.Var(NewIntList(p, ""), name, short, usage)
}

// IntList defines a flag holding a list of integers separated by [DefaultListSeparator].
func (f *FlagSet) IntList(name string, short bool, value []int, usage string) *[]int {
	p := new([]int)
	f.IntListVar(p, name, short, value, usage)
	return p
}

func (f *FlagSet) RuneListVar(p *[]rune, name string, short bool, value []rune, usage string) {
	*p = slices.Clone(value)
	f.Var(NewRuneList(p, ""), name, short, usage)
}

// RuneList defines a flag holding a list of characters separated by [DefaultListSeparator].
func (f *FlagSet) RuneList(name string, short bool, value []rune, usage string) *[]rune {
	p := new([]rune)
	f.RuneListVar(p, name, short, value, usage)
	return p
}

// Usage is a lookup key paired with the usage text of the flag it resolves to.
type Usage struct {
	Key  string
	Text string
}

// Usages returns every lookup key with the usage text of its [Flag], sorted by key.
// Aliases are listed as their own key.
func (f *FlagSet) Usages() []Usage {
	usages := make([]Usage, 0, len(f.formal)+len(f.shorthands))
	for name, flag := range f.formal {
		usages = append(usages, Usage{Key: name, Text: flag.Usage})
	}
	for r, flag := range f.shorthands {
		if string(r) == flag.Name {
			continue
		}
		usages = append(usages, Usage{Key: string(r), Text: flag.Usage})
	}
	slices.SortFunc(usages, func(a, b Usage) int {
		return strings.Compare(a.Key, b.Key)
	})
	return usages
}
