package flagx

import (
	"errors"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Kind identifies one of the value kinds that may be bound to a [Flag].
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindRune
	KindBool
	KindList
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindRune:
		return "char"
	case KindBool:
		return "bool"
	case KindList:
		return "list"
	default:
		return "unknown"
	}
}

var (
	DefaultListSeparator = "," // DefaultListSeparator is used to split list values when no other separator is given.
)

// Value is a handle to a caller owned slot that a [Flag] writes into.
//
// The set of implementations is closed, and may only be created with the constructors in this package.
// Each Value also satisfies [github.com/spf13/pflag.Value].
type Value interface {
	// String renders the current content of the slot.
	String() string
	// Set parses text and overwrites the slot.
	// The slot is left untouched if text can't be parsed, and the conversion error is returned as-is.
	Set(text string) error
	// Type returns a short name for the kind of value, used in usage output.
	Type() string
	// Activate treats the flag's presence alone as setting it to true.
	// This only succeeds if the current rendering is "true" or "false", otherwise [ErrNotBool] is returned.
	Activate() error

	kind() Kind
}

// activate decides if a value is boolean by its rendering rather than its type.
func activate(v Value) error {
	switch v.String() {
	case "true", "false":
		return v.Set("true")
	default:
		return ErrNotBool
	}
}

type stringValue string

// NewString binds p as a string [Value].
func NewString(p *string) Value {
	return (*stringValue)(p)
}

func newStringValue(val string, p *string) *stringValue {
	*p = val
	return (*stringValue)(p)
}

func (s *stringValue) Set(text string) error {
	*s = stringValue(text)
	return nil
}

func (s *stringValue) String() string  { return string(*s) }
func (s *stringValue) Type() string    { return KindString.String() }
func (s *stringValue) Activate() error { return activate(s) }
func (s *stringValue) kind() Kind      { return KindString }

type intValue int

// NewInt binds p as an integer [Value].
func NewInt(p *int) Value {
	return (*intValue)(p)
}

func newIntValue(val int, p *int) *intValue {
	*p = val
	return (*intValue)(p)
}

func (i *intValue) Set(text string) error {
	v, err := parseInt(text)
	if err != nil {
		return err
	}
	*i = intValue(v)
	return nil
}

func (i *intValue) String() string  { return strconv.Itoa(int(*i)) }
func (i *intValue) Type() string    { return KindInt.String() }
func (i *intValue) Activate() error { return activate(i) }
func (i *intValue) kind() Kind      { return KindInt }

type runeValue rune

// NewRune binds p as a single character [Value].
// The zero character renders as an empty string and marks a flag with no default, so it can't be given on the command line.
func NewRune(p *rune) Value {
	return (*runeValue)(p)
}

func newRuneValue(val rune, p *rune) *runeValue {
	*p = val
	return (*runeValue)(p)
}

func (r *runeValue) Set(text string) error {
	v, err := parseRune(text)
	if err != nil {
		return err
	}
	*r = runeValue(v)
	return nil
}

func (r *runeValue) String() string  { return formatRune(rune(*r)) }
func (r *runeValue) Type() string    { return KindRune.String() }
func (r *runeValue) Activate() error { return activate(r) }
func (r *runeValue) kind() Kind      { return KindRune }

type boolValue bool

// NewBool binds p as a boolean [Value].
func NewBool(p *bool) Value {
	return (*boolValue)(p)
}

func newBoolValue(val bool, p *bool) *boolValue {
	*p = val
	return (*boolValue)(p)
}

func (b *boolValue) Set(text string) error {
	v, err := strconv.ParseBool(text)
	if err != nil {
		return err
	}
	*b = boolValue(v)
	return nil
}

func (b *boolValue) String() string  { return strconv.FormatBool(bool(*b)) }
func (b *boolValue) Type() string    { return KindBool.String() }
func (b *boolValue) Activate() error { return activate(b) }
func (b *boolValue) kind() Kind      { return KindBool }

// listValue is a delimited list of one of the scalar kinds.
type listValue[T any] struct {
	p      *[]T
	sep    string
	elem   Kind
	parse  func(string) (T, error)
	format func(T) string
}

// NewStringList binds p as a [Value] holding a list of strings separated by sep.
// If sep is empty, then [DefaultListSeparator] is used.
func NewStringList(p *[]string, sep string) Value {
	return newList(p, sep, KindString, func(s string) (string, error) { return s, nil }, func(s string) string { return s })
}

// NewIntList binds p as a [Value] holding a list of integers separated by sep.
// If sep is empty, then [DefaultListSeparator] is used.
func NewIntList(p *[]int, sep string) Value {
	return newList(p, sep, KindInt, parseInt, strconv.Itoa)
}

// NewRuneList binds p as a [Value] holding a list of characters separated by sep.
// If sep is empty, then [DefaultListSeparator] is used.
func NewRuneList(p *[]rune, sep string) Value {
	return newList(p, sep, KindRune, parseRune, formatRune)
}

func newList[T any](p *[]T, sep string, elem Kind, parse func(string) (T, error), format func(T) string) *listValue[T] {
	if len(sep) == 0 {
		sep = DefaultListSeparator
	}
	return &listValue[T]{p: p, sep: sep, elem: elem, parse: parse, format: format}
}

func (l *listValue[T]) Set(text string) error {
	if len(text) == 0 {
		*l.p = []T{}
		return nil
	}
	parts := strings.Split(text, l.sep)
	vals := make([]T, len(parts))
	for i, part := range parts {
		v, err := l.parse(part)
		if err != nil {
			return err
		}
		vals[i] = v
	}
	*l.p = vals
	return nil
}

func (l *listValue[T]) String() string {
	var buf strings.Builder
	for i, v := range *l.p {
		if i > 0 {
			buf.WriteString(l.sep)
		}
		buf.WriteString(l.format(v))
	}
	return buf.String()
}

func (l *listValue[T]) Type() string    { return l.elem.String() + "s" }
func (l *listValue[T]) Activate() error { return activate(l) }
func (l *listValue[T]) kind() Kind      { return KindList }

func parseInt(text string) (int, error) {
	return strconv.Atoi(text)
}

var (
	errEmptyChar    = errors.New("cannot parse char from empty string")
	errTooManyChars = errors.New("too many characters in string")
	errInvalidChar  = errors.New("invalid UTF-8 character")
)

func parseRune(text string) (rune, error) {
	switch utf8.RuneCountInString(text) {
	case 0:
		return 0, errEmptyChar
	case 1:
		r, size := utf8.DecodeRuneInString(text)
		if r == utf8.RuneError && size == 1 {
			return 0, errInvalidChar
		}
		return r, nil
	default:
		return 0, errTooManyChars
	}
}

// formatRune renders NUL as empty, which parseRune rejects.
func formatRune(r rune) string {
	if r == 0 {
		return ""
	}
	return string(r)
}
