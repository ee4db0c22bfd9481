package flagx

import (
	"fmt"
	"github.com/saylorsolutions/argx/internal/termx"
	"strings"
	"unicode/utf8"
)

// minUsageWidth is the narrowest usage column worth wrapping into.
const minUsageWidth = 20

func (f *FlagSet) defaultUsage() {
	if len(f.name) == 0 {
		_, _ = fmt.Fprintln(f.out(), "Usage:")
	} else {
		_, _ = fmt.Fprintf(f.out(), "Usage of %s:\n", f.name)
	}
	f.PrintDefaults()
}

// PrintDefaults writes [FlagSet.FlagUsages] to the configured output.
// If the output is a terminal, then usage text is wrapped to fit its width.
func (f *FlagSet) PrintDefaults() {
	out := f.out()
	_, _ = fmt.Fprint(out, f.FlagUsagesWrapped(termx.Width(out)))
}

// FlagUsages returns a string with one line of usage information per flag, sorted by name.
func (f *FlagSet) FlagUsages() string {
	return f.FlagUsagesWrapped(0)
}

// FlagUsagesWrapped is like [FlagSet.FlagUsages], but wraps usage text to fit within cols.
// Wrapping is disabled if cols is less than 1.
func (f *FlagSet) FlagUsagesWrapped(cols int) string {
	var (
		buf      strings.Builder
		flags    = f.sortedFlags()
		heads    = make([]string, len(flags))
		maxLen   int
		anyShort bool
	)
	for _, flag := range flags {
		if flag.Shorthand != 0 {
			anyShort = true
			break
		}
	}
	for i, flag := range flags {
		var head string
		switch {
		case flag.Shorthand != 0:
			head = fmt.Sprintf("  -%c, --%s", flag.Shorthand, flag.Name)
		case anyShort:
			head = fmt.Sprintf("      --%s", flag.Name)
		default:
			head = fmt.Sprintf("  --%s", flag.Name)
		}
		if flag.Value.kind() != KindBool {
			head += " " + flag.Value.Type()
		}
		heads[i] = head
		if w := utf8.RuneCountInString(head); w > maxLen {
			maxLen = w
		}
	}

	indent := maxLen + 3
	for i, flag := range flags {
		text := flag.Usage
		if def, ok := defaultText(flag); ok {
			if len(text) > 0 {
				text += " "
			}
			text += "(default " + def + ")"
		}
		buf.WriteString(heads[i])
		if len(text) > 0 {
			buf.WriteString(strings.Repeat(" ", indent-utf8.RuneCountInString(heads[i])))
			buf.WriteString(wrap(indent, cols, text))
		}
		buf.WriteString("\n")
	}
	return buf.String()
}

// defaultText renders a flag's default for usage output, if it differs from the zero value of its kind.
func defaultText(flag *Flag) (string, bool) {
	switch flag.Value.kind() {
	case KindBool:
		if flag.DefValue == "false" {
			return "", false
		}
	case KindInt:
		if flag.DefValue == "0" {
			return "", false
		}
	case KindString, KindRune:
		if len(flag.DefValue) == 0 {
			return "", false
		}
		return fmt.Sprintf("%q", flag.DefValue), true
	default:
		if len(flag.DefValue) == 0 {
			return "", false
		}
	}
	return flag.DefValue, true
}

// wrap splits text into lines that fit within cols, with continuation lines indented.
// The first line is assumed to already be indented.
func wrap(indent, cols int, text string) string {
	width := cols - indent
	if cols < 1 || width < minUsageWidth {
		return text
	}
	var (
		buf     strings.Builder
		lineLen int
		pad     = "\n" + strings.Repeat(" ", indent)
	)
	for i, word := range strings.Fields(text) {
		switch {
		case i == 0:
		case lineLen+1+utf8.RuneCountInString(word) > width:
			buf.WriteString(pad)
			lineLen = 0
		default:
			buf.WriteByte(' ')
			lineLen++
		}
		buf.WriteString(word)
		lineLen += utf8.RuneCountInString(word)
	}
	return buf.String()
}
