package flagx

import (
	"github.com/spf13/pflag"
	"unicode/utf8"
)

var _ pflag.Value = Value(nil)

// AddToPFlagSet registers every [Flag] in f with pfs, bound to the same values.
// This makes it possible to hand flags defined with this package to tools built on [pflag], such as cobra.
//
// Flags with a name already defined in pfs are skipped, and a shorthand is dropped if pfs already uses it.
// Only single byte shorthands are supported by pflag, so other shorthands are dropped as well.
// Boolean flags may be given without a value, like they are with [FlagSet.Parse].
// Only flags of [KindBool] are value-less through pflag, so a non-boolean value that currently renders as "true" or "false" needs a value there even though [FlagSet.Parse] would activate it.
//
// Note that [Flag.Changed] is not updated when pfs is parsed, use [pflag.FlagSet.Changed] instead.
func (f *FlagSet) AddToPFlagSet(pfs *pflag.FlagSet) {
	f.VisitAll(func(flag *Flag) {
		if pfs.Lookup(flag.Name) != nil {
			return
		}
		short := pflagShorthand(flag)
		if len(short) > 0 && pfs.ShorthandLookup(short) != nil {
			short = ""
		}
		pf := pfs.VarPF(flag.Value, flag.Name, short, flag.Usage)
		pf.DefValue = flag.DefValue
		if flag.Value.kind() == KindBool {
			pf.NoOptDefVal = "true"
		}
	})
}

func pflagShorthand(flag *Flag) string {
	r := flag.Shorthand
	if r == 0 {
		if single, ok := singleRune(flag.Name); ok {
			r = single
		}
	}
	if r == 0 || r >= utf8.RuneSelf {
		return ""
	}
	return string(r)
}
