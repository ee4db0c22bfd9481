/*
Package flagx binds command line tokens to typed variables, and collects the positional arguments that remain.

It's in the same spirit as [pflag], but smaller and stricter about what it does.

  - Flags have a long form "--name", and may opt in to a short form "-n" derived from the first character of the name.
  - Supported values are strings, integers, characters, booleans, and delimited lists of the first three.
  - Boolean flags don't take a value, and may be clustered in short form, as in "-ab".
  - Flag parsing stops at "--", or at the first positional argument. The latter may be changed with [FlagSet.SetInterspersed].
  - Registering the same name or shorthand twice is a programming error, and panics.

# Boolean detection

There's no separate declaration for boolean flags.
When a flag is found without an attached value, [Value.Activate] is called, which succeeds if the value currently renders as "true" or "false".
Otherwise, the next token is consumed as the flag's value.

Flags in a cluster must all be boolean, so a cluster that includes a flag that needs a value results in a [ParseError] wrapping [ErrNotBool].

# Leniency

A flag at the end of the arguments that's still waiting for its value is ignored rather than reported.
Parsing is not transactional either, so flags set before an error keep their new values.

# Interop

Every [Value] is also a [pflag.Value], and [FlagSet.AddToPFlagSet] can copy a whole [FlagSet] into a [pflag.FlagSet].

[pflag]: https://github.com/spf13/pflag
*/
package flagx
