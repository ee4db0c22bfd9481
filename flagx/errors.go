package flagx

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

var (
	ErrUnknownFlag = errors.New("unknown flag")
	ErrNotBool     = errors.New("bound value should be of type bool")
	ErrHelp        = errors.New("help requested") // ErrHelp matches the [UnknownFlagError] returned from [FlagSet.Parse] when one of [HelpFlags] is given but not registered.
)

// UnknownFlagError is returned when a flag shaped token doesn't match a registered [Flag].
// For a cluster of short flags, Name is the whole cluster without the leading dash.
//
// Help is true if the token was one of [HelpFlags], in which case the error also matches [ErrHelp].
type UnknownFlagError struct {
	Name string
	Help bool
}

func (e *UnknownFlagError) Error() string {
	return fmt.Sprintf("%s: %s", ErrUnknownFlag, e.Name)
}

func (e *UnknownFlagError) Is(err error) bool {
	if err == ErrUnknownFlag {
		return true
	}
	if err == ErrHelp {
		return e.Help
	}
	_, ok := err.(*UnknownFlagError)
	return ok
}

// ParseError is returned when a token can't be converted to the type of a flag's [Value].
// The wrapped error is the conversion error itself.
type ParseError struct {
	Flag string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("invalid value for flag %q", e.Flag)
	}
	return fmt.Sprintf("invalid value for flag %q: %s", e.Flag, e.Err)
}

func (e *ParseError) Is(err error) bool {
	_, ok := err.(*ParseError)
	return ok
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// violation panics with the location of the registration call that broke the registry contract.
func violation(format string, args ...any) {
	panic(fmt.Sprintf("flagx: %s at %s", fmt.Sprintf(format, args...), callerDetails()))
}

func callerDetails() string {
	pcs := make([]uintptr, 8)
	n := runtime.Callers(3, pcs)
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		if !strings.Contains(frame.Function, "flagx.(*FlagSet)") {
			return fmt.Sprintf("'%s#%d'", frame.File, frame.Line)
		}
		if !more {
			break
		}
	}
	return "unknown"
}
